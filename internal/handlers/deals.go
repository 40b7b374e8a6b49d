// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"boostkit/internal/imaging"
	"boostkit/internal/middleware"
	"boostkit/internal/models"
	"boostkit/internal/storage"
	"boostkit/internal/store"
)

// Deals groups handlers for promotional deal images: upload with
// server-side thumbnail generation, gallery listing, editor settings,
// and deletion. Image bytes live in S3; rows carry the keys.
type Deals struct {
	dealStore     *store.DealImageStore
	storageClient *storage.Client
}

// NewDeals creates a new Deals handler group. storageClient may be nil if
// S3 is not configured; upload endpoints then report 503.
func NewDeals(dealStore *store.DealImageStore, storageClient *storage.Client) *Deals {
	return &Deals{
		dealStore:     dealStore,
		storageClient: storageClient,
	}
}

// dealResponse decorates a deal image row with its public URLs.
type dealResponse struct {
	models.DealImage
	URL      string `json:"url"`
	ThumbURL string `json:"thumb_url,omitempty"`
}

func (d *Deals) withURLs(img models.DealImage) dealResponse {
	resp := dealResponse{DealImage: img}
	if d.storageClient != nil {
		resp.URL = d.storageClient.FileURL(img.S3Key)
		if img.ThumbS3Key != nil {
			resp.ThumbURL = d.storageClient.FileURL(*img.ThumbS3Key)
		}
	}
	return resp
}

// Upload accepts a multipart image upload, stores the original and a
// generated thumbnail in S3, and records the metadata row.
func (d *Deals) Upload(w http.ResponseWriter, r *http.Request) {
	if d.storageClient == nil {
		respondError(w, http.StatusServiceUnavailable, "Image storage is not configured.")
		return
	}

	sess := middleware.SessionFromCtx(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondError(w, http.StatusRequestEntityTooLarge, "Image is too large (max 10 MB).")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondError(w, http.StatusBadRequest, "An image file is required.")
		return
	}
	defer file.Close()

	original, err := io.ReadAll(file)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Could not read the uploaded image.")
		return
	}

	thumb, err := imaging.Generate(original)
	if err != nil {
		respondError(w, http.StatusBadRequest, "The uploaded file is not a supported image.")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	// Store both objects under a shared random prefix.
	base := uuid.NewString()
	origKey := fmt.Sprintf("deals/%s/%s%s", sess.UserID, base, extensionFor(header.Filename))
	thumbKey := fmt.Sprintf("deals/%s/%s_thumb.jpg", sess.UserID, base)

	ctx := r.Context()
	if err := d.storageClient.Upload(ctx, origKey, contentType, bytes.NewReader(original), int64(len(original))); err != nil {
		slog.Error("deal image upload failed", "error", err)
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}
	if err := d.storageClient.Upload(ctx, thumbKey, thumb.ContentType, bytes.NewReader(thumb.Data), int64(len(thumb.Data))); err != nil {
		slog.Error("deal thumbnail upload failed", "error", err)
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	var overlay *string
	if v := r.FormValue("overlay_text"); v != "" {
		overlay = &v
	}
	var settings []byte
	if v := r.FormValue("template_settings"); v != "" {
		if !json.Valid([]byte(v)) {
			respondError(w, http.StatusBadRequest, "template_settings must be valid JSON.")
			return
		}
		settings = []byte(v)
	}

	img, err := d.dealStore.Create(sess.UserID, &models.DealImage{
		Title:            r.FormValue("title"),
		S3Key:            origKey,
		ThumbS3Key:       &thumbKey,
		OverlayText:      overlay,
		TemplateSettings: settings,
	})
	if err != nil {
		slog.Error("create deal image failed", "error", err)
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	respondJSON(w, http.StatusCreated, d.withURLs(*img))
}

// extensionFor returns the lowercase file extension including the dot,
// or empty for filenames without one.
func extensionFor(filename string) string {
	if idx := strings.LastIndexByte(filename, '.'); idx != -1 {
		return strings.ToLower(filename[idx:])
	}
	return ""
}

// List returns the user's deal images, newest first, with public URLs.
func (d *Deals) List(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	images, err := d.dealStore.ListByUser(sess.UserID)
	if err != nil {
		slog.Error("list deal images failed", "error", err)
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	out := make([]dealResponse, 0, len(images))
	for _, img := range images {
		out = append(out, d.withURLs(img))
	}
	respondJSON(w, http.StatusOK, map[string]any{"images": out})
}

// findOwnedImage loads the deal image and enforces ownership. Writes the
// error response itself on failure.
func (d *Deals) findOwnedImage(w http.ResponseWriter, r *http.Request) *models.DealImage {
	sess := middleware.SessionFromCtx(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid image ID.")
		return nil
	}

	img, err := d.dealStore.FindByID(id)
	if err != nil {
		slog.Error("find deal image failed", "error", err)
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return nil
	}
	if img == nil || img.UserID != sess.UserID {
		respondError(w, http.StatusNotFound, "Image not found.")
		return nil
	}
	return img
}

// Get returns one deal image with URLs and editor settings.
func (d *Deals) Get(w http.ResponseWriter, r *http.Request) {
	img := d.findOwnedImage(w, r)
	if img == nil {
		return
	}
	respondJSON(w, http.StatusOK, d.withURLs(*img))
}

type dealSettingsRequest struct {
	Title            string          `json:"title"`
	OverlayText      *string         `json:"overlay_text"`
	TemplateSettings json.RawMessage `json:"template_settings"`
}

// UpdateSettings replaces the title, overlay text, and editor settings so
// the image can be re-opened for editing.
func (d *Deals) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	img := d.findOwnedImage(w, r)
	if img == nil {
		return
	}

	var req dealSettingsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := d.dealStore.UpdateSettings(img.ID, req.Title, req.OverlayText, req.TemplateSettings)
	if err != nil {
		slog.Error("update deal image failed", "error", err)
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	respondJSON(w, http.StatusOK, d.withURLs(*updated))
}

// Delete removes the database row and both S3 objects. S3 failures are
// logged, not surfaced — an orphaned object is preferable to a row the
// user cannot delete.
func (d *Deals) Delete(w http.ResponseWriter, r *http.Request) {
	img := d.findOwnedImage(w, r)
	if img == nil {
		return
	}

	if err := d.dealStore.Delete(img.ID); err != nil {
		slog.Error("delete deal image failed", "error", err)
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	if d.storageClient != nil {
		ctx := r.Context()
		if err := d.storageClient.Delete(ctx, img.S3Key); err != nil {
			slog.Warn("delete deal object failed", "key", img.S3Key, "error", err)
		}
		if img.ThumbS3Key != nil {
			if err := d.storageClient.Delete(ctx, *img.ThumbS3Key); err != nil {
				slog.Warn("delete deal thumb failed", "key", *img.ThumbS3Key, "error", err)
			}
		}
	}

	respondJSON(w, http.StatusOK, map[string]any{"ok": true})
}
