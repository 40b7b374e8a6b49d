// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"boostkit/internal/builder"
	"boostkit/internal/models"
	"boostkit/internal/session"
)

// pageBody builds a save/preview payload for the given template.
func pageBody(t *testing.T, title, templateID string) *bytes.Reader {
	t.Helper()
	draft := builder.Draft{
		TemplateID:    templateID,
		ColorSchemeID: "blue-gradient",
		Content: map[string]builder.SectionContent{
			"hero": {Headline: "Launch Faster", CTAText: "Get Started"},
		},
	}
	draft.Customizations.Font = "inter"
	draft.Customizations.Animations = true

	payload, err := json.Marshal(map[string]any{
		"title": title,
		"draft": draft,
	})
	if err != nil {
		t.Fatalf("marshal draft: %v", err)
	}
	return bytes.NewReader(payload)
}

// createPage saves a page through the handler and returns it.
func createPage(t *testing.T, env *testEnv, sess *session.Data, title string) *models.LandingPage {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/pages", pageBody(t, title, "startup-modern"))
	rr := httptest.NewRecorder()
	env.Pages.Create(rr, withSession(req, sess))
	if rr.Code != http.StatusCreated {
		t.Fatalf("create page: got %d, want 201 (body: %s)", rr.Code, rr.Body.String())
	}
	var page models.LandingPage
	if err := json.NewDecoder(rr.Body).Decode(&page); err != nil {
		t.Fatalf("decode page: %v", err)
	}
	return &page
}

func TestPagePreviewIsDeterministic(t *testing.T) {
	env := newTestEnv(t)
	u := env.testUser(t, "page-preview@example.com", models.PlanFree)
	sess := testSession(u)

	render := func() string {
		req := httptest.NewRequest(http.MethodPost, "/api/pages/preview", pageBody(t, "Preview", "startup-modern"))
		rr := httptest.NewRecorder()
		env.Pages.Preview(rr, withSession(req, sess))
		if rr.Code != http.StatusOK {
			t.Fatalf("preview: got %d, want 200 (body: %s)", rr.Code, rr.Body.String())
		}
		var resp struct {
			HTML string `json:"html"`
		}
		if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		return resp.HTML
	}

	first := render()
	second := render()
	if first != second {
		t.Error("same draft should generate byte-identical HTML")
	}
	if !strings.Contains(first, "Launch Faster") {
		t.Error("generated HTML missing the draft headline")
	}
	if !strings.Contains(first, "<!DOCTYPE html>") {
		t.Error("generated output is not a standalone document")
	}
}

func TestPagePreviewUnknownTemplate(t *testing.T) {
	env := newTestEnv(t)
	u := env.testUser(t, "page-badtpl@example.com", models.PlanFree)

	req := httptest.NewRequest(http.MethodPost, "/api/pages/preview", pageBody(t, "Bad", "no-such-template"))
	rr := httptest.NewRecorder()
	env.Pages.Preview(rr, withSession(req, testSession(u)))

	if rr.Code != http.StatusBadRequest {
		t.Errorf("unknown template: got %d, want 400", rr.Code)
	}
}

func TestPremiumTemplateRequiresProPlan(t *testing.T) {
	env := newTestEnv(t)
	free := env.testUser(t, "page-free@example.com", models.PlanFree)
	pro := env.testUser(t, "page-pro@example.com", models.PlanPro)

	// Free plan: blocked on preview and create alike.
	req := httptest.NewRequest(http.MethodPost, "/api/pages/preview", pageBody(t, "Deal", "ecommerce-pro"))
	rr := httptest.NewRecorder()
	env.Pages.Preview(rr, withSession(req, testSession(free)))
	if rr.Code != http.StatusForbidden {
		t.Errorf("free preview of premium template: got %d, want 403", rr.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/pages", pageBody(t, "Deal", "ecommerce-pro"))
	rr = httptest.NewRecorder()
	env.Pages.Create(rr, withSession(req, testSession(free)))
	if rr.Code != http.StatusForbidden {
		t.Errorf("free create with premium template: got %d, want 403", rr.Code)
	}

	// Pro plan: allowed.
	req = httptest.NewRequest(http.MethodPost, "/api/pages/preview", pageBody(t, "Deal", "ecommerce-pro"))
	rr = httptest.NewRecorder()
	env.Pages.Preview(rr, withSession(req, testSession(pro)))
	if rr.Code != http.StatusOK {
		t.Errorf("pro preview of premium template: got %d, want 200", rr.Code)
	}
}

func TestPageLifecycle(t *testing.T) {
	env := newTestEnv(t)
	u := env.testUser(t, "page-lifecycle@example.com", models.PlanFree)
	sess := testSession(u)

	page := createPage(t, env, sess, "Lifecycle Page")
	if page.IsPublished {
		t.Error("new page should start unpublished")
	}

	// Get returns the page with its stored HTML.
	req := httptest.NewRequest(http.MethodGet, "/api/pages/"+page.ID.String(), nil)
	rr := httptest.NewRecorder()
	env.Pages.Get(rr, withChiURLParamAndSession(req, "id", page.ID.String(), sess))
	if rr.Code != http.StatusOK {
		t.Fatalf("get: got %d, want 200", rr.Code)
	}
	var got struct {
		Page *models.LandingPage `json:"page"`
		HTML string              `json:"html"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("decode get: %v", err)
	}
	if !strings.Contains(got.HTML, "Launch Faster") {
		t.Error("stored HTML missing the draft headline")
	}

	// Update regenerates the HTML.
	req = httptest.NewRequest(http.MethodPut, "/api/pages/"+page.ID.String(), pageBody(t, "Renamed Page", "startup-modern"))
	rr = httptest.NewRecorder()
	env.Pages.Update(rr, withChiURLParamAndSession(req, "id", page.ID.String(), sess))
	if rr.Code != http.StatusOK {
		t.Fatalf("update: got %d, want 200 (body: %s)", rr.Code, rr.Body.String())
	}
	var updated models.LandingPage
	if err := json.NewDecoder(rr.Body).Decode(&updated); err != nil {
		t.Fatalf("decode update: %v", err)
	}
	if updated.Title != "Renamed Page" {
		t.Errorf("title after update: got %q", updated.Title)
	}

	// List returns the page without HTML bodies.
	req = httptest.NewRequest(http.MethodGet, "/api/pages", nil)
	rr = httptest.NewRecorder()
	env.Pages.List(rr, withSession(req, sess))
	var list struct {
		Pages []*models.LandingPage `json:"pages"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list.Pages) != 1 {
		t.Fatalf("list: got %d pages, want 1", len(list.Pages))
	}
	if list.Pages[0].PageHTML != "" {
		t.Error("list should omit HTML bodies")
	}

	// Delete.
	req = httptest.NewRequest(http.MethodDelete, "/api/pages/"+page.ID.String(), nil)
	rr = httptest.NewRecorder()
	env.Pages.Delete(rr, withChiURLParamAndSession(req, "id", page.ID.String(), sess))
	if rr.Code != http.StatusOK {
		t.Fatalf("delete: got %d, want 200", rr.Code)
	}
	gone, err := env.PageStore.FindByID(page.ID)
	if err != nil {
		t.Fatalf("find after delete: %v", err)
	}
	if gone != nil {
		t.Error("page should be gone after delete")
	}
}

func TestPagePublishUnpublish(t *testing.T) {
	env := newTestEnv(t)
	u := env.testUser(t, "page-publish@example.com", models.PlanFree)
	sess := testSession(u)

	page := createPage(t, env, sess, "Big Summer Sale")

	req := httptest.NewRequest(http.MethodPost, "/api/pages/"+page.ID.String()+"/publish", nil)
	rr := httptest.NewRecorder()
	env.Pages.Publish(rr, withChiURLParamAndSession(req, "id", page.ID.String(), sess))
	if rr.Code != http.StatusOK {
		t.Fatalf("publish: got %d, want 200 (body: %s)", rr.Code, rr.Body.String())
	}
	var pub struct {
		Page *models.LandingPage `json:"page"`
		URL  string              `json:"url"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&pub); err != nil {
		t.Fatalf("decode publish: %v", err)
	}
	if !pub.Page.IsPublished || pub.Page.Slug == nil {
		t.Fatalf("published page missing state: %+v", pub.Page)
	}
	if !strings.HasPrefix(*pub.Page.Slug, "big-summer-sale") {
		t.Errorf("slug should derive from the title, got %q", *pub.Page.Slug)
	}
	if pub.URL != "/p/"+*pub.Page.Slug {
		t.Errorf("url: got %q", pub.URL)
	}
	firstSlug := *pub.Page.Slug

	// Unpublish keeps the slug so the URL survives a republish.
	req = httptest.NewRequest(http.MethodPost, "/api/pages/"+page.ID.String()+"/unpublish", nil)
	rr = httptest.NewRecorder()
	env.Pages.Unpublish(rr, withChiURLParamAndSession(req, "id", page.ID.String(), sess))
	if rr.Code != http.StatusOK {
		t.Fatalf("unpublish: got %d, want 200", rr.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/pages/"+page.ID.String()+"/publish", nil)
	rr = httptest.NewRecorder()
	env.Pages.Publish(rr, withChiURLParamAndSession(req, "id", page.ID.String(), sess))
	pub.Page = nil
	if err := json.NewDecoder(rr.Body).Decode(&pub); err != nil {
		t.Fatalf("decode republish: %v", err)
	}
	if *pub.Page.Slug != firstSlug {
		t.Errorf("republish changed the slug: %q -> %q", firstSlug, *pub.Page.Slug)
	}
}

func TestPageDownload(t *testing.T) {
	env := newTestEnv(t)
	u := env.testUser(t, "page-download@example.com", models.PlanFree)
	sess := testSession(u)

	page := createPage(t, env, sess, "Download Me")

	req := httptest.NewRequest(http.MethodGet, "/api/pages/"+page.ID.String()+"/download", nil)
	rr := httptest.NewRecorder()
	env.Pages.Download(rr, withChiURLParamAndSession(req, "id", page.ID.String(), sess))

	if rr.Code != http.StatusOK {
		t.Fatalf("download: got %d, want 200", rr.Code)
	}
	cd := rr.Header().Get("Content-Disposition")
	if cd != `attachment; filename="download-me.html"` {
		t.Errorf("content-disposition: got %q", cd)
	}
	if !strings.Contains(rr.Body.String(), "<!DOCTYPE html>") {
		t.Error("download body is not the stored document")
	}
}

func TestPageOwnership(t *testing.T) {
	env := newTestEnv(t)
	owner := env.testUser(t, "page-owner@example.com", models.PlanFree)
	other := env.testUser(t, "page-other@example.com", models.PlanFree)

	page := createPage(t, env, testSession(owner), "Private Page")

	// Another user's page looks like it doesn't exist.
	req := httptest.NewRequest(http.MethodGet, "/api/pages/"+page.ID.String(), nil)
	rr := httptest.NewRecorder()
	env.Pages.Get(rr, withChiURLParamAndSession(req, "id", page.ID.String(), testSession(other)))
	if rr.Code != http.StatusNotFound {
		t.Errorf("foreign page: got %d, want 404", rr.Code)
	}

	// Malformed IDs are a 400, not a 500.
	req = httptest.NewRequest(http.MethodGet, "/api/pages/not-a-uuid", nil)
	rr = httptest.NewRecorder()
	env.Pages.Get(rr, withChiURLParamAndSession(req, "id", "not-a-uuid", testSession(owner)))
	if rr.Code != http.StatusBadRequest {
		t.Errorf("bad id: got %d, want 400", rr.Code)
	}
}
