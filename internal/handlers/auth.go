package handlers

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pquerna/otp/totp"
	qrcode "github.com/skip2/go-qrcode"

	"boostkit/internal/middleware"
	"boostkit/internal/models"
	"boostkit/internal/session"
	"boostkit/internal/store"
)

// Auth groups all authentication-related HTTP handlers.
type Auth struct {
	sessions  *session.Store
	userStore *store.UserStore
}

// NewAuth creates a new Auth handler group.
func NewAuth(sessions *session.Store, userStore *store.UserStore) *Auth {
	return &Auth{
		sessions:  sessions,
		userStore: userStore,
	}
}

type registerRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// Register creates a new account on the free plan and opens a session.
// The client then walks the user through 2FA setup.
func (a *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		respondError(w, http.StatusBadRequest, "A valid email is required.")
		return
	}
	if len(req.Password) < 8 {
		respondError(w, http.StatusBadRequest, "Password must be at least 8 characters.")
		return
	}

	existing, err := a.userStore.FindByEmail(req.Email)
	if err != nil {
		slog.Error("register lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}
	if existing != nil {
		respondError(w, http.StatusConflict, "An account with this email already exists.")
		return
	}

	user, err := a.userStore.Create(req.Email, req.Password, req.DisplayName, models.PlanFree)
	if err != nil {
		slog.Error("register create failed", "error", err)
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	if _, err := a.sessions.Create(r.Context(), w, &session.Data{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Plan:        string(user.Plan),
		TwoFADone:   false,
	}); err != nil {
		slog.Error("session create failed", "error", err)
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"user":             user,
		"needs_2fa_setup":  true,
		"needs_2fa_verify": false,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login validates credentials and opens a session. TwoFADone starts as
// false; the 2FA verify endpoint completes authentication.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := a.userStore.FindByEmail(strings.TrimSpace(strings.ToLower(req.Email)))
	if err != nil {
		slog.Error("login lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	if user == nil || !a.userStore.CheckPassword(user, req.Password) {
		respondError(w, http.StatusUnauthorized, "Invalid email or password.")
		return
	}

	if _, err := a.sessions.Create(r.Context(), w, &session.Data{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Plan:        string(user.Plan),
		TwoFADone:   false,
	}); err != nil {
		slog.Error("session create failed", "error", err)
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"user":             user,
		"needs_2fa_setup":  user.Needs2FASetup(),
		"needs_2fa_verify": !user.Needs2FASetup(),
	})
}

// TwoFASetup generates a TOTP secret for the logged-in user and returns the
// otpauth QR code as a base64 PNG. Re-calling regenerates the secret until
// the first successful verification enables it.
func (a *Auth) TwoFASetup(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "BoostKit",
		AccountName: sess.Email,
	})
	if err != nil {
		slog.Error("totp generate failed", "error", err)
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	if err := a.userStore.SetTOTPSecret(sess.UserID, key.Secret()); err != nil {
		slog.Error("save totp secret failed", "error", err)
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	qrPNG, err := qrcode.Encode(key.URL(), qrcode.Medium, 256)
	if err != nil {
		slog.Error("qr code generation failed", "error", err)
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"qr_code": base64.StdEncoding.EncodeToString(qrPNG),
		"secret":  key.Secret(),
	})
}

type twoFAVerifyRequest struct {
	Code string `json:"code"`
}

// TwoFAVerify validates the TOTP code and completes authentication.
// On first-time setup it also enables TOTP on the account.
func (a *Auth) TwoFAVerify(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req twoFAVerifyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := a.userStore.FindByID(sess.UserID)
	if err != nil || user == nil {
		slog.Error("user lookup for 2fa failed", "error", err)
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	if user.TOTPSecret == nil {
		respondError(w, http.StatusConflict, "2FA is not set up for this account.")
		return
	}

	if !totp.Validate(req.Code, *user.TOTPSecret) {
		respondError(w, http.StatusUnauthorized, "Invalid code. Please try again.")
		return
	}

	// First successful verification enables TOTP on the account.
	if !user.TOTPEnabled {
		if err := a.userStore.EnableTOTP(user.ID); err != nil {
			slog.Error("enable totp failed", "error", err)
			respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
			return
		}
	}

	sess.TwoFADone = true
	if err := a.sessions.Update(r.Context(), r, sess); err != nil {
		slog.Error("session update failed", "error", err)
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// Me returns the authenticated user's profile.
func (a *Auth) Me(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := a.userStore.FindByID(sess.UserID)
	if err != nil {
		slog.Error("me lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}
	if user == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"user":            user,
		"two_fa_done":     sess.TwoFADone,
		"can_use_premium": user.CanUsePremium(),
	})
}

// Logout destroys the session.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	a.sessions.Destroy(r.Context(), w, r)
	respondJSON(w, http.StatusOK, map[string]any{"ok": true})
}
