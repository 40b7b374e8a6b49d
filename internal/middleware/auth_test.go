// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"boostkit/internal/session"
)

// requestWithSession builds a request carrying the given session data in
// its context, as LoadSession would.
func requestWithSession(method, target string, data *session.Data) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	if data != nil {
		ctx := context.WithValue(req.Context(), SessionKey, data)
		req = req.WithContext(ctx)
	}
	return req
}

func TestRequireAuthRejectsAnonymous(t *testing.T) {
	handler := RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, requestWithSession(http.MethodGet, "/api/pages", nil))

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("got %d, want 401", rr.Code)
	}
}

func TestRequireAuthPassesAuthenticated(t *testing.T) {
	handler := RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	sess := &session.Data{UserID: uuid.New(), Email: "a@b.c", Plan: "free", TwoFADone: true}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, requestWithSession(http.MethodGet, "/api/pages", sess))

	if rr.Code != http.StatusOK {
		t.Errorf("got %d, want 200", rr.Code)
	}
}

func TestRequire2FABlocksIncomplete(t *testing.T) {
	handler := Require2FA(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	sess := &session.Data{UserID: uuid.New(), TwoFADone: false}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, requestWithSession(http.MethodGet, "/api/pages", sess))

	if rr.Code != http.StatusForbidden {
		t.Errorf("got %d, want 403", rr.Code)
	}
}

func TestRequireProBlocksFreePlan(t *testing.T) {
	handler := RequirePro(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	sess := &session.Data{UserID: uuid.New(), Plan: "free", TwoFADone: true}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, requestWithSession(http.MethodGet, "/api/deals", sess))

	if rr.Code != http.StatusForbidden {
		t.Errorf("free plan: got %d, want 403", rr.Code)
	}

	sess.Plan = "pro"
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, requestWithSession(http.MethodGet, "/api/deals", sess))

	if rr.Code != http.StatusOK {
		t.Errorf("pro plan: got %d, want 200", rr.Code)
	}
}

func TestSessionFromCtxEmpty(t *testing.T) {
	if got := SessionFromCtx(context.Background()); got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}
