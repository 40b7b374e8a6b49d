// Package router sets up all HTTP routes and middleware chains for the
// BoostKit server. It organizes routes into the authenticated JSON API
// and the public page-serving group with appropriate middleware stacks.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"boostkit/internal/handlers"
	"boostkit/internal/middleware"
	"boostkit/internal/session"
)

// Deps bundles the handler groups the router wires up. Optional backends
// (S3, Valkey) are handled inside the handler groups, not here.
type Deps struct {
	Sessions  *session.Store
	Auth      *handlers.Auth
	Catalog   *handlers.Catalog
	Pages     *handlers.Pages
	Proposals *handlers.Proposals
	Deals     *handlers.Deals
	Dashboard *handlers.Dashboard
	Public    *handlers.Public
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(d Deps) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(d.Sessions))

	// Health check — no auth, no CSRF.
	r.Get("/health", healthHandler)

	// Login endpoints get a tight per-IP rate limit.
	loginLimiter := middleware.NewRateLimiter(10, time.Minute)

	// JSON API for the editor client.
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.CSRF)

		// Auth — accessible without a session.
		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(loginLimiter.Middleware)
				r.Post("/register", d.Auth.Register)
				r.Post("/login", d.Auth.Login)
			})
			r.Post("/logout", d.Auth.Logout)

			// 2FA — requires auth but NOT completed 2FA.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Get("/me", d.Auth.Me)
				r.Post("/2fa/setup", d.Auth.TwoFASetup)
				r.Post("/2fa/verify", d.Auth.TwoFAVerify)
			})
		})

		// Authenticated + 2FA-verified API.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.Require2FA)

			// Template catalog
			r.Get("/templates", d.Catalog.ListTemplates)
			r.Get("/templates/{id}", d.Catalog.GetTemplate)
			r.Get("/fonts", d.Catalog.ListFonts)

			// Landing pages
			r.Route("/pages", func(r chi.Router) {
				r.Get("/", d.Pages.List)
				r.Post("/", d.Pages.Create)
				r.Post("/preview", d.Pages.Preview)
				r.Get("/{id}", d.Pages.Get)
				r.Put("/{id}", d.Pages.Update)
				r.Delete("/{id}", d.Pages.Delete)
				r.Post("/{id}/publish", d.Pages.Publish)
				r.Post("/{id}/unpublish", d.Pages.Unpublish)
				r.Get("/{id}/download", d.Pages.Download)
			})

			// Sales proposals
			r.Route("/proposals", func(r chi.Router) {
				r.Get("/", d.Proposals.List)
				r.Post("/", d.Proposals.Create)
				r.Post("/preview", d.Proposals.Preview)
				r.Get("/{id}", d.Proposals.Get)
				r.Get("/{id}/html", d.Proposals.GetHTML)
				r.Get("/{id}/download", d.Proposals.Download)
				r.Put("/{id}", d.Proposals.Update)
				r.Delete("/{id}", d.Proposals.Delete)
			})

			// Deal images
			r.Route("/deals", func(r chi.Router) {
				r.Get("/", d.Deals.List)
				r.Post("/", d.Deals.Upload)
				r.Get("/{id}", d.Deals.Get)
				r.Put("/{id}", d.Deals.UpdateSettings)
				r.Delete("/{id}", d.Deals.Delete)
			})

			// Dashboard
			r.Get("/dashboard", d.Dashboard.Overview)
		})
	})

	// Public routes — published pages and their analytics events.
	r.Get("/p/{slug}", d.Public.Page)
	r.Post("/p/{slug}/event", d.Public.Event)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
