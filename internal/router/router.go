// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for
// ProposalPress. Routes are organized into public and admin groups with
// appropriate middleware stacks.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"proposalpress/internal/handlers"
	"proposalpress/internal/middleware"
	"proposalpress/internal/session"
	"proposalpress/web"
)

// New creates and returns the configured chi router with all middleware
// and route groups wired up. The returned rate limiters must be stopped
// on shutdown.
func New(sessionStore *session.Store, admin *handlers.Admin, auth *handlers.Auth, public *handlers.Public) (chi.Router, func()) {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessionStore))

	// Brute-force protection on login; spam protection on the public
	// feedback endpoints.
	loginLimiter := middleware.NewRateLimiter(10, time.Minute)
	feedbackLimiter := middleware.NewRateLimiter(5, time.Minute)

	// Health check — no auth, no CSRF.
	r.Get("/health", healthHandler)

	// Static assets. The embedded FS roots at "static/", matching the
	// URL prefix, so no strip is needed.
	r.Handle("/static/*", http.FileServer(http.FS(web.StaticFS)))

	// Admin routes — CSRF applies here only; the public forms carry no
	// session to ride.
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.CSRF)

		// Auth pages — accessible without a session.
		r.With(loginLimiter.Middleware).Get("/login", auth.LoginPage)
		r.With(loginLimiter.Middleware).Post("/login", auth.LoginSubmit)
		r.Post("/logout", auth.Logout)

		// 2FA — requires auth but NOT completed 2FA.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/2fa/setup", auth.TwoFASetupPage)
			r.Get("/2fa/verify", auth.TwoFAVerifyPage)
			r.Post("/2fa/verify", auth.TwoFAVerifySubmit)
		})

		// Authenticated + 2FA-verified admin area.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.Require2FA)

			r.Get("/", admin.Dashboard)
			r.Get("/dashboard", admin.Dashboard)
			r.Get("/editor", admin.EditorPage)

			// Proposal lifecycle — creating, deleting, and resending are
			// admin-only; editors work through the editor API.
			r.Route("/proposals", func(r chi.Router) {
				r.With(middleware.RequireAdmin).Post("/", admin.ProposalCreate)
				r.With(middleware.RequireAdmin).Post("/{slug}/delete", admin.ProposalDelete)
				r.Post("/{slug}/status", admin.ProposalStatus)
			})

			// Editor JSON API, consumed by editor.js.
			r.Route("/api", func(r chi.Router) {
				r.Get("/document", admin.APIDocument)
				r.Get("/comments", admin.APIComments)
				r.Post("/edit", admin.APIEdit)
				r.Patch("/document", admin.APIMutate)
				r.Post("/items/add", admin.APIItemAdd)
				r.Post("/items/remove", admin.APIItemRemove)
				r.Post("/save", admin.APISave)
				r.Post("/discard", admin.APIDiscard)
				r.With(middleware.RequireAdmin).Post("/reset", admin.APIReset)
				r.Post("/suggest", admin.APISuggest)
				r.Post("/media", admin.MediaUpload)
				r.Delete("/media", admin.MediaDelete)
			})
		})
	})

	// Public routes.
	r.Get("/", public.Home)
	r.Route("/proposal/{slug}", func(r chi.Router) {
		r.Get("/pdf", public.PDF)
		r.With(feedbackLimiter.Middleware).Post("/accept", public.Accept)
		r.With(feedbackLimiter.Middleware).Post("/request-changes", public.RequestChanges)
	})

	stop := func() {
		loginLimiter.Stop()
		feedbackLimiter.Stop()
	}
	return r, stop
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
