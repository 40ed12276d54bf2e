// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for ProposalPress.
// Handlers are grouped by concern (admin, public, auth) and receive
// their dependencies through the handler struct.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"proposalpress/internal/ai"
	"proposalpress/internal/cache"
	"proposalpress/internal/draft"
	"proposalpress/internal/lifecycle"
	"proposalpress/internal/models"
	"proposalpress/internal/render"
	"proposalpress/internal/session"
	"proposalpress/internal/storage"
	"proposalpress/internal/store"
)

// Admin groups all admin panel HTTP handlers and their dependencies.
type Admin struct {
	renderer      *render.Renderer
	sessions      *session.Store
	lifecycle     *lifecycle.Service
	drafts        *draft.Manager
	comments      *store.CommentStore
	pageCache     *cache.PageCache
	storageClient *storage.Client
	aiRegistry    *ai.Registry
}

// NewAdmin creates a new Admin handler group with the given dependencies.
// storageClient may be nil if S3 is not configured.
func NewAdmin(renderer *render.Renderer, sessions *session.Store, svc *lifecycle.Service, drafts *draft.Manager, comments *store.CommentStore, pageCache *cache.PageCache, storageClient *storage.Client, aiRegistry *ai.Registry) *Admin {
	return &Admin{
		renderer:      renderer,
		sessions:      sessions,
		lifecycle:     svc,
		drafts:        drafts,
		comments:      comments,
		pageCache:     pageCache,
		storageClient: storageClient,
		aiRegistry:    aiRegistry,
	}
}

// Dashboard renders the proposal overview with the create form and the
// per-proposal actions.
func (a *Admin) Dashboard(w http.ResponseWriter, r *http.Request) {
	proposals, err := a.lifecycle.ListProposals(r.Context())
	if err != nil {
		slog.Error("list proposals failed", "error", err)
	}

	a.renderer.Page(w, r, "dashboard", &render.PageData{
		Title:   "Proposals",
		Section: "dashboard",
		Error:   r.URL.Query().Get("error"),
		Data: map[string]any{
			"proposals":   proposals,
			"viewLogging": a.lifecycle.ViewLoggingEnabled(),
		},
	})
}

// EditorPage renders the visual editor shell for one proposal. The actual
// document travels over the JSON API once editor.js boots.
func (a *Admin) EditorPage(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("proposal")
	if slug == "" {
		slug = models.DefaultSlug
	}

	proposals, err := a.lifecycle.ListProposals(r.Context())
	if err != nil {
		slog.Error("list proposals failed", "error", err)
	}

	a.renderer.Page(w, r, "editor", &render.PageData{
		Title:   "Editor",
		Section: "editor",
		Data: map[string]any{
			"slug":      slug,
			"proposals": proposals,
		},
	})
}

// ProposalCreate handles the new-proposal form: clones the default
// proposal under a slug derived from the client name.
func (a *Admin) ProposalCreate(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("name")

	newSlug, err := a.lifecycle.CreateProposal(r.Context(), name)
	switch {
	case errors.Is(err, lifecycle.ErrInvalidName):
		http.Redirect(w, r, "/admin/dashboard?error=That+name+does+not+produce+a+usable+address.", http.StatusSeeOther)
		return
	case errors.Is(err, lifecycle.ErrDuplicateSlug):
		http.Redirect(w, r, "/admin/dashboard?error=A+proposal+with+that+name+already+exists.", http.StatusSeeOther)
		return
	case err != nil:
		slog.Error("create proposal failed", "error", err)
		http.Redirect(w, r, "/admin/dashboard?error=Could+not+create+the+proposal.", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/editor?proposal="+newSlug, http.StatusSeeOther)
}

// ProposalDelete removes a proposal. The default proposal is refused.
func (a *Admin) ProposalDelete(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	err := a.lifecycle.DeleteProposal(r.Context(), slug)
	switch {
	case errors.Is(err, lifecycle.ErrProtectedRecord):
		http.Redirect(w, r, "/admin/dashboard?error=The+default+proposal+cannot+be+deleted.", http.StatusSeeOther)
		return
	case err != nil:
		slog.Error("delete proposal failed", "error", err, "slug", slug)
		http.Redirect(w, r, "/admin/dashboard?error=Could+not+delete+the+proposal.", http.StatusSeeOther)
		return
	}

	a.pageCache.InvalidateProposal(r.Context(), slug)
	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}

// ProposalStatus applies a status change from the dashboard, typically
// marking a drafted proposal as Sent.
func (a *Admin) ProposalStatus(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	status := models.ProposalStatus(r.FormValue("status"))

	doc, err := a.lifecycle.UpdateStatus(r.Context(), slug, status)
	switch {
	case errors.Is(err, lifecycle.ErrNotFound):
		http.Redirect(w, r, "/admin/dashboard?error=That+proposal+no+longer+exists.", http.StatusSeeOther)
		return
	case errors.Is(err, lifecycle.ErrInvalidTransition):
		http.Redirect(w, r, "/admin/dashboard?error=That+status+change+is+not+allowed.", http.StatusSeeOther)
		return
	case err != nil:
		slog.Error("status update failed", "error", err, "slug", slug)
		http.Redirect(w, r, "/admin/dashboard?error=Could+not+update+the+status.", http.StatusSeeOther)
		return
	}

	// A status change is a direct commit; if this admin has the proposal
	// open in the editor, their engine must see the new persisted state
	// without a reload (and without losing unsaved draft edits).
	if eng := a.drafts.Peek(session.IDFromRequest(r)); eng != nil && eng.Slug() == slug {
		eng.SetPersisted(doc)
	}

	a.pageCache.InvalidateProposal(r.Context(), slug)
	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}
