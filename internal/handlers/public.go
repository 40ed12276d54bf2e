// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"proposalpress/internal/cache"
	"proposalpress/internal/export"
	"proposalpress/internal/lifecycle"
	"proposalpress/internal/middleware"
	"proposalpress/internal/models"
	"proposalpress/internal/render"
	"proposalpress/internal/store"
)

// Public groups handlers for the client-facing proposal pages. Rendered
// pages go through the Valkey page cache; proposal views are logged
// best-effort through the lifecycle service.
type Public struct {
	renderer  *render.Renderer
	lifecycle *lifecycle.Service
	proposals *store.ProposalStore
	comments  *store.CommentStore
	pageCache *cache.PageCache
}

// NewPublic creates a new Public handler group.
func NewPublic(renderer *render.Renderer, svc *lifecycle.Service, proposals *store.ProposalStore, comments *store.CommentStore, pageCache *cache.PageCache) *Public {
	return &Public{
		renderer:  renderer,
		lifecycle: svc,
		proposals: proposals,
		comments:  comments,
		pageCache: pageCache,
	}
}

// Home serves GET /. The proposal is selected with ?proposal=<slug>
// (default proposal when absent) and ?page=landing switches to the
// marketing landing variant.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	slug := r.URL.Query().Get("proposal")
	if slug == "" {
		slug = models.DefaultSlug
	}

	// ?edit=true on a proposal link drops an authenticated admin straight
	// into the editor; anyone else just sees the page.
	if r.URL.Query().Get("edit") == "true" {
		if sess := middleware.SessionFromCtx(ctx); sess != nil && sess.TwoFADone {
			http.Redirect(w, r, "/admin/editor?proposal="+slug, http.StatusSeeOther)
			return
		}
	}

	variant := "proposal"
	if r.URL.Query().Get("page") == "landing" {
		variant = "landing"
	}

	if variant == "proposal" {
		p.lifecycle.LogView(ctx, slug)
	}

	key := cache.ProposalKey(slug, variant)
	if cached, ok := p.pageCache.Get(ctx, key); ok {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(cached)
		return
	}

	rec, err := p.proposals.FindBySlug(ctx, slug)
	if err != nil {
		slog.Error("find proposal failed", "error", err, "slug", slug)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if rec == nil || rec.Data == nil {
		p.notFound(w)
		return
	}

	data := &render.PublicData{Slug: slug, Doc: rec.Data}

	var html []byte
	if variant == "landing" {
		html, err = p.renderer.Landing(data)
	} else {
		data.Comments, err = p.comments.ListBySlug(ctx, slug)
		if err != nil {
			slog.Error("list comments failed", "error", err, "slug", slug)
			err = nil
		}
		html, err = p.renderer.Proposal(data)
	}
	if err != nil {
		slog.Error("render proposal failed", "error", err, "slug", slug, "variant", variant)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.pageCache.Set(ctx, key, html)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}

// Accept handles POST /proposal/{slug}/accept: the client approves the
// proposal as presented.
func (p *Public) Accept(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	_, err := p.lifecycle.UpdateStatus(r.Context(), slug, models.StatusAccepted)
	switch {
	case errors.Is(err, lifecycle.ErrNotFound):
		p.notFound(w)
		return
	case errors.Is(err, lifecycle.ErrInvalidTransition):
		// Already settled; showing the current page is the honest answer.
	case err != nil:
		slog.Error("accept failed", "error", err, "slug", slug)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.pageCache.InvalidateProposal(r.Context(), slug)
	http.Redirect(w, r, "/?proposal="+slug, http.StatusSeeOther)
}

// RequestChanges handles POST /proposal/{slug}/request-changes: stores
// the client's comment and moves the proposal to Changes Requested.
func (p *Public) RequestChanges(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	author := r.FormValue("author")
	text := r.FormValue("comment")

	_, err := p.lifecycle.AddComment(r.Context(), slug, author, text)
	switch {
	case errors.Is(err, lifecycle.ErrNotFound):
		p.notFound(w)
		return
	case errors.Is(err, lifecycle.ErrEmptyField):
		http.Redirect(w, r, "/?proposal="+slug, http.StatusSeeOther)
		return
	case errors.Is(err, lifecycle.ErrInvalidTransition):
		// Already accepted; nothing was stored. Showing the current page
		// is the honest answer.
		http.Redirect(w, r, "/?proposal="+slug, http.StatusSeeOther)
		return
	case err != nil:
		slog.Error("request changes failed", "error", err, "slug", slug)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.pageCache.InvalidateProposal(r.Context(), slug)
	http.Redirect(w, r, "/?proposal="+slug, http.StatusSeeOther)
}

// PDF handles GET /proposal/{slug}/pdf: renders the proposal page and
// prints it through headless Chromium. ?orientation=landscape flips the
// page. Responds 503 when Chromium is not installed on the host.
func (p *Public) PDF(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")

	if !export.Available() {
		http.Error(w, "PDF export is not available on this server", http.StatusServiceUnavailable)
		return
	}

	rec, err := p.proposals.FindBySlug(ctx, slug)
	if err != nil {
		slog.Error("find proposal failed", "error", err, "slug", slug)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if rec == nil || rec.Data == nil {
		p.notFound(w)
		return
	}

	html, err := p.renderer.Proposal(&render.PublicData{Slug: slug, Doc: rec.Data})
	if err != nil {
		slog.Error("render for pdf failed", "error", err, "slug", slug)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	orient := export.Portrait
	if r.URL.Query().Get("orientation") == "landscape" {
		orient = export.Landscape
	}

	result, err := export.FromHTML(ctx, html, slug, orient)
	if err != nil {
		slog.Error("pdf export failed", "error", err, "slug", slug)
		http.Error(w, "PDF generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", result.MimeType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	w.Write(result.Data)
}

// notFound serves a minimal branded 404 for public URLs.
func (p *Public) notFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`<!DOCTYPE html>
<html lang="es"><head><meta charset="utf-8"><title>No encontrada</title></head>
<body style="font-family:sans-serif;text-align:center;padding:4rem">
<h1>Propuesta no encontrada</h1>
<p>El enlace que has abierto ya no existe. Ponte en contacto con nosotros si crees que es un error.</p>
</body></html>`))
}
