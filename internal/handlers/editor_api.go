// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"proposalpress/internal/docpath"
	"proposalpress/internal/draft"
	"proposalpress/internal/models"
	"proposalpress/internal/session"
)

// editorState is the response body shared by all editor API endpoints.
// editor.js re-renders its field list from Draft and flips the unsaved
// indicator from Dirty.
type editorState struct {
	Slug  string                   `json:"slug"`
	Dirty bool                     `json:"dirty"`
	Draft *models.ProposalDocument `json:"draft,omitempty"`
}

// editorRequest is the union of the JSON bodies the editor sends.
type editorRequest struct {
	Proposal string `json:"proposal"`
	Path     string `json:"path"`
	Value    any    `json:"value"`
	Index    int    `json:"index"`
	Confirm  string `json:"confirm"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// engineFor returns the draft engine bound to the caller's session,
// loaded onto the requested proposal. Switching proposals drops any
// unsaved edits of the previous one.
func (a *Admin) engineFor(r *http.Request, slug string) (*draft.Engine, error) {
	if slug == "" {
		slug = models.DefaultSlug
	}
	eng := a.drafts.Engine(session.IDFromRequest(r))
	if eng.Slug() != slug || eng.Persisted() == nil {
		if err := eng.LoadBySlug(r.Context(), slug); err != nil {
			return nil, err
		}
	}
	return eng, nil
}

func decodeEditorRequest(w http.ResponseWriter, r *http.Request) (*editorRequest, bool) {
	var req editorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Malformed request body.")
		return nil, false
	}
	return &req, true
}

func (a *Admin) stateOf(eng *draft.Engine) *editorState {
	return &editorState{Slug: eng.Slug(), Dirty: eng.Dirty(), Draft: eng.Draft()}
}

// APIDocument handles GET /admin/api/document?proposal=<slug>.
func (a *Admin) APIDocument(w http.ResponseWriter, r *http.Request) {
	eng, err := a.engineFor(r, r.URL.Query().Get("proposal"))
	if err != nil {
		a.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a.stateOf(eng))
}

// APIEdit handles POST /admin/api/edit: derives a fresh draft from the
// persisted copy so edits have something to land on. A clean draft is
// re-derived on every open so it tracks the persisted copy; a dirty one
// is kept as-is, so unsaved edits survive a page reload.
func (a *Admin) APIEdit(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeEditorRequest(w, r)
	if !ok {
		return
	}
	eng, err := a.engineFor(r, req.Proposal)
	if err != nil {
		a.writeEngineError(w, err)
		return
	}
	if eng.Draft() == nil || !eng.Dirty() {
		eng.BeginEditing()
	}
	writeJSON(w, http.StatusOK, a.stateOf(eng))
}

// APIMutate handles PATCH /admin/api/document: replaces one field of the
// draft, addressed by its dot path.
func (a *Admin) APIMutate(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeEditorRequest(w, r)
	if !ok {
		return
	}
	eng, err := a.engineFor(r, req.Proposal)
	if err != nil {
		a.writeEngineError(w, err)
		return
	}
	if err := eng.Mutate(req.Path, req.Value); err != nil {
		if errors.Is(err, docpath.ErrBadPath) {
			writeJSONError(w, http.StatusBadRequest, "That field does not exist.")
			return
		}
		slog.Error("mutate failed", "error", err, "path", req.Path)
		writeJSONError(w, http.StatusInternalServerError, "Could not apply the edit.")
		return
	}
	writeJSON(w, http.StatusOK, a.stateOf(eng))
}

// APIItemAdd handles POST /admin/api/items/add.
func (a *Admin) APIItemAdd(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeEditorRequest(w, r)
	if !ok {
		return
	}
	if !draft.KnownListPath(req.Path) {
		writeJSONError(w, http.StatusBadRequest, "Unknown list.")
		return
	}
	eng, err := a.engineFor(r, req.Proposal)
	if err != nil {
		a.writeEngineError(w, err)
		return
	}
	eng.AddListItem(req.Path)
	writeJSON(w, http.StatusOK, a.stateOf(eng))
}

// APIItemRemove handles POST /admin/api/items/remove.
func (a *Admin) APIItemRemove(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeEditorRequest(w, r)
	if !ok {
		return
	}
	if !draft.KnownListPath(req.Path) {
		writeJSONError(w, http.StatusBadRequest, "Unknown list.")
		return
	}
	eng, err := a.engineFor(r, req.Proposal)
	if err != nil {
		a.writeEngineError(w, err)
		return
	}
	eng.RemoveListItem(req.Path, req.Index)
	writeJSON(w, http.StatusOK, a.stateOf(eng))
}

// APISave handles POST /admin/api/save: commits the draft and clears the
// cached public pages of the proposal.
func (a *Admin) APISave(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeEditorRequest(w, r)
	if !ok {
		return
	}
	eng, err := a.engineFor(r, req.Proposal)
	if err != nil {
		a.writeEngineError(w, err)
		return
	}
	if err := eng.SaveChanges(r.Context()); err != nil {
		slog.Error("save failed", "error", err, "slug", eng.Slug())
		writeJSONError(w, http.StatusInternalServerError, "Could not save. Your edits are still here; try again.")
		return
	}
	a.pageCache.InvalidateProposal(r.Context(), eng.Slug())
	writeJSON(w, http.StatusOK, a.stateOf(eng))
}

// APIDiscard handles POST /admin/api/discard: drops unsaved edits.
func (a *Admin) APIDiscard(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeEditorRequest(w, r)
	if !ok {
		return
	}
	eng, err := a.engineFor(r, req.Proposal)
	if err != nil {
		a.writeEngineError(w, err)
		return
	}
	eng.Discard()
	writeJSON(w, http.StatusOK, a.stateOf(eng))
}

// APIReset handles POST /admin/api/reset: overwrites the proposal with
// the default proposal's content. The client must echo the slug back in
// the confirm field.
func (a *Admin) APIReset(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeEditorRequest(w, r)
	if !ok {
		return
	}
	eng, err := a.engineFor(r, req.Proposal)
	if err != nil {
		a.writeEngineError(w, err)
		return
	}
	if err := eng.ResetToDefault(r.Context(), req.Confirm); err != nil {
		switch {
		case errors.Is(err, draft.ErrNotConfirmed):
			writeJSONError(w, http.StatusConflict, "Reset not confirmed.")
		case errors.Is(err, draft.ErrNotFound):
			writeJSONError(w, http.StatusNotFound, "The default proposal is missing.")
		default:
			slog.Error("reset failed", "error", err, "slug", eng.Slug())
			writeJSONError(w, http.StatusInternalServerError, "Could not reset the proposal.")
		}
		return
	}
	a.pageCache.InvalidateProposal(r.Context(), eng.Slug())
	writeJSON(w, http.StatusOK, a.stateOf(eng))
}

// APIComments handles GET /admin/api/comments?proposal=<slug>: the
// client feedback thread, newest first, shown next to the editor.
func (a *Admin) APIComments(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("proposal")
	if slug == "" {
		slug = models.DefaultSlug
	}
	comments, err := a.comments.ListBySlug(r.Context(), slug)
	if err != nil {
		slog.Error("list comments failed", "error", err, "slug", slug)
		writeJSONError(w, http.StatusInternalServerError, "Could not load the feedback thread.")
		return
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"slug": slug, "comments": comments})
}

// writeEngineError maps draft engine load failures to API responses.
func (a *Admin) writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, draft.ErrNotFound):
		writeJSONError(w, http.StatusNotFound, "No proposal with that address.")
	case errors.Is(err, draft.ErrStaleLoad):
		writeJSONError(w, http.StatusConflict, "A newer load is in progress.")
	default:
		slog.Error("engine load failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Could not load the proposal.")
	}
}
