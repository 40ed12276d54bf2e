// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package draft implements the editing engine behind the proposal editor.
// An Engine holds two copies of the active proposal document: the persisted
// copy mirroring the database row, and the draft copy the editor mutates.
// Dirtiness is never stored; it is derived from the two copies on every
// observation. Saves are all-or-nothing: a failed write leaves both copies
// untouched so no edit is ever lost to a transport error.
//
// One Engine serves one admin session. All methods are safe for concurrent
// use; saves serialize on the engine mutex.
package draft

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"proposalpress/internal/docpath"
	"proposalpress/internal/models"
)

var (
	// ErrNotFound means the requested slug has no row in the store.
	ErrNotFound = errors.New("draft: proposal not found")

	// ErrStaleLoad means a newer LoadBySlug superseded this one while its
	// store fetch was in flight; its response was dropped.
	ErrStaleLoad = errors.New("draft: load superseded by a newer one")

	// ErrNoDocument means an operation needs a loaded document and none is
	// present (load failed or never happened).
	ErrNoDocument = errors.New("draft: no document loaded")

	// ErrNotConfirmed means a destructive operation was called without its
	// confirmation value.
	ErrNotConfirmed = errors.New("draft: destructive operation not confirmed")
)

// Store is the slice of the proposal store the engine needs. The concrete
// implementation lives in internal/store; tests substitute fakes.
type Store interface {
	// FindBySlug returns the proposal row, or (nil, nil) when absent.
	FindBySlug(ctx context.Context, slug string) (*models.Proposal, error)
	// UpdateData atomically replaces the document of the row at slug.
	UpdateData(ctx context.Context, slug string, doc *models.ProposalDocument) error
}

// Engine is the draft/publish state machine for one editing session.
type Engine struct {
	mu    sync.Mutex
	store Store

	slug      string
	persisted *models.ProposalDocument
	draft     *models.ProposalDocument

	// loadGen increments on every LoadBySlug so a late-arriving response
	// for an older slug can be recognized and dropped.
	loadGen uint64
}

// NewEngine creates an engine bound to the given store. No document is
// loaded yet; call LoadBySlug first.
func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

// Slug returns the slug of the currently active proposal.
func (e *Engine) Slug() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.slug
}

// Dirty reports whether the draft differs from the persisted copy. False
// whenever either copy is absent.
func (e *Engine) Dirty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dirtyLocked()
}

func (e *Engine) dirtyLocked() bool {
	return e.persisted != nil && e.draft != nil && !e.persisted.Equal(e.draft)
}

// Persisted returns a copy of the last persisted document, or nil.
func (e *Engine) Persisted() *models.ProposalDocument {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.persisted.Clone()
}

// Draft returns a copy of the working document, or nil.
func (e *Engine) Draft() *models.ProposalDocument {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft.Clone()
}

// LoadBySlug fetches the proposal at slug and makes it the active document,
// replacing any unsaved draft. Callers gate this behind a confirmation when
// Dirty() was true for the previous slug.
//
// The fetch runs outside the engine lock. If another LoadBySlug starts
// before this one's response lands, the late response is discarded and
// ErrStaleLoad returned, so the engine always reflects the newest request.
// On not-found the active document becomes absent and ErrNotFound is
// returned for the caller to surface.
func (e *Engine) LoadBySlug(ctx context.Context, slug string) error {
	e.mu.Lock()
	e.loadGen++
	gen := e.loadGen
	e.mu.Unlock()

	rec, err := e.store.FindBySlug(ctx, slug)

	e.mu.Lock()
	defer e.mu.Unlock()
	if gen != e.loadGen {
		return ErrStaleLoad
	}

	e.slug = slug
	if err != nil {
		e.persisted = nil
		e.draft = nil
		return fmt.Errorf("draft: load %q: %w", slug, err)
	}
	if rec == nil || rec.Data == nil {
		e.persisted = nil
		e.draft = nil
		return fmt.Errorf("%w: %q", ErrNotFound, slug)
	}

	doc := rec.Data.Clone()
	doc.Normalize()
	e.persisted = doc
	e.draft = doc.Clone()
	return nil
}

// BeginEditing re-derives the draft from the persisted copy. Idempotent;
// called when the editor surface opens so the draft reflects the latest
// persisted state.
func (e *Engine) BeginEditing() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft = e.persisted.Clone()
}

// Mutate replaces the field addressed by path in the draft with value.
// The previous draft value is never mutated in place: the new draft is a
// fresh document, so snapshots handed out earlier stay intact. A missing
// draft is a silent no-op; a bad path is reported to the caller.
func (e *Engine) Mutate(path string, value any) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.draft == nil {
		return nil
	}

	next := e.draft.Clone()
	if err := docpath.Set(next, path, value); err != nil {
		return err
	}
	e.draft = next
	return nil
}

// Discard throws away all unsaved edits, re-deriving the draft from the
// persisted copy. Valid with no document loaded (draft stays absent).
func (e *Engine) Discard() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft = e.persisted.Clone()
}

// SaveChanges writes the draft to the store and, on success, promotes it
// to the persisted copy. A clean engine returns immediately without a
// store write. On store failure both copies are left exactly as they were.
// The engine lock is held across the write, so concurrent saves serialize
// and can never interleave stale data.
func (e *Engine) SaveChanges(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.dirtyLocked() {
		return nil
	}

	if err := e.store.UpdateData(ctx, e.slug, e.draft); err != nil {
		return fmt.Errorf("draft: save %q: %w", e.slug, err)
	}
	e.persisted = e.draft.Clone()
	return nil
}

// ResetToDefault overwrites the active proposal's stored document with the
// default proposal's content. Destructive and not undoable, so the caller
// must pass the active slug back as confirmation. Resetting the default
// proposal to itself is valid.
func (e *Engine) ResetToDefault(ctx context.Context, confirmSlug string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.slug == "" || e.persisted == nil {
		return ErrNoDocument
	}
	if confirmSlug != e.slug {
		return ErrNotConfirmed
	}

	rec, err := e.store.FindBySlug(ctx, models.DefaultSlug)
	if err != nil {
		return fmt.Errorf("draft: fetch default: %w", err)
	}
	if rec == nil || rec.Data == nil {
		return fmt.Errorf("%w: %q", ErrNotFound, models.DefaultSlug)
	}

	doc := rec.Data.Clone()
	doc.Normalize()
	if err := e.store.UpdateData(ctx, e.slug, doc); err != nil {
		return fmt.Errorf("draft: reset %q: %w", e.slug, err)
	}

	e.persisted = doc
	if e.draft != nil {
		e.draft = doc.Clone()
	}
	return nil
}

// SetPersisted replaces the in-memory persisted copy. Used by lifecycle
// operations that commit directly to the store (status updates) so the
// engine's view stays in sync without a reload. The draft keeps any
// unsaved edits but follows the committed status, which lives outside
// the draft cycle entirely.
func (e *Engine) SetPersisted(doc *models.ProposalDocument) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.persisted = doc.Clone()
	if e.draft != nil {
		e.draft.Status = doc.Status
	}
}
