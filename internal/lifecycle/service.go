// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package lifecycle implements the store-mutating proposal operations that
// live outside the draft/save cycle: creating and deleting proposals,
// listing them, moving them through the status machine, client comments,
// and best-effort view logging.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"proposalpress/internal/models"
	"proposalpress/internal/slug"
	"proposalpress/internal/store"
)

var (
	// ErrInvalidName means the proposal name produced an empty slug.
	ErrInvalidName = errors.New("lifecycle: name produces an empty slug")

	// ErrDuplicateSlug means a proposal with the derived slug already exists.
	ErrDuplicateSlug = errors.New("lifecycle: slug already exists")

	// ErrProtectedRecord guards the default proposal against deletion.
	ErrProtectedRecord = errors.New("lifecycle: the default proposal cannot be deleted")

	// ErrEmptyField means a required comment field was blank.
	ErrEmptyField = errors.New("lifecycle: author and comment text are required")

	// ErrNotFound means the addressed proposal has no row in the store.
	ErrNotFound = errors.New("lifecycle: proposal not found")

	// ErrInvalidTransition means the requested status change is not a legal
	// move in the proposal state machine.
	ErrInvalidTransition = errors.New("lifecycle: status transition not allowed")
)

// ProposalStore is the slice of the proposal store the service needs.
type ProposalStore interface {
	FindBySlug(ctx context.Context, slug string) (*models.Proposal, error)
	List(ctx context.Context) ([]models.ProposalInfo, error)
	Insert(ctx context.Context, p *models.Proposal) error
	UpdateStatus(ctx context.Context, slug string, status models.ProposalStatus) error
	Delete(ctx context.Context, slug string) error
}

// CommentStore appends client comments.
type CommentStore interface {
	Add(ctx context.Context, c *models.Comment) error
}

// ViewStore appends view-analytics rows.
type ViewStore interface {
	Log(ctx context.Context, slug string) error
}

// Service carries out proposal lifecycle operations. One instance serves
// the whole process.
type Service struct {
	proposals ProposalStore
	comments  CommentStore
	views     ViewStore

	// viewsDisabled flips to true on the first view-logging failure and
	// stays true for the rest of the process: analytics must never retry
	// per-view or leak errors into page rendering.
	viewsDisabled atomic.Bool
}

// NewService creates a lifecycle service over the given stores.
func NewService(proposals ProposalStore, comments CommentStore, views ViewStore) *Service {
	return &Service{proposals: proposals, comments: comments, views: views}
}

// CreateProposal clones the default proposal's content into a new row
// whose slug derives from name, with hero.clientName set to name. Returns
// the new slug. Uniqueness rides on the store's slug constraint, so two
// concurrent creations with the same name cannot both succeed: the loser
// gets ErrDuplicateSlug.
func (s *Service) CreateProposal(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	newSlug := slug.Generate(name)
	if newSlug == "" {
		return "", ErrInvalidName
	}

	tmpl, err := s.proposals.FindBySlug(ctx, models.DefaultSlug)
	if err != nil {
		return "", fmt.Errorf("lifecycle: fetch template: %w", err)
	}
	if tmpl == nil || tmpl.Data == nil {
		return "", fmt.Errorf("%w: %q", ErrNotFound, models.DefaultSlug)
	}

	doc := tmpl.Data.Clone()
	doc.Hero.ClientName = name
	doc.Status = models.StatusDraft
	doc.Normalize()

	err = s.proposals.Insert(ctx, &models.Proposal{Slug: newSlug, Data: doc})
	if errors.Is(err, store.ErrDuplicate) {
		return "", fmt.Errorf("%w: %q", ErrDuplicateSlug, newSlug)
	}
	if err != nil {
		return "", fmt.Errorf("lifecycle: create %q: %w", newSlug, err)
	}

	slog.Info("proposal created", "slug", newSlug, "client", name)
	return newSlug, nil
}

// DeleteProposal removes the proposal at slug. The default proposal is
// protected. Deleting a slug that does not exist is a success: delete is
// idempotent, so a double-submitted form never surfaces an error.
func (s *Service) DeleteProposal(ctx context.Context, target string) error {
	if target == models.DefaultSlug {
		return ErrProtectedRecord
	}
	if err := s.proposals.Delete(ctx, target); err != nil {
		return fmt.Errorf("lifecycle: delete %q: %w", target, err)
	}
	slog.Info("proposal deleted", "slug", target)
	return nil
}

// ListProposals returns every proposal's slug and creation time, newest
// first.
func (s *Service) ListProposals(ctx context.Context) ([]models.ProposalInfo, error) {
	infos, err := s.proposals.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("lifecycle: list: %w", err)
	}
	return infos, nil
}

// UpdateStatus commits a status change for the proposal at slug directly
// to the store, bypassing the draft/dirty mechanism, and returns the
// updated document. The change must follow the state machine
// Draft → Sent → {Accepted, Changes Requested} → (re-)Sent; a client
// acting on a proposal that was never explicitly marked Sent routes
// through Sent implicitly, since the client having it open means it was
// delivered.
func (s *Service) UpdateStatus(ctx context.Context, target string, status models.ProposalStatus) (*models.ProposalDocument, error) {
	rec, err := s.proposals.FindBySlug(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("lifecycle: fetch %q: %w", target, err)
	}
	if rec == nil || rec.Data == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, target)
	}

	current := rec.Data.Status
	if err := checkTransition(current, status); err != nil {
		return nil, err
	}

	if err := s.proposals.UpdateStatus(ctx, target, status); err != nil {
		return nil, fmt.Errorf("lifecycle: update status %q: %w", target, err)
	}

	doc := rec.Data.Clone()
	doc.Status = status
	slog.Info("proposal status changed", "slug", target, "from", current, "to", status)
	return doc, nil
}

// checkTransition validates a status commit against the state machine,
// allowing the implicit Draft → Sent → status hop for client actions on
// a proposal that was never explicitly marked Sent (the client having it
// open means it was delivered).
func checkTransition(current, next models.ProposalStatus) error {
	if models.CanTransition(current, next) {
		return nil
	}
	if models.CanTransition(current, models.StatusSent) &&
		models.CanTransition(models.StatusSent, next) {
		return nil
	}
	return fmt.Errorf("%w: %q → %q", ErrInvalidTransition, current, next)
}

// AddComment appends a client change request to the proposal at slug and
// moves its status to Changes Requested — the named trigger for that
// transition. Validation runs before anything is written: blank fields,
// a missing proposal, and a proposal whose status cannot move to Changes
// Requested (already Accepted) are all rejected with no comment stored.
func (s *Service) AddComment(ctx context.Context, target, author, text string) (*models.ProposalDocument, error) {
	if strings.TrimSpace(author) == "" || strings.TrimSpace(text) == "" {
		return nil, ErrEmptyField
	}

	rec, err := s.proposals.FindBySlug(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("lifecycle: fetch %q: %w", target, err)
	}
	if rec == nil || rec.Data == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, target)
	}
	if err := checkTransition(rec.Data.Status, models.StatusChangesRequested); err != nil {
		return nil, err
	}

	if err := s.comments.Add(ctx, &models.Comment{
		ProposalSlug: target,
		AuthorName:   author,
		CommentText:  text,
	}); err != nil {
		return nil, fmt.Errorf("lifecycle: add comment: %w", err)
	}

	return s.UpdateStatus(ctx, target, models.StatusChangesRequested)
}

// LogView records that somebody opened the proposal at slug. Best-effort:
// the first failure (missing table, permissions, outage) disables view
// logging for the rest of the process instead of failing page loads or
// retrying per view.
func (s *Service) LogView(ctx context.Context, target string) {
	if s.viewsDisabled.Load() {
		return
	}
	if err := s.views.Log(ctx, target); err != nil {
		s.viewsDisabled.Store(true)
		slog.Warn("view logging disabled for this run", "slug", target, "error", err)
	}
}

// ViewLoggingEnabled reports whether view analytics are still being
// recorded. Shown on the dashboard.
func (s *Service) ViewLoggingEnabled() bool {
	return !s.viewsDisabled.Load()
}
