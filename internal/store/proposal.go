// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides database access methods for all ProposalPress
// entities. Each store struct wraps a *sql.DB and exposes typed query
// methods. Documents are stored as JSONB in the proposals table.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"proposalpress/internal/models"
)

// ErrDuplicate is returned by Insert when the slug already exists. It maps
// the Postgres unique-violation error so callers don't need a pre-insert
// existence check (which would race).
var ErrDuplicate = errors.New("store: duplicate slug")

// uniqueViolation is the Postgres error code for unique constraint breaches.
const uniqueViolation = "23505"

// ProposalStore handles all proposal-row database operations.
type ProposalStore struct {
	db *sql.DB
}

// NewProposalStore creates a new ProposalStore with the given connection.
func NewProposalStore(db *sql.DB) *ProposalStore {
	return &ProposalStore{db: db}
}

// FindBySlug retrieves a proposal by slug. Returns nil if not found.
func (s *ProposalStore) FindBySlug(ctx context.Context, slug string) (*models.Proposal, error) {
	p := &models.Proposal{}
	var raw []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT slug, data, created_at, updated_at
		FROM proposals WHERE slug = $1
	`, slug).Scan(&p.Slug, &raw, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find proposal by slug: %w", err)
	}

	p.Data = &models.ProposalDocument{}
	if err := json.Unmarshal(raw, p.Data); err != nil {
		return nil, fmt.Errorf("decode proposal %q: %w", slug, err)
	}
	return p, nil
}

// List returns every proposal's slug and creation time, newest first.
func (s *ProposalStore) List(ctx context.Context) ([]models.ProposalInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT slug, created_at FROM proposals ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list proposals: %w", err)
	}
	defer rows.Close()

	var infos []models.ProposalInfo
	for rows.Next() {
		var info models.ProposalInfo
		if err := rows.Scan(&info.Slug, &info.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan proposal: %w", err)
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// Insert creates a new proposal row. A slug collision surfaces as
// ErrDuplicate; the unique constraint is the only existence check, so
// concurrent inserts of the same slug cannot both succeed.
func (s *ProposalStore) Insert(ctx context.Context, p *models.Proposal) error {
	raw, err := json.Marshal(p.Data)
	if err != nil {
		return fmt.Errorf("encode proposal %q: %w", p.Slug, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO proposals (slug, data) VALUES ($1, $2)
	`, p.Slug, raw)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %q", ErrDuplicate, p.Slug)
	}
	if err != nil {
		return fmt.Errorf("insert proposal %q: %w", p.Slug, err)
	}
	return nil
}

// UpdateData replaces the stored document of the row at slug in a single
// statement. Last writer wins; there is no version check.
func (s *ProposalStore) UpdateData(ctx context.Context, slug string, doc *models.ProposalDocument) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode proposal %q: %w", slug, err)
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE proposals SET data = $1, updated_at = NOW() WHERE slug = $2
	`, raw, slug)
	if err != nil {
		return fmt.Errorf("update proposal %q: %w", slug, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("update proposal %q: no such row", slug)
	}
	return nil
}

// UpdateStatus overwrites only the status field inside the stored
// document. A single-field commit used by the status machine; it never
// touches the rest of the document, so a concurrent content save cannot
// be clobbered by a status change.
func (s *ProposalStore) UpdateStatus(ctx context.Context, slug string, status models.ProposalStatus) error {
	statusJSON, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("encode status: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE proposals
		SET data = jsonb_set(data, '{status}', $1::jsonb), updated_at = NOW()
		WHERE slug = $2
	`, statusJSON, slug)
	if err != nil {
		return fmt.Errorf("update status %q: %w", slug, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("update status %q: no such row", slug)
	}
	return nil
}

// Delete removes a proposal row by slug. Removing an absent slug is not
// an error. The default proposal is refused here as well as in the
// lifecycle layer; the store is the last line of defense.
func (s *ProposalStore) Delete(ctx context.Context, slug string) error {
	if slug == models.DefaultSlug {
		return fmt.Errorf("delete proposal: %q is protected", models.DefaultSlug)
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM proposals WHERE slug = $1`, slug)
	if err != nil {
		return fmt.Errorf("delete proposal %q: %w", slug, err)
	}
	return nil
}

// Count returns the number of proposals. Used by the dashboard.
func (s *ProposalStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM proposals`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count proposals: %w", err)
	}
	return count, nil
}
