// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"
)

// ViewStore handles the append-only proposal view analytics table.
type ViewStore struct {
	db *sql.DB
}

// NewViewStore creates a new ViewStore with the given connection.
func NewViewStore(db *sql.DB) *ViewStore {
	return &ViewStore{db: db}
}

// Log appends one view record for the proposal at slug.
func (s *ViewStore) Log(ctx context.Context, slug string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO proposal_views (proposal_slug) VALUES ($1)
	`, slug)
	if err != nil {
		return fmt.Errorf("log view: %w", err)
	}
	return nil
}

// CountBySlug returns how many times the proposal at slug has been viewed.
func (s *ViewStore) CountBySlug(ctx context.Context, slug string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM proposal_views WHERE proposal_slug = $1
	`, slug).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count views: %w", err)
	}
	return count, nil
}
