// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"proposalpress/internal/models"
)

// CommentStore handles the append-only client comments table.
type CommentStore struct {
	db *sql.DB
}

// NewCommentStore creates a new CommentStore with the given connection.
func NewCommentStore(db *sql.DB) *CommentStore {
	return &CommentStore{db: db}
}

// Add appends a comment. The generated ID and timestamp are written back
// into c.
func (s *CommentStore) Add(ctx context.Context, c *models.Comment) error {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO comments (proposal_slug, author_name, comment_text)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, c.ProposalSlug, c.AuthorName, c.CommentText).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("add comment: %w", err)
	}
	return nil
}

// ListBySlug returns all comments for a proposal, newest first.
func (s *CommentStore) ListBySlug(ctx context.Context, slug string) ([]models.Comment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, proposal_slug, author_name, comment_text, created_at
		FROM comments WHERE proposal_slug = $1
		ORDER BY created_at DESC
	`, slug)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.ProposalSlug, &c.AuthorName, &c.CommentText, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
