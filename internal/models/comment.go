// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a change request left by a client on a proposal page.
// Comments are append-only and scoped to a proposal by slug.
type Comment struct {
	ID           uuid.UUID `json:"id"`
	ProposalSlug string    `json:"proposal_slug"`
	AuthorName   string    `json:"author_name"`
	CommentText  string    `json:"comment_text"`
	CreatedAt    time.Time `json:"created_at"`
}

// ProposalView is one analytics record: somebody opened a proposal page.
// View logging is best-effort; losing rows is acceptable.
type ProposalView struct {
	ID           uuid.UUID `json:"id"`
	ProposalSlug string    `json:"proposal_slug"`
	ViewedAt     time.Time `json:"viewed_at"`
}
