// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package draft

import "proposalpress/internal/models"

// List paths the editor can append to or remove from. The set is closed:
// each path has a fixed item template used to seed new elements.
const (
	ListProposalCards = "proposal.cards"
	ListServiceCards  = "services.cards"
	ListFeatureItems  = "features.items"
	ListIncludedItems = "included.items"
)

// KnownListPath reports whether the editor may add/remove items at path.
func KnownListPath(path string) bool {
	switch path {
	case ListProposalCards, ListServiceCards, ListFeatureItems, ListIncludedItems:
		return true
	}
	return false
}

// AddListItem appends a fresh template item to the list at listPath in the
// draft. Unknown list paths and an absent draft are no-ops. The new item
// is always a fresh value, never shared with another document.
func (e *Engine) AddListItem(listPath string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.draft == nil {
		return
	}

	next := e.draft.Clone()
	switch listPath {
	case ListProposalCards:
		next.Proposal.Cards = append(next.Proposal.Cards, models.ProposalCard{
			Title:       "New Proposal",
			Description: "Details...",
		})
	case ListServiceCards:
		next.Services.Cards = append(next.Services.Cards, models.ServiceCard{
			Enabled: true,
			Icon:    models.IconSparkles,
			Title:   "New Service",
			Items:   []string{},
		})
	case ListFeatureItems:
		next.Features.Items = append(next.Features.Items, models.FeatureItem{
			Icon:        models.IconSparkles,
			Title:       "New Feature",
			Description: "Details...",
		})
	case ListIncludedItems:
		next.Included.Items = append(next.Included.Items, models.IncludedItem{
			Icon: models.IconCheckCircle,
			Text: "New included service",
		})
	default:
		return
	}
	e.draft = next
}

// RemoveListItem deletes the element at index from the list at listPath in
// the draft, preserving the order of the remaining elements. Unknown list
// paths, an absent draft, and out-of-range indexes are no-ops.
func (e *Engine) RemoveListItem(listPath string, index int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.draft == nil {
		return
	}

	next := e.draft.Clone()
	switch listPath {
	case ListProposalCards:
		if index < 0 || index >= len(next.Proposal.Cards) {
			return
		}
		next.Proposal.Cards = append(next.Proposal.Cards[:index], next.Proposal.Cards[index+1:]...)
	case ListServiceCards:
		if index < 0 || index >= len(next.Services.Cards) {
			return
		}
		next.Services.Cards = append(next.Services.Cards[:index], next.Services.Cards[index+1:]...)
	case ListFeatureItems:
		if index < 0 || index >= len(next.Features.Items) {
			return
		}
		next.Features.Items = append(next.Features.Items[:index], next.Features.Items[index+1:]...)
	case ListIncludedItems:
		if index < 0 || index >= len(next.Included.Items) {
			return
		}
		next.Included.Items = append(next.Included.Items[:index], next.Included.Items[index+1:]...)
	default:
		return
	}
	e.draft = next
}
