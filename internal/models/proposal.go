// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the proposal document schema and the records
// persisted around it (proposals, comments, views, users).
package models

import (
	"encoding/json"
	"time"
)

// TemplateName selects which sections a proposal page renders and in what
// arrangement.
type TemplateName string

const (
	TemplateClassic         TemplateName = "classic"
	TemplateMinimalist      TemplateName = "minimalist"
	TemplateServicesFocused TemplateName = "services-focused"
	TemplateCompact         TemplateName = "compact"
	TemplateVisual          TemplateName = "visual"
)

// ValidTemplate reports whether name is one of the known page templates.
func ValidTemplate(name TemplateName) bool {
	switch name {
	case TemplateClassic, TemplateMinimalist, TemplateServicesFocused,
		TemplateCompact, TemplateVisual:
		return true
	}
	return false
}

// ProposalStatus tracks where a proposal sits in the client conversation.
// An empty status means the proposal was never sent.
type ProposalStatus string

const (
	StatusDraft            ProposalStatus = "Draft"
	StatusSent             ProposalStatus = "Sent"
	StatusAccepted         ProposalStatus = "Accepted"
	StatusChangesRequested ProposalStatus = "Changes Requested"
)

// AllowedTransitions maps each status to the statuses it may move to.
// Draft → Sent → {Accepted, Changes Requested}; a proposal with requested
// changes can be re-sent after edits.
var AllowedTransitions = map[ProposalStatus][]ProposalStatus{
	StatusDraft:            {StatusSent},
	StatusSent:             {StatusAccepted, StatusChangesRequested},
	StatusChangesRequested: {StatusSent},
}

// CanTransition reports whether moving from one status to another follows
// the proposal state machine. The empty status behaves like Draft.
func CanTransition(from, to ProposalStatus) bool {
	if from == "" {
		from = StatusDraft
	}
	for _, next := range AllowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Theme holds the accent colors applied to a proposal page. When a document
// carries no theme (or an empty primary color), DefaultTheme is used.
type Theme struct {
	Name                string `json:"name"`
	Primary             string `json:"primary"`
	PrimaryGradientFrom string `json:"primaryGradientFrom"`
	PrimaryGradientTo   string `json:"primaryGradientTo"`
}

// DefaultTheme returns the built-in amber theme.
func DefaultTheme() Theme {
	return Theme{
		Name:                "Lati Amber",
		Primary:             "#f59e0b",
		PrimaryGradientFrom: "#f59e0b",
		PrimaryGradientTo:   "#facc15",
	}
}

// Hero is the opening section of a proposal page.
type Hero struct {
	BackgroundImageURL string `json:"backgroundImageUrl"`
	Subtitle           string `json:"subtitle"`
	Title              string `json:"title"`
	Description        string `json:"description"`
	ClientLabel        string `json:"clientLabel"`
	ClientName         string `json:"clientName"`
	ActivityLabel      string `json:"activityLabel"`
	ActivityName       string `json:"activityName"`
	ThemeLabel         string `json:"themeLabel"`
	ThemeName          string `json:"themeName"`
}

// ProposalCard is one illustrated card in the proposal section.
type ProposalCard struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// ProposalSection groups the main pitch cards.
type ProposalSection struct {
	Title string         `json:"title"`
	Cards []ProposalCard `json:"cards"`
}

// ServiceCard describes one offered service with its bullet items.
// Disabled cards stay in the document but are not rendered.
type ServiceCard struct {
	Enabled  bool     `json:"enabled"`
	Title    string   `json:"title"`
	Icon     IconName `json:"icon"`
	Items    []string `json:"items"`
	ImageURL string   `json:"imageUrl"`
}

// ServicesSection groups the service cards.
type ServicesSection struct {
	Title string        `json:"title"`
	Cards []ServiceCard `json:"cards"`
}

// FeatureItem is one alternating image/text feature row.
type FeatureItem struct {
	Reverse     bool     `json:"reverse"`
	Title       string   `json:"title"`
	Icon        IconName `json:"icon"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
}

// FeaturesSection groups the feature rows.
type FeaturesSection struct {
	Title string        `json:"title"`
	Items []FeatureItem `json:"items"`
}

// IncludedItem is a single line in the "everything included" list.
type IncludedItem struct {
	Icon IconName `json:"icon"`
	Text string   `json:"text"`
}

// IncludedSection holds the included-services list and the cost card with
// the client-facing call to action.
type IncludedSection struct {
	Title           string         `json:"title"`
	ListTitle       string         `json:"listTitle"`
	Items           []IncludedItem `json:"items"`
	CostTitle       string         `json:"costTitle"`
	Cost            string         `json:"cost"`
	CostDescription string         `json:"costDescription"`
	CTAButtonText   string         `json:"ctaButtonText"`
}

// Footer holds contact details. Copyright may contain a {year} token that
// is substituted at render time; the stored value keeps the token.
type Footer struct {
	LogoAlt      string `json:"logoAlt"`
	PhoneLabel   string `json:"phoneLabel"`
	PhoneNumber  string `json:"phoneNumber"`
	EmailLabel   string `json:"emailLabel"`
	EmailAddress string `json:"emailAddress"`
	AddressLabel string `json:"addressLabel"`
	Address      string `json:"address"`
	Copyright    string `json:"copyright"`
}

// ProposalDocument is the unit of persistence: the full content of one
// proposal page, stored as a JSONB blob on the proposals row. Array order
// is visually significant and must round-trip unchanged.
type ProposalDocument struct {
	LogoURL  string          `json:"logoUrl"`
	Template TemplateName    `json:"template,omitempty"`
	Theme    *Theme          `json:"theme,omitempty"`
	Status   ProposalStatus  `json:"status,omitempty"`
	Hero     Hero            `json:"hero"`
	Proposal ProposalSection `json:"proposal"`
	Services ServicesSection `json:"services"`
	Features FeaturesSection `json:"features"`
	Included IncludedSection `json:"included"`
	Footer   Footer          `json:"footer"`
}

// Clone returns a deep copy of the document. The copy shares no slices or
// pointers with the original, so edits to one never show through the other.
func (d *ProposalDocument) Clone() *ProposalDocument {
	if d == nil {
		return nil
	}
	out := *d
	if d.Theme != nil {
		theme := *d.Theme
		out.Theme = &theme
	}
	out.Proposal.Cards = append([]ProposalCard(nil), d.Proposal.Cards...)
	out.Services.Cards = make([]ServiceCard, len(d.Services.Cards))
	for i, c := range d.Services.Cards {
		c.Items = append([]string(nil), c.Items...)
		out.Services.Cards[i] = c
	}
	out.Features.Items = append([]FeatureItem(nil), d.Features.Items...)
	out.Included.Items = append([]IncludedItem(nil), d.Included.Items...)
	return &out
}

// EffectiveTheme returns the document's theme, falling back to the default
// when the theme is absent or has no primary color.
func (d *ProposalDocument) EffectiveTheme() Theme {
	if d.Theme != nil && d.Theme.Primary != "" {
		return *d.Theme
	}
	return DefaultTheme()
}

// EffectiveTemplate returns the document's template, falling back to
// classic when absent or unrecognized.
func (d *ProposalDocument) EffectiveTemplate() TemplateName {
	if ValidTemplate(d.Template) {
		return d.Template
	}
	return TemplateClassic
}

// Normalize fills defaults in place: unknown template names become classic,
// a missing or colorless theme becomes the default theme, a missing status
// becomes Draft, and nil lists become empty so appends behave uniformly.
func (d *ProposalDocument) Normalize() {
	d.Template = d.EffectiveTemplate()
	if d.Theme == nil || d.Theme.Primary == "" {
		theme := DefaultTheme()
		d.Theme = &theme
	}
	if d.Status == "" {
		d.Status = StatusDraft
	}
	if d.Proposal.Cards == nil {
		d.Proposal.Cards = []ProposalCard{}
	}
	if d.Services.Cards == nil {
		d.Services.Cards = []ServiceCard{}
	}
	if d.Features.Items == nil {
		d.Features.Items = []FeatureItem{}
	}
	if d.Included.Items == nil {
		d.Included.Items = []IncludedItem{}
	}
}

// Equal reports whether two documents are structurally identical. This is
// the dirty check: a draft is dirty exactly when it is not Equal to the
// persisted copy. Comparison goes through JSON so that nil and empty
// slices compare the way they persist.
func (d *ProposalDocument) Equal(other *ProposalDocument) bool {
	if d == nil || other == nil {
		return d == other
	}
	a, err := json.Marshal(d)
	if err != nil {
		return false
	}
	b, err := json.Marshal(other)
	if err != nil {
		return false
	}
	return string(a) == string(b)
}

// Proposal is one row of the proposals table.
type Proposal struct {
	Slug      string            `json:"slug"`
	Data      *ProposalDocument `json:"data"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// DefaultSlug is the distinguished proposal that always exists. It is the
// template source for new proposals, the fallback when no slug is given,
// and can never be deleted.
const DefaultSlug = "default"

// ProposalInfo is the listing projection: slug plus creation time.
type ProposalInfo struct {
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}
