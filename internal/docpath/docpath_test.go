package docpath

import (
	"errors"
	"testing"

	"proposalpress/internal/models"
)

func TestGet(t *testing.T) {
	doc := models.DefaultDocument()

	tests := []struct {
		path string
		want any
	}{
		{"logoUrl", doc.LogoURL},
		{"hero.title", "Promoción 2025"},
		{"hero.clientName", "Politécnico Aragón, promoción"},
		{"proposal.cards.0.title", "Decoración de Entrada: Pista de Carreras"},
		{"services.cards.1.icon", models.IconSparkles},
		{"services.cards.0.enabled", true},
		{"features.items.1.reverse", true},
		{"included.items.4.text", "Equipo de staff para acompañar en el evento"},
		{"theme.primary", "#f59e0b"},
		{"footer.emailLabel", "Email"},
	}
	for _, tt := range tests {
		got, err := Get(doc, tt.path)
		if err != nil {
			t.Errorf("Get(%q) error: %v", tt.path, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Get(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestGet_BadPaths(t *testing.T) {
	doc := models.DefaultDocument()

	paths := []string{
		"",
		"nope",
		"hero.nope",
		"proposal.cards.99.title",
		"proposal.cards.-1.title",
		"proposal.cards.first.title",
		"hero.title.deeper",
	}
	for _, p := range paths {
		if _, err := Get(doc, p); !errors.Is(err, ErrBadPath) {
			t.Errorf("Get(%q) error = %v, want ErrBadPath", p, err)
		}
	}
}

func TestSet_Leaves(t *testing.T) {
	doc := models.DefaultDocument()

	if err := Set(doc, "hero.clientName", "Acme Corp"); err != nil {
		t.Fatalf("set string: %v", err)
	}
	if doc.Hero.ClientName != "Acme Corp" {
		t.Errorf("clientName = %q", doc.Hero.ClientName)
	}

	if err := Set(doc, "services.cards.0.enabled", false); err != nil {
		t.Fatalf("set bool: %v", err)
	}
	if doc.Services.Cards[0].Enabled {
		t.Error("enabled should be false")
	}

	// Icon fields are named string types; a plain string must coerce.
	if err := Set(doc, "included.items.0.icon", "Truck"); err != nil {
		t.Fatalf("set icon: %v", err)
	}
	if doc.Included.Items[0].Icon != models.IconTruck {
		t.Errorf("icon = %q", doc.Included.Items[0].Icon)
	}

	// []any as decoded from a JSON request body.
	if err := Set(doc, "services.cards.0.items", []any{"One", "Two"}); err != nil {
		t.Fatalf("set string slice: %v", err)
	}
	if len(doc.Services.Cards[0].Items) != 2 || doc.Services.Cards[0].Items[1] != "Two" {
		t.Errorf("items = %v", doc.Services.Cards[0].Items)
	}

	if err := Set(doc, "theme.primary", "#112233"); err != nil {
		t.Fatalf("set through pointer: %v", err)
	}
	if doc.Theme.Primary != "#112233" {
		t.Errorf("theme.primary = %q", doc.Theme.Primary)
	}
}

func TestSet_TypeMismatch(t *testing.T) {
	doc := models.DefaultDocument()

	if err := Set(doc, "hero.title", 42); err == nil {
		t.Error("assigning a number to a string field should fail")
	}
	if err := Set(doc, "services.cards.0.enabled", "yes"); err == nil {
		t.Error("assigning a string to a bool field should fail")
	}
}

func TestSet_OutOfRangeIndex(t *testing.T) {
	doc := models.DefaultDocument()
	err := Set(doc, "proposal.cards.5.title", "x")
	if !errors.Is(err, ErrBadPath) {
		t.Errorf("error = %v, want ErrBadPath", err)
	}
	// The document must be untouched after a failed set.
	if !doc.Equal(models.DefaultDocument()) {
		t.Error("failed set modified the document")
	}
}

// TestSet_CloneThenSet is the copy-on-write contract: setting into a clone
// leaves every previously captured snapshot unchanged.
func TestSet_CloneThenSet(t *testing.T) {
	original := models.DefaultDocument()
	snapshot := original.Clone()

	edited := original.Clone()
	if err := Set(edited, "proposal.cards.1.description", "rewritten"); err != nil {
		t.Fatal(err)
	}

	if !original.Equal(snapshot) {
		t.Error("editing a clone changed the original")
	}
	if edited.Proposal.Cards[1].Description != "rewritten" {
		t.Error("edit did not apply to the clone")
	}
}
