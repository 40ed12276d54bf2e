package database

import (
	"testing"

	"github.com/pressly/goose/v3"

	"proposalpress/internal/models"
)

func TestSeed(t *testing.T) {
	db, err := Connect(testDSN())
	if err != nil {
		t.Skipf("skipping: DB not available: %v", err)
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	// Seed twice; the second run must be a no-op.
	for i := 0; i < 2; i++ {
		if err := Seed(db, true); err != nil {
			t.Fatalf("seed run %d: %v", i+1, err)
		}
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM proposals WHERE slug = $1`, models.DefaultSlug).Scan(&count); err != nil {
		t.Fatalf("count default proposal: %v", err)
	}
	if count != 1 {
		t.Errorf("default proposal rows = %d, want exactly 1", count)
	}

	if err := db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count == 0 {
		t.Error("expected at least one user after seed")
	}
}

// Seed must never overwrite an edited default document.
func TestSeedPreservesExistingDefault(t *testing.T) {
	db, err := Connect(testDSN())
	if err != nil {
		t.Skipf("skipping: DB not available: %v", err)
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	if err := Seed(db, false); err != nil {
		t.Fatalf("seed: %v", err)
	}

	marker := `{"hero": {"title": "edited-by-test"}}`
	if _, err := db.Exec(`UPDATE proposals SET data = $1::jsonb WHERE slug = $2`, marker, models.DefaultSlug); err != nil {
		t.Fatalf("mark default row: %v", err)
	}
	t.Cleanup(func() {
		// Restore the stock document for other tests.
		db.Exec(`DELETE FROM proposals WHERE slug = $1`, models.DefaultSlug)
		Seed(db, false)
	})

	if err := Seed(db, false); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	var title string
	err = db.QueryRow(`SELECT data->'hero'->>'title' FROM proposals WHERE slug = $1`, models.DefaultSlug).Scan(&title)
	if err != nil {
		t.Fatalf("read marker: %v", err)
	}
	if title != "edited-by-test" {
		t.Errorf("seed overwrote existing default document, title = %q", title)
	}
}
