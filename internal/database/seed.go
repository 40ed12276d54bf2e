package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"proposalpress/internal/models"
)

// Seed ensures the records the application cannot run without: the
// "default" proposal (template source for clones and the fallback page)
// and, in development, an initial admin user. Safe to run on every start.
func Seed(db *sql.DB, dev bool) error {
	if err := seedDefaultProposal(db); err != nil {
		return err
	}
	if dev {
		if err := seedAdminUser(db); err != nil {
			return err
		}
	}
	return nil
}

// seedDefaultProposal inserts the built-in document under the "default"
// slug if that row is missing. Existing content is never overwritten.
func seedDefaultProposal(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM proposals WHERE slug = $1`, models.DefaultSlug).Scan(&count); err != nil {
		return fmt.Errorf("seed check default proposal: %w", err)
	}
	if count > 0 {
		return nil
	}

	raw, err := json.Marshal(models.DefaultDocument())
	if err != nil {
		return fmt.Errorf("seed encode default proposal: %w", err)
	}
	if _, err := db.Exec(`INSERT INTO proposals (slug, data) VALUES ($1, $2)`, models.DefaultSlug, raw); err != nil {
		return fmt.Errorf("seed insert default proposal: %w", err)
	}

	slog.Info("database seeded with default proposal", "slug", models.DefaultSlug)
	return nil
}

// seedAdminUser creates a development admin if no users exist. The admin
// is prompted to set up 2FA on first login (totp_enabled = false).
func seedAdminUser(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO users (email, password_hash, display_name, role, totp_enabled)
		VALUES ($1, $2, $3, $4, $5)
	`, "admin@proposalpress.local", string(hash), "Admin", models.RoleAdmin, false)
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	slog.Info("database seeded with default admin user",
		"email", "admin@proposalpress.local",
		"password", "admin",
	)
	return nil
}
