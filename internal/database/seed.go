package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"boostkit/internal/builder"
	"boostkit/internal/catalog"
)

// Seed populates the database with initial development data.
// It creates a default account if none exists, plus one sample draft page
// so the dashboard has something to show. The account will be prompted to
// set up 2FA on first login (totp_enabled = false).
func Seed(db *sql.DB) error {
	// Check if any users exist already.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	// Hash the default password.
	hash, err := bcrypt.GenerateFromPassword([]byte("boostkit"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	// Insert the default account on the pro plan so every template,
	// premium included, is usable out of the box. 2FA is not enabled —
	// they must set it up on first login.
	var userID string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, display_name, plan, totp_enabled)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, "demo@boostkit.local", string(hash), "Demo", "pro", false).Scan(&userID)
	if err != nil {
		return fmt.Errorf("seed insert user: %w", err)
	}

	// One sample draft page generated from the default template.
	t, _ := catalog.TemplateByID("startup-modern")
	html := builder.Generate(t, builder.NewDraft(t))
	_, err = db.Exec(`
		INSERT INTO landing_pages (user_id, page_title, page_html, template_id)
		VALUES ($1, $2, $3, $4)
	`, userID, "My First Landing Page", html, t.ID)
	if err != nil {
		return fmt.Errorf("seed insert sample page: %w", err)
	}

	slog.Info("database seeded with default account",
		"email", "demo@boostkit.local",
		"password", "boostkit",
	)

	return nil
}
