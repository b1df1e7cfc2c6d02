package seed

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin inserts the back-office account used by the admin order
// listing. Safe to run on every boot; an existing email is left alone.
func SeedAdmin(db *sql.DB) error {
	ctx := context.Background()

	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("⚠️ ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, `
		INSERT INTO users (id, name, email, password, role, created_at)
		VALUES ($1, $2, $3, $4, 'admin', NOW())
		ON CONFLICT (email) DO NOTHING`,
		uuid.New(), "Store Admin", email, string(hash),
	)
	if err != nil {
		return err
	}

	if n, _ := res.RowsAffected(); n > 0 {
		log.Printf("✅ Seeded admin user %s", email)
	}
	return nil
}
