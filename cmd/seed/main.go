package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Zachary-Blundell/convergence-des-luttes/config"
	"github.com/Zachary-Blundell/convergence-des-luttes/db"
	"github.com/Zachary-Blundell/convergence-des-luttes/internal/auth/service"
	authconstant "github.com/Zachary-Blundell/convergence-des-luttes/pkg/constant"
)

// Seeds a demo association with an admin organizer, social links and one
// article so a fresh environment has something to log into.
func main() {
	cfg := config.Load()

	if err := db.Migrate(cfg.DBURL); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer pool.Close()

	now := time.Now()
	associationID := uuid.NewString()

	_, err = pool.Exec(ctx, `
		INSERT INTO associations (id, name, slug, description, contact_email, phone, website, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		ON CONFLICT (slug) DO NOTHING
	`, associationID, "Climate Justice League", "climate-justice",
		"Grass-roots org fighting for climate justice.",
		"hello@climatejustice.test", "555-0101", "https://climatejustice.example", now)
	if err != nil {
		log.Fatalf("seed association: %v", err)
	}

	// The upsert may have kept an earlier row; resolve the real id.
	var realID string
	if err := pool.QueryRow(ctx, `SELECT id FROM associations WHERE slug = $1`, "climate-justice").Scan(&realID); err != nil {
		log.Fatalf("resolve association: %v", err)
	}

	passwordHash, err := service.HashPassword("ChangeMe!123")
	if err != nil {
		log.Fatalf("hash seed password: %v", err)
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO organizers (id, email, password_hash, role, association_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (email) DO NOTHING
	`, uuid.NewString(), "admin@climatejustice.test", passwordHash, authconstant.RoleAdmin, realID, now)
	if err != nil {
		log.Fatalf("seed organizer: %v", err)
	}

	links := map[string]string{
		"TWITTER":   "https://twitter.com/climatejustice",
		"INSTAGRAM": "https://instagram.com/climatejustice",
	}
	for platform, url := range links {
		_, err = pool.Exec(ctx, `
			INSERT INTO social_links (id, association_id, platform, url)
			SELECT $1, $2, $3, $4
			WHERE NOT EXISTS (
				SELECT 1 FROM social_links WHERE association_id = $2 AND platform = $3
			)
		`, uuid.NewString(), realID, platform, url)
		if err != nil {
			log.Fatalf("seed social link: %v", err)
		}
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO articles (id, association_id, title, content, published_at)
		SELECT $1, $2, $3, $4, $5
		WHERE NOT EXISTS (
			SELECT 1 FROM articles WHERE association_id = $2 AND title = $3
		)
	`, uuid.NewString(), realID, "Why we march",
		"On the politics of showing up, together.", now)
	if err != nil {
		log.Fatalf("seed article: %v", err)
	}

	log.Println("seed complete")
}
