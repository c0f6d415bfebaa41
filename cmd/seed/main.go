package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/uptask/uptask-server/config"
	"github.com/uptask/uptask-server/pkg/helpers"
)

// Seeds a demo user with one project and a couple of tasks for local
// development. Idempotent per email/name upserts.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@example.com"
	password := "password123"
	name := "Demo User"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, email, hash, name).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", userID, email, password)

	var projectID string
	err = db.QueryRow(`
		INSERT INTO projects (name, creator)
		SELECT 'Demo Project', $1
		WHERE NOT EXISTS (SELECT 1 FROM projects WHERE creator = $1 AND name = 'Demo Project')
		RETURNING id
	`, userID).Scan(&projectID)
	if err == sql.ErrNoRows {
		if err := db.QueryRow(`SELECT id FROM projects WHERE creator = $1 AND name = 'Demo Project'`, userID).Scan(&projectID); err != nil {
			log.Fatalf("failed to look up seeded project: %v", err)
		}
	} else if err != nil {
		log.Fatalf("failed to seed project: %v", err)
	}
	fmt.Printf("seeded project: id=%s\n", projectID)

	for _, t := range []struct{ name, state string }{
		{"Design the schema", "complete"},
		{"Wire up the API", "pending"},
	} {
		if _, err := db.Exec(`
			INSERT INTO tasks (name, state, project, creator)
			SELECT $1, $2, $3, $4
			WHERE NOT EXISTS (SELECT 1 FROM tasks WHERE project = $3 AND name = $1)
		`, t.name, t.state, projectID, userID); err != nil {
			log.Fatalf("failed to seed task %q: %v", t.name, err)
		}
	}
	fmt.Println("seeded tasks")
}
