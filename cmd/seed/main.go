package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/planora/planora-api/config"
	"github.com/planora/planora-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@planora.dev"
	password := "password123"
	name := "Demo User"
	birthDate := time.Date(2002, time.July, 4, 0, 0, 0, 0, time.UTC)

	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (name, email, password_hash, birth_date)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, name, email, hash, birthDate).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", id, email, password)

	events := []struct {
		name     string
		venue    string
		dateTime time.Time
		value    float64
	}{
		{"Birthday Party", "Sunset Hall", time.Now().AddDate(0, 1, 0), 1500},
		{"Wedding Reception", "Grand Ballroom", time.Now().AddDate(0, 2, 0), 8000},
		{"Team Offsite", "Lakeside Lodge", time.Now().AddDate(0, 3, 0), 0},
	}
	for _, e := range events {
		if _, err := db.Exec(`
			INSERT INTO events (user_id, event_name, venue, date_time, value)
			VALUES ($1, $2, $3, $4, $5)
		`, id, e.name, e.venue, e.dateTime, e.value); err != nil {
			log.Fatalf("failed to seed event %q: %v", e.name, err)
		}
	}
	fmt.Printf("seeded %d events for user %s\n", len(events), id)
}
