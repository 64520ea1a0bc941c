package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Creates the chat tables for the current environment. The prefix mirrors
// config.Load: TABLE_PREFIX override first, then ENVIRONMENT + "_".
func main() {
	dbURL := os.Getenv("SUPABASE_DB_URL")
	if dbURL == "" {
		log.Fatal("SUPABASE_DB_URL environment variable is required")
	}

	prefix := os.Getenv("TABLE_PREFIX")
	if prefix == "" {
		env := os.Getenv("ENVIRONMENT")
		if env == "" {
			env = "dev"
		}
		prefix = env + "_"
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() { _ = db.Close() }() // Error ignored: script exiting

	createSQL := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %[1]sprofiles (
			id uuid PRIMARY KEY,
			full_name text,
			display_name text,
			created_at timestamptz NOT NULL DEFAULT now(),
			updated_at timestamptz NOT NULL DEFAULT now()
		);

		CREATE TABLE IF NOT EXISTS %[1]schat_sessions (
			id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id uuid NOT NULL,
			title text NOT NULL,
			created_at timestamptz NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS %[1]schat_sessions_owner_idx
			ON %[1]schat_sessions (user_id, created_at DESC);

		CREATE TABLE IF NOT EXISTS %[1]schat_messages (
			id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
			session_id uuid NOT NULL REFERENCES %[1]schat_sessions(id),
			role text NOT NULL CHECK (role IN ('user', 'assistant')),
			content text NOT NULL,
			created_at timestamptz NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS %[1]schat_messages_session_idx
			ON %[1]schat_messages (session_id, created_at);
	`, prefix)

	if _, err := db.Exec(createSQL); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	fmt.Printf("All tables created successfully (prefix: %s)\n", prefix)
}
