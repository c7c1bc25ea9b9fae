package db

import (
	"context"
	"fmt"
)

// schemaStatements create the quiz-engine tables. Statements are idempotent
// so EnsureSchema is safe to run at every startup.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS quiz_sessions (
		id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		nickname   TEXT NOT NULL DEFAULT '',
		status     TEXT NOT NULL DEFAULT 'in_progress',
		interests  TEXT NOT NULL DEFAULT '',
		mini_games JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS sector_responses (
		session_id   UUID NOT NULL REFERENCES quiz_sessions(id) ON DELETE CASCADE,
		sector       TEXT NOT NULL,
		answers      JSONB NOT NULL,
		submitted_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (session_id, sector)
	)`,
	`CREATE TABLE IF NOT EXISTS session_results (
		session_id UUID NOT NULL REFERENCES quiz_sessions(id) ON DELETE CASCADE,
		kind       TEXT NOT NULL,
		content    JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (session_id, kind)
	)`,
	`CREATE TABLE IF NOT EXISTS session_roadmaps (
		session_id UUID NOT NULL REFERENCES quiz_sessions(id) ON DELETE CASCADE,
		career_id  TEXT NOT NULL,
		content    TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (session_id, career_id)
	)`,
}

// EnsureSchema creates any missing tables.
func (db *DB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
