package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/lifetimegps/quiz-engine/internal/types"
)

// CreateSession creates a new quiz session and returns its ID
func (db *DB) CreateSession(ctx context.Context, nickname string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO quiz_sessions (nickname, status)
		 VALUES ($1, $2)
		 RETURNING id`,
		nickname, StatusInProgress,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create session: %w", err)
	}
	return id, nil
}

// GetSession loads a session by ID. Returns (nil, nil) when not found.
func (db *DB) GetSession(ctx context.Context, sessionID uuid.UUID) (*Session, error) {
	var s Session
	err := db.pool.QueryRow(ctx,
		`SELECT id, nickname, status, created_at, updated_at
		 FROM quiz_sessions WHERE id = $1`,
		sessionID,
	).Scan(&s.ID, &s.Nickname, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &s, nil
}

// UpdateSessionStatus moves a session to a new status
func (db *DB) UpdateSessionStatus(ctx context.Context, sessionID uuid.UUID, status string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE quiz_sessions SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, sessionID,
	)
	if err != nil {
		return fmt.Errorf("failed to update session status: %w", err)
	}
	return nil
}

// DeleteSession removes a session and all dependent rows
func (db *DB) DeleteSession(ctx context.Context, sessionID uuid.UUID) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM quiz_sessions WHERE id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// ResetSession implements the retake path: every response and result is
// removed and the session starts over. There is no incremental merge across
// takes; a retake supersedes everything.
func (db *DB) ResetSession(ctx context.Context, sessionID uuid.UUID) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin reset: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, stmt := range []string{
		`DELETE FROM sector_responses WHERE session_id = $1`,
		`DELETE FROM session_results WHERE session_id = $1`,
		`DELETE FROM session_roadmaps WHERE session_id = $1`,
		`UPDATE quiz_sessions
		 SET status = 'in_progress', interests = '', mini_games = NULL, updated_at = NOW()
		 WHERE id = $1`,
	} {
		if _, err := tx.Exec(ctx, stmt, sessionID); err != nil {
			return fmt.Errorf("failed to reset session: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit reset: %w", err)
	}
	return nil
}

// SaveSectorResponses stores one sector's answers. A sector is immutable
// once submitted: re-submitting the same sector is rejected by the unique
// constraint and surfaces as an error.
func (db *DB) SaveSectorResponses(ctx context.Context, sessionID uuid.UUID, sector types.Sector, answers types.SectorAnswers) error {
	payload, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("failed to marshal answers: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO sector_responses (session_id, sector, answers)
		 VALUES ($1, $2, $3)`,
		sessionID, string(sector), payload,
	)
	if err != nil {
		return fmt.Errorf("failed to save sector responses: %w", err)
	}
	return nil
}

// SaveInterests stores the comma-separated selected interest IDs
func (db *DB) SaveInterests(ctx context.Context, sessionID uuid.UUID, interests string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE quiz_sessions SET interests = $1, updated_at = NOW() WHERE id = $2`,
		interests, sessionID,
	)
	if err != nil {
		return fmt.Errorf("failed to save interests: %w", err)
	}
	return nil
}

// SaveMiniGameMetrics stores computed mini-game metric scores
func (db *DB) SaveMiniGameMetrics(ctx context.Context, sessionID uuid.UUID, metrics *types.MiniGameMetrics) error {
	payload, err := json.Marshal(metrics)
	if err != nil {
		return fmt.Errorf("failed to marshal mini-game metrics: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`UPDATE quiz_sessions SET mini_games = $1, updated_at = NOW() WHERE id = $2`,
		payload, sessionID,
	)
	if err != nil {
		return fmt.Errorf("failed to save mini-game metrics: %w", err)
	}
	return nil
}

// GetRawResponses reassembles the session's raw responses from the stored
// sector rows plus the interests and mini-game columns.
func (db *DB) GetRawResponses(ctx context.Context, sessionID uuid.UUID) (*types.RawResponses, error) {
	raw := &types.RawResponses{Sectors: map[types.Sector]types.SectorAnswers{}}

	var miniGames []byte
	err := db.pool.QueryRow(ctx,
		`SELECT interests, mini_games FROM quiz_sessions WHERE id = $1`,
		sessionID,
	).Scan(&raw.Interests, &miniGames)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session responses: %w", err)
	}
	if len(miniGames) > 0 {
		var metrics types.MiniGameMetrics
		if err := json.Unmarshal(miniGames, &metrics); err != nil {
			return nil, fmt.Errorf("failed to unmarshal mini-game metrics: %w", err)
		}
		raw.MiniGames = &metrics
	}

	rows, err := db.pool.Query(ctx,
		`SELECT sector, answers FROM sector_responses WHERE session_id = $1`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query sector responses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sector string
		var payload []byte
		if err := rows.Scan(&sector, &payload); err != nil {
			return nil, fmt.Errorf("failed to scan sector row: %w", err)
		}
		var answers types.SectorAnswers
		if err := json.Unmarshal(payload, &answers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal sector answers: %w", err)
		}
		raw.Sectors[types.Sector(sector)] = answers
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sector rows: %w", err)
	}

	return raw, nil
}

// ListSubmittedSectors returns which sectors the session has completed
func (db *DB) ListSubmittedSectors(ctx context.Context, sessionID uuid.UUID) ([]SectorSubmission, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT sector, submitted_at FROM sector_responses
		 WHERE session_id = $1 ORDER BY submitted_at`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query submitted sectors: %w", err)
	}
	defer rows.Close()

	var submissions []SectorSubmission
	for rows.Next() {
		var s SectorSubmission
		if err := rows.Scan(&s.Sector, &s.SubmittedAt); err != nil {
			return nil, fmt.Errorf("failed to scan submission row: %w", err)
		}
		submissions = append(submissions, s)
	}
	return submissions, rows.Err()
}
