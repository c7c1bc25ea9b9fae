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

// Result kinds stored in session_results
const (
	ResultBreakdown    = "breakdown"
	ResultMatches      = "matches"
	ResultRefinement   = "refinement"
	ResultExplanations = "explanations"
)

// SaveResult stores one result artifact for a session, replacing any
// previous artifact of the same kind. Results are snapshots of a scoring
// run, not incrementally merged state.
func (db *DB) SaveResult(ctx context.Context, sessionID uuid.UUID, kind string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s result: %w", kind, err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO session_results (session_id, kind, content)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (session_id, kind)
		 DO UPDATE SET content = EXCLUDED.content, created_at = NOW()`,
		sessionID, kind, payload,
	)
	if err != nil {
		return fmt.Errorf("failed to save %s result: %w", kind, err)
	}
	return nil
}

// getResult loads one result artifact's raw JSON. Returns nil when absent.
func (db *DB) getResult(ctx context.Context, sessionID uuid.UUID, kind string) ([]byte, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM session_results WHERE session_id = $1 AND kind = $2`,
		sessionID, kind,
	).Scan(&content)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s result: %w", kind, err)
	}
	return content, nil
}

// GetScoreBreakdown loads the stored score breakdown for a session
func (db *DB) GetScoreBreakdown(ctx context.Context, sessionID uuid.UUID) (*types.ScoreBreakdown, error) {
	content, err := db.getResult(ctx, sessionID, ResultBreakdown)
	if err != nil || content == nil {
		return nil, err
	}

	var breakdown types.ScoreBreakdown
	if err := json.Unmarshal(content, &breakdown); err != nil {
		return nil, fmt.Errorf("failed to unmarshal score breakdown: %w", err)
	}
	return &breakdown, nil
}

// GetMatches loads the stored ranked matches for a session
func (db *DB) GetMatches(ctx context.Context, sessionID uuid.UUID) ([]types.RankedMatch, error) {
	content, err := db.getResult(ctx, sessionID, ResultMatches)
	if err != nil || content == nil {
		return nil, err
	}

	var matches []types.RankedMatch
	if err := json.Unmarshal(content, &matches); err != nil {
		return nil, fmt.Errorf("failed to unmarshal matches: %w", err)
	}
	return matches, nil
}

// GetRefinement loads the stored disambiguation refinement for a session
func (db *DB) GetRefinement(ctx context.Context, sessionID uuid.UUID) (*types.Refinement, error) {
	content, err := db.getResult(ctx, sessionID, ResultRefinement)
	if err != nil || content == nil {
		return nil, err
	}

	var refinement types.Refinement
	if err := json.Unmarshal(content, &refinement); err != nil {
		return nil, fmt.Errorf("failed to unmarshal refinement: %w", err)
	}
	return &refinement, nil
}

// SaveRoadmap caches a generated career roadmap for a session
func (db *DB) SaveRoadmap(ctx context.Context, sessionID uuid.UUID, careerID, content string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO session_roadmaps (session_id, career_id, content)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (session_id, career_id)
		 DO UPDATE SET content = EXCLUDED.content, created_at = NOW()`,
		sessionID, careerID, content,
	)
	if err != nil {
		return fmt.Errorf("failed to save roadmap: %w", err)
	}
	return nil
}

// GetRoadmap loads a cached roadmap. Returns empty string when absent.
func (db *DB) GetRoadmap(ctx context.Context, sessionID uuid.UUID, careerID string) (string, error) {
	var content string
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM session_roadmaps WHERE session_id = $1 AND career_id = $2`,
		sessionID, careerID,
	).Scan(&content)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get roadmap: %w", err)
	}
	return content, nil
}
