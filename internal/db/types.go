package db

import (
	"time"

	"github.com/google/uuid"
)

// Session statuses
const (
	StatusInProgress = "in_progress"
	StatusScored     = "scored"
	StatusRefined    = "refined"
)

// Session is one quiz session row. All responses and results hang off the
// session; a retake clears them and starts the session over.
type Session struct {
	ID        uuid.UUID `json:"id"`
	Nickname  string    `json:"nickname,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SectorSubmission is one submitted sector's raw answers.
type SectorSubmission struct {
	Sector      string    `json:"sector"`
	SubmittedAt time.Time `json:"submitted_at"`
}
