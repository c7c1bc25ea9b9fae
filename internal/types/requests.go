package types

import (
	"github.com/go-playground/validator/v10"
)

// CreateSessionRequest starts a new quiz session.
type CreateSessionRequest struct {
	Nickname string `json:"nickname,omitempty" validate:"omitempty,max=64"`
}

// SubmitSectorRequest submits the answers for a single sector. A sector is
// immutable once submitted; retakes reset the whole session.
type SubmitSectorRequest struct {
	Answers   SectorAnswers `json:"answers" validate:"required,min=1"`
	Interests string        `json:"interests,omitempty"`
}

// ScoreRequest triggers the aggregate-score-rank pipeline for a session.
type ScoreRequest struct {
	TopN int `json:"top_n,omitempty" validate:"omitempty,min=1,max=50"`
}

// DisambiguationRequest carries the user's answers to the differentiation
// questions, or Skip to decline the follow-up quiz.
type DisambiguationRequest struct {
	Answers DisambiguationResponse `json:"answers,omitempty"`
	Skip    bool                   `json:"skip,omitempty"`
}

// RoadmapRequest asks for a generated career roadmap for one ranked match.
type RoadmapRequest struct {
	CareerID string `json:"career_id" validate:"required"`
}

// Validate validates the CreateSessionRequest using the validator.
func (r *CreateSessionRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SubmitSectorRequest using the validator.
func (r *SubmitSectorRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RoadmapRequest using the validator.
func (r *RoadmapRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
