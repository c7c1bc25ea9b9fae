package types

// ScoringProfile declares how a career aligns with trait tallies and
// interests. All weighting is catalog-data-driven so catalog additions
// require no code changes.
type ScoringProfile struct {
	WorkStyle  map[string]float64 `json:"work_style,omitempty"`
	Cognitive  map[string]float64 `json:"cognitive_strength,omitempty"`
	Social     map[string]float64 `json:"social_approach,omitempty"`
	Motivation map[string]float64 `json:"motivation,omitempty"`
	Interests  []string           `json:"interests,omitempty"` // interest IDs this career aligns with
	Trade      bool               `json:"trade,omitempty"`     // eligible for the trade-career bonus
}

// CategoryWeights returns the profile's trait weights for the given category.
func (p *ScoringProfile) CategoryWeights(category Category) map[string]float64 {
	switch category {
	case CategoryWorkStyle:
		return p.WorkStyle
	case CategoryCognitive:
		return p.Cognitive
	case CategorySocial:
		return p.Social
	case CategoryMotivation:
		return p.Motivation
	default:
		return nil
	}
}

// CareerRecord is one static catalog entry. Records are loaded once at
// process start and never mutated by scoring.
type CareerRecord struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Skills         []string       `json:"skills"`
	Salary         string         `json:"salary"`
	Outlook        string         `json:"outlook"`
	Category       string         `json:"category"`
	ScoringProfile ScoringProfile `json:"scoring_profile"`
}

// RankedMatch is one entry of a ranking run: ephemeral, recomputed per run,
// ordered non-increasing by match percentage with catalog-order tie breaks.
type RankedMatch struct {
	CareerID        string  `json:"career_id"`
	Title           string  `json:"title"`
	MatchPercentage float64 `json:"match_percentage"`
}

// CareerMatch joins a ranked match with its catalog metadata for display.
type CareerMatch struct {
	CareerID    string   `json:"career_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Salary      string   `json:"salary"`
	Outlook     string   `json:"outlook"`
	Match       float64  `json:"match"`
}
