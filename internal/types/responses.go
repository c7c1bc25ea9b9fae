// Package types provides type definitions for structured data used throughout the quiz-engine system.
package types

// Sector identifies one of the five thematic quiz sections.
type Sector string

// Sector constants
const (
	SectorWorkStyle  Sector = "work_style"
	SectorCognitive  Sector = "cognitive_strength"
	SectorSocial     Sector = "social_approach"
	SectorMotivation Sector = "motivation"
	SectorInterests  Sector = "interests"
)

// AllSectors lists every sector in quiz presentation order.
func AllSectors() []Sector {
	return []Sector{
		SectorWorkStyle,
		SectorCognitive,
		SectorSocial,
		SectorMotivation,
		SectorInterests,
	}
}

// SectorAnswers maps question IDs to raw answer values.
// Values are JSON-decoded and may be string (trait label), bool (yes/no
// questions), or float64 (slider questions).
type SectorAnswers map[string]any

// RawResponses holds every answer collected during one quiz session.
// A sector missing from Sectors simply has not been completed yet.
type RawResponses struct {
	Sectors   map[Sector]SectorAnswers `json:"sectors"`
	Interests string                   `json:"interests,omitempty"` // comma-separated interest IDs, at most 5
	MiniGames *MiniGameMetrics         `json:"mini_games,omitempty"`
}

// MiniGameMetrics holds per-game scores on a 0-100 scale, produced by the
// minigames calculators or supplied directly by the client.
type MiniGameMetrics struct {
	Reaction float64 `json:"reaction"`
	Memory   float64 `json:"memory"`
	Focus    float64 `json:"focus"`
}

// Overall returns the average of the individual game scores.
func (m *MiniGameMetrics) Overall() float64 {
	if m == nil {
		return 0
	}
	return (m.Reaction + m.Memory + m.Focus) / 3.0
}
