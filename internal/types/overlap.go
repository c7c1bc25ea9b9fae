package types

// DifferentiationOption is one selectable answer to a differentiation
// question. Deltas are additive per-career point boosts in the 1-30 range.
type DifferentiationOption struct {
	Text   string             `json:"text"`
	Deltas map[string]float64 `json:"deltas"` // career ID -> boost points
}

// DifferentiationQuestion is one follow-up question used to break ties
// within an overlap cluster.
type DifferentiationQuestion struct {
	ID      string                  `json:"id"`
	Text    string                  `json:"text"`
	Options []DifferentiationOption `json:"options"`
}

// OverlapCluster is a predefined group of careers the primary scorer tends
// to confuse. Members are declared by catalog ID, never by title matching.
type OverlapCluster struct {
	ID        string                    `json:"id"`
	Category  string                    `json:"category"`
	MemberIDs []string                  `json:"member_ids"`
	Questions []DifferentiationQuestion `json:"questions"`
}

// HasMember reports whether the career ID belongs to this cluster.
func (c *OverlapCluster) HasMember(careerID string) bool {
	for _, id := range c.MemberIDs {
		if id == careerID {
			return true
		}
	}
	return false
}

// DisambiguationResponse maps a differentiation question ID to the chosen
// option index. Transient; discarded after one refinement pass.
type DisambiguationResponse map[string]int

// Refinement is the output of one disambiguation pass: the re-sorted matches
// and per-title explanation sentences for significant adjustments. When no
// cluster qualifies, or the user skips the quiz, Matches equals the original
// ranking and Explanations is empty.
type Refinement struct {
	Matches      []RankedMatch     `json:"refined_matches"`
	Explanations map[string]string `json:"explanations"`
}
