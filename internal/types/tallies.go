package types

// CategoryTally maps trait labels to accumulated counts for one category.
// Both umbrella labels and their specific sub-labels (e.g. "team" and
// "team_lead") are retained; sub-labels exist for analytics and are excluded
// from percentage sums.
type CategoryTally map[string]int

// Sum returns the total count across the category's top-level trait labels.
// Sub-labels under an umbrella are not summed, so a prefixed answer
// contributes exactly once.
func (t CategoryTally) Sum(category Category) int {
	total := 0
	for _, label := range CategoryTraits(category) {
		total += t[label]
	}
	return total
}

// InterestEntry records one selected interest area and its percentage weight.
type InterestEntry struct {
	InterestID string  `json:"interest_id"`
	Label      string  `json:"label"`
	Percentage float64 `json:"percentage"`
}

// AggregatedProfile is the output of the response aggregator: per-category
// tallies, selected interests sorted descending by percentage, and any
// mini-game metrics carried through from the raw responses.
type AggregatedProfile struct {
	WorkStyle  CategoryTally    `json:"work_style"`
	Cognitive  CategoryTally    `json:"cognitive_strength"`
	Social     CategoryTally    `json:"social_approach"`
	Motivation CategoryTally    `json:"motivation"`
	Interests  []InterestEntry  `json:"interests"`
	MiniGames  *MiniGameMetrics `json:"mini_games,omitempty"`
}

// Tally returns the tally for the given category.
func (p *AggregatedProfile) Tally(category Category) CategoryTally {
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

// IsEmpty reports whether the profile carries no signal at all: zero tallies
// in every category, no interests, and no mini-game metrics.
func (p *AggregatedProfile) IsEmpty() bool {
	if p == nil {
		return true
	}
	for _, category := range []Category{CategoryWorkStyle, CategoryCognitive, CategorySocial, CategoryMotivation} {
		if p.Tally(category).Sum(category) > 0 {
			return false
		}
	}
	if len(p.Interests) > 0 {
		return false
	}
	return p.MiniGames == nil
}
