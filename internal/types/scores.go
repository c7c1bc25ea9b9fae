package types

// ScoreBreakdown holds the per-category percentages and the weighted total,
// each a float in [0,100]. It is a pure function of the aggregated profile:
// identical profiles always produce identical breakdowns.
type ScoreBreakdown struct {
	Interest    float64 `json:"interest"`
	WorkStyle   float64 `json:"work_style"`
	Cognitive   float64 `json:"cognitive_strength"`
	Social      float64 `json:"social_approach"`
	Motivation  float64 `json:"motivation"`
	MiniGame    float64 `json:"mini_game"`
	TradeCareer float64 `json:"trade_career"`
	Total       float64 `json:"total"`
}
