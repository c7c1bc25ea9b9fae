// Package scoring converts aggregated trait tallies into 0-100 category
// percentages and a weighted total match percentage.
package scoring

import "fmt"

// WeightSet defines the relative contribution of each category to the total
// match percentage, in percentage points. Weights must sum to exactly 100.
type WeightSet struct {
	Interest    float64 `json:"interest"`
	WorkStyle   float64 `json:"work_style"`
	Cognitive   float64 `json:"cognitive_strength"`
	Social      float64 `json:"social_approach"`
	Motivation  float64 `json:"motivation"`
	MiniGame    float64 `json:"mini_game"`
	TradeCareer float64 `json:"trade_career"`
}

// DefaultWeights returns the standard weight distribution.
func DefaultWeights() WeightSet {
	return WeightSet{
		Interest:    20,
		WorkStyle:   15,
		Cognitive:   15,
		Social:      10,
		Motivation:  20,
		MiniGame:    10,
		TradeCareer: 10,
	}
}

// Sum returns the total of all weights.
func (w WeightSet) Sum() float64 {
	return w.Interest + w.WorkStyle + w.Cognitive + w.Social +
		w.Motivation + w.MiniGame + w.TradeCareer
}

// Validate checks that weights sum to 100 and none are negative.
func (w WeightSet) Validate() error {
	for name, v := range map[string]float64{
		"interest":           w.Interest,
		"work_style":         w.WorkStyle,
		"cognitive_strength": w.Cognitive,
		"social_approach":    w.Social,
		"motivation":         w.Motivation,
		"mini_game":          w.MiniGame,
		"trade_career":       w.TradeCareer,
	} {
		if v < 0 {
			return fmt.Errorf("weight %s is negative: %v", name, v)
		}
	}
	if sum := w.Sum(); sum != 100 {
		return fmt.Errorf("weights must sum to 100, got %v", sum)
	}
	return nil
}
