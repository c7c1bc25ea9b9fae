// Package ranking scores every career catalog entry against an aggregated
// user profile and returns the top matches.
package ranking

import (
	"github.com/lifetimegps/quiz-engine/internal/types"
)

// categoryAffinity measures how well the user's expressed traits line up
// with a career's declared trait weights for one category. Returns a value
// in [0,1]: the fraction of the career's total trait weight covered by
// traits the user actually selected. A career that declares no weights for
// the category is neutral and scores 1.
func categoryAffinity(tally types.CategoryTally, weights map[string]float64) float64 {
	if len(weights) == 0 {
		return 1.0
	}

	totalWeight := 0.0
	matchedWeight := 0.0
	for trait, weight := range weights {
		totalWeight += weight
		if tally[trait] > 0 {
			matchedWeight += weight
		}
	}

	if totalWeight <= 0 {
		return 1.0
	}
	return matchedWeight / totalWeight
}

// interestScore returns the average percentage across the user's selected
// interests that appear in the career's declared interest list. A career
// with no declared interests is neutral and inherits the profile-wide
// interest percentage; a career whose interests share nothing with the
// selection scores zero.
func interestScore(selected []types.InterestEntry, careerInterests []string, neutral float64) float64 {
	if len(careerInterests) == 0 {
		return neutral
	}

	declared := make(map[string]bool, len(careerInterests))
	for _, id := range careerInterests {
		declared[id] = true
	}

	matched := 0
	total := 0.0
	for _, entry := range selected {
		if declared[entry.InterestID] {
			matched++
			total += entry.Percentage
		}
	}

	if matched == 0 {
		return 0
	}
	return total / float64(matched)
}
