package scoring

import (
	"github.com/lifetimegps/quiz-engine/internal/types"
)

// Maximum theoretical tallies per category, derived from the number of
// questions in each sector: every question contributes exactly one count.
const (
	maxWorkStyleTally  = 10
	maxCognitiveTally  = 8
	maxSocialTally     = 8
	maxMotivationTally = 10
)

// ComputePercentages converts an aggregated profile into per-category
// percentages and the weighted total, using the default weights.
func ComputePercentages(profile *types.AggregatedProfile) *types.ScoreBreakdown {
	return ComputePercentagesWeighted(profile, DefaultWeights())
}

// ComputePercentagesWeighted converts an aggregated profile into per-category
// percentages and the weighted total. It is deterministic: identical profiles
// always produce identical breakdowns. Missing mini-game or trade signals
// score zero in their categories without error.
func ComputePercentagesWeighted(profile *types.AggregatedProfile, weights WeightSet) *types.ScoreBreakdown {
	breakdown := &types.ScoreBreakdown{}
	if profile == nil {
		return breakdown
	}

	breakdown.WorkStyle = tallyPercentage(profile.WorkStyle, types.CategoryWorkStyle, maxWorkStyleTally)
	breakdown.Cognitive = tallyPercentage(profile.Cognitive, types.CategoryCognitive, maxCognitiveTally)
	breakdown.Social = tallyPercentage(profile.Social, types.CategorySocial, maxSocialTally)
	breakdown.Motivation = tallyPercentage(profile.Motivation, types.CategoryMotivation, maxMotivationTally)
	breakdown.Interest = interestPercentage(profile.Interests)
	breakdown.MiniGame = Clamp(profile.MiniGames.Overall())
	breakdown.TradeCareer = tradePercentage(profile.Interests)

	breakdown.Total = Clamp((breakdown.Interest*weights.Interest +
		breakdown.WorkStyle*weights.WorkStyle +
		breakdown.Cognitive*weights.Cognitive +
		breakdown.Social*weights.Social +
		breakdown.Motivation*weights.Motivation +
		breakdown.MiniGame*weights.MiniGame +
		breakdown.TradeCareer*weights.TradeCareer) / 100)

	return breakdown
}

// tallyPercentage converts a category tally into a 0-100 percentage against
// its maximum theoretical tally.
func tallyPercentage(tally types.CategoryTally, category types.Category, maxTally int) float64 {
	if maxTally <= 0 {
		return 0
	}
	return Clamp(float64(tally.Sum(category)) / float64(maxTally) * 100)
}

// interestPercentage returns the average percentage across selected
// interests, or zero when none were selected.
func interestPercentage(interests []types.InterestEntry) float64 {
	if len(interests) == 0 {
		return 0
	}
	total := 0.0
	for _, entry := range interests {
		total += entry.Percentage
	}
	return Clamp(total / float64(len(interests)))
}

// tradePercentage scores the trade-career bonus: full marks when any
// selected interest signals trade affinity, zero otherwise.
func tradePercentage(interests []types.InterestEntry) float64 {
	for _, entry := range interests {
		if types.IsTradeInterest(entry.InterestID) {
			return 100
		}
	}
	return 0
}

// Clamp bounds a percentage to [0,100].
func Clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
