package ranking

import (
	"sort"

	"github.com/lifetimegps/quiz-engine/internal/scoring"
	"github.com/lifetimegps/quiz-engine/internal/types"
)

// DefaultTopN is the number of matches returned when no limit is configured.
const DefaultTopN = 5

// Rank scores every catalog entry against the user profile and returns up to
// topN matches sorted descending by match percentage. Equal-scoring careers
// retain catalog declaration order, so results are reproducible for
// identical input. An empty catalog yields an empty list; an empty profile
// yields the catalog in declared order with zero scores.
func Rank(profile *types.AggregatedProfile, breakdown *types.ScoreBreakdown, catalog []types.CareerRecord, topN int) []types.RankedMatch {
	return RankWeighted(profile, breakdown, catalog, topN, scoring.DefaultWeights())
}

// RankWeighted is Rank with an explicit weight set.
func RankWeighted(profile *types.AggregatedProfile, breakdown *types.ScoreBreakdown, catalog []types.CareerRecord, topN int, weights scoring.WeightSet) []types.RankedMatch {
	if topN <= 0 {
		topN = DefaultTopN
	}

	matches := make([]types.RankedMatch, 0, len(catalog))
	if profile == nil || profile.IsEmpty() {
		// Nothing to score against: pass the catalog through in its
		// declared order rather than fabricating plausible numbers.
		for _, career := range catalog {
			matches = append(matches, types.RankedMatch{
				CareerID: career.ID,
				Title:    career.Title,
			})
		}
		return truncate(matches, topN)
	}

	if breakdown == nil {
		breakdown = scoring.ComputePercentagesWeighted(profile, weights)
	}

	for _, career := range catalog {
		matches = append(matches, types.RankedMatch{
			CareerID:        career.ID,
			Title:           career.Title,
			MatchPercentage: matchPercentage(profile, breakdown, &career, weights),
		})
	}

	// Stable sort keeps catalog order on ties.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchPercentage > matches[j].MatchPercentage
	})

	return truncate(matches, topN)
}

// matchPercentage computes one career's match score: each category
// percentage from the breakdown is scaled by the career's declared affinity
// for the user's traits, then combined under the weight set. All per-career
// weighting comes from the catalog's scoring profile, so catalog additions
// are data-only.
func matchPercentage(profile *types.AggregatedProfile, breakdown *types.ScoreBreakdown, career *types.CareerRecord, weights scoring.WeightSet) float64 {
	sp := &career.ScoringProfile

	workStyle := breakdown.WorkStyle * categoryAffinity(profile.WorkStyle, sp.WorkStyle)
	cognitive := breakdown.Cognitive * categoryAffinity(profile.Cognitive, sp.Cognitive)
	social := breakdown.Social * categoryAffinity(profile.Social, sp.Social)
	motivation := breakdown.Motivation * categoryAffinity(profile.Motivation, sp.Motivation)
	interest := interestScore(profile.Interests, sp.Interests, breakdown.Interest)

	trade := 0.0
	if sp.Trade {
		trade = breakdown.TradeCareer
	}

	total := (interest*weights.Interest +
		workStyle*weights.WorkStyle +
		cognitive*weights.Cognitive +
		social*weights.Social +
		motivation*weights.Motivation +
		breakdown.MiniGame*weights.MiniGame +
		trade*weights.TradeCareer) / 100

	return scoring.Clamp(total)
}

// ExpandMatches joins ranked matches with catalog metadata for display.
// Matches whose career ID is missing from the catalog are dropped.
func ExpandMatches(matches []types.RankedMatch, catalog []types.CareerRecord) []types.CareerMatch {
	byID := make(map[string]*types.CareerRecord, len(catalog))
	for i := range catalog {
		byID[catalog[i].ID] = &catalog[i]
	}

	expanded := make([]types.CareerMatch, 0, len(matches))
	for _, match := range matches {
		career, ok := byID[match.CareerID]
		if !ok {
			continue
		}
		expanded = append(expanded, types.CareerMatch{
			CareerID:    career.ID,
			Title:       career.Title,
			Description: career.Description,
			Skills:      career.Skills,
			Salary:      career.Salary,
			Outlook:     career.Outlook,
			Match:       match.MatchPercentage,
		})
	}
	return expanded
}

func truncate(matches []types.RankedMatch, topN int) []types.RankedMatch {
	if len(matches) > topN {
		return matches[:topN]
	}
	return matches
}
