// Package aggregation folds raw per-question quiz answers into per-category
// trait tallies and a weighted interests list.
package aggregation

import (
	"github.com/lifetimegps/quiz-engine/internal/types"
)

// sectorCategories maps each tallied sector to its trait category.
// The interests sector has no tally and is handled separately.
var sectorCategories = map[types.Sector]types.Category{
	types.SectorWorkStyle:  types.CategoryWorkStyle,
	types.SectorCognitive:  types.CategoryCognitive,
	types.SectorSocial:     types.CategorySocial,
	types.SectorMotivation: types.CategoryMotivation,
}

// Aggregate folds raw responses into an aggregated profile. It is a pure
// function of its argument: absent sectors yield zero tallies, unknown trait
// labels contribute nothing, and no error is ever returned.
func Aggregate(raw *types.RawResponses) *types.AggregatedProfile {
	profile := &types.AggregatedProfile{
		WorkStyle:  types.CategoryTally{},
		Cognitive:  types.CategoryTally{},
		Social:     types.CategoryTally{},
		Motivation: types.CategoryTally{},
		Interests:  []types.InterestEntry{},
	}
	if raw == nil {
		return profile
	}

	for sector, category := range sectorCategories {
		answers := raw.Sectors[sector]
		tally := profile.Tally(category)
		for _, value := range answers {
			foldAnswer(tally, category, value)
		}
	}

	profile.Interests = ParseInterests(raw.Interests)
	profile.MiniGames = raw.MiniGames
	return profile
}

// foldAnswer folds a single raw answer value into the category tally.
func foldAnswer(tally types.CategoryTally, category types.Category, value any) {
	switch v := value.(type) {
	case string:
		foldLabel(tally, category, v)
	case bool:
		// Yes/no answers map to two fixed labels in the motivation sector.
		if category != types.CategoryMotivation {
			return
		}
		if v {
			tally[types.TraitCommitted]++
		} else {
			tally[types.TraitExploring]++
		}
	default:
		// Numeric and other value shapes carry no trait label.
	}
}

// foldLabel increments the counter for a recognized trait label. Labels of
// the form "<prefix>_<suffix>" with a recognized umbrella prefix increment
// both the specific label (kept for analytics) and the umbrella counter.
// Anything else is ignored: the quiz UI owns the label vocabulary, so an
// unknown label is a no-op, not an error.
func foldLabel(tally types.CategoryTally, category types.Category, label string) {
	if types.IsKnownTrait(category, label) {
		tally[label]++
		return
	}
	if umbrella, ok := types.UmbrellaFor(category, label); ok {
		tally[label]++
		tally[umbrella]++
	}
}
