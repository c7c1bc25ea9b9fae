package ranking

import (
	"testing"

	"github.com/lifetimegps/quiz-engine/internal/scoring"
	"github.com/lifetimegps/quiz-engine/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handsOnProfile() *types.AggregatedProfile {
	return &types.AggregatedProfile{
		WorkStyle:  types.CategoryTally{"hands-on": 4, "independent": 2},
		Cognitive:  types.CategoryTally{"skills": 3},
		Social:     types.CategoryTally{"helper": 2},
		Motivation: types.CategoryTally{"security": 3},
		Interests: []types.InterestEntry{
			{InterestID: "construction", Label: "Construction & Building", Percentage: 95},
			{InterestID: "automotive", Label: "Automotive & Mechanics", Percentage: 88},
		},
	}
}

func smallCatalog() []types.CareerRecord {
	return []types.CareerRecord{
		{
			ID:    "electrician",
			Title: "Electrician",
			ScoringProfile: types.ScoringProfile{
				WorkStyle: map[string]float64{"hands-on": 1.0, "independent": 0.5},
				Cognitive: map[string]float64{"skills": 1.0},
				Interests: []string{"construction", "electrical"},
				Trade:     true,
			},
		},
		{
			ID:    "graphic-designer",
			Title: "Graphic Designer",
			ScoringProfile: types.ScoringProfile{
				WorkStyle: map[string]float64{"creative": 1.0},
				Cognitive: map[string]float64{"visual": 1.0},
				Interests: []string{"arts", "media"},
			},
		},
		{
			ID:    "auto-mechanic",
			Title: "Automotive Technician",
			ScoringProfile: types.ScoringProfile{
				WorkStyle: map[string]float64{"hands-on": 1.0},
				Cognitive: map[string]float64{"skills": 1.0},
				Interests: []string{"automotive"},
				Trade:     true,
			},
		},
	}
}

func TestRank_HandsOnProfilePrefersTrades(t *testing.T) {
	profile := handsOnProfile()
	breakdown := scoring.ComputePercentages(profile)

	matches := Rank(profile, breakdown, smallCatalog(), 3)

	require.Len(t, matches, 3)
	assert.Equal(t, "electrician", matches[0].CareerID)
	assert.Equal(t, "graphic-designer", matches[2].CareerID)
	assert.Greater(t, matches[0].MatchPercentage, matches[2].MatchPercentage)
}

func TestRank_OrderingIsNonIncreasing(t *testing.T) {
	profile := handsOnProfile()

	matches := Rank(profile, nil, smallCatalog(), 10)

	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].MatchPercentage, matches[i].MatchPercentage)
	}
}

func TestRank_StableOrderOnTies(t *testing.T) {
	// Two identical careers must keep their catalog declaration order.
	catalog := []types.CareerRecord{
		{ID: "first", Title: "First", ScoringProfile: types.ScoringProfile{
			WorkStyle: map[string]float64{"hands-on": 1.0},
		}},
		{ID: "second", Title: "Second", ScoringProfile: types.ScoringProfile{
			WorkStyle: map[string]float64{"hands-on": 1.0},
		}},
	}
	profile := handsOnProfile()

	matches := Rank(profile, nil, catalog, 2)

	require.Len(t, matches, 2)
	assert.Equal(t, matches[0].MatchPercentage, matches[1].MatchPercentage)
	assert.Equal(t, "first", matches[0].CareerID)
	assert.Equal(t, "second", matches[1].CareerID)
}

func TestRank_EmptyCatalog(t *testing.T) {
	matches := Rank(handsOnProfile(), nil, nil, 5)

	assert.Empty(t, matches)
}

func TestRank_EmptyProfilePassesCatalogThrough(t *testing.T) {
	profile := &types.AggregatedProfile{
		WorkStyle:  types.CategoryTally{},
		Cognitive:  types.CategoryTally{},
		Social:     types.CategoryTally{},
		Motivation: types.CategoryTally{},
	}

	matches := Rank(profile, nil, smallCatalog(), 10)

	require.Len(t, matches, 3)
	assert.Equal(t, "electrician", matches[0].CareerID)
	assert.Equal(t, "graphic-designer", matches[1].CareerID)
	assert.Equal(t, "auto-mechanic", matches[2].CareerID)
	for _, m := range matches {
		assert.Zero(t, m.MatchPercentage)
	}
}

func TestRank_TopNTruncates(t *testing.T) {
	matches := Rank(handsOnProfile(), nil, smallCatalog(), 2)

	assert.Len(t, matches, 2)
}

func TestRank_Determinism(t *testing.T) {
	profile := handsOnProfile()
	catalog := smallCatalog()

	first := Rank(profile, nil, catalog, 5)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Rank(profile, nil, catalog, 5))
	}
}

func TestRank_ScoresStayInBounds(t *testing.T) {
	matches := Rank(handsOnProfile(), nil, smallCatalog(), 10)

	for _, m := range matches {
		assert.GreaterOrEqual(t, m.MatchPercentage, 0.0)
		assert.LessOrEqual(t, m.MatchPercentage, 100.0)
	}
}

func TestExpandMatches_JoinsCatalogMetadata(t *testing.T) {
	catalog := []types.CareerRecord{
		{
			ID:          "electrician",
			Title:       "Electrician",
			Description: "Installs and maintains electrical systems.",
			Skills:      []string{"wiring", "troubleshooting"},
			Salary:      "$50,000 - $85,000",
			Outlook:     "Growing",
		},
	}
	matches := []types.RankedMatch{
		{CareerID: "electrician", Title: "Electrician", MatchPercentage: 87.5},
		{CareerID: "ghost", Title: "Ghost", MatchPercentage: 50},
	}

	expanded := ExpandMatches(matches, catalog)

	require.Len(t, expanded, 1)
	assert.Equal(t, "Electrician", expanded[0].Title)
	assert.Equal(t, 87.5, expanded[0].Match)
	assert.Equal(t, "$50,000 - $85,000", expanded[0].Salary)
}
