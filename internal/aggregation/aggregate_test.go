package aggregation

import (
	"testing"

	"github.com/lifetimegps/quiz-engine/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_BasicTallies(t *testing.T) {
	raw := &types.RawResponses{
		Sectors: map[types.Sector]types.SectorAnswers{
			types.SectorWorkStyle: {
				"q1": "hands-on",
				"q2": "hands-on",
				"q3": "creative",
			},
			types.SectorCognitive: {
				"q1": "analytical",
				"q2": "skills",
			},
		},
	}

	profile := Aggregate(raw)

	assert.Equal(t, 2, profile.WorkStyle["hands-on"])
	assert.Equal(t, 1, profile.WorkStyle["creative"])
	assert.Equal(t, 1, profile.Cognitive["analytical"])
	assert.Equal(t, 1, profile.Cognitive["skills"])
}

func TestAggregate_MissingSectorsYieldZeroTallies(t *testing.T) {
	raw := &types.RawResponses{
		Sectors: map[types.Sector]types.SectorAnswers{
			types.SectorWorkStyle: {"q1": "hands-on"},
		},
	}

	profile := Aggregate(raw)

	assert.Equal(t, 0, profile.Cognitive.Sum(types.CategoryCognitive))
	assert.Equal(t, 0, profile.Social.Sum(types.CategorySocial))
	assert.Equal(t, 0, profile.Motivation.Sum(types.CategoryMotivation))
}

func TestAggregate_NilResponses(t *testing.T) {
	profile := Aggregate(nil)

	require.NotNil(t, profile)
	assert.True(t, profile.IsEmpty())
}

func TestAggregate_UmbrellaCounting(t *testing.T) {
	raw := &types.RawResponses{
		Sectors: map[types.Sector]types.SectorAnswers{
			types.SectorWorkStyle: {
				"q1": "team_lead",
				"q2": "team_lead",
				"q3": "team_support",
				"q4": "hands-on",
			},
		},
	}

	profile := Aggregate(raw)

	// The umbrella tally equals the number of team_* answers, while each
	// specific sub-label keeps its own count.
	assert.Equal(t, 3, profile.WorkStyle["team"])
	assert.Equal(t, 2, profile.WorkStyle["team_lead"])
	assert.Equal(t, 1, profile.WorkStyle["team_support"])
	assert.Equal(t, 1, profile.WorkStyle["hands-on"])

	// Sub-labels are analytics only: the category sum counts each prefixed
	// answer exactly once via the umbrella.
	assert.Equal(t, 4, profile.WorkStyle.Sum(types.CategoryWorkStyle))
}

func TestAggregate_BooleanAnswersMapToFixedLabels(t *testing.T) {
	raw := &types.RawResponses{
		Sectors: map[types.Sector]types.SectorAnswers{
			types.SectorMotivation: {
				"q1": true,
				"q2": true,
				"q3": false,
			},
		},
	}

	profile := Aggregate(raw)

	assert.Equal(t, 2, profile.Motivation["committed"])
	assert.Equal(t, 1, profile.Motivation["exploring"])
}

func TestAggregate_UnknownLabelsIgnored(t *testing.T) {
	raw := &types.RawResponses{
		Sectors: map[types.Sector]types.SectorAnswers{
			types.SectorWorkStyle: {
				"q1": "definitely-not-a-trait",
				"q2": 42.0,
				"q3": "hands-on",
			},
			types.SectorSocial: {
				// Booleans outside the motivation sector carry no label.
				"q1": true,
			},
		},
	}

	profile := Aggregate(raw)

	assert.Equal(t, 1, profile.WorkStyle.Sum(types.CategoryWorkStyle))
	assert.Equal(t, 0, profile.Social.Sum(types.CategorySocial))
}

func TestParseInterests_SelectionOrderPercentages(t *testing.T) {
	entries := ParseInterests("technology, healthcare, arts")

	require.Len(t, entries, 3)
	assert.Equal(t, "technology", entries[0].InterestID)
	assert.Equal(t, 95.0, entries[0].Percentage)
	assert.Equal(t, 88.0, entries[1].Percentage)
	assert.Equal(t, 82.0, entries[2].Percentage)

	// Sorted descending by construction.
	assert.Greater(t, entries[0].Percentage, entries[1].Percentage)
	assert.Greater(t, entries[1].Percentage, entries[2].Percentage)
}

func TestParseInterests_UnknownAndDuplicateIDsSkipped(t *testing.T) {
	entries := ParseInterests("technology,unknown-area,technology,healthcare")

	require.Len(t, entries, 2)
	assert.Equal(t, "technology", entries[0].InterestID)
	assert.Equal(t, "healthcare", entries[1].InterestID)
}

func TestParseInterests_CapsAtMaximum(t *testing.T) {
	entries := ParseInterests("technology,healthcare,arts,music,science,engineering,law")

	assert.Len(t, entries, MaxSelectedInterests)
}

func TestParseInterests_EmptyInput(t *testing.T) {
	assert.Empty(t, ParseInterests(""))
	assert.Empty(t, ParseInterests("  "))
}
