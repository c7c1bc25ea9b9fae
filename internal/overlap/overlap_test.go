package overlap

import (
	"testing"

	"github.com/lifetimegps/quiz-engine/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func businessCluster() types.OverlapCluster {
	return types.OverlapCluster{
		ID:       "business-management",
		Category: "business",
		MemberIDs: []string{
			"marketing-manager",
			"business-development-manager",
			"sales-manager",
			"entrepreneur",
			"product-manager",
		},
		Questions: []types.DifferentiationQuestion{
			{
				ID:   "bm-q1",
				Text: "Would you rather grow an existing brand or build something new?",
				Options: []types.DifferentiationOption{
					{
						Text: "Grow an existing brand",
						Deltas: map[string]float64{
							"marketing-manager": 25,
							"sales-manager":     10,
						},
					},
					{
						Text: "Build something new",
						Deltas: map[string]float64{
							"entrepreneur":    25,
							"product-manager": 12,
						},
					},
				},
			},
			{
				ID:   "bm-q2",
				Text: "Do you prefer closing deals or shaping strategy?",
				Options: []types.DifferentiationOption{
					{
						Text:   "Closing deals",
						Deltas: map[string]float64{"sales-manager": 22},
					},
					{
						Text:   "Shaping strategy",
						Deltas: map[string]float64{"product-manager": 8, "marketing-manager": 5},
					},
				},
			},
		},
	}
}

func businessMatches() []types.RankedMatch {
	return []types.RankedMatch{
		{CareerID: "marketing-manager", Title: "Marketing Manager", MatchPercentage: 82},
		{CareerID: "business-development-manager", Title: "Business Development Manager", MatchPercentage: 81},
		{CareerID: "sales-manager", Title: "Sales Manager", MatchPercentage: 80},
		{CareerID: "entrepreneur", Title: "Entrepreneur", MatchPercentage: 79},
		{CareerID: "product-manager", Title: "Product Manager", MatchPercentage: 78},
	}
}

func TestDetect_FlagsClusterWithTwoOrMoreMembers(t *testing.T) {
	d := NewDifferentiator([]types.OverlapCluster{businessCluster()})

	flagged := d.Detect(businessMatches())

	assert.Contains(t, flagged, "business-management")
	assert.Equal(t, StageOverlapDetected, d.Stage())
}

func TestDetect_SingleMemberDoesNotFlag(t *testing.T) {
	d := NewDifferentiator([]types.OverlapCluster{businessCluster()})

	flagged := d.Detect([]types.RankedMatch{
		{CareerID: "marketing-manager", Title: "Marketing Manager", MatchPercentage: 82},
		{CareerID: "electrician", Title: "Electrician", MatchPercentage: 80},
	})

	assert.Empty(t, flagged)
	assert.Equal(t, StageNoOverlap, d.Stage())
}

func TestDetect_OnlyTopFiveInspected(t *testing.T) {
	d := NewDifferentiator([]types.OverlapCluster{businessCluster()})

	matches := []types.RankedMatch{
		{CareerID: "electrician", MatchPercentage: 90},
		{CareerID: "nurse", MatchPercentage: 89},
		{CareerID: "teacher", MatchPercentage: 88},
		{CareerID: "chef", MatchPercentage: 87},
		{CareerID: "marketing-manager", MatchPercentage: 86},
		// Second member sits outside the top five window.
		{CareerID: "sales-manager", MatchPercentage: 85},
	}

	assert.Empty(t, d.Detect(matches))
}

func TestDetect_MultipleClustersFlagged(t *testing.T) {
	health := types.OverlapCluster{
		ID:        "healthcare",
		Category:  "healthcare",
		MemberIDs: []string{"nurse", "physician-assistant"},
	}
	matches := append(businessMatches()[:3],
		types.RankedMatch{CareerID: "nurse", Title: "Nurse", MatchPercentage: 77},
		types.RankedMatch{CareerID: "physician-assistant", Title: "Physician Assistant", MatchPercentage: 76},
	)

	d := NewDifferentiator([]types.OverlapCluster{businessCluster(), health})
	flagged := d.Detect(matches)

	assert.ElementsMatch(t, []string{"business-management", "healthcare"}, flagged)
}

func TestQuestions_UnionAcrossFlaggedClusters(t *testing.T) {
	d := NewDifferentiator([]types.OverlapCluster{businessCluster()})
	d.Detect(businessMatches())

	questions := d.Questions()

	require.Len(t, questions, 2)
	assert.Equal(t, StageQuizPresented, d.Stage())
}

func TestQuestions_NilWithoutDetection(t *testing.T) {
	d := NewDifferentiator([]types.OverlapCluster{businessCluster()})

	assert.Nil(t, d.Questions())
}

func TestRefine_BoostsAndResorts(t *testing.T) {
	d := NewDifferentiator([]types.OverlapCluster{businessCluster()})
	d.Detect(businessMatches())
	d.Questions()

	refined := d.Refine(types.DisambiguationResponse{"bm-q1": 1})

	require.Len(t, refined.Matches, 5)
	// Entrepreneur got +25 raw, capped at +15: 79 -> 94, now first.
	assert.Equal(t, "entrepreneur", refined.Matches[0].CareerID)
	assert.InDelta(t, 94.0, refined.Matches[0].MatchPercentage, 1e-6)
	// Product Manager got +12, under the cap: 78 -> 90.
	for _, m := range refined.Matches {
		if m.CareerID == "product-manager" {
			assert.InDelta(t, 90.0, m.MatchPercentage, 1e-6)
		}
	}
}

func TestRefine_TotalBoostCappedAcrossAnswers(t *testing.T) {
	d := NewDifferentiator([]types.OverlapCluster{businessCluster()})
	d.Detect(businessMatches())
	d.Questions()

	// Sales Manager accumulates 10 + 22 = 32 raw points across answers;
	// the aggregate cap holds it to 15.
	refined := d.Refine(types.DisambiguationResponse{"bm-q1": 0, "bm-q2": 0})

	for _, m := range refined.Matches {
		if m.CareerID == "sales-manager" {
			assert.InDelta(t, 95.0, m.MatchPercentage, 1e-6)
		}
	}
}

func TestRefine_FinalPercentageClampedToHundred(t *testing.T) {
	matches := []types.RankedMatch{
		{CareerID: "marketing-manager", Title: "Marketing Manager", MatchPercentage: 95},
		{CareerID: "sales-manager", Title: "Sales Manager", MatchPercentage: 90},
	}
	d := NewDifferentiator([]types.OverlapCluster{businessCluster()})
	d.Detect(matches)
	d.Questions()

	refined := d.Refine(types.DisambiguationResponse{"bm-q1": 0})

	assert.LessOrEqual(t, refined.Matches[0].MatchPercentage, 100.0)
	assert.InDelta(t, 100.0, refined.Matches[0].MatchPercentage, 1e-6)
}

func TestRefine_UnknownQuestionOrOptionIgnored(t *testing.T) {
	d := NewDifferentiator([]types.OverlapCluster{businessCluster()})
	original := businessMatches()
	d.Detect(original)
	d.Questions()

	refined := d.Refine(types.DisambiguationResponse{
		"no-such-question": 0,
		"bm-q1":            99, // out of range
	})

	assert.Equal(t, original, refined.Matches)
	assert.Empty(t, refined.Explanations)
}

func TestRefine_ExplanationsAccumulate(t *testing.T) {
	d := NewDifferentiator([]types.OverlapCluster{businessCluster()})
	d.Detect(businessMatches())
	d.Questions()

	// marketing-manager: +25 (q1, qualifies) and sales-manager +22 (q2,
	// qualifies). Both earn sentences; smaller deltas earn none.
	refined := d.Refine(types.DisambiguationResponse{"bm-q1": 0, "bm-q2": 0})

	assert.Contains(t, refined.Explanations["Marketing Manager"], "Grow an existing brand")
	assert.Contains(t, refined.Explanations["Sales Manager"], "Closing deals")
	assert.NotContains(t, refined.Explanations, "Product Manager")
}

func TestRefine_PassThroughWhenNoOverlap(t *testing.T) {
	d := NewDifferentiator([]types.OverlapCluster{businessCluster()})
	original := []types.RankedMatch{
		{CareerID: "electrician", Title: "Electrician", MatchPercentage: 88},
	}
	d.Detect(original)

	refined := d.Refine(nil)

	assert.Equal(t, original, refined.Matches)
	assert.NotNil(t, refined.Explanations)
	assert.Empty(t, refined.Explanations)
	assert.Equal(t, StageRefined, d.Stage())
}

func TestSkip_IndistinguishableFromNoOverlapPath(t *testing.T) {
	original := businessMatches()

	noOverlap := NewDifferentiator([]types.OverlapCluster{businessCluster()})
	noOverlap.Detect(original[:1])
	passThrough := noOverlap.Refine(nil)

	skipped := NewDifferentiator([]types.OverlapCluster{businessCluster()})
	skipped.Detect(original)
	skipped.Questions()
	skipResult := skipped.Skip()

	assert.Equal(t, original, skipResult.Matches)
	assert.Empty(t, skipResult.Explanations)
	assert.Equal(t, StageRefined, skipped.Stage())
	// Same output shape on both paths.
	assert.IsType(t, passThrough, skipResult)
	assert.NotNil(t, skipResult.Explanations)
}
