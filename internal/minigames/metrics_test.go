package minigames

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReactionScore_PerfectGame(t *testing.T) {
	score := ReactionScore(&ReactionResults{
		Rounds:              10,
		Hits:                10,
		TotalResponseMillis: 2000, // 200ms average, fastest bound
	})

	assert.InDelta(t, 100.0, score, 1e-6)
}

func TestReactionScore_SlowResponsesScoreSpeedZero(t *testing.T) {
	score := ReactionScore(&ReactionResults{
		Rounds:              10,
		Hits:                10,
		TotalResponseMillis: 15000, // 1500ms average, past the slowest bound
	})

	// Only the accuracy component remains.
	assert.InDelta(t, 40.0, score, 1e-6)
}

func TestReactionScore_NilOrEmptyResults(t *testing.T) {
	assert.Zero(t, ReactionScore(nil))
	assert.Zero(t, ReactionScore(&ReactionResults{}))
}

func TestMemoryScore_FirstTryEveryPair(t *testing.T) {
	assert.InDelta(t, 100.0, MemoryScore(&MemoryResults{Pairs: 8, Attempts: 8}), 1e-6)
}

func TestMemoryScore_ExtraAttemptsLowerScore(t *testing.T) {
	score := MemoryScore(&MemoryResults{Pairs: 8, Attempts: 16})
	assert.InDelta(t, 50.0, score, 1e-6)
}

func TestFocusScore_FalsePositivesPenalized(t *testing.T) {
	score := FocusScore(&FocusResults{Targets: 10, Correct: 8, FalsePositives: 3})
	assert.InDelta(t, 50.0, score, 1e-6)
}

func TestFocusScore_NeverNegative(t *testing.T) {
	score := FocusScore(&FocusResults{Targets: 10, Correct: 1, FalsePositives: 9})
	assert.Zero(t, score)
}

func TestCompute_MissingGamesScoreZero(t *testing.T) {
	metrics := Compute(nil, &MemoryResults{Pairs: 4, Attempts: 8}, nil)

	require.NotNil(t, metrics)
	assert.Zero(t, metrics.Reaction)
	assert.InDelta(t, 50.0, metrics.Memory, 1e-6)
	assert.Zero(t, metrics.Focus)
}
