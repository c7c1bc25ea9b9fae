// Package minigames converts raw mini-game results into 0-100 metric scores.
package minigames

import (
	"github.com/lifetimegps/quiz-engine/internal/types"
)

// Reaction speed scoring bounds, in milliseconds per round.
const (
	fastestReactionMillis = 200
	slowestReactionMillis = 1000
)

// ReactionResults holds the raw counters from the reaction mini-game.
type ReactionResults struct {
	Rounds              int `json:"rounds"`
	Hits                int `json:"hits"`
	TotalResponseMillis int `json:"total_response_millis"`
}

// MemoryResults holds the raw counters from the memory-pairs mini-game.
type MemoryResults struct {
	Pairs    int `json:"pairs"`
	Attempts int `json:"attempts"`
}

// FocusResults holds the raw counters from the focus mini-game.
type FocusResults struct {
	Targets        int `json:"targets"`
	Correct        int `json:"correct"`
	FalsePositives int `json:"false_positives"`
}

// Compute turns raw mini-game results into metric scores. A nil result means
// the game was not played and scores zero; absence never errors.
func Compute(reaction *ReactionResults, memory *MemoryResults, focus *FocusResults) *types.MiniGameMetrics {
	return &types.MiniGameMetrics{
		Reaction: ReactionScore(reaction),
		Memory:   MemoryScore(memory),
		Focus:    FocusScore(focus),
	}
}

// ReactionScore scores the reaction game: 60% response speed, 40% hit
// accuracy. Average responses at or under 200ms score full speed marks;
// at or over 1000ms they score none.
func ReactionScore(r *ReactionResults) float64 {
	if r == nil || r.Rounds <= 0 {
		return 0
	}

	accuracy := float64(r.Hits) / float64(r.Rounds)
	avgMillis := float64(r.TotalResponseMillis) / float64(r.Rounds)

	speed := (slowestReactionMillis - avgMillis) / (slowestReactionMillis - fastestReactionMillis)
	speed = clamp01(speed)

	return clampScore((0.6*speed + 0.4*clamp01(accuracy)) * 100)
}

// MemoryScore scores the memory game as the ratio of pairs to attempts:
// a perfect game matches every pair on its first attempt.
func MemoryScore(m *MemoryResults) float64 {
	if m == nil || m.Pairs <= 0 || m.Attempts <= 0 {
		return 0
	}
	return clampScore(float64(m.Pairs) / float64(m.Attempts) * 100)
}

// FocusScore scores the focus game as correct selections minus false
// positives, normalized by target count.
func FocusScore(f *FocusResults) float64 {
	if f == nil || f.Targets <= 0 {
		return 0
	}
	return clampScore(float64(f.Correct-f.FalsePositives) / float64(f.Targets) * 100)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
