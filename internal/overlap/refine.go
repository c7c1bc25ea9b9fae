package overlap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lifetimegps/quiz-engine/internal/scoring"
	"github.com/lifetimegps/quiz-engine/internal/types"
)

const (
	// maxTotalBoost caps the total disambiguation boost applied to any
	// single career, in percentage points. Individual option deltas may
	// exceed this when summed across answers; the cap applies to the
	// aggregate.
	maxTotalBoost = 15.0
	// explanationThreshold is the minimum pre-cap adjustment from one
	// answer that earns an explanation sentence.
	explanationThreshold = 20.0
)

// Refine applies the answered differentiation questions to the ranking and
// re-sorts. Answers referencing unknown questions or option indexes are
// ignored. When no overlap was detected the original matches pass through
// unchanged with an empty explanations map.
func (d *Differentiator) Refine(answers types.DisambiguationResponse) *types.Refinement {
	if d.stage == StageNoOverlap || d.stage == StageInitial {
		d.stage = StageRefined
		return passThrough(d.matches)
	}
	d.stage = StageRefined

	boosts := map[string]float64{}
	explanations := map[string]string{}

	// Walk answers in question order so explanation accumulation is
	// reproducible.
	questionIDs := make([]string, 0, len(answers))
	for questionID := range answers {
		questionIDs = append(questionIDs, questionID)
	}
	sort.Strings(questionIDs)

	for _, questionID := range questionIDs {
		option, ok := d.lookupOption(questionID, answers[questionID])
		if !ok {
			continue
		}
		for careerID, delta := range option.Deltas {
			boosts[careerID] += delta
			if delta >= explanationThreshold {
				d.appendExplanation(explanations, careerID, option.Text)
			}
		}
	}

	refined := make([]types.RankedMatch, len(d.matches))
	copy(refined, d.matches)
	for i := range refined {
		boost := boosts[refined[i].CareerID]
		if boost > maxTotalBoost {
			boost = maxTotalBoost
		}
		refined[i].MatchPercentage = scoring.Clamp(refined[i].MatchPercentage + boost)
	}

	sort.SliceStable(refined, func(i, j int) bool {
		return refined[i].MatchPercentage > refined[j].MatchPercentage
	})

	return &types.Refinement{Matches: refined, Explanations: explanations}
}

// Skip declines the disambiguation quiz: the original matches pass through
// with an empty explanations map, identical in shape to the no-overlap path.
func (d *Differentiator) Skip() *types.Refinement {
	d.stage = StageRefined
	return passThrough(d.matches)
}

func passThrough(matches []types.RankedMatch) *types.Refinement {
	return &types.Refinement{Matches: matches, Explanations: map[string]string{}}
}

// lookupOption resolves an answered question to its chosen option across
// the flagged clusters.
func (d *Differentiator) lookupOption(questionID string, optionIdx int) (*types.DifferentiationOption, bool) {
	for _, cluster := range d.flagged {
		for i := range cluster.Questions {
			question := &cluster.Questions[i]
			if question.ID != questionID {
				continue
			}
			if optionIdx < 0 || optionIdx >= len(question.Options) {
				return nil, false
			}
			return &question.Options[optionIdx], true
		}
	}
	return nil, false
}

// appendExplanation accumulates a sentence for the affected career without
// overwriting earlier ones.
func (d *Differentiator) appendExplanation(explanations map[string]string, careerID, optionText string) {
	title := careerID
	for _, match := range d.matches {
		if match.CareerID == careerID {
			title = match.Title
			break
		}
	}

	sentence := fmt.Sprintf("Your answer %q strongly favors %s.", optionText, title)
	if existing := explanations[title]; existing != "" {
		explanations[title] = strings.TrimSpace(existing) + " " + sentence
	} else {
		explanations[title] = sentence
	}
}
