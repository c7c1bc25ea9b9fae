// Package overlap detects easily-confused careers among the top ranked
// matches and refines the ranking through a short disambiguation quiz.
package overlap

import (
	"github.com/lifetimegps/quiz-engine/internal/types"
)

// Stage tracks progress through one disambiguation pass.
type Stage int

// Disambiguation stages. Every fresh ranking starts a new pass; NoOverlap
// and Refined are terminal.
const (
	StageInitial Stage = iota
	StageNoOverlap
	StageOverlapDetected
	StageQuizPresented
	StageRefined
)

const (
	// topWindow is how many leading matches detection inspects.
	topWindow = 5
	// minClusterMembers is how many cluster members must appear in the
	// top window before the cluster is flagged.
	minClusterMembers = 2
)

// Differentiator runs one disambiguation pass over a fresh ranking.
type Differentiator struct {
	clusters []types.OverlapCluster
	matches  []types.RankedMatch
	flagged  []types.OverlapCluster
	stage    Stage
}

// NewDifferentiator creates a differentiator over the configured clusters.
func NewDifferentiator(clusters []types.OverlapCluster) *Differentiator {
	return &Differentiator{clusters: clusters, stage: StageInitial}
}

// Stage returns the current stage of the pass.
func (d *Differentiator) Stage() Stage {
	return d.stage
}

// Detect inspects the top ranked matches for overlap cluster members and
// returns the IDs of every flagged cluster. A cluster is flagged when at
// least two of its members (by catalog ID) appear in the top five matches.
// Multiple clusters may be flagged at once.
func (d *Differentiator) Detect(matches []types.RankedMatch) []string {
	d.matches = matches
	d.flagged = nil

	window := matches
	if len(window) > topWindow {
		window = window[:topWindow]
	}

	flaggedIDs := []string{}
	for _, cluster := range d.clusters {
		count := 0
		for _, match := range window {
			if cluster.HasMember(match.CareerID) {
				count++
			}
		}
		if count >= minClusterMembers {
			d.flagged = append(d.flagged, cluster)
			flaggedIDs = append(flaggedIDs, cluster.ID)
		}
	}

	if len(d.flagged) == 0 {
		d.stage = StageNoOverlap
	} else {
		d.stage = StageOverlapDetected
	}
	return flaggedIDs
}

// Questions returns the union of differentiation questions across all
// flagged clusters and marks the quiz as presented. Returns nil unless an
// overlap was detected.
func (d *Differentiator) Questions() []types.DifferentiationQuestion {
	if d.stage != StageOverlapDetected && d.stage != StageQuizPresented {
		return nil
	}
	d.stage = StageQuizPresented

	questions := []types.DifferentiationQuestion{}
	for _, cluster := range d.flagged {
		questions = append(questions, cluster.Questions...)
	}
	return questions
}
