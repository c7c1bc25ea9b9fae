// Package pipeline orchestrates the assessment run: aggregate raw responses,
// compute the score breakdown, rank the catalog, and detect overlaps.
package pipeline

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lifetimegps/quiz-engine/internal/aggregation"
	"github.com/lifetimegps/quiz-engine/internal/db"
	"github.com/lifetimegps/quiz-engine/internal/overlap"
	"github.com/lifetimegps/quiz-engine/internal/ranking"
	"github.com/lifetimegps/quiz-engine/internal/scoring"
	"github.com/lifetimegps/quiz-engine/internal/types"
)

// ErrInsufficientData reports that a session has no responses to score.
// Callers must surface this explicitly; the pipeline never fabricates
// plausible-looking scores to fill the gap.
var ErrInsufficientData = errors.New("no quiz responses to score")

// Options configures one assessment run.
type Options struct {
	Raw      *types.RawResponses
	Catalog  []types.CareerRecord
	Clusters []types.OverlapCluster
	TopN     int

	// Optional persistence. When Database is nil results stay in memory.
	Database  *db.DB
	SessionID uuid.UUID
}

// Result is the output of one assessment run.
type Result struct {
	Profile         *types.AggregatedProfile
	Breakdown       *types.ScoreBreakdown
	Matches         []types.RankedMatch
	FlaggedClusters []string
	Questions       []types.DifferentiationQuestion
}

// Run executes the scoring pipeline. The flow is strictly one-directional:
// raw answers, tallies, percentages, ranked matches, overlap detection.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Raw == nil || (len(opts.Raw.Sectors) == 0 && opts.Raw.Interests == "" && opts.Raw.MiniGames == nil) {
		return nil, ErrInsufficientData
	}

	// 1. Aggregate raw answers into tallies
	profile := aggregation.Aggregate(opts.Raw)

	// 2. Convert tallies into category percentages
	breakdown := scoring.ComputePercentages(profile)

	// 3. Rank the catalog
	matches := ranking.Rank(profile, breakdown, opts.Catalog, opts.TopN)

	// 4. Detect overlap clusters among the top matches
	differentiator := overlap.NewDifferentiator(opts.Clusters)
	flagged := differentiator.Detect(matches)

	result := &Result{
		Profile:         profile,
		Breakdown:       breakdown,
		Matches:         matches,
		FlaggedClusters: flagged,
	}
	if len(flagged) > 0 {
		result.Questions = differentiator.Questions()
	}

	// 5. Persist the snapshot when a database is connected
	if opts.Database != nil && opts.SessionID != uuid.Nil {
		if err := persist(ctx, opts.Database, opts.SessionID, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// Refine applies disambiguation answers (or a skip) to a previously ranked
// session and persists the refinement.
func Refine(ctx context.Context, opts Options, matches []types.RankedMatch, answers types.DisambiguationResponse, skip bool) (*types.Refinement, error) {
	differentiator := overlap.NewDifferentiator(opts.Clusters)
	differentiator.Detect(matches)

	var refinement *types.Refinement
	if skip {
		refinement = differentiator.Skip()
	} else {
		differentiator.Questions()
		refinement = differentiator.Refine(answers)
	}

	if opts.Database != nil && opts.SessionID != uuid.Nil {
		if err := opts.Database.SaveResult(ctx, opts.SessionID, db.ResultRefinement, refinement); err != nil {
			return nil, err
		}
		if err := opts.Database.UpdateSessionStatus(ctx, opts.SessionID, db.StatusRefined); err != nil {
			return nil, err
		}
	}

	return refinement, nil
}

func persist(ctx context.Context, database *db.DB, sessionID uuid.UUID, result *Result) error {
	if err := database.SaveResult(ctx, sessionID, db.ResultBreakdown, result.Breakdown); err != nil {
		return err
	}
	if err := database.SaveResult(ctx, sessionID, db.ResultMatches, result.Matches); err != nil {
		return err
	}
	return database.UpdateSessionStatus(ctx, sessionID, db.StatusScored)
}
