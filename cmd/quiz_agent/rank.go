package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lifetimegps/quiz-engine/internal/aggregation"
	"github.com/lifetimegps/quiz-engine/internal/catalog"
	"github.com/lifetimegps/quiz-engine/internal/observability"
	"github.com/lifetimegps/quiz-engine/internal/ranking"
	"github.com/lifetimegps/quiz-engine/internal/scoring"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank career matches for quiz responses",
	Long:  "Runs the scoring pipeline against the career catalog and produces the top ranked matches with per-career match percentages.",
	RunE:  runRank,
}

var (
	rankResponses string
	rankCareers   string
	rankOutput    string
	rankTopN      int
	rankVerbose   bool
)

func init() {
	rankCmd.Flags().StringVarP(&rankResponses, "responses", "r", "", "Path to input RawResponses JSON file (required)")
	rankCmd.Flags().StringVarP(&rankCareers, "careers", "c", defaultCareersPath, "Path to career catalog JSON file")
	rankCmd.Flags().StringVarP(&rankOutput, "out", "o", "", "Path to output ranked matches JSON file (default: stdout)")
	rankCmd.Flags().IntVarP(&rankTopN, "top", "n", ranking.DefaultTopN, "Number of top matches to return")
	rankCmd.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print a formatted match summary")

	if err := rankCmd.MarkFlagRequired("responses"); err != nil {
		panic(fmt.Sprintf("failed to mark responses flag as required: %v", err))
	}

	rootCmd.AddCommand(rankCmd)
}

func runRank(_ *cobra.Command, _ []string) error {
	// 1. Load raw responses and catalog
	raw, err := loadResponses(rankResponses)
	if err != nil {
		return err
	}

	careers, err := catalog.LoadCareers(rankCareers)
	if err != nil {
		return fmt.Errorf("failed to load career catalog: %w", err)
	}

	// 2. Aggregate and score
	profile := aggregation.Aggregate(raw)
	breakdown := scoring.ComputePercentages(profile)

	// 3. Rank the catalog
	matches := ranking.Rank(profile, breakdown, careers, rankTopN)

	if rankVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintBreakdown(breakdown)
		printer.PrintMatches(matches)
	}

	return writeJSON(rankOutput, matches)
}
