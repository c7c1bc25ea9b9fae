package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lifetimegps/quiz-engine/internal/aggregation"
	"github.com/lifetimegps/quiz-engine/internal/observability"
	"github.com/lifetimegps/quiz-engine/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Compute the weighted score breakdown for quiz responses",
	Long:  "Aggregates raw quiz responses into trait tallies and computes the per-category percentages and weighted total, producing a ScoreBreakdown JSON.",
	RunE:  runScore,
}

var (
	scoreResponses string
	scoreOutput    string
	scoreVerbose   bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResponses, "responses", "r", "", "Path to input RawResponses JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output ScoreBreakdown JSON file (default: stdout)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a formatted breakdown summary")

	if err := scoreCmd.MarkFlagRequired("responses"); err != nil {
		panic(fmt.Sprintf("failed to mark responses flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	// 1. Load raw responses
	raw, err := loadResponses(scoreResponses)
	if err != nil {
		return err
	}

	// 2. Aggregate into trait tallies
	profile := aggregation.Aggregate(raw)
	if profile.IsEmpty() {
		return fmt.Errorf("responses file %s contains no scoreable answers", scoreResponses)
	}

	// 3. Compute the weighted breakdown
	breakdown := scoring.ComputePercentages(profile)

	if scoreVerbose {
		observability.NewPrinter(os.Stderr).PrintBreakdown(breakdown)
	}

	return writeJSON(scoreOutput, breakdown)
}
