package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lifetimegps/quiz-engine/internal/catalog"
	"github.com/lifetimegps/quiz-engine/internal/observability"
	"github.com/lifetimegps/quiz-engine/internal/overlap"
)

var detectOverlapsCmd = &cobra.Command{
	Use:   "detect-overlaps",
	Short: "Detect overlap clusters among ranked matches",
	Long:  "Checks the top ranked matches against the predefined overlap clusters and emits the flagged clusters with their differentiation questions.",
	RunE:  runDetectOverlaps,
}

var (
	detectMatches  string
	detectCareers  string
	detectClusters string
	detectOutput   string
	detectVerbose  bool
)

func init() {
	detectOverlapsCmd.Flags().StringVarP(&detectMatches, "matches", "m", "", "Path to input ranked matches JSON file (required)")
	detectOverlapsCmd.Flags().StringVarP(&detectCareers, "careers", "c", defaultCareersPath, "Path to career catalog JSON file")
	detectOverlapsCmd.Flags().StringVarP(&detectClusters, "clusters", "k", defaultClustersPath, "Path to overlap clusters JSON file")
	detectOverlapsCmd.Flags().StringVarP(&detectOutput, "out", "o", "", "Path to output JSON file (default: stdout)")
	detectOverlapsCmd.Flags().BoolVarP(&detectVerbose, "verbose", "v", false, "Print the questions for flagged clusters")

	if err := detectOverlapsCmd.MarkFlagRequired("matches"); err != nil {
		panic(fmt.Sprintf("failed to mark matches flag as required: %v", err))
	}

	rootCmd.AddCommand(detectOverlapsCmd)
}

func runDetectOverlaps(_ *cobra.Command, _ []string) error {
	// 1. Load ranked matches and cluster definitions
	matches, err := loadMatches(detectMatches)
	if err != nil {
		return err
	}

	careers, err := catalog.LoadCareers(detectCareers)
	if err != nil {
		return fmt.Errorf("failed to load career catalog: %w", err)
	}

	clusters, err := catalog.LoadClusters(detectClusters, careers)
	if err != nil {
		return fmt.Errorf("failed to load overlap clusters: %w", err)
	}

	// 2. Detect
	differentiator := overlap.NewDifferentiator(clusters)
	flagged := differentiator.Detect(matches)
	questions := differentiator.Questions()

	if detectVerbose {
		observability.NewPrinter(os.Stderr).PrintQuestions(questions)
	}

	return writeJSON(detectOutput, map[string]any{
		"flagged_clusters": flagged,
		"questions":        questions,
	})
}
