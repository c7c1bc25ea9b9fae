package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lifetimegps/quiz-engine/internal/catalog"
	"github.com/lifetimegps/quiz-engine/internal/observability"
	"github.com/lifetimegps/quiz-engine/internal/overlap"
	"github.com/lifetimegps/quiz-engine/internal/types"
)

var refineCmd = &cobra.Command{
	Use:   "refine",
	Short: "Apply disambiguation answers to ranked matches",
	Long:  "Applies the user's differentiation question answers to a ranked match list, boosting cluster members and re-sorting, producing a Refinement JSON. Use --skip to decline the follow-up quiz and keep the original ranking.",
	RunE:  runRefine,
}

var (
	refineMatches  string
	refineCareers  string
	refineClusters string
	refineAnswers  string
	refineSkip     bool
	refineOutput   string
	refineVerbose  bool
)

func init() {
	refineCmd.Flags().StringVarP(&refineMatches, "matches", "m", "", "Path to input ranked matches JSON file (required)")
	refineCmd.Flags().StringVarP(&refineCareers, "careers", "c", defaultCareersPath, "Path to career catalog JSON file")
	refineCmd.Flags().StringVarP(&refineClusters, "clusters", "k", defaultClustersPath, "Path to overlap clusters JSON file")
	refineCmd.Flags().StringVarP(&refineAnswers, "answers", "a", "", "Path to disambiguation answers JSON file (question ID -> option index)")
	refineCmd.Flags().BoolVar(&refineSkip, "skip", false, "Skip the follow-up quiz and keep the original ranking")
	refineCmd.Flags().StringVarP(&refineOutput, "out", "o", "", "Path to output Refinement JSON file (default: stdout)")
	refineCmd.Flags().BoolVarP(&refineVerbose, "verbose", "v", false, "Print a formatted refinement summary")

	if err := refineCmd.MarkFlagRequired("matches"); err != nil {
		panic(fmt.Sprintf("failed to mark matches flag as required: %v", err))
	}

	rootCmd.AddCommand(refineCmd)
}

func runRefine(_ *cobra.Command, _ []string) error {
	if !refineSkip && refineAnswers == "" {
		return fmt.Errorf("either --answers or --skip is required")
	}

	// 1. Load matches and cluster definitions
	matches, err := loadMatches(refineMatches)
	if err != nil {
		return err
	}

	careers, err := catalog.LoadCareers(refineCareers)
	if err != nil {
		return fmt.Errorf("failed to load career catalog: %w", err)
	}

	clusters, err := catalog.LoadClusters(refineClusters, careers)
	if err != nil {
		return fmt.Errorf("failed to load overlap clusters: %w", err)
	}

	// 2. Re-run detection so the differentiator knows which clusters apply
	differentiator := overlap.NewDifferentiator(clusters)
	differentiator.Detect(matches)

	// 3. Apply the answers, or pass through on skip
	var refinement *types.Refinement
	if refineSkip {
		refinement = differentiator.Skip()
	} else {
		content, err := os.ReadFile(refineAnswers)
		if err != nil {
			return fmt.Errorf("failed to read answers file %s: %w", refineAnswers, err)
		}
		var answers types.DisambiguationResponse
		if err := json.Unmarshal(content, &answers); err != nil {
			return fmt.Errorf("failed to unmarshal answers JSON: %w", err)
		}

		differentiator.Questions()
		refinement = differentiator.Refine(answers)
	}

	if refineVerbose {
		observability.NewPrinter(os.Stderr).PrintRefinement(refinement)
	}

	return writeJSON(refineOutput, refinement)
}
