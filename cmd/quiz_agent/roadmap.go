package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lifetimegps/quiz-engine/internal/catalog"
	"github.com/lifetimegps/quiz-engine/internal/llm"
	"github.com/lifetimegps/quiz-engine/internal/roadmap"
	"github.com/lifetimegps/quiz-engine/internal/types"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Generate a career roadmap for a catalog career",
	Long:  "Generates a step-by-step career roadmap for one career from the catalog using the Gemini API. Requires GEMINI_API_KEY.",
	RunE:  runRoadmap,
}

var (
	roadmapCareerID string
	roadmapCareers  string
	roadmapOutput   string
)

func init() {
	roadmapCmd.Flags().StringVar(&roadmapCareerID, "career", "", "Catalog ID of the career (required)")
	roadmapCmd.Flags().StringVarP(&roadmapCareers, "careers", "c", defaultCareersPath, "Path to career catalog JSON file")
	roadmapCmd.Flags().StringVarP(&roadmapOutput, "out", "o", "", "Path to output markdown file (default: stdout)")

	if err := roadmapCmd.MarkFlagRequired("career"); err != nil {
		panic(fmt.Sprintf("failed to mark career flag as required: %v", err))
	}

	rootCmd.AddCommand(roadmapCmd)
}

func runRoadmap(cmd *cobra.Command, _ []string) error {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	careers, err := catalog.LoadCareers(roadmapCareers)
	if err != nil {
		return fmt.Errorf("failed to load career catalog: %w", err)
	}

	var found bool
	var career types.CareerRecord
	for _, c := range careers {
		if c.ID == roadmapCareerID {
			career, found = c, true
			break
		}
	}
	if !found {
		return fmt.Errorf("career %q is not in the catalog", roadmapCareerID)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	content, err := roadmap.NewGenerator(client).Generate(ctx, career)
	if err != nil {
		return err
	}

	if roadmapOutput == "" {
		_, err = fmt.Fprintln(os.Stdout, content)
		return err
	}
	if err := os.WriteFile(roadmapOutput, []byte(content+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write roadmap to %s: %w", roadmapOutput, err)
	}
	return nil
}
