package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lifetimegps/quiz-engine/internal/types"
)

// Default data file locations, relative to the working directory.
const (
	defaultCareersPath  = "data/career_catalog.json"
	defaultClustersPath = "data/overlap_clusters.json"
)

// loadResponses reads a RawResponses JSON file.
func loadResponses(path string) (*types.RawResponses, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read responses file %s: %w", path, err)
	}

	var raw types.RawResponses
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal responses JSON: %w", err)
	}
	return &raw, nil
}

// loadMatches reads a RankedMatch array JSON file.
func loadMatches(path string) ([]types.RankedMatch, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read matches file %s: %w", path, err)
	}

	var matches []types.RankedMatch
	if err := json.Unmarshal(content, &matches); err != nil {
		return nil, fmt.Errorf("failed to unmarshal matches JSON: %w", err)
	}
	return matches, nil
}

// writeJSON marshals v with indentation and writes it to path, creating the
// output directory when needed. An empty path writes to stdout.
func writeJSON(path string, v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	if path == "" {
		_, err = fmt.Fprintln(os.Stdout, string(jsonOutput))
		return err
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
