// Package main provides the entry point for the quiz engine CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quiz_agent",
	Short: "Career assessment quiz engine",
	Long:  "Quiz engine scores career assessment responses, ranks career matches against a catalog, and disambiguates overlapping matches through follow-up questions, via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
