package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lifetimegps/quiz-engine/internal/catalog"
	"github.com/lifetimegps/quiz-engine/internal/config"
	"github.com/lifetimegps/quiz-engine/internal/db"
	"github.com/lifetimegps/quiz-engine/internal/llm"
	"github.com/lifetimegps/quiz-engine/internal/logger"
	"github.com/lifetimegps/quiz-engine/internal/ranking"
	"github.com/lifetimegps/quiz-engine/internal/roadmap"
	"github.com/lifetimegps/quiz-engine/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for running quiz sessions, scoring, disambiguation, and roadmap generation.`,
	RunE:  runServe,
}

var (
	servePort     int
	serveConfig   string
	serveCareers  string
	serveClusters string
	serveTopN     int
	serveJSONLogs bool
	serveDebug    bool
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to JSON config file (flags override config values)")
	serveCmd.Flags().StringVarP(&serveCareers, "careers", "c", defaultCareersPath, "Path to career catalog JSON file")
	serveCmd.Flags().StringVarP(&serveClusters, "clusters", "k", defaultClustersPath, "Path to overlap clusters JSON file")
	serveCmd.Flags().IntVarP(&serveTopN, "top", "n", ranking.DefaultTopN, "Number of top matches per scoring run")
	serveCmd.Flags().BoolVar(&serveJSONLogs, "json-logs", false, "Emit logs as JSON")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	apiKey := os.Getenv("GEMINI_API_KEY")

	// Config file fills in anything not set by a flag or the environment
	if serveConfig != "" {
		cfg, err := config.LoadConfig(serveConfig)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if !cmd.Flags().Changed("careers") && cfg.Careers != "" {
			serveCareers = cfg.Careers
		}
		if !cmd.Flags().Changed("clusters") && cfg.Clusters != "" {
			serveClusters = cfg.Clusters
		}
		if !cmd.Flags().Changed("top") && cfg.TopN > 0 {
			serveTopN = cfg.TopN
		}
		if !cmd.Flags().Changed("json-logs") {
			serveJSONLogs = cfg.LogJSON
		}
		if !cmd.Flags().Changed("debug") {
			serveDebug = cfg.Debug
		}
		if databaseURL == "" {
			databaseURL = cfg.DatabaseURL
		}
		if apiKey == "" {
			apiKey = cfg.APIKey
		}
	}

	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	log, err := logger.New(serveJSONLogs, serveDebug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	careers, err := catalog.LoadCareers(serveCareers)
	if err != nil {
		return fmt.Errorf("failed to load career catalog: %w", err)
	}
	clusters, err := catalog.LoadClusters(serveClusters, careers)
	if err != nil {
		return fmt.Errorf("failed to load overlap clusters: %w", err)
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("failed to ensure database schema: %w", err)
	}

	// Roadmap generation is optional; the endpoint returns 503 without a key
	var roadmaps *roadmap.Generator
	if apiKey != "" {
		client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
		roadmaps = roadmap.NewGenerator(client)
	}

	srv, err := server.New(&server.Config{
		Port:     servePort,
		Database: database,
		Careers:  careers,
		Clusters: clusters,
		TopN:     serveTopN,
		Roadmaps: roadmaps,
		Logger:   log,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
