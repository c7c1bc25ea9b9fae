// Package server provides the HTTP API for the quiz scoring engine.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/lifetimegps/quiz-engine/internal/db"
	"github.com/lifetimegps/quiz-engine/internal/roadmap"
	"github.com/lifetimegps/quiz-engine/internal/server/ratelimit"
	"github.com/lifetimegps/quiz-engine/internal/types"
)

// Config holds server configuration.
type Config struct {
	Port            int
	Database        *db.DB
	Careers         []types.CareerRecord
	Clusters        []types.OverlapCluster
	TopN            int
	Roadmaps        *roadmap.Generator
	Logger          *zap.Logger
	RateLimitConfig *ratelimit.Config
	ShutdownTimeout time.Duration
}

// Server is the HTTP server for the quiz engine API.
type Server struct {
	config      *Config
	httpServer  *http.Server
	mux         *http.ServeMux
	store       *db.DB
	careers     []types.CareerRecord
	careerIndex map[string]types.CareerRecord
	clusters    []types.OverlapCluster
	topN        int
	roadmaps    *roadmap.Generator
	logger      *zap.Logger
	rateLimiter *ratelimit.Limiter
}

// New creates a new server instance with the given configuration.
func New(config *Config) (*Server, error) {
	if config == nil {
		return nil, fmt.Errorf("config is required")
	}
	if config.Database == nil {
		return nil, fmt.Errorf("database is required")
	}
	if len(config.Careers) == 0 {
		return nil, fmt.Errorf("career catalog is empty")
	}
	if config.Port == 0 {
		config.Port = 8080
	}
	if config.TopN <= 0 {
		config.TopN = 5
	}
	if config.ShutdownTimeout == 0 {
		config.ShutdownTimeout = 10 * time.Second
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}

	rateLimitConfig := config.RateLimitConfig
	if rateLimitConfig == nil {
		rateLimitConfig = ratelimit.LoadConfigFromEnv()
	}

	careerIndex := make(map[string]types.CareerRecord, len(config.Careers))
	for _, career := range config.Careers {
		careerIndex[career.ID] = career
	}

	s := &Server{
		config:      config,
		mux:         http.NewServeMux(),
		store:       config.Database,
		careers:     config.Careers,
		careerIndex: careerIndex,
		clusters:    config.Clusters,
		topN:        config.TopN,
		roadmaps:    config.Roadmaps,
		logger:      config.Logger,
		rateLimiter: ratelimit.NewLimiter(rateLimitConfig),
	}
	s.registerRoutes()

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", config.Port),
		Handler:      s.withCORS(s.withRateLimit(s.withLogging(s.mux))),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s, nil
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /health", s.handleHealth)

	// Session lifecycle
	s.mux.HandleFunc("POST /sessions", s.handleCreateSession)
	s.mux.HandleFunc("GET /sessions/{id}", s.handleGetSession)
	s.mux.HandleFunc("DELETE /sessions/{id}", s.handleDeleteSession)
	s.mux.HandleFunc("POST /sessions/{id}/reset", s.handleResetSession)

	// Quiz progress
	s.mux.HandleFunc("GET /sessions/{id}/sectors", s.handleListSectors)
	s.mux.HandleFunc("POST /sessions/{id}/sectors/{sector}", s.handleSubmitSector)
	s.mux.HandleFunc("POST /sessions/{id}/minigames", s.handleSubmitMiniGames)

	// Scoring and results
	s.mux.HandleFunc("POST /sessions/{id}/score", s.handleScore)
	s.mux.HandleFunc("GET /sessions/{id}/breakdown", s.handleGetBreakdown)
	s.mux.HandleFunc("GET /sessions/{id}/matches", s.handleGetMatches)

	// Overlap disambiguation
	s.mux.HandleFunc("GET /sessions/{id}/overlaps", s.handleGetOverlaps)
	s.mux.HandleFunc("POST /sessions/{id}/disambiguation", s.handleDisambiguation)

	// Roadmaps
	s.mux.HandleFunc("POST /sessions/{id}/roadmap", s.handleGenerateRoadmap)

	// Career catalog
	s.mux.HandleFunc("GET /careers", s.handleListCareers)
	s.mux.HandleFunc("GET /careers/{id}", s.handleGetCareer)
}

// Start starts the HTTP server and blocks until shutdown.
func (s *Server) Start() error {
	shutdownErr := make(chan error, 1)

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		s.logger.Info("shutting down server")
		s.rateLimiter.Stop()

		ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()
		shutdownErr <- s.httpServer.Shutdown(ctx)
	}()

	s.logger.Info("server listening", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	return <-shutdownErr
}

// Handler returns the server's root handler, for testing.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// withCORS adds CORS headers to responses.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit enforces per-client, per-endpoint rate limits.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		setRateLimitHeaders(w, info)

		if !allowed {
			s.logger.Warn("rate limit exceeded",
				zap.String("client", clientID),
				zap.String("path", r.URL.Path))
			rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging logs each request with method, path, status, and duration.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", recorder.status),
			zap.Duration("duration", time.Since(start)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
