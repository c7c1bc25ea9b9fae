package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/lifetimegps/quiz-engine/internal/db"
	"github.com/lifetimegps/quiz-engine/internal/minigames"
	"github.com/lifetimegps/quiz-engine/internal/overlap"
	"github.com/lifetimegps/quiz-engine/internal/pipeline"
	"github.com/lifetimegps/quiz-engine/internal/ranking"
	"github.com/lifetimegps/quiz-engine/internal/types"
)

// handleCreateSession starts a new quiz session. POST /sessions
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req types.CreateSessionRequest
	if err := decodeOptionalBody(r, &req); err != nil {
		s.errorResponse(w, &ValidationFailedError{Message: err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, &ValidationFailedError{Message: err.Error()})
		return
	}

	sessionID, err := s.store.CreateSession(r.Context(), req.Nickname)
	if err != nil {
		s.errorResponse(w, &DatabaseError{Operation: "create session", Cause: err})
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"session_id": sessionID,
		"status":     db.StatusInProgress,
	})
}

// handleGetSession returns session state and quiz progress. GET /sessions/{id}
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session, ok := s.loadSession(w, r)
	if !ok {
		return
	}

	submissions, err := s.store.ListSubmittedSectors(r.Context(), session.ID)
	if err != nil {
		s.errorResponse(w, &DatabaseError{Operation: "list sectors", Cause: err})
		return
	}

	sectors := make([]string, 0, len(submissions))
	for _, sub := range submissions {
		sectors = append(sectors, sub.Sector)
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"session_id":        session.ID,
		"nickname":          session.Nickname,
		"status":            session.Status,
		"submitted_sectors": sectors,
		"created_at":        session.CreatedAt,
		"updated_at":        session.UpdatedAt,
	})
}

// handleDeleteSession removes a session and all its data. DELETE /sessions/{id}
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	session, ok := s.loadSession(w, r)
	if !ok {
		return
	}

	if err := s.store.DeleteSession(r.Context(), session.ID); err != nil {
		s.errorResponse(w, &DatabaseError{Operation: "delete session", Cause: err})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleResetSession clears all responses and results so the quiz can be
// retaken from the start. POST /sessions/{id}/reset
func (s *Server) handleResetSession(w http.ResponseWriter, r *http.Request) {
	session, ok := s.loadSession(w, r)
	if !ok {
		return
	}

	if err := s.store.ResetSession(r.Context(), session.ID); err != nil {
		s.errorResponse(w, &DatabaseError{Operation: "reset session", Cause: err})
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"session_id": session.ID,
		"status":     db.StatusInProgress,
	})
}

// handleListSectors returns which sectors the session has submitted.
// GET /sessions/{id}/sectors
func (s *Server) handleListSectors(w http.ResponseWriter, r *http.Request) {
	session, ok := s.loadSession(w, r)
	if !ok {
		return
	}

	submissions, err := s.store.ListSubmittedSectors(r.Context(), session.ID)
	if err != nil {
		s.errorResponse(w, &DatabaseError{Operation: "list sectors", Cause: err})
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"session_id": session.ID,
		"sectors":    submissions,
	})
}

// handleSubmitSector stores one sector's answers. Sectors are immutable once
// submitted. POST /sessions/{id}/sectors/{sector}
func (s *Server) handleSubmitSector(w http.ResponseWriter, r *http.Request) {
	session, ok := s.loadSession(w, r)
	if !ok {
		return
	}

	sector := types.Sector(r.PathValue("sector"))
	if !validSector(sector) {
		s.errorResponse(w, &ValidationFailedError{Field: "sector", Message: "unknown sector: " + string(sector)})
		return
	}

	var req types.SubmitSectorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, &ValidationFailedError{Message: "invalid request body: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, &ValidationFailedError{Message: err.Error()})
		return
	}

	submitted, err := s.store.ListSubmittedSectors(r.Context(), session.ID)
	if err != nil {
		s.errorResponse(w, &DatabaseError{Operation: "list sectors", Cause: err})
		return
	}
	for _, sub := range submitted {
		if sub.Sector == string(sector) {
			s.errorResponse(w, &SectorConflictError{Sector: string(sector)})
			return
		}
	}

	if err := s.store.SaveSectorResponses(r.Context(), session.ID, sector, req.Answers); err != nil {
		s.errorResponse(w, &DatabaseError{Operation: "save sector", Cause: err})
		return
	}

	// Interest selections ride along with the interests sector submission
	if req.Interests != "" {
		if err := s.store.SaveInterests(r.Context(), session.ID, req.Interests); err != nil {
			s.errorResponse(w, &DatabaseError{Operation: "save interests", Cause: err})
			return
		}
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"session_id": session.ID,
		"sector":     sector,
	})
}

type miniGamesRequest struct {
	Reaction *minigames.ReactionResults `json:"reaction,omitempty"`
	Memory   *minigames.MemoryResults   `json:"memory,omitempty"`
	Focus    *minigames.FocusResults    `json:"focus,omitempty"`
}

// handleSubmitMiniGames computes and stores mini-game metric scores.
// POST /sessions/{id}/minigames
func (s *Server) handleSubmitMiniGames(w http.ResponseWriter, r *http.Request) {
	session, ok := s.loadSession(w, r)
	if !ok {
		return
	}

	var req miniGamesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, &ValidationFailedError{Message: "invalid request body: " + err.Error()})
		return
	}
	if req.Reaction == nil && req.Memory == nil && req.Focus == nil {
		s.errorResponse(w, &ValidationFailedError{Message: "at least one mini-game result is required"})
		return
	}

	metrics := minigames.Compute(req.Reaction, req.Memory, req.Focus)
	if err := s.store.SaveMiniGameMetrics(r.Context(), session.ID, metrics); err != nil {
		s.errorResponse(w, &DatabaseError{Operation: "save mini-game metrics", Cause: err})
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"session_id": session.ID,
		"metrics":    metrics,
	})
}

// handleScore runs the full scoring pipeline for a session.
// POST /sessions/{id}/score
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	session, ok := s.loadSession(w, r)
	if !ok {
		return
	}

	var req types.ScoreRequest
	if err := decodeOptionalBody(r, &req); err != nil {
		s.errorResponse(w, &ValidationFailedError{Message: err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, &ValidationFailedError{Message: err.Error()})
		return
	}

	raw, err := s.store.GetRawResponses(r.Context(), session.ID)
	if err != nil {
		s.errorResponse(w, &DatabaseError{Operation: "load responses", Cause: err})
		return
	}

	topN := req.TopN
	if topN == 0 {
		topN = s.topN
	}

	result, err := pipeline.Run(r.Context(), pipeline.Options{
		Raw:       raw,
		Catalog:   s.careers,
		Clusters:  s.clusters,
		TopN:      topN,
		Database:  s.store,
		SessionID: session.ID,
	})
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"session_id":       session.ID,
		"breakdown":        result.Breakdown,
		"matches":          result.Matches,
		"flagged_clusters": result.FlaggedClusters,
		"questions":        result.Questions,
	})
}

// handleGetBreakdown returns the stored score breakdown.
// GET /sessions/{id}/breakdown
func (s *Server) handleGetBreakdown(w http.ResponseWriter, r *http.Request) {
	session, ok := s.loadSession(w, r)
	if !ok {
		return
	}

	breakdown, err := s.store.GetScoreBreakdown(r.Context(), session.ID)
	if err != nil {
		s.errorResponse(w, &DatabaseError{Operation: "load breakdown", Cause: err})
		return
	}
	if breakdown == nil {
		s.errorResponse(w, &ResultNotFoundError{SessionID: session.ID.String(), Kind: "score breakdown"})
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"session_id": session.ID,
		"breakdown":  breakdown,
	})
}

// handleGetMatches returns the stored ranked matches joined with full career
// records. A refinement, when present, supersedes the original ranking.
// GET /sessions/{id}/matches
func (s *Server) handleGetMatches(w http.ResponseWriter, r *http.Request) {
	session, ok := s.loadSession(w, r)
	if !ok {
		return
	}

	matches, err := s.store.GetMatches(r.Context(), session.ID)
	if err != nil {
		s.errorResponse(w, &DatabaseError{Operation: "load matches", Cause: err})
		return
	}
	if matches == nil {
		s.errorResponse(w, &ResultNotFoundError{SessionID: session.ID.String(), Kind: "ranked matches"})
		return
	}

	refinement, err := s.store.GetRefinement(r.Context(), session.ID)
	if err != nil {
		s.errorResponse(w, &DatabaseError{Operation: "load refinement", Cause: err})
		return
	}

	payload := map[string]any{
		"session_id": session.ID,
		"matches":    ranking.ExpandMatches(matches, s.careers),
	}
	if refinement != nil {
		payload["refined_matches"] = ranking.ExpandMatches(refinement.Matches, s.careers)
		payload["explanations"] = refinement.Explanations
	}

	s.jsonResponse(w, http.StatusOK, payload)
}

// handleGetOverlaps returns the differentiation questions for any overlap
// clusters flagged in the session's ranked matches.
// GET /sessions/{id}/overlaps
func (s *Server) handleGetOverlaps(w http.ResponseWriter, r *http.Request) {
	session, ok := s.loadSession(w, r)
	if !ok {
		return
	}

	matches, err := s.store.GetMatches(r.Context(), session.ID)
	if err != nil {
		s.errorResponse(w, &DatabaseError{Operation: "load matches", Cause: err})
		return
	}
	if matches == nil {
		s.errorResponse(w, &ResultNotFoundError{SessionID: session.ID.String(), Kind: "ranked matches"})
		return
	}

	differentiator := overlap.NewDifferentiator(s.clusters)
	flagged := differentiator.Detect(matches)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"session_id":       session.ID,
		"flagged_clusters": flagged,
		"questions":        differentiator.Questions(),
	})
}

// handleDisambiguation applies differentiation answers (or a skip) to the
// session's ranked matches. POST /sessions/{id}/disambiguation
func (s *Server) handleDisambiguation(w http.ResponseWriter, r *http.Request) {
	session, ok := s.loadSession(w, r)
	if !ok {
		return
	}

	var req types.DisambiguationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, &ValidationFailedError{Message: "invalid request body: " + err.Error()})
		return
	}
	if !req.Skip && len(req.Answers) == 0 {
		s.errorResponse(w, &ValidationFailedError{Message: "answers are required unless skipping"})
		return
	}

	matches, err := s.store.GetMatches(r.Context(), session.ID)
	if err != nil {
		s.errorResponse(w, &DatabaseError{Operation: "load matches", Cause: err})
		return
	}
	if matches == nil {
		s.errorResponse(w, &ResultNotFoundError{SessionID: session.ID.String(), Kind: "ranked matches"})
		return
	}

	refinement, err := pipeline.Refine(r.Context(), pipeline.Options{
		Clusters:  s.clusters,
		Database:  s.store,
		SessionID: session.ID,
	}, matches, req.Answers, req.Skip)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"session_id":      session.ID,
		"refined_matches": refinement.Matches,
		"explanations":    refinement.Explanations,
	})
}

// handleGenerateRoadmap generates (or returns a cached) career roadmap for a
// ranked career. POST /sessions/{id}/roadmap
func (s *Server) handleGenerateRoadmap(w http.ResponseWriter, r *http.Request) {
	session, ok := s.loadSession(w, r)
	if !ok {
		return
	}

	var req types.RoadmapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, &ValidationFailedError{Message: "invalid request body: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, &ValidationFailedError{Message: err.Error()})
		return
	}

	career, found := s.careerIndex[req.CareerID]
	if !found {
		s.errorResponse(w, &CareerNotFoundError{CareerID: req.CareerID})
		return
	}

	// Roadmaps are cached per (session, career); regeneration is wasteful
	// and nondeterministic.
	cached, err := s.store.GetRoadmap(r.Context(), session.ID, career.ID)
	if err != nil {
		s.errorResponse(w, &DatabaseError{Operation: "load roadmap", Cause: err})
		return
	}
	if cached != "" {
		s.jsonResponse(w, http.StatusOK, map[string]any{
			"session_id": session.ID,
			"career_id":  career.ID,
			"roadmap":    cached,
			"cached":     true,
		})
		return
	}

	if s.roadmaps == nil {
		s.jsonResponse(w, http.StatusServiceUnavailable, map[string]string{
			"error": "roadmap generation is not configured",
		})
		return
	}

	content, err := s.roadmaps.Generate(r.Context(), career)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	if err := s.store.SaveRoadmap(r.Context(), session.ID, career.ID, content); err != nil {
		s.errorResponse(w, &DatabaseError{Operation: "save roadmap", Cause: err})
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"session_id": session.ID,
		"career_id":  career.ID,
		"roadmap":    content,
		"cached":     false,
	})
}

// loadSession parses the {id} path value and loads the session, writing the
// error response itself when anything fails.
func (s *Server) loadSession(w http.ResponseWriter, r *http.Request) (*db.Session, bool) {
	sessionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, &ValidationFailedError{Field: "id", Message: "invalid session ID"})
		return nil, false
	}

	session, err := s.store.GetSession(r.Context(), sessionID)
	if err != nil {
		s.errorResponse(w, &DatabaseError{Operation: "load session", Cause: err})
		return nil, false
	}
	if session == nil {
		s.errorResponse(w, &SessionNotFoundError{SessionID: sessionID.String()})
		return nil, false
	}
	return session, true
}

// decodeOptionalBody decodes a JSON body into v, treating an empty body as
// the zero value.
func decodeOptionalBody(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return errors.New("invalid request body: " + err.Error())
}

func validSector(sector types.Sector) bool {
	for _, s := range types.AllSectors() {
		if s == sector {
			return true
		}
	}
	return false
}
