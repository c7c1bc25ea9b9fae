package server

import (
	"net/http"
	"strings"
)

// handleListCareers returns the career catalog, optionally filtered by
// category or trade flag. GET /careers?category=...&trade=true
func (s *Server) handleListCareers(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimSpace(r.URL.Query().Get("category"))
	tradeOnly := r.URL.Query().Get("trade") == "true"

	careers := s.careers
	if category != "" || tradeOnly {
		filtered := careers[:0:0]
		for _, career := range careers {
			if category != "" && !strings.EqualFold(career.Category, category) {
				continue
			}
			if tradeOnly && !career.ScoringProfile.Trade {
				continue
			}
			filtered = append(filtered, career)
		}
		careers = filtered
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"count":   len(careers),
		"careers": careers,
	})
}

// handleGetCareer returns one career record by ID. GET /careers/{id}
func (s *Server) handleGetCareer(w http.ResponseWriter, r *http.Request) {
	careerID := r.PathValue("id")

	career, found := s.careerIndex[careerID]
	if !found {
		s.errorResponse(w, &CareerNotFoundError{CareerID: careerID})
		return
	}

	s.jsonResponse(w, http.StatusOK, career)
}
