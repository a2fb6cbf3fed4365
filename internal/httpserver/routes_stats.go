// internal/httpserver/routes_stats.go
//
// HTTP routes for lifetime statistics from the results archive.
//   - GET /stats → totals plus the most recent finished games
//
// The archive is optional; without it the endpoint answers 503.

package httpserver

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/results"
)

// Archive is the read side of the results archive.
type Archive interface {
	Totals(ctx context.Context) (results.Totals, error)
	Recent(ctx context.Context, limit int) ([]results.Row, error)
}

const (
	defaultRecentLimit = 20
	maxRecentLimit     = 100
)

// mountStats registers the /stats route.
func (s *Server) mountStats(r chi.Router) {
	r.Get("/stats", s.handleStats)
}

// statsRes is returned by /stats.
type statsRes struct {
	Totals results.Totals `json:"totals"`
	Recent []results.Row  `json:"recent"`
}

// handleStats returns archive totals and the latest games (?limit=, max 100).
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if s.archive == nil {
		writeError(w, http.StatusServiceUnavailable, "stats_disabled")
		return
	}
	limit := defaultRecentLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "invalid_limit")
			return
		}
		limit = min(n, maxRecentLimit)
	}

	totals, err := s.archive.Totals(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("stats totals")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	recent, err := s.archive.Recent(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("stats recent")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	if recent == nil {
		recent = []results.Row{}
	}
	writeJSON(w, http.StatusOK, statsRes{Totals: totals, Recent: recent})
}
