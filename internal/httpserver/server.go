// internal/httpserver/server.go
//
// HTTP server wiring for the Hangman backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints: GET /newGameSession, GET /reloadOrResume, POST /submitGuess.
//   - Management endpoints (operator auth when configured): GET /gamesHistory,
//     GET /stats, /auth/*.
//
// Notes:
//   - Paths and JSON field names match the browser client.
//   - CORS is origin-aware and credentials-enabled (so cookies work).
//   - All game state lives in the injected store.Registry.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/store"
	"github.com/robalobadob/hangman/internal/words"
)

// Config carries the transport settings resolved from the environment.
type Config struct {
	ClientOrigin      string        // CORS origin allowed with credentials
	AdminPasswordHash string        // bcrypt hash; empty leaves management routes open
	JWTSecret         string        // HS256 signing key for operator tokens
	TokenTTL          time.Duration // operator token lifetime
	CookieName        string        // operator token cookie
	SecureCookies     bool          // Secure + SameSite=None cookies (production)
}

// withDefaults fills unset fields.
func (c Config) withDefaults() Config {
	if c.ClientOrigin == "" {
		c.ClientOrigin = "http://localhost:5173"
	}
	if c.JWTSecret == "" {
		c.JWTSecret = "dev_secret_change_me"
	}
	if c.TokenTTL <= 0 {
		c.TokenTTL = 14 * 24 * time.Hour
	}
	if c.CookieName == "" {
		c.CookieName = "hangman_token"
	}
	return c
}

// Server bundles router, session registry and the optional results archive.
type Server struct {
	r       *chi.Mux
	reg     store.Registry
	archive Archive
	cfg     Config
}

// New constructs a Server, installs middleware, and registers routes.
// archive may be nil, in which case /stats reports stats_disabled.
func New(reg store.Registry, archive Archive, cfg Config) *Server {
	s := &Server{r: chi.NewRouter(), reg: reg, archive: archive, cfg: cfg.withDefaults()}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(s.cors)                          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"hangman-go","endpoints":["/health","GET /newGameSession","GET /reloadOrResume","POST /submitGuess","GET /gamesHistory","GET /stats","/auth/*"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]int{"words": words.Count()})
	})

	// Game endpoints
	s.r.Get("/newGameSession", s.handleNewGame)
	s.r.Get("/reloadOrResume", s.handleResume)
	s.r.Post("/submitGuess", s.handleGuess)

	// Management surface
	s.r.With(s.requireOperator()).Get("/gamesHistory", s.handleHistory)
	s.mountStats(s.r.With(s.requireOperator()))
	s.mountAuthRoutes()

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured client origin.
func (s *Server) cors(next http.Handler) http.Handler {
	origin := s.cfg.ClientOrigin
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ GAME ---------------------------------------

// handleNewGame starts a fresh session, discarding an unfinished one.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	view, err := s.reg.StartNew(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("start new session")
		writeError(w, http.StatusInternalServerError, "start_failed")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// handleResume returns the unfinished session or starts a new one.
func (s *Server) handleResume(w http.ResponseWriter, r *http.Request) {
	view, err := s.reg.ResumeOrCreate(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("resume session")
		writeError(w, http.StatusInternalServerError, "resume_failed")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// guessReq is the payload for POST /submitGuess.
type guessReq struct {
	Value string `json:"value"`
}

// handleGuess validates the letter and applies it to the active session.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	letter, err := game.ParseGuess(req.Value)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_guess")
		return
	}
	view, err := s.reg.Guess(r.Context(), letter)
	switch {
	case errors.Is(err, store.ErrNoActiveSession):
		writeError(w, http.StatusConflict, "no_active_session")
		return
	case err != nil:
		log.Error().Err(err).Msg("submit guess")
		writeError(w, http.StatusInternalServerError, "guess_failed")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// handleHistory lists every session of this process, oldest first.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	hist, err := s.reg.History(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("history")
		writeError(w, http.StatusInternalServerError, "history_failed")
		return
	}
	writeJSON(w, http.StatusOK, hist)
}

// ------------------------------- small util --------------------------------

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

// writeError writes {"error": code}.
func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
