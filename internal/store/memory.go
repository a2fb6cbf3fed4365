// internal/store/memory.go
//
// In-memory session registry.
// Holds every session created during the process lifetime, in creation
// order, and answers "current session" and "history" queries.
//
// Characteristics:
//   - Append-only ordered list; the last session is the active one while it
//     is unfinished.
//   - StartNew drops an unfinished last session from the list entirely,
//     ResumeOrCreate never drops anything.
//   - Concurrency-safe via a single Mutex; every operation is serialized.
//   - State is lost when the process restarts.
//   - Finished sessions are reported to an optional Recorder after the lock
//     is released, with a context detached from request cancellation.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/game"
)

// ErrNoActiveSession is returned when a guess arrives before any session
// has been created.
var ErrNoActiveSession = errors.New("no active session")

// Registry defines the session operations consumed by the transport.
type Registry interface {
	// StartNew discards an unfinished last session, appends a fresh one
	// and returns its live view.
	StartNew(ctx context.Context) (game.LiveView, error)

	// ResumeOrCreate returns the unfinished last session's view, or appends
	// a fresh session when there is none.
	ResumeOrCreate(ctx context.Context) (game.LiveView, error)

	// Guess submits a letter to the last session.
	// Returns ErrNoActiveSession if the registry is empty.
	Guess(ctx context.Context, letter rune) (game.LiveView, error)

	// History projects every session, in creation order.
	History(ctx context.Context) ([]game.HistoryView, error)

	// Current returns the last appended session. The session is shared with
	// the registry; callers must not submit guesses to it directly.
	// Returns ErrNoActiveSession if the registry is empty.
	Current(ctx context.Context) (*game.Session, error)
}

// Recorder receives a summary of each session the moment it finishes.
type Recorder interface {
	Record(ctx context.Context, s game.Summary) error
}

// Option configures a memory registry.
type Option func(*memory)

// WithRecorder archives finished sessions through rec.
func WithRecorder(rec Recorder) Option {
	return func(m *memory) { m.recorder = rec }
}

// WithWordSource overrides how secret words are chosen (tests).
// An empty result falls back to the random word source.
func WithWordSource(pick func() string) Option {
	return func(m *memory) { m.pick = pick }
}

// memory is the slice-backed Registry implementation.
type memory struct {
	mu       sync.Mutex      // guards sessions
	sessions []*game.Session // creation order
	recorder Recorder
	pick     func() string
}

// NewMemoryRegistry constructs an empty in-memory Registry.
func NewMemoryRegistry(opts ...Option) Registry {
	m := &memory{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// newSession creates a session with the configured word source.
func (m *memory) newSession() *game.Session {
	word := ""
	if m.pick != nil {
		word = m.pick()
	}
	return game.New(word)
}

// last returns the most recent session or nil. Caller holds mu.
func (m *memory) last() *game.Session {
	if len(m.sessions) == 0 {
		return nil
	}
	return m.sessions[len(m.sessions)-1]
}

func (m *memory) StartNew(ctx context.Context) (game.LiveView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if prev := m.last(); prev != nil && !prev.Finished() {
		m.sessions = m.sessions[:len(m.sessions)-1]
		log.Debug().Str("session", prev.ID).Msg("discarded unfinished session")
	}
	s := m.newSession()
	m.sessions = append(m.sessions, s)
	log.Debug().Str("session", s.ID).Int("sessions", len(m.sessions)).Msg("started session")
	return game.LiveViewOf(s, ""), nil
}

func (m *memory) ResumeOrCreate(ctx context.Context) (game.LiveView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.last()
	if s == nil || s.Finished() {
		s = m.newSession()
		m.sessions = append(m.sessions, s)
		log.Debug().Str("session", s.ID).Int("sessions", len(m.sessions)).Msg("started session")
	}
	return game.LiveViewOf(s, ""), nil
}

func (m *memory) Guess(ctx context.Context, letter rune) (game.LiveView, error) {
	m.mu.Lock()
	s := m.last()
	if s == nil {
		m.mu.Unlock()
		return game.LiveView{}, ErrNoActiveSession
	}
	msg, finishedNow := s.SubmitGuess(letter)
	view := game.LiveViewOf(s, msg)
	var summary game.Summary
	if finishedNow {
		summary = s.Summary()
	}
	m.mu.Unlock()

	if finishedNow {
		log.Debug().Str("session", summary.ID).Str("state", string(summary.State)).Msg("session finished")
		if m.recorder != nil {
			// The game is already over; a client hanging up must not lose the row.
			if err := m.recorder.Record(context.WithoutCancel(ctx), summary); err != nil {
				log.Warn().Err(err).Str("session", summary.ID).Msg("record finished session")
			}
		}
	}
	return view, nil
}

func (m *memory) History(ctx context.Context) ([]game.HistoryView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]game.HistoryView, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, game.HistoryViewOf(s))
	}
	return out, nil
}

func (m *memory) Current(ctx context.Context) (*game.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s := m.last(); s != nil {
		return s, nil
	}
	return nil, ErrNoActiveSession
}
