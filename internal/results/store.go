// internal/results/store.go
//
// Archive of finished game sessions.
// Responsibilities:
//   - Record one row per won or lost session (idempotent on session ID).
//   - Answer lifetime statistics: outcome totals and the latest games.
//
// Notes:
//   - Timestamps are stored as fixed-width UTC text (timeLayout) so that
//     ORDER BY on the column is chronological.
//   - The archive never feeds the in-memory session history.

package results

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"

	"github.com/robalobadob/hangman/internal/game"
)

// Row is one archived session.
type Row struct {
	ID           string    `json:"id"`
	SecretWord   string    `json:"secretWord"`
	Status       string    `json:"status"`
	WrongGuesses int       `json:"wrongGuesses"`
	Attempts     int       `json:"attempts"`
	StartedAt    time.Time `json:"startedAt"`
	FinishedAt   time.Time `json:"finishedAt"`
}

// Totals counts archived sessions by outcome.
type Totals struct {
	Played int `json:"played"`
	Won    int `json:"won"`
	Lost   int `json:"lost"`
}

// timeLayout is RFC3339 with a fixed nine-digit fraction. Every stored value
// has the same width, so text order equals time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store reads and writes the finished_games table.
type Store struct{ db *sql.DB }

// NewStore wraps an already migrated database.
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Record inserts a finished session. Recording the same session twice is a
// no-op. Unfinished sessions are rejected.
func (s *Store) Record(ctx context.Context, sum game.Summary) error {
	if sum.State != game.StateWon && sum.State != game.StateLost {
		return errors.Errorf("results: session %s is not finished", sum.ID)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO finished_games
		     (id, secret_word, status, wrong_guesses, attempts, started_at, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sum.ID, sum.SecretWord, string(sum.State), sum.WrongGuesses, sum.Attempts,
		sum.StartedAt.UTC().Format(timeLayout), sum.FinishedAt.UTC().Format(timeLayout),
	)
	return errors.Wrap(err, "insert finished game")
}

// Totals counts archived sessions by outcome.
func (s *Store) Totals(ctx context.Context) (Totals, error) {
	var t Totals
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1),
		        COALESCE(SUM(CASE WHEN status='won' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN status='lost' THEN 1 ELSE 0 END), 0)
		 FROM finished_games`,
	).Scan(&t.Played, &t.Won, &t.Lost)
	return t, errors.Wrap(err, "query totals")
}

// Recent returns the latest finished sessions, newest first.
// Default limit is 20 if not specified.
func (s *Store) Recent(ctx context.Context, limit int) ([]Row, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, secret_word, status, wrong_guesses, attempts, started_at, finished_at
		 FROM finished_games
		 ORDER BY finished_at DESC
		 LIMIT ?`, limit,
	)
	if err != nil {
		return nil, errors.Wrap(err, "query recent")
	}
	defer rows.Close()

	out := make([]Row, 0, limit)
	for rows.Next() {
		var r Row
		var started, finished string
		if err := rows.Scan(&r.ID, &r.SecretWord, &r.Status, &r.WrongGuesses, &r.Attempts, &started, &finished); err != nil {
			return nil, errors.Wrap(err, "scan recent")
		}
		r.StartedAt = parseTime(started)
		r.FinishedAt = parseTime(finished)
		out = append(out, r)
	}
	return out, errors.Wrap(rows.Err(), "iterate recent")
}

// parseTime parses stored timestamps; on error returns zero time.
func parseTime(s string) time.Time {
	t, _ := time.Parse(timeLayout, s)
	return t
}
