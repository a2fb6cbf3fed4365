// internal/game/types.go
//
// Core type definitions for the Hangman game engine.
// Defines:
//   - State: coarse lifecycle of a session (in_progress/won/lost).
//   - Session: state for a single in-progress or finished game.
//   - LiveView / HistoryView: response shapes consumed by the transport.
//   - Summary: snapshot of a finished session for the results archive.

package game

import (
	"errors"
	"time"
)

// State is the lifecycle state of a session.
type State string

const (
	StateInProgress State = "in_progress"
	StateWon        State = "won"
	StateLost       State = "lost"
)

// DefaultWrongGuessLimit is the number of wrong guesses that loses a game.
const DefaultWrongGuessLimit = 6

// User-facing outcome messages.
const (
	MsgCorrect          = "Correct!"
	MsgNope             = "Nope..."
	MsgAlreadyAttempted = "Letter already attempted. Try a different letter."
	MsgWon              = "Congratulations, you won!"
	MsgLost             = "Game Over."
)

// History statuses.
const (
	StatusOngoing = "Ongoing"
	StatusWon     = "Won"
	StatusLost    = "Lost"
)

// ErrInvalidGuess is returned by ParseGuess for anything other than a
// single letter.
var ErrInvalidGuess = errors.New("invalid guess")

// Session holds the state of a single Hangman game.
//
// ID, SecretWord, WrongGuessLimit and StartedAt are fixed at creation.
// Everything else changes only through SubmitGuess.
type Session struct {
	ID              string    // Unique session identifier (UUID).
	SecretWord      string    // The word to guess, original casing.
	WrongGuessLimit int       // Wrong guesses allowed before the game is lost.
	StartedAt       time.Time // Creation time (UTC).

	word         []rune            // SecretWord as runes
	mask         []rune            // revealed runes; 0 marks a blank slot
	attempted    []rune            // guessed letters in insertion order (lowercase)
	attemptedSet map[rune]struct{} // membership index for attempted
	wrong        int               // wrong guess count
	finished     bool              // true once won or lost
	finishedAt   time.Time         // zero until finished
}

// LiveView describes the current or just-updated state of the active session.
type LiveView struct {
	GuessProgress   string `json:"guessProgress"`
	AttemptedString string `json:"attemptedString"`
	WrongGuessCount int    `json:"wrongGuessCount"`
	UserMessage     string `json:"userMessage"`
}

// HistoryView summarizes a session for the history listing.
type HistoryView struct {
	SecretWord    string `json:"secretWord"`
	Status        string `json:"status"` // Ongoing | Won | Lost
	GuessProgress string `json:"guessProgress"`
}

// Summary is an immutable snapshot of a session, used for archiving.
type Summary struct {
	ID           string
	SecretWord   string
	State        State
	WrongGuesses int
	Attempts     int
	StartedAt    time.Time
	FinishedAt   time.Time
}
