// internal/game/engine.go
//
// Game engine for a single Hangman session.
// Responsibilities:
//   - Create new sessions with a random secret word and the default limit.
//   - Apply letter guesses, revealing matches and counting misses.
//   - Track state transitions: in_progress → won/lost.
//
// Notes:
//   - Matching is case-insensitive; revealed slots keep the word's casing.
//   - A finished session never changes again; it only re-reports its outcome.
//   - The engine accepts any rune. Input validation lives in ParseGuess and
//     is applied by the transport.
package game

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/robalobadob/hangman/internal/words"
)

// New constructs a new session.
// If withWord is empty, a random word is chosen from the words package.
func New(withWord string) *Session {
	w := withWord
	if w == "" {
		w = words.RandomWord()
	}
	runes := []rune(w)
	return &Session{
		ID:              uuid.NewString(),
		SecretWord:      w,
		WrongGuessLimit: DefaultWrongGuessLimit,
		StartedAt:       time.Now().UTC(),
		word:            runes,
		mask:            make([]rune, len(runes)),
		attemptedSet:    make(map[rune]struct{}),
	}
}

// SubmitGuess applies one letter to the session and returns the user message.
// finishedNow is true only for the guess that ends the game.
//
// Order of checks:
//   - Finished game → outcome message, no mutation.
//   - Letter already attempted → reminder, no mutation.
//   - Otherwise record the letter, reveal matches, count a miss, and
//     re-evaluate termination (loss is checked before win).
func (s *Session) SubmitGuess(letter rune) (message string, finishedNow bool) {
	if s.finished {
		return s.outcomeMessage(), false
	}
	letter = unicode.ToLower(letter)
	if _, seen := s.attemptedSet[letter]; seen {
		return MsgAlreadyAttempted, false
	}

	s.attempted = append(s.attempted, letter)
	s.attemptedSet[letter] = struct{}{}

	if s.reveal(letter) {
		message = MsgCorrect
	} else {
		s.wrong++
		message = MsgNope
	}

	switch {
	case s.wrong >= s.WrongGuessLimit:
		s.finish()
		return MsgLost, true
	case !s.hasBlank():
		s.finish()
		return MsgWon, true
	}
	return message, false
}

// reveal fills every mask slot whose letter matches and reports whether
// any slot matched.
func (s *Session) reveal(letter rune) bool {
	hit := false
	for i, r := range s.word {
		if unicode.ToLower(r) == letter {
			s.mask[i] = r
			hit = true
		}
	}
	return hit
}

func (s *Session) hasBlank() bool {
	for _, r := range s.mask {
		if r == 0 {
			return true
		}
	}
	return false
}

func (s *Session) finish() {
	s.finished = true
	s.finishedAt = time.Now().UTC()
}

// outcomeMessage is the message a finished session re-reports.
func (s *Session) outcomeMessage() string {
	if s.lost() {
		return MsgLost
	}
	return MsgWon
}

func (s *Session) lost() bool { return s.wrong >= s.WrongGuessLimit }

// State reports the lifecycle state of the session.
func (s *Session) State() State {
	if !s.finished {
		return StateInProgress
	}
	if s.lost() {
		return StateLost
	}
	return StateWon
}

// Finished reports whether the session has been won or lost.
func (s *Session) Finished() bool { return s.finished }

// WrongGuesses returns the number of wrong guesses so far.
func (s *Session) WrongGuesses() int { return s.wrong }

// Attempted returns the guessed letters in the order they were first tried.
func (s *Session) Attempted() []rune { return append([]rune(nil), s.attempted...) }

// Progress renders the mask as space-separated runes, "_" for blanks.
func (s *Session) Progress() string {
	var b strings.Builder
	b.Grow(len(s.mask) * 2)
	for i, r := range s.mask {
		if i > 0 {
			b.WriteByte(' ')
		}
		if r == 0 {
			b.WriteByte('_')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Summary snapshots the session for archiving.
func (s *Session) Summary() Summary {
	return Summary{
		ID:           s.ID,
		SecretWord:   s.SecretWord,
		State:        s.State(),
		WrongGuesses: s.wrong,
		Attempts:     len(s.attempted),
		StartedAt:    s.StartedAt,
		FinishedAt:   s.finishedAt,
	}
}

// ParseGuess validates raw client input: exactly one Unicode letter after
// trimming surrounding whitespace.
func ParseGuess(raw string) (rune, error) {
	raw = strings.TrimSpace(raw)
	if utf8.RuneCountInString(raw) != 1 {
		return 0, ErrInvalidGuess
	}
	r, _ := utf8.DecodeRuneInString(raw)
	if r == utf8.RuneError || !unicode.IsLetter(r) {
		return 0, ErrInvalidGuess
	}
	return r, nil
}
