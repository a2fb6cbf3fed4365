// internal/game/view.go
//
// Response projections for the transport layer.
// Pure functions from session state to:
//   - LiveView: progress, attempted letters, wrong count, message.
//   - HistoryView: secret word, Ongoing/Won/Lost status, progress.

package game

import "strings"

// LiveViewOf projects a session and the message of the last transition into
// the live-update view.
func LiveViewOf(s *Session, message string) LiveView {
	return LiveView{
		GuessProgress:   s.Progress(),
		AttemptedString: attemptedString(s.attempted),
		WrongGuessCount: s.wrong,
		UserMessage:     message,
	}
}

// HistoryViewOf projects a session into the history listing view.
func HistoryViewOf(s *Session) HistoryView {
	return HistoryView{
		SecretWord:    s.SecretWord,
		Status:        historyStatus(s),
		GuessProgress: s.Progress(),
	}
}

func historyStatus(s *Session) string {
	switch s.State() {
	case StateWon:
		return StatusWon
	case StateLost:
		return StatusLost
	default:
		return StatusOngoing
	}
}

// attemptedString renders letters as "[a, b, c]"; "[]" when empty.
func attemptedString(letters []rune) string {
	parts := make([]string, len(letters))
	for i, r := range letters {
		parts[i] = string(r)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
