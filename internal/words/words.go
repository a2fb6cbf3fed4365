// internal/words/words.go
//
// Word source for new game sessions.
//
// Responsibilities:
//   - Load the fixed secret-word vocabulary embedded in the assets package.
//   - Pick a uniformly random secret word for each new session.
//
// Constraints:
//   • Words are alphabetic and at least one letter long.
//   • Original casing is kept; matching against guesses is case-insensitive
//     and happens in the game package.
//   • Initialization is run once (sync.Once).

package words

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
	"sync"
	"unicode"

	"github.com/robalobadob/hangman/assets"
)

// fallbackWord is returned if the vocabulary could not be loaded.
const fallbackWord = "Concurrency"

var (
	initOnce   sync.Once
	vocabulary []string
	initialErr error
)

// Init loads the vocabulary exactly once.
// Returns an error if the embedded list cannot be read or ends up empty.
func Init() error {
	initOnce.Do(func() {
		list, err := assets.WordList()
		if err != nil {
			initialErr = err
			return
		}
		vocabulary = normalize(list)
		if len(vocabulary) == 0 {
			initialErr = errors.New("words: vocabulary is empty")
		}
	})
	return initialErr
}

// normalize drops entries that are not purely alphabetic.
func normalize(list []string) []string {
	out := make([]string, 0, len(list))
	for _, w := range list {
		w = strings.TrimSpace(w)
		if w != "" && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// RandomWord returns a cryptographically random word from the vocabulary.
// The vocabulary is loaded on first use if Init has not run yet.
func RandomWord() string {
	if err := Init(); err != nil || len(vocabulary) == 0 {
		return fallbackWord
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(vocabulary))))
	if err != nil {
		return vocabulary[0]
	}
	return vocabulary[nBig.Int64()]
}

// Count returns the number of loaded words.
func Count() int {
	_ = Init()
	return len(vocabulary)
}
