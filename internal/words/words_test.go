package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoadsEmbeddedVocabulary(t *testing.T) {
	require.NoError(t, Init())
	assert.Equal(t, 11, Count())
	assert.Contains(t, vocabulary, "Concurrency")
	assert.Contains(t, vocabulary, "Theoretical")
}

func TestRandomWordComesFromVocabulary(t *testing.T) {
	require.NoError(t, Init())
	for i := 0; i < 50; i++ {
		w := RandomWord()
		assert.NotEmpty(t, w)
		assert.Contains(t, vocabulary, w)
	}
}

func TestNormalizeDropsNonAlphabetic(t *testing.T) {
	got := normalize([]string{"Cat", "", "  ", "c4t", "dog ", "two words"})
	assert.Equal(t, []string{"Cat", "dog"}, got)
}
