package results

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/hangman/internal/database"
	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.Migrate(db))
	return NewStore(db)
}

func finishedSession(t *testing.T, word, guesses string) game.Summary {
	t.Helper()
	s := game.New(word)
	for _, r := range guesses {
		s.SubmitGuess(r)
	}
	require.True(t, s.Finished())
	return s.Summary()
}

func TestRecordAndTotals(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	tot, err := st.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, Totals{}, tot)

	require.NoError(t, st.Record(ctx, finishedSession(t, "Cat", "cat")))
	require.NoError(t, st.Record(ctx, finishedSession(t, "Cat", "xcat")))
	require.NoError(t, st.Record(ctx, finishedSession(t, "Cat", "zxvbmk")))

	tot, err = st.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, Totals{Played: 3, Won: 2, Lost: 1}, tot)
}

func TestRecordIsIdempotent(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	sum := finishedSession(t, "Cat", "cat")

	require.NoError(t, st.Record(ctx, sum))
	require.NoError(t, st.Record(ctx, sum))

	tot, err := st.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, tot.Played)
}

func TestRecordRejectsUnfinishedSession(t *testing.T) {
	st := newTestStore(t)
	err := st.Record(context.Background(), game.New("Cat").Summary())
	assert.Error(t, err)
}

func TestRecentNewestFirst(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	for i, word := range []string{"Cat", "Dog", "Owl"} {
		sum := finishedSession(t, word, "zxvbmk")
		sum.StartedAt = base.Add(time.Duration(i) * time.Minute)
		sum.FinishedAt = sum.StartedAt.Add(30 * time.Second)
		require.NoError(t, st.Record(ctx, sum))
	}

	rows, err := st.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Owl", rows[0].SecretWord)
	assert.Equal(t, "Dog", rows[1].SecretWord)
	assert.Equal(t, "lost", rows[0].Status)
	assert.Equal(t, 6, rows[0].WrongGuesses)
	assert.Equal(t, 6, rows[0].Attempts)
	assert.True(t, rows[0].FinishedAt.Equal(base.Add(2*time.Minute+30*time.Second)))

	all, err := st.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

var _ store.Recorder = (*Store)(nil)

func TestRecentOrdersWithinSameSecond(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	finishes := []struct {
		word   string
		offset time.Duration
	}{
		{word: "Whole", offset: 0},
		{word: "Early", offset: 100 * time.Millisecond},
		{word: "Later", offset: 120 * time.Millisecond},
		{word: "Last", offset: 500 * time.Millisecond},
	}
	for _, f := range finishes {
		sum := finishedSession(t, f.word, "zxvbmk")
		sum.StartedAt = base.Add(-time.Minute)
		sum.FinishedAt = base.Add(f.offset)
		require.NoError(t, st.Record(ctx, sum))
	}

	rows, err := st.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	got := make([]string, len(rows))
	for i, r := range rows {
		got[i] = r.SecretWord
	}
	assert.Equal(t, []string{"Last", "Later", "Early", "Whole"}, got)
	assert.True(t, rows[1].FinishedAt.Equal(base.Add(120*time.Millisecond)))
}
