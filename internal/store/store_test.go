package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	require.NotNil(t, s.Client())
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		require.NoError(t, db.QueryRow("PRAGMA "+tt.pragma).Scan(&got))
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestEntryAddListClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.Entries()
	ctx := context.Background()

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = repo.Add(ctx, "Mine", "the dog", "el perro")
	require.NoError(t, err)
	added, err := repo.Add(ctx, "Animals", "the cat", "el gato")
	require.NoError(t, err)
	assert.NotZero(t, added.ID)
	assert.False(t, added.CreatedAt.IsZero())

	entries, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Animals", entries[0].Category, "list is ordered by category")
	assert.Equal(t, "el gato", entries[0].Spanish)

	n, err := repo.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	entries, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEntryRejectsBlankFields(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Entries().Add(context.Background(), "Mine", "", "el perro")
	assert.Error(t, err)
}

func TestQuizAppendRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.Quizzes()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.Append(ctx, QuizResult{
			SessionID: "session-1",
			Mode:      "mixed",
			Score:     i,
			Total:     10,
		})
		require.NoError(t, err)
	}

	results, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, 2, results[0].Score, "newest first")
	assert.Equal(t, "mixed", results[0].Mode)
	assert.False(t, results[0].Timestamp.IsZero())
}

func TestQuizTotals(t *testing.T) {
	s := openTestStore(t)
	repo := s.Quizzes()
	ctx := context.Background()

	st, err := repo.Totals(ctx)
	require.NoError(t, err)
	assert.Zero(t, st.Quizzes)
	assert.Zero(t, st.Accuracy())

	require.NoError(t, repo.Append(ctx, QuizResult{SessionID: "a", Mode: "mixed", Score: 7, Total: 10}))
	require.NoError(t, repo.Append(ctx, QuizResult{SessionID: "b", Mode: "single", Score: 3, Total: 4}))

	st, err = repo.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{Quizzes: 2, Questions: 14, Correct: 10}, st)
	assert.InDelta(t, 10.0/14.0, st.Accuracy(), 1e-9)
}
