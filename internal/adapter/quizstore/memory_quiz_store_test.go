package quizstore

import (
	"context"
	"sync"
	"testing"

	"podcast-quiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryQuizStore_RegisterAndLookup(t *testing.T) {
	store := NewMemoryQuizStore()
	ctx := context.Background()

	r1 := domain.QuizRecord{Question: "Q1", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: "a"}
	r2 := domain.QuizRecord{Question: "Q2", Options: []string{"w", "x", "y", "z"}, CorrectAnswer: "z"}

	id1, err := store.Register(ctx, r1)
	require.NoError(t, err)
	assert.Equal(t, domain.QuizID("1"), id1)

	id2, err := store.Register(ctx, r2)
	require.NoError(t, err)
	assert.Equal(t, domain.QuizID("2"), id2)

	got, err := store.Lookup(ctx, id1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, r1, *got)

	got, err = store.Lookup(ctx, id2)
	require.NoError(t, err)
	assert.Equal(t, r2, *got)
}

func TestMemoryQuizStore_LookupMissing(t *testing.T) {
	store := NewMemoryQuizStore()

	got, err := store.Lookup(context.Background(), "99")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryQuizStore_RecordsAreCopied(t *testing.T) {
	store := NewMemoryQuizStore()
	ctx := context.Background()

	options := []string{"a", "b", "c", "d"}
	id, err := store.Register(ctx, domain.QuizRecord{Question: "Q", Options: options, CorrectAnswer: "a"})
	require.NoError(t, err)
	options[0] = "mutated"

	got, err := store.Lookup(ctx, id)
	require.NoError(t, err)
	got.Options[1] = "mutated"

	again, err := store.Lookup(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, again.Options)
}

func TestMemoryQuizStore_ConcurrentRegisterHasNoCollisions(t *testing.T) {
	store := NewMemoryQuizStore()
	ctx := context.Background()

	const workers = 64
	ids := make(chan domain.QuizID, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := store.Register(ctx, domain.QuizRecord{Question: "Q", CorrectAnswer: "a"})
			assert.NoError(t, err)
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[domain.QuizID]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)
	assert.Equal(t, workers, store.Len())
}
