package quizstore

import (
	"context"
	"strconv"
	"sync"

	"podcast-quiz/internal/domain"
)

// MemoryQuizStore keeps quizzes for the lifetime of the process.
type MemoryQuizStore struct {
	mu      sync.RWMutex
	nextID  uint64
	quizzes map[domain.QuizID]domain.QuizRecord
}

// NewMemoryQuizStore creates an empty in-memory store.
func NewMemoryQuizStore() *MemoryQuizStore {
	return &MemoryQuizStore{
		quizzes: make(map[domain.QuizID]domain.QuizRecord),
	}
}

// Register implements domain.QuizStore. The counter and the insert happen under
// one lock, so concurrent registrations always get distinct identifiers.
func (s *MemoryQuizStore) Register(_ context.Context, record domain.QuizRecord) (domain.QuizID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := domain.QuizID(strconv.FormatUint(s.nextID, 10))
	s.quizzes[id] = cloneRecord(record)
	return id, nil
}

// Lookup implements domain.QuizStore
func (s *MemoryQuizStore) Lookup(_ context.Context, id domain.QuizID) (*domain.QuizRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.quizzes[id]
	if !ok {
		return nil, nil
	}
	out := cloneRecord(record)
	return &out, nil
}

// Len reports how many quizzes are stored.
func (s *MemoryQuizStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.quizzes)
}

func cloneRecord(record domain.QuizRecord) domain.QuizRecord {
	if record.Options != nil {
		record.Options = append([]string(nil), record.Options...)
	}
	return record
}

var _ domain.QuizStore = (*MemoryQuizStore)(nil)
