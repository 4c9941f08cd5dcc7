package quizstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"podcast-quiz/internal/cache"
	"podcast-quiz/internal/domain"

	"github.com/redis/go-redis/v9"
)

const quizServiceName = "quiz"

// RedisQuizStore implements domain.QuizStore on Redis. Identifiers come from
// INCR on a single counter key, which is atomic across every API instance.
type RedisQuizStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisQuizStore creates a store on a connected client. A zero ttl keeps
// records forever.
func NewRedisQuizStore(client *redis.Client, ttl time.Duration) *RedisQuizStore {
	return &RedisQuizStore{client: client, ttl: ttl}
}

// CounterKey is the key holding the last issued quiz identifier.
func CounterKey() string {
	return cache.GenerateCacheKey(quizServiceName, "counter", "seq")
}

// RecordKey is the key holding the JSON encoded record for id.
func RecordKey(id domain.QuizID) string {
	return cache.GenerateCacheKey(quizServiceName, "record", string(id))
}

// Register implements domain.QuizStore
func (s *RedisQuizStore) Register(ctx context.Context, record domain.QuizRecord) (domain.QuizID, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("failed to encode quiz record: %w", err)
	}

	next, err := s.client.Incr(ctx, CounterKey()).Result()
	if err != nil {
		return "", fmt.Errorf("failed to allocate quiz id: %w", err)
	}
	id := domain.QuizID(strconv.FormatInt(next, 10))

	if err := s.client.Set(ctx, RecordKey(id), string(payload), s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store quiz %s: %w", id, err)
	}
	return id, nil
}

// Lookup implements domain.QuizStore. redis.Nil is reported as absent.
func (s *RedisQuizStore) Lookup(ctx context.Context, id domain.QuizID) (*domain.QuizRecord, error) {
	val, err := s.client.Get(ctx, RecordKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load quiz %s: %w", id, err)
	}

	var record domain.QuizRecord
	if err := json.Unmarshal([]byte(val), &record); err != nil {
		return nil, fmt.Errorf("failed to decode quiz %s: %w", id, err)
	}
	return &record, nil
}

var _ domain.QuizStore = (*RedisQuizStore)(nil)
