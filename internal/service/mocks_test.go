package service

import (
	"context"

	"podcast-quiz/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockTextGenerator ---
type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) Complete(ctx context.Context, prompt string, maxOutputTokens int) (string, error) {
	args := m.Called(ctx, prompt, maxOutputTokens)
	return args.String(0), args.Error(1)
}

// --- MockTranscriber ---
type MockTranscriber struct {
	mock.Mock
}

func (m *MockTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	args := m.Called(ctx, audioPath)
	return args.String(0), args.Error(1)
}

// --- MockNotifier ---
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Send(ctx context.Context, subject, body string) error {
	args := m.Called(ctx, subject, body)
	return args.Error(0)
}

// --- MockQuizStore ---
type MockQuizStore struct {
	mock.Mock
}

func (m *MockQuizStore) Register(ctx context.Context, record domain.QuizRecord) (domain.QuizID, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(domain.QuizID), args.Error(1)
}

func (m *MockQuizStore) Lookup(ctx context.Context, id domain.QuizID) (*domain.QuizRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizRecord), args.Error(1)
}

// --- MockPodcastRepository ---
type MockPodcastRepository struct {
	mock.Mock
}

func (m *MockPodcastRepository) Save(ctx context.Context, record *domain.PodcastRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockPodcastRepository) GetLatest(ctx context.Context) (*domain.PodcastSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PodcastSummary), args.Error(1)
}

func (m *MockPodcastRepository) GetAll(ctx context.Context) ([]*domain.PodcastSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PodcastSummary), args.Error(1)
}

func (m *MockPodcastRepository) GetByID(ctx context.Context, id int64) (*domain.PodcastSummary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PodcastSummary), args.Error(1)
}

// --- MockContentGenerator ---
type MockContentGenerator struct {
	mock.Mock
}

func (m *MockContentGenerator) GenerateSummary(ctx context.Context, transcript string) (string, error) {
	args := m.Called(ctx, transcript)
	return args.String(0), args.Error(1)
}

func (m *MockContentGenerator) GenerateTakeaways(ctx context.Context, transcript string) ([]string, error) {
	args := m.Called(ctx, transcript)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockContentGenerator) GenerateQuiz(ctx context.Context, transcript string) (*domain.QuizRecord, error) {
	args := m.Called(ctx, transcript)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizRecord), args.Error(1)
}

var (
	_ domain.TextGenerator     = (*MockTextGenerator)(nil)
	_ domain.Transcriber       = (*MockTranscriber)(nil)
	_ domain.Notifier          = (*MockNotifier)(nil)
	_ domain.QuizStore         = (*MockQuizStore)(nil)
	_ domain.PodcastRepository = (*MockPodcastRepository)(nil)
	_ ContentGenerator         = (*MockContentGenerator)(nil)
)

type failingReader struct{ err error }

func (r *failingReader) Read([]byte) (int, error) { return 0, r.err }
