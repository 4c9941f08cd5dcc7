package service

import (
	"context"

	"podcast-quiz/internal/domain"
	"podcast-quiz/internal/dto"
	"podcast-quiz/internal/logger"

	"go.uber.org/zap"
)

// QuizService generates quiz questions and validates submitted answers.
type QuizService interface {
	GenerateQuiz(ctx context.Context, transcript string) (*dto.QuizResponse, error)
	CheckAnswer(ctx context.Context, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error)
}

type quizService struct {
	generator ContentGenerator
	store     domain.QuizStore
}

func NewQuizService(generator ContentGenerator, store domain.QuizStore) QuizService {
	return &quizService{
		generator: generator,
		store:     store,
	}
}

// GenerateQuiz implements QuizService
func (s *quizService) GenerateQuiz(ctx context.Context, transcript string) (*dto.QuizResponse, error) {
	quiz, err := s.generator.GenerateQuiz(ctx, transcript)
	if err != nil {
		return nil, domain.NewUpstreamError("quiz generation", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizGenerationFailedError()
	}

	id, err := s.store.Register(ctx, *quiz)
	if err != nil {
		return nil, domain.NewInternalError("Failed to store quiz", err)
	}

	logger.Get().Debug("Quiz registered", zap.String("quiz_id", string(id)))
	return &dto.QuizResponse{QuizID: string(id), Quiz: quiz}, nil
}

// CheckAnswer implements QuizService
func (s *quizService) CheckAnswer(ctx context.Context, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error) {
	quizID := domain.QuizID(req.QuizID)

	quiz, err := s.store.Lookup(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(quizID)
	}

	return &dto.SubmitAnswerResponse{
		QuizID:        req.QuizID,
		Correct:       quiz.IsCorrect(req.Answer),
		CorrectAnswer: quiz.CorrectAnswer,
	}, nil
}
