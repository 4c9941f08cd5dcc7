package handler

import (
	"podcast-quiz/internal/dto"
	"podcast-quiz/internal/middleware"
	"podcast-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service: service,
	}
}

// GenerateQuiz godoc
// @Summary Generate a Quiz Question
// @Description Generates a single multiple-choice question from the transcript and returns the id used to answer it
// @Tags Generate quiz
// @Accept json
// @Produce json
// @Param request body dto.TranscriptRequest true "Transcript"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /generate-quiz [post]
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	transcript := c.Locals(middleware.ValidatedTranscriptKey).(string)

	resp, err := h.service.GenerateQuiz(c.UserContext(), transcript)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SubmitAnswer godoc
// @Summary Submit Quiz Answer
// @Description Checks the answer case-insensitively and returns the correct answer
// @Tags Quiz answer
// @Accept json
// @Produce json
// @Param request body dto.SubmitAnswerRequest true "Answer details"
// @Success 200 {object} dto.SubmitAnswerResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quiz/submit-answer [post]
func (h *QuizHandler) SubmitAnswer(c *fiber.Ctx) error {
	req := c.Locals(middleware.ValidatedAnswerKey).(*dto.SubmitAnswerRequest)

	resp, err := h.service.CheckAnswer(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
