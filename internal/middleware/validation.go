package middleware

import (
	"podcast-quiz/internal/domain"
	"podcast-quiz/internal/dto"
	"podcast-quiz/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the validation middleware
const (
	ValidatedTranscriptKey = "validated_transcript"
	ValidatedAnswerKey     = "validated_answer"
	ValidatedPodcastIDKey  = "validated_podcast_id"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateTranscript validates a JSON body with a transcript field
func (vm *ValidationMiddleware) ValidateTranscript() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.TranscriptRequest
		if err := c.BodyParser(&req); err != nil {
			return domain.ValidationErrors{domain.NewInvalidFormatError("body", err.Error())}
		}

		if errors := vm.validator.ValidateTranscriptRequest(req.Transcript); len(errors) > 0 {
			return errors // This will be handled by ErrorHandler middleware
		}

		c.Locals(ValidatedTranscriptKey, req.Transcript)
		return c.Next()
	}
}

// ValidateSubmitAnswer validates the quiz answer body
func (vm *ValidationMiddleware) ValidateSubmitAnswer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.SubmitAnswerRequest
		if err := c.BodyParser(&req); err != nil {
			return domain.ValidationErrors{domain.NewInvalidFormatError("body", err.Error())}
		}

		if errors := vm.validator.ValidateSubmitAnswerRequest(req.QuizID, req.Answer); len(errors) > 0 {
			return errors
		}

		c.Locals(ValidatedAnswerKey, &req)
		return c.Next()
	}
}

// ValidatePodcastID validates the :id path parameter
func (vm *ValidationMiddleware) ValidatePodcastID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, errors := vm.validator.ValidatePodcastID(c.Params("id"))
		if len(errors) > 0 {
			return errors
		}

		c.Locals(ValidatedPodcastIDKey, id)
		return c.Next()
	}
}
