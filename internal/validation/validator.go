package validation

import (
	"strconv"
	"strings"

	"podcast-quiz/internal/domain"
)

const maxAnswerLength = 2000

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateTranscriptRequest validates a request that carries a transcript
func (v *Validator) ValidateTranscriptRequest(transcript string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(transcript) == "" {
		errors = append(errors, domain.NewMissingFieldError("transcript"))
	}

	return errors
}

// ValidateSubmitAnswerRequest validates the submit answer request
func (v *Validator) ValidateSubmitAnswerRequest(quizID, answer string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(quizID) == "" {
		errors = append(errors, domain.NewMissingFieldError("quiz_id"))
	}

	if strings.TrimSpace(answer) == "" {
		errors = append(errors, domain.NewMissingFieldError("answer"))
	} else if len(answer) > maxAnswerLength {
		errors = append(errors, domain.NewOutOfRangeError("answer", len(answer), 1, maxAnswerLength))
	}

	return errors
}

// ValidatePodcastID parses a podcast id path parameter
func (v *Validator) ValidatePodcastID(raw string) (int64, domain.ValidationErrors) {
	if strings.TrimSpace(raw) == "" {
		return 0, domain.ValidationErrors{domain.NewMissingFieldError("id")}
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.ValidationErrors{domain.NewInvalidFormatError("id", raw)}
	}
	return id, nil
}
