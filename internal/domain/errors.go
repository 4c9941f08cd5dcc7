package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeValidation   ErrorCode = "VALIDATION_ERROR"
	CodeMissingField ErrorCode = "MISSING_FIELD"
	CodeOutOfRange   ErrorCode = "OUT_OF_RANGE"

	// Podcast and quiz specific errors
	CodeQuizNotFound         ErrorCode = "QUIZ_NOT_FOUND"
	CodePodcastNotFound      ErrorCode = "PODCAST_NOT_FOUND"
	CodeQuizGenerationFailed ErrorCode = "QUIZ_GENERATION_FAILED"
	CodeTakeawaysEmpty       ErrorCode = "TAKEAWAYS_EMPTY"
	CodeUpstream             ErrorCode = "UPSTREAM_ERROR"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// WithContext attaches a detail that is returned to the client.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewQuizNotFoundError(quizID QuizID) *DomainError {
	return NewError(CodeQuizNotFound, "Quiz not found.", nil).WithContext("quiz_id", string(quizID))
}

func NewPodcastNotFoundError(podcastID int64) *DomainError {
	return NewError(CodePodcastNotFound, "Podcast not found.", nil).WithContext("podcast_id", podcastID)
}

func NewQuizGenerationFailedError() *DomainError {
	return NewError(CodeQuizGenerationFailed, "Failed to generate quiz question.", nil)
}

func NewTakeawaysEmptyError() *DomainError {
	return NewError(CodeTakeawaysEmpty, "Failed to extract key takeaways.", nil)
}

// NewUpstreamError reports a failed call to an external collaborator
// (transcription, text generation, persistence or email).
func NewUpstreamError(step string, err error) *DomainError {
	return NewError(CodeUpstream, fmt.Sprintf("Processing failed at %s", step), err).WithContext("step", step)
}

// FieldError describes one invalid request field.
type FieldError struct {
	Field   string    `json:"field"`
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects field errors for a single request.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", v[0].Error())
}

func NewMissingFieldError(field string) FieldError {
	return FieldError{Field: field, Code: CodeMissingField, Message: fmt.Sprintf("%s is required", field)}
}

func NewInvalidFormatError(field, value string) FieldError {
	return FieldError{Field: field, Code: CodeInvalidInput, Message: fmt.Sprintf("invalid %s: %q", field, value)}
}

func NewOutOfRangeError(field string, value, min, max int) FieldError {
	return FieldError{Field: field, Code: CodeOutOfRange, Message: fmt.Sprintf("%s must be between %d and %d, got %d", field, min, max, value)}
}
