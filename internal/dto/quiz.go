package dto

import "podcast-quiz/internal/domain"

// TranscriptRequest carries a transcript for summarize, key-takeaways,
// generate-quiz and send-email.
// @Description Request body with a podcast transcript
type TranscriptRequest struct {
	Transcript string `json:"transcript" example:"Welcome to the show. Today we talk about Go."`
}

// QuizResponse is a generated question and the handle used to answer it.
// @Description Generated quiz question
type QuizResponse struct {
	QuizID string             `json:"quiz_id" example:"1"`
	Quiz   *domain.QuizRecord `json:"quiz"`
}

// SubmitAnswerRequest represents a user's answer to a generated quiz.
// @Description Request body for checking an answer
type SubmitAnswerRequest struct {
	QuizID string `json:"quiz_id" example:"1"`
	Answer string `json:"answer" example:"Go"`
}

// SubmitAnswerResponse reports the result. CorrectAnswer is always returned.
type SubmitAnswerResponse struct {
	QuizID        string `json:"quiz_id"`
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correct_answer"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Status  int                    `json:"status"`
	Details map[string]interface{} `json:"details,omitempty"`
}
