package domain

import (
	"encoding/json"
	"strings"
)

// QuizOptionCount is the number of answer choices a quiz question carries.
const QuizOptionCount = 4

// QuizID is the opaque handle returned when a quiz is registered.
type QuizID string

// QuizRecord is one generated multiple-choice question.
type QuizRecord struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// ShortOptionsPolicy decides what happens to a question with fewer than
// QuizOptionCount options.
type ShortOptionsPolicy string

const (
	// ShortOptionsAccept keeps the question as produced, without padding.
	ShortOptionsAccept ShortOptionsPolicy = "accept"
	// ShortOptionsReject treats the question as not produced.
	ShortOptionsReject ShortOptionsPolicy = "reject"
)

// NormalizeQuiz parses repaired model output into a QuizRecord. Extra options
// beyond QuizOptionCount are dropped in order. ok is false when the text is not a
// JSON object, carries no question, or is short and the policy rejects it.
func NormalizeQuiz(repaired string, policy ShortOptionsPolicy) (QuizRecord, bool) {
	var quiz QuizRecord
	if err := json.Unmarshal([]byte(repaired), &quiz); err != nil {
		return QuizRecord{}, false
	}
	if strings.TrimSpace(quiz.Question) == "" {
		return QuizRecord{}, false
	}

	if len(quiz.Options) > QuizOptionCount {
		quiz.Options = quiz.Options[:QuizOptionCount:QuizOptionCount]
	}
	if len(quiz.Options) < QuizOptionCount && policy == ShortOptionsReject {
		return QuizRecord{}, false
	}
	return quiz, true
}

// IsCorrect compares a submitted answer with the stored one, ignoring case and
// surrounding whitespace.
func (q *QuizRecord) IsCorrect(answer string) bool {
	return strings.ToLower(strings.TrimSpace(answer)) == strings.ToLower(strings.TrimSpace(q.CorrectAnswer))
}
