package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"podcast-quiz/internal/config"
	"podcast-quiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		LLM:    config.LLMConfig{MaxOutputTokens: 500},
		Quiz:   config.QuizConfig{ShortOptionsPolicy: "accept"},
		Upload: config.UploadConfig{Dir: "uploads"},
	}
}

func promptContaining(fragment string) interface{} {
	return mock.MatchedBy(func(prompt string) bool { return strings.Contains(prompt, fragment) })
}

func TestContentGenerator_GenerateSummary(t *testing.T) {
	llm := new(MockTextGenerator)
	gen := NewContentGenerator(llm, testConfig())

	llm.On("Complete", mock.Anything, promptContaining("Summarize the following podcast transcript"), 500).
		Return("A short summary.", nil).Once()

	summary, err := gen.GenerateSummary(context.Background(), "the transcript")
	require.NoError(t, err)
	assert.Equal(t, "A short summary.", summary)
	llm.AssertExpectations(t)
}

func TestContentGenerator_GenerateSummaryError(t *testing.T) {
	llm := new(MockTextGenerator)
	gen := NewContentGenerator(llm, testConfig())

	llm.On("Complete", mock.Anything, mock.Anything, 500).Return("", errors.New("rate limited")).Once()

	_, err := gen.GenerateSummary(context.Background(), "t")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestParseTakeaways(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   []string
	}{
		{
			name:   "dash bullets",
			output: "- First point\n- Second point\n- Third point",
			want:   []string{"First point", "Second point", "Third point"},
		},
		{
			name:   "prose and other bullets are dropped",
			output: "Here are the takeaways:\n\n- Keep it simple\n* not a dash\n1. numbered\n- Ship often -",
			want:   []string{"Keep it simple", "Ship often"},
		},
		{
			name:   "indented bullets are not kept",
			output: "Intro\n  - indented",
			want:   []string{},
		},
		{
			name:   "surrounding whitespace is trimmed first",
			output: "\n\n- only one\n\n",
			want:   []string{"only one"},
		},
		{
			name:   "no bullets",
			output: "I cannot help with that.",
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseTakeaways(tt.output))
		})
	}
}

func TestContentGenerator_GenerateTakeaways(t *testing.T) {
	llm := new(MockTextGenerator)
	gen := NewContentGenerator(llm, testConfig())

	llm.On("Complete", mock.Anything, promptContaining("3 to 5 key takeaways"), 500).
		Return("- One\n- Two\n- Three", nil).Once()

	takeaways, err := gen.GenerateTakeaways(context.Background(), "t")
	require.NoError(t, err)
	assert.Equal(t, []string{"One", "Two", "Three"}, takeaways)
}

func TestContentGenerator_GenerateQuiz(t *testing.T) {
	tests := []struct {
		name     string
		policy   string
		output   string
		wantQuiz *domain.QuizRecord
	}{
		{
			name:   "trailing comma and missing brace are repaired",
			policy: "accept",
			output: "  {\"question\": \"What is Go?\", \"options\": [\"A language\", \"A game\", \"A verb\", \"A board\",], \"correct_answer\": \"A language\"\n",
			wantQuiz: &domain.QuizRecord{
				Question:      "What is Go?",
				Options:       []string{"A language", "A game", "A verb", "A board"},
				CorrectAnswer: "A language",
			},
		},
		{
			name:   "extra options are truncated",
			policy: "accept",
			output: `{"question":"Q","options":["a","b","c","d","e"],"correct_answer":"a"}`,
			wantQuiz: &domain.QuizRecord{
				Question:      "Q",
				Options:       []string{"a", "b", "c", "d"},
				CorrectAnswer: "a",
			},
		},
		{
			name:     "unparseable output means no quiz",
			policy:   "accept",
			output:   "```json\n{\"question\": \"Q\"}\n```",
			wantQuiz: nil,
		},
		{
			name:     "short options rejected by policy",
			policy:   "reject",
			output:   `{"question":"Q","options":["a","b"],"correct_answer":"a"}`,
			wantQuiz: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Quiz.ShortOptionsPolicy = tt.policy
			llm := new(MockTextGenerator)
			gen := NewContentGenerator(llm, cfg)

			llm.On("Complete", mock.Anything, promptContaining("Create exactly one quiz question"), 500).
				Return(tt.output, nil).Once()

			quiz, err := gen.GenerateQuiz(context.Background(), "t")
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuiz, quiz)
			llm.AssertExpectations(t)
		})
	}
}

func TestContentGenerator_GenerateQuizUpstreamError(t *testing.T) {
	llm := new(MockTextGenerator)
	gen := NewContentGenerator(llm, testConfig())

	llm.On("Complete", mock.Anything, mock.Anything, 500).Return("", errors.New("timeout")).Once()

	quiz, err := gen.GenerateQuiz(context.Background(), "t")
	assert.Error(t, err)
	assert.Nil(t, quiz)
}
