package service

import (
	"context"
	"fmt"
	"strings"

	"podcast-quiz/internal/config"
	"podcast-quiz/internal/domain"
	"podcast-quiz/internal/logger"
	"podcast-quiz/internal/util"

	"go.uber.org/zap"
)

const summaryPromptTemplate = "You are a helpful assistant who summarizes podcasts. " +
	"Summarize the following podcast transcript in a concise and informative manner:\n\n%s"

const takeawaysPromptTemplate = "You are an AI that extracts key insights from podcast transcripts.\n" +
	"Analyze the following transcript and provide **3 to 5 key takeaways** in bullet points.\n" +
	"Ensure the takeaways are clear, concise, and informative.\n\n" +
	"Transcript:\n%s\n\n" +
	"Your response should be in the format:\n" +
	"- Key takeaway 1\n" +
	"- Key takeaway 2\n" +
	"- Key takeaway 3\n" +
	"- (Optional) Key takeaway 4\n" +
	"- (Optional) Key takeaway 5"

const quizPromptTemplate = "You are a helpful assistant. Create exactly one quiz question from the text below.\n\n" +
	"Requirements:\n" +
	"1. Provide EXACTLY 4 answer choices.\n" +
	"2. Return ONLY valid JSON.\n" +
	"3. Use the keys: question, options, correct_answer.\n" +
	"4. DO NOT include trailing commas or any extra text.\n" +
	"5. DO NOT omit the closing brace.\n\n" +
	"Text:\n%s\n\n" +
	"Your entire response MUST be valid JSON in this exact format:\n" +
	"```\n" +
	"{\n" +
	"  \"question\": \"...\",\n" +
	"  \"options\": [\"...\", \"...\", \"...\", \"...\"],\n" +
	"  \"correct_answer\": \"...\"\n" +
	"}\n" +
	"```\n"

// ContentGenerator turns a transcript into summary, takeaways and a quiz question.
type ContentGenerator interface {
	GenerateSummary(ctx context.Context, transcript string) (string, error)
	GenerateTakeaways(ctx context.Context, transcript string) ([]string, error)
	// GenerateQuiz returns nil, nil when the model output could not be turned
	// into a quiz.
	GenerateQuiz(ctx context.Context, transcript string) (*domain.QuizRecord, error)
}

type contentGenerator struct {
	llm       domain.TextGenerator
	maxTokens int
	policy    domain.ShortOptionsPolicy
}

func NewContentGenerator(llm domain.TextGenerator, cfg *config.Config) ContentGenerator {
	policy := domain.ShortOptionsPolicy(cfg.Quiz.ShortOptionsPolicy)
	if policy == "" {
		policy = domain.ShortOptionsAccept
	}
	return &contentGenerator{
		llm:       llm,
		maxTokens: cfg.LLM.MaxOutputTokens,
		policy:    policy,
	}
}

func (g *contentGenerator) GenerateSummary(ctx context.Context, transcript string) (string, error) {
	summary, err := g.llm.Complete(ctx, fmt.Sprintf(summaryPromptTemplate, transcript), g.maxTokens)
	if err != nil {
		return "", fmt.Errorf("generate summary: %w", err)
	}
	return summary, nil
}

func (g *contentGenerator) GenerateTakeaways(ctx context.Context, transcript string) ([]string, error) {
	output, err := g.llm.Complete(ctx, fmt.Sprintf(takeawaysPromptTemplate, transcript), g.maxTokens)
	if err != nil {
		return nil, fmt.Errorf("generate takeaways: %w", err)
	}
	return parseTakeaways(output), nil
}

// parseTakeaways keeps the lines that start with a dash bullet.
func parseTakeaways(output string) []string {
	takeaways := []string{}
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		if strings.HasPrefix(line, "-") {
			takeaways = append(takeaways, strings.Trim(line, "- "))
		}
	}
	return takeaways
}

func (g *contentGenerator) GenerateQuiz(ctx context.Context, transcript string) (*domain.QuizRecord, error) {
	output, err := g.llm.Complete(ctx, fmt.Sprintf(quizPromptTemplate, transcript), g.maxTokens)
	if err != nil {
		return nil, fmt.Errorf("generate quiz: %w", err)
	}

	raw := strings.TrimSpace(output)
	quiz, ok := domain.NormalizeQuiz(util.RepairJSON(raw), g.policy)
	if !ok {
		logger.Get().Error("Error decoding quiz response",
			zap.String("raw", raw),
			zap.String("policy", string(g.policy)))
		return nil, nil
	}
	return &quiz, nil
}
