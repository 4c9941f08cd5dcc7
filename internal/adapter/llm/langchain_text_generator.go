package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"podcast-quiz/internal/config"
	"podcast-quiz/internal/domain"
	"podcast-quiz/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// LangchainTextGenerator implements domain.TextGenerator on any langchaingo model.
type LangchainTextGenerator struct {
	model       llms.Model
	temperature float64
	timeout     time.Duration
}

// NewLangchainTextGenerator wraps an already constructed model. A zero timeout
// leaves the deadline to the caller's context.
func NewLangchainTextGenerator(model llms.Model, temperature float64, timeout time.Duration) *LangchainTextGenerator {
	return &LangchainTextGenerator{
		model:       model,
		temperature: temperature,
		timeout:     timeout,
	}
}

// NewTextGenerator builds the model selected by llm.provider.
func NewTextGenerator(cfg config.LLMConfig) (*LangchainTextGenerator, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("llm model name cannot be empty")
	}

	httpClient := &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     30 * time.Second,
		},
	}

	var (
		model llms.Model
		err   error
	)
	switch cfg.Provider {
	case "ollama":
		if cfg.ServerURL == "" {
			return nil, fmt.Errorf("ollama server URL cannot be empty")
		}
		model, err = ollama.New(
			ollama.WithServerURL(cfg.ServerURL),
			ollama.WithModel(cfg.Model),
			ollama.WithHTTPClient(httpClient),
		)
	case "openai":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("llm API key cannot be empty for the openai provider")
		}
		opts := []openai.Option{
			openai.WithToken(cfg.APIKey),
			openai.WithModel(cfg.Model),
			openai.WithHTTPClient(httpClient),
		}
		if cfg.ServerURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.ServerURL))
		}
		model, err = openai.New(opts...)
	default:
		return nil, fmt.Errorf("unsupported llm provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s LLM client: %w", cfg.Provider, err)
	}

	return NewLangchainTextGenerator(model, cfg.Temperature, cfg.Timeout), nil
}

// Complete implements domain.TextGenerator
func (g *LangchainTextGenerator) Complete(ctx context.Context, prompt string, maxOutputTokens int) (string, error) {
	l := logger.Get()

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	response, err := llms.GenerateFromSinglePrompt(ctx, g.model, prompt,
		llms.WithMaxTokens(maxOutputTokens),
		llms.WithTemperature(g.temperature),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			l.Error("LLM request timed out", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
			return "", fmt.Errorf("LLM request timed out: %w", err)
		}
		l.Error("Failed to get response from LLM", zap.Error(err))
		return "", fmt.Errorf("LLM call failed: %w", err)
	}

	l.Debug("LLM response received",
		zap.Int("prompt_chars", len(prompt)),
		zap.Int("response_chars", len(response)),
		zap.Duration("elapsed", time.Since(start)))
	return response, nil
}

var _ domain.TextGenerator = (*LangchainTextGenerator)(nil)
