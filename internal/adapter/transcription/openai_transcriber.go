package transcription

import (
	"context"
	"fmt"
	"strings"
	"time"

	"podcast-quiz/internal/domain"
	"podcast-quiz/internal/logger"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// OpenAITranscriber sends audio to a Whisper compatible /audio/transcriptions endpoint.
type OpenAITranscriber struct {
	client   *openai.Client
	model    string
	language string
	timeout  time.Duration
}

// NewOpenAITranscriber creates a transcriber. baseURL may point at any server
// implementing the OpenAI audio API; empty means api.openai.com.
func NewOpenAITranscriber(apiKey, baseURL, model, language string, timeout time.Duration) (*OpenAITranscriber, error) {
	if apiKey == "" && baseURL == "" {
		return nil, fmt.Errorf("transcription API key cannot be empty")
	}
	if model == "" {
		model = openai.Whisper1
	}

	clientCfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientCfg.BaseURL = baseURL
	}

	return &OpenAITranscriber{
		client:   openai.NewClientWithConfig(clientCfg),
		model:    model,
		language: language,
		timeout:  timeout,
	}, nil
}

// Transcribe implements domain.Transcriber
func (t *OpenAITranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	logger.Get().Info("Transcribing audio", zap.String("path", audioPath), zap.String("model", t.model))

	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    t.model,
		FilePath: audioPath,
		Language: t.language,
	})
	if err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}
	return strings.TrimSpace(resp.Text), nil
}

var _ domain.Transcriber = (*OpenAITranscriber)(nil)
