package transcription

import (
	"fmt"

	"podcast-quiz/internal/config"
	"podcast-quiz/internal/domain"
)

// NewTranscriber builds the backend selected by transcription.provider.
func NewTranscriber(cfg config.TranscriptionConfig) (domain.Transcriber, error) {
	switch cfg.Provider {
	case "openai":
		t, err := NewOpenAITranscriber(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.Language, cfg.Timeout)
		if err != nil {
			return nil, err
		}
		return t, nil
	case "whisper_cli":
		t, err := NewWhisperCLITranscriber(NewExecutor(), cfg)
		if err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, fmt.Errorf("unsupported transcription provider: %q", cfg.Provider)
	}
}
