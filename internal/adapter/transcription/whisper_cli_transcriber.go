package transcription

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"podcast-quiz/internal/config"
	"podcast-quiz/internal/domain"
	"podcast-quiz/internal/logger"

	"go.uber.org/zap"
)

// WhisperCLITranscriber runs a local whisper.cpp binary and reads the .txt it writes.
type WhisperCLITranscriber struct {
	executor   Executor
	binaryPath string
	modelPath  string
	language   string
	threads    int
	timeout    time.Duration
}

// NewWhisperCLITranscriber creates a transcriber for whisper.cpp.
func NewWhisperCLITranscriber(executor Executor, cfg config.TranscriptionConfig) (*WhisperCLITranscriber, error) {
	if cfg.BinaryPath == "" {
		return nil, fmt.Errorf("whisper binary path cannot be empty")
	}
	if cfg.ModelPath == "" {
		return nil, fmt.Errorf("whisper model path cannot be empty")
	}
	threads := cfg.Threads
	if threads <= 0 {
		threads = 4
	}
	language := cfg.Language
	if language == "" {
		language = "auto"
	}
	return &WhisperCLITranscriber{
		executor:   executor,
		binaryPath: cfg.BinaryPath,
		modelPath:  cfg.ModelPath,
		language:   language,
		threads:    threads,
		timeout:    cfg.Timeout,
	}, nil
}

// Transcribe implements domain.Transcriber
func (w *WhisperCLITranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	// whisper.cpp appends .txt to the output prefix
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))
	txtPath := outputPrefix + ".txt"
	defer os.Remove(txtPath)

	args := []string{
		"-m", w.modelPath,
		"-f", audioPath,
		"-otxt",
		"-l", w.language,
		"-t", strconv.Itoa(w.threads),
		"--output-file", outputPrefix,
	}

	logger.Get().Info("Starting whisper.cpp transcription",
		zap.String("path", audioPath),
		zap.Int("threads", w.threads))

	if _, err := w.executor.Execute(ctx, w.binaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	content, err := os.ReadFile(txtPath)
	if err != nil {
		return "", fmt.Errorf("read whisper output %s: %w", txtPath, err)
	}
	return strings.TrimSpace(string(content)), nil
}

var _ domain.Transcriber = (*WhisperCLITranscriber)(nil)
