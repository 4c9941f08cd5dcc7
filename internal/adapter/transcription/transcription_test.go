package transcription

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"podcast-quiz/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAudio(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "episode.mp3")
	require.NoError(t, os.WriteFile(path, []byte("ID3fake-audio"), 0o600))
	return path
}

func TestOpenAITranscriber_Transcribe(t *testing.T) {
	var gotPath, gotModel string
	var gotAudio []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotModel = r.FormValue("model")
		f, _, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		gotAudio, _ = io.ReadAll(f)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text":"  Welcome to the show.  "}`))
	}))
	defer server.Close()

	tr, err := NewOpenAITranscriber("test-key", server.URL+"/v1", "", "", 0)
	require.NoError(t, err)

	text, err := tr.Transcribe(context.Background(), writeAudio(t))
	require.NoError(t, err)
	assert.Equal(t, "Welcome to the show.", text)
	assert.Equal(t, "/v1/audio/transcriptions", gotPath)
	assert.Equal(t, "whisper-1", gotModel)
	assert.Equal(t, []byte("ID3fake-audio"), gotAudio)
}

func TestOpenAITranscriber_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
	}))
	defer server.Close()

	tr, err := NewOpenAITranscriber("test-key", server.URL+"/v1", "whisper-1", "en", 0)
	require.NoError(t, err)

	_, err = tr.Transcribe(context.Background(), writeAudio(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "whisper transcribe")
}

func TestNewOpenAITranscriber_RequiresKeyOrURL(t *testing.T) {
	_, err := NewOpenAITranscriber("", "", "whisper-1", "", 0)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "API key cannot be empty")
}

type fakeExecutor struct {
	name   string
	args   []string
	output string
	err    error
}

func (f *fakeExecutor) Execute(_ context.Context, name string, args ...string) (string, error) {
	f.name = name
	f.args = args
	if f.err != nil {
		return "", f.err
	}
	for i, a := range args {
		if a == "--output-file" && i+1 < len(args) {
			if err := os.WriteFile(args[i+1]+".txt", []byte(f.output), 0o600); err != nil {
				return "", err
			}
		}
	}
	return "", nil
}

func TestWhisperCLITranscriber_Transcribe(t *testing.T) {
	exec := &fakeExecutor{output: "\n Hello from whisper.cpp \n"}
	tr, err := NewWhisperCLITranscriber(exec, config.TranscriptionConfig{
		BinaryPath: "/usr/local/bin/whisper-cli",
		ModelPath:  "models/ggml-base.bin",
		Language:   "en",
		Threads:    8,
	})
	require.NoError(t, err)

	audio := writeAudio(t)
	text, err := tr.Transcribe(context.Background(), audio)
	require.NoError(t, err)
	assert.Equal(t, "Hello from whisper.cpp", text)

	assert.Equal(t, "/usr/local/bin/whisper-cli", exec.name)
	assert.Contains(t, exec.args, "-otxt")
	assert.Contains(t, exec.args, audio)
	assert.Contains(t, exec.args, "8")

	_, statErr := os.Stat(audio[:len(audio)-len(".mp3")] + ".txt")
	assert.True(t, os.IsNotExist(statErr), "output file is removed after reading")
}

func TestWhisperCLITranscriber_CommandFails(t *testing.T) {
	exec := &fakeExecutor{err: errors.New("exit status 1")}
	tr, err := NewWhisperCLITranscriber(exec, config.TranscriptionConfig{BinaryPath: "whisper-cli", ModelPath: "m.bin"})
	require.NoError(t, err)

	_, err = tr.Transcribe(context.Background(), writeAudio(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "whisper transcribe")
}

func TestNewTranscriber(t *testing.T) {
	tr, err := NewTranscriber(config.TranscriptionConfig{Provider: "openai", APIKey: "k", Model: "whisper-1"})
	assert.NoError(t, err)
	assert.IsType(t, &OpenAITranscriber{}, tr)

	tr, err = NewTranscriber(config.TranscriptionConfig{Provider: "whisper_cli", BinaryPath: "whisper-cli", ModelPath: "m.bin"})
	assert.NoError(t, err)
	assert.IsType(t, &WhisperCLITranscriber{}, tr)

	_, err = NewTranscriber(config.TranscriptionConfig{Provider: "whisper_cli"})
	assert.Error(t, err)

	_, err = NewTranscriber(config.TranscriptionConfig{Provider: "deepgram"})
	assert.Error(t, err)
}
