package notifier

import (
	"bytes"
	"context"
	"testing"

	"podcast-quiz/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSMTPNotifier(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.SMTPConfig
		wantErr string
	}{
		{
			name: "sender falls back to username",
			cfg:  config.SMTPConfig{Host: "smtp.example.com", Port: 465, Username: "bot@example.com", Recipient: "me@example.com"},
		},
		{
			name:    "missing host",
			cfg:     config.SMTPConfig{Username: "bot@example.com", Recipient: "me@example.com"},
			wantErr: "smtp host",
		},
		{
			name:    "missing recipient",
			cfg:     config.SMTPConfig{Host: "smtp.example.com", Username: "bot@example.com"},
			wantErr: "smtp recipient",
		},
		{
			name:    "missing sender",
			cfg:     config.SMTPConfig{Host: "smtp.example.com", Recipient: "me@example.com"},
			wantErr: "sender address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := NewSMTPNotifier(tt.cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "bot@example.com", n.cfg.From)
		})
	}
}

func TestSMTPNotifier_BuildMessage(t *testing.T) {
	n, err := NewSMTPNotifier(config.SMTPConfig{
		Host:      "smtp.example.com",
		Port:      465,
		From:      "podcasts@example.com",
		Recipient: "listener@example.com",
	})
	require.NoError(t, err)

	msg, err := n.buildMessage("Detail from Podcast", "Summary:\n\nShort episode.")
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)

	raw := buf.String()
	assert.Contains(t, raw, "Subject: Detail from Podcast")
	assert.Contains(t, raw, "<podcasts@example.com>")
	assert.Contains(t, raw, "<listener@example.com>")
	assert.Contains(t, raw, "text/plain")
	assert.Contains(t, raw, "Short episode.")
}

func TestSMTPNotifier_BuildMessageInvalidRecipient(t *testing.T) {
	n, err := NewSMTPNotifier(config.SMTPConfig{
		Host:      "smtp.example.com",
		From:      "podcasts@example.com",
		Recipient: "not an address",
	})
	require.NoError(t, err)

	_, err = n.buildMessage("subject", "body")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid recipient")
}

func TestSMTPNotifier_ClientOptions(t *testing.T) {
	withAuth := &SMTPNotifier{cfg: config.SMTPConfig{Port: 465, UseSSL: true, Username: "u", Password: "p"}}
	assert.Len(t, withAuth.clientOptions(), 5)

	plain := &SMTPNotifier{cfg: config.SMTPConfig{Port: 25}}
	assert.Len(t, plain.clientOptions(), 2)
}

func TestLogNotifier_Send(t *testing.T) {
	assert.NoError(t, NewLogNotifier().Send(context.Background(), "subject", "body"))
}
