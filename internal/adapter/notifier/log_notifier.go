package notifier

import (
	"context"

	"podcast-quiz/internal/domain"
	"podcast-quiz/internal/logger"

	"go.uber.org/zap"
)

// LogNotifier writes messages to the log instead of mailing them. It is used
// when no SMTP host is configured.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Send implements domain.Notifier
func (LogNotifier) Send(_ context.Context, subject, body string) error {
	logger.Get().Info("Email delivery disabled, message logged",
		zap.String("subject", subject),
		zap.String("body", body))
	return nil
}

var _ domain.Notifier = (*LogNotifier)(nil)
