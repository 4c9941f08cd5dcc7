package notifier

import (
	"context"
	"fmt"

	"podcast-quiz/internal/config"
	"podcast-quiz/internal/domain"
	"podcast-quiz/internal/logger"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// SMTPNotifier sends plain-text mail to a single configured recipient.
type SMTPNotifier struct {
	cfg config.SMTPConfig
}

// NewSMTPNotifier validates the SMTP settings and returns a notifier.
func NewSMTPNotifier(cfg config.SMTPConfig) (*SMTPNotifier, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("smtp host cannot be empty")
	}
	if cfg.Recipient == "" {
		return nil, fmt.Errorf("smtp recipient cannot be empty")
	}
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	if cfg.From == "" {
		return nil, fmt.Errorf("smtp sender address cannot be empty")
	}
	return &SMTPNotifier{cfg: cfg}, nil
}

// Send implements domain.Notifier
func (n *SMTPNotifier) Send(ctx context.Context, subject, body string) error {
	msg, err := n.buildMessage(subject, body)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(n.cfg.Host, n.clientOptions()...)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		logger.Get().Error("Failed to send email",
			zap.String("host", n.cfg.Host),
			zap.String("subject", subject),
			zap.Error(err))
		return fmt.Errorf("failed to send email: %w", err)
	}

	logger.Get().Info("Email sent", zap.String("subject", subject), zap.String("to", n.cfg.Recipient))
	return nil
}

func (n *SMTPNotifier) buildMessage(subject, body string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(n.cfg.From); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(n.cfg.Recipient); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)
	return msg, nil
}

func (n *SMTPNotifier) clientOptions() []mail.Option {
	opts := []mail.Option{mail.WithPort(n.cfg.Port)}
	if n.cfg.UseSSL {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	if n.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(n.cfg.Username),
			mail.WithPassword(n.cfg.Password),
		)
	}
	return opts
}

var _ domain.Notifier = (*SMTPNotifier)(nil)
