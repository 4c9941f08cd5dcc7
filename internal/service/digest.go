package service

import (
	"context"
	"fmt"
	"time"

	"podcast-quiz/internal/config"
	"podcast-quiz/internal/domain"
	"podcast-quiz/internal/logger"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	digestSubject      = "📢 Daily Key Takeaway from Podcast"
	digestBodyTemplate = "Good morning! 🌞\n\nToday's key takeaway:\n\n➡️ %s\n\nHave a great day! 🚀"
)

// DigestService mails one takeaway of the latest podcast on a cron schedule.
type DigestService struct {
	repo     domain.PodcastRepository
	notifier domain.Notifier
	schedule string
	now      func() time.Time
}

func NewDigestService(repo domain.PodcastRepository, notifier domain.Notifier, cfg config.DigestConfig) *DigestService {
	return &DigestService{
		repo:     repo,
		notifier: notifier,
		schedule: cfg.Schedule,
		now:      time.Now,
	}
}

// SendDailyTakeaway picks today's takeaway from the latest podcast and mails
// it. It is a no-op when nothing has been processed yet.
func (d *DigestService) SendDailyTakeaway(ctx context.Context) error {
	podcast, err := d.repo.GetLatest(ctx)
	if err != nil {
		return fmt.Errorf("load latest podcast: %w", err)
	}
	if podcast == nil || len(podcast.Takeaways) == 0 {
		logger.Get().Info("No podcast data available for email")
		return nil
	}

	// rotate through the takeaways, one per day of the year
	takeaway := podcast.Takeaways[d.now().YearDay()%len(podcast.Takeaways)]

	if err := d.notifier.Send(ctx, digestSubject, fmt.Sprintf(digestBodyTemplate, takeaway)); err != nil {
		return fmt.Errorf("send daily takeaway: %w", err)
	}
	logger.Get().Info("Daily takeaway email sent", zap.Int64("podcast_id", podcast.ID))
	return nil
}

// Run schedules the digest and blocks until ctx is cancelled. A running job is
// allowed to finish before Run returns.
func (d *DigestService) Run(ctx context.Context) error {
	cronLog := cronLogger{log: logger.Get().Sugar()}
	c := cron.New(cron.WithLogger(cronLog), cron.WithChain(cron.Recover(cronLog)))

	if _, err := c.AddFunc(d.schedule, func() {
		if err := d.SendDailyTakeaway(ctx); err != nil {
			logger.Get().Error("Daily digest failed", zap.Error(err))
		}
	}); err != nil {
		return fmt.Errorf("invalid digest schedule %q: %w", d.schedule, err)
	}

	c.Start()
	logger.Get().Info("Digest scheduler started", zap.String("schedule", d.schedule))

	<-ctx.Done()
	<-c.Stop().Done()
	logger.Get().Info("Digest scheduler stopped")
	return nil
}

// cronLogger adapts zap to cron.Logger.
type cronLogger struct {
	log *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Errorw(msg, append(keysAndValues, "error", err)...)
}
