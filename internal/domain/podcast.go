package domain

import (
	"context"
	"time"
)

// PodcastRecord is one processed upload. Records are write-once.
type PodcastRecord struct {
	ID         int64
	Transcript string
	Summary    string
	Takeaways  []string
	Quiz       *QuizRecord // nil when no quiz could be produced
	CreatedAt  time.Time
}

// PodcastSummary is the read model returned by the repository.
type PodcastSummary struct {
	ID        int64    `json:"id"`
	Summary   string   `json:"summary"`
	Takeaways []string `json:"takeaways"`
}

// PodcastRepository persists processed podcasts.
type PodcastRepository interface {
	// Save inserts a new record. The identifier is assigned by the database.
	Save(ctx context.Context, record *PodcastRecord) error

	// GetLatest returns the most recently saved podcast, or nil when there is none.
	GetLatest(ctx context.Context) (*PodcastSummary, error)

	// GetAll returns every podcast, most recent first.
	GetAll(ctx context.Context) ([]*PodcastSummary, error)

	// GetByID returns the podcast with the given id, or nil when it does not exist.
	GetByID(ctx context.Context, id int64) (*PodcastSummary, error)
}
