package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"podcast-quiz/internal/domain"
	"podcast-quiz/internal/repository/models"
)

// Column aliases are quoted so drivers that upper-case unquoted names
// (Oracle) still map onto the lower-case db tags.
const (
	selectPodcastSummary = `SELECT id "id", summary "summary", takeaways "takeaways" FROM podcast_data`

	insertPodcastQuery = `INSERT INTO podcast_data (transcript, summary, takeaways, quiz, created_at)
	          VALUES (:transcript, :summary, :takeaways, :quiz, :created_at)`
	getLatestPodcastQuery = selectPodcastSummary + ` WHERE id = (SELECT MAX(id) FROM podcast_data)`
	getAllPodcastsQuery   = selectPodcastSummary + ` ORDER BY id DESC`
	getPodcastByIDQuery   = selectPodcastSummary + ` WHERE id = ?`
)

type podcastRepository struct {
	db DBTX
}

// NewPodcastRepository creates a sqlx backed domain.PodcastRepository.
func NewPodcastRepository(db DBTX) domain.PodcastRepository {
	return &podcastRepository{db: db}
}

func (r *podcastRepository) Save(ctx context.Context, record *domain.PodcastRecord) error {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	if _, err := r.db.NamedExecContext(ctx, insertPodcastQuery, toModelPodcast(record)); err != nil {
		return fmt.Errorf("failed to save podcast: %w", err)
	}
	return nil
}

func (r *podcastRepository) GetLatest(ctx context.Context) (*domain.PodcastSummary, error) {
	var row models.PodcastSummaryRow
	if err := r.db.GetContext(ctx, &row, getLatestPodcastQuery); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest podcast: %w", err)
	}
	return toDomainSummary(&row), nil
}

func (r *podcastRepository) GetAll(ctx context.Context) ([]*domain.PodcastSummary, error) {
	var rows []models.PodcastSummaryRow
	if err := r.db.SelectContext(ctx, &rows, getAllPodcastsQuery); err != nil {
		return nil, fmt.Errorf("failed to list podcasts: %w", err)
	}

	summaries := make([]*domain.PodcastSummary, 0, len(rows))
	for i := range rows {
		summaries = append(summaries, toDomainSummary(&rows[i]))
	}
	return summaries, nil
}

func (r *podcastRepository) GetByID(ctx context.Context, id int64) (*domain.PodcastSummary, error) {
	var row models.PodcastSummaryRow
	if err := r.db.GetContext(ctx, &row, r.db.Rebind(getPodcastByIDQuery), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get podcast by id: %w", err)
	}
	return toDomainSummary(&row), nil
}

func toModelPodcast(record *domain.PodcastRecord) *models.PodcastData {
	data := &models.PodcastData{
		ID:         record.ID,
		Transcript: sql.NullString{String: record.Transcript, Valid: true},
		Summary:    sql.NullString{String: record.Summary, Valid: true},
		Takeaways:  models.StringSlice(record.Takeaways),
		CreatedAt:  record.CreatedAt,
	}
	if record.Quiz != nil {
		data.Quiz = models.QuizJSON{
			Question:      record.Quiz.Question,
			Options:       record.Quiz.Options,
			CorrectAnswer: record.Quiz.CorrectAnswer,
		}
	}
	return data
}

func toDomainSummary(row *models.PodcastSummaryRow) *domain.PodcastSummary {
	takeaways := []string(row.Takeaways)
	if takeaways == nil {
		takeaways = []string{}
	}
	return &domain.PodcastSummary{
		ID:        row.ID,
		Summary:   row.Summary.String,
		Takeaways: takeaways,
	}
}
