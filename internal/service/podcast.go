package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"podcast-quiz/internal/config"
	"podcast-quiz/internal/domain"
	"podcast-quiz/internal/dto"
	"podcast-quiz/internal/logger"
	"podcast-quiz/internal/util"

	"go.uber.org/zap"
)

const (
	detailSubject      = "Detail from Podcast"
	detailBodyTemplate = "Hello there! 🌞\n\n➡️ Transcript:\n\n%s\n\n➡️ Summary:\n\n%s\n\nHave a great day! 🚀"
)

// PodcastService runs the upload pipeline and serves stored podcasts.
type PodcastService interface {
	ProcessPodcast(ctx context.Context, filename string, audio io.Reader) (*dto.ProcessPodcastResponse, error)
	Summarize(ctx context.Context, transcript string) (*dto.SummaryResponse, error)
	KeyTakeaways(ctx context.Context, transcript string) (*dto.TakeawaysResponse, error)
	GetLatest(ctx context.Context) (*dto.PodcastResponse, error)
	GetAll(ctx context.Context) (*dto.PodcastListResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.PodcastResponse, error)
	SendDetail(ctx context.Context, transcript string) error
}

type podcastService struct {
	transcriber domain.Transcriber
	generator   ContentGenerator
	repo        domain.PodcastRepository
	notifier    domain.Notifier
	uploadDir   string
}

func NewPodcastService(
	transcriber domain.Transcriber,
	generator ContentGenerator,
	repo domain.PodcastRepository,
	notifier domain.Notifier,
	cfg *config.Config,
) PodcastService {
	return &podcastService{
		transcriber: transcriber,
		generator:   generator,
		repo:        repo,
		notifier:    notifier,
		uploadDir:   cfg.Upload.Dir,
	}
}

// ProcessPodcast implements PodcastService. Steps run strictly in order and the
// first failure aborts the rest.
func (s *podcastService) ProcessPodcast(ctx context.Context, filename string, audio io.Reader) (*dto.ProcessPodcastResponse, error) {
	audioPath, err := s.saveUpload(filename, audio)
	if err != nil {
		return nil, domain.NewUpstreamError("upload", err)
	}
	defer func() {
		if err := os.Remove(audioPath); err != nil && !os.IsNotExist(err) {
			logger.Get().Warn("Failed to remove upload", zap.String("path", audioPath), zap.Error(err))
		}
	}()

	log := logger.Get().With(zap.String("upload", filepath.Base(audioPath)))

	transcript, err := s.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return nil, domain.NewUpstreamError("transcription", err)
	}
	log.Info("Transcription finished", zap.Int("chars", len(transcript)))

	summary, err := s.generator.GenerateSummary(ctx, transcript)
	if err != nil {
		return nil, domain.NewUpstreamError("summarization", err)
	}

	takeaways, err := s.generator.GenerateTakeaways(ctx, transcript)
	if err != nil {
		return nil, domain.NewUpstreamError("takeaway extraction", err)
	}

	quiz, err := s.generator.GenerateQuiz(ctx, transcript)
	if err != nil {
		return nil, domain.NewUpstreamError("quiz generation", err)
	}
	if quiz == nil {
		log.Warn("No quiz produced for podcast")
	}

	record := &domain.PodcastRecord{
		Transcript: transcript,
		Summary:    summary,
		Takeaways:  takeaways,
		Quiz:       quiz,
	}
	if err := s.repo.Save(ctx, record); err != nil {
		return nil, domain.NewUpstreamError("persistence", err)
	}

	if err := s.notifier.Send(ctx, detailSubject, fmt.Sprintf(detailBodyTemplate, transcript, summary)); err != nil {
		return nil, domain.NewUpstreamError("notification", err)
	}
	log.Info("Podcast processed", zap.Int("takeaways", len(takeaways)), zap.Bool("quiz", quiz != nil))

	return &dto.ProcessPodcastResponse{
		Message:    "Podcast processed and saved successfully!",
		Transcript: transcript,
		Summary:    summary,
		Takeaways:  takeaways,
		Quiz:       quiz,
	}, nil
}

// saveUpload writes the upload under a unique name so concurrent uploads of
// the same file name do not clobber each other.
func (s *podcastService) saveUpload(filename string, audio io.Reader) (string, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	audioPath := filepath.Join(s.uploadDir, util.NewULID()+"_"+filepath.Base(filename))
	f, err := os.Create(audioPath)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}

	if _, err := io.Copy(f, audio); err != nil {
		f.Close()
		os.Remove(audioPath)
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(audioPath)
		return "", fmt.Errorf("close upload file: %w", err)
	}
	return audioPath, nil
}

// Summarize implements PodcastService
func (s *podcastService) Summarize(ctx context.Context, transcript string) (*dto.SummaryResponse, error) {
	summary, err := s.generator.GenerateSummary(ctx, transcript)
	if err != nil {
		return nil, domain.NewUpstreamError("summarization", err)
	}
	return &dto.SummaryResponse{Summary: summary}, nil
}

// KeyTakeaways implements PodcastService
func (s *podcastService) KeyTakeaways(ctx context.Context, transcript string) (*dto.TakeawaysResponse, error) {
	takeaways, err := s.generator.GenerateTakeaways(ctx, transcript)
	if err != nil {
		return nil, domain.NewUpstreamError("takeaway extraction", err)
	}
	if len(takeaways) == 0 {
		return nil, domain.NewTakeawaysEmptyError()
	}
	return &dto.TakeawaysResponse{Takeaways: takeaways}, nil
}

// GetLatest implements PodcastService
func (s *podcastService) GetLatest(ctx context.Context) (*dto.PodcastResponse, error) {
	podcast, err := s.repo.GetLatest(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get latest podcast", err)
	}
	if podcast == nil {
		return nil, domain.NewError(domain.CodePodcastNotFound, "Podcast not found.", nil)
	}
	return &dto.PodcastResponse{Podcast: podcast}, nil
}

// GetAll implements PodcastService
func (s *podcastService) GetAll(ctx context.Context) (*dto.PodcastListResponse, error) {
	podcasts, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list podcasts", err)
	}
	if podcasts == nil {
		podcasts = []*domain.PodcastSummary{}
	}
	return &dto.PodcastListResponse{Podcasts: podcasts}, nil
}

// GetByID implements PodcastService
func (s *podcastService) GetByID(ctx context.Context, id int64) (*dto.PodcastResponse, error) {
	podcast, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get podcast", err)
	}
	if podcast == nil {
		return nil, domain.NewPodcastNotFoundError(id)
	}
	return &dto.PodcastResponse{Podcast: podcast}, nil
}

// SendDetail summarizes the transcript and mails both to the recipient.
func (s *podcastService) SendDetail(ctx context.Context, transcript string) error {
	summary, err := s.generator.GenerateSummary(ctx, transcript)
	if err != nil {
		return domain.NewUpstreamError("summarization", err)
	}
	if err := s.notifier.Send(ctx, detailSubject, fmt.Sprintf(detailBodyTemplate, transcript, summary)); err != nil {
		return domain.NewUpstreamError("notification", err)
	}
	return nil
}
