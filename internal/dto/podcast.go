package dto

import "podcast-quiz/internal/domain"

// ProcessPodcastResponse is returned once an upload went through the whole pipeline.
type ProcessPodcastResponse struct {
	Message    string             `json:"message"`
	Transcript string             `json:"transcript"`
	Summary    string             `json:"summary"`
	Takeaways  []string           `json:"takeaways"`
	Quiz       *domain.QuizRecord `json:"quiz"`
}

type SummaryResponse struct {
	Summary string `json:"summary"`
}

type TakeawaysResponse struct {
	Takeaways []string `json:"takeaways"`
}

// PodcastResponse wraps a single stored podcast.
type PodcastResponse struct {
	Podcast *domain.PodcastSummary `json:"podcast"`
}

// PodcastListResponse lists stored podcasts, most recent first.
type PodcastListResponse struct {
	Podcasts []*domain.PodcastSummary `json:"podcasts"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// StatusResponse is returned by the root endpoint.
type StatusResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}
