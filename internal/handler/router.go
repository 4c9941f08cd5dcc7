package handler

import (
	"podcast-quiz/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the root endpoint and the /api group.
func RegisterRoutes(app *fiber.App, podcastHandler *PodcastHandler, quizHandler *QuizHandler) {
	validator := middleware.NewValidationMiddleware()

	app.Get("/", Root)

	apiGroup := app.Group("/api")

	// Podcast routes
	apiGroup.Post("/process-podcast", podcastHandler.ProcessPodcast)
	apiGroup.Post("/summarize", validator.ValidateTranscript(), podcastHandler.Summarize)
	apiGroup.Post("/key-takeaways", validator.ValidateTranscript(), podcastHandler.KeyTakeaways)
	apiGroup.Get("/latest-podcast", podcastHandler.GetLatest)
	apiGroup.Get("/podcasts", podcastHandler.GetAll)
	apiGroup.Get("/podcasts/:id", validator.ValidatePodcastID(), podcastHandler.GetByID)
	apiGroup.Post("/send-email", validator.ValidateTranscript(), podcastHandler.SendEmail)

	// Quiz routes
	apiGroup.Post("/generate-quiz", validator.ValidateTranscript(), quizHandler.GenerateQuiz)
	apiGroup.Post("/quiz/submit-answer", validator.ValidateSubmitAnswer(), quizHandler.SubmitAnswer)
}
