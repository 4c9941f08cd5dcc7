package handler

import (
	"podcast-quiz/internal/domain"
	"podcast-quiz/internal/dto"
	"podcast-quiz/internal/logger"
	"podcast-quiz/internal/middleware"
	"podcast-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PodcastHandler handles podcast processing and lookup requests
type PodcastHandler struct {
	service service.PodcastService
}

// NewPodcastHandler creates a new PodcastHandler instance
func NewPodcastHandler(service service.PodcastService) *PodcastHandler {
	return &PodcastHandler{
		service: service,
	}
}

// ProcessPodcast godoc
// @Summary Upload and process podcast
// @Description Transcribes the uploaded audio, generates summary, takeaways and a quiz, stores the result and emails the details
// @Tags Process podcast
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Podcast audio file"
// @Success 200 {object} dto.ProcessPodcastResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /process-podcast [post]
func (h *PodcastHandler) ProcessPodcast(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return domain.ValidationErrors{domain.NewMissingFieldError("file")}
	}

	file, err := fileHeader.Open()
	if err != nil {
		return domain.NewInternalError("Failed to read uploaded file", err)
	}
	defer file.Close()

	logger.Get().Info("Processing podcast upload",
		zap.String("filename", fileHeader.Filename),
		zap.Int64("size", fileHeader.Size))

	resp, err := h.service.ProcessPodcast(c.UserContext(), fileHeader.Filename, file)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Summarize godoc
// @Summary Generate Podcast Summary
// @Description Summarizes a podcast transcript
// @Tags Summarization
// @Accept json
// @Produce json
// @Param request body dto.TranscriptRequest true "Transcript"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /summarize [post]
func (h *PodcastHandler) Summarize(c *fiber.Ctx) error {
	transcript := c.Locals(middleware.ValidatedTranscriptKey).(string)

	resp, err := h.service.Summarize(c.UserContext(), transcript)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// KeyTakeaways godoc
// @Summary Generate key takeaways
// @Description Extracts 3 to 5 key takeaways from a podcast transcript
// @Tags Extract key takeaways
// @Accept json
// @Produce json
// @Param request body dto.TranscriptRequest true "Transcript"
// @Success 200 {object} dto.TakeawaysResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /key-takeaways [post]
func (h *PodcastHandler) KeyTakeaways(c *fiber.Ctx) error {
	transcript := c.Locals(middleware.ValidatedTranscriptKey).(string)

	resp, err := h.service.KeyTakeaways(c.UserContext(), transcript)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetLatest godoc
// @Summary Get the latest podcast
// @Tags Latest Podcast
// @Produce json
// @Success 200 {object} dto.PodcastResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /latest-podcast [get]
func (h *PodcastHandler) GetLatest(c *fiber.Ctx) error {
	resp, err := h.service.GetLatest(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetAll godoc
// @Summary List podcasts
// @Description Returns every stored podcast, most recent first
// @Tags Podcasts
// @Produce json
// @Success 200 {object} dto.PodcastListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /podcasts [get]
func (h *PodcastHandler) GetAll(c *fiber.Ctx) error {
	resp, err := h.service.GetAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetByID godoc
// @Summary Get a podcast by ID
// @Tags Podcast by ID
// @Produce json
// @Param id path int true "Podcast ID"
// @Success 200 {object} dto.PodcastResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /podcasts/{id} [get]
func (h *PodcastHandler) GetByID(c *fiber.Ctx) error {
	id := c.Locals(middleware.ValidatedPodcastIDKey).(int64)

	resp, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SendEmail godoc
// @Summary Send Email
// @Description Summarizes the transcript and emails transcript and summary
// @Tags Send email
// @Accept json
// @Produce json
// @Param request body dto.TranscriptRequest true "Transcript"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /send-email [post]
func (h *PodcastHandler) SendEmail(c *fiber.Ctx) error {
	transcript := c.Locals(middleware.ValidatedTranscriptKey).(string)

	if err := h.service.SendDetail(c.UserContext(), transcript); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Email sent successfully!"})
}
