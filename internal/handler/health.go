package handler

import (
	"podcast-quiz/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// Version is reported by the root endpoint and the API docs.
const Version = "1.0.9"

// Root godoc
// @Summary Root Endpoint
// @Description Reports that the API is running
// @Tags General
// @Produce json
// @Success 200 {object} dto.StatusResponse
// @Router / [get]
func Root(c *fiber.Ctx) error {
	return c.JSON(dto.StatusResponse{
		Message: "Podcast Transcription API is running!",
		Version: Version,
	})
}
