package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
)

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	storage fiber.Storage
}

// NewProbeHandler creates a new probe handler. A nil storage means
// sessions live in process memory.
func NewProbeHandler(storage fiber.Storage) *ProbeHandler {
	return &ProbeHandler{storage: storage}
}

// Liveness handles the /healthz endpoint.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint. The app is ready when session
// storage answers.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if h.storage != nil {
		if _, err := h.storage.Get("readyz"); err != nil {
			slog.Warn("readiness check failed", "error", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "error",
				"error":  "session storage unavailable",
			})
		}
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
