package api

import (
	"time"

	"github.com/gofiber/fiber/v3"
)

// ConversationCounter reports how many chat conversations are held.
type ConversationCounter interface {
	Len() int
}

// HealthHandler reports liveness.
type HealthHandler struct {
	conversations ConversationCounter
	started       time.Time
}

// NewHealthHandler creates a new API health handler.
func NewHealthHandler(conversations ConversationCounter) *HealthHandler {
	return &HealthHandler{conversations: conversations, started: time.Now()}
}

// Check returns uptime and in-memory conversation count.
func (h *HealthHandler) Check(c fiber.Ctx) error {
	return jsonSuccess(c, fiber.Map{
		"uptime":        time.Since(h.started).Round(time.Second).String(),
		"conversations": h.conversations.Len(),
	})
}
