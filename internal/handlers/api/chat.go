package api

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v3"

	"mindhub/internal/chatbot"
	"mindhub/internal/metrics"
	"mindhub/internal/models"
	"mindhub/internal/validation"
)

// ChatHandler answers chat messages over JSON.
type ChatHandler struct {
	matcher *chatbot.Matcher
}

// NewChatHandler creates a new API chat handler.
func NewChatHandler(matcher *chatbot.Matcher) *ChatHandler {
	return &ChatHandler{matcher: matcher}
}

// Reply answers one message synchronously.
func (h *ChatHandler) Reply(c fiber.Ctx) error {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if strings.TrimSpace(body.Message) == "" {
		return jsonError(c, fiber.StatusBadRequest, "message is required")
	}
	if ok, msg := validation.ValidateContent(body.Message); !ok {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	if chatbot.IsBookingRequest(body.Message) {
		return jsonSuccess(c, models.ChatReplyResponse{Redirect: "/appointment"})
	}

	match := h.matcher.Match(body.Message)
	metrics.RecordChatReply(match.Rule)

	return jsonSuccess(c, models.ChatReplyResponse{
		Reply: match.Reply,
		Rule:  match.Rule,
	})
}

// Greeting returns the opening message and the disclaimer.
func (h *ChatHandler) Greeting(c fiber.Ctx) error {
	return jsonSuccess(c, fiber.Map{
		"greeting":   chatbot.Greeting,
		"disclaimer": chatbot.Disclaimer,
	})
}
