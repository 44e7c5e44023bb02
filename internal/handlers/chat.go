package handlers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
	"github.com/google/uuid"

	"mindhub/internal/chatbot"
	"mindhub/internal/config"
	"mindhub/internal/content"
	"mindhub/internal/metrics"
	"mindhub/internal/models"
	"mindhub/internal/store"
	"mindhub/internal/validation"
)

const keyConversation = "chat_id"

// ChatHandler serves the chat page.
type ChatHandler struct {
	cfg           *config.Config
	matcher       *chatbot.Matcher
	conversations *store.Conversations
	delay         func() time.Duration
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(cfg *config.Config, matcher *chatbot.Matcher, conversations *store.Conversations) *ChatHandler {
	return &ChatHandler{
		cfg:           cfg,
		matcher:       matcher,
		conversations: conversations,
		delay:         func() time.Duration { return jitter(cfg.ReplyDelayMin, cfg.ReplyDelayMax) },
	}
}

// conversation loads the session's conversation, starting one if needed.
func (h *ChatHandler) conversation(ctx context.Context, sess *session.Middleware) *models.Conversation {
	if raw, ok := sess.Get(keyConversation).(string); ok {
		if id, err := uuid.Parse(raw); err == nil {
			if conv, err := h.conversations.Get(ctx, id); err == nil {
				return conv
			}
		}
	}
	conv := h.conversations.Start(ctx, chatbot.Greeting)
	sess.Set(keyConversation, conv.ID.String())
	return conv
}

// Index renders the conversation.
func (h *ChatHandler) Index(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}

	conv := h.conversation(c.Context(), sess)
	return render(c, h.cfg, "chatbot", fiber.Map{
		"Title":        "Chatbot",
		"Messages":     conv.Messages,
		"Disclaimer":   chatbot.Disclaimer,
		"QuickActions": content.QuickActions(),
	})
}

// Send answers one message after the simulated typing delay.
func (h *ChatHandler) Send(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}

	text := c.FormValue("message")
	if strings.TrimSpace(text) == "" {
		if isHTMX(c) {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.Redirect().To("/chatbot")
	}

	if chatbot.IsBookingRequest(text) {
		return redirect(c, "/appointment")
	}

	if ok, msg := validation.ValidateContent(text); !ok {
		if isHTMX(c) {
			return htmxError(c, msg)
		}
		return fiber.NewError(fiber.StatusBadRequest, msg)
	}

	ctx := c.Context()
	conv := h.conversation(ctx, sess)

	userMsg := models.ChatMessage{
		ID:        uuid.New(),
		Role:      models.RoleUser,
		Content:   text,
		Timestamp: time.Now(),
	}

	if err := wait(ctx, h.delay()); err != nil {
		return err
	}

	match := h.matcher.Match(text)
	metrics.RecordChatReply(match.Rule)

	botMsg := models.ChatMessage{
		ID:        uuid.New(),
		Role:      models.RoleAssistant,
		Content:   match.Reply,
		Rule:      match.Rule,
		Timestamp: time.Now(),
	}

	err := h.conversations.Append(ctx, conv.ID, userMsg, botMsg)
	if errors.Is(err, store.ErrConversationNotFound) {
		// Pruned between load and append.
		conv = h.conversations.Start(ctx, chatbot.Greeting)
		sess.Set(keyConversation, conv.ID.String())
		err = h.conversations.Append(ctx, conv.ID, userMsg, botMsg)
	}
	if err != nil {
		return err
	}

	if isHTMX(c) {
		return c.Render("partials/chat_messages", fiber.Map{
			"Messages": []models.ChatMessage{userMsg, botMsg},
		}, "")
	}
	return c.Redirect().To("/chatbot")
}

// Reset starts a fresh conversation.
func (h *ChatHandler) Reset(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}

	if raw, ok := sess.Get(keyConversation).(string); ok {
		if id, err := uuid.Parse(raw); err == nil {
			h.conversations.Delete(c.Context(), id)
		}
	}
	sess.Delete(keyConversation)
	return redirect(c, "/chatbot")
}
