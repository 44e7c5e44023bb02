package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"mindhub/internal/config"
	"mindhub/internal/metrics"
	"mindhub/internal/middleware"
	"mindhub/internal/models"
	"mindhub/internal/store"
	"mindhub/internal/validation"
)

// ForumHandler serves the peer-support forum.
type ForumHandler struct {
	cfg   *config.Config
	forum *store.Forum
}

// NewForumHandler creates a new forum handler.
func NewForumHandler(cfg *config.Config, forum *store.Forum) *ForumHandler {
	return &ForumHandler{cfg: cfg, forum: forum}
}

// Index lists topics.
func (h *ForumHandler) Index(c fiber.Ctx) error {
	return render(c, h.cfg, "forum", fiber.Map{
		"Title":  "Peer Support Forum",
		"Topics": h.forum.Topics(c.Context()),
	})
}

// Topic lists a topic's posts, newest first.
func (h *ForumHandler) Topic(c fiber.Ctx) error {
	return h.showTopic(c, "")
}

func (h *ForumHandler) showTopic(c fiber.Ctx, errMsg string) error {
	topic, err := h.forum.Topic(c.Context(), c.Params("topic"))
	if err != nil {
		if errors.Is(err, store.ErrTopicNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "topic not found")
		}
		return err
	}

	posts, err := h.forum.Posts(c.Context(), topic.ID)
	if err != nil {
		return err
	}

	return render(c, h.cfg, "forum_topic", fiber.Map{
		"Title": topic.Title,
		"Topic": topic,
		"Posts": posts,
		"Error": errMsg,
	})
}

// authorName is the username, or the anonymous label when asked for.
func authorName(c fiber.Ctx) string {
	if c.FormValue("anonymous") != "" {
		return models.AnonymousAuthor
	}
	if user := middleware.CurrentUser(c); user != nil && user.Username != "" {
		return user.Username
	}
	return models.AnonymousAuthor
}

// CreatePost shares a new post in a topic.
func (h *ForumHandler) CreatePost(c fiber.Ctx) error {
	topicID := c.Params("topic")
	text := c.FormValue("content")

	if ok, msg := validation.ValidateContent(text); !ok {
		if isHTMX(c) {
			return htmxError(c, msg)
		}
		c.Status(fiber.StatusUnprocessableEntity)
		return h.showTopic(c, msg)
	}

	post, err := h.forum.CreatePost(c.Context(), topicID, authorName(c), text)
	if err != nil {
		if errors.Is(err, store.ErrTopicNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "topic not found")
		}
		return err
	}
	metrics.RecordForumPost(topicID)

	if isHTMX(c) {
		return c.Render("partials/forum_post", post, "")
	}
	return c.Redirect().To("/forum/" + topicID)
}

// Reply answers a post.
func (h *ForumHandler) Reply(c fiber.Ctx) error {
	topicID := c.Params("topic")

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid post id")
	}

	text := c.FormValue("content")
	if ok, msg := validation.ValidateContent(text); !ok {
		if isHTMX(c) {
			return htmxError(c, msg)
		}
		c.Status(fiber.StatusUnprocessableEntity)
		return h.showTopic(c, msg)
	}

	if _, err := h.forum.AddReply(c.Context(), topicID, postID, authorName(c), strings.TrimSpace(text)); err != nil {
		switch {
		case errors.Is(err, store.ErrTopicNotFound):
			return fiber.NewError(fiber.StatusNotFound, "topic not found")
		case errors.Is(err, store.ErrPostNotFound):
			return fiber.NewError(fiber.StatusNotFound, "post not found")
		}
		return err
	}

	return redirect(c, "/forum/"+topicID)
}
