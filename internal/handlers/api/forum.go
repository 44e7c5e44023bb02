package api

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"mindhub/internal/metrics"
	"mindhub/internal/middleware"
	"mindhub/internal/models"
	"mindhub/internal/store"
	"mindhub/internal/validation"
)

// ForumHandler exposes the forum over JSON.
type ForumHandler struct {
	forum *store.Forum
}

// NewForumHandler creates a new API forum handler.
func NewForumHandler(forum *store.Forum) *ForumHandler {
	return &ForumHandler{forum: forum}
}

type postBody struct {
	Content   string `json:"content"`
	Anonymous bool   `json:"anonymous"`
}

func (b postBody) author(c fiber.Ctx) string {
	if b.Anonymous {
		return models.AnonymousAuthor
	}
	if user := middleware.CurrentUser(c); user != nil && user.Username != "" {
		return user.Username
	}
	return models.AnonymousAuthor
}

func forumError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, store.ErrTopicNotFound):
		return jsonError(c, fiber.StatusNotFound, "topic not found")
	case errors.Is(err, store.ErrPostNotFound):
		return jsonError(c, fiber.StatusNotFound, "post not found")
	case errors.Is(err, store.ErrEmptyContent):
		return jsonError(c, fiber.StatusBadRequest, "content is required")
	}
	return jsonError(c, fiber.StatusInternalServerError, "forum request failed")
}

// Topics lists the discussion topics.
func (h *ForumHandler) Topics(c fiber.Ctx) error {
	return jsonSuccess(c, h.forum.Topics(c.Context()))
}

// Posts lists a topic's posts, newest first.
func (h *ForumHandler) Posts(c fiber.Ctx) error {
	posts, err := h.forum.Posts(c.Context(), c.Params("topic"))
	if err != nil {
		return forumError(c, err)
	}
	return jsonSuccess(c, posts)
}

// CreatePost adds a post to a topic.
func (h *ForumHandler) CreatePost(c fiber.Ctx) error {
	var body postBody
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if ok, msg := validation.ValidateContent(body.Content); !ok {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	topicID := c.Params("topic")
	post, err := h.forum.CreatePost(c.Context(), topicID, body.author(c), body.Content)
	if err != nil {
		return forumError(c, err)
	}
	metrics.RecordForumPost(topicID)

	return jsonCreated(c, post)
}

// Reply answers a post.
func (h *ForumHandler) Reply(c fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid post id")
	}

	var body postBody
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if ok, msg := validation.ValidateContent(body.Content); !ok {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	reply, err := h.forum.AddReply(c.Context(), c.Params("topic"), postID, body.author(c), body.Content)
	if err != nil {
		return forumError(c, err)
	}

	return jsonCreated(c, reply)
}
