package models

import (
	"time"

	"github.com/google/uuid"
)

// Chat roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one line of a chat conversation.
type ChatMessage struct {
	ID        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Rule      string    `json:"rule,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// IsUser reports whether the message was written by the user.
func (m ChatMessage) IsUser() bool {
	return m.Role == RoleUser
}

// Conversation is the chat history for one browser session.
type Conversation struct {
	ID        uuid.UUID     `json:"id"`
	Messages  []ChatMessage `json:"messages"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
