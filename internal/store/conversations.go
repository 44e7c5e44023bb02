// Package store holds the application's in-memory state: chat conversations,
// forum posts, and booked appointments. Nothing is persisted across restarts.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"mindhub/internal/models"
)

// Conversations keeps chat histories keyed by conversation id.
type Conversations struct {
	mu    sync.RWMutex
	convs map[uuid.UUID]*models.Conversation
	now   func() time.Time
}

// NewConversations creates an empty conversation store.
func NewConversations() *Conversations {
	return &Conversations{
		convs: make(map[uuid.UUID]*models.Conversation),
		now:   time.Now,
	}
}

// Start opens a conversation seeded with an assistant greeting.
func (s *Conversations) Start(ctx context.Context, greeting string) *models.Conversation {
	now := s.now()
	conv := &models.Conversation{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
		Messages: []models.ChatMessage{{
			ID:        uuid.New(),
			Role:      models.RoleAssistant,
			Content:   greeting,
			Timestamp: now,
		}},
	}

	s.mu.Lock()
	s.convs[conv.ID] = conv
	s.mu.Unlock()

	return cloneConversation(conv)
}

// Get returns a copy of the conversation.
func (s *Conversations) Get(ctx context.Context, id uuid.UUID) (*models.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conv, ok := s.convs[id]
	if !ok {
		return nil, ErrConversationNotFound
	}
	return cloneConversation(conv), nil
}

// Append adds messages to a conversation and marks it active.
func (s *Conversations) Append(ctx context.Context, id uuid.UUID, msgs ...models.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.convs[id]
	if !ok {
		return ErrConversationNotFound
	}
	conv.Messages = append(conv.Messages, msgs...)
	conv.UpdatedAt = s.now()
	return nil
}

// Delete removes a conversation. Missing ids are ignored.
func (s *Conversations) Delete(ctx context.Context, id uuid.UUID) {
	s.mu.Lock()
	delete(s.convs, id)
	s.mu.Unlock()
}

// PruneIdle removes conversations not updated since cutoff and returns how
// many were removed.
func (s *Conversations) PruneIdle(ctx context.Context, cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, conv := range s.convs {
		if conv.UpdatedAt.Before(cutoff) {
			delete(s.convs, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of live conversations.
func (s *Conversations) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.convs)
}

func cloneConversation(c *models.Conversation) *models.Conversation {
	out := *c
	out.Messages = append([]models.ChatMessage(nil), c.Messages...)
	return &out
}
