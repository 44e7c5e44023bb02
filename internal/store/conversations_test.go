package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"mindhub/internal/models"
)

func TestConversations_StartAppendGet(t *testing.T) {
	ctx := context.Background()
	s := NewConversations()

	conv := s.Start(ctx, "hi there")
	if len(conv.Messages) != 1 || conv.Messages[0].Role != models.RoleAssistant {
		t.Fatalf("Start() messages = %+v", conv.Messages)
	}

	err := s.Append(ctx, conv.ID,
		models.ChatMessage{Role: models.RoleUser, Content: "hello"},
		models.ChatMessage{Role: models.RoleAssistant, Content: "welcome"},
	)
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	got, err := s.Get(ctx, conv.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(got.Messages) != 3 {
		t.Errorf("got %d messages, want 3", len(got.Messages))
	}

	// Returned conversations are copies.
	got.Messages[0].Content = "changed"
	again, _ := s.Get(ctx, conv.ID)
	if again.Messages[0].Content != "hi there" {
		t.Error("Get() returned shared message slice")
	}
}

func TestConversations_NotFound(t *testing.T) {
	ctx := context.Background()
	s := NewConversations()

	if _, err := s.Get(ctx, uuid.New()); !errors.Is(err, ErrConversationNotFound) {
		t.Errorf("Get() error = %v, want ErrConversationNotFound", err)
	}
	if err := s.Append(ctx, uuid.New()); !errors.Is(err, ErrConversationNotFound) {
		t.Errorf("Append() error = %v, want ErrConversationNotFound", err)
	}
}

func TestConversations_PruneIdle(t *testing.T) {
	ctx := context.Background()
	s := NewConversations()

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }
	stale := s.Start(ctx, "old")

	s.now = func() time.Time { return base.Add(2 * time.Hour) }
	fresh := s.Start(ctx, "new")

	removed := s.PruneIdle(ctx, base.Add(time.Hour))
	if removed != 1 {
		t.Fatalf("PruneIdle() removed %d, want 1", removed)
	}
	if _, err := s.Get(ctx, stale.ID); err == nil {
		t.Error("stale conversation survived pruning")
	}
	if _, err := s.Get(ctx, fresh.ID); err != nil {
		t.Errorf("fresh conversation pruned: %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}
