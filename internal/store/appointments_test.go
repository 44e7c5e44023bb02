package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"mindhub/internal/models"
)

func TestAppointments_CreateAndList(t *testing.T) {
	ctx := context.Background()
	s := NewAppointments()
	userID := uuid.New()

	a := &models.Appointment{
		UserID:   &userID,
		FullName: "River Song",
		Email:    "river@example.com",
		Phone:    "555-0100",
		Date:     time.Now().Add(48 * time.Hour),
	}
	if err := s.Create(ctx, a); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if a.ID == uuid.Nil || a.CreatedAt.IsZero() {
		t.Fatalf("Create() did not assign id/created_at: %+v", a)
	}

	got, err := s.Get(ctx, a.ID)
	if err != nil || got.FullName != "River Song" {
		t.Fatalf("Get() = %+v, %v", got, err)
	}

	if list := s.ListByUser(ctx, userID); len(list) != 1 {
		t.Errorf("ListByUser() returned %d, want 1", len(list))
	}
	if list := s.ListByUser(ctx, uuid.New()); len(list) != 0 {
		t.Errorf("ListByUser(other) returned %d, want 0", len(list))
	}

	if _, err := s.Get(ctx, uuid.New()); !errors.Is(err, ErrAppointmentNotFound) {
		t.Errorf("Get(unknown) error = %v", err)
	}
}
