package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"mindhub/internal/models"
)

// Appointments keeps booked appointments in memory.
type Appointments struct {
	mu    sync.RWMutex
	items []models.Appointment
	now   func() time.Time
}

// NewAppointments creates an empty appointment book.
func NewAppointments() *Appointments {
	return &Appointments{now: time.Now}
}

// Create stores a copy of a, assigning its ID and CreatedAt.
func (s *Appointments) Create(ctx context.Context, a *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = uuid.New()
	a.CreatedAt = s.now()
	s.items = append(s.items, *a)
	return nil
}

// Get returns an appointment by id.
func (s *Appointments) Get(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.items {
		if a.ID == id {
			out := a
			return &out, nil
		}
	}
	return nil, ErrAppointmentNotFound
}

// ListByUser returns a user's appointments in booking order.
func (s *Appointments) ListByUser(ctx context.Context, userID uuid.UUID) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Appointment
	for _, a := range s.items {
		if a.UserID != nil && *a.UserID == userID {
			out = append(out, a)
		}
	}
	return out
}
