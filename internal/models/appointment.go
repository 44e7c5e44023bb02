package models

import (
	"time"

	"github.com/google/uuid"
)

// Appointment is a booked session request.
type Appointment struct {
	ID        uuid.UUID  `json:"id"`
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	FullName  string     `json:"full_name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Date      time.Time  `json:"date"`
	CreatedAt time.Time  `json:"created_at"`
}
