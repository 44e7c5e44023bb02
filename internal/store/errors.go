package store

import "errors"

// Store error sentinels.
var (
	// Conversation errors
	ErrConversationNotFound = errors.New("conversation not found")

	// Forum errors
	ErrTopicNotFound = errors.New("topic not found")
	ErrPostNotFound  = errors.New("post not found")
	ErrEmptyContent  = errors.New("content is required")

	// Appointment errors
	ErrAppointmentNotFound = errors.New("appointment not found")
)
