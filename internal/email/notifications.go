package email

import (
	"context"
	"log/slog"

	"mindhub/internal/config"
	"mindhub/internal/models"
)

// Notifier sends email for application events.
type Notifier struct {
	service   *Service
	templates *Templates
	cfg       *config.Config
}

// NewNotifier creates a new email notifier.
func NewNotifier(cfg *config.Config) *Notifier {
	return &Notifier{
		service:   NewService(cfg),
		templates: NewTemplates(cfg),
		cfg:       cfg,
	}
}

// NotifyAppointmentBooked confirms a booking to the requester.
func (n *Notifier) NotifyAppointmentBooked(ctx context.Context, a *models.Appointment) {
	if n == nil || !n.service.IsEnabled() || a.Email == "" {
		return
	}

	subject, htmlBody, textBody := n.templates.AppointmentConfirmation(a)
	n.service.SendAsync([]string{a.Email}, subject, htmlBody, textBody)
	slog.InfoContext(ctx, "appointment confirmation queued", "appointment", a.ID)
}
