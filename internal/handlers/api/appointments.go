package api

import (
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"mindhub/internal/email"
	"mindhub/internal/metrics"
	"mindhub/internal/middleware"
	"mindhub/internal/models"
	"mindhub/internal/store"
	"mindhub/internal/validation"
)

// AppointmentHandler books appointments over JSON.
type AppointmentHandler struct {
	appointments *store.Appointments
	notifier     *email.Notifier
	delay        time.Duration
	now          func() time.Time
}

// NewAppointmentHandler creates a new API appointment handler.
func NewAppointmentHandler(appointments *store.Appointments, notifier *email.Notifier, delay time.Duration) *AppointmentHandler {
	return &AppointmentHandler{
		appointments: appointments,
		notifier:     notifier,
		delay:        delay,
		now:          time.Now,
	}
}

// Create validates and stores a booking.
func (h *AppointmentHandler) Create(c fiber.Ctx) error {
	var in validation.AppointmentInput
	if err := json.Unmarshal(c.Body(), &in); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	date, errs := validation.ValidateAppointment(in, h.now())
	if len(errs) > 0 {
		return jsonFieldErrors(c, errs)
	}

	ctx := c.Context()
	if h.delay > 0 {
		select {
		case <-time.After(h.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	appt := &models.Appointment{
		FullName: strings.TrimSpace(in.FullName),
		Email:    strings.TrimSpace(in.Email),
		Phone:    strings.TrimSpace(in.Phone),
		Date:     date,
	}
	if user := middleware.CurrentUser(c); user != nil {
		appt.UserID = &user.ID
	}

	if err := h.appointments.Create(ctx, appt); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to book appointment")
	}
	metrics.RecordAppointment()
	h.notifier.NotifyAppointmentBooked(ctx, appt)
	slog.Info("appointment booked", "appointment", appt.ID, "via", "api")

	return jsonCreated(c, appt)
}

// List returns the signed-in user's appointments.
func (h *AppointmentHandler) List(c fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	appts := h.appointments.ListByUser(c.Context(), user.ID)
	if appts == nil {
		appts = []models.Appointment{}
	}
	return jsonSuccess(c, appts)
}
