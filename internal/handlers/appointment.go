package handlers

import (
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"mindhub/internal/config"
	"mindhub/internal/email"
	"mindhub/internal/metrics"
	"mindhub/internal/middleware"
	"mindhub/internal/models"
	"mindhub/internal/store"
	"mindhub/internal/validation"
)

// AppointmentHandler books counseling sessions.
type AppointmentHandler struct {
	cfg          *config.Config
	appointments *store.Appointments
	notifier     *email.Notifier
	now          func() time.Time
}

// NewAppointmentHandler creates a new appointment handler.
func NewAppointmentHandler(cfg *config.Config, appointments *store.Appointments, notifier *email.Notifier) *AppointmentHandler {
	return &AppointmentHandler{
		cfg:          cfg,
		appointments: appointments,
		notifier:     notifier,
		now:          time.Now,
	}
}

func (h *AppointmentHandler) showForm(c fiber.Ctx, in validation.AppointmentInput, errs map[string]string) error {
	if errs == nil {
		errs = map[string]string{}
	}
	return render(c, h.cfg, "appointment", fiber.Map{
		"Title":   "Book Appointment",
		"Form":    in,
		"Errors":  errs,
		"MinDate": h.now().Format(validation.DateLayout),
	})
}

// Form renders the booking form.
func (h *AppointmentHandler) Form(c fiber.Ctx) error {
	return h.showForm(c, validation.AppointmentInput{}, nil)
}

// Submit validates and stores a booking.
func (h *AppointmentHandler) Submit(c fiber.Ctx) error {
	in := validation.AppointmentInput{
		FullName: strings.TrimSpace(c.FormValue("full_name")),
		Email:    strings.TrimSpace(c.FormValue("email")),
		Phone:    strings.TrimSpace(c.FormValue("phone")),
		Date:     strings.TrimSpace(c.FormValue("date")),
	}

	date, errs := validation.ValidateAppointment(in, h.now())
	if len(errs) > 0 {
		c.Status(fiber.StatusUnprocessableEntity)
		return h.showForm(c, in, errs)
	}

	ctx := c.Context()
	if err := wait(ctx, h.cfg.AppointmentDelay); err != nil {
		return err
	}

	appt := &models.Appointment{
		FullName: in.FullName,
		Email:    in.Email,
		Phone:    in.Phone,
		Date:     date,
	}
	if user := middleware.CurrentUser(c); user != nil {
		appt.UserID = &user.ID
	}

	if err := h.appointments.Create(ctx, appt); err != nil {
		return err
	}
	metrics.RecordAppointment()
	h.notifier.NotifyAppointmentBooked(ctx, appt)
	slog.Info("appointment booked", "appointment", appt.ID)

	return render(c, h.cfg, "appointment_success", fiber.Map{
		"Title":       "Appointment Confirmed",
		"Appointment": appt,
		"DateLabel":   appt.Date.Format("Monday, January 2, 2006"),
	})
}
