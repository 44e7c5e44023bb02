package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"mindhub/internal/config"
	"mindhub/internal/metrics"
	"mindhub/internal/screening"
)

const keyScreening = "screening"

// ScreeningHandler walks the user through the questionnaire one page at a time.
type ScreeningHandler struct {
	cfg *config.Config
	q   *screening.Questionnaire
}

// NewScreeningHandler creates a new screening handler.
func NewScreeningHandler(cfg *config.Config, q *screening.Questionnaire) *ScreeningHandler {
	return &ScreeningHandler{cfg: cfg, q: q}
}

// load restores the flow kept in the session. A missing or stale snapshot
// starts over.
func (h *ScreeningHandler) load(sess *session.Middleware) *screening.Flow {
	raw, _ := sess.Get(keyScreening).(string)
	if raw == "" {
		return screening.NewFlow(h.q)
	}

	var st screening.State
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		slog.Warn("discarding unreadable screening state", "error", err)
		return screening.NewFlow(h.q)
	}
	flow, err := screening.RestoreFlow(h.q, st)
	if err != nil {
		slog.Warn("discarding invalid screening state", "error", err)
		return screening.NewFlow(h.q)
	}
	return flow
}

func (h *ScreeningHandler) save(sess *session.Middleware, flow *screening.Flow) error {
	b, err := json.Marshal(flow.State())
	if err != nil {
		return err
	}
	sess.Set(keyScreening, string(b))
	return nil
}

func (h *ScreeningHandler) show(c fiber.Ctx, flow *screening.Flow, errMsg string) error {
	if result, ok := flow.Result(); ok {
		return render(c, h.cfg, "screening_result", fiber.Map{
			"Title":    "Assessment Results",
			"Score":    result.Score,
			"MaxScore": screening.MaxScore,
			"Band":     result.Band,
		})
	}

	selected, hasSelected := flow.Selected()
	return render(c, h.cfg, "screening", fiber.Map{
		"Title":       "Mental Health Screening",
		"Question":    flow.Current(),
		"Number":      flow.Index() + 1,
		"Total":       h.q.Len(),
		"Progress":    flow.Progress(),
		"IsFirst":     flow.Index() == 0,
		"IsLast":      flow.IsLast(),
		"Selected":    selected,
		"HasSelected": hasSelected,
		"Error":       errMsg,
	})
}

// Index renders the current question, or the result once complete.
func (h *ScreeningHandler) Index(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}
	return h.show(c, h.load(sess), "")
}

// Next records the chosen answer and advances.
func (h *ScreeningHandler) Next(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}
	flow := h.load(sess)
	if flow.Complete() {
		return redirect(c, "/screening")
	}

	raw := c.FormValue("value")
	if raw == "" {
		c.Status(fiber.StatusUnprocessableEntity)
		return h.show(c, flow, "Please select an answer to continue")
	}

	value, err := strconv.Atoi(raw)
	if err == nil {
		err = flow.Next(value)
	}
	var numErr *strconv.NumError
	if err != nil {
		if errors.Is(err, screening.ErrInvalidValue) || errors.As(err, &numErr) {
			c.Status(fiber.StatusUnprocessableEntity)
			return h.show(c, flow, "Please choose one of the listed answers")
		}
		return err
	}

	if result, ok := flow.Result(); ok {
		metrics.RecordScreening(string(result.Band.Severity))
		slog.Info("screening completed", "severity", result.Band.Severity)
	}

	if err := h.save(sess, flow); err != nil {
		return err
	}
	return redirect(c, "/screening")
}

// Back returns to the previous question.
func (h *ScreeningHandler) Back(c fiber.Ctx) error {
	return h.step(c, (*screening.Flow).Back)
}

// Restart clears the answers.
func (h *ScreeningHandler) Restart(c fiber.Ctx) error {
	return h.step(c, (*screening.Flow).Restart)
}

func (h *ScreeningHandler) step(c fiber.Ctx, move func(*screening.Flow)) error {
	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}
	flow := h.load(sess)
	move(flow)
	if err := h.save(sess, flow); err != nil {
		return err
	}
	return redirect(c, "/screening")
}
