package api

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v3"

	"mindhub/internal/metrics"
	"mindhub/internal/models"
	"mindhub/internal/screening"
)

// ScreeningHandler scores questionnaires over JSON.
type ScreeningHandler struct {
	q *screening.Questionnaire
}

// NewScreeningHandler creates a new API screening handler.
func NewScreeningHandler(q *screening.Questionnaire) *ScreeningHandler {
	return &ScreeningHandler{q: q}
}

// Questions returns the questionnaire and its bands.
func (h *ScreeningHandler) Questions(c fiber.Ctx) error {
	return jsonSuccess(c, fiber.Map{
		"questions": h.q.Questions(),
		"bands":     h.q.Bands(),
		"max_score": screening.MaxScore,
	})
}

// Score totals a response list. Later answers to the same question replace
// earlier ones; unknown questions and out-of-range values are rejected.
func (h *ScreeningHandler) Score(c fiber.Ctx) error {
	var body struct {
		Responses []screening.Response `json:"responses"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	result, err := h.q.Score(body.Responses)
	if err != nil {
		if errors.Is(err, screening.ErrUnknownQuestion) || errors.Is(err, screening.ErrInvalidValue) {
			return jsonError(c, fiber.StatusBadRequest, err.Error())
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to score responses")
	}

	if result.Complete {
		metrics.RecordScreening(string(result.Band.Severity))
	}

	return jsonSuccess(c, models.ScreeningResultResponse{
		Score:    result.Score,
		MaxScore: screening.MaxScore,
		Answered: result.Answered,
		Complete: result.Complete,
		Severity: string(result.Band.Severity),
		Tone:     string(result.Band.Tone),
		Guidance: result.Band.Guidance,
	})
}
