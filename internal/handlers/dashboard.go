package handlers

import (
	"github.com/gofiber/fiber/v3"

	"mindhub/internal/config"
	"mindhub/internal/content"
)

// DashboardHandler renders the home page.
type DashboardHandler struct {
	cfg      *config.Config
	features []content.Feature
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(cfg *config.Config) *DashboardHandler {
	return &DashboardHandler{cfg: cfg, features: content.Features()}
}

// Index renders the feature cards.
func (h *DashboardHandler) Index(c fiber.Ctx) error {
	return render(c, h.cfg, "dashboard", fiber.Map{
		"Title":    "Dashboard",
		"Features": h.features,
	})
}
