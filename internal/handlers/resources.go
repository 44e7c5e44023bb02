package handlers

import (
	"github.com/gofiber/fiber/v3"

	"mindhub/internal/config"
	"mindhub/internal/models"
)

// ResourcesHandler renders the resource library.
type ResourcesHandler struct {
	cfg    *config.Config
	groups []models.ResourceGroup
}

// NewResourcesHandler groups resources by category once.
func NewResourcesHandler(cfg *config.Config, resources []models.Resource) *ResourcesHandler {
	return &ResourcesHandler{cfg: cfg, groups: models.GroupResources(resources)}
}

// Index renders resources grouped by category.
func (h *ResourcesHandler) Index(c fiber.Ctx) error {
	return render(c, h.cfg, "resources", fiber.Map{
		"Title":  "Resources",
		"Groups": h.groups,
	})
}
