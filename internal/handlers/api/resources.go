package api

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"mindhub/internal/models"
)

// ResourcesHandler serves the resource library.
type ResourcesHandler struct {
	resources []models.Resource
}

// NewResourcesHandler creates a new API resources handler.
func NewResourcesHandler(resources []models.Resource) *ResourcesHandler {
	return &ResourcesHandler{resources: resources}
}

// List returns resources, optionally filtered by ?category= (case-insensitive).
func (h *ResourcesHandler) List(c fiber.Ctx) error {
	category := strings.TrimSpace(c.Query("category"))
	if category == "" {
		return jsonSuccess(c, h.resources)
	}

	out := []models.Resource{}
	for _, r := range h.resources {
		if strings.EqualFold(r.Category, category) {
			out = append(out, r)
		}
	}
	return jsonSuccess(c, out)
}
