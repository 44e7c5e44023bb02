package api

import (
	"github.com/gofiber/fiber/v3"

	"mindhub/internal/middleware"
	"mindhub/internal/models"
)

// Session reports who is signed in.
func Session(c fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	return jsonSuccess(c, models.SessionResponse{
		Authenticated: user != nil,
		User:          user,
	})
}
