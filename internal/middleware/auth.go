package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
	"github.com/google/uuid"

	"mindhub/internal/models"
)

// Session keys. Values are stored as strings so any session storage can
// encode them.
const (
	keyUserID        = "user_id"
	keyUsername      = "username"
	keyEmail         = "email"
	keyProvider      = "provider"
	KeyRedirectAfter = "redirect_after_login"
)

// SignIn records u in the session.
func SignIn(sess *session.Middleware, u *models.User) {
	sess.Set(keyUserID, u.ID.String())
	sess.Set(keyUsername, u.Username)
	sess.Set(keyEmail, u.Email)
	sess.Set(keyProvider, u.Provider)
}

// SessionUser rebuilds the signed-in user from the session, or nil.
func SessionUser(sess *session.Middleware) *models.User {
	if sess == nil {
		return nil
	}
	rawID, _ := sess.Get(keyUserID).(string)
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil
	}
	username, _ := sess.Get(keyUsername).(string)
	email, _ := sess.Get(keyEmail).(string)
	provider, _ := sess.Get(keyProvider).(string)
	return &models.User{
		ID:       id,
		Username: username,
		Email:    email,
		Provider: provider,
	}
}

// CurrentUser returns the user loaded by the auth middleware, or nil.
func CurrentUser(c fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}

// AuthMiddleware gates routes on a signed-in session.
type AuthMiddleware struct {
	loginPath string
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware() *AuthMiddleware {
	return &AuthMiddleware{loginPath: "/login"}
}

// RequireAuth ensures the user is authenticated, redirecting to /login if not.
func (m *AuthMiddleware) RequireAuth(c fiber.Ctx) error {
	sess := session.FromContext(c)
	user := SessionUser(sess)
	if user == nil {
		if sess != nil && c.Method() == fiber.MethodGet {
			sess.Set(KeyRedirectAfter, c.OriginalURL())
		}
		if c.Get("HX-Request") == "true" {
			c.Set("HX-Redirect", m.loginPath)
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.Redirect().To(m.loginPath)
	}

	c.Locals("user", user)
	return c.Next()
}

// RequireAPIAuth answers 401 in the JSON envelope instead of redirecting.
func (m *AuthMiddleware) RequireAPIAuth(c fiber.Ctx) error {
	user := SessionUser(session.FromContext(c))
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status": "error",
			"error":  "authentication required",
		})
	}

	c.Locals("user", user)
	return c.Next()
}

// OptionalAuth loads the user if authenticated, but doesn't require authentication.
func (m *AuthMiddleware) OptionalAuth(c fiber.Ctx) error {
	if user := SessionUser(session.FromContext(c)); user != nil {
		c.Locals("user", user)
	}
	return c.Next()
}
