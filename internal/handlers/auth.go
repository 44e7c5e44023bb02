package handlers

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"log"
	"log/slog"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"mindhub/internal/config"
	"mindhub/internal/middleware"
	"mindhub/internal/models"
)

// AuthHandler handles the credential login and the optional OIDC flow.
type AuthHandler struct {
	cfg          *config.Config
	provider     *oidc.Provider
	oauth2Config oauth2.Config
	verifier     *oidc.IDTokenVerifier
}

// NewAuthHandler creates an auth handler with only the credential login.
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// EnableOIDC discovers the issuer and turns on /auth/login.
func (h *AuthHandler) EnableOIDC(ctx context.Context) error {
	provider, err := oidc.NewProvider(ctx, h.cfg.OIDCIssuer)
	if err != nil {
		return err
	}

	h.provider = provider
	h.oauth2Config = oauth2.Config{
		ClientID:     h.cfg.OIDCClientID,
		ClientSecret: h.cfg.OIDCClientSecret,
		RedirectURL:  h.cfg.OIDCRedirectURL,
		Endpoint:     provider.Endpoint(),
		Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
	}
	h.verifier = provider.Verifier(&oidc.Config{ClientID: h.cfg.OIDCClientID})
	return nil
}

// OIDCEnabled reports whether EnableOIDC succeeded.
func (h *AuthHandler) OIDCEnabled() bool {
	return h.provider != nil
}

// LoginPage renders the sign-in form.
func (h *AuthHandler) LoginPage(c fiber.Ctx) error {
	if middleware.SessionUser(session.FromContext(c)) != nil {
		return c.Redirect().To("/")
	}
	return render(c, h.cfg, "login", fiber.Map{
		"Title":       "Sign in",
		"OIDCEnabled": h.OIDCEnabled(),
	})
}

// Login accepts any non-empty username and password.
func (h *AuthHandler) Login(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}

	username := strings.TrimSpace(c.FormValue("username"))
	password := c.FormValue("password")
	if username == "" || password == "" {
		c.Status(fiber.StatusBadRequest)
		return render(c, h.cfg, "login", fiber.Map{
			"Title":       "Sign in",
			"Error":       "Please enter both username and password",
			"Username":    username,
			"OIDCEnabled": h.OIDCEnabled(),
		})
	}

	user := models.NewLocalUser(username)
	middleware.SignIn(sess, user)
	slog.Info("user signed in", "user", user.ID, "provider", user.Provider)

	return c.Redirect().To(popRedirect(sess))
}

// Logout clears the user session.
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	if sess := session.FromContext(c); sess != nil {
		if err := sess.Destroy(); err != nil {
			log.Printf("Warning: failed to destroy session: %v", err)
		}
	}
	return c.Redirect().To("/login")
}

// OIDCLogin initiates the OIDC login flow.
func (h *AuthHandler) OIDCLogin(c fiber.Ctx) error {
	if !h.OIDCEnabled() {
		return fiber.ErrNotFound
	}

	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}

	state := generateState()
	sess.Set("oauth_state", state)
	return c.Redirect().To(h.oauth2Config.AuthCodeURL(state))
}

// OIDCCallback finishes the OIDC flow and signs the user in.
func (h *AuthHandler) OIDCCallback(c fiber.Ctx) error {
	if !h.OIDCEnabled() {
		return fiber.ErrNotFound
	}

	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}

	savedState, _ := sess.Get("oauth_state").(string)
	if savedState == "" || savedState != c.Query("state") {
		return fiber.NewError(fiber.StatusBadRequest, "invalid state")
	}
	sess.Delete("oauth_state")

	oauth2Token, err := h.oauth2Config.Exchange(c.Context(), c.Query("code"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "failed to exchange code")
	}

	rawIDToken, ok := oauth2Token.Extra("id_token").(string)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "missing id_token")
	}

	idToken, err := h.verifier.Verify(c.Context(), rawIDToken)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id_token")
	}

	claims := make(map[string]any)
	if err := idToken.Claims(&claims); err != nil {
		return err
	}

	// Some providers only put the subject in the ID token.
	userInfo, err := h.provider.UserInfo(c.Context(), oauth2.StaticTokenSource(oauth2Token))
	if err == nil {
		var extra map[string]any
		if err := userInfo.Claims(&extra); err == nil {
			for k, v := range extra {
				claims[k] = v
			}
		}
	} else {
		log.Printf("Warning: Failed to fetch userinfo: %v", err)
	}

	user := userFromClaims(h.cfg.OIDCIssuer, claims)
	if user == nil {
		return fiber.NewError(fiber.StatusBadRequest, "id_token has no subject")
	}

	middleware.SignIn(sess, user)
	slog.Info("user signed in", "user", user.ID, "provider", user.Provider)

	return c.Redirect().To(popRedirect(sess))
}

// userFromClaims maps OIDC claims onto a session user with a stable ID.
func userFromClaims(issuer string, claims map[string]any) *models.User {
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil
	}
	email, _ := claims["email"].(string)

	username := ""
	for _, key := range []string{"preferred_username", "name", "email"} {
		if v, _ := claims[key].(string); v != "" {
			username = v
			break
		}
	}
	if username == "" {
		username = sub
	}

	return &models.User{
		ID:       uuid.NewSHA1(uuid.NameSpaceURL, []byte(issuer+"#"+sub)),
		Username: username,
		Email:    email,
		Provider: models.ProviderOIDC,
	}
}

// popRedirect returns the page the user wanted before signing in. Only local
// paths are honoured.
func popRedirect(sess *session.Middleware) string {
	target, _ := sess.Get(middleware.KeyRedirectAfter).(string)
	sess.Delete(middleware.KeyRedirectAfter)
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	return target
}

func generateState() string {
	b := make([]byte, 16)
	rand.Read(b)
	return base64.URLEncoding.EncodeToString(b)
}
