package handlers

import (
	"context"
	"fmt"
	"html"
	"math/rand/v2"
	"time"

	"github.com/gofiber/fiber/v3"

	"mindhub/internal/config"
	"mindhub/internal/middleware"
	"mindhub/internal/models"
)

// htmxError returns an error message as HTML that HTMX will display.
// Uses 200 status so HTMX processes the swap (HTMX ignores non-2xx by default).
func htmxError(c fiber.Ctx, message string) error {
	return c.SendString(
		`<div class="p-3 rounded-lg bg-red-50 text-red-700 text-sm">` + html.EscapeString(message) + `</div>`,
	)
}

func isHTMX(c fiber.Ctx) bool {
	return c.Get("HX-Request") == "true"
}

// redirect navigates the browser, using HX-Redirect for htmx requests.
func redirect(c fiber.Ctx, to string) error {
	if isHTMX(c) {
		c.Set("HX-Redirect", to)
		return c.SendStatus(fiber.StatusOK)
	}
	return c.Redirect().To(to)
}

// render renders a full page with branding and the signed-in user.
func render(c fiber.Ctx, cfg *config.Config, name string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if _, ok := data["User"]; !ok {
		data["User"] = middleware.CurrentUser(c)
	}
	return c.Render(name, MergeBranding(data, cfg))
}

// wait blocks for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// jitter returns a uniform duration in [lo, hi].
func jitter(lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + rand.N(hi-lo+1)
}

// TimeAgo formats t relative to now the way forum posts show it.
func TimeAgo(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Hour:
		return "Just now"
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

// TemplateFuncs are registered on the view engine.
func TemplateFuncs() map[string]any {
	return map[string]any{
		"timeAgo": func(t time.Time) string { return TimeAgo(t, time.Now()) },
		"initial": models.Initial,
		"add":     func(a, b int) int { return a + b },
	}
}
