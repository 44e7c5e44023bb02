// Package testutil provides test utilities and helpers.
package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"

	"mindhub/internal/chatbot"
	"mindhub/internal/config"
	"mindhub/internal/content"
	"mindhub/internal/email"
	"mindhub/internal/screening"
	"mindhub/internal/server"
	"mindhub/internal/store"
)

// FirstIndex always picks the first reply of a pool.
type FirstIndex struct{}

// IntN implements chatbot.IndexSource.
func (FirstIndex) IntN(int) int { return 0 }

// Config returns a development config with every simulated delay disabled.
func Config() *config.Config {
	return &config.Config{
		Env:                "development",
		ServerAddr:         ":0",
		BaseURL:            "http://localhost:3000",
		SessionSecret:      "test-secret-that-is-long-enough-for-production",
		SessionIdleTimeout: time.Hour,
		ChatIdleTTL:        time.Hour,
		ChatPruneInterval:  time.Minute,
		SiteTitle:          "Mindful Support Hub",
		SiteTagline:        "Support for your mental wellbeing",
		SiteFooter:         "Mindful Support Hub",
	}
}

// App is a fully routed server plus the stores behind it.
type App struct {
	*server.Server
	Deps server.Deps
}

// NewApp builds a routed app over fresh in-memory stores. Chat replies are
// deterministic: every pool answers with its first entry.
func NewApp(t *testing.T, cfg *config.Config) *App {
	t.Helper()
	if cfg == nil {
		cfg = Config()
	}

	deps := server.Deps{
		Matcher:       chatbot.New(chatbot.WithIndexSource(FirstIndex{})),
		Questionnaire: screening.PHQ9(),
		Conversations: store.NewConversations(),
		Forum:         store.NewForum(content.ForumTopics(), content.SeedPosts(time.Now())),
		Appointments:  store.NewAppointments(),
		Resources:     content.Resources(),
		Notifier:      email.NewNotifier(cfg),
	}

	srv := server.New(cfg)
	if err := srv.RegisterRoutes(context.Background(), deps); err != nil {
		t.Fatalf("register routes: %v", err)
	}
	t.Cleanup(func() { _ = srv.Shutdown() })

	return &App{Server: srv, Deps: deps}
}

// Do sends req with cookies attached.
func Do(t *testing.T, app *fiber.App, req *http.Request, cookies []*http.Cookie) *http.Response {
	t.Helper()
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", req.Method, req.URL.Path, err)
	}
	return resp
}

// Login signs in through the credential form and returns the session cookies.
func Login(t *testing.T, app *fiber.App, username string) []*http.Cookie {
	t.Helper()
	resp := Do(t, app, PostForm("/login", url.Values{
		"username": {username},
		"password": {"secret"},
	}), nil)
	if resp.StatusCode != fiber.StatusSeeOther && resp.StatusCode != fiber.StatusFound {
		t.Fatalf("login status = %d, want redirect", resp.StatusCode)
	}
	cookies := resp.Cookies()
	if len(cookies) == 0 {
		t.Fatal("login returned no cookies")
	}
	return cookies
}

// PostForm builds a urlencoded POST.
func PostForm(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// PostJSON builds a JSON POST.
func PostJSON(t *testing.T, path string, body any) *http.Request {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// Envelope is the JSON API response shape.
type Envelope struct {
	Status string            `json:"status"`
	Data   json.RawMessage   `json:"data"`
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeEnvelope reads a JSON API response, decoding data into out when
// out is non-nil.
func DecodeEnvelope(t *testing.T, resp *http.Response, out any) Envelope {
	t.Helper()
	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			t.Fatalf("decode data: %v", err)
		}
	}
	return env
}

// Body reads the whole response body.
func Body(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(b)
}
