package handlers

import (
	"testing"
	"time"

	"mindhub/internal/config"
	"mindhub/internal/models"
)

func TestTimeAgo(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		age  time.Duration
		want string
	}{
		{"fresh", 0, "Just now"},
		{"under an hour", 59 * time.Minute, "Just now"},
		{"one hour", time.Hour, "1h ago"},
		{"hours", 23*time.Hour + 59*time.Minute, "23h ago"},
		{"one day", 24 * time.Hour, "1d ago"},
		{"days", 72 * time.Hour, "3d ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TimeAgo(now.Add(-tt.age), now); got != tt.want {
				t.Errorf("TimeAgo(-%s) = %q, want %q", tt.age, got, tt.want)
			}
		})
	}
}

func TestJitter(t *testing.T) {
	if got := jitter(time.Second, time.Second); got != time.Second {
		t.Errorf("jitter(equal) = %s, want 1s", got)
	}
	if got := jitter(2*time.Second, time.Second); got != 2*time.Second {
		t.Errorf("jitter(inverted) = %s, want lower bound", got)
	}
	for range 100 {
		got := jitter(time.Second, 2*time.Second)
		if got < time.Second || got > 2*time.Second {
			t.Fatalf("jitter = %s, outside [1s, 2s]", got)
		}
	}
}

func TestUserFromClaims(t *testing.T) {
	const issuer = "https://sso.example.com"

	tests := []struct {
		name     string
		claims   map[string]any
		wantNil  bool
		username string
		email    string
	}{
		{
			name:    "missing subject",
			claims:  map[string]any{"email": "a@example.com"},
			wantNil: true,
		},
		{
			name:     "preferred username wins",
			claims:   map[string]any{"sub": "123", "preferred_username": "sam", "name": "Sam Lee", "email": "sam@example.com"},
			username: "sam",
			email:    "sam@example.com",
		},
		{
			name:     "falls back to name",
			claims:   map[string]any{"sub": "123", "name": "Sam Lee"},
			username: "Sam Lee",
		},
		{
			name:     "falls back to subject",
			claims:   map[string]any{"sub": "123"},
			username: "123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := userFromClaims(issuer, tt.claims)
			if tt.wantNil {
				if u != nil {
					t.Fatalf("got %+v, want nil", u)
				}
				return
			}
			if u == nil {
				t.Fatal("got nil user")
			}
			if u.Username != tt.username || u.Email != tt.email {
				t.Errorf("user = %+v", u)
			}
			if u.Provider != models.ProviderOIDC {
				t.Errorf("provider = %q", u.Provider)
			}
		})
	}

	a := userFromClaims(issuer, map[string]any{"sub": "123"})
	b := userFromClaims(issuer, map[string]any{"sub": "123", "name": "renamed"})
	c := userFromClaims("https://other.example.com", map[string]any{"sub": "123"})
	if a.ID != b.ID {
		t.Error("same issuer and subject should map to the same ID")
	}
	if a.ID == c.ID {
		t.Error("different issuers should map to different IDs")
	}
}

func TestMergeBranding(t *testing.T) {
	cfg := &config.Config{SiteTitle: "Mindful Support Hub", SiteFooter: "footer"}
	data := MergeBranding(map[string]any{"Title": "Chat"}, cfg)

	if data["Title"] != "Chat" {
		t.Errorf("Title = %v", data["Title"])
	}
	if data["SiteTitle"] != cfg.SiteTitle {
		t.Errorf("SiteTitle = %v, want %q", data["SiteTitle"], cfg.SiteTitle)
	}
	if data["OIDCEnabled"] != false {
		t.Errorf("OIDCEnabled = %v, want false", data["OIDCEnabled"])
	}
}
