package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// TLS/mTLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string
	TLSCAFile   string // CA for verifying client certs (mTLS)

	// Session
	SessionSecret      string        // Used for signing cookies (min 32 chars)
	SessionIdleTimeout time.Duration // env: SESSION_IDLE_TIMEOUT, default: 24h

	// Redis backs sessions and rate limiting when set, e.g. "redis://localhost:6379/0"
	RedisURL string

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Rate limiting
	RateLimitMax int // requests per minute per IP

	// OIDC (optional single sign-on next to the credential login)
	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string

	// SMTP for appointment confirmations
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	SMTPFromName string
	SMTPTLS      string // "none", "tls", "starttls"

	// Simulated latency
	AppointmentDelay time.Duration // env: APPOINTMENT_DELAY, default: 1s
	ReplyDelayMin    time.Duration // env: REPLY_DELAY_MIN, default: 1s
	ReplyDelayMax    time.Duration // env: REPLY_DELAY_MAX, default: 2s

	// Chat retention
	ChatIdleTTL       time.Duration // env: CHAT_IDLE_TTL, default: 2h
	ChatPruneInterval time.Duration // env: CHAT_PRUNE_INTERVAL, default: 10m

	// Content overrides (YAML)
	ContentFile string // env: CONTENT_FILE, default: "content.yaml"

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "Mindful Support Hub"
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is applied first when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to read .env: %v", err)
	}

	return &Config{
		Env:                getEnv("ENV", "development"),
		ServerAddr:         getEnv("SERVER_ADDR", ":3000"),
		BaseURL:            getEnv("BASE_URL", "http://localhost:3000"),
		TLSEnabled:         getEnv("TLS_ENABLED", "") != "",
		TLSCertFile:        getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:         getEnv("TLS_KEY_FILE", ""),
		TLSCAFile:          getEnv("TLS_CA_FILE", ""),
		SessionSecret:      getEnv("SESSION_SECRET", "change-me-in-production-min-32-chars"),
		SessionIdleTimeout: getEnvPositiveDuration("SESSION_IDLE_TIMEOUT", 24*time.Hour),
		RedisURL:           getEnv("REDIS_URL", ""),
		CORSOrigins:        getEnv("CORS_ORIGINS", ""),
		RateLimitMax:       getEnvInt("RATE_LIMIT_MAX", 100),

		OIDCIssuer:       getEnv("OIDC_ISSUER", ""),
		OIDCClientID:     getEnv("OIDC_CLIENT_ID", ""),
		OIDCClientSecret: getEnv("OIDC_CLIENT_SECRET", ""),
		OIDCRedirectURL:  getEnv("OIDC_REDIRECT_URL", "http://localhost:3000/auth/callback"),

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:     getEnv("SMTP_FROM", ""),
		SMTPFromName: getEnv("SMTP_FROM_NAME", "Mindful Support Hub"),
		SMTPTLS:      getEnv("SMTP_TLS", "starttls"),

		AppointmentDelay: getEnvDuration("APPOINTMENT_DELAY", time.Second),
		ReplyDelayMin:    getEnvDuration("REPLY_DELAY_MIN", time.Second),
		ReplyDelayMax:    getEnvDuration("REPLY_DELAY_MAX", 2*time.Second),

		ChatIdleTTL:       getEnvPositiveDuration("CHAT_IDLE_TTL", 2*time.Hour),
		ChatPruneInterval: getEnvPositiveDuration("CHAT_PRUNE_INTERVAL", 10*time.Minute),

		ContentFile: getEnv("CONTENT_FILE", "content.yaml"),

		SiteTitle:   getEnv("SITE_TITLE", "Mindful Support Hub"),
		SiteTagline: getEnv("SITE_TAGLINE", "Support for your mental wellbeing"),
		SiteFooter:  getEnv("SITE_FOOTER", "Mindful Support Hub - not a substitute for professional care"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %d", key, value, fallback)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %s", key, value, fallback)
		return fallback
	}
	return d
}

// getEnvPositiveDuration is getEnvDuration for settings that must be above zero.
func getEnvPositiveDuration(key string, fallback time.Duration) time.Duration {
	d := getEnvDuration(key, fallback)
	if d <= 0 {
		log.Printf("Warning: %s must be positive, using %s", key, fallback)
		return fallback
	}
	return d
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsMTLSEnabled returns true if mTLS is configured with a CA file.
func (c *Config) IsMTLSEnabled() bool {
	return c.TLSEnabled && c.TLSCAFile != ""
}

// IsEmailEnabled returns true if SMTP is configured.
func (c *Config) IsEmailEnabled() bool {
	return c.SMTPHost != "" && c.SMTPFrom != ""
}

// IsOIDCEnabled returns true if single sign-on is configured.
func (c *Config) IsOIDCEnabled() bool {
	return c.OIDCIssuer != "" && c.OIDCClientID != ""
}
