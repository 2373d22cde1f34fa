// Package config loads the service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Notification policies.
const (
	PolicyBestEffort = "best-effort"
	PolicyStrict     = "strict"
)

// DefaultAllowedOrigins are the frontend origins accepted when ALLOWED_ORIGINS is unset.
var DefaultAllowedOrigins = []string{
	"https://portfolio-xi-hazel-0kejq0gg2k.vercel.app",
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

// Config aggregates all settings of the contact service.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	Mail   MailConfig
	Log    LogConfig
}

// ServerConfig describes the HTTP listener and CORS policy.
type ServerConfig struct {
	Addr                  string `validate:"required"`
	AllowedOrigins        []string
	AllowedOriginSuffixes []string
}

// DBConfig describes the contact message store.
type DBConfig struct {
	// URL is empty when no database is configured.
	URL         string
	AutoMigrate bool
	Timeout     time.Duration `validate:"gt=0"`
}

// MailConfig describes outbound notification email.
type MailConfig struct {
	// ResendAPIKey is empty when emails should only be logged.
	ResendAPIKey string
	AdminEmail   string
	From         string
	Timeout      time.Duration `validate:"gt=0"`
	Policy       string        `validate:"oneof=best-effort strict"`
}

// LogConfig describes the structured logger.
type LogConfig struct {
	Level      string `validate:"omitempty,oneof=DEBUG INFO WARN WARNING ERROR"`
	File       string
	MaxSizeMB  int `validate:"gte=1,lte=1024"`
	MaxBackups int `validate:"gte=0,lte=100"`
	MaxAgeDays int `validate:"gte=0,lte=365"`
}

// Load reads the configuration from environment variables and validates it.
// Missing credentials are not an error; see Warnings.
func Load() (*Config, error) {
	var errs []string
	duration := func(key string, def time.Duration) time.Duration {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Sprintf("invalid %s value %q", key, v))
			return def
		}
		return d
	}
	integer := func(key string, def int) int {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Sprintf("invalid %s value %q", key, v))
			return def
		}
		return n
	}
	boolean := func(key string, def bool) bool {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Sprintf("invalid %s value %q", key, v))
			return def
		}
		return b
	}

	addr, err := listenAddr(os.Getenv("PORT"))
	if err != nil {
		errs = append(errs, err.Error())
	}

	origins := splitList(os.Getenv("ALLOWED_ORIGINS"))
	if origins == nil {
		origins = DefaultAllowedOrigins
	}
	suffixes := splitList(os.Getenv("ALLOWED_ORIGIN_SUFFIXES"))
	if suffixes == nil {
		suffixes = []string{".vercel.app"}
	}

	policy := strings.ToLower(strings.TrimSpace(os.Getenv("NOTIFY_POLICY")))
	if policy == "" {
		policy = PolicyBestEffort
	}

	cfg := &Config{
		Server: ServerConfig{
			Addr:                  addr,
			AllowedOrigins:        origins,
			AllowedOriginSuffixes: suffixes,
		},
		DB: DBConfig{
			URL:         strings.TrimSpace(os.Getenv("DATABASE_URL")),
			AutoMigrate: boolean("DB_AUTO_MIGRATE", true),
			Timeout:     duration("DB_TIMEOUT", 5*time.Second),
		},
		Mail: MailConfig{
			ResendAPIKey: strings.TrimSpace(os.Getenv("RESEND_API_KEY")),
			AdminEmail:   strings.TrimSpace(os.Getenv("ADMIN_EMAIL")),
			From:         strings.TrimSpace(os.Getenv("MAIL_FROM")),
			Timeout:      duration("EMAIL_TIMEOUT", 10*time.Second),
			Policy:       policy,
		},
		Log: LogConfig{
			Level:      strings.ToUpper(strings.TrimSpace(os.Getenv("LOG_LEVEL"))),
			File:       strings.TrimSpace(os.Getenv("LOG_FILE")),
			MaxSizeMB:  integer("LOG_FILE_MAX_SIZE_MB", 10),
			MaxBackups: integer("LOG_FILE_MAX_BACKUPS", 3),
			MaxAgeDays: integer("LOG_FILE_MAX_AGE_DAYS", 28),
		},
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("config: %s", strings.Join(errs, "; "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the struct tags of every section.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("validation failed for Config: %w", err)
	}
	return nil
}

// Warnings lists the optional settings that are missing, each of which puts
// one component into degraded mode.
func (c *Config) Warnings() []string {
	var w []string
	if c.DB.URL == "" {
		w = append(w, "DATABASE_URL not set: contact messages cannot be stored")
	}
	if c.Mail.ResendAPIKey == "" {
		w = append(w, "RESEND_API_KEY not set: emails will be logged instead of sent")
	}
	if c.Mail.AdminEmail == "" {
		w = append(w, "ADMIN_EMAIL not set: admin notifications are disabled")
	}
	return w
}

// listenAddr turns PORT into a listen address. PORT may be a bare port or host:port.
func listenAddr(port string) (string, error) {
	port = strings.TrimSpace(port)
	if port == "" {
		port = "5000"
	}
	if strings.Contains(port, ":") {
		return port, nil
	}
	if strings.Contains(port, " ") {
		return "", fmt.Errorf("invalid PORT value: %q", port)
	}
	return ":" + port, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
