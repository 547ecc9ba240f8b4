package cmd

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"storefront/internal/pkg/errs"

	"github.com/joho/godotenv"
)

type Config struct {
	Host     string
	HTTPPort string

	AdminPassDigest string
	SiteURL         string
	DatabasePath    string

	SMTPServer   string
	SMTPPort     int
	SMTPLogin    string
	SMTPPassword string
	SMTPTimeout  time.Duration

	Email     string
	EmailName string

	NotificationQueueSize int
	CheckoutMaxAttempts   int

	WalCheckpointSchedule string
	OrderStatsSchedule    string

	StaticDir string
	LogLevel  string
	LogFormat string
}

// Address is the host:port the HTTP server binds.
func (c Config) Address() string {
	return c.Host + ":" + c.HTTPPort
}

// LoadConfig reads .env when present, then the process environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	return ParseConfig(os.Getenv)
}

// ParseConfig builds and validates a Config from the given lookup function.
func ParseConfig(getenv func(string) string) (Config, error) {
	env := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	var problems []error
	number := func(key string, def, minValue, maxValue int) int {
		raw := env(key, strconv.Itoa(def))
		n, err := strconv.Atoi(raw)
		if err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(key, err))
			return def
		}
		if n < minValue || n > maxValue {
			problems = append(problems, errs.NewValueIsOutOfRangeError(key, n, minValue, maxValue))
			return def
		}
		return n
	}
	required := func(key string) string {
		v := env(key, "")
		if v == "" {
			problems = append(problems, errs.NewValueIsRequiredError(key))
		}
		return v
	}

	config := Config{
		Host:                  env("HOST", "0.0.0.0"),
		HTTPPort:              strconv.Itoa(number("HTTP_PORT", 8080, 1, 65535)),
		AdminPassDigest:       strings.ToLower(required("ADMIN_PASS")),
		SiteURL:               strings.TrimRight(env("SITE", "http://localhost:8080"), "/"),
		DatabasePath:          env("DATABASE", "data.db"),
		SMTPServer:            required("SMTP_SERVER"),
		SMTPPort:              number("SMTP_PORT", 587, 1, 65535),
		SMTPLogin:             env("SMTP_LOGIN", ""),
		SMTPPassword:          getenv("SMTP_PASSWORD"),
		SMTPTimeout:           time.Duration(number("SMTP_TIMEOUT_SEC", 30, 1, 600)) * time.Second,
		Email:                 required("EMAIL"),
		EmailName:             env("EMAIL_NAME", "coolbeans.biz"),
		NotificationQueueSize: number("NOTIFICATION_QUEUE_SIZE", 16, 1, 1<<16),
		CheckoutMaxAttempts:   number("CHECKOUT_MAX_ATTEMPTS", 5, 1, 100),
		WalCheckpointSchedule: env("WAL_CHECKPOINT_SCHEDULE", "@every 5m"),
		OrderStatsSchedule:    env("ORDER_STATS_SCHEDULE", "@every 30s"),
		StaticDir:             env("STATIC_DIR", "web/static"),
		LogLevel:              env("LOG_LEVEL", "info"),
		LogFormat:             env("LOG_FORMAT", "json"),
	}

	if u, err := url.Parse(config.SiteURL); err != nil || u.Scheme == "" || u.Host == "" {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("SITE", fmt.Errorf("%q is not an absolute URL", config.SiteURL)))
	}

	if err := errors.Join(problems...); err != nil {
		return Config{}, err
	}

	return config, nil
}
