package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"lockerbooking/internal/adapters/out/pudo"
	"lockerbooking/internal/core/application/directory"
	"lockerbooking/internal/core/domain/model/shipment"
	"lockerbooking/internal/jobs"
	"lockerbooking/internal/pkg/errs"
)

const (
	GatewayLive    = "live"
	GatewaySandbox = "sandbox"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	PudoAPIBaseURL  string
	PudoAPIKey      string
	PudoGateway     string
	PudoHTTPTimeout time.Duration

	TerminalCacheTTL        time.Duration
	TerminalRefreshSchedule string
	BookingConcurrency      int
	DefaultPackageSize      shipment.PackageSize
	LogLevel                slog.Level
}

// ConfigFromEnv reads the configuration through getenv, filling defaults for
// unset optional values.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	value := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	cfg := Config{
		HTTPPort:                value("HTTP_PORT", "8080"),
		DBHost:                  value("DB_HOST", "localhost"),
		DBPort:                  value("DB_PORT", "5432"),
		DBUser:                  getenv("DB_USER"),
		DBPassword:              getenv("DB_PASSWORD"),
		DBName:                  getenv("DB_NAME"),
		DBSslMode:               value("DB_SSLMODE", "disable"),
		PudoAPIBaseURL:          value("PUDO_API_BASE_URL", pudo.DefaultBaseURL),
		PudoAPIKey:              strings.TrimSpace(getenv("PUDO_API_KEY")),
		PudoGateway:             strings.ToLower(value("PUDO_GATEWAY", GatewayLive)),
		TerminalRefreshSchedule: value("TERMINAL_REFRESH_SCHEDULE", jobs.DefaultRefreshSchedule),
	}

	var err, parseErr error
	if cfg.PudoHTTPTimeout, parseErr = time.ParseDuration(value("PUDO_HTTP_TIMEOUT", pudo.DefaultTimeout.String())); parseErr != nil {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("PUDO_HTTP_TIMEOUT", parseErr))
	}
	if cfg.TerminalCacheTTL, parseErr = time.ParseDuration(value("TERMINAL_CACHE_TTL", directory.DefaultTTL.String())); parseErr != nil {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("TERMINAL_CACHE_TTL", parseErr))
	}
	if cfg.BookingConcurrency, parseErr = strconv.Atoi(value("BOOKING_CONCURRENCY", "1")); parseErr != nil {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("BOOKING_CONCURRENCY", parseErr))
	}
	if cfg.DefaultPackageSize, parseErr = shipment.ParsePackageSize(value("DEFAULT_PACKAGE_SIZE", string(shipment.SizeXS))); parseErr != nil {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("DEFAULT_PACKAGE_SIZE", parseErr))
	}
	if parseErr = cfg.LogLevel.UnmarshalText([]byte(value("LOG_LEVEL", "info"))); parseErr != nil {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", parseErr))
	}
	if err != nil {
		return Config{}, err
	}

	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var err error
	switch c.PudoGateway {
	case GatewayLive:
		if c.PudoAPIKey == "" {
			err = errors.Join(err, errs.NewValueIsRequiredError("PUDO_API_KEY"))
		}
	case GatewaySandbox:
	default:
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("PUDO_GATEWAY",
			fmt.Errorf("%q is neither %q nor %q", c.PudoGateway, GatewayLive, GatewaySandbox)))
	}
	if c.PudoHTTPTimeout <= 0 {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("PUDO_HTTP_TIMEOUT", c.PudoHTTPTimeout, "1ns", "-"))
	}
	if c.TerminalCacheTTL <= 0 {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("TERMINAL_CACHE_TTL", c.TerminalCacheTTL, "1ns", "-"))
	}
	if c.BookingConcurrency < 1 {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("BOOKING_CONCURRENCY", c.BookingConcurrency, 1, "-"))
	}
	return err
}

// DSN is the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
