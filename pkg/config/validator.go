package config

import (
	"fmt"
	"net/url"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	// Server
	if c.Server.Addr == "" {
		errors = append(errors, ValidationError{
			Field:   "server.addr",
			Message: "listen address is required",
		})
	}

	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		errors = append(errors, ValidationError{
			Field:   "server.timeouts",
			Message: "read and write timeouts must be positive",
		})
	}

	if c.Server.ShutdownTimeout < 0 {
		errors = append(errors, ValidationError{
			Field:   "server.shutdown_timeout",
			Message: "shutdown_timeout must not be negative",
		})
	}

	// Scraper
	if u, err := url.ParseRequestURI(c.Scraper.BaseURL); err != nil || u.Host == "" {
		errors = append(errors, ValidationError{
			Field:   "scraper.base_url",
			Message: "invalid dictionary base URL",
		})
	}

	if strings.TrimSpace(c.Scraper.UserAgent) == "" {
		errors = append(errors, ValidationError{
			Field:   "scraper.user_agent",
			Message: "user_agent is required",
		})
	}

	if c.Scraper.Timeout <= 0 {
		errors = append(errors, ValidationError{
			Field:   "scraper.timeout",
			Message: "timeout must be positive",
		})
	}

	if c.Scraper.RateLimit < 0 {
		errors = append(errors, ValidationError{
			Field:   "scraper.rate_limit",
			Message: "rate_limit must not be negative",
		})
	}

	// Log
	if !oneOf(c.Log.Level, logLevels) {
		errors = append(errors, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("level must be one of %s", strings.Join(logLevels, ", ")),
		})
	}

	if !oneOf(c.Log.Format, logFormats) {
		errors = append(errors, ValidationError{
			Field:   "log.format",
			Message: fmt.Sprintf("format must be one of %s", strings.Join(logFormats, ", ")),
		})
	}

	return errors
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return true
		}
	}
	return false
}
