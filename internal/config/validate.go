package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// MaxSize bounds output.size.
const MaxSize = 4096

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if err := validateURL("sources.spot_url", c.Sources.SpotURL); err != nil {
		return err
	}
	if err := validateURL("sources.futures_url", c.Sources.FuturesURL); err != nil {
		return err
	}

	if c.HTTP.Timeout <= 0 {
		return errors.New("http.timeout must be > 0")
	}
	if c.HTTP.MaxConns < 1 {
		return errors.New("http.max_conns must be >= 1")
	}

	if c.Output.Dir == "" {
		return errors.New("output.dir is required")
	}
	if c.Output.Size < 1 || c.Output.Size > MaxSize {
		return fmt.Errorf("output.size must be between 1 and %d, got %d", MaxSize, c.Output.Size)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}

	return nil
}

func validateURL(field, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s is required", field)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must be an http(s) url, got %q", field, raw)
	}
	return nil
}
