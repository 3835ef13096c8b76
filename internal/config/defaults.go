package config

import (
	"time"

	"github.com/rickgao/coin-logos/internal/version"
)

// Default values for optional configuration fields.
const (
	DefaultSpotURL    = "https://www.binance.com/bapi/asset/v2/public/asset/asset/get-all-asset"
	DefaultFuturesURL = "https://fapi.binance.com/fapi/v1/exchangeInfo"
	DefaultTimeout    = 30 * time.Second
	DefaultMaxConns   = 50
	DefaultOutputDir  = "binance"
	DefaultSize       = 64
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	// Source defaults
	if c.Sources.SpotURL == "" {
		c.Sources.SpotURL = DefaultSpotURL
	}
	if c.Sources.FuturesURL == "" {
		c.Sources.FuturesURL = DefaultFuturesURL
	}

	// HTTP defaults
	if c.HTTP.Timeout == 0 {
		c.HTTP.Timeout = DefaultTimeout
	}
	if c.HTTP.MaxConns == 0 {
		c.HTTP.MaxConns = DefaultMaxConns
	}
	if c.HTTP.UserAgent == "" {
		c.HTTP.UserAgent = version.UserAgent()
	}

	// Output defaults
	if c.Output.Dir == "" {
		c.Output.Dir = DefaultOutputDir
	}
	if c.Output.Size == 0 {
		c.Output.Size = DefaultSize
	}

	// Log defaults
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
}
