package config

import "time"

// Config is the root configuration for a logo run.
type Config struct {
	Sources SourcesConfig `yaml:"sources"`
	HTTP    HTTPConfig    `yaml:"http"`
	Output  OutputConfig  `yaml:"output"`
	Log     LogConfig     `yaml:"log"`
}

// SourcesConfig holds the listing endpoints.
type SourcesConfig struct {
	SpotURL    string `yaml:"spot_url"`    // Spot asset list with logo URLs
	FuturesURL string `yaml:"futures_url"` // Futures exchangeInfo
}

// HTTPConfig holds the shared HTTP client settings.
type HTTPConfig struct {
	Timeout   time.Duration `yaml:"timeout"`
	MaxConns  int           `yaml:"max_conns"`
	UserAgent string        `yaml:"user_agent"`
}

// OutputConfig holds where and how thumbnails are written.
type OutputConfig struct {
	Dir  string `yaml:"dir"`
	Size int    `yaml:"size"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}
