// Package config handles YAML configuration loading with environment variable substitution.
//
// Configuration files are optional: Default returns a configuration that
// downloads Binance logos into ./binance. Files support ${VAR} syntax for
// environment variable interpolation.
package config
