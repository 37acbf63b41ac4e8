// Package config provides configuration management for the touriq CLI.
package config

// Defaults for unset configuration values.
const (
	DefaultOutDir = "enhanced_dataset"
	DefaultSeed   = int64(42)
	DefaultOutput = "auto"
)

// Config holds all CLI configuration options.
type Config struct {
	OutDir       string `koanf:"out_dir"`
	Seed         int64  `koanf:"seed"`
	Verbose      bool   `koanf:"verbose"`
	OutputFormat string `koanf:"output"`
}
