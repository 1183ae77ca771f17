// Package config loads the CLI's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrConfigTooLarge = errors.New("config file exceeds maximum size")
)

// maxConfigSize bounds config reads (1MB); anything larger is a mistake.
const maxConfigSize = 1 << 20

// Config holds CLI defaults. Flags override file values, which override the
// built-in defaults.
type Config struct {
	// Action is the editor operation to apply (correct, improve, rephrase,
	// simple, complex, formal, casual, translate).
	Action string `yaml:"action"`

	// MaxRetries is the per-chunk attempt limit.
	MaxRetries int `yaml:"maxRetries"`

	// ChunkLength is the split ceiling in characters.
	ChunkLength int `yaml:"chunkLength"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Action:      "correct",
		MaxRetries:  3,
		ChunkLength: 10000,
	}
}

// Load reads and parses the config file at path, layered over Default.
func Load(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}
	if info.Size() > maxConfigSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrConfigTooLarge, info.Size(), maxConfigSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return cfg, nil
}
