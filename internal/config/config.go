// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Default values applied by MergeWithDefaults when neither the config file
// nor a flag provides one.
const (
	DefaultPort           = 8080
	DefaultMaxUploadBytes = 10 << 20
	DefaultMinTextChars   = 50
	DefaultLLMTimeout     = 45 * time.Second
	DefaultRenderTimeout  = 60 * time.Second
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Behavior
	APIKey         string            `json:"api_key,omitempty"`          // Gemini API key
	ModelOverrides map[string]string `json:"model_overrides,omitempty"`  // Tier name -> model name
	MaxUploadBytes int64             `json:"max_upload_bytes,omitempty"` // Upload size limit
	MinTextChars   int               `json:"min_text_chars,omitempty"`   // Minimum resume text length
	LLMTimeoutSec  int               `json:"llm_timeout_sec,omitempty"`  // Per-LLM-call timeout in seconds
	RenderTimeout  int               `json:"render_timeout_sec,omitempty"`
	Verbose        bool              `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required fields are checked after merging, by the commands that need them.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.MaxUploadBytes < 0 {
		return fmt.Errorf("config error: 'max_upload_bytes' must be non-negative")
	}
	if c.MinTextChars < 0 {
		return fmt.Errorf("config error: 'min_text_chars' must be non-negative")
	}
	if c.LLMTimeoutSec < 0 {
		return fmt.Errorf("config error: 'llm_timeout_sec' must be non-negative")
	}
	if c.RenderTimeout < 0 {
		return fmt.Errorf("config error: 'render_timeout_sec' must be non-negative")
	}

	for tier := range c.ModelOverrides {
		switch tier {
		case "lite", "standard", "advanced":
		default:
			return fmt.Errorf("config error: unknown model tier %q in 'model_overrides'", tier)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults, falling back to the package defaults for limits and timeouts.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Port == 0 {
		result.Port = DefaultPort
	}

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.ModelOverrides == nil {
		result.ModelOverrides = defaults.ModelOverrides
	}

	if result.MaxUploadBytes == 0 {
		result.MaxUploadBytes = defaults.MaxUploadBytes
	}
	if result.MaxUploadBytes == 0 {
		result.MaxUploadBytes = DefaultMaxUploadBytes
	}

	if result.MinTextChars == 0 {
		result.MinTextChars = defaults.MinTextChars
	}
	if result.MinTextChars == 0 {
		result.MinTextChars = DefaultMinTextChars
	}

	if result.LLMTimeoutSec == 0 {
		result.LLMTimeoutSec = defaults.LLMTimeoutSec
	}
	if result.RenderTimeout == 0 {
		result.RenderTimeout = defaults.RenderTimeout
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// LLMTimeout returns the per-call LLM timeout as a duration.
func (c *Config) LLMTimeout() time.Duration {
	if c.LLMTimeoutSec <= 0 {
		return DefaultLLMTimeout
	}
	return time.Duration(c.LLMTimeoutSec) * time.Second
}

// RenderTimeoutDuration returns the artifact render timeout as a duration.
func (c *Config) RenderTimeoutDuration() time.Duration {
	if c.RenderTimeout <= 0 {
		return DefaultRenderTimeout
	}
	return time.Duration(c.RenderTimeout) * time.Second
}
