package server

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML configs can spell timeouts as
// "10s" or "1m30s" instead of nanosecond integers.
type Duration time.Duration

// UnmarshalYAML parses a duration string such as "10s".
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}

	*d = Duration(parsed)

	return nil
}

// MarshalYAML renders the duration in time.Duration string form.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// HorizonConfig bounds the forecast horizon accepted by the API.
type HorizonConfig struct {
	// Default is applied when a request omits the horizon parameter.
	Default int `yaml:"default"`
	// Min is the smallest accepted horizon, inclusive.
	Min int `yaml:"min"`
	// Max is the largest accepted horizon, inclusive.
	Max int `yaml:"max"`
}

// Config holds the HTTP server configuration.
type Config struct {
	// Listen is the host:port the server binds to.
	Listen string `yaml:"listen"`

	ReadTimeout     Duration `yaml:"read_timeout"`
	WriteTimeout    Duration `yaml:"write_timeout"`
	IdleTimeout     Duration `yaml:"idle_timeout"`
	ShutdownTimeout Duration `yaml:"shutdown_timeout"`

	// MaxUploadBytes caps the size of an uploaded dataset, measured
	// on the wire (before decompression).
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`

	Horizon HorizonConfig `yaml:"horizon"`

	// LogLevel is a zerolog level name: trace, debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the configuration used when no file is given.
// The server binds to localhost only.
func DefaultConfig() Config {
	return Config{
		Listen:          "127.0.0.1:8080",
		ReadTimeout:     Duration(10 * time.Second),
		WriteTimeout:    Duration(30 * time.Second),
		IdleTimeout:     Duration(60 * time.Second),
		ShutdownTimeout: Duration(5 * time.Second),
		MaxUploadBytes:  10 << 20,
		Horizon: HorizonConfig{
			Default: 30,
			Min:     1,
			Max:     180,
		},
		LogLevel: "info",
	}
}

// LoadConfig reads a YAML config file and overlays it on the defaults,
// so partial files only need to name the settings they change.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read server config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse server config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks the configuration for values the server cannot run with.
func (c Config) Validate() error {
	if c.Listen == "" {
		return fmt.Errorf("listen address must not be empty")
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be positive, got %d", c.MaxUploadBytes)
	}
	if c.Horizon.Min < 1 {
		return fmt.Errorf("horizon.min must be at least 1, got %d", c.Horizon.Min)
	}
	if c.Horizon.Max < c.Horizon.Min {
		return fmt.Errorf("horizon.max %d is below horizon.min %d", c.Horizon.Max, c.Horizon.Min)
	}
	if c.Horizon.Default < c.Horizon.Min || c.Horizon.Default > c.Horizon.Max {
		return fmt.Errorf("horizon.default %d is outside [%d, %d]",
			c.Horizon.Default, c.Horizon.Min, c.Horizon.Max)
	}

	return nil
}
