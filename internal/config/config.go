// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPath is the config file looked up in the working directory
// when no explicit path is given.
const DefaultConfigPath = "csb_validator.yaml"

// ConfigPathEnvVar overrides the config file path
const ConfigPathEnvVar = "CSB_CONFIG"

// EnvPrefix is the prefix shared by all configuration environment variables
const EnvPrefix = "CSB_"

// Config holds every tunable of the validator.
type Config struct {
	Validation ValidateConfig `koanf:"validate"`
	Log        LogConfig      `koanf:"log"`
	Server     ServerConfig   `koanf:"server"`
}

// ValidateConfig controls the validate command
type ValidateConfig struct {
	Workers int    `koanf:"workers" validate:"gte=1,lte=256"`
	Format  string `koanf:"format" validate:"oneof=text json"`
	Color   string `koanf:"color" validate:"oneof=auto always never"`
}

// LogConfig controls diagnostic logging
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error"`
	Format string `koanf:"format" validate:"oneof=console json"`
}

// ServerConfig controls the HTTP server
type ServerConfig struct {
	Port           int             `koanf:"port" validate:"gte=1,lte=65535"`
	MaxUploadBytes int64           `koanf:"max_upload_bytes" validate:"gte=1"`
	RateLimit      RateLimitConfig `koanf:"rate_limit"`
}

// RateLimitConfig controls per-client throttling of the validate endpoint
type RateLimitConfig struct {
	Enabled   bool `koanf:"enabled"`
	PerMinute int  `koanf:"per_minute" validate:"gte=1"`
	Burst     int  `koanf:"burst" validate:"gte=1"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Validation: ValidateConfig{
			Workers: 4,
			Format:  "text",
			Color:   "auto",
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
		Server: ServerConfig{
			Port:           8080,
			MaxUploadBytes: 32 << 20,
			RateLimit: RateLimitConfig{
				Enabled:   true,
				PerMinute: 60,
				Burst:     10,
			},
		},
	}
}

// envKeys maps environment variable names (without prefix, lower case) to config paths
var envKeys = map[string]string{
	"validate_workers":             "validate.workers",
	"validate_format":              "validate.format",
	"validate_color":               "validate.color",
	"log_level":                    "log.level",
	"log_format":                   "log.format",
	"server_port":                  "server.port",
	"server_max_upload_bytes":      "server.max_upload_bytes",
	"server_rate_limit_enabled":    "server.rate_limit.enabled",
	"server_rate_limit_per_minute": "server.rate_limit.per_minute",
	"server_rate_limit_burst":      "server.rate_limit.burst",
}

// envTransformFunc maps CSB_SERVER_RATE_LIMIT_BURST to server.rate_limit.burst.
// Unknown variables map to "" and are ignored.
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	return envKeys[key]
}

// Load builds the configuration from defaults, an optional YAML file and
// CSB_* environment variables, in increasing order of priority.
// An explicit path must exist; the fallback paths are optional.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	configPath, err := resolvePath(path)
	if err != nil {
		return nil, err
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func resolvePath(path string) (string, error) {
	explicit := path
	if explicit == "" {
		explicit = os.Getenv(ConfigPathEnvVar)
	}
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file %s: %w", explicit, err)
		}
		return explicit, nil
	}
	if _, err := os.Stat(DefaultConfigPath); err == nil {
		return DefaultConfigPath, nil
	}
	return "", nil
}

var validate = validator.New()

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag()+paramSuffix(fe.Param()), fe.Value()))
	}
	return fmt.Errorf("config error: %s", strings.Join(msgs, "; "))
}

func paramSuffix(param string) string {
	if param == "" {
		return ""
	}
	return "=" + param
}
