package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the path checked for YAML configuration.
const DefaultConfigFile = "buildhook.yaml"

// Load returns a Config using the hierarchy: defaults < YAML < ENV.
// YAML file is optional; missing file is not an error.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigFile)
}

// LoadFrom returns a Config loaded from the given YAML path using the
// hierarchy: defaults < YAML < ENV. The YAML file is optional.
func LoadFrom(yamlPath string) (*Config, error) {
	cfg := Defaults()

	if err := loadYAML(&cfg, yamlPath); err != nil {
		return nil, fmt.Errorf("config yaml: %w", err)
	}

	loadEnv(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validate: %w", err)
	}

	return &cfg, nil
}

// loadYAML reads the YAML file and unmarshals it over cfg.
// Returns nil if the file does not exist.
func loadYAML(cfg *Config, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is validated by caller
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	return nil
}

// loadEnv overlays environment variables onto cfg.
// Only non-empty env values override the current config.
func loadEnv(cfg *Config) {
	setString(&cfg.Server.Port, "BUILDHOOK_PORT")
	setString(&cfg.Logging.Level, "BUILDHOOK_LOG_LEVEL")
	setString(&cfg.Logging.Service, "BUILDHOOK_LOG_SERVICE")
	setString(&cfg.Discord.SecretName, "BUILDHOOK_SECRET_NAME")
	setString(&cfg.Discord.SecretFile, "BUILDHOOK_SECRET_FILE")
	setString(&cfg.Discord.Username, "BUILDHOOK_USERNAME")
	setString(&cfg.Discord.AvatarURL, "BUILDHOOK_AVATAR_URL")
	setDuration(&cfg.Delivery.Timeout, "BUILDHOOK_DELIVERY_TIMEOUT")
	setBool(&cfg.Telemetry.Enabled, "BUILDHOOK_OTEL_ENABLED")
	setString(&cfg.Telemetry.Endpoint, "BUILDHOOK_OTEL_ENDPOINT")
}

// validate checks that required fields are set.
func validate(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server.port is required")
	}
	if cfg.Discord.SecretName == "" {
		return errors.New("discord.secret_name is required")
	}
	if cfg.Delivery.Timeout <= 0 {
		return errors.New("delivery.timeout must be positive")
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}
