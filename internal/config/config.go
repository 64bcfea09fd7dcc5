// Package config provides hierarchical configuration loading for buildhook.
// Precedence: defaults < YAML file < environment variables.
package config

import "time"

// Config holds all runtime configuration for buildhook.
type Config struct {
	Server    Server    `yaml:"server"`
	Logging   Logging   `yaml:"logging"`
	Discord   Discord   `yaml:"discord"`
	Delivery  Delivery  `yaml:"delivery"`
	Telemetry Telemetry `yaml:"telemetry"`
}

// Server holds the relay-mode HTTP server configuration.
type Server struct {
	Port string `yaml:"port"`
}

// Logging holds structured logging configuration.
type Logging struct {
	Level   string `yaml:"level"`
	Service string `yaml:"service"`
}

// Discord holds the webhook sender configuration.
type Discord struct {
	// SecretName is the vault key holding the webhook URL when no explicit
	// URL is supplied per request.
	SecretName string `yaml:"secret_name"`
	// SecretFile optionally points at a YAML file of secrets; when empty the
	// secret is read from the environment.
	SecretFile string `yaml:"secret_file"`
	Username   string `yaml:"username"`
	AvatarURL  string `yaml:"avatar_url"`
}

// Delivery holds outbound HTTP client configuration.
type Delivery struct {
	Timeout time.Duration `yaml:"timeout"`
}

// Telemetry holds OpenTelemetry export configuration.
type Telemetry struct {
	Enabled  bool   `yaml:"enabled"`
	Endpoint string `yaml:"endpoint"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Server: Server{
			Port: "8080",
		},
		Logging: Logging{
			Level:   "info",
			Service: "buildhook",
		},
		Discord: Discord{
			SecretName: "DISCORD_WEBHOOK_URL",
			Username:   "Jenkins",
			AvatarURL:  "https://www.jenkins.io/images/logos/jenkins/jenkins.png",
		},
		Delivery: Delivery{
			Timeout: 15 * time.Second,
		},
		Telemetry: Telemetry{
			Enabled:  false,
			Endpoint: "localhost:4317",
		},
	}
}
