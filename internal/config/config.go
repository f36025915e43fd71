package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every env tag when overriding the file values.
const EnvPrefix = "CONEXAO_"

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port            string        `yaml:"port" env:"SERVER_PORT"`
		Mode            string        `yaml:"mode" env:"SERVER_MODE"`
		ReadTimeout     time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout    time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
	} `yaml:"server"`

	Session struct {
		Secret     string        `yaml:"secret" env:"SESSION_SECRET"`
		CookieName string        `yaml:"cookie_name" env:"SESSION_COOKIE_NAME"`
		TTL        time.Duration `yaml:"ttl" env:"SESSION_TTL"`
		Issuer     string        `yaml:"issuer" env:"SESSION_ISSUER"`
		Secure     bool          `yaml:"secure" env:"SESSION_SECURE"`
	} `yaml:"session"`

	// Simulation drives the stubbed backend every service goes through.
	Simulation struct {
		Delay       time.Duration `yaml:"delay" env:"SIMULATION_DELAY"`
		FailureRate float64       `yaml:"failure_rate" env:"SIMULATION_FAILURE_RATE"`
	} `yaml:"simulation"`

	UI struct {
		Locale       string `yaml:"locale" env:"UI_LOCALE"`
		DefaultTheme string `yaml:"default_theme" env:"UI_DEFAULT_THEME"`
		PageSize     int    `yaml:"page_size" env:"UI_PAGE_SIZE"`
		MinifyAssets bool   `yaml:"minify_assets" env:"UI_MINIFY_ASSETS"`
	} `yaml:"ui"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables.
// A missing file is not an error; defaults and env values apply.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := applyEnvOverrides(config, EnvPrefix); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.ReadTimeout = 10 * time.Second
	config.Server.WriteTimeout = 10 * time.Second
	config.Server.ShutdownTimeout = 10 * time.Second

	config.Session.CookieName = "conexao_session"
	config.Session.TTL = 24 * time.Hour
	config.Session.Issuer = "conexao-solidaria"

	config.Simulation.Delay = 400 * time.Millisecond
	config.Simulation.FailureRate = 0

	config.UI.Locale = "pt-BR"
	config.UI.DefaultTheme = "light"
	config.UI.PageSize = 9
	config.UI.MinifyAssets = true

	config.Logging.Level = "info"
	config.Logging.Format = "text"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if config.Session.Secret == "" {
		return fmt.Errorf("session secret is required")
	}

	if len(config.Session.Secret) < 16 {
		return fmt.Errorf("session secret must be at least 16 characters")
	}

	if config.Session.TTL <= 0 {
		return fmt.Errorf("session ttl must be positive")
	}

	if config.Simulation.Delay < 0 {
		return fmt.Errorf("simulation delay cannot be negative")
	}

	if config.Simulation.FailureRate < 0 || config.Simulation.FailureRate > 1 {
		return fmt.Errorf("simulation failure rate must be between 0 and 1, got %v", config.Simulation.FailureRate)
	}

	switch strings.ToLower(config.UI.DefaultTheme) {
	case "light", "dark":
	default:
		return fmt.Errorf("unknown default theme %q", config.UI.DefaultTheme)
	}

	if config.UI.PageSize <= 0 {
		return fmt.Errorf("page size must be positive")
	}

	return nil
}

// IsProduction reports whether gin should run in release mode.
func (c *Config) IsProduction() bool {
	return strings.ToLower(c.Server.Mode) == "production"
}
