package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TelegramConfig stores Telegram specific configurations.
type TelegramConfig struct {
	BotToken           string `yaml:"bot_token"`
	PollTimeoutSeconds int    `yaml:"poll_timeout_seconds"`
	Debug              bool   `yaml:"debug"`
}

// DatabaseConfig stores the optional Postgres connection. An empty DSN
// disables calculation history.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// Config stores the application configuration.
type Config struct {
	Telegram         TelegramConfig `yaml:"telegram"`
	Database         DatabaseConfig `yaml:"database"`
	LogLevel         string         `yaml:"log_level"`
	SessionCacheSize int            `yaml:"session_cache_size"`
	SupportFooter    string         `yaml:"support_footer"`
}

// LoadConfig loads the configuration from the given file path.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}
