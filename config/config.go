package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the process configuration. Precedence is environment
// variables, then the optional YAML file named by TODO_CONFIG, then defaults.
type Config struct {
	Port         string `yaml:"port"`
	DatabasePath string `yaml:"database_path"`
	LogLevel     string `yaml:"log_level"`
}

func Load() (*Config, error) {
	// A missing .env file is fine; env vars may come from anywhere.
	_ = godotenv.Load()

	cfg := &Config{
		Port:         "8080",
		DatabasePath: "todo.db",
		LogLevel:     "info",
	}

	if path := os.Getenv("TODO_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if v := os.Getenv("TODO_PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("TODO_DB"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("TODO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return cfg, nil
}
