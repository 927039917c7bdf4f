package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/justinjudd/tourney/models"
)

const (
	defaultStorePath = "tourney.db"
	defaultLogLevel  = "info"
)

// Env holds the settings read from the environment, optionally seeded from a .env file
type Env struct {
	StorePath string
	LogLevel  logrus.Level
}

// LoadEnv reads TOURNEY_STORE and TOURNEY_LOG_LEVEL. A missing .env file is not an error
func LoadEnv() (*Env, error) {
	_ = godotenv.Load()

	env := &Env{StorePath: os.Getenv("TOURNEY_STORE")}
	if env.StorePath == "" {
		env.StorePath = defaultStorePath
	}
	level := os.Getenv("TOURNEY_LOG_LEVEL")
	if level == "" {
		level = defaultLogLevel
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid TOURNEY_LOG_LEVEL: %w", err)
	}
	env.LogLevel = parsed
	return env, nil
}

// LoadConfig reads a tournament config from a YAML file. The document has the same shape as the JSON config: format, name, participants and options
func LoadConfig(path string) (models.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a YAML (or JSON) config document
func ParseConfig(data []byte) (models.Config, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return models.Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	// options are decoded by format, so go through the JSON form of the document
	raw, err := json.Marshal(doc)
	if err != nil {
		return models.Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	var cfg models.Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return models.Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}
