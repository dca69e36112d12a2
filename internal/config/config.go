// Package config loads service configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port             string        `env:"PORT" envDefault:"3333"`
	DatabasePath     string        `env:"DATABASE_PATH" envDefault:"hydratewise.db"`
	DefaultGoalMl    int           `env:"DEFAULT_GOAL_ML" envDefault:"2000"`
	ReminderInterval time.Duration `env:"REMINDER_INTERVAL" envDefault:"1h"`
	// VisibilityWindow is how recently a presence heartbeat must have been
	// seen for the app to count as foregrounded.
	VisibilityWindow time.Duration `env:"VISIBILITY_WINDOW" envDefault:"2m"`

	OpenAIAPIKey         string `env:"OPENAI_API_KEY"`
	OpenAIModel          string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	OpenAICompletionsURL string `env:"OPENAI_COMPLETIONS_URL"`
}

// Load reads .env (if present) and parses the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
