// Package config loads runtime settings from the environment (and an optional
// .env file in development).
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the process configuration. The daily epoch and the challenge salt
// are code constants and deliberately absent here.
type Config struct {
	Port           string        `env:"PORT" envDefault:"5175"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	AppEnv         string        `env:"APP_ENV" envDefault:"development"`
	ClientOrigin   string        `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	SolutionsFile  string        `env:"WORDS_SOLUTIONS_FILE"`
	GuessesFile    string        `env:"WORDS_GUESSES_FILE"`
	TokenSecret    string        `env:"JWT_SECRET" envDefault:"dev_secret_change_me"`
	TokenTTL       time.Duration `env:"PLAYER_TOKEN_TTL" envDefault:"720h"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	ShareLink      string        `env:"SHARE_LINK"`

	// Session eviction: finished games go after FinishedTTL, any game after
	// IdleTTL without a guess. Zero disables a rule.
	FinishedTTL   time.Duration `env:"SESSION_FINISHED_TTL" envDefault:"1h"`
	IdleTTL       time.Duration `env:"SESSION_IDLE_TTL" envDefault:"24h"`
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"5m"`
}

// Production reports whether cookies should be marked Secure.
func (c Config) Production() bool { return c.AppEnv == "production" }

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads .env files (missing files are ignored) and parses Config.
func Load(files ...string) (Config, error) {
	_ = godotenv.Load(files...)
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
