// Package config loads runtime settings from the environment, with an optional
// .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/keshon/swrpg-bot/internal/display"
)

// ErrNoDiscordToken is returned by RequireDiscord when DISCORD_TOKEN is unset.
var ErrNoDiscordToken = errors.New("DISCORD_TOKEN is not set")

type Config struct {
	DiscordToken    string          `env:"DISCORD_TOKEN"`
	DiscordSendRate float64         `env:"DISCORD_SEND_RATE" envDefault:"5"`
	StoragePath     string          `env:"STORAGE_PATH" envDefault:"datastore.json"`
	StorageAutoSave time.Duration   `env:"STORAGE_AUTOSAVE" envDefault:"10s"`
	LogLevel        string          `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty       bool            `env:"LOG_PRETTY" envDefault:"true"`
	Symbols         display.Symbols `envPrefix:"SWRPG_SYMBOL_"`
}

// Load reads .env (if present) and then the process environment. Glyphs not
// overridden keep display.DefaultSymbols.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, falling back to system environment variables")
	}
	return Parse()
}

// Parse reads the process environment only.
func Parse() (*Config, error) {
	cfg := &Config{Symbols: display.DefaultSymbols()}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// RequireDiscord checks the settings only the Discord host needs.
func (c *Config) RequireDiscord() error {
	if c.DiscordToken == "" {
		return ErrNoDiscordToken
	}
	if c.DiscordSendRate <= 0 {
		return fmt.Errorf("DISCORD_SEND_RATE must be positive, got %v", c.DiscordSendRate)
	}
	return nil
}
