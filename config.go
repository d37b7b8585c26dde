package main

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	BoardURL string
	QuoteURL string
	DBPath   string
}

// LoadConfig reads settings from the environment, with an optional .env file.
func LoadConfig() Config {
	// a missing .env is fine, the environment alone is enough
	_ = godotenv.Load()

	cfg := Config{
		BoardURL: os.Getenv("HOMEBOARD_API_URL"),
		QuoteURL: os.Getenv("HOMEBOARD_QUOTE_URL"),
		DBPath:   os.Getenv("HOMEBOARD_DB"),
	}

	if cfg.BoardURL == "" {
		cfg.BoardURL = "http://localhost:8080"
	}
	if cfg.QuoteURL == "" {
		// quotes come from the same service unless pointed elsewhere
		cfg.QuoteURL = cfg.BoardURL
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(os.Getenv("HOME"), ".local", "share", "homeboard", "state.db")
	}

	return cfg
}
