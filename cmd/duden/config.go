package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/akarpinski/duden"
)

// Config holds the environment-driven settings of the CLI.
type Config struct {
	DBPath            string        `env:"DUDEN_DB"`
	BaseURL           string        `env:"DUDEN_BASE_URL" env-default:"https://www.duden.de"`
	FetchTimeout      time.Duration `env:"DUDEN_FETCH_TIMEOUT" env-default:"10s"`
	RequestsPerSecond float64       `env:"DUDEN_REQUESTS_PER_SECOND" env-default:"1"`
	UserAgent         string        `env:"DUDEN_USER_AGENT" env-default:"duden-cli/1.0"`
	Verbose           bool          `env:"DUDEN_VERBOSE" env-default:"false"`
}

// ReadConfig reads configuration from the environment, falling back to
// defaults when a variable is unset or malformed.
func ReadConfig() Config {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		cfg = Config{
			BaseURL:           duden.DefaultBaseURL,
			FetchTimeout:      10 * time.Second,
			RequestsPerSecond: 1,
			UserAgent:         "duden-cli/1.0",
		}
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath()
	}
	return cfg
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "duden.db"
	}
	dir := filepath.Join(home, ".duden")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "duden.db")
}
