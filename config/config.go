package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel        string
	LogFormat       string
	ContinueOnError bool
	JournalPath     string
}

// Load reads a .env file when one is present in the working directory, then
// the LEDGER_* environment variables. Variables already set in the
// environment take precedence over the file.
func Load() (Config, error) {
	_ = godotenv.Load()

	continueOnError, err := strconv.ParseBool(getEnv("LEDGER_CONTINUE_ON_ERROR", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid LEDGER_CONTINUE_ON_ERROR: %w", err)
	}

	cfg := Config{
		LogLevel:        strings.ToLower(getEnv("LEDGER_LOG_LEVEL", "info")),
		LogFormat:       strings.ToLower(getEnv("LEDGER_LOG_FORMAT", "json")),
		ContinueOnError: continueOnError,
		JournalPath:     getEnv("LEDGER_JOURNAL_PATH", ""),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.LogFormat != "json" && c.LogFormat != "console" {
		return fmt.Errorf("invalid log format %q: expected json or console", c.LogFormat)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
