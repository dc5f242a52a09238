package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables consulted for flag defaults.
const (
	EnvConfig   = "PONG_CONFIG"
	EnvDB       = "PONG_DB"
	EnvLogLevel = "PONG_LOG_LEVEL"
)

// LoadEnv loads the given dotenv files into the process environment.
// Missing files are skipped and variables already set are kept.
// With no arguments it loads ./.env.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	present := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return nil
	}

	if err := godotenv.Load(present...); err != nil {
		return fmt.Errorf("config: load env: %w", err)
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if
// it is unset or empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
