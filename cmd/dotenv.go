package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/jmorganca/f16vec/envconfig"
)

// LoadDotEnv loads environment variables from ~/.f16vec/.env and refreshes
// envconfig. Variables already set in the environment take precedence. A
// missing file or an unresolvable home directory is not an error.
func LoadDotEnv() error {
	home, err := os.UserHomeDir()
	if err != nil {
		slog.Debug("skipping .env lookup", "error", err)
		return nil
	}

	return loadDotEnv(filepath.Join(home, ".f16vec", ".env"))
}

func loadDotEnv(envPath string) error {
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return fmt.Errorf("failed to check if .env file exists: %w", err)
	}

	if err := godotenv.Load(envPath); err != nil {
		return fmt.Errorf("could not load %s: %w", envPath, err)
	}

	envconfig.LoadConfig()
	return nil
}
