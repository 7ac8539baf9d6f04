package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is the file LoadEnv reads when called without paths.
const DefaultEnvFile = ".env"

// LoadEnv loads variables from .env files into the process environment.
// Variables already set are not overridden. A missing file is not an error;
// the process keeps its own environment.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{DefaultEnvFile}
	}

	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				slog.Debug("no env file", slog.String("path", p))
				continue
			}
			return fmt.Errorf("%w: %w", ErrRead, err)
		}
		slog.Debug("loaded env file", slog.String("path", p))
	}
	return nil
}
