package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// EnvConfigPath is the environment variable for an explicit config path.
	EnvConfigPath = "CATALOG_CONFIG"
	// ConfigFileName is the config file looked up in the working directory.
	ConfigFileName = "catalog.yaml"
)

var ErrConfigNotFound = errors.New("config file not found")

// FindConfigPath returns the first existing config file in priority order, or "" if there is none.
// An explicit $CATALOG_CONFIG which does not point to a file is an error, not a fallback.
func FindConfigPath() (string, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		if !fileExists(path) {
			return "", fmt.Errorf("%w: $%s=%s", ErrConfigNotFound, EnvConfigPath, path)
		}

		return path, nil
	}

	if fileExists(ConfigFileName) {
		if abs, err := filepath.Abs(ConfigFileName); err == nil {
			return abs, nil
		}

		return ConfigFileName, nil
	}

	return "", nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
