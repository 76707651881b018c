package config

import (
	"os"
	"path/filepath"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "TERMFOLIO_CONFIG"

// GetConfigPath returns the configuration file path. TERMFOLIO_CONFIG wins,
// otherwise ~/.termfolio/config.
func GetConfigPath() (string, error) {
	if configPath := os.Getenv(EnvConfigPath); configPath != "" {
		return configPath, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".termfolio", "config"), nil
}
