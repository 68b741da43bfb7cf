package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const defaultOutputPath = "query-result.json"

// Config holds the resolved configuration for one invocation.
type Config struct {
	Repository string
	PRNumber   int
	Output     string
	APIHost    string
	Quiet      bool
}

// Settings are optional user defaults read from
// ~/.config/prgate/config.yaml. Flags and environment variables take
// precedence over them.
type Settings struct {
	APIHost string `yaml:"api_host"`
	Output  string `yaml:"output"`
}

// LoadSettings reads the user settings file. A missing file is not an
// error; the zero Settings is returned.
func LoadSettings() (Settings, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Settings{}, fmt.Errorf("failed to get user home directory: %w", err)
	}
	return loadSettingsFile(filepath.Join(homeDir, ".config", "prgate", "config.yaml"))
}

func loadSettingsFile(path string) (Settings, error) {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Settings{}, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	var settings Settings
	if err := yaml.Unmarshal(content, &settings); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}

	return settings, nil
}
