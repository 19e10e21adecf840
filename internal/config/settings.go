package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Settings are the user preferences persisted between runs.
type Settings struct {
	// DataDir is the directory holding a custom vendor catalog
	// (vendors.db or vendors.json) and optional questionnaire
	// template. Empty means the embedded defaults are used.
	DataDir string `json:"dataDir"`
}

// settingsPath returns the location of the settings file in the
// user's configuration directory.
func settingsPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine config directory: %w", err)
	}
	return filepath.Join(configDir, "aladdin", "settings.json"), nil
}

// LoadSettings reads the persisted settings. A missing file is not an
// error; it yields zero-value settings.
func LoadSettings() (Settings, error) {
	var settings Settings

	path, err := settingsPath()
	if err != nil {
		return settings, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := json.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("failed to parse settings: %w", err)
	}
	return settings, nil
}

// SaveSettings writes the settings file, creating the directory if
// needed.
func SaveSettings(settings Settings) error {
	path, err := settingsPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
