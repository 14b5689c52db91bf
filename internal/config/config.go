package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// SettingsFileName is the settings file inside the fg config directory.
const SettingsFileName = "settings.toml"

// Settings holds user defaults for valueless pass-through flags.
type Settings struct {
	DefaultRemote string `toml:"default_remote"` // --pull / --push
	DefaultPath   string `toml:"default_path"`   // --add / --info
}

// Default returns the default settings
func Default() Settings {
	return Settings{
		DefaultRemote: "origin",
		DefaultPath:   ".",
	}
}

// Load reads settings.toml from dir.
// Returns Default() if the file doesn't exist (no error).
// Returns Default() and an error if the file exists but is invalid.
func Load(dir string) (Settings, error) {
	path := filepath.Join(dir, SettingsFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read settings file: %w", err)
	}

	var s Settings
	if err := toml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("failed to parse settings file: %w", err)
	}

	if err := validateArg(s.DefaultRemote, "default_remote"); err != nil {
		return Default(), err
	}
	if err := validateArg(s.DefaultPath, "default_path"); err != nil {
		return Default(), err
	}

	// Use defaults for empty values
	def := Default()
	if s.DefaultRemote == "" {
		s.DefaultRemote = def.DefaultRemote
	}
	if s.DefaultPath == "" {
		s.DefaultPath = def.DefaultPath
	}

	return s, nil
}
