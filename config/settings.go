package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings are the user-tweakable values read from an optional YAML file
// next to the binary. Everything else in this package is compile-time.
type Settings struct {
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
	Fullscreen   bool   `yaml:"fullscreen"`
	SaveAppName  string `yaml:"save_app_name"`
	PhrasesFile  string `yaml:"phrases_file"` // optional narrator phrase override
}

// DefaultSettings returns the values used when no settings file exists.
func DefaultSettings() Settings {
	return Settings{
		WindowWidth:  ScreenWidth,
		WindowHeight: ScreenHeight,
		SaveAppName:  "devilrun",
	}
}

// LoadSettings reads path if it exists. A missing file is not an error; a
// malformed one is.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("read settings %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("unmarshal settings %s: %w", path, err)
	}
	if s.WindowWidth <= 0 {
		s.WindowWidth = ScreenWidth
	}
	if s.WindowHeight <= 0 {
		s.WindowHeight = ScreenHeight
	}
	if s.SaveAppName == "" {
		s.SaveAppName = "devilrun"
	}
	return s, nil
}
