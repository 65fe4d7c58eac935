// Package config holds the settings for the logo cleaning tools, with
// defaults that can be overridden by a YAML file in the user's home
// directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// Settings are the tunable parts of a logo cleaning run. The zero
// value is not useful; start from Default and override as needed.
type Settings struct {
	InputDir         string   `yaml:"input_dir"`
	Files            []string `yaml:"files"`
	Method           string   `yaml:"method"`
	Threshold        int      `yaml:"threshold"`
	RemoveBackground bool     `yaml:"remove_background"`
	Trim             bool     `yaml:"trim"`
	Enhance          bool     `yaml:"enhance"`
	Backup           bool     `yaml:"backup"`
	Contrast         float64  `yaml:"contrast"`
	Sharpen          float64  `yaml:"sharpen"`
}

// Default returns the stock settings used when no configuration file
// is present.
func Default() Settings {
	return Settings{
		InputDir:         "frontend/public",
		Files:            []string{"dreamweaver.PNG", "title.PNG"},
		Method:           "aggressive",
		Threshold:        240,
		RemoveBackground: true,
		Trim:             true,
		Enhance:          true,
		Backup:           true,
		Contrast:         10,
		Sharpen:          0.5,
	}
}

// Path returns the location of the user configuration file.
func Path() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "logoclean", "config.yaml")
}

// Load reads settings from the YAML file at path, laid over the
// defaults, so a partial file only overrides the keys it names.
func Load(path string) (Settings, error) {
	s := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("Error reading settings from %s: %v", path, err)
	}
	if err := yaml.Unmarshal(b, &s); err != nil {
		return s, fmt.Errorf("Error parsing settings from %s: %v", path, err)
	}
	return s, nil
}

// LoadDefault reads settings from the user configuration file if one
// exists, and returns the defaults otherwise. It only fails if a file
// is present but cannot be used.
func LoadDefault() (Settings, error) {
	path := Path()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}
