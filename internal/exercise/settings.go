package exercise

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings holds sensei configuration from ~/.sensei/settings.yaml.
type Settings struct {
	// DefaultFile names the analyzer file inside each exercise directory.
	DefaultFile string `yaml:"default_file"`
	// DebounceMs is the watch-mode write-coalescing window in milliseconds.
	DebounceMs int `yaml:"debounce_ms"`
}

// DefaultSettings are used when the settings file is absent or partial.
func DefaultSettings() Settings {
	return Settings{DefaultFile: "Analyzer.cs", DebounceMs: 150}
}

// LoadSettings reads ~/.sensei/settings.yaml. A missing file is not an error;
// it yields the defaults. Partial files inherit defaults for absent keys.
func LoadSettings() (Settings, error) {
	s := DefaultSettings()
	base, err := baseDir()
	if err != nil {
		return s, err
	}
	path := filepath.Join(base, "settings.yaml")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("unmarshal %s: %w", path, err)
	}
	if s.DefaultFile == "" {
		s.DefaultFile = "Analyzer.cs"
	}
	if s.DebounceMs <= 0 {
		s.DebounceMs = DefaultSettings().DebounceMs
	}
	return s, nil
}

// Debounce returns the configured coalescing window as a duration.
func (s Settings) Debounce() time.Duration {
	return time.Duration(s.DebounceMs) * time.Millisecond
}
