package exercise_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"sensei/internal/exercise"
)

func TestLoadSettingsMissingFile(t *testing.T) {
	withTempHome(t)

	s, err := exercise.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s != exercise.DefaultSettings() {
		t.Errorf("expected defaults, got %+v", s)
	}
}

func TestLoadSettingsOverride(t *testing.T) {
	tmp := withTempHome(t)

	dir := filepath.Join(tmp, ".sensei")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	yaml := "default_file: Lesson.cs\ndebounce_ms: 400\n"
	if err := os.WriteFile(filepath.Join(dir, "settings.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := exercise.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.DefaultFile != "Lesson.cs" {
		t.Errorf("DefaultFile: %q", s.DefaultFile)
	}
	if s.Debounce() != 400*time.Millisecond {
		t.Errorf("Debounce: %v", s.Debounce())
	}
}

func TestLoadSettingsPartialInheritsDefaults(t *testing.T) {
	tmp := withTempHome(t)

	dir := filepath.Join(tmp, ".sensei")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "settings.yaml"), []byte("debounce_ms: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := exercise.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s != exercise.DefaultSettings() {
		t.Errorf("expected defaults for partial file, got %+v", s)
	}
}

func TestLoadSettingsBadYAML(t *testing.T) {
	tmp := withTempHome(t)

	dir := filepath.Join(tmp, ".sensei")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "settings.yaml"), []byte("debounce_ms: [oops\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := exercise.LoadSettings(); err == nil {
		t.Fatal("expected error for malformed settings")
	}
}
