package exercise_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sensei/internal/exercise"
)

// withTempHome redirects os.UserHomeDir to a temp directory for the test.
func withTempHome(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	return tmp
}

func TestInitAndOpen(t *testing.T) {
	tmp := withTempHome(t)

	w, err := exercise.Init("first")
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	dir := filepath.Join(tmp, ".sensei", "first")
	if w.Dir != dir {
		t.Errorf("Dir mismatch: got %s want %s", w.Dir, dir)
	}

	// Both scaffold files must exist.
	src, err := os.ReadFile(w.SourcePath())
	if err != nil {
		t.Fatalf("starter source not created: %v", err)
	}
	if !strings.Contains(string(src), "DiagnosticAnalyzer") {
		t.Errorf("starter source missing base class: %q", src)
	}
	if _, err := os.Stat(filepath.Join(dir, "exercise.md")); err != nil {
		t.Fatalf("manifest not created: %v", err)
	}

	// Init again must fail.
	if _, err := exercise.Init("first"); err == nil {
		t.Fatal("expected error on duplicate Init")
	}

	got, err := exercise.Open("first")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got.Manifest.File != "Analyzer.cs" {
		t.Errorf("manifest file mismatch: %+v", got.Manifest)
	}
	if got.SourcePath() != w.SourcePath() {
		t.Errorf("source path mismatch: got %s want %s", got.SourcePath(), w.SourcePath())
	}
}

func TestOpenMissing(t *testing.T) {
	withTempHome(t)
	if _, err := exercise.Open("nope"); err == nil {
		t.Fatal("expected error for missing exercise")
	}
}

func TestListAndRemove(t *testing.T) {
	withTempHome(t)

	names, err := exercise.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 0 {
		t.Fatalf("expected 0 exercises, got %d", len(names))
	}

	if _, err := exercise.Init("alpha"); err != nil {
		t.Fatal(err)
	}
	if _, err := exercise.Init("beta"); err != nil {
		t.Fatal(err)
	}

	names, err = exercise.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 {
		t.Fatalf("expected 2 exercises, got %d: %v", len(names), names)
	}

	if err := exercise.Remove("alpha"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := exercise.Remove("alpha"); err == nil {
		t.Fatal("expected error removing twice")
	}

	names, _ = exercise.List()
	if len(names) != 1 || names[0] != "beta" {
		t.Fatalf("unexpected remaining exercises: %v", names)
	}
}
