// Package exercise manages the ~/.sensei/ workspace hierarchy.
//
// Directory layout:
//
//	~/.sensei/<name>/
//	    exercise.md     # manifest frontmatter + lesson text
//	    Analyzer.cs     # the file the student edits
package exercise

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"sensei/internal/frontmatter"
)

//go:embed starter.cs.tmpl
var starterSource []byte

//go:embed lesson.md.tmpl
var lessonBody string

// manifestFile is the markdown file carrying the workspace manifest.
const manifestFile = "exercise.md"

// Manifest is the frontmatter of a workspace's exercise.md.
type Manifest struct {
	Title   string `yaml:"title"`
	File    string `yaml:"file"`
	Created string `yaml:"created"`
}

// Workspace is one opened exercise directory.
type Workspace struct {
	Name     string
	Dir      string
	Manifest Manifest
}

// baseDir returns the ~/.sensei root.
func baseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	return filepath.Join(home, ".sensei"), nil
}

// Init creates ~/.sensei/<name>/ with the starter analyzer and the lesson
// manifest. Errors if the workspace already exists.
func Init(name string) (*Workspace, error) {
	base, err := baseDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(base, name)
	if _, err := os.Stat(dir); err == nil {
		return nil, fmt.Errorf("exercise %q already exists at %s", name, dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create exercise dir: %w", err)
	}

	cfg, err := LoadSettings()
	if err != nil {
		return nil, err
	}
	m := Manifest{
		Title:   "Build your first analyzer",
		File:    cfg.DefaultFile,
		Created: time.Now().Format("2006-01-02"),
	}
	doc, err := frontmatter.Write(m, lessonBody)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(dir, manifestFile), doc, 0o644); err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, m.File), starterSource, 0o644); err != nil {
		return nil, fmt.Errorf("write starter: %w", err)
	}
	return &Workspace{Name: name, Dir: dir, Manifest: m}, nil
}

// Open opens an existing workspace and parses its manifest.
func Open(name string) (*Workspace, error) {
	base, err := baseDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(base, name)
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("exercise %q not found (run 'sensei init %s' first)", name, name)
	}
	m, err := readManifest(dir)
	if err != nil {
		return nil, err
	}
	return &Workspace{Name: name, Dir: dir, Manifest: m}, nil
}

// SourcePath is the absolute path of the file the student edits.
func (w *Workspace) SourcePath() string {
	return filepath.Join(w.Dir, w.Manifest.File)
}

func readManifest(dir string) (Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, manifestFile))
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := frontmatter.ParseInto(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest: %w", err)
	}
	if m.File == "" {
		m.File = "Analyzer.cs"
	}
	return m, nil
}

// List returns the names of all workspaces under ~/.sensei/, in directory
// order.
func List() ([]string, error) {
	base, err := baseDir()
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(base)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read sensei dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// Remove deletes a workspace and all its contents.
func Remove(name string) error {
	base, err := baseDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(base, name)
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("exercise %q not found", name)
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("remove exercise: %w", err)
	}
	return nil
}
