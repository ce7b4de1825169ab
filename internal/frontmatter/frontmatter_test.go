package frontmatter_test

import (
	"testing"

	"sensei/internal/frontmatter"
)

func TestParseRoundtrip(t *testing.T) {
	type meta struct {
		Title string `yaml:"title"`
		File  string `yaml:"file"`
	}

	m := meta{Title: "Build your first analyzer", File: "Analyzer.cs"}
	body := "# Lesson\n\nedit the file\n"

	data, err := frontmatter.Write(m, body)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	var got meta
	if err := frontmatter.ParseInto(data, &got); err != nil {
		t.Fatalf("ParseInto: %v", err)
	}
	if got != m {
		t.Errorf("frontmatter mismatch: got %+v want %+v", got, m)
	}

	_, bodyBytes, err := frontmatter.Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if string(bodyBytes) != body {
		t.Errorf("body mismatch: got %q want %q", bodyBytes, body)
	}
}

func TestParseMissingOpen(t *testing.T) {
	_, _, err := frontmatter.Parse([]byte("no delimiter"))
	if err == nil {
		t.Fatal("expected error for missing opening delimiter")
	}
}

func TestParseMissingClose(t *testing.T) {
	_, _, err := frontmatter.Parse([]byte("---\ntitle: lesson\n"))
	if err == nil {
		t.Fatal("expected error for missing closing delimiter")
	}
}

func TestParseIntoBadYAML(t *testing.T) {
	var v struct {
		N int `yaml:"n"`
	}
	err := frontmatter.ParseInto([]byte("---\nn: [unclosed\n---\n"), &v)
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestWriteNoBody(t *testing.T) {
	type meta struct {
		X int `yaml:"x"`
	}
	data, err := frontmatter.Write(meta{X: 1}, "")
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty output")
	}
}
