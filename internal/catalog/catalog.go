// Package catalog holds the human-readable side of the diagnostic stream: per
// rule-ID severities, titles, and message formats, loaded from an embedded
// YAML table so the engine itself never carries prose.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"sensei/internal/diag"
)

//go:embed catalog.yaml
var raw []byte

// Entry is one rule's presentation: how severe it is and how to phrase it.
type Entry struct {
	Severity string `yaml:"severity"`
	Title    string `yaml:"title"`
	Message  string `yaml:"message"`
	Category string `yaml:"category"`
}

// Catalog maps rule IDs to their presentation entries.
type Catalog struct {
	entries map[diag.ID]Entry
}

type rawCatalog struct {
	Rules map[string]Entry `yaml:"rules"`
}

// Load parses the embedded rule table.
func Load() (*Catalog, error) {
	var rc rawCatalog
	if err := yaml.Unmarshal(raw, &rc); err != nil {
		return nil, fmt.Errorf("parsing rule catalog: %w", err)
	}
	if len(rc.Rules) == 0 {
		return nil, fmt.Errorf("rule catalog is empty")
	}
	entries := make(map[diag.ID]Entry, len(rc.Rules))
	for id, e := range rc.Rules {
		if e.Message == "" {
			return nil, fmt.Errorf("rule %q has no message", id)
		}
		if _, err := severityOf(e.Severity); err != nil {
			return nil, fmt.Errorf("rule %q: %w", id, err)
		}
		entries[diag.ID(id)] = e
	}
	return &Catalog{entries: entries}, nil
}

// MustLoad is Load for initialization paths where the embedded table being
// well-formed is a build invariant.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the entry for a rule ID.
func (c *Catalog) Lookup(id diag.ID) (Entry, bool) {
	e, ok := c.entries[id]
	return e, ok
}

// Len returns the number of catalogued rules.
func (c *Catalog) Len() int { return len(c.entries) }

// Severity returns the rule's severity, defaulting to error for IDs the table
// does not know.
func (c *Catalog) Severity(id diag.ID) diag.Severity {
	e, ok := c.entries[id]
	if !ok {
		return diag.SevError
	}
	sev, err := severityOf(e.Severity)
	if err != nil {
		return diag.SevError
	}
	return sev
}

// Render expands the rule's message format with the diagnostic's arguments.
// Placeholders are positional: {0}, {1}, and so on. Unknown IDs render as the
// bare ID so a stale table never hides a finding.
func (c *Catalog) Render(d diag.Diagnostic) string {
	e, ok := c.entries[d.ID]
	if !ok {
		return string(d.ID)
	}
	return expand(e.Message, d.Args)
}

func expand(format string, args []string) string {
	var b strings.Builder
	b.Grow(len(format))
	for i := 0; i < len(format); i++ {
		if format[i] != '{' {
			b.WriteByte(format[i])
			continue
		}
		j := strings.IndexByte(format[i:], '}')
		if j < 0 {
			b.WriteString(format[i:])
			break
		}
		idx, ok := atoi(format[i+1 : i+j])
		if !ok || idx >= len(args) {
			b.WriteString(format[i : i+j+1])
		} else {
			b.WriteString(args[idx])
		}
		i += j
	}
	return b.String()
}

func atoi(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
	}
	return n, true
}

func severityOf(s string) (diag.Severity, error) {
	switch s {
	case "info":
		return diag.SevInfo, nil
	case "warning":
		return diag.SevWarning, nil
	case "error":
		return diag.SevError, nil
	}
	return 0, fmt.Errorf("unknown severity %q", s)
}
