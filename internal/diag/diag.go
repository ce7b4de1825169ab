// Package diag defines the diagnostic stream the conformance engine emits: an
// opaque rule identifier, the span the diagnostic points at, and an ordered
// list of message arguments. Human-readable titles and message formats live in
// the external catalog (internal/catalog), keyed by ID.
package diag

import "sensei/internal/source"

// ID is an opaque key into the rule-message catalog.
type ID string

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "info"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	}
	return "unknown"
}

// Diagnostic is one reported finding.
type Diagnostic struct {
	ID   ID
	Span source.Span
	// Args are substituted, in order, into the catalog's message format.
	Args []string
}

// Reporter receives diagnostics from the engine. Implementations must be safe
// to discard: the engine never inspects the result of a report.
type Reporter interface {
	Report(d Diagnostic)
}

// Bag is a Reporter that collects diagnostics in order.
type Bag struct {
	Diags []Diagnostic
}

func (b *Bag) Report(d Diagnostic) {
	b.Diags = append(b.Diags, d)
}

// Len returns the number of collected diagnostics.
func (b *Bag) Len() int { return len(b.Diags) }

// Discard is a Reporter that drops everything. Probe-mode invocations are
// given a nil reporter instead, but Discard is handy in tests.
type Discard struct{}

func (Discard) Report(Diagnostic) {}
