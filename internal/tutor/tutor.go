// Package tutor drives the conformance engine over whole source files: it
// parses, binds, invokes every engine entry point the way an editor host
// would (one invocation per declaration), and aggregates the per-invocation
// findings into a deterministic list.
package tutor

import (
	"fmt"
	"os"
	"sort"

	"sensei/internal/csharp"
	"sensei/internal/diag"
	"sensei/internal/engine"
	"sensei/internal/syntax"
)

// Result is one full check of one source file.
type Result struct {
	File  *csharp.File
	Diags []diag.Diagnostic
}

// Complete reports whether the analyzer class passed every stage.
func (r *Result) Complete() bool {
	for _, d := range r.Diags {
		if d.ID == engine.IDComplete {
			return true
		}
	}
	return false
}

// Check parses src and runs the full entry-point sweep over every class it
// declares.
func Check(src []byte) *Result {
	f := csharp.Parse(src)
	eng := engine.New(csharp.NewBinder())

	var bag diag.Bag
	for _, c := range f.Classes {
		sweep(eng, c, &bag)
	}
	return &Result{File: f, Diags: ordered(bag.Diags)}
}

// CheckFile reads and checks one file from disk.
func CheckFile(path string) (*Result, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Check(src), nil
}

// sweep invokes each declaration's entry point, in source order. Every
// invocation gets the shared bag; the engine guarantees at most one
// diagnostic per invocation.
func sweep(eng *engine.Engine, c *syntax.Class, bag *diag.Bag) {
	eng.CheckClass(c, bag)
	for _, m := range c.Members {
		switch m := m.(type) {
		case *syntax.Field:
			eng.CheckField(m, bag)
		case *syntax.Property:
			eng.CheckProperty(m, bag)
		case *syntax.Method:
			eng.CheckMethod(m, bag)
		}
	}
}

// ordered sorts findings by span start, then end, then ID, so repeated checks
// of identical input render identically.
func ordered(diags []diag.Diagnostic) []diag.Diagnostic {
	sort.SliceStable(diags, func(i, j int) bool {
		a, b := diags[i], diags[j]
		if a.Span.Start != b.Span.Start {
			return a.Span.Start < b.Span.Start
		}
		if a.Span.End != b.Span.End {
			return a.Span.End < b.Span.End
		}
		return a.ID < b.ID
	})
	return diags
}
