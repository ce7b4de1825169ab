// Package engine is sensei's staged conformance checker: an ordered chain of
// shape validators that inspect an analyzer class declaration and report, per
// invocation, at most one diagnostic — the next construct the student should
// write, or why a present construct is malformed.
//
// Every entry point re-derives the full prerequisite chain (class gate →
// identifier catalog → rule fields → registration accessor → initialize →
// analysis-method locator → staged body) in silent probe mode before running
// the one check its node kind owns. If any prerequisite is not yet
// satisfiable the entry point returns without reporting; visible diagnostics
// belong to the stage the triggering node is responsible for.
//
// All state is pass-local. Entry points are pure functions of their inputs
// and may be invoked concurrently for independent nodes.
package engine

import (
	"sensei/internal/diag"
	"sensei/internal/source"
	"sensei/internal/syntax"
)

// BaseClassName is the base construct the tutorial class must derive from.
const BaseClassName = "DiagnosticAnalyzer"

// Engine validates one tutorial class shape against its expected sequence of
// constructs. It holds only the injected resolver; everything else is derived
// fresh per invocation.
type Engine struct {
	res syntax.Resolver
}

// New returns an engine using the given symbol resolver.
func New(res syntax.Resolver) *Engine {
	return &Engine{res: res}
}

// pass carries one invocation's reporting state. A nil reporter means probe
// mode: the pass runs the same logic but can never emit.
type pass struct {
	res      syntax.Resolver
	rep      diag.Reporter
	reported bool
}

func (e *Engine) reportingPass(r diag.Reporter) *pass {
	return &pass{res: e.res, rep: r}
}

func (e *Engine) probePass() *pass {
	return &pass{res: e.res}
}

// report emits a diagnostic unless the pass is probing or has already
// reported. Enforces the single-diagnostic-per-invocation contract.
func (p *pass) report(id diag.ID, span source.Span, args ...string) {
	if p.rep == nil || p.reported {
		return
	}
	p.reported = true
	p.rep.Report(diag.Diagnostic{ID: id, Span: span, Args: args})
}

// ---------------------------------------------------------------------------
// Class gate
// ---------------------------------------------------------------------------

// AnalyzerClass walks ancestors-and-self to the nearest class declaration and
// returns it only if its first listed base type names the expected base
// construct. Pure; no diagnostics.
func AnalyzerClass(n syntax.Node) (*syntax.Class, bool) {
	c, ok := syntax.EnclosingClass(n)
	if !ok || len(c.Bases) == 0 {
		return nil, false
	}
	if baseName(c.Bases[0].Name) != BaseClassName {
		return nil, false
	}
	return c, true
}

// baseName strips any namespace qualification from a base type reference.
func baseName(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[i+1:]
		}
	}
	return name
}

// ---------------------------------------------------------------------------
// Identifier catalog
// ---------------------------------------------------------------------------

// identifierCatalog scans the class's fields for public constant string
// declarations with initializers and returns their names in declaration
// order. Fields that do not match are skipped, never flagged.
func identifierCatalog(c *syntax.Class) []string {
	var names []string
	for _, m := range c.Members {
		f, ok := m.(*syntax.Field)
		if !ok {
			continue
		}
		if !hasModifiers(f.Modifiers, "public", "const") {
			continue
		}
		if f.Type.Name != "string" || f.Init == nil || f.Name.Absent() {
			continue
		}
		names = append(names, f.Name.Text)
	}
	return names
}

// ---------------------------------------------------------------------------
// Entry points
// ---------------------------------------------------------------------------

// CheckField validates one field declaration against the rule-descriptor
// shape. Fields that are not descriptor fields are ignored.
func (e *Engine) CheckField(f *syntax.Field, r diag.Reporter) {
	c, ok := AnalyzerClass(f)
	if !ok {
		return
	}
	ids := identifierCatalog(c)
	if len(ids) == 0 {
		return
	}
	p := e.reportingPass(r)
	p.checkRuleField(f, ids)
}

// CheckProperty validates the registration accessor property. Properties with
// other names are ignored, and nothing is reported until every rule field is
// fully valid.
func (e *Engine) CheckProperty(prop *syntax.Property, r diag.Reporter) {
	c, ok := AnalyzerClass(prop)
	if !ok || prop.Name.Text != accessorName {
		return
	}
	rules, ok := e.probePass().ruleCatalog(c)
	if !ok {
		return
	}
	p := e.reportingPass(r)
	p.checkAccessor(prop, rules)
}

// CheckMethod validates the Initialize method or the registered analysis
// method, depending on the method's role in the chain.
func (e *Engine) CheckMethod(m *syntax.Method, r diag.Reporter) {
	c, ok := AnalyzerClass(m)
	if !ok {
		return
	}
	probe := e.probePass()
	rules, ok := probe.ruleCatalog(c)
	if !ok {
		return
	}

	if m.Name.Text == initializeName {
		if !probe.accessorSatisfied(c, rules) {
			return
		}
		p := e.reportingPass(r)
		p.checkInitialize(m)
		return
	}

	// Anything else is only interesting if Initialize registered it.
	if !probe.accessorSatisfied(c, rules) {
		return
	}
	reg, ok := probe.initializeInfo(c)
	if !ok || reg.CallbackName != m.Name.Text {
		return
	}
	p := e.reportingPass(r)
	if p.checkAnalysisMethod(c, m, rules) {
		p.report(IDComplete, c.Name.Span, c.Name.Text)
	}
}

// CheckClass owns every "next member is missing entirely" diagnostic plus the
// empty-identifier-catalog case. Malformed-but-present members stay silent
// here; their own entry points report them.
func (e *Engine) CheckClass(c *syntax.Class, r diag.Reporter) {
	if _, ok := AnalyzerClass(c); !ok {
		return
	}
	p := e.reportingPass(r)

	ids := identifierCatalog(c)
	if len(ids) == 0 {
		p.report(IDMissingID, c.Name.Span, c.Name.Text)
		return
	}

	probe := e.probePass()
	if !probe.anyRuleField(c) {
		p.report(IDMissingRule, c.Name.Span, c.Name.Text)
		return
	}
	rules, ok := probe.ruleCatalog(c)
	if !ok {
		return // a malformed rule field owns the diagnostic
	}

	prop := findProperty(c, accessorName)
	if prop == nil {
		p.report(IDMissingSuppDiag, c.Name.Span, c.Name.Text)
		return
	}
	if !probe.accessorSatisfied(c, rules) {
		return
	}

	init := findMethod(c, initializeName)
	if init == nil {
		p.report(IDMissingInit, c.Name.Span, c.Name.Text)
		return
	}
	reg, ok := probe.initializeInfo(c)
	if !ok {
		return
	}

	if findMethod(c, reg.CallbackName) == nil {
		// The callback is referenced but not yet declared: point at the
		// registration call's first argument, carrying the expected name.
		span := reg.Call.Span()
		if argCount(reg.Call.Args) > 0 {
			span = reg.Call.Args.Args[0].Span()
		}
		p.report(IDMissingAnalysisMethod, span, reg.CallbackName)
		return
	}
	// The analysis method exists; its own invocation reports body progress
	// and, on full success, the completion diagnostic.
}

// findProperty returns the class's property with the given name, if any.
func findProperty(c *syntax.Class, name string) *syntax.Property {
	for _, m := range c.Members {
		if prop, ok := m.(*syntax.Property); ok && prop.Name.Text == name {
			return prop
		}
	}
	return nil
}

// findMethod returns the class's method with the given name, if any.
func findMethod(c *syntax.Class, name string) *syntax.Method {
	if name == "" {
		return nil
	}
	for _, m := range c.Members {
		if md, ok := m.(*syntax.Method); ok && md.Name.Text == name {
			return md
		}
	}
	return nil
}
