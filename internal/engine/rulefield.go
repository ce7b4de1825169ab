package engine

import (
	"sensei/internal/diag"
	"sensei/internal/syntax"
)

// DescriptorTypeName is the declared type a rule field must carry.
const DescriptorTypeName = "DiagnosticDescriptor"

// severityEnumName qualifies the two accepted severity members.
const severityEnumName = "DiagnosticSeverity"

var allowedSeverities = map[string]bool{
	"Warning": true,
	"Error":   true,
}

// descriptorRoles is the positional fallback order for unnamed construction
// arguments; named arguments match by role regardless of position.
var descriptorRoles = []string{
	"id", "title", "messageFormat", "category", "defaultSeverity", "isEnabledByDefault",
}

// Template placeholder strings the student is expected to customize.
const (
	placeholderTitle    = "Enter a title for this diagnostic"
	placeholderMessage  = "Enter a message to be displayed with this diagnostic"
	placeholderCategory = "Enter a category for this diagnostic (e.g. Formatting)"
)

// isRuleField reports whether the field is descriptor-typed with an object
// construction initializer — a rule, possibly still being written.
func isRuleField(f *syntax.Field) (*syntax.ObjectCreation, bool) {
	if f.Type.Name != DescriptorTypeName {
		return nil, false
	}
	oc, ok := f.Init.(*syntax.ObjectCreation)
	return oc, ok
}

// anyRuleField reports whether the class declares any rule field at all,
// complete or not. Used to decide between "missing rule" and staying silent
// while one is being typed.
func (p *pass) anyRuleField(c *syntax.Class) bool {
	for _, m := range c.Members {
		if f, ok := m.(*syntax.Field); ok {
			if _, ok := isRuleField(f); ok {
				return true
			}
		}
	}
	return false
}

// ruleCatalog collects the names of the class's complete, valid rule fields in
// declaration order. ok is false while any rule field is malformed (that
// field's own check owns the diagnostic) or no complete rule exists yet.
func (p *pass) ruleCatalog(c *syntax.Class) ([]string, bool) {
	ids := identifierCatalog(c)
	if len(ids) == 0 {
		return nil, false
	}
	var names []string
	for _, m := range c.Members {
		f, ok := m.(*syntax.Field)
		if !ok {
			continue
		}
		silent := &pass{res: p.res}
		name, isRule, valid := silent.checkRuleField(f, ids)
		if isRule && !valid {
			return nil, false
		}
		if valid {
			names = append(names, name)
		}
	}
	return names, len(names) > 0
}

// checkRuleField validates one field against the rule-descriptor shape.
// isRule is false for fields that are not descriptor constructions or are
// still incomplete (fewer than six arguments) — those are silently tolerated.
// Each defect reports at most one diagnostic and short-circuits.
func (p *pass) checkRuleField(f *syntax.Field, ids []string) (name string, isRule, valid bool) {
	oc, ok := isRuleField(f)
	if !ok {
		return "", false, false
	}
	name = f.Name.Text

	if !hasModifiers(f.Modifiers, "internal", "static") {
		p.report(IDInternalAndStatic, f.Name.Span, name)
		return name, true, false
	}

	// Fewer than six arguments means the student is mid-construction; the
	// field is not yet a rule and not an error either.
	if argCount(oc.Args) < 6 {
		return "", false, false
	}
	roles := roleArgs(oc.Args)

	if a := roles["isEnabledByDefault"]; a != nil {
		if v, ok := boolLiteral(a.Value); !ok || !v {
			p.report(IDEnabledByDefault, a.Span(), name)
			return name, true, false
		}
	}

	if a := roles["defaultSeverity"]; a != nil {
		if !isAllowedSeverity(a.Value) {
			p.report(IDDefaultSeverity, a.Span(), name)
			return name, true, false
		}
	}

	if a := roles["id"]; a != nil {
		if _, isLit := a.Value.(*syntax.Literal); isLit {
			p.report(IDIDStringLiteral, a.Span(), name)
			return name, true, false
		}
		idName, ok := identName(a.Value)
		if !ok || !containsName(ids, idName) {
			p.report(IDMissingIDDeclaration, a.Span(), exprText(a.Value))
			return name, true, false
		}
	}

	placeholders := []struct {
		role string
		text string
		id   diag.ID
	}{
		{"title", placeholderTitle, IDTitleError},
		{"messageFormat", placeholderMessage, IDMessageError},
		{"category", placeholderCategory, IDCategoryError},
	}
	for _, ph := range placeholders {
		a := roles[ph.role]
		if a == nil {
			continue
		}
		if s, ok := stringLiteral(a.Value); ok && s == ph.text {
			p.report(ph.id, a.Span(), name)
			return name, true, false
		}
	}

	return name, true, true
}

// isAllowedSeverity matches "DiagnosticSeverity.Warning" or ".Error".
func isAllowedSeverity(e syntax.Expr) bool {
	ma, ok := e.(*syntax.MemberAccess)
	if !ok || !allowedSeverities[ma.Sel.Text] {
		return false
	}
	return memberOf(e, severityEnumName, ma.Sel.Text)
}

// roleArgs maps construction arguments to their roles: named arguments by
// role name, unnamed ones by position.
func roleArgs(al *syntax.ArgList) map[string]*syntax.Arg {
	roles := make(map[string]*syntax.Arg, len(descriptorRoles))
	for i, a := range al.Args {
		switch {
		case !a.NameColon.Absent():
			roles[a.NameColon.Text] = a
		case i < len(descriptorRoles):
			if _, taken := roles[descriptorRoles[i]]; !taken {
				roles[descriptorRoles[i]] = a
			}
		}
	}
	return roles
}

func containsName(names []string, want string) bool {
	for _, n := range names {
		if n == want {
			return true
		}
	}
	return false
}
