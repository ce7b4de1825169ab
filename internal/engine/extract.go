package engine

import (
	"sort"
	"strings"

	"sensei/internal/source"
	"sensei/internal/syntax"
)

// Shape extractors. Every helper returns its zero value plus false when the
// node does not have the expected shape; none of them report anything.

// identName returns the name of a bare identifier expression.
func identName(e syntax.Expr) (string, bool) {
	id, ok := e.(*syntax.Ident)
	if !ok {
		return "", false
	}
	return id.Name(), true
}

// localDecl returns the statement as a local declaration with an initializer.
func localDecl(s syntax.Stmt) (*syntax.LocalDecl, bool) {
	d, ok := s.(*syntax.LocalDecl)
	if !ok || d.Init == nil {
		return nil, false
	}
	return d, true
}

// memberOf matches "recv.sel" where recv is a bare identifier.
func memberOf(e syntax.Expr, recv, sel string) bool {
	ma, ok := e.(*syntax.MemberAccess)
	if !ok || ma.Sel.Text != sel {
		return false
	}
	name, ok := identName(ma.X)
	return ok && name == recv
}

// chainMemberOf matches "recv.mid.sel".
func chainMemberOf(e syntax.Expr, recv, mid, sel string) bool {
	ma, ok := e.(*syntax.MemberAccess)
	if !ok || ma.Sel.Text != sel {
		return false
	}
	return memberOf(ma.X, recv, mid)
}

// callOn matches "recv.method(...)" and returns the argument list.
func callOn(e syntax.Expr, recv, method string) (*syntax.ArgList, bool) {
	inv, ok := e.(*syntax.Invocation)
	if !ok || !memberOf(inv.Fun, recv, method) {
		return nil, false
	}
	return inv.Args, true
}

// chainCallOn matches "recv.mid.method(...)" and returns the argument list.
func chainCallOn(e syntax.Expr, recv, mid, method string) (*syntax.ArgList, bool) {
	inv, ok := e.(*syntax.Invocation)
	if !ok || !chainMemberOf(inv.Fun, recv, mid, method) {
		return nil, false
	}
	return inv.Args, true
}

// argCount returns the number of arguments, treating a nil list as zero.
func argCount(al *syntax.ArgList) int {
	if al == nil {
		return 0
	}
	return len(al.Args)
}

// boolLiteral returns the value of a bool literal expression.
func boolLiteral(e syntax.Expr) (bool, bool) {
	lit, ok := e.(*syntax.Literal)
	if !ok || lit.LitKind != syntax.LitBool {
		return false, false
	}
	return lit.Value == "true", true
}

// stringLiteral returns the unquoted value of a string literal expression.
func stringLiteral(e syntax.Expr) (string, bool) {
	lit, ok := e.(*syntax.Literal)
	if !ok || lit.LitKind != syntax.LitString {
		return "", false
	}
	return lit.Value, true
}

// numberLiteral returns the raw text of a numeric literal expression.
func numberLiteral(e syntax.Expr) (string, bool) {
	lit, ok := e.(*syntax.Literal)
	if !ok || lit.LitKind != syntax.LitNumber {
		return "", false
	}
	return lit.Value, true
}

// hasModifiers reports whether the modifier list consists of exactly the
// given words, in any order.
func hasModifiers(mods []syntax.Token, want ...string) bool {
	if len(mods) != len(want) {
		return false
	}
	seen := make(map[string]bool, len(mods))
	for _, m := range mods {
		seen[m.Text] = true
	}
	for _, w := range want {
		if !seen[w] {
			return false
		}
	}
	return len(seen) == len(want)
}

// exprText renders identifier and member-access chains back to source-ish
// text, for "attempted name" recording on unresolved references.
func exprText(e syntax.Expr) string {
	switch e := e.(type) {
	case *syntax.Ident:
		return e.Name()
	case *syntax.MemberAccess:
		return exprText(e.X) + "." + e.Sel.Text
	case *syntax.Invocation:
		return exprText(e.Fun) + "(...)"
	case *syntax.Literal:
		return e.Tok.Text
	default:
		return ""
	}
}

// stmtSpan returns the span a "wrong shape" diagnostic should cover: the full
// statement, narrowed to the condition header when the statement is an if.
func stmtSpan(s syntax.Stmt) source.Span {
	if iff, ok := s.(*syntax.If); ok {
		return iff.HeaderSpan()
	}
	return s.Span()
}

// caretAfter is the zero-length insertion point just past a construct, used
// for "missing" diagnostics.
func caretAfter(sp source.Span) source.Span {
	return source.Span{Start: sp.End, End: sp.End}
}

// sameNameSet reports whether got is a permutation of want, and if not,
// renders the difference for the diagnostic message.
func sameNameSet(got, want []string) (bool, string) {
	counts := make(map[string]int, len(want))
	for _, w := range want {
		counts[w]++
	}
	for _, g := range got {
		counts[g]--
	}
	var missing, extra []string
	for name, n := range counts {
		switch {
		case n > 0:
			missing = append(missing, name)
		case n < 0:
			extra = append(extra, name)
		}
	}
	if len(missing) == 0 && len(extra) == 0 {
		return true, ""
	}
	sort.Strings(missing)
	sort.Strings(extra)
	var parts []string
	if len(missing) > 0 {
		parts = append(parts, "missing "+strings.Join(missing, ", "))
	}
	if len(extra) > 0 {
		parts = append(parts, "unexpected "+strings.Join(extra, ", "))
	}
	return false, strings.Join(parts, "; ")
}
