package engine

import "sensei/internal/syntax"

// accessorName is the property that must expose the produced rule set.
const accessorName = "SupportedDiagnostics"

// collectionTypeName owns the Create factory the accessor must return.
const collectionTypeName = "ImmutableArray"

// accessorSatisfied probes whether the registration accessor exists and is
// fully valid, without reporting.
func (p *pass) accessorSatisfied(c *syntax.Class, rules []string) bool {
	prop := findProperty(c, accessorName)
	if prop == nil {
		return false
	}
	silent := &pass{res: p.res}
	return silent.checkAccessor(prop, rules)
}

// checkAccessor validates the SupportedDiagnostics property: signature, the
// single get accessor, and that the returned collection's arguments exactly
// match the declared rule set (order-insensitive).
func (p *pass) checkAccessor(prop *syntax.Property, rules []string) bool {
	if !hasModifiers(prop.Modifiers, "public", "override") {
		p.report(IDIncorrectSigSuppDiag, prop.Name.Span, prop.Name.Text)
		return false
	}

	if len(prop.Accessors) > 1 {
		p.report(IDTooManyAccessors, prop.Name.Span, prop.Name.Text)
		return false
	}
	if len(prop.Accessors) == 0 {
		p.report(IDMissingAccessor, prop.Name.Span, prop.Name.Text)
		return false
	}
	acc := prop.Accessors[0]
	if acc.Keyword.Text != "get" || acc.Body == nil {
		p.report(IDMissingAccessor, acc.Keyword.Span, prop.Name.Text)
		return false
	}

	stmts := acc.Body.Stmts
	switch {
	case len(stmts) == 0:
		p.report(IDIncorrectAccessorReturn, acc.Keyword.Span, prop.Name.Text)
		return false
	case len(stmts) > 2:
		p.report(IDTooManyStatements, acc.Keyword.Span, "get accessor", "1 or 2")
		return false
	}

	// With two statements, the first must be the local holding the created
	// collection; the return then refers to it by name.
	if len(stmts) == 2 {
		if _, ok := localDecl(stmts[0]); !ok {
			p.report(IDIncorrectAccessorReturn, stmtSpan(stmts[0]), prop.Name.Text)
			return false
		}
	}
	ret, ok := stmts[len(stmts)-1].(*syntax.Return)
	if !ok || ret.Result == nil {
		p.report(IDIncorrectAccessorReturn, stmtSpan(stmts[len(stmts)-1]), prop.Name.Text)
		return false
	}

	call, ok := createInvocation(p.res, ret.Result)
	if !ok {
		p.report(IDSuppDiagReturnValue, ret.Result.Span(), prop.Name.Text)
		return false
	}
	return p.checkCreateArgs(call, rules)
}

// createInvocation accepts either a direct ImmutableArray.Create invocation
// or an identifier whose local declaration is one — a single level of
// indirection, never deeper.
func createInvocation(res syntax.Resolver, e syntax.Expr) (*syntax.Invocation, bool) {
	if inv, ok := asCreateCall(e); ok {
		return inv, true
	}
	id, ok := e.(*syntax.Ident)
	if !ok {
		return nil, false
	}
	sym, ok := res.ResolveIdent(id)
	if !ok || sym.Kind != syntax.SymLocal {
		return nil, false
	}
	decl, ok := sym.Decl.(*syntax.LocalDecl)
	if !ok || decl.Init == nil {
		return nil, false
	}
	return asCreateCall(decl.Init)
}

func asCreateCall(e syntax.Expr) (*syntax.Invocation, bool) {
	inv, ok := e.(*syntax.Invocation)
	if !ok || !memberOf(inv.Fun, collectionTypeName, "Create") {
		return nil, false
	}
	return inv, true
}

// checkCreateArgs verifies the created collection references exactly the
// declared rule set, as a multiset.
func (p *pass) checkCreateArgs(call *syntax.Invocation, rules []string) bool {
	var got []string
	if call.Args == nil {
		p.report(IDSupportedRules, call.Span(), "no arguments")
		return false
	}
	for _, a := range call.Args.Args {
		name, ok := identName(a.Value)
		if !ok {
			p.report(IDSupportedRules, call.Span(), "non-identifier argument")
			return false
		}
		got = append(got, name)
	}
	if same, detail := sameNameSet(got, rules); !same {
		p.report(IDSupportedRules, call.Span(), detail)
		return false
	}
	return true
}
