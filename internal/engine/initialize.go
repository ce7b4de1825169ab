package engine

import "sensei/internal/syntax"

// initializeName is the method that registers the analysis callback.
const initializeName = "Initialize"

// contextTypeName is the expected type of Initialize's single parameter.
const contextTypeName = "AnalysisContext"

// registerMethods maps every known registration-method name to a friendly
// category. Only node registration is supported by the tutorial; the rest
// are recognized so they can be called out as unsupported rather than
// unintelligible.
var registerMethods = map[string]string{
	"RegisterSyntaxNodeAction":       "syntax-node",
	"RegisterSymbolAction":           "symbol",
	"RegisterCompilationAction":      "compilation",
	"RegisterCompilationStartAction": "compilation-start",
	"RegisterSemanticModelAction":    "semantic-model",
	"RegisterCodeBlockAction":        "code-block",
	"RegisterCodeBlockStartAction":   "code-block-start",
	"RegisterSyntaxTreeAction":       "syntax-tree",
	"RegisterOperationAction":        "operation",
}

// supportedRegister is the one registration method the tutorial accepts.
const supportedRegister = "RegisterSyntaxNodeAction"

// allowedKinds is the syntactic-kind allow-list for the selector argument.
var allowedKinds = map[string]bool{
	"IfStatement": true,
}

// RegistrationInfo describes the (possibly partially resolved) callback
// registration. CallbackName may be non-empty while Callback is unresolved:
// the student referenced a method they have not declared yet, which is a
// valid intermediate state, not an error.
type RegistrationInfo struct {
	Callback     syntax.Symbol
	CallbackName string
	KindName     string
	Call         *syntax.Invocation
}

// initializeInfo probes the Initialize method and returns its registration
// info when the stage is fully satisfied, without reporting.
func (p *pass) initializeInfo(c *syntax.Class) (RegistrationInfo, bool) {
	m := findMethod(c, initializeName)
	if m == nil {
		return RegistrationInfo{}, false
	}
	silent := &pass{res: p.res}
	return silent.checkInitialize(m)
}

// checkInitialize validates the Initialize method shape and its single
// registration statement.
func (p *pass) checkInitialize(m *syntax.Method) (RegistrationInfo, bool) {
	if !hasModifiers(m.Modifiers, "public", "override") ||
		m.ReturnType.Name != "void" ||
		len(m.Params) != 1 ||
		m.Params[0].Type.Name != contextTypeName {
		p.report(IDIncorrectInitSig, m.Name.Span, m.Name.Text)
		return RegistrationInfo{}, false
	}
	param := m.Params[0].Name.Text

	if m.Body == nil || len(m.Body.Stmts) == 0 {
		p.report(IDMissingRegisterStatement, m.Name.Span, m.Name.Text)
		return RegistrationInfo{}, false
	}
	stmts := m.Body.Stmts

	if len(stmts) > 1 {
		for _, s := range stmts {
			if !isRegisterCall(s, param) {
				p.report(IDInvalidStatement, stmtSpan(s))
				return RegistrationInfo{}, false
			}
		}
		p.report(IDTooManyInitStatements, m.Name.Span, m.Name.Text)
		return RegistrationInfo{}, false
	}

	es, ok := stmts[0].(*syntax.ExprStmt)
	if !ok {
		p.report(IDInvalidStatement, stmtSpan(stmts[0]))
		return RegistrationInfo{}, false
	}
	inv, ok := es.X.(*syntax.Invocation)
	if !ok {
		p.report(IDInvalidStatement, stmtSpan(stmts[0]))
		return RegistrationInfo{}, false
	}
	ma, ok := inv.Fun.(*syntax.MemberAccess)
	if !ok {
		p.report(IDInvalidStatement, stmtSpan(stmts[0]))
		return RegistrationInfo{}, false
	}
	if recv, ok := identName(ma.X); !ok || recv != param {
		p.report(IDInvalidStatement, stmtSpan(stmts[0]))
		return RegistrationInfo{}, false
	}

	if _, known := registerMethods[ma.Sel.Text]; !known {
		p.report(IDInvalidStatement, stmtSpan(stmts[0]))
		return RegistrationInfo{}, false
	}
	if ma.Sel.Text != supportedRegister {
		p.report(IDIncorrectRegister, ma.Sel.Span, ma.Sel.Text)
		return RegistrationInfo{}, false
	}

	info := RegistrationInfo{Call: inv}

	// An unresolved registration method is an in-progress state: record the
	// attempted callback name for downstream messages and stop silently.
	if _, resolved := p.res.ResolveMember(ma); !resolved {
		if argCount(inv.Args) > 0 {
			info.CallbackName = exprText(inv.Args.Args[0].Value)
		}
		return info, false
	}

	if argCount(inv.Args) != 2 {
		span := inv.Span()
		if inv.Args != nil {
			span = inv.Args.Span()
		}
		p.report(IDIncorrectArguments, span, m.Name.Text)
		return RegistrationInfo{}, false
	}

	cbArg := inv.Args.Args[0]
	if name, ok := identName(cbArg.Value); ok {
		info.CallbackName = name
		if id, ok := cbArg.Value.(*syntax.Ident); ok {
			if sym, ok := p.res.ResolveIdent(id); ok && sym.Kind == syntax.SymMethod {
				info.Callback = sym
			}
		}
	} else {
		info.CallbackName = exprText(cbArg.Value)
	}

	kindArg := inv.Args.Args[1]
	kindMA, ok := kindArg.Value.(*syntax.MemberAccess)
	if !ok {
		p.report(IDIncorrectKind, kindArg.Span())
		return RegistrationInfo{}, false
	}
	sym, ok := p.res.ResolveMember(kindMA)
	if !ok || sym.Kind != syntax.SymKindField || !allowedKinds[sym.Name] {
		p.report(IDIncorrectKind, kindArg.Span())
		return RegistrationInfo{}, false
	}
	info.KindName = sym.Name

	return info, true
}

// isRegisterCall reports whether the statement is a call of the context
// parameter through any known registration-method name.
func isRegisterCall(s syntax.Stmt, param string) bool {
	es, ok := s.(*syntax.ExprStmt)
	if !ok {
		return false
	}
	inv, ok := es.X.(*syntax.Invocation)
	if !ok {
		return false
	}
	ma, ok := inv.Fun.(*syntax.MemberAccess)
	if !ok {
		return false
	}
	if _, known := registerMethods[ma.Sel.Text]; !known {
		return false
	}
	recv, ok := identName(ma.X)
	return ok && recv == param
}
