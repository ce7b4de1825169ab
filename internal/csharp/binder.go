package csharp

import "sensei/internal/syntax"

// Binder resolves names within a single class declaration plus the fixed host
// API surface. It implements syntax.Resolver.
//
// Resolution is pass-local and read-only: the binder holds no caches, so one
// Binder may serve concurrent engine invocations over the same tree.
type Binder struct{}

// NewBinder returns the class-scoped resolver.
func NewBinder() *Binder { return &Binder{} }

var _ syntax.Resolver = (*Binder)(nil)

// analysisContextMethods is the registration surface of the analysis context
// parameter handed to Initialize.
var analysisContextMethods = map[string]bool{
	"RegisterSyntaxNodeAction":       true,
	"RegisterSymbolAction":           true,
	"RegisterCompilationAction":      true,
	"RegisterCompilationStartAction": true,
	"RegisterSemanticModelAction":    true,
	"RegisterCodeBlockAction":        true,
	"RegisterCodeBlockStartAction":   true,
	"RegisterSyntaxTreeAction":       true,
	"RegisterOperationAction":        true,
	"EnableConcurrentExecution":      true,
	"ConfigureGeneratedCodeAnalysis": true,
}

// nodeContextMethods is the API surface of the per-node analysis context.
var nodeContextMethods = map[string]bool{
	"ReportDiagnostic": true,
}

// ResolveIdent resolves a bare identifier use against enclosing locals,
// method parameters, and class members, in that order.
func (b *Binder) ResolveIdent(id *syntax.Ident) (syntax.Symbol, bool) {
	name := id.Name()
	use := id.Span().Start

	for cur := syntax.Node(id); cur != nil; cur = cur.Parent() {
		switch scope := cur.(type) {
		case *syntax.Block:
			for _, s := range scope.Stmts {
				d, ok := s.(*syntax.LocalDecl)
				if !ok || d.Span().Start >= use {
					continue
				}
				if d.Name.Text == name {
					return syntax.Symbol{Kind: syntax.SymLocal, Name: name, Decl: d}, true
				}
			}
		case *syntax.Method:
			for _, p := range scope.Params {
				if p.Name.Text == name {
					return syntax.Symbol{Kind: syntax.SymParameter, Name: name, Decl: p}, true
				}
			}
		case *syntax.Class:
			for _, m := range scope.Members {
				switch m := m.(type) {
				case *syntax.Field:
					if m.Name.Text == name {
						return syntax.Symbol{Kind: syntax.SymField, Name: name, Decl: m}, true
					}
				case *syntax.Method:
					if m.Name.Text == name {
						return syntax.Symbol{Kind: syntax.SymMethod, Name: name, Decl: m}, true
					}
				}
			}
		}
	}
	return syntax.Symbol{}, false
}

// ResolveMember resolves "x.Name" against the known host API: registration
// methods on a context parameter, and members of the SyntaxKind enumeration.
func (b *Binder) ResolveMember(ma *syntax.MemberAccess) (syntax.Symbol, bool) {
	recv, ok := ma.X.(*syntax.Ident)
	if !ok {
		return syntax.Symbol{}, false
	}
	sel := ma.Sel.Text

	// Any member of the kind enumeration binds as a kind field; whether the
	// kind is allowed is the engine's call, not the binder's.
	if recv.Name() == "SyntaxKind" {
		return syntax.Symbol{Kind: syntax.SymKindField, Name: sel}, true
	}

	sym, ok := b.ResolveIdent(recv)
	if !ok || sym.Kind != syntax.SymParameter {
		return syntax.Symbol{}, false
	}
	param, ok := sym.Decl.(*syntax.Parameter)
	if !ok {
		return syntax.Symbol{}, false
	}
	switch param.Type.Name {
	case "AnalysisContext":
		if analysisContextMethods[sel] {
			return syntax.Symbol{Kind: syntax.SymAPIMethod, Name: sel}, true
		}
	case "SyntaxNodeAnalysisContext":
		if nodeContextMethods[sel] {
			return syntax.Symbol{Kind: syntax.SymAPIMethod, Name: sel}, true
		}
	}
	return syntax.Symbol{}, false
}
