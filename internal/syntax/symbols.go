package syntax

// SymbolKind classifies what a name resolved to.
type SymbolKind uint8

const (
	SymUnknown SymbolKind = iota
	SymLocal
	SymField
	SymMethod
	SymParameter
	// SymAPIMethod is a method on one of the host API types (e.g. the
	// analysis context's registration methods). It has no declaration node.
	SymAPIMethod
	// SymKindField is a member of the syntactic-kind enumeration
	// (e.g. SyntaxKind.IfStatement). It has no declaration node.
	SymKindField
)

func (k SymbolKind) String() string {
	switch k {
	case SymLocal:
		return "local"
	case SymField:
		return "field"
	case SymMethod:
		return "method"
	case SymParameter:
		return "parameter"
	case SymAPIMethod:
		return "api-method"
	case SymKindField:
		return "kind-field"
	}
	return "unknown"
}

// Symbol is a resolved name. Decl is nil for API and kind symbols.
type Symbol struct {
	Kind SymbolKind
	Name string
	Decl Node
}

// Resolver maps identifier and member-access uses to declarations. The engine
// depends only on this interface so its logic is testable without a real
// front end; internal/csharp provides the class-scoped implementation.
type Resolver interface {
	// ResolveIdent resolves a bare identifier against, in order, enclosing
	// locals declared before the use, method parameters, and class members.
	ResolveIdent(id *Ident) (Symbol, bool)
	// ResolveMember resolves "x.Name" member accesses against the known
	// host API surface (context registration methods, the syntactic-kind
	// enumeration). Anything else is unresolved.
	ResolveMember(ma *MemberAccess) (Symbol, bool)
}
