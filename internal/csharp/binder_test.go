package csharp_test

import (
	"testing"

	"sensei/internal/csharp"
	"sensei/internal/syntax"
)

const binderSrc = `public class SpacingAnalyzer : DiagnosticAnalyzer
{
    public const string spacingRuleId = "IfSpacing";

    internal static DiagnosticDescriptor Rule = new DiagnosticDescriptor(spacingRuleId, true);

    public override void Initialize(AnalysisContext context)
    {
        context.RegisterSyntaxNodeAction(AnalyzeIfStatement, SyntaxKind.IfStatement);
    }

    private void AnalyzeIfStatement(SyntaxNodeAnalysisContext context)
    {
        var ifState = (IfStatementSyntax)context.Node;
        var keyword = ifState.IfKeyword;
        context.ReportDiagnostic(keyword);
    }
}
`

// findIdent walks the class for the first identifier expression with the
// given name, skipping declaration names.
func findIdent(c *syntax.Class, name string) *syntax.Ident {
	var found *syntax.Ident
	syntax.Walk(c, func(n syntax.Node) bool {
		if found != nil {
			return false
		}
		if id, ok := n.(*syntax.Ident); ok && id.Name() == name {
			found = id
			return false
		}
		return true
	})
	return found
}

// findMemberAccess returns the first member access whose selector matches.
func findMemberAccess(c *syntax.Class, sel string) *syntax.MemberAccess {
	var found *syntax.MemberAccess
	syntax.Walk(c, func(n syntax.Node) bool {
		if found != nil {
			return false
		}
		if ma, ok := n.(*syntax.MemberAccess); ok && ma.Sel.Text == sel {
			found = ma
			return false
		}
		return true
	})
	return found
}

func TestResolveIdentKinds(t *testing.T) {
	_, c := parseOneClass(t, binderSrc)
	b := csharp.NewBinder()

	tests := []struct {
		name string
		want syntax.SymbolKind
	}{
		{"spacingRuleId", syntax.SymField},
		{"AnalyzeIfStatement", syntax.SymMethod},
		{"ifState", syntax.SymLocal},
	}
	for _, tt := range tests {
		id := findIdent(c, tt.name)
		if id == nil {
			t.Fatalf("identifier %q not found in tree", tt.name)
		}
		sym, ok := b.ResolveIdent(id)
		if !ok {
			t.Fatalf("ResolveIdent(%q) failed", tt.name)
		}
		if sym.Kind != tt.want {
			t.Errorf("%q: kind %v, want %v", tt.name, sym.Kind, tt.want)
		}
	}
}

func TestResolveIdentParameter(t *testing.T) {
	_, c := parseOneClass(t, binderSrc)
	b := csharp.NewBinder()

	// The "context" inside ReportDiagnostic resolves to the analysis method's
	// own parameter, not Initialize's.
	ma := findMemberAccess(c, "ReportDiagnostic")
	if ma == nil {
		t.Fatal("ReportDiagnostic access not found")
	}
	id, ok := ma.X.(*syntax.Ident)
	if !ok {
		t.Fatalf("receiver is %T", ma.X)
	}
	sym, ok := b.ResolveIdent(id)
	if !ok || sym.Kind != syntax.SymParameter {
		t.Fatalf("receiver symbol: %+v ok=%v", sym, ok)
	}
	p, ok := sym.Decl.(*syntax.Parameter)
	if !ok || p.Type.Name != "SyntaxNodeAnalysisContext" {
		t.Errorf("resolved to wrong parameter: %+v", sym.Decl)
	}
}

func TestResolveIdentUnknown(t *testing.T) {
	_, c := parseOneClass(t, binderSrc)
	b := csharp.NewBinder()

	id := &syntax.Ident{Tok: syntax.Token{Text: "nothing"}}
	id.SetSpan(c.Span())
	if _, ok := b.ResolveIdent(id); ok {
		t.Error("unparented unknown identifier should not resolve")
	}
}

func TestResolveMemberAPI(t *testing.T) {
	_, c := parseOneClass(t, binderSrc)
	b := csharp.NewBinder()

	tests := []struct {
		sel  string
		want syntax.SymbolKind
		ok   bool
	}{
		{"RegisterSyntaxNodeAction", syntax.SymAPIMethod, true},
		{"IfStatement", syntax.SymKindField, true},
		{"ReportDiagnostic", syntax.SymAPIMethod, true},
		// Plain member chains on locals are not part of the bound API.
		{"IfKeyword", 0, false},
	}
	for _, tt := range tests {
		ma := findMemberAccess(c, tt.sel)
		if ma == nil {
			t.Fatalf("member access .%s not found", tt.sel)
		}
		sym, ok := b.ResolveMember(ma)
		if ok != tt.ok {
			t.Fatalf(".%s: resolved=%v want %v", tt.sel, ok, tt.ok)
		}
		if ok && sym.Kind != tt.want {
			t.Errorf(".%s: kind %v want %v", tt.sel, sym.Kind, tt.want)
		}
	}
}

func TestResolveMemberWrongContextSurface(t *testing.T) {
	src := `public class C : DiagnosticAnalyzer
{
    public override void Initialize(AnalysisContext context)
    {
        context.ReportDiagnostic(x);
    }
}
`
	_, c := parseOneClass(t, src)
	b := csharp.NewBinder()

	// ReportDiagnostic lives on the per-node context, not AnalysisContext.
	ma := findMemberAccess(c, "ReportDiagnostic")
	if ma == nil {
		t.Fatal("access not found")
	}
	if _, ok := b.ResolveMember(ma); ok {
		t.Error("ReportDiagnostic should not resolve on AnalysisContext")
	}
}

func TestLocalsDeclaredAfterUseDoNotResolve(t *testing.T) {
	src := `public class C : DiagnosticAnalyzer
{
    private void M(SyntaxNodeAnalysisContext context)
    {
        var a = b;
        var b = context;
    }
}
`
	_, c := parseOneClass(t, src)
	b := csharp.NewBinder()

	id := findIdent(c, "b")
	if id == nil {
		t.Fatal("use of b not found")
	}
	if _, ok := b.ResolveIdent(id); ok {
		t.Error("forward local reference should not resolve")
	}
}
