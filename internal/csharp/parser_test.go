package csharp_test

import (
	"testing"

	"sensei/internal/csharp"
	"sensei/internal/syntax"
)

const analyzerSrc = `using System;

namespace SpacingAnalyzer
{
    public class SpacingAnalyzer : DiagnosticAnalyzer
    {
        public const string spacingRuleId = "IfSpacing";

        internal static DiagnosticDescriptor Rule = new DiagnosticDescriptor(
            id: spacingRuleId,
            isEnabledByDefault: true);

        public override ImmutableArray<DiagnosticDescriptor> SupportedDiagnostics
        {
            get
            {
                return ImmutableArray.Create(Rule);
            }
        }

        public override void Initialize(AnalysisContext context)
        {
            context.RegisterSyntaxNodeAction(AnalyzeIfStatement, SyntaxKind.IfStatement);
        }

        private void AnalyzeIfStatement(SyntaxNodeAnalysisContext context)
        {
            var ifState = (IfStatementSyntax)context.Node;
            if (ifState.IfKeyword.HasTrailingTrivia)
            {
                return;
            }
        }
    }
}
`

func parseOneClass(t *testing.T, src string) (*csharp.File, *syntax.Class) {
	t.Helper()
	f := csharp.Parse([]byte(src))
	if len(f.Classes) != 1 {
		t.Fatalf("expected 1 class, got %d", len(f.Classes))
	}
	return f, f.Classes[0]
}

func TestParseAnalyzerShape(t *testing.T) {
	_, c := parseOneClass(t, analyzerSrc)

	if c.Name.Text != "SpacingAnalyzer" {
		t.Errorf("class name: got %q", c.Name.Text)
	}
	if len(c.Bases) != 1 || c.Bases[0].Name != "DiagnosticAnalyzer" {
		t.Fatalf("bases: got %+v", c.Bases)
	}
	if len(c.Members) != 5 {
		t.Fatalf("expected 5 members, got %d", len(c.Members))
	}

	idField, ok := c.Members[0].(*syntax.Field)
	if !ok {
		t.Fatalf("member 0 is %T, want field", c.Members[0])
	}
	if idField.Type.Name != "string" || idField.Name.Text != "spacingRuleId" {
		t.Errorf("id field: %q %q", idField.Type.Name, idField.Name.Text)
	}
	if _, ok := idField.Init.(*syntax.Literal); !ok {
		t.Errorf("id field init is %T, want literal", idField.Init)
	}

	ruleField, ok := c.Members[1].(*syntax.Field)
	if !ok {
		t.Fatalf("member 1 is %T, want field", c.Members[1])
	}
	oc, ok := ruleField.Init.(*syntax.ObjectCreation)
	if !ok {
		t.Fatalf("rule init is %T, want object creation", ruleField.Init)
	}
	if oc.Type.Name != "DiagnosticDescriptor" {
		t.Errorf("creation type: %q", oc.Type.Name)
	}
	if len(oc.Args.Args) != 2 {
		t.Fatalf("creation args: got %d", len(oc.Args.Args))
	}
	if oc.Args.Args[0].NameColon.Text != "id" {
		t.Errorf("first arg name: %q", oc.Args.Args[0].NameColon.Text)
	}

	prop, ok := c.Members[2].(*syntax.Property)
	if !ok {
		t.Fatalf("member 2 is %T, want property", c.Members[2])
	}
	if prop.Type.Name != "ImmutableArray<DiagnosticDescriptor>" {
		t.Errorf("property type: %q", prop.Type.Name)
	}
	if len(prop.Accessors) != 1 || prop.Accessors[0].Keyword.Text != "get" {
		t.Fatalf("accessors: %+v", prop.Accessors)
	}

	init, ok := c.Members[3].(*syntax.Method)
	if !ok {
		t.Fatalf("member 3 is %T, want method", c.Members[3])
	}
	if init.ReturnType.Name != "void" || len(init.Params) != 1 {
		t.Errorf("initialize signature: %q, %d params", init.ReturnType.Name, len(init.Params))
	}
	if init.Params[0].Type.Name != "AnalysisContext" {
		t.Errorf("initialize param type: %q", init.Params[0].Type.Name)
	}
}

func TestParseCastStatement(t *testing.T) {
	_, c := parseOneClass(t, analyzerSrc)
	m := c.Members[4].(*syntax.Method)
	if m.Body == nil || len(m.Body.Stmts) != 2 {
		t.Fatalf("analysis body: %+v", m.Body)
	}

	d, ok := m.Body.Stmts[0].(*syntax.LocalDecl)
	if !ok {
		t.Fatalf("statement 0 is %T, want local decl", m.Body.Stmts[0])
	}
	cast, ok := d.Init.(*syntax.Cast)
	if !ok {
		t.Fatalf("init is %T, want cast", d.Init)
	}
	if cast.Type.Name != "IfStatementSyntax" {
		t.Errorf("cast type: %q", cast.Type.Name)
	}
	ma, ok := cast.Value.(*syntax.MemberAccess)
	if !ok || ma.Sel.Text != "Node" {
		t.Fatalf("cast value: %T", cast.Value)
	}
}

func TestParseAsExpression(t *testing.T) {
	src := `public class C : DiagnosticAnalyzer
{
    private void M(SyntaxNodeAnalysisContext context)
    {
        var x = context.Node as IfStatementSyntax;
    }
}
`
	_, c := parseOneClass(t, src)
	m := c.Members[0].(*syntax.Method)
	d := m.Body.Stmts[0].(*syntax.LocalDecl)
	as, ok := d.Init.(*syntax.AsExpr)
	if !ok {
		t.Fatalf("init is %T, want as-expression", d.Init)
	}
	if as.Type.Name != "IfStatementSyntax" {
		t.Errorf("as type: %q", as.Type.Name)
	}
}

func TestParseIfHeaderSpan(t *testing.T) {
	src := `public class C : DiagnosticAnalyzer
{
    private void M(SyntaxNodeAnalysisContext context)
    {
        if (x.HasTrailingTrivia)
        {
            return;
        }
    }
}
`
	f, c := parseOneClass(t, src)
	m := c.Members[0].(*syntax.Method)
	iff := m.Body.Stmts[0].(*syntax.If)
	got := f.Text.Slice(iff.HeaderSpan())
	if got != "if (x.HasTrailingTrivia" {
		t.Errorf("header span text: %q", got)
	}
}

func TestParseUnbracedIfBody(t *testing.T) {
	src := `public class C : DiagnosticAnalyzer
{
    private void M(SyntaxNodeAnalysisContext context)
    {
        if (x.HasTrailingTrivia)
            return;
    }
}
`
	_, c := parseOneClass(t, src)
	m := c.Members[0].(*syntax.Method)
	iff := m.Body.Stmts[0].(*syntax.If)
	if iff.Then == nil || len(iff.Then.Stmts) != 1 {
		t.Fatalf("unbraced body not wrapped: %+v", iff.Then)
	}
	if _, ok := iff.Then.Stmts[0].(*syntax.Return); !ok {
		t.Errorf("wrapped statement is %T, want return", iff.Then.Stmts[0])
	}
}

func TestParseEqualityChain(t *testing.T) {
	src := `public class C : DiagnosticAnalyzer
{
    private void M(SyntaxNodeAnalysisContext context)
    {
        if (trivia.Kind() == SyntaxKind.WhitespaceTrivia)
        {
        }
    }
}
`
	_, c := parseOneClass(t, src)
	m := c.Members[0].(*syntax.Method)
	iff := m.Body.Stmts[0].(*syntax.If)
	bin, ok := iff.Cond.(*syntax.Binary)
	if !ok {
		t.Fatalf("condition is %T, want binary", iff.Cond)
	}
	if bin.Op.Text != "==" {
		t.Errorf("operator: %q", bin.Op.Text)
	}
	if _, ok := bin.X.(*syntax.Invocation); !ok {
		t.Errorf("left side is %T, want invocation", bin.X)
	}
	if _, ok := bin.Y.(*syntax.MemberAccess); !ok {
		t.Errorf("right side is %T, want member access", bin.Y)
	}
}

func TestParseRecoversFromGarbage(t *testing.T) {
	src := `public class C : DiagnosticAnalyzer
{
    ??? ;

    public const string id = "x";
}
`
	_, c := parseOneClass(t, src)
	var fields int
	for _, m := range c.Members {
		if f, ok := m.(*syntax.Field); ok && f.Name.Text == "id" {
			fields++
		}
	}
	if fields != 1 {
		t.Fatalf("field after garbage not recovered; members: %d", len(c.Members))
	}
}

func TestParseNeverPanicsOnFragments(t *testing.T) {
	fragments := []string{
		"",
		"public class",
		"public class C :",
		"public class C : DiagnosticAnalyzer {",
		"public class C : DiagnosticAnalyzer { public const string",
		"public class C : DiagnosticAnalyzer { internal static DiagnosticDescriptor R = new DiagnosticDescriptor(",
		"public class C : DiagnosticAnalyzer { private void M(SyntaxNodeAnalysisContext c) { var x = (",
		"public class C : DiagnosticAnalyzer { private void M(SyntaxNodeAnalysisContext c) { if (x. } }",
	}
	for _, src := range fragments {
		// Parse must degrade to Bad nodes, never fail.
		csharp.Parse([]byte(src))
	}
}

func TestParentLinks(t *testing.T) {
	_, c := parseOneClass(t, analyzerSrc)
	m := c.Members[4].(*syntax.Method)
	d := m.Body.Stmts[0].(*syntax.LocalDecl)

	if got, ok := syntax.EnclosingMethod(d); !ok || got != m {
		t.Errorf("EnclosingMethod: got %v", got)
	}
	if got, ok := syntax.EnclosingClass(d); !ok || got != c {
		t.Errorf("EnclosingClass: got %v", got)
	}
}
