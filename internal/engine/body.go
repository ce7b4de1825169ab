package engine

import (
	"sensei/internal/diag"
	"sensei/internal/source"
	"sensei/internal/syntax"
)

// nodeContextTypeName is the per-node context type of the analysis method's
// single parameter.
const nodeContextTypeName = "SyntaxNodeAnalysisContext"

// targetNodeTypeName is the node type the callback must downcast to.
const targetNodeTypeName = "IfStatementSyntax"

// outerStatementCount is the full length of a correct analysis-method body.
const outerStatementCount = 10

// checkAnalysisMethod validates the registered analysis method: signature
// first, then the statement-by-statement state machine. Returns true only
// when every stage matched, in which case the caller emits the completion
// diagnostic.
func (p *pass) checkAnalysisMethod(c *syntax.Class, m *syntax.Method, rules []string) bool {
	// Signature defects each carry their own diagnostic.
	if len(m.Modifiers) != 1 || m.Modifiers[0].Text != "private" {
		p.report(IDIncorrectAccessibility, m.Name.Span, m.Name.Text)
		return false
	}
	if m.ReturnType.Name != "void" {
		p.report(IDIncorrectReturnType, m.Name.Span, m.Name.Text)
		return false
	}
	if len(m.Params) != 1 || m.Params[0].Type.Name != nodeContextTypeName || m.Params[0].Name.Absent() {
		p.report(IDIncorrectParameter, m.Name.Span, m.Name.Text)
		return false
	}

	b := &bodyCheck{
		pass:  p,
		param: m.Params[0].Name.Text,
		rules: rules,
	}
	if m.Body == nil {
		p.report(IDIfStatementMissing, caretAfter(m.Span()))
		return false
	}
	return b.run(m)
}

// bodyCheck threads the stage tokens through the state machine. Each token is
// the textual name a prior stage bound; later stages accept only statements
// that reference that exact name.
type bodyCheck struct {
	*pass
	param string
	rules []string

	tokA string // the downcast if-statement local
	tokB string // the if-keyword local
	tokC string // the first-trailing-trivia local
	tokD string // the open-paren-token local
}

// need fetches statement i of a scope, reporting the stage's "missing"
// diagnostic at the position the statement should occupy.
func (b *bodyCheck) need(stmts []syntax.Stmt, i int, missingID diag.ID, scopeAnchor source.Span) (syntax.Stmt, bool) {
	if i < len(stmts) {
		return stmts[i], true
	}
	anchor := scopeAnchor
	if len(stmts) > 0 {
		anchor = stmts[len(stmts)-1].Span()
	}
	b.report(missingID, caretAfter(anchor))
	return nil, false
}

func (b *bodyCheck) run(m *syntax.Method) bool {
	stmts := m.Body.Stmts
	open := m.Body.Open.Span
	if m.Body.Open.Absent() {
		open = m.Name.Span
	}

	// Statement 0: downcast context.Node to the target node type.
	s0, ok := b.need(stmts, 0, IDIfStatementMissing, open)
	if !ok {
		return false
	}
	if b.tokA, ok = b.matchDowncast(s0); !ok {
		b.report(IDIfStatementIncorrect, stmtSpan(s0))
		return false
	}

	// Statement 1: extract the keyword token off the downcast node.
	s1, ok := b.need(stmts, 1, IDIfKeywordMissing, open)
	if !ok {
		return false
	}
	if b.tokB, ok = b.matchKeywordExtract(s1); !ok {
		b.report(IDIfKeywordIncorrect, stmtSpan(s1))
		return false
	}

	// Statement 2: the trailing-trivia guard; its block is the next scope.
	s2, ok := b.need(stmts, 2, IDTrailingTriviaCheckMissing, open)
	if !ok {
		return false
	}
	triviaBlock, ok := b.matchGuard(s2, func(cond syntax.Expr) bool {
		return memberOf(cond, b.tokB, "HasTrailingTrivia")
	})
	if !ok {
		b.report(IDTrailingTriviaCheckIncorrect, stmtSpan(s2))
		return false
	}

	if !b.runTriviaSubtree(s2.(*syntax.If), triviaBlock) {
		return false
	}

	// The fixed diagnostic-building tail, statements 3 through 9.
	if !b.runTail(stmts, open) {
		return false
	}

	if len(stmts) > outerStatementCount {
		b.report(IDTooManyStatements, m.Name.Span, m.Name.Text, "10")
		return false
	}
	return true
}

// runTriviaSubtree validates the nested early-return chain (stages 5-9):
// first trivia extraction, count check, kind check, whitespace-text check,
// and the lone return.
func (b *bodyCheck) runTriviaSubtree(owner *syntax.If, block *syntax.Block) bool {
	anchor := block.Open.Span
	if block.Open.Absent() {
		anchor = owner.HeaderSpan()
	}

	// Scope statement 0: bind the single trailing trivia element.
	s0, ok := b.need(block.Stmts, 0, IDTrailingTriviaVarMissing, anchor)
	if !ok {
		return false
	}
	if b.tokC, ok = b.matchTriviaExtract(s0); !ok {
		b.report(IDTrailingTriviaVarIncorrect, stmtSpan(s0))
		return false
	}

	// Scope statement 1: the count == 1 guard.
	s1, ok := b.need(block.Stmts, 1, IDTrailingTriviaCountMissing, anchor)
	if !ok {
		return false
	}
	countBlock, ok := b.matchGuard(s1, b.isCountCheck)
	if !ok {
		b.report(IDTrailingTriviaCountIncorrect, stmtSpan(s1))
		return false
	}

	// Next scope, statement 0: the whitespace-kind guard.
	countIf := s1.(*syntax.If)
	anchor = scopeAnchor(countIf, countBlock)
	s2, ok := b.need(countBlock.Stmts, 0, IDTriviaKindCheckMissing, anchor)
	if !ok {
		return false
	}
	kindBlock, ok := b.matchGuard(s2, b.isKindCheck)
	if !ok {
		b.report(IDTriviaKindCheckIncorrect, stmtSpan(s2))
		return false
	}

	// Next scope, statement 0: the single-space text guard.
	kindIf := s2.(*syntax.If)
	anchor = scopeAnchor(kindIf, kindBlock)
	s3, ok := b.need(kindBlock.Stmts, 0, IDWhitespaceCheckMissing, anchor)
	if !ok {
		return false
	}
	spaceBlock, ok := b.matchGuard(s3, b.isSpaceCheck)
	if !ok {
		b.report(IDWhitespaceCheckIncorrect, stmtSpan(s3))
		return false
	}

	// Final scope: exactly one bare return.
	spaceIf := s3.(*syntax.If)
	anchor = scopeAnchor(spaceIf, spaceBlock)
	s4, ok := b.need(spaceBlock.Stmts, 0, IDReturnStatementMissing, anchor)
	if !ok {
		return false
	}
	ret, ok := s4.(*syntax.Return)
	if !ok || ret.Result != nil {
		b.report(IDReturnStatementIncorrect, stmtSpan(s4))
		return false
	}
	if len(spaceBlock.Stmts) > 1 {
		b.report(IDTooManyStatements, spaceIf.HeaderSpan(), "whitespace check", "1")
		return false
	}
	return true
}

// runTail validates the six diagnostic-building statements plus the final
// report call, statements 3..9 of the outer method.
func (b *bodyCheck) runTail(stmts []syntax.Stmt, open source.Span) bool {
	type tailStage struct {
		missing   diag.ID
		incorrect diag.ID
		match     func(syntax.Stmt) bool
	}
	var startVar, endVar, spanVar, locVar, diagVar string

	stages := []tailStage{
		{IDOpenParenMissing, IDOpenParenIncorrect, func(s syntax.Stmt) bool {
			d, ok := localDecl(s)
			if !ok || !memberOf(d.Init, b.tokA, "OpenParenToken") {
				return false
			}
			b.tokD = d.Name.Text
			return true
		}},
		{IDStartSpanMissing, IDStartSpanIncorrect, func(s syntax.Stmt) bool {
			d, ok := localDecl(s)
			if !ok || !isSpanStart(d.Init, b.tokB) {
				return false
			}
			startVar = d.Name.Text
			return true
		}},
		{IDEndSpanMissing, IDEndSpanIncorrect, func(s syntax.Stmt) bool {
			d, ok := localDecl(s)
			if !ok || !isSpanStart(d.Init, b.tokD) {
				return false
			}
			endVar = d.Name.Text
			return true
		}},
		{IDSpanMissing, IDSpanIncorrect, func(s syntax.Stmt) bool {
			d, ok := localDecl(s)
			if !ok {
				return false
			}
			args, ok := callOn(d.Init, "TextSpan", "FromBounds")
			if !ok || argCount(args) != 2 {
				return false
			}
			if !isIdentRef(args.Args[0].Value, startVar) || !isIdentRef(args.Args[1].Value, endVar) {
				return false
			}
			spanVar = d.Name.Text
			return true
		}},
		{IDLocationMissing, IDLocationIncorrect, func(s syntax.Stmt) bool {
			d, ok := localDecl(s)
			if !ok {
				return false
			}
			args, ok := callOn(d.Init, "Location", "Create")
			if !ok || argCount(args) != 2 {
				return false
			}
			if !memberOf(args.Args[0].Value, b.tokA, "SyntaxTree") {
				return false
			}
			if !isIdentRef(args.Args[1].Value, spanVar) {
				return false
			}
			locVar = d.Name.Text
			return true
		}},
		{IDDiagnosticMissing, IDDiagnosticIncorrect, func(s syntax.Stmt) bool {
			d, ok := localDecl(s)
			if !ok {
				return false
			}
			args, ok := callOn(d.Init, "Diagnostic", "Create")
			if !ok || argCount(args) < 2 {
				return false
			}
			rule, ok := identName(args.Args[0].Value)
			if !ok || !containsName(b.rules, rule) {
				return false
			}
			if !isIdentRef(args.Args[1].Value, locVar) {
				return false
			}
			diagVar = d.Name.Text
			return true
		}},
		{IDDiagnosticReportMissing, IDDiagnosticReportIncorrect, func(s syntax.Stmt) bool {
			es, ok := s.(*syntax.ExprStmt)
			if !ok {
				return false
			}
			args, ok := callOn(es.X, b.param, "ReportDiagnostic")
			if !ok || argCount(args) != 1 {
				return false
			}
			return isIdentRef(args.Args[0].Value, diagVar)
		}},
	}

	for i, st := range stages {
		s, ok := b.need(stmts, 3+i, st.missing, open)
		if !ok {
			return false
		}
		if !st.match(s) {
			b.report(st.incorrect, stmtSpan(s))
			return false
		}
	}
	return true
}

// ---------------------------------------------------------------------------
// Shape matchers
// ---------------------------------------------------------------------------

// matchDowncast accepts the two downcast forms:
//
//	var x = (IfStatementSyntax)context.Node;
//	var x = context.Node as IfStatementSyntax;
func (b *bodyCheck) matchDowncast(s syntax.Stmt) (string, bool) {
	d, ok := localDecl(s)
	if !ok {
		return "", false
	}
	switch init := d.Init.(type) {
	case *syntax.Cast:
		if init.Type.Name == targetNodeTypeName && memberOf(init.Value, b.param, "Node") {
			return d.Name.Text, true
		}
	case *syntax.AsExpr:
		if init.Type.Name == targetNodeTypeName && memberOf(init.Value, b.param, "Node") {
			return d.Name.Text, true
		}
	}
	return "", false
}

// matchKeywordExtract accepts "var kw = <tokA>.IfKeyword;".
func (b *bodyCheck) matchKeywordExtract(s syntax.Stmt) (string, bool) {
	d, ok := localDecl(s)
	if !ok || !memberOf(d.Init, b.tokA, "IfKeyword") {
		return "", false
	}
	return d.Name.Text, true
}

// matchTriviaExtract accepts "var t = <tokB>.TrailingTrivia.First();".
func (b *bodyCheck) matchTriviaExtract(s syntax.Stmt) (string, bool) {
	d, ok := localDecl(s)
	if !ok {
		return "", false
	}
	args, ok := chainCallOn(d.Init, b.tokB, "TrailingTrivia", "First")
	if !ok || argCount(args) != 0 {
		return "", false
	}
	return d.Name.Text, true
}

// matchGuard accepts an if statement whose condition satisfies cond and
// returns its block.
func (b *bodyCheck) matchGuard(s syntax.Stmt, cond func(syntax.Expr) bool) (*syntax.Block, bool) {
	iff, ok := s.(*syntax.If)
	if !ok || iff.Cond == nil || iff.Then == nil || iff.Else != nil {
		return nil, false
	}
	if !cond(iff.Cond) {
		return nil, false
	}
	return iff.Then, true
}

// isCountCheck matches "<tokB>.TrailingTrivia.Count == 1".
func (b *bodyCheck) isCountCheck(cond syntax.Expr) bool {
	bin, ok := cond.(*syntax.Binary)
	if !ok || bin.Op.Text != "==" {
		return false
	}
	if !chainMemberOf(bin.X, b.tokB, "TrailingTrivia", "Count") {
		return false
	}
	n, ok := numberLiteral(bin.Y)
	return ok && n == "1"
}

// isKindCheck matches the two accepted whitespace-kind forms:
//
//	<tokC>.Kind() == SyntaxKind.WhitespaceTrivia
//	<tokC>.IsKind(SyntaxKind.WhitespaceTrivia)
func (b *bodyCheck) isKindCheck(cond syntax.Expr) bool {
	if bin, ok := cond.(*syntax.Binary); ok {
		if bin.Op.Text != "==" {
			return false
		}
		args, ok := callOn(bin.X, b.tokC, "Kind")
		if !ok || argCount(args) != 0 {
			return false
		}
		return memberOf(bin.Y, "SyntaxKind", "WhitespaceTrivia")
	}
	args, ok := callOn(cond, b.tokC, "IsKind")
	if !ok || argCount(args) != 1 {
		return false
	}
	return memberOf(args.Args[0].Value, "SyntaxKind", "WhitespaceTrivia")
}

// isSpaceCheck matches `<tokC>.ToString() == " "`.
func (b *bodyCheck) isSpaceCheck(cond syntax.Expr) bool {
	bin, ok := cond.(*syntax.Binary)
	if !ok || bin.Op.Text != "==" {
		return false
	}
	args, ok := callOn(bin.X, b.tokC, "ToString")
	if !ok || argCount(args) != 0 {
		return false
	}
	s, ok := stringLiteral(bin.Y)
	return ok && s == " "
}

// isSpanStart accepts the direct and the one-level-indirect span start forms:
// "<recv>.SpanStart" and "<recv>.Span.Start".
func isSpanStart(e syntax.Expr, recv string) bool {
	if memberOf(e, recv, "SpanStart") {
		return true
	}
	return chainMemberOf(e, recv, "Span", "Start")
}

// isIdentRef matches a bare identifier with exactly the given name; an empty
// expected name never matches.
func isIdentRef(e syntax.Expr, want string) bool {
	if want == "" {
		return false
	}
	name, ok := identName(e)
	return ok && name == want
}

// scopeAnchor is the insertion anchor for a block's first statement: the
// block's open brace, or the owning if header when the brace is absent.
func scopeAnchor(owner *syntax.If, block *syntax.Block) source.Span {
	if block.Open.Absent() {
		return owner.HeaderSpan()
	}
	return block.Open.Span
}
