package csharp

import (
	"strings"

	"sensei/internal/source"
	"sensei/internal/syntax"
)

// File is the parse product for one source file.
type File struct {
	Text *source.Text
	// Classes are all class declarations found, in source order, including
	// classes nested in namespace blocks.
	Classes []*syntax.Class
}

// Parse tokenizes and parses src. It never fails: unrecognized constructs
// become Bad nodes and the rest of the file still parses.
func Parse(src []byte) *File {
	p := &parser{toks: lex(src)}
	f := &File{Text: source.NewText(src)}
	for !p.atEOF() {
		switch {
		case p.cur().is("using"):
			p.skipTo(";")
		case p.cur().is("namespace"):
			p.next() // namespace
			for p.cur().kind == tokIdent || p.cur().is(".") {
				p.next()
			}
			p.accept("{") // descend; the closing brace is skipped below
		case p.cur().is("}"):
			p.next()
		case p.startsClass():
			if c := p.parseClass(); c != nil {
				syntax.SetParents(c)
				f.Classes = append(f.Classes, c)
			}
		default:
			p.next()
		}
	}
	return f
}

type parser struct {
	toks []tok
	i    int
}

// ---------------------------------------------------------------------------
// Token plumbing
// ---------------------------------------------------------------------------

func (p *parser) cur() tok {
	if p.i < len(p.toks) {
		return p.toks[p.i]
	}
	return p.toks[len(p.toks)-1]
}

func (p *parser) peek(n int) tok {
	if p.i+n < len(p.toks) {
		return p.toks[p.i+n]
	}
	return p.toks[len(p.toks)-1]
}

func (p *parser) atEOF() bool { return p.cur().kind == tokEOF }

func (p *parser) next() tok {
	t := p.cur()
	if p.i < len(p.toks)-1 {
		p.i++
	}
	return t
}

// accept consumes the given punctuation/keyword if present.
func (p *parser) accept(text string) (syntax.Token, bool) {
	if p.cur().is(text) {
		return p.next().syntaxToken(), true
	}
	return syntax.Token{}, false
}

// skipTo consumes through the next occurrence of text at brace depth zero.
func (p *parser) skipTo(text string) {
	depth := 0
	for !p.atEOF() {
		t := p.next()
		switch {
		case t.is("{"):
			depth++
		case t.is("}"):
			if depth == 0 {
				return
			}
			depth--
		case depth == 0 && t.is(text):
			return
		}
	}
}

func (p *parser) here() int { return p.cur().span.Start }

// ---------------------------------------------------------------------------
// Declarations
// ---------------------------------------------------------------------------

// startsClass reports whether a modifier run followed by "class" begins here.
func (p *parser) startsClass() bool {
	for n := 0; ; n++ {
		t := p.peek(n)
		if t.kind == tokIdent && modifierWords[t.text] {
			continue
		}
		return t.is("class")
	}
}

func (p *parser) parseClass() *syntax.Class {
	c := &syntax.Class{}
	start := p.here()
	c.Modifiers = p.parseModifiers()
	kw, ok := p.accept("class")
	if !ok {
		return nil
	}
	c.Keyword = kw
	if p.cur().kind == tokIdent {
		c.Name = p.next().syntaxToken()
	}
	if _, ok := p.accept(":"); ok {
		for {
			t := p.parseType()
			if t.Absent() {
				break
			}
			c.Bases = append(c.Bases, t)
			if _, ok := p.accept(","); !ok {
				break
			}
		}
	}
	if open, ok := p.accept("{"); ok {
		c.Open = open
		for !p.atEOF() && !p.cur().is("}") {
			c.Members = append(c.Members, p.parseMember())
		}
		if cl, ok := p.accept("}"); ok {
			c.Close = cl
		}
	}
	end := c.Close.End()
	if end == 0 {
		end = p.here()
	}
	c.SetSpan(source.Span{Start: start, End: end})
	return c
}

func (p *parser) parseModifiers() []syntax.Token {
	var mods []syntax.Token
	for p.cur().kind == tokIdent && modifierWords[p.cur().text] {
		mods = append(mods, p.next().syntaxToken())
	}
	return mods
}

// parseMember parses one class member, falling back to a BadMember spanning
// the skipped text when the shape is unrecognizable.
func (p *parser) parseMember() syntax.Member {
	start := p.here()
	for p.cur().is("[") { // attribute list
		p.skipBalanced("[", "]")
	}
	mods := p.parseModifiers()

	if p.cur().is("class") {
		// Nested classes are outside the tutorial shape.
		p.skipTo("{")
		p.skipBalancedFrom("{", "}")
		return p.badMember(start)
	}

	typ := p.parseType()
	if typ.Absent() || p.cur().kind != tokIdent {
		p.recoverMember()
		return p.badMember(start)
	}
	name := p.next().syntaxToken()

	switch {
	case p.cur().is("("):
		return p.parseMethodRest(start, mods, typ, name)
	case p.cur().is("{"):
		return p.parsePropertyRest(start, mods, typ, name)
	case p.cur().is("=") || p.cur().is(";"):
		return p.parseFieldRest(start, mods, typ, name)
	default:
		p.recoverMember()
		return p.badMember(start)
	}
}

func (p *parser) badMember(start int) *syntax.BadMember {
	m := &syntax.BadMember{}
	end := p.here()
	if end <= start {
		end = start + 1
	}
	m.SetSpan(source.Span{Start: start, End: end})
	return m
}

func (p *parser) parseFieldRest(start int, mods []syntax.Token, typ syntax.TypeRef, name syntax.Token) syntax.Member {
	f := &syntax.Field{Modifiers: mods, Type: typ, Name: name}
	if _, ok := p.accept("="); ok {
		f.Init = p.parseExpr()
	}
	if semi, ok := p.accept(";"); ok {
		f.Semi = semi
	} else {
		p.recoverMember()
	}
	f.SetSpan(source.Span{Start: start, End: p.prevEnd(start)})
	return f
}

func (p *parser) parsePropertyRest(start int, mods []syntax.Token, typ syntax.TypeRef, name syntax.Token) syntax.Member {
	prop := &syntax.Property{Modifiers: mods, Type: typ, Name: name}
	p.accept("{")
	for !p.atEOF() && !p.cur().is("}") {
		a := p.parseAccessor()
		if a == nil {
			p.next()
			continue
		}
		prop.Accessors = append(prop.Accessors, a)
	}
	p.accept("}")
	prop.SetSpan(source.Span{Start: start, End: p.prevEnd(start)})
	return prop
}

func (p *parser) parseAccessor() *syntax.Accessor {
	if !p.cur().is("get") && !p.cur().is("set") {
		return nil
	}
	a := &syntax.Accessor{Keyword: p.next().syntaxToken()}
	switch {
	case p.cur().is("{"):
		a.Body = p.parseBlock()
	case p.cur().is("=>"):
		// Expression-bodied accessors are outside the tutorial shape;
		// keep the accessor, drop the body.
		p.skipTo(";")
	default:
		p.accept(";")
	}
	end := a.Keyword.End()
	if a.Body != nil {
		end = a.Body.Span().End
	}
	a.SetSpan(source.Span{Start: a.Keyword.Span.Start, End: end})
	return a
}

func (p *parser) parseMethodRest(start int, mods []syntax.Token, typ syntax.TypeRef, name syntax.Token) syntax.Member {
	m := &syntax.Method{Modifiers: mods, ReturnType: typ, Name: name}
	m.Open, _ = p.accept("(")
	for !p.atEOF() && !p.cur().is(")") {
		pt := p.parseType()
		if pt.Absent() {
			p.next()
			continue
		}
		param := &syntax.Parameter{Type: pt}
		if p.cur().kind == tokIdent {
			param.Name = p.next().syntaxToken()
		}
		end := param.Name.End()
		if end == 0 {
			end = pt.Span.End
		}
		param.SetSpan(source.Span{Start: pt.Span.Start, End: end})
		m.Params = append(m.Params, param)
		p.accept(",")
	}
	m.CloseParen, _ = p.accept(")")
	if p.cur().is("{") {
		m.Body = p.parseBlock()
	} else {
		p.accept(";")
	}
	m.SetSpan(source.Span{Start: start, End: p.prevEnd(start)})
	return m
}

// recoverMember skips to the end of the current member: a semicolon or a
// balanced brace block, stopping short of the class's closing brace.
func (p *parser) recoverMember() {
	for !p.atEOF() {
		switch {
		case p.cur().is(";"):
			p.next()
			return
		case p.cur().is("{"):
			p.skipBalancedFrom("{", "}")
			return
		case p.cur().is("}"):
			return
		default:
			p.next()
		}
	}
}

func (p *parser) skipBalanced(open, close string) {
	if !p.cur().is(open) {
		return
	}
	p.skipBalancedFrom(open, close)
}

func (p *parser) skipBalancedFrom(open, close string) {
	depth := 0
	for !p.atEOF() {
		t := p.next()
		if t.is(open) {
			depth++
		} else if t.is(close) {
			depth--
			if depth == 0 {
				return
			}
		}
	}
}

// prevEnd returns the end offset of the last consumed token.
func (p *parser) prevEnd(fallback int) int {
	if p.i > 0 {
		return p.toks[p.i-1].span.End
	}
	return fallback
}

// ---------------------------------------------------------------------------
// Types
// ---------------------------------------------------------------------------

// parseType parses a (possibly qualified, possibly generic) type name and
// flattens it to its written text with whitespace removed.
func (p *parser) parseType() syntax.TypeRef {
	if p.cur().kind != tokIdent || p.cur().is("new") {
		return syntax.TypeRef{}
	}
	start := p.cur().span.Start
	var sb strings.Builder
	sb.WriteString(p.next().text)
	for p.cur().is(".") && p.peek(1).kind == tokIdent {
		p.next()
		sb.WriteByte('.')
		sb.WriteString(p.next().text)
	}
	if p.cur().is("<") {
		if !p.flattenGenericArgs(&sb) {
			return syntax.TypeRef{Name: sb.String(), Span: source.Span{Start: start, End: p.prevEnd(start)}}
		}
	}
	for p.cur().is("[") && p.peek(1).is("]") {
		p.next()
		p.next()
		sb.WriteString("[]")
	}
	return syntax.TypeRef{Name: sb.String(), Span: source.Span{Start: start, End: p.prevEnd(start)}}
}

func (p *parser) flattenGenericArgs(sb *strings.Builder) bool {
	save := p.i
	var tmp strings.Builder
	tmp.WriteByte('<')
	p.next() // <
	for {
		arg := p.parseType()
		if arg.Absent() {
			p.i = save
			return false
		}
		tmp.WriteString(arg.Name)
		if p.cur().is(",") {
			p.next()
			tmp.WriteByte(',')
			continue
		}
		break
	}
	if !p.cur().is(">") {
		p.i = save
		return false
	}
	p.next()
	tmp.WriteByte('>')
	sb.WriteString(tmp.String())
	return true
}

// ---------------------------------------------------------------------------
// Statements
// ---------------------------------------------------------------------------

func (p *parser) parseBlock() *syntax.Block {
	b := &syntax.Block{}
	b.Open, _ = p.accept("{")
	for !p.atEOF() && !p.cur().is("}") {
		b.Stmts = append(b.Stmts, p.parseStmt())
	}
	b.Close, _ = p.accept("}")
	end := b.Close.End()
	if end == 0 {
		end = p.here()
	}
	b.SetSpan(source.Span{Start: b.Open.Span.Start, End: end})
	return b
}

func (p *parser) parseStmt() syntax.Stmt {
	start := p.here()
	switch {
	case p.cur().is("{"):
		return p.parseBlock()
	case p.cur().is("if"):
		return p.parseIf()
	case p.cur().is("return"):
		r := &syntax.Return{Keyword: p.next().syntaxToken()}
		if !p.cur().is(";") && !p.cur().is("}") {
			r.Result = p.parseExpr()
		}
		r.Semi, _ = p.accept(";")
		r.SetSpan(source.Span{Start: start, End: p.prevEnd(start)})
		return r
	case p.startsLocalDecl():
		return p.parseLocalDecl()
	default:
		x := p.parseExpr()
		if _, bad := x.(*syntax.BadExpr); bad {
			return p.badStmt(start)
		}
		s := &syntax.ExprStmt{X: x}
		if semi, ok := p.accept(";"); ok {
			s.Semi = semi
		} else if !p.cur().is("}") {
			return p.badStmt(start)
		}
		s.SetSpan(source.Span{Start: start, End: p.prevEnd(start)})
		return s
	}
}

func (p *parser) badStmt(start int) syntax.Stmt {
	// Swallow through the statement boundary so parsing can continue.
	for !p.atEOF() && !p.cur().is(";") && !p.cur().is("}") && !p.cur().is("{") {
		p.next()
	}
	if p.cur().is(";") {
		p.next()
	} else if p.cur().is("{") {
		p.skipBalancedFrom("{", "}")
	}
	s := &syntax.BadStmt{}
	end := p.prevEnd(start)
	if end <= start {
		end = start + 1
	}
	s.SetSpan(source.Span{Start: start, End: end})
	return s
}

func (p *parser) parseIf() syntax.Stmt {
	s := &syntax.If{}
	s.IfKeyword, _ = p.accept("if")
	s.OpenParen, _ = p.accept("(")
	if !p.cur().is(")") {
		s.Cond = p.parseExpr()
	}
	s.CloseParen, _ = p.accept(")")
	if p.cur().is("{") {
		s.Then = p.parseBlock()
	} else if !p.cur().is("}") && !p.atEOF() {
		// Unbraced body: wrap the single statement in a synthetic block so
		// downstream code only deals with blocks.
		inner := p.parseStmt()
		blk := &syntax.Block{Stmts: []syntax.Stmt{inner}}
		blk.SetSpan(inner.Span())
		s.Then = blk
	}
	if p.cur().is("else") {
		p.next()
		s.Else = p.parseStmt()
	}
	end := p.prevEnd(s.IfKeyword.Span.Start)
	s.SetSpan(source.Span{Start: s.IfKeyword.Span.Start, End: end})
	return s
}

// startsLocalDecl looks ahead for "var name =", "Type name =" or "Type name ;".
func (p *parser) startsLocalDecl() bool {
	if p.cur().kind != tokIdent {
		return false
	}
	save := p.i
	defer func() { p.i = save }()
	typ := p.parseType()
	if typ.Absent() {
		return false
	}
	if p.cur().kind != tokIdent {
		return false
	}
	p.next()
	return p.cur().is("=") || p.cur().is(";")
}

func (p *parser) parseLocalDecl() syntax.Stmt {
	start := p.here()
	d := &syntax.LocalDecl{}
	d.TypeTok = p.parseType()
	d.Name = p.next().syntaxToken()
	if eq, ok := p.accept("="); ok {
		d.Eq = eq
		d.Init = p.parseExpr()
	}
	if semi, ok := p.accept(";"); ok {
		d.Semi = semi
	}
	d.SetSpan(source.Span{Start: start, End: p.prevEnd(start)})
	return d
}

// ---------------------------------------------------------------------------
// Expressions
// ---------------------------------------------------------------------------

func (p *parser) parseExpr() syntax.Expr {
	return p.parseEquality()
}

func (p *parser) parseEquality() syntax.Expr {
	x := p.parseAs()
	for p.cur().is("==") || p.cur().is("!=") {
		op := p.next().syntaxToken()
		y := p.parseAs()
		b := &syntax.Binary{X: x, Op: op, Y: y}
		b.SetSpan(x.Span().Cover(y.Span()))
		x = b
	}
	return x
}

func (p *parser) parseAs() syntax.Expr {
	x := p.parsePostfix()
	for p.cur().is("as") {
		kw := p.next().syntaxToken()
		typ := p.parseType()
		a := &syntax.AsExpr{Value: x, AsKw: kw, Type: typ}
		end := typ.Span.End
		if end == 0 {
			end = kw.End()
		}
		a.SetSpan(source.Span{Start: x.Span().Start, End: end})
		x = a
	}
	return x
}

func (p *parser) parsePostfix() syntax.Expr {
	x := p.parsePrimary()
	for {
		switch {
		case p.cur().is(".") && p.peek(1).kind == tokIdent:
			dot := p.next().syntaxToken()
			sel := p.next().syntaxToken()
			ma := &syntax.MemberAccess{X: x, Dot: dot, Sel: sel}
			ma.SetSpan(source.Span{Start: x.Span().Start, End: sel.End()})
			x = ma
		case p.cur().is("("):
			args := p.parseArgList()
			inv := &syntax.Invocation{Fun: x, Args: args}
			inv.SetSpan(source.Span{Start: x.Span().Start, End: args.Span().End})
			x = inv
		default:
			return x
		}
	}
}

func (p *parser) parseArgList() *syntax.ArgList {
	al := &syntax.ArgList{}
	al.Open, _ = p.accept("(")
	for !p.atEOF() && !p.cur().is(")") {
		a := &syntax.Arg{}
		start := p.here()
		if p.cur().kind == tokIdent && p.peek(1).is(":") {
			a.NameColon = p.next().syntaxToken()
			p.next() // :
		}
		a.Value = p.parseExpr()
		a.SetSpan(source.Span{Start: start, End: p.prevEnd(start)})
		al.Args = append(al.Args, a)
		if _, ok := p.accept(","); !ok {
			break
		}
	}
	al.Close, _ = p.accept(")")
	end := al.Close.End()
	if end == 0 {
		end = p.prevEnd(al.Open.Span.Start)
	}
	al.SetSpan(source.Span{Start: al.Open.Span.Start, End: end})
	return al
}

func (p *parser) parsePrimary() syntax.Expr {
	t := p.cur()
	switch {
	case t.is("new"):
		kw := p.next().syntaxToken()
		oc := &syntax.ObjectCreation{NewKeyword: kw}
		oc.Type = p.parseType()
		if p.cur().is("(") {
			oc.Args = p.parseArgList()
		}
		oc.SetSpan(source.Span{Start: kw.Span.Start, End: p.prevEnd(kw.Span.Start)})
		return oc
	case t.is("true") || t.is("false"):
		lit := &syntax.Literal{LitKind: syntax.LitBool, Tok: p.next().syntaxToken()}
		lit.Value = lit.Tok.Text
		lit.SetSpan(lit.Tok.Span)
		return lit
	case t.kind == tokIdent:
		id := &syntax.Ident{Tok: p.next().syntaxToken()}
		id.SetSpan(id.Tok.Span)
		return id
	case t.kind == tokString:
		lit := &syntax.Literal{LitKind: syntax.LitString, Tok: p.next().syntaxToken()}
		lit.Value = unquote(lit.Tok.Text)
		lit.SetSpan(lit.Tok.Span)
		return lit
	case t.kind == tokNumber:
		lit := &syntax.Literal{LitKind: syntax.LitNumber, Tok: p.next().syntaxToken()}
		lit.Value = lit.Tok.Text
		lit.SetSpan(lit.Tok.Span)
		return lit
	case t.is("("):
		return p.parseParenOrCast()
	default:
		bad := &syntax.BadExpr{}
		bad.SetSpan(t.span)
		return bad
	}
}

// parseParenOrCast disambiguates "(Type)expr" from "(expr)". A cast needs a
// bare type inside the parens and an expression immediately after them.
func (p *parser) parseParenOrCast() syntax.Expr {
	save := p.i
	open, _ := p.accept("(")
	typ := p.parseType()
	if !typ.Absent() {
		if closeTok, ok := p.accept(")"); ok && p.startsExpr() {
			c := &syntax.Cast{Open: open, Type: typ, Close: closeTok}
			c.Value = p.parsePostfix()
			c.SetSpan(source.Span{Start: open.Span.Start, End: c.Value.Span().End})
			return c
		}
	}
	p.i = save
	p.accept("(")
	inner := p.parseExpr()
	p.accept(")")
	return inner
}

func (p *parser) startsExpr() bool {
	t := p.cur()
	return t.kind == tokIdent || t.kind == tokString || t.kind == tokNumber ||
		t.is("(") || t.is("new")
}

// unquote strips the surrounding quotes and resolves the two escapes the
// tutorial sources can contain.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' {
		s = s[1:]
		if s[len(s)-1] == '"' {
			s = s[:len(s)-1]
		}
	}
	if !strings.Contains(s, `\`) {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
			switch s[i] {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			default:
				sb.WriteByte(s[i])
			}
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
