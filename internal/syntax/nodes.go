package syntax

import "sensei/internal/source"

// ---------------------------------------------------------------------------
// Declarations
// ---------------------------------------------------------------------------

// Class is a class declaration with an optional base list.
type Class struct {
	base
	Modifiers []Token
	Keyword   Token // "class"
	Name      Token
	// Bases lists base type names in declaration order; the first entry is
	// the one the class gate inspects.
	Bases   []TypeRef
	Open    Token
	Members []Member
	Close   Token
}

func (*Class) Kind() Kind { return KindClass }

// Field is a field declaration with at most one declarator.
type Field struct {
	base
	Modifiers []Token
	Type      TypeRef
	Name      Token
	// Init is nil when the field has no initializer.
	Init Expr
	Semi Token
}

func (*Field) Kind() Kind  { return KindField }
func (*Field) memberNode() {}

// Property is a property declaration with an accessor list.
type Property struct {
	base
	Modifiers []Token
	Type      TypeRef
	Name      Token
	Accessors []*Accessor
}

func (*Property) Kind() Kind  { return KindProperty }
func (*Property) memberNode() {}

// Accessor is one accessor inside a property ("get" or "set").
type Accessor struct {
	base
	Keyword Token
	Body    *Block
}

func (*Accessor) Kind() Kind { return KindAccessor }

// Method is a method declaration.
type Method struct {
	base
	Modifiers  []Token
	ReturnType TypeRef
	Name       Token
	Open       Token
	Params     []*Parameter
	CloseParen Token
	Body       *Block
}

func (*Method) Kind() Kind  { return KindMethod }
func (*Method) memberNode() {}

// Parameter is one formal parameter of a method.
type Parameter struct {
	base
	Type TypeRef
	Name Token
}

func (*Parameter) Kind() Kind { return KindParameter }

// BadMember is a class member the front end could not shape.
type BadMember struct {
	base
}

func (*BadMember) Kind() Kind  { return KindBad }
func (*BadMember) memberNode() {}

// ---------------------------------------------------------------------------
// Statements
// ---------------------------------------------------------------------------

// Block is a braced statement list.
type Block struct {
	base
	Open  Token
	Stmts []Stmt
	Close Token
}

func (*Block) Kind() Kind { return KindBlock }
func (*Block) stmtNode()  {}

// LocalDecl is a local variable declaration with an initializer:
// "var name = expr;" or "Type name = expr;".
type LocalDecl struct {
	base
	// TypeTok is the declared type or the "var" keyword.
	TypeTok TypeRef
	Name    Token
	Eq      Token
	Init    Expr
	Semi    Token
}

func (*LocalDecl) Kind() Kind { return KindLocalDecl }
func (*LocalDecl) stmtNode()  {}

// ExprStmt is an expression used as a statement.
type ExprStmt struct {
	base
	X    Expr
	Semi Token
}

func (*ExprStmt) Kind() Kind { return KindExprStmt }
func (*ExprStmt) stmtNode()  {}

// If is an if statement. Else branches are not part of the tutorial shape but
// are kept so the engine can flag them as incorrect rather than unparseable.
type If struct {
	base
	IfKeyword  Token
	OpenParen  Token
	Cond       Expr
	CloseParen Token
	Then       *Block
	Else       Stmt
}

func (*If) Kind() Kind { return KindIf }
func (*If) stmtNode()  {}

// HeaderSpan returns the span from the if keyword through the start of the
// condition's closing parenthesis. Diagnostic placement narrows to this span
// for wrong statements that happen to be ifs.
func (s *If) HeaderSpan() source.Span {
	sp := s.IfKeyword.Span
	if !s.CloseParen.Absent() {
		sp.End = s.CloseParen.Span.Start
	} else if s.Cond != nil {
		sp.End = s.Cond.Span().End
	}
	return sp
}

// Return is a return statement with an optional result.
type Return struct {
	base
	Keyword Token
	Result  Expr
	Semi    Token
}

func (*Return) Kind() Kind { return KindReturn }
func (*Return) stmtNode()  {}

// BadStmt is a statement the front end could not shape.
type BadStmt struct {
	base
}

func (*BadStmt) Kind() Kind { return KindBad }
func (*BadStmt) stmtNode()  {}

// ---------------------------------------------------------------------------
// Expressions
// ---------------------------------------------------------------------------

// Ident is a bare identifier reference.
type Ident struct {
	base
	Tok Token
}

func (*Ident) Kind() Kind { return KindIdent }
func (*Ident) exprNode()  {}

// Name returns the identifier's text.
func (e *Ident) Name() string { return e.Tok.Text }

// MemberAccess is "expr.Name".
type MemberAccess struct {
	base
	X   Expr
	Dot Token
	Sel Token
}

func (*MemberAccess) Kind() Kind { return KindMemberAccess }
func (*MemberAccess) exprNode()  {}

// Invocation is "fun(args)".
type Invocation struct {
	base
	Fun  Expr
	Args *ArgList
}

func (*Invocation) Kind() Kind { return KindInvocation }
func (*Invocation) exprNode()  {}

// ArgList is a parenthesized, comma-separated argument list.
type ArgList struct {
	base
	Open  Token
	Args  []*Arg
	Close Token
}

func (*ArgList) Kind() Kind { return KindBad }

// Arg is one argument, optionally role-named ("name: value").
type Arg struct {
	base
	// NameColon is the role name before the colon; absent for positional
	// arguments.
	NameColon Token
	Value     Expr
}

func (*Arg) Kind() Kind { return KindArg }

// ObjectCreation is "new Type(args)".
type ObjectCreation struct {
	base
	NewKeyword Token
	Type       TypeRef
	Args       *ArgList
}

func (*ObjectCreation) Kind() Kind { return KindObjectCreation }
func (*ObjectCreation) exprNode()  {}

// Cast is "(Type)expr".
type Cast struct {
	base
	Open  Token
	Type  TypeRef
	Close Token
	Value Expr
}

func (*Cast) Kind() Kind { return KindCast }
func (*Cast) exprNode()  {}

// AsExpr is "expr as Type", the second accepted downcast form.
type AsExpr struct {
	base
	Value Expr
	AsKw  Token
	Type  TypeRef
}

func (*AsExpr) Kind() Kind { return KindAsExpr }
func (*AsExpr) exprNode()  {}

// Binary is "x op y"; the tutorial shape only ever needs "==".
type Binary struct {
	base
	X  Expr
	Op Token
	Y  Expr
}

func (*Binary) Kind() Kind { return KindBinary }
func (*Binary) exprNode()  {}

// LiteralKind classifies literal expressions.
type LiteralKind uint8

const (
	LitString LiteralKind = iota
	LitBool
	LitNumber
)

// Literal is a string, bool, or numeric literal.
type Literal struct {
	base
	LitKind LiteralKind
	Tok     Token
	// Value is the unquoted value for strings, the raw text otherwise.
	Value string
}

func (*Literal) Kind() Kind { return KindLiteral }
func (*Literal) exprNode()  {}

// BadExpr is an expression the front end could not shape.
type BadExpr struct {
	base
}

func (*BadExpr) Kind() Kind { return KindBad }
func (*BadExpr) exprNode()  {}
