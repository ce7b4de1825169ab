// Package syntax defines the parsed-tree facade the conformance engine
// consumes: a closed set of node shapes for the tutorial's C#-style surface
// syntax, with byte spans, parent links, and tokens that keep their trivia.
//
// The set is deliberately small. Anything the front end cannot shape into one
// of these nodes becomes a Bad node rather than a parse error, because the
// engine must be able to inspect half-written code.
package syntax

import "sensei/internal/source"

// Kind discriminates the closed set of node shapes.
type Kind uint8

const (
	KindBad Kind = iota
	KindClass
	KindField
	KindProperty
	KindAccessor
	KindMethod
	KindParameter
	KindBlock
	KindLocalDecl
	KindExprStmt
	KindIf
	KindReturn
	KindIdent
	KindMemberAccess
	KindInvocation
	KindObjectCreation
	KindCast
	KindAsExpr
	KindBinary
	KindLiteral
	KindArg
)

var kindNames = [...]string{
	KindBad:            "bad",
	KindClass:          "class",
	KindField:          "field",
	KindProperty:       "property",
	KindAccessor:       "accessor",
	KindMethod:         "method",
	KindParameter:      "parameter",
	KindBlock:          "block",
	KindLocalDecl:      "local-declaration",
	KindExprStmt:       "expression-statement",
	KindIf:             "if",
	KindReturn:         "return",
	KindIdent:          "identifier",
	KindMemberAccess:   "member-access",
	KindInvocation:     "invocation",
	KindObjectCreation: "object-creation",
	KindCast:           "cast",
	KindAsExpr:         "as-expression",
	KindBinary:         "binary",
	KindLiteral:        "literal",
	KindArg:            "argument",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Node is the common surface of every tree node.
type Node interface {
	Kind() Kind
	Span() source.Span
	Parent() Node
	setParent(Node)
}

// Stmt is implemented by statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is implemented by expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Member is implemented by class members (fields, properties, methods).
type Member interface {
	Node
	memberNode()
}

// base carries the span and parent link shared by all nodes.
type base struct {
	span   source.Span
	parent Node
}

func (b *base) Span() source.Span { return b.span }
func (b *base) Parent() Node      { return b.parent }
func (b *base) setParent(p Node)  { b.parent = p }

// SetSpan is used by the front end while building nodes.
func (b *base) SetSpan(s source.Span) { b.span = s }

// TriviaKind classifies a single trivia element attached to a token.
type TriviaKind uint8

const (
	TriviaWhitespace TriviaKind = iota
	TriviaEndOfLine
	TriviaComment
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaWhitespace:
		return "WhitespaceTrivia"
	case TriviaEndOfLine:
		return "EndOfLineTrivia"
	case TriviaComment:
		return "CommentTrivia"
	}
	return "UnknownTrivia"
}

// Trivia is one whitespace/comment run attached to a token.
type Trivia struct {
	Kind TriviaKind
	Text string
	Span source.Span
}

// Token is a lexical token with its surrounding trivia. The zero Token (empty
// Text) means "absent".
type Token struct {
	Text     string
	Span     source.Span
	Leading  []Trivia
	Trailing []Trivia
}

// Absent reports whether the token is the zero "no such token" value.
func (t Token) Absent() bool { return t.Text == "" }

// End returns the byte offset just past the token.
func (t Token) End() int { return t.Span.End }

// TypeRef is a (possibly qualified) type name as written in source.
type TypeRef struct {
	Name string
	Span source.Span
}

// Absent reports whether no type was written.
func (t TypeRef) Absent() bool { return t.Name == "" }
