// Package csharp is sensei's host front end: a lexer, parser, and class-scoped
// symbol binder for the small C#-style subset the tutorial exercises use.
//
// The parser is deliberately forgiving. The engine's whole job is to inspect
// half-written code, so anything that does not fit the subset becomes a Bad
// node spanning the offending text instead of a parse failure.
package csharp

import (
	"sensei/internal/source"
	"sensei/internal/syntax"
)

// tokKind classifies lexical tokens.
type tokKind uint8

const (
	tokEOF tokKind = iota
	tokIdent
	tokString
	tokNumber
	tokPunct
)

// tok is one lexical token with its attached trivia. Trailing trivia runs up
// to and including the first end-of-line after the token; everything beyond
// becomes the next token's leading trivia.
type tok struct {
	kind     tokKind
	text     string
	span     source.Span
	leading  []syntax.Trivia
	trailing []syntax.Trivia
}

// syntaxToken converts a lexical token into the facade's token type.
func (t tok) syntaxToken() syntax.Token {
	return syntax.Token{
		Text:     t.text,
		Span:     t.span,
		Leading:  t.leading,
		Trailing: t.trailing,
	}
}

// is reports whether the token is the given punctuation or keyword text.
func (t tok) is(text string) bool {
	return t.text == text && (t.kind == tokPunct || t.kind == tokIdent)
}

// keywords that can open a class-member modifier list.
var modifierWords = map[string]bool{
	"public":    true,
	"private":   true,
	"protected": true,
	"internal":  true,
	"static":    true,
	"const":     true,
	"override":  true,
	"readonly":  true,
	"abstract":  true,
	"sealed":    true,
	"virtual":   true,
	"async":     true,
}
