package csharp

import (
	"sensei/internal/source"
	"sensei/internal/syntax"
)

// lexer scans the whole input up front; the parser works over the token slice
// with cheap save/restore backtracking.
type lexer struct {
	src []byte
	pos int
}

// lex tokenizes src, attaching leading and trailing trivia to each token.
func lex(src []byte) []tok {
	lx := &lexer{src: src}
	var toks []tok
	pending := lx.scanTrivia(false)
	for {
		t, ok := lx.scanToken()
		if !ok {
			toks = append(toks, tok{
				kind:    tokEOF,
				span:    source.Span{Start: lx.pos, End: lx.pos},
				leading: pending,
			})
			return toks
		}
		t.leading = pending
		t.trailing = lx.scanTrivia(true)
		pending = lx.scanTrivia(false)
		toks = append(toks, t)
	}
}

// scanTrivia collects whitespace and comments. In trailing mode it stops after
// consuming one end-of-line; in leading mode it consumes everything up to the
// next token.
func (lx *lexer) scanTrivia(trailing bool) []syntax.Trivia {
	var out []syntax.Trivia
	for lx.pos < len(lx.src) {
		start := lx.pos
		c := lx.src[lx.pos]
		switch {
		case c == ' ' || c == '\t':
			for lx.pos < len(lx.src) && (lx.src[lx.pos] == ' ' || lx.src[lx.pos] == '\t') {
				lx.pos++
			}
			out = append(out, lx.trivia(syntax.TriviaWhitespace, start))
		case c == '\r' || c == '\n':
			if c == '\r' && lx.pos+1 < len(lx.src) && lx.src[lx.pos+1] == '\n' {
				lx.pos += 2
			} else {
				lx.pos++
			}
			out = append(out, lx.trivia(syntax.TriviaEndOfLine, start))
			if trailing {
				return out
			}
		case c == '/' && lx.pos+1 < len(lx.src) && lx.src[lx.pos+1] == '/':
			for lx.pos < len(lx.src) && lx.src[lx.pos] != '\n' {
				lx.pos++
			}
			out = append(out, lx.trivia(syntax.TriviaComment, start))
		case c == '/' && lx.pos+1 < len(lx.src) && lx.src[lx.pos+1] == '*':
			lx.pos += 2
			for lx.pos+1 < len(lx.src) && !(lx.src[lx.pos] == '*' && lx.src[lx.pos+1] == '/') {
				lx.pos++
			}
			if lx.pos+1 < len(lx.src) {
				lx.pos += 2
			} else {
				lx.pos = len(lx.src)
			}
			out = append(out, lx.trivia(syntax.TriviaComment, start))
		default:
			return out
		}
	}
	return out
}

func (lx *lexer) trivia(kind syntax.TriviaKind, start int) syntax.Trivia {
	return syntax.Trivia{
		Kind: kind,
		Text: string(lx.src[start:lx.pos]),
		Span: source.Span{Start: start, End: lx.pos},
	}
}

// scanToken scans one significant token. Returns false at end of input.
func (lx *lexer) scanToken() (tok, bool) {
	if lx.pos >= len(lx.src) {
		return tok{}, false
	}
	start := lx.pos
	c := lx.src[lx.pos]
	switch {
	case isIdentStart(c):
		for lx.pos < len(lx.src) && isIdentPart(lx.src[lx.pos]) {
			lx.pos++
		}
		return lx.token(tokIdent, start), true
	case c >= '0' && c <= '9':
		for lx.pos < len(lx.src) && (isIdentPart(lx.src[lx.pos]) || lx.src[lx.pos] == '.') {
			lx.pos++
		}
		return lx.token(tokNumber, start), true
	case c == '"':
		lx.pos++
		for lx.pos < len(lx.src) && lx.src[lx.pos] != '"' && lx.src[lx.pos] != '\n' {
			if lx.src[lx.pos] == '\\' && lx.pos+1 < len(lx.src) {
				lx.pos++
			}
			lx.pos++
		}
		if lx.pos < len(lx.src) && lx.src[lx.pos] == '"' {
			lx.pos++
		}
		return lx.token(tokString, start), true
	case c == '=' && lx.pos+1 < len(lx.src) && lx.src[lx.pos+1] == '=':
		lx.pos += 2
		return lx.token(tokPunct, start), true
	case c == '!' && lx.pos+1 < len(lx.src) && lx.src[lx.pos+1] == '=':
		lx.pos += 2
		return lx.token(tokPunct, start), true
	case c == '=' && lx.pos+1 < len(lx.src) && lx.src[lx.pos+1] == '>':
		lx.pos += 2
		return lx.token(tokPunct, start), true
	default:
		lx.pos++
		return lx.token(tokPunct, start), true
	}
}

func (lx *lexer) token(kind tokKind, start int) tok {
	return tok{
		kind: kind,
		text: string(lx.src[start:lx.pos]),
		span: source.Span{Start: start, End: lx.pos},
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
