package source

import (
	"fmt"
	"sort"
)

// Text wraps a source file's contents with a precomputed line index, so byte
// offsets can be rendered as line:column pairs for humans.
type Text struct {
	Content []byte
	// lineStarts[i] is the byte offset of the first byte of line i (0-based).
	lineStarts []int
}

// NewText builds a Text with its line index.
func NewText(content []byte) *Text {
	starts := []int{0}
	for i, b := range content {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Text{Content: content, lineStarts: starts}
}

// Position is a 1-based line/column pair.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// PositionFor converts a byte offset into a 1-based Position. Offsets past the
// end of the text clamp to the final position.
func (t *Text) PositionFor(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(t.Content) {
		offset = len(t.Content)
	}
	line := sort.Search(len(t.lineStarts), func(i int) bool {
		return t.lineStarts[i] > offset
	}) - 1
	return Position{Line: line + 1, Column: offset - t.lineStarts[line] + 1}
}

// Slice returns the text covered by span, clamped to the content bounds.
func (t *Text) Slice(span Span) string {
	start, end := span.Start, span.End
	if start < 0 {
		start = 0
	}
	if end > len(t.Content) {
		end = len(t.Content)
	}
	if start >= end {
		return ""
	}
	return string(t.Content[start:end])
}

// Line returns the full text of the 1-based line containing offset, without
// its trailing newline. Used by the CLI to show diagnostic context.
func (t *Text) Line(offset int) string {
	pos := t.PositionFor(offset)
	start := t.lineStarts[pos.Line-1]
	end := len(t.Content)
	if pos.Line < len(t.lineStarts) {
		end = t.lineStarts[pos.Line] - 1
	}
	if start > end {
		start = end
	}
	return string(t.Content[start:end])
}
