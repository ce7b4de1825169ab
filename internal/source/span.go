// Package source provides byte spans and line/column positions over a single
// source text. sensei analyzes exactly one file per pass, so there is no file
// set; a Span is just a half-open byte range into that file.
package source

import "fmt"

// Span is a half-open byte range [Start, End) into the source text.
type Span struct {
	Start int
	End   int
}

// FromBounds builds a span from explicit byte offsets.
func FromBounds(start, end int) Span {
	return Span{Start: start, End: end}
}

func (s Span) Empty() bool {
	return s.Start >= s.End
}

func (s Span) Len() int {
	return s.End - s.Start
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Contains reports whether other lies fully inside s.
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}
