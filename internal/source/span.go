package source

import (
	"fmt"
)

// Span marks a half-open byte range inside the document position stream.
// The builder assigns positions cumulatively across every declaration
// section it feeds into a document, so spans from different files stay
// comparable; Positions maps them back to file/line coordinates.
type Span struct {
	Start uint32 // inclusive
	End   uint32 // exclusive
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Cover widens s to include other.
func (s Span) Cover(other Span) Span {
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Before reports whether s starts strictly before other, with the end
// offset as tie-break. Used for deterministic diagnostic ordering.
func (s Span) Before(other Span) bool {
	if s.Start != other.Start {
		return s.Start < other.Start
	}
	return s.End < other.End
}
