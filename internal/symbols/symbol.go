package symbols

import "taml/internal/source"

// TypeRef is an opaque handle into whatever type representation the caller
// maintains. The table stores and compares it but never interprets it.
type TypeRef uint32

const NoTypeRef TypeRef = 0

// Symbol is a named declaration. A symbol is declared in exactly one frame
// but may be listed by several (instance frames re-list the parameters of
// the template they refine), so Frame records the declaring frame only.
//
// Data carries a handle to the declared object, when one exists: a state,
// an edge, an instance line. The table round-trips it untouched.
type Symbol struct {
	Name  source.StringID
	Type  TypeRef
	Frame FrameID
	Pos   source.Span
	Data  any
}
