package symbols

import "taml/internal/source"

// frameData is one lexical frame: an ordered list of symbols plus a name
// index for local lookup. Lookup misses continue in the parent frame.
type frameData struct {
	parent  FrameID
	ordered []SymbolID
	index   map[source.StringID]uint32
}

func (f *frameData) clone() frameData {
	out := frameData{
		parent:  f.parent,
		ordered: append([]SymbolID(nil), f.ordered...),
		index:   make(map[source.StringID]uint32, len(f.index)),
	}
	for name, pos := range f.index {
		out.index[name] = pos
	}
	return out
}
