package source

import (
	"sort"
)

// Line records where a slice of the position stream came from: the stream
// position where the section starts, the byte offset and line number of
// that point in the original file, and the file path.
type Line struct {
	Position uint32 // first stream position covered by this entry
	Offset   uint32 // byte offset in the original file
	Line     uint32 // 1-based line number in the original file
	Path     string
}

// Positions translates stream positions back to original file coordinates.
// The builder appends one entry per line (or per section) in ascending
// Position order while it feeds declarations into the document; lookups
// resolve to the entry covering the position.
type Positions struct {
	entries []Line
}

// Add appends a table entry. Entries must arrive in ascending Position
// order; a violation is the builder's bug and the entry is dropped.
func (p *Positions) Add(position, offset, line uint32, path string) bool {
	if n := len(p.entries); n > 0 && p.entries[n-1].Position > position {
		return false
	}
	p.entries = append(p.entries, Line{
		Position: position,
		Offset:   offset,
		Line:     line,
		Path:     path,
	})
	return true
}

// Find resolves a stream position to the entry covering it, i.e. the last
// entry whose Position is <= pos. The second result is false when the
// table is empty or pos precedes the first entry.
func (p *Positions) Find(pos uint32) (Line, bool) {
	i := sort.Search(len(p.entries), func(i int) bool {
		return p.entries[i].Position > pos
	})
	if i == 0 {
		return Line{}, false
	}
	return p.entries[i-1], true
}

func (p *Positions) Len() int {
	return len(p.entries)
}

// Entries exposes the table for read-only iteration.
func (p *Positions) Entries() []Line {
	return p.entries
}

// Clone returns an independent copy of the table.
func (p *Positions) Clone() Positions {
	out := Positions{}
	if len(p.entries) > 0 {
		out.entries = make([]Line, len(p.entries))
		copy(out.entries, p.entries)
	}
	return out
}
