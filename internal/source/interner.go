package source

import (
	"slices"
)

type StringID uint32

const NoStringID StringID = 0

// Interner deduplicates identifier and label strings. ID 0 maps to the
// empty string so a zero value always reads back as "".
type Interner struct {
	byID  []string
	index map[string]StringID
}

func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""},
		index: map[string]StringID{"": 0},
	}
}

// Intern stores s and returns its ID, reusing the ID of an equal string.
func (i *Interner) Intern(s string) StringID {
	if id, ok := i.index[s]; ok {
		return id
	}
	// Own copy so the interner never pins a caller's backing buffer.
	cpy := string([]byte(s))
	id := StringID(len(i.byID))
	i.byID = append(i.byID, cpy)
	i.index[cpy] = id
	return id
}

// Lookup returns the string for id, or "" and false for an unknown ID.
func (i *Interner) Lookup(id StringID) (string, bool) {
	if !i.Has(id) {
		return "", false
	}
	return i.byID[id], true
}

// MustLookup panics on an unknown ID.
func (i *Interner) MustLookup(id StringID) string {
	s, ok := i.Lookup(id)
	if !ok {
		panic("source: invalid string ID")
	}
	return s
}

func (i *Interner) Has(id StringID) bool {
	return int(id) < len(i.byID)
}

// ID returns the ID already assigned to s without interning it.
func (i *Interner) ID(s string) (StringID, bool) {
	id, ok := i.index[s]
	return id, ok
}

// Len counts stored strings, including the reserved empty string.
func (i *Interner) Len() int {
	return len(i.byID)
}

// Snapshot returns a copy of all stored strings.
func (i *Interner) Snapshot() []string {
	return slices.Clone(i.byID)
}

// Clone returns an independent interner assigning the same IDs.
func (i *Interner) Clone() *Interner {
	out := &Interner{
		byID:  slices.Clone(i.byID),
		index: make(map[string]StringID, len(i.index)),
	}
	for s, id := range i.index {
		out.index[s] = id
	}
	return out
}
