package symbols

import (
	"fmt"

	"fortio.org/safecast"
	"golang.org/x/text/unicode/norm"

	"taml/internal/source"
)

// Table stores every symbol and frame of one document. Index 0 of both
// arenas is reserved so that the zero ID never aliases a live entry.
//
// Names are interned after NFC normalization, so two spellings of the same
// identifier collide the way an editor would expect them to.
type Table struct {
	strings *source.Interner
	symbols []Symbol
	frames  []frameData
}

// NewTable builds an empty table sharing the document's string interner.
func NewTable(strings *source.Interner) *Table {
	return &Table{
		strings: strings,
		symbols: make([]Symbol, 1),
		frames:  make([]frameData, 1),
	}
}

// Strings exposes the interner the table resolves names against.
func (t *Table) Strings() *source.Interner { return t.strings }

// NewFrame allocates a frame chained to parent. Pass NoFrameID for the
// global frame.
func (t *Table) NewFrame(parent FrameID) FrameID {
	slot, err := safecast.Conv[uint32](len(t.frames))
	if err != nil {
		panic(fmt.Errorf("len(frames) overflow: %w", err))
	}
	t.frames = append(t.frames, frameData{
		parent: parent,
		index:  make(map[source.StringID]uint32),
	})
	return FrameID(slot)
}

// Parent returns the enclosing frame, or NoFrameID at the root.
func (t *Table) Parent(frame FrameID) FrameID {
	return t.frame(frame).parent
}

// Declare interns name, allocates a symbol and appends it to frame. It
// returns false without declaring anything when the frame already lists
// that name locally; the caller decides whether that is an error.
func (t *Table) Declare(frame FrameID, name string, typ TypeRef, pos source.Span) (SymbolID, bool) {
	nameID := t.strings.Intern(norm.NFC.String(name))
	fd := t.frame(frame)
	if _, dup := fd.index[nameID]; dup {
		return NoSymbolID, false
	}

	slot, err := safecast.Conv[uint32](len(t.symbols))
	if err != nil {
		panic(fmt.Errorf("len(symbols) overflow: %w", err))
	}
	id := SymbolID(slot)
	t.symbols = append(t.symbols, Symbol{
		Name:  nameID,
		Type:  typ,
		Frame: frame,
		Pos:   pos,
	})
	t.listSymbol(fd, id, nameID)
	return id, true
}

// Push lists an existing symbol in another frame without re-declaring it.
// Instance frames use this to lay out inherited parameters in a new order.
// The symbol keeps pointing at its declaring frame.
func (t *Table) Push(frame FrameID, sym SymbolID) {
	s := t.Symbol(sym)
	t.listSymbol(t.frame(frame), sym, s.Name)
}

func (t *Table) listSymbol(fd *frameData, id SymbolID, name source.StringID) {
	pos, err := safecast.Conv[uint32](len(fd.ordered))
	if err != nil {
		panic(fmt.Errorf("len(ordered) overflow: %w", err))
	}
	fd.ordered = append(fd.ordered, id)
	if _, taken := fd.index[name]; !taken {
		fd.index[name] = pos
	}
}

// Remove unlists sym from frame, keeping declaration order of the rest.
// The symbol itself stays allocated; only the listing goes away.
func (t *Table) Remove(frame FrameID, sym SymbolID) bool {
	fd := t.frame(frame)
	at := -1
	for i, id := range fd.ordered {
		if id == sym {
			at = i
			break
		}
	}
	if at < 0 {
		return false
	}
	fd.ordered = append(fd.ordered[:at], fd.ordered[at+1:]...)
	fd.index = make(map[source.StringID]uint32, len(fd.ordered))
	for i, id := range fd.ordered {
		name := t.symbols[id].Name
		if _, taken := fd.index[name]; !taken {
			fd.index[name] = uint32(i)
		}
	}
	return true
}

// LookupLocal resolves name in frame only.
func (t *Table) LookupLocal(frame FrameID, name string) (SymbolID, bool) {
	nameID, ok := t.strings.ID(norm.NFC.String(name))
	if !ok {
		return NoSymbolID, false
	}
	fd := t.frame(frame)
	pos, ok := fd.index[nameID]
	if !ok {
		return NoSymbolID, false
	}
	return fd.ordered[pos], true
}

// Lookup resolves name in frame, then in each enclosing frame.
func (t *Table) Lookup(frame FrameID, name string) (SymbolID, bool) {
	nameID, ok := t.strings.ID(norm.NFC.String(name))
	if !ok {
		return NoSymbolID, false
	}
	for f := frame; f.IsValid(); f = t.frames[f].parent {
		fd := &t.frames[f]
		if pos, hit := fd.index[nameID]; hit {
			return fd.ordered[pos], true
		}
	}
	return NoSymbolID, false
}

// Size reports how many symbols frame lists.
func (t *Table) Size(frame FrameID) int {
	return len(t.frame(frame).ordered)
}

// At returns the i-th listed symbol of frame.
func (t *Table) At(frame FrameID, i int) SymbolID {
	return t.frame(frame).ordered[i]
}

// IndexOf reports the listing position of sym in frame, or -1.
func (t *Table) IndexOf(frame FrameID, sym SymbolID) int {
	for i, id := range t.frame(frame).ordered {
		if id == sym {
			return i
		}
	}
	return -1
}

// Symbols returns the listing of frame in declaration order. Callers must
// not mutate the returned slice.
func (t *Table) Symbols(frame FrameID) []SymbolID {
	return t.frame(frame).ordered
}

// Symbol returns the stored symbol. The pointer is valid until the next
// Declare; hold on to the ID, not the pointer.
func (t *Table) Symbol(id SymbolID) *Symbol {
	if !id.IsValid() || int(id) >= len(t.symbols) {
		panic(fmt.Sprintf("symbols: invalid symbol id %d", id))
	}
	return &t.symbols[id]
}

// Name resolves the symbol's interned name.
func (t *Table) Name(id SymbolID) string {
	return t.strings.MustLookup(t.Symbol(id).Name)
}

// SetData attaches a declared-object handle to the symbol.
func (t *Table) SetData(id SymbolID, data any) {
	t.Symbol(id).Data = data
}

// Data returns the attached handle, or nil.
func (t *Table) Data(id SymbolID) any {
	return t.Symbol(id).Data
}

// SetType rebinds the symbol's type handle.
func (t *Table) SetType(id SymbolID, typ TypeRef) {
	t.Symbol(id).Type = typ
}

// Len reports the number of live symbols.
func (t *Table) Len() int { return len(t.symbols) - 1 }

// Frames reports the number of live frames.
func (t *Table) Frames() int { return len(t.frames) - 1 }

// Clone deep-copies the table against an already-cloned interner. Symbol
// and frame IDs stay stable across the copy; Data handles are copied
// shallowly since they are value handles, not pointers into the table.
func (t *Table) Clone(strings *source.Interner) *Table {
	out := &Table{
		strings: strings,
		symbols: append([]Symbol(nil), t.symbols...),
		frames:  make([]frameData, len(t.frames)),
	}
	for i := 1; i < len(t.frames); i++ {
		out.frames[i] = t.frames[i].clone()
	}
	return out
}

func (t *Table) frame(id FrameID) *frameData {
	if !id.IsValid() || int(id) >= len(t.frames) {
		panic(fmt.Sprintf("symbols: invalid frame id %d", id))
	}
	return &t.frames[id]
}
