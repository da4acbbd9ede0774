package symbols

import (
	"testing"

	"taml/internal/source"
)

func newTestTable() *Table {
	return NewTable(source.NewInterner())
}

func TestDeclareAndLookup(t *testing.T) {
	tbl := newTestTable()
	global := tbl.NewFrame(NoFrameID)

	id, ok := tbl.Declare(global, "clk", NoTypeRef, source.Span{Start: 4, End: 7})
	if !ok {
		t.Fatalf("Declare(clk) rejected")
	}
	if !id.IsValid() {
		t.Fatalf("Declare(clk) returned invalid id")
	}

	got, ok := tbl.Lookup(global, "clk")
	if !ok || got != id {
		t.Fatalf("Lookup(clk) = (%d, %v), want (%d, true)", got, ok, id)
	}
	if name := tbl.Name(id); name != "clk" {
		t.Fatalf("Name() = %q, want %q", name, "clk")
	}
	if _, ok := tbl.Lookup(global, "missing"); ok {
		t.Fatalf("Lookup(missing) = true, want false")
	}
}

func TestDeclareRejectsLocalDuplicate(t *testing.T) {
	tbl := newTestTable()
	global := tbl.NewFrame(NoFrameID)

	first, ok := tbl.Declare(global, "x", NoTypeRef, source.Span{})
	if !ok {
		t.Fatalf("first Declare(x) rejected")
	}
	if _, ok := tbl.Declare(global, "x", NoTypeRef, source.Span{}); ok {
		t.Fatalf("second Declare(x) accepted, want rejection")
	}
	if tbl.Size(global) != 1 {
		t.Fatalf("Size() = %d after rejected duplicate, want 1", tbl.Size(global))
	}
	if got, _ := tbl.Lookup(global, "x"); got != first {
		t.Fatalf("Lookup(x) = %d after rejected duplicate, want %d", got, first)
	}
}

func TestDeclareNormalizesNames(t *testing.T) {
	tbl := newTestTable()
	global := tbl.NewFrame(NoFrameID)

	// "é" composed vs "e" + combining acute: one identifier, two spellings.
	composed := "café"
	decomposed := "café"

	id, ok := tbl.Declare(global, composed, NoTypeRef, source.Span{})
	if !ok {
		t.Fatalf("Declare(composed) rejected")
	}
	if _, ok := tbl.Declare(global, decomposed, NoTypeRef, source.Span{}); ok {
		t.Fatalf("Declare(decomposed) accepted, want duplicate rejection")
	}
	got, ok := tbl.Lookup(global, decomposed)
	if !ok || got != id {
		t.Fatalf("Lookup(decomposed) = (%d, %v), want (%d, true)", got, ok, id)
	}
}

func TestLookupWalksParents(t *testing.T) {
	tbl := newTestTable()
	global := tbl.NewFrame(NoFrameID)
	local := tbl.NewFrame(global)

	outer, _ := tbl.Declare(global, "n", NoTypeRef, source.Span{})
	inner, ok := tbl.Declare(local, "n", NoTypeRef, source.Span{})
	if !ok {
		t.Fatalf("Declare(n) in child frame rejected; shadowing must be allowed across frames")
	}

	if got, _ := tbl.Lookup(local, "n"); got != inner {
		t.Fatalf("Lookup from child = %d, want inner %d", got, inner)
	}
	if got, _ := tbl.Lookup(global, "n"); got != outer {
		t.Fatalf("Lookup from global = %d, want outer %d", got, outer)
	}

	if _, ok := tbl.LookupLocal(local, "n"); !ok {
		t.Fatalf("LookupLocal(child, n) = false, want true")
	}
	other, _ := tbl.Declare(global, "only_global", NoTypeRef, source.Span{})
	if _, ok := tbl.LookupLocal(local, "only_global"); ok {
		t.Fatalf("LookupLocal(child, only_global) = true, want false")
	}
	if got, _ := tbl.Lookup(local, "only_global"); got != other {
		t.Fatalf("Lookup(child, only_global) = %d, want %d", got, other)
	}
}

func TestPushListsForeignSymbol(t *testing.T) {
	tbl := newTestTable()
	global := tbl.NewFrame(NoFrameID)
	params := tbl.NewFrame(global)

	sym, _ := tbl.Declare(global, "T", NoTypeRef, source.Span{})
	tbl.Push(params, sym)

	if tbl.Size(params) != 1 {
		t.Fatalf("Size(params) = %d, want 1", tbl.Size(params))
	}
	if got := tbl.At(params, 0); got != sym {
		t.Fatalf("At(params, 0) = %d, want %d", got, sym)
	}
	if got, _ := tbl.LookupLocal(params, "T"); got != sym {
		t.Fatalf("LookupLocal(params, T) = %d, want %d", got, sym)
	}
	// Declaring frame is unchanged by the extra listing.
	if f := tbl.Symbol(sym).Frame; f != global {
		t.Fatalf("Symbol.Frame = %d after Push, want %d", f, global)
	}
}

func TestRemoveKeepsOrder(t *testing.T) {
	tbl := newTestTable()
	frame := tbl.NewFrame(NoFrameID)

	a, _ := tbl.Declare(frame, "a", NoTypeRef, source.Span{})
	b, _ := tbl.Declare(frame, "b", NoTypeRef, source.Span{})
	c, _ := tbl.Declare(frame, "c", NoTypeRef, source.Span{})

	if !tbl.Remove(frame, b) {
		t.Fatalf("Remove(b) = false, want true")
	}
	if tbl.Remove(frame, b) {
		t.Fatalf("second Remove(b) = true, want false")
	}

	if tbl.Size(frame) != 2 {
		t.Fatalf("Size() = %d after remove, want 2", tbl.Size(frame))
	}
	if tbl.At(frame, 0) != a || tbl.At(frame, 1) != c {
		t.Fatalf("order after remove = [%d %d], want [%d %d]", tbl.At(frame, 0), tbl.At(frame, 1), a, c)
	}
	if _, ok := tbl.LookupLocal(frame, "b"); ok {
		t.Fatalf("LookupLocal(b) = true after remove, want false")
	}
	if got := tbl.IndexOf(frame, c); got != 1 {
		t.Fatalf("IndexOf(c) = %d after remove, want 1", got)
	}
}

func TestDataRoundTrip(t *testing.T) {
	tbl := newTestTable()
	frame := tbl.NewFrame(NoFrameID)

	sym, _ := tbl.Declare(frame, "s0", NoTypeRef, source.Span{})
	if got := tbl.Data(sym); got != nil {
		t.Fatalf("Data before SetData = %v, want nil", got)
	}
	type handle struct{ idx uint32 }
	tbl.SetData(sym, handle{idx: 9})
	got, ok := tbl.Data(sym).(handle)
	if !ok || got.idx != 9 {
		t.Fatalf("Data = %v, want handle{9}", tbl.Data(sym))
	}
}

func TestTableClone(t *testing.T) {
	strings := source.NewInterner()
	tbl := NewTable(strings)
	frame := tbl.NewFrame(NoFrameID)
	sym, _ := tbl.Declare(frame, "gate", NoTypeRef, source.Span{Start: 1, End: 5})

	clone := tbl.Clone(strings.Clone())

	// Same IDs resolve on both sides.
	if got, ok := clone.Lookup(frame, "gate"); !ok || got != sym {
		t.Fatalf("clone Lookup(gate) = (%d, %v), want (%d, true)", got, ok, sym)
	}

	// Mutating the clone leaves the original alone.
	clone.Declare(frame, "extra", NoTypeRef, source.Span{})
	if tbl.Size(frame) != 1 {
		t.Fatalf("original Size = %d after clone mutation, want 1", tbl.Size(frame))
	}
	if _, ok := tbl.Lookup(frame, "extra"); ok {
		t.Fatalf("original sees symbol declared in clone")
	}
}
