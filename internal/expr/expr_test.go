package expr

import (
	"testing"

	"taml/internal/source"
	"taml/internal/symbols"
)

func declareAll(t *testing.T, tbl *symbols.Table, frame symbols.FrameID, names ...string) []symbols.SymbolID {
	t.Helper()
	out := make([]symbols.SymbolID, len(names))
	for i, name := range names {
		id, ok := tbl.Declare(frame, name, symbols.NoTypeRef, source.Span{})
		if !ok {
			t.Fatalf("Declare(%s) rejected", name)
		}
		out[i] = id
	}
	return out
}

func TestEqualIgnoresSpans(t *testing.T) {
	tbl := symbols.NewTable(source.NewInterner())
	frame := tbl.NewFrame(symbols.NoFrameID)
	syms := declareAll(t, tbl, frame, "x", "y")

	a := NewArena()
	left := a.Binary(OpAdd,
		a.Ident(syms[0], source.Span{Start: 0, End: 1}),
		a.Ident(syms[1], source.Span{Start: 4, End: 5}),
		source.Span{Start: 0, End: 5})
	right := a.Binary(OpAdd,
		a.Ident(syms[0], source.Span{Start: 20, End: 21}),
		a.Ident(syms[1], source.Span{Start: 24, End: 25}),
		source.Span{Start: 20, End: 25})

	if !a.Equal(left, right) {
		t.Fatalf("Equal(x+y, x+y) = false, want true")
	}

	swapped := a.Binary(OpAdd,
		a.Ident(syms[1], source.Span{}),
		a.Ident(syms[0], source.Span{}),
		source.Span{})
	if a.Equal(left, swapped) {
		t.Fatalf("Equal(x+y, y+x) = true, want false")
	}
	if a.Equal(left, NoID) {
		t.Fatalf("Equal(expr, NoID) = true, want false")
	}
	if !a.Equal(NoID, NoID) {
		t.Fatalf("Equal(NoID, NoID) = false, want true")
	}
}

func TestFreeVarsDedupsInOrder(t *testing.T) {
	tbl := symbols.NewTable(source.NewInterner())
	frame := tbl.NewFrame(symbols.NoFrameID)
	syms := declareAll(t, tbl, frame, "a", "b")

	a := NewArena()
	// a + (b * a): a repeats but lists once, at its first occurrence.
	tree := a.Binary(OpAdd,
		a.Ident(syms[0], source.Span{}),
		a.Binary(OpMul, a.Ident(syms[1], source.Span{}), a.Ident(syms[0], source.Span{}), source.Span{}),
		source.Span{})

	got := a.FreeVars(tree)
	if len(got) != 2 || got[0] != syms[0] || got[1] != syms[1] {
		t.Fatalf("FreeVars = %v, want [%d %d]", got, syms[0], syms[1])
	}

	lit := a.Int(42, source.Span{})
	if vars := a.FreeVars(lit); len(vars) != 0 {
		t.Fatalf("FreeVars(42) = %v, want empty", vars)
	}
	if vars := a.FreeVars(NoID); vars != nil {
		t.Fatalf("FreeVars(NoID) = %v, want nil", vars)
	}
}

func TestMentions(t *testing.T) {
	tbl := symbols.NewTable(source.NewInterner())
	frame := tbl.NewFrame(symbols.NoFrameID)
	syms := declareAll(t, tbl, frame, "n", "other")

	a := NewArena()
	tree := a.Index(a.Ident(syms[0], source.Span{}), a.Int(3, source.Span{}), source.Span{})

	if !a.Mentions(tree, syms[0]) {
		t.Fatalf("Mentions(n[3], n) = false, want true")
	}
	if a.Mentions(tree, syms[1]) {
		t.Fatalf("Mentions(n[3], other) = true, want false")
	}
}

func TestRender(t *testing.T) {
	tbl := symbols.NewTable(source.NewInterner())
	frame := tbl.NewFrame(symbols.NoFrameID)
	syms := declareAll(t, tbl, frame, "x", "len", "pt")

	a := NewArena()
	tests := []struct {
		name string
		id   ID
		want string
	}{
		{"int", a.Int(-7, source.Span{}), "-7"},
		{"bool", a.Bool(true, source.Span{}), "true"},
		{"double", a.Double(2.5, source.Span{}), "2.5"},
		{"ident", a.Ident(syms[0], source.Span{}), "x"},
		{
			"precedence keeps parens",
			a.Binary(OpMul,
				a.Binary(OpAdd, a.Ident(syms[0], source.Span{}), a.Int(1, source.Span{}), source.Span{}),
				a.Int(2, source.Span{}),
				source.Span{}),
			"(x + 1) * 2",
		},
		{
			"precedence drops parens",
			a.Binary(OpAdd,
				a.Binary(OpMul, a.Ident(syms[0], source.Span{}), a.Int(2, source.Span{}), source.Span{}),
				a.Int(1, source.Span{}),
				source.Span{}),
			"x * 2 + 1",
		},
		{
			"call",
			a.Call(a.Ident(syms[1], source.Span{}), []ID{a.Ident(syms[0], source.Span{}), a.Int(0, source.Span{})}, source.Span{}),
			"len(x, 0)",
		},
		{
			"index and member",
			a.Member(a.Index(a.Ident(syms[2], source.Span{}), a.Int(1, source.Span{}), source.Span{}), tbl.Strings().Intern("loc"), source.Span{}),
			"pt[1].loc",
		},
		{
			"unary",
			a.Unary(OpNot, a.Ident(syms[0], source.Span{}), source.Span{}),
			"!x",
		},
		{"absent", NoID, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Render(tt.id, tbl); got != tt.want {
				t.Fatalf("Render = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCloneKeepsIDsAndDetaches(t *testing.T) {
	tbl := symbols.NewTable(source.NewInterner())
	frame := tbl.NewFrame(symbols.NoFrameID)
	syms := declareAll(t, tbl, frame, "v")

	a := NewArena()
	tree := a.Binary(OpLt, a.Ident(syms[0], source.Span{}), a.Int(10, source.Span{}), source.Span{})

	clone := a.Clone()
	if got := clone.Render(tree, tbl); got != "v < 10" {
		t.Fatalf("clone Render = %q, want %q", got, "v < 10")
	}

	clone.Int(99, source.Span{})
	if a.Len() == clone.Len() {
		t.Fatalf("allocation in clone affected original length")
	}

	// Args slices must not be shared.
	clone.Get(tree).Args[1] = clone.Int(0, source.Span{})
	if got := a.Render(tree, tbl); got != "v < 10" {
		t.Fatalf("original Render = %q after clone mutation, want %q", got, "v < 10")
	}
}
