package source

import (
	"testing"
)

func TestPositionsFind(t *testing.T) {
	var p Positions
	if !p.Add(0, 0, 1, "global.decl") {
		t.Fatalf("add first entry")
	}
	if !p.Add(40, 0, 1, "templates.Train.decl") {
		t.Fatalf("add second entry")
	}
	if !p.Add(90, 12, 3, "templates.Train.decl") {
		t.Fatalf("add third entry")
	}

	tests := []struct {
		name     string
		pos      uint32
		wantPath string
		wantLine uint32
		ok       bool
	}{
		{name: "first entry start", pos: 0, wantPath: "global.decl", wantLine: 1, ok: true},
		{name: "inside first entry", pos: 39, wantPath: "global.decl", wantLine: 1, ok: true},
		{name: "second entry start", pos: 40, wantPath: "templates.Train.decl", wantLine: 1, ok: true},
		{name: "past last entry", pos: 4000, wantPath: "templates.Train.decl", wantLine: 3, ok: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.Find(tt.pos)
			if ok != tt.ok {
				t.Fatalf("Find(%d) ok = %v, want %v", tt.pos, ok, tt.ok)
			}
			if got.Path != tt.wantPath || got.Line != tt.wantLine {
				t.Fatalf("Find(%d) = %q line %d, want %q line %d", tt.pos, got.Path, got.Line, tt.wantPath, tt.wantLine)
			}
		})
	}
}

func TestPositionsFindEmpty(t *testing.T) {
	var p Positions
	if _, ok := p.Find(0); ok {
		t.Fatalf("expected lookup on empty table to fail")
	}
}

func TestPositionsRejectsOutOfOrder(t *testing.T) {
	var p Positions
	p.Add(100, 0, 1, "a")
	if p.Add(50, 0, 1, "b") {
		t.Fatalf("expected out-of-order entry to be rejected")
	}
	if p.Len() != 1 {
		t.Fatalf("table length = %d, want 1", p.Len())
	}
}

func TestPositionsClone(t *testing.T) {
	var p Positions
	p.Add(0, 0, 1, "a")
	c := p.Clone()
	p.Add(10, 0, 2, "b")
	if c.Len() != 1 {
		t.Fatalf("clone grew with original: len = %d", c.Len())
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{Start: 10, End: 20}
	b := Span{Start: 5, End: 15}
	got := a.Cover(b)
	want := Span{Start: 5, End: 20}
	if got != want {
		t.Fatalf("Cover = %v, want %v", got, want)
	}
}

func TestSpanBefore(t *testing.T) {
	if !(Span{Start: 1, End: 2}).Before(Span{Start: 2, End: 3}) {
		t.Fatalf("expected earlier start to order first")
	}
	if !(Span{Start: 1, End: 2}).Before(Span{Start: 1, End: 5}) {
		t.Fatalf("expected shorter span to order first on equal start")
	}
}
