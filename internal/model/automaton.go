package model

import (
	"taml/internal/expr"
	"taml/internal/symbols"
)

// State is a location of the timed automaton. Until the type checker
// splits them out, rate expressions travel inside the invariant; the
// cost rate is filled in by that pass, not during construction.
type State struct {
	Sym             symbols.SymbolID
	Name            expr.ID
	Invariant       expr.ID
	ExponentialRate expr.ID
	CostRate        expr.ID
	Nr              int32
}

// Branchpoint is a zero-duration routing node. Edges may attach to it
// during construction; compiled models contain none.
type Branchpoint struct {
	Sym symbols.SymbolID
	Nr  int32
}

// Edge connects two endpoints of the same template, each a location or
// a branchpoint. The select frame holds the non-deterministic select
// quantifiers; SelectValues is filled by later expansion.
type Edge struct {
	Nr           int
	Control      bool
	ActName      string
	Src          Endpoint
	Dst          Endpoint
	Select       symbols.FrameID
	Guard        expr.ID
	Assign       expr.ID
	Sync         expr.ID
	Prob         expr.ID
	SelectValues []int32
}

func (e *Edge) clone() Edge {
	out := *e
	out.SelectValues = append([]int32(nil), e.SelectValues...)
	return out
}
