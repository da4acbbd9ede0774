package model

import (
	"taml/internal/expr"
)

// InstanceLine is an actor lane of a live-sequence chart: an instance
// specialised to host scenario events, with an ordinal position among
// its template's lines. Lines start empty and receive their binding
// through BindInstanceLine.
type InstanceLine struct {
	Instance
	Nr int32
}

func (l *InstanceLine) clone() InstanceLine {
	return InstanceLine{Instance: l.Instance.clone(), Nr: l.Nr}
}

// Message is a scenario event sent from one instance line to another.
// Nr is the placement in the input file, -1 while unset; Location is
// the per-line ordinal the partial order is built from.
type Message struct {
	Nr         int
	Location   int
	Src        InstanceLineID
	Dst        InstanceLineID
	Label      expr.ID
	InPrechart bool
}

// Condition is a scenario event anchored at one or more instance
// lines. Hot conditions must hold; cold ones may fail and abort the
// chart benignly.
type Condition struct {
	Nr         int
	Location   int
	Anchors    []InstanceLineID
	Label      expr.ID
	InPrechart bool
	Hot        bool
}

func (c *Condition) clone() Condition {
	out := *c
	out.Anchors = append([]InstanceLineID(nil), c.Anchors...)
	return out
}

// AnchoredAt reports whether line is one of the condition's anchors.
func (c *Condition) AnchoredAt(line InstanceLineID) bool {
	for _, anchor := range c.Anchors {
		if anchor == line {
			return true
		}
	}
	return false
}

// Update is a scenario event anchored at exactly one instance line.
type Update struct {
	Nr         int
	Location   int
	Anchor     InstanceLineID
	Label      expr.ID
	InPrechart bool
}
