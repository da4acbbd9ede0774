package model

import (
	"fmt"

	"taml/internal/expr"
	"taml/internal/symbols"
)

// Template is a parameterized automaton definition. It is at once the
// trivial instance of itself (zero bound parameters) and a declaration
// scope, so it composes both capabilities. Timed-automaton templates
// fill States, Branchpoints and Edges; scenario templates fill Lines,
// Messages, Conditions and Updates instead.
type Template struct {
	Instance
	Declarations

	Init         symbols.SymbolID
	TemplateSet  symbols.FrameID
	States       []State
	Branchpoints []Branchpoint
	Edges        []Edge
	DynamicEvals []expr.ID
	IsTA         bool

	Lines      []InstanceLine
	Messages   []Message
	Conditions []Condition
	Updates    []Update

	Type        string
	Mode        string
	HasPrechart bool
	Dynamic     bool
	DynIndex    int
	IsDefined   bool
}

// AddDynamicEval registers an expression evaluated on dynamic spawn and
// returns its index.
func (t *Template) AddDynamicEval(e expr.ID) int {
	t.DynamicEvals = append(t.DynamicEvals, e)
	return len(t.DynamicEvals) - 1
}

// IsInvariant reports whether the scenario's type declares it an
// invariant chart.
func (t *Template) IsInvariant() bool { return t.Type == "invariant" }

// State resolves a location ID of this template.
func (t *Template) State(id StateID) *State {
	if !id.IsValid() || int(id) > len(t.States) {
		panic(fmt.Sprintf("model: invalid state id %d", id))
	}
	return &t.States[id-1]
}

// Branchpoint resolves a branchpoint ID of this template.
func (t *Template) Branchpoint(id BranchpointID) *Branchpoint {
	if !id.IsValid() || int(id) > len(t.Branchpoints) {
		panic(fmt.Sprintf("model: invalid branchpoint id %d", id))
	}
	return &t.Branchpoints[id-1]
}

// Edge resolves an edge ID of this template.
func (t *Template) Edge(id EdgeID) *Edge {
	if !id.IsValid() || int(id) > len(t.Edges) {
		panic(fmt.Sprintf("model: invalid edge id %d", id))
	}
	return &t.Edges[id-1]
}

// Line resolves an instance line ID of this template.
func (t *Template) Line(id InstanceLineID) *InstanceLine {
	if !id.IsValid() || int(id) > len(t.Lines) {
		panic(fmt.Sprintf("model: invalid instance line id %d", id))
	}
	return &t.Lines[id-1]
}

// Message resolves a message ID of this template.
func (t *Template) Message(id MessageID) *Message {
	if !id.IsValid() || int(id) > len(t.Messages) {
		panic(fmt.Sprintf("model: invalid message id %d", id))
	}
	return &t.Messages[id-1]
}

// Condition resolves a condition ID of this template.
func (t *Template) Condition(id ConditionID) *Condition {
	if !id.IsValid() || int(id) > len(t.Conditions) {
		panic(fmt.Sprintf("model: invalid condition id %d", id))
	}
	return &t.Conditions[id-1]
}

// Update resolves an update ID of this template.
func (t *Template) Update(id UpdateID) *Update {
	if !id.IsValid() || int(id) > len(t.Updates) {
		panic(fmt.Sprintf("model: invalid update id %d", id))
	}
	return &t.Updates[id-1]
}

// GetCondition finds the first condition anchored at line with the
// given location ordinal.
func (t *Template) GetCondition(line InstanceLineID, y int) (ConditionID, bool) {
	for i := range t.Conditions {
		if t.Conditions[i].Location == y && t.Conditions[i].AnchoredAt(line) {
			return ConditionID(i + 1), true
		}
	}
	return NoConditionID, false
}

// GetConditionOnLines finds the first condition at ordinal y anchored
// at any of the lines, checked in the order given.
func (t *Template) GetConditionOnLines(lines []InstanceLineID, y int) (ConditionID, bool) {
	for _, line := range lines {
		if id, ok := t.GetCondition(line, y); ok {
			return id, true
		}
	}
	return NoConditionID, false
}

// GetUpdate finds the first update anchored at line with the given
// location ordinal.
func (t *Template) GetUpdate(line InstanceLineID, y int) (UpdateID, bool) {
	for i := range t.Updates {
		if t.Updates[i].Location == y && t.Updates[i].Anchor == line {
			return UpdateID(i + 1), true
		}
	}
	return NoUpdateID, false
}

// GetUpdateOnLines finds the first update at ordinal y anchored at any
// of the lines, checked in the order given.
func (t *Template) GetUpdateOnLines(lines []InstanceLineID, y int) (UpdateID, bool) {
	for _, line := range lines {
		if id, ok := t.GetUpdate(line, y); ok {
			return id, true
		}
	}
	return NoUpdateID, false
}

func (t *Template) clone() Template {
	out := Template{
		Instance:     t.Instance.clone(),
		Declarations: t.Declarations.clone(),
		Init:         t.Init,
		TemplateSet:  t.TemplateSet,
		States:       append([]State(nil), t.States...),
		Branchpoints: append([]Branchpoint(nil), t.Branchpoints...),
		DynamicEvals: append([]expr.ID(nil), t.DynamicEvals...),
		IsTA:         t.IsTA,
		Messages:     append([]Message(nil), t.Messages...),
		Updates:      append([]Update(nil), t.Updates...),
		Type:         t.Type,
		Mode:         t.Mode,
		HasPrechart:  t.HasPrechart,
		Dynamic:      t.Dynamic,
		DynIndex:     t.DynIndex,
		IsDefined:    t.IsDefined,
	}
	if len(t.Edges) > 0 {
		out.Edges = make([]Edge, len(t.Edges))
		for i := range t.Edges {
			out.Edges[i] = t.Edges[i].clone()
		}
	}
	if len(t.Lines) > 0 {
		out.Lines = make([]InstanceLine, len(t.Lines))
		for i := range t.Lines {
			out.Lines[i] = t.Lines[i].clone()
		}
	}
	if len(t.Conditions) > 0 {
		out.Conditions = make([]Condition, len(t.Conditions))
		for i := range t.Conditions {
			out.Conditions[i] = t.Conditions[i].clone()
		}
	}
	return out
}
