package model

import (
	"taml/internal/expr"
	"taml/internal/symbols"
)

// Variable pairs a declared symbol with its initialiser.
type Variable struct {
	Sym  symbols.SymbolID
	Init expr.ID
}

// Function is a declared function. Changes and Depends start empty and
// are filled in by a later analysis pass, not during construction.
// Locals collects the function's own variables; Body is the opaque body
// expression the evaluator interprets.
type Function struct {
	Sym     symbols.SymbolID
	Frame   symbols.FrameID
	Changes map[symbols.SymbolID]struct{}
	Depends map[symbols.SymbolID]struct{}
	Locals  []Variable
	Body    expr.ID
}

// AddChange records a variable the function writes.
func (f *Function) AddChange(sym symbols.SymbolID) {
	if f.Changes == nil {
		f.Changes = make(map[symbols.SymbolID]struct{})
	}
	f.Changes[sym] = struct{}{}
}

// AddDepend records a variable the function reads.
func (f *Function) AddDepend(sym symbols.SymbolID) {
	if f.Depends == nil {
		f.Depends = make(map[symbols.SymbolID]struct{})
	}
	f.Depends[sym] = struct{}{}
}

func (f *Function) clone() Function {
	out := Function{
		Sym:    f.Sym,
		Frame:  f.Frame,
		Locals: append([]Variable(nil), f.Locals...),
		Body:   f.Body,
	}
	if f.Changes != nil {
		out.Changes = make(map[symbols.SymbolID]struct{}, len(f.Changes))
		for sym := range f.Changes {
			out.Changes[sym] = struct{}{}
		}
	}
	if f.Depends != nil {
		out.Depends = make(map[symbols.SymbolID]struct{}, len(f.Depends))
		for sym := range f.Depends {
			out.Depends[sym] = struct{}{}
		}
	}
	return out
}

// ProgressMeasure guards a progress expression used by liveness checks.
type ProgressMeasure struct {
	Guard   expr.ID
	Measure expr.ID
}

// IODecl records an input/output interface declaration for one instance.
type IODecl struct {
	InstanceName string
	Params       []expr.ID
	Inputs       []expr.ID
	Outputs      []expr.ID
	CSP          []expr.ID
}

func (d *IODecl) clone() IODecl {
	return IODecl{
		InstanceName: d.InstanceName,
		Params:       append([]expr.ID(nil), d.Params...),
		Inputs:       append([]expr.ID(nil), d.Inputs...),
		Outputs:      append([]expr.ID(nil), d.Outputs...),
		CSP:          append([]expr.ID(nil), d.CSP...),
	}
}

// GanttMap is one predicate-to-level mapping of a gantt chart entry.
type GanttMap struct {
	Parameters symbols.FrameID
	Predicate  expr.ID
	Mapping    expr.ID
}

// Gantt is a named gantt chart declaration.
type Gantt struct {
	Name       string
	Parameters symbols.FrameID
	Mapping    []GanttMap
}

func (g *Gantt) clone() Gantt {
	return Gantt{
		Name:       g.Name,
		Parameters: g.Parameters,
		Mapping:    append([]GanttMap(nil), g.Mapping...),
	}
}

// Declarations is one scope's worth of declared entities, owned either
// by the document (global scope) or by a template (local scope). The
// frame chains to the enclosing scope for name resolution.
type Declarations struct {
	Frame     symbols.FrameID
	Variables []Variable
	Functions []Function
	Progress  []ProgressMeasure
	IODecls   []IODecl
	Gantt     []Gantt
	TypeDefs  []symbols.SymbolID
}

func (d *Declarations) clone() Declarations {
	out := Declarations{
		Frame:     d.Frame,
		Variables: append([]Variable(nil), d.Variables...),
		Progress:  append([]ProgressMeasure(nil), d.Progress...),
		TypeDefs:  append([]symbols.SymbolID(nil), d.TypeDefs...),
	}
	if len(d.Functions) > 0 {
		out.Functions = make([]Function, len(d.Functions))
		for i := range d.Functions {
			out.Functions[i] = d.Functions[i].clone()
		}
	}
	if len(d.IODecls) > 0 {
		out.IODecls = make([]IODecl, len(d.IODecls))
		for i := range d.IODecls {
			out.IODecls[i] = d.IODecls[i].clone()
		}
	}
	if len(d.Gantt) > 0 {
		out.Gantt = make([]Gantt, len(d.Gantt))
		for i := range d.Gantt {
			out.Gantt[i] = d.Gantt[i].clone()
		}
	}
	return out
}
