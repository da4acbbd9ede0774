package model

import (
	"strings"

	"taml/internal/expr"
	"taml/internal/symbols"
)

// Instance is a (possibly partial) binding of a template's parameters
// to argument expressions. Every template is also the trivial instance
// of itself, and instances of instances are flattened: Parameters holds
// both unbound and bound symbols, unbound first, so that
//
//	Unbound + len(Mapping) == frame size
//
// always holds. Mapping binds exactly the suffix. Arguments counts how
// many bindings the whole chain has accumulated. Restricted collects
// the symbols that feed array sizes, directly or through earlier
// bindings; arguments for restricted positions must not depend on free
// process parameters.
type Instance struct {
	Sym        symbols.SymbolID
	Parameters symbols.FrameID
	Mapping    map[symbols.SymbolID]expr.ID
	Arguments  int
	Unbound    int
	Template   TemplateID
	Restricted map[symbols.SymbolID]struct{}
}

// IsClosed reports whether every parameter is bound. A closed instance
// accepts no further arguments.
func (i *Instance) IsClosed() bool { return i.Unbound == 0 }

// IsRestricted reports whether sym is in the restricted set.
func (i *Instance) IsRestricted(sym symbols.SymbolID) bool {
	_, ok := i.Restricted[sym]
	return ok
}

func (i *Instance) clone() Instance {
	out := *i
	if i.Mapping != nil {
		out.Mapping = make(map[symbols.SymbolID]expr.ID, len(i.Mapping))
		for sym, arg := range i.Mapping {
			out.Mapping[sym] = arg
		}
	}
	if i.Restricted != nil {
		out.Restricted = make(map[symbols.SymbolID]struct{}, len(i.Restricted))
		for sym := range i.Restricted {
			out.Restricted[sym] = struct{}{}
		}
	}
	return out
}

// WriteParameters renders the unbound parameter names, the ones this
// instance still exposes.
func (i *Instance) WriteParameters(tbl *symbols.Table) string {
	var b strings.Builder
	for idx := 0; idx < i.Unbound; idx++ {
		if idx > 0 {
			b.WriteString(", ")
		}
		b.WriteString(tbl.Name(tbl.At(i.Parameters, idx)))
	}
	return b.String()
}

// WriteMapping renders every binding as "param = argument" in frame
// order over the bound suffix.
func (i *Instance) WriteMapping(tbl *symbols.Table, exprs *expr.Arena) string {
	var b strings.Builder
	size := tbl.Size(i.Parameters)
	for idx := i.Unbound; idx < size; idx++ {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		param := tbl.At(i.Parameters, idx)
		b.WriteString(tbl.Name(param))
		b.WriteString(" = ")
		b.WriteString(exprs.Render(i.Mapping[param], tbl))
	}
	return b.String()
}

// WriteArguments renders the bound argument expressions alone, in the
// same order WriteMapping uses.
func (i *Instance) WriteArguments(tbl *symbols.Table, exprs *expr.Arena) string {
	var b strings.Builder
	size := tbl.Size(i.Parameters)
	for idx := i.Unbound; idx < size; idx++ {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(exprs.Render(i.Mapping[tbl.At(i.Parameters, idx)], tbl))
	}
	return b.String()
}
