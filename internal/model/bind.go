package model

import (
	"taml/internal/diag"
	"taml/internal/expr"
	"taml/internal/source"
	"taml/internal/symbols"
)

// bindInstance derives a new instance from base by binding base's first
// len(args) unbound parameters, left to right. The params frame holds
// the new instance's own parameters; bindInstance appends base's
// parameters into it so that unbound symbols end up in the prefix and
// bound symbols in the suffix, then the frame becomes the new
// instance's parameter frame.
//
// base is read, never written. On over-binding the error also lands in
// the diagnostics log, tagged with pos.
func (d *Document) bindInstance(base *Instance, params symbols.FrameID, args []expr.ID, pos source.Span) (Instance, error) {
	k := len(args)
	if k > base.Unbound {
		err := diag.TooManyArgumentsError(d.symbolName(base.Sym))
		if base.IsClosed() {
			err = diag.ClosedInstanceError(d.symbolName(base.Sym))
		}
		d.bag.Add(diag.NewError(err.Code, pos, err.Error()))
		return Instance{}, err
	}

	own := d.table.Size(params)
	baseSize := d.table.Size(base.Parameters)
	baseParams := make([]symbols.SymbolID, baseSize)
	for i := 0; i < baseSize; i++ {
		baseParams[i] = d.table.At(base.Parameters, i)
	}

	// Lay base's parameters into the new frame: the survivors of the
	// unbound prefix first, then the freshly bound ones, then the ones
	// bound further up the chain.
	for _, sym := range baseParams[k:base.Unbound] {
		d.table.Push(params, sym)
	}
	for _, sym := range baseParams[:k] {
		d.table.Push(params, sym)
	}
	for _, sym := range baseParams[base.Unbound:] {
		d.table.Push(params, sym)
	}

	inst := Instance{
		Parameters: params,
		Arguments:  base.Arguments + k,
		Unbound:    own + base.Unbound - k,
		Template:   base.Template,
		Mapping:    make(map[symbols.SymbolID]expr.ID, len(base.Mapping)+k),
	}
	for sym, arg := range base.Mapping {
		inst.Mapping[sym] = arg
	}
	for i := 0; i < k; i++ {
		inst.Mapping[baseParams[i]] = args[i]
	}

	inst.Restricted = d.restrictedClosure(base, params, baseParams[:k], args)
	return inst, nil
}

// restrictedClosure propagates the restricted set across one binding
// step. Binding a restricted parameter taints every parameter of the
// new instance that the argument expression mentions; constants and
// non-parameter names pass through clean.
func (d *Document) restrictedClosure(base *Instance, frame symbols.FrameID, bound []symbols.SymbolID, args []expr.ID) map[symbols.SymbolID]struct{} {
	out := make(map[symbols.SymbolID]struct{}, len(base.Restricted))
	for sym := range base.Restricted {
		out[sym] = struct{}{}
	}
	for i, param := range bound {
		if _, restricted := out[param]; !restricted {
			continue
		}
		for _, free := range d.exprs.FreeVars(args[i]) {
			if d.table.IndexOf(frame, free) >= 0 {
				out[free] = struct{}{}
			}
		}
	}
	return out
}

func (d *Document) symbolName(sym symbols.SymbolID) string {
	if !sym.IsValid() {
		return "<anonymous>"
	}
	return d.table.Name(sym)
}
