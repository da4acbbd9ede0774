package model

import (
	"taml/internal/diag"
	"taml/internal/expr"
	"taml/internal/source"
	"taml/internal/symbols"
)

// decls resolves a declaration owner: GlobalScope for the document's
// own block, otherwise the template's.
func (d *Document) decls(owner TemplateID) *Declarations {
	if owner == GlobalScope {
		return &d.global
	}
	return &d.Template(owner).Declarations
}

// AddVariable declares a variable in the owner's scope. A colliding
// name is logged and rejected without touching the scope.
func (d *Document) AddVariable(owner TemplateID, name string, typ symbols.TypeRef, init expr.ID, pos source.Span) (*Variable, error) {
	decls := d.decls(owner)
	sym, ok := d.table.Declare(decls.Frame, name, typ, pos)
	if !ok {
		err := diag.DuplicateDefinitionError(name)
		d.bag.Add(err.At(pos))
		return nil, err
	}
	decls.Variables = append(decls.Variables, Variable{Sym: sym, Init: init})
	d.table.SetData(sym, Ref{Kind: RefVariable, Template: owner, Index: uint32(len(decls.Variables))})
	return &decls.Variables[len(decls.Variables)-1], nil
}

// AddFunction declares a function in the owner's scope. Its frame
// chains under the owner's, ready for local declarations.
func (d *Document) AddFunction(owner TemplateID, name string, typ symbols.TypeRef, pos source.Span) (*Function, error) {
	decls := d.decls(owner)
	sym, ok := d.table.Declare(decls.Frame, name, typ, pos)
	if !ok {
		err := diag.DuplicateDefinitionError(name)
		d.bag.Add(err.At(pos))
		return nil, err
	}
	decls.Functions = append(decls.Functions, Function{
		Sym:   sym,
		Frame: d.table.NewFrame(decls.Frame),
	})
	d.table.SetData(sym, Ref{Kind: RefFunction, Template: owner, Index: uint32(len(decls.Functions))})
	return &decls.Functions[len(decls.Functions)-1], nil
}

// AddFunctionVariable declares a local variable inside fn.
func (d *Document) AddFunctionVariable(fn *Function, name string, typ symbols.TypeRef, init expr.ID, pos source.Span) (*Variable, error) {
	sym, ok := d.table.Declare(fn.Frame, name, typ, pos)
	if !ok {
		err := diag.DuplicateDefinitionError(name)
		d.bag.Add(err.At(pos))
		return nil, err
	}
	fn.Locals = append(fn.Locals, Variable{Sym: sym, Init: init})
	return &fn.Locals[len(fn.Locals)-1], nil
}

// AddProgressMeasure records a guarded progress measure in the owner's
// scope.
func (d *Document) AddProgressMeasure(owner TemplateID, guard, measure expr.ID) {
	decls := d.decls(owner)
	decls.Progress = append(decls.Progress, ProgressMeasure{Guard: guard, Measure: measure})
}

// AddIODecl appends an empty I/O declaration for the builder to fill.
// The pointer is valid until the owner's next AddIODecl.
func (d *Document) AddIODecl(owner TemplateID) *IODecl {
	decls := d.decls(owner)
	decls.IODecls = append(decls.IODecls, IODecl{})
	return &decls.IODecls[len(decls.IODecls)-1]
}

// AddGantt stores a copy of the gantt chart entry in the owner's scope.
func (d *Document) AddGantt(owner TemplateID, g Gantt) {
	decls := d.decls(owner)
	decls.Gantt = append(decls.Gantt, g.clone())
}

// AddTypeDef declares a named type in the owner's scope and records it
// for traversal.
func (d *Document) AddTypeDef(owner TemplateID, name string, typ symbols.TypeRef, pos source.Span) (symbols.SymbolID, error) {
	decls := d.decls(owner)
	sym, ok := d.table.Declare(decls.Frame, name, typ, pos)
	if !ok {
		err := diag.DuplicateDefinitionError(name)
		d.bag.Add(err.At(pos))
		return symbols.NoSymbolID, err
	}
	decls.TypeDefs = append(decls.TypeDefs, sym)
	return sym, nil
}

// AddTemplate creates a static template: a self-instance with zero
// bound parameters and an empty body. A name collision in the global
// scope is logged and nothing is inserted.
func (d *Document) AddTemplate(name string, params symbols.FrameID, pos source.Span, isTA bool, typ, mode string) (TemplateID, error) {
	return d.addTemplate(name, params, pos, isTA, typ, mode, false)
}

// AddDynamicTemplate creates a template registered for run-time
// instantiation by name. Its body arrives later; IsDefined stays false
// until then.
func (d *Document) AddDynamicTemplate(name string, params symbols.FrameID, pos source.Span) (TemplateID, error) {
	return d.addTemplate(name, params, pos, true, "", "", true)
}

func (d *Document) addTemplate(name string, params symbols.FrameID, pos source.Span, isTA bool, typ, mode string, dynamic bool) (TemplateID, error) {
	if _, taken := d.table.LookupLocal(d.global.Frame, name); taken {
		err := diag.DuplicateDefinitionError(name)
		d.bag.Add(err.At(pos))
		return NoTemplateID, err
	}
	if !params.IsValid() {
		params = d.table.NewFrame(d.global.Frame)
	}
	sym, _ := d.table.Declare(d.global.Frame, name, symbols.NoTypeRef, pos)

	id := TemplateID(len(d.templates) + 1)
	t := Template{
		Instance: Instance{
			Sym:        sym,
			Parameters: params,
			Mapping:    make(map[symbols.SymbolID]expr.ID),
			Unbound:    d.table.Size(params),
			Template:   id,
			Restricted: make(map[symbols.SymbolID]struct{}),
		},
		Declarations: Declarations{Frame: d.table.NewFrame(params)},
		IsTA:         isTA,
		Type:         typ,
		Mode:         mode,
		DynIndex:     -1,
		IsDefined:    !dynamic,
		Dynamic:      dynamic,
	}
	if dynamic {
		t.DynIndex = len(d.dynamicList)
	}
	d.templates = append(d.templates, t)
	if dynamic {
		d.dynamicList = append(d.dynamicList, id)
		d.dynamicByName[d.table.Name(sym)] = id
	} else {
		d.templateList = append(d.templateList, id)
	}
	d.table.SetData(sym, Ref{Kind: RefTemplate, Index: uint32(id)})
	return id, nil
}

// AddInstance derives a new named instance by binding arguments against
// base, which may be a template or another instance. Over-binding is
// logged and returned as an error with base left untouched.
func (d *Document) AddInstance(name string, base *Instance, params symbols.FrameID, args []expr.ID, pos source.Span) (InstanceID, error) {
	return d.addInstance(name, base, params, args, pos, false)
}

// AddLscInstance is AddInstance for scenario instances, which are kept
// on their own list.
func (d *Document) AddLscInstance(name string, base *Instance, params symbols.FrameID, args []expr.ID, pos source.Span) (InstanceID, error) {
	return d.addInstance(name, base, params, args, pos, true)
}

func (d *Document) addInstance(name string, base *Instance, params symbols.FrameID, args []expr.ID, pos source.Span, lsc bool) (InstanceID, error) {
	if _, taken := d.table.LookupLocal(d.global.Frame, name); taken {
		err := diag.DuplicateDefinitionError(name)
		d.bag.Add(err.At(pos))
		return NoInstanceID, err
	}
	if !params.IsValid() {
		params = d.table.NewFrame(d.global.Frame)
	}
	inst, err := d.bindInstance(base, params, args, pos)
	if err != nil {
		return NoInstanceID, err
	}
	sym, _ := d.table.Declare(d.global.Frame, name, symbols.NoTypeRef, pos)
	inst.Sym = sym

	id := InstanceID(len(d.instances) + 1)
	d.instances = append(d.instances, inst)
	if lsc {
		d.lscList = append(d.lscList, id)
	} else {
		d.instanceList = append(d.instanceList, id)
	}
	d.table.SetData(sym, Ref{Kind: RefInstance, Index: uint32(id)})
	return id, nil
}

// AddProcess copies the instance onto the process list handed to the
// verifier. No arity check happens here; downstream consumers reject
// processes that still have unbound parameters.
func (d *Document) AddProcess(inst *Instance, pos source.Span) {
	d.processes = append(d.processes, inst.clone())
}

// RemoveProcess drops the first process carrying the instance's
// symbol. Other processes keep their positions.
func (d *Document) RemoveProcess(inst *Instance) bool {
	for i := range d.processes {
		if d.processes[i].Sym == inst.Sym {
			d.processes = append(d.processes[:i], d.processes[i+1:]...)
			return true
		}
	}
	return false
}

// AddLocation adds a location to the template, declaring its symbol in
// the template scope. The name expression is the declared identifier.
func (d *Document) AddLocation(tid TemplateID, name string, invariant, exponentialRate expr.ID, pos source.Span) (StateID, error) {
	t := d.Template(tid)
	sym, ok := d.table.Declare(t.Declarations.Frame, name, symbols.NoTypeRef, pos)
	if !ok {
		err := diag.DuplicateDefinitionError(name)
		d.bag.Add(err.At(pos))
		return NoStateID, err
	}
	id := StateID(len(t.States) + 1)
	t.States = append(t.States, State{
		Sym:             sym,
		Name:            d.exprs.Ident(sym, pos),
		Invariant:       invariant,
		ExponentialRate: exponentialRate,
		Nr:              int32(len(t.States)),
	})
	d.table.SetData(sym, Ref{Kind: RefState, Template: tid, Index: uint32(id)})
	return id, nil
}

// AddBranchpoint adds a branchpoint to the template.
func (d *Document) AddBranchpoint(tid TemplateID, name string, pos source.Span) (BranchpointID, error) {
	t := d.Template(tid)
	sym, ok := d.table.Declare(t.Declarations.Frame, name, symbols.NoTypeRef, pos)
	if !ok {
		err := diag.DuplicateDefinitionError(name)
		d.bag.Add(err.At(pos))
		return NoBranchpointID, err
	}
	id := BranchpointID(len(t.Branchpoints) + 1)
	t.Branchpoints = append(t.Branchpoints, Branchpoint{Sym: sym, Nr: int32(len(t.Branchpoints))})
	d.table.SetData(sym, Ref{Kind: RefBranchpoint, Template: tid, Index: uint32(id)})
	return id, nil
}

// AddEdge connects two declared endpoints of the template. Guard,
// synchronisation and assignment start absent; the builder fills them
// on the returned edge.
func (d *Document) AddEdge(tid TemplateID, src, dst symbols.SymbolID, control bool, actname string) (EdgeID, error) {
	t := d.Template(tid)
	srcEnd, err := d.endpoint(tid, src)
	if err != nil {
		return NoEdgeID, err
	}
	dstEnd, err := d.endpoint(tid, dst)
	if err != nil {
		return NoEdgeID, err
	}
	id := EdgeID(len(t.Edges) + 1)
	t.Edges = append(t.Edges, Edge{
		Nr:      len(t.Edges),
		Control: control,
		ActName: actname,
		Src:     srcEnd,
		Dst:     dstEnd,
	})
	return id, nil
}

// endpoint resolves a symbol to a location or branchpoint of the given
// template.
func (d *Document) endpoint(tid TemplateID, sym symbols.SymbolID) (Endpoint, error) {
	ref, ok := d.table.Data(sym).(Ref)
	if ok && ref.Template == tid {
		switch ref.Kind {
		case RefState:
			return StateEndpoint(StateID(ref.Index)), nil
		case RefBranchpoint:
			return BranchpointEndpoint(BranchpointID(ref.Index)), nil
		}
	}
	err := diag.BadEndpointError(d.symbolName(sym))
	d.bag.Add(err.At(d.table.Symbol(sym).Pos))
	return Endpoint{}, err
}

// AddInstanceLine appends an empty instance line to the template. The
// line receives its binding through BindInstanceLine.
func (d *Document) AddInstanceLine(tid TemplateID) InstanceLineID {
	t := d.Template(tid)
	t.Lines = append(t.Lines, InstanceLine{
		Instance: Instance{Template: tid},
		Nr:       int32(len(t.Lines)),
	})
	return InstanceLineID(len(t.Lines))
}

// BindInstanceLine gives an instance line its binding: the same
// parameter flattening AddInstance performs, anchored in place. The
// line adopts base's symbol since it depicts that instance.
func (d *Document) BindInstanceLine(tid TemplateID, line InstanceLineID, base *Instance, params symbols.FrameID, args []expr.ID, pos source.Span) error {
	t := d.Template(tid)
	if !params.IsValid() {
		params = d.table.NewFrame(t.Declarations.Frame)
	}
	inst, err := d.bindInstance(base, params, args, pos)
	if err != nil {
		return err
	}
	inst.Sym = base.Sym
	nr := t.Line(line).Nr
	*t.Line(line) = InstanceLine{Instance: inst, Nr: nr}
	return nil
}

// AddMessage appends a message between two instance lines, named by
// the symbols of the instances the lines depict.
func (d *Document) AddMessage(tid TemplateID, src, dst symbols.SymbolID, loc int, prechart bool) (MessageID, error) {
	t := d.Template(tid)
	srcLine, err := d.anchorLine(t, src)
	if err != nil {
		return NoMessageID, err
	}
	dstLine, err := d.anchorLine(t, dst)
	if err != nil {
		return NoMessageID, err
	}
	id := MessageID(len(t.Messages) + 1)
	t.Messages = append(t.Messages, Message{
		Nr:         len(t.Messages),
		Location:   loc,
		Src:        srcLine,
		Dst:        dstLine,
		InPrechart: prechart,
	})
	if prechart {
		t.HasPrechart = true
	}
	return id, nil
}

// AddCondition appends a condition anchored at the named instance
// lines.
func (d *Document) AddCondition(tid TemplateID, anchors []symbols.SymbolID, loc int, prechart, hot bool) (ConditionID, error) {
	t := d.Template(tid)
	lines := make([]InstanceLineID, 0, len(anchors))
	for _, sym := range anchors {
		line, err := d.anchorLine(t, sym)
		if err != nil {
			return NoConditionID, err
		}
		lines = append(lines, line)
	}
	id := ConditionID(len(t.Conditions) + 1)
	t.Conditions = append(t.Conditions, Condition{
		Nr:         len(t.Conditions),
		Location:   loc,
		Anchors:    lines,
		InPrechart: prechart,
		Hot:        hot,
	})
	if prechart {
		t.HasPrechart = true
	}
	return id, nil
}

// AddUpdate appends an update anchored at the named instance line.
func (d *Document) AddUpdate(tid TemplateID, anchor symbols.SymbolID, loc int, prechart bool) (UpdateID, error) {
	t := d.Template(tid)
	line, err := d.anchorLine(t, anchor)
	if err != nil {
		return NoUpdateID, err
	}
	id := UpdateID(len(t.Updates) + 1)
	t.Updates = append(t.Updates, Update{
		Nr:         len(t.Updates),
		Location:   loc,
		Anchor:     line,
		InPrechart: prechart,
	})
	if prechart {
		t.HasPrechart = true
	}
	return id, nil
}

// anchorLine finds the template's instance line depicting the given
// symbol.
func (d *Document) anchorLine(t *Template, sym symbols.SymbolID) (InstanceLineID, error) {
	for i := range t.Lines {
		if t.Lines[i].Sym == sym {
			return InstanceLineID(i + 1), nil
		}
	}
	err := diag.UnknownAnchorError(d.symbolName(sym))
	pos := source.Span{}
	if sym.IsValid() {
		pos = d.table.Symbol(sym).Pos
	}
	d.bag.Add(err.At(pos))
	return NoInstanceLineID, err
}

// CopyVariables copies the source scope's variables into the target
// scope, declaring fresh symbols there. Entries whose name already
// exists in the target keep the target's declaration.
func (d *Document) CopyVariables(from, to TemplateID) {
	src := d.decls(from)
	dst := d.decls(to)
	for i := range src.Variables {
		v := src.Variables[i]
		orig := d.table.Symbol(v.Sym)
		name := d.strings.MustLookup(orig.Name)
		sym, ok := d.table.Declare(dst.Frame, name, orig.Type, orig.Pos)
		if !ok {
			continue
		}
		dst.Variables = append(dst.Variables, Variable{Sym: sym, Init: v.Init})
		d.table.SetData(sym, Ref{Kind: RefVariable, Template: to, Index: uint32(len(dst.Variables))})
	}
}

// CopyFunctions copies the source scope's functions into the target
// scope the same way CopyVariables does, bodies shared as values.
func (d *Document) CopyFunctions(from, to TemplateID) {
	src := d.decls(from)
	dst := d.decls(to)
	for i := range src.Functions {
		f := src.Functions[i].clone()
		orig := d.table.Symbol(f.Sym)
		name := d.strings.MustLookup(orig.Name)
		sym, ok := d.table.Declare(dst.Frame, name, orig.Type, orig.Pos)
		if !ok {
			continue
		}
		f.Sym = sym
		dst.Functions = append(dst.Functions, f)
		d.table.SetData(sym, Ref{Kind: RefFunction, Template: to, Index: uint32(len(dst.Functions))})
	}
}
