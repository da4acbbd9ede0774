package model

import (
	"fmt"

	"golang.org/x/text/unicode/norm"

	"taml/internal/diag"
	"taml/internal/expr"
	"taml/internal/source"
	"taml/internal/symbols"
)

// Document is the aggregate root. It owns the symbol table, the
// expression arena, the position table and every template, instance and
// process, and writes structural diagnostics to an externally supplied
// bag so read paths stay free of hidden mutation.
type Document struct {
	strings   *source.Interner
	table     *symbols.Table
	exprs     *expr.Arena
	bag       *diag.Bag
	positions source.Positions

	global Declarations

	templates     []Template
	templateList  []TemplateID
	dynamicList   []TemplateID
	dynamicByName map[string]TemplateID

	instances    []Instance
	instanceList []InstanceID
	lscList      []InstanceID
	processes    []Instance

	chanPriorities []ChanPriority
	procPriority   map[string]int

	beforeUpdate expr.ID
	afterUpdate  expr.ID
	options      []Option
	queries      []Query

	observer  string
	path      string
	libraries []any
	pool      []string
	poolIndex map[string]int
	supported SupportedMethods

	hasUrgentTrans               bool
	hasPriorities                bool
	hasStrictInv                 bool
	stopsClock                   bool
	hasStrictLowControlledGuards bool
	hasGuardOnRecvBroadcast      bool
	syncUsed                     int
	modified                     bool
}

// NewDocument builds an empty document writing diagnostics to bag. A
// nil bag gets replaced with a fresh unbounded one.
func NewDocument(bag *diag.Bag) *Document {
	if bag == nil {
		bag = diag.NewBag(0)
	}
	strings := source.NewInterner()
	d := &Document{
		strings:       strings,
		table:         symbols.NewTable(strings),
		exprs:         expr.NewArena(),
		bag:           bag,
		dynamicByName: make(map[string]TemplateID),
		procPriority:  make(map[string]int),
		poolIndex:     make(map[string]int),
		supported:     SupportedMethods{Symbolic: true, Stochastic: true, Concrete: true},
	}
	d.global.Frame = d.table.NewFrame(symbols.NoFrameID)
	return d
}

// Table exposes the document's symbol table, shared with the builder
// for frame and symbol creation.
func (d *Document) Table() *symbols.Table { return d.table }

// Exprs exposes the document's expression arena.
func (d *Document) Exprs() *expr.Arena { return d.exprs }

// Diagnostics exposes the bag the document reports into.
func (d *Document) Diagnostics() *diag.Bag { return d.bag }

// Globals returns the document-level declarations block.
func (d *Document) Globals() *Declarations { return &d.global }

// GlobalFrame is the root scope every other frame chains to.
func (d *Document) GlobalFrame() symbols.FrameID { return d.global.Frame }

// Templates lists the static templates in declaration order.
func (d *Document) Templates() []TemplateID { return d.templateList }

// DynamicTemplates lists the dynamic templates in declaration order.
func (d *Document) DynamicTemplates() []TemplateID { return d.dynamicList }

// HasDynamicTemplates reports whether any dynamic template exists.
func (d *Document) HasDynamicTemplates() bool { return len(d.dynamicList) > 0 }

// Template resolves a template ID. The pointer is valid until the next
// AddTemplate or AddDynamicTemplate.
func (d *Document) Template(id TemplateID) *Template {
	if !id.IsValid() || int(id) > len(d.templates) {
		panic(fmt.Sprintf("model: invalid template id %d", id))
	}
	return &d.templates[id-1]
}

// FindTemplate resolves a static template by name.
func (d *Document) FindTemplate(name string) (TemplateID, bool) {
	for _, id := range d.templateList {
		if d.table.Name(d.templates[id-1].Sym) == norm.NFC.String(name) {
			return id, true
		}
	}
	return NoTemplateID, false
}

// GetDynamicTemplate resolves a dynamic template by name.
func (d *Document) GetDynamicTemplate(name string) (TemplateID, bool) {
	id, ok := d.dynamicByName[norm.NFC.String(name)]
	return id, ok
}

// Instances lists the plain instances in creation order.
func (d *Document) Instances() []InstanceID { return d.instanceList }

// LscInstances lists the scenario instances in creation order.
func (d *Document) LscInstances() []InstanceID { return d.lscList }

// Instance resolves an instance ID. The pointer is valid until the
// next AddInstance or AddLscInstance.
func (d *Document) Instance(id InstanceID) *Instance {
	if !id.IsValid() || int(id) > len(d.instances) {
		panic(fmt.Sprintf("model: invalid instance id %d", id))
	}
	return &d.instances[id-1]
}

// Processes returns the process list handed to the verifier.
func (d *Document) Processes() []Instance { return d.processes }

// Queries returns the stored queries.
func (d *Document) Queries() []Query { return d.queries }

// AddQuery stores a copy of the query.
func (d *Document) AddQuery(q Query) {
	d.queries = append(d.queries, q.clone())
}

// QueriesEmpty reports whether no query is stored.
func (d *Document) QueriesEmpty() bool { return len(d.queries) == 0 }

// Options returns the model-level engine options.
func (d *Document) Options() []Option { return d.options }

// SetOptions replaces the model-level engine options.
func (d *Document) SetOptions(options []Option) {
	d.options = append([]Option(nil), options...)
}

// BeginChanPriority opens a new channel priority declaration headed by
// ch.
func (d *Document) BeginChanPriority(ch expr.ID) {
	d.chanPriorities = append(d.chanPriorities, ChanPriority{Head: ch})
	d.hasPriorities = true
}

// AddChanPriority extends the open declaration with one separator and
// channel expression. Without an open declaration the channel becomes
// a new head.
func (d *Document) AddChanPriority(separator byte, ch expr.ID) {
	if len(d.chanPriorities) == 0 {
		d.BeginChanPriority(ch)
		return
	}
	last := &d.chanPriorities[len(d.chanPriorities)-1]
	last.Tail = append(last.Tail, ChanPriorityEntry{Separator: separator, Expr: ch})
}

// ChanPriorities returns the channel priority declarations in source
// order.
func (d *Document) ChanPriorities() []ChanPriority { return d.chanPriorities }

// SetProcPriority records the priority of the named process.
func (d *Document) SetProcPriority(name string, priority int) {
	d.procPriority[norm.NFC.String(name)] = priority
	d.hasPriorities = true
}

// ProcPriority returns the recorded priority of the named process.
func (d *Document) ProcPriority(name string) (int, bool) {
	p, ok := d.procPriority[norm.NFC.String(name)]
	return p, ok
}

// HasPriorityDeclaration reports whether any channel or process
// priority was declared.
func (d *Document) HasPriorityDeclaration() bool { return d.hasPriorities }

// SetBeforeUpdate stores the expression evaluated before each update.
func (d *Document) SetBeforeUpdate(e expr.ID) { d.beforeUpdate = e }

// BeforeUpdate returns the expression evaluated before each update.
func (d *Document) BeforeUpdate() expr.ID { return d.beforeUpdate }

// SetAfterUpdate stores the expression evaluated after each update.
func (d *Document) SetAfterUpdate(e expr.ID) { d.afterUpdate = e }

// AfterUpdate returns the expression evaluated after each update.
func (d *Document) AfterUpdate() expr.ID { return d.afterUpdate }

// SetObserver names the observer automaton instance.
func (d *Document) SetObserver(name string) { d.observer = name }

// Observer returns the observer automaton instance name.
func (d *Document) Observer() string { return d.observer }

// SetPath records where the document was loaded from.
func (d *Document) SetPath(path string) { d.path = path }

// Path returns where the document was loaded from.
func (d *Document) Path() string { return d.path }

// AddLibrary records a loaded external library handle.
func (d *Document) AddLibrary(lib any) {
	d.libraries = append(d.libraries, lib)
}

// LastLibrary returns the most recently added library handle.
func (d *Document) LastLibrary() (any, bool) {
	if len(d.libraries) == 0 {
		return nil, false
	}
	return d.libraries[len(d.libraries)-1], true
}

// AddString appends to the document string pool unconditionally.
func (d *Document) AddString(s string) {
	if _, ok := d.poolIndex[s]; !ok {
		d.poolIndex[s] = len(d.pool)
	}
	d.pool = append(d.pool, s)
}

// AddStringIfNew appends s unless already pooled and returns its index.
func (d *Document) AddStringIfNew(s string) int {
	if at, ok := d.poolIndex[s]; ok {
		return at
	}
	at := len(d.pool)
	d.poolIndex[s] = at
	d.pool = append(d.pool, s)
	return at
}

// StringPool returns the pooled strings in insertion order.
func (d *Document) StringPool() []string { return d.pool }

// SetSupported replaces the supported analysis methods.
func (d *Document) SetSupported(m SupportedMethods) { d.supported = m }

// Supported returns the supported analysis methods.
func (d *Document) Supported() SupportedMethods { return d.supported }

// AddPosition appends one entry to the source position table. Entries
// arrive in ascending virtual position order.
func (d *Document) AddPosition(position, offset, line uint32, path string) {
	d.positions.Add(position, offset, line, path)
}

// FindPosition maps a virtual position back to its source line.
func (d *Document) FindPosition(position uint32) (source.Line, bool) {
	return d.positions.Find(position)
}

// AddError appends a position-tagged structural error.
func (d *Document) AddError(span source.Span, msg, ctx string) {
	d.bag.Add(diag.NewError(diag.BuildGeneral, span, msg).WithContext(ctx))
}

// AddWarning appends a position-tagged structural warning.
func (d *Document) AddWarning(span source.Span, msg, ctx string) {
	d.bag.Add(diag.NewWarning(diag.BuildGeneral, span, msg).WithContext(ctx))
}

// HasErrors reports whether any error was logged.
func (d *Document) HasErrors() bool { return d.bag.HasErrors() }

// HasWarnings reports whether any warning was logged.
func (d *Document) HasWarnings() bool { return d.bag.HasWarnings() }

// Errors returns the logged errors.
func (d *Document) Errors() []diag.Diagnostic { return d.bag.Errors() }

// Warnings returns the logged warnings.
func (d *Document) Warnings() []diag.Diagnostic { return d.bag.Warnings() }

// ClearErrors drops the logged errors, e.g. between two checking runs
// over the same document.
func (d *Document) ClearErrors() { d.bag.ClearErrors() }

// ClearWarnings drops the logged warnings.
func (d *Document) ClearWarnings() { d.bag.ClearWarnings() }

// SetUrgentTransition records that some transition is urgent.
func (d *Document) SetUrgentTransition() { d.hasUrgentTrans = true }

// HasUrgentTransition reports whether some transition is urgent.
func (d *Document) HasUrgentTransition() bool { return d.hasUrgentTrans }

// RecordStrictInvariant records that some invariant is strict.
func (d *Document) RecordStrictInvariant() { d.hasStrictInv = true }

// HasStrictInvariants reports whether some invariant is strict.
func (d *Document) HasStrictInvariants() bool { return d.hasStrictInv }

// RecordStopWatch records that the document stops a clock.
func (d *Document) RecordStopWatch() { d.stopsClock = true }

// HasStopWatch reports whether the document stops a clock.
func (d *Document) HasStopWatch() bool { return d.stopsClock }

// RecordStrictLowerBoundOnControllableEdges records a strict lower
// bound guard on a controllable edge.
func (d *Document) RecordStrictLowerBoundOnControllableEdges() {
	d.hasStrictLowControlledGuards = true
}

// HasStrictLowerBoundOnControllableEdges reports whether a controllable
// edge carries a strict lower bound guard.
func (d *Document) HasStrictLowerBoundOnControllableEdges() bool {
	return d.hasStrictLowControlledGuards
}

// RecordClockGuardRecvBroadcast records a clock guard on a broadcast
// receiver.
func (d *Document) RecordClockGuardRecvBroadcast() { d.hasGuardOnRecvBroadcast = true }

// HasClockGuardRecvBroadcast reports whether a broadcast receiver
// carries a clock guard.
func (d *Document) HasClockGuardRecvBroadcast() bool { return d.hasGuardOnRecvBroadcast }

// SetSyncUsed records which synchronisation flavour the checker found.
func (d *Document) SetSyncUsed(s int) { d.syncUsed = s }

// SyncUsed returns the recorded synchronisation flavour.
func (d *Document) SyncUsed() int { return d.syncUsed }

// SetModified flags the document as edited since load.
func (d *Document) SetModified(modified bool) { d.modified = modified }

// IsModified reports whether the document was edited since load.
func (d *Document) IsModified() bool { return d.modified }
