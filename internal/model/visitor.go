package model

import "taml/internal/symbols"

// Visitor is the traversal contract downstream passes implement. Every
// hook is optional; a nil field is skipped. TemplateBefore may return
// false to skip the template's contents and its TemplateAfter; a nil
// TemplateBefore enters every template.
//
// Accept is the one supported way to walk a document. Passes that use
// it stay decoupled from how the containers are laid out.
type Visitor struct {
	SystemBefore    func(*Document)
	SystemAfter     func(*Document)
	Variable        func(*Variable)
	TemplateBefore  func(*Template) bool
	TemplateAfter   func(*Template)
	State           func(*State)
	Edge            func(*Edge)
	Instance        func(*Instance)
	Process         func(*Instance)
	Function        func(*Function)
	TypeDef         func(symbols.SymbolID)
	IODecl          func(*IODecl)
	ProgressMeasure func(*ProgressMeasure)
	GanttChart      func(*Gantt)
	InstanceLine    func(*InstanceLine)
	Message         func(*Message)
	Condition       func(*Condition)
	Update          func(*Update)
}

// Accept walks the document in fixed order: the global declarations,
// then each template's declarations and body (static before dynamic),
// then instances, then processes.
func (d *Document) Accept(v *Visitor) {
	if v.SystemBefore != nil {
		v.SystemBefore(d)
	}
	d.acceptDeclarations(&d.global, v)
	for _, id := range d.templateList {
		d.acceptTemplate(d.Template(id), v)
	}
	for _, id := range d.dynamicList {
		d.acceptTemplate(d.Template(id), v)
	}
	if v.Instance != nil {
		for _, id := range d.instanceList {
			v.Instance(d.Instance(id))
		}
		for _, id := range d.lscList {
			v.Instance(d.Instance(id))
		}
	}
	if v.Process != nil {
		for i := range d.processes {
			v.Process(&d.processes[i])
		}
	}
	if v.SystemAfter != nil {
		v.SystemAfter(d)
	}
}

func (d *Document) acceptDeclarations(decls *Declarations, v *Visitor) {
	if v.TypeDef != nil {
		for _, sym := range decls.TypeDefs {
			v.TypeDef(sym)
		}
	}
	if v.Variable != nil {
		for i := range decls.Variables {
			v.Variable(&decls.Variables[i])
		}
	}
	if v.Function != nil {
		for i := range decls.Functions {
			v.Function(&decls.Functions[i])
		}
	}
	if v.ProgressMeasure != nil {
		for i := range decls.Progress {
			v.ProgressMeasure(&decls.Progress[i])
		}
	}
	if v.IODecl != nil {
		for i := range decls.IODecls {
			v.IODecl(&decls.IODecls[i])
		}
	}
	if v.GanttChart != nil {
		for i := range decls.Gantt {
			v.GanttChart(&decls.Gantt[i])
		}
	}
}

func (d *Document) acceptTemplate(t *Template, v *Visitor) {
	if v.TemplateBefore != nil && !v.TemplateBefore(t) {
		return
	}
	d.acceptDeclarations(&t.Declarations, v)
	if v.State != nil {
		for i := range t.States {
			v.State(&t.States[i])
		}
	}
	if v.Edge != nil {
		for i := range t.Edges {
			v.Edge(&t.Edges[i])
		}
	}
	if v.InstanceLine != nil {
		for i := range t.Lines {
			v.InstanceLine(&t.Lines[i])
		}
	}
	if v.Message != nil {
		for i := range t.Messages {
			v.Message(&t.Messages[i])
		}
	}
	if v.Condition != nil {
		for i := range t.Conditions {
			v.Condition(&t.Conditions[i])
		}
	}
	if v.Update != nil {
		for i := range t.Updates {
			v.Update(&t.Updates[i])
		}
	}
	if v.TemplateAfter != nil {
		v.TemplateAfter(t)
	}
}
