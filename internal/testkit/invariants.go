package testkit

import (
	"fmt"

	"taml/internal/model"
)

// CheckDocument runs a minimal set of structural invariants on a built
// document:
//  1. timed automata carry no scenario events, charts no locations
//  2. states, edges and lines are numbered in creation order
//  3. edge endpoints and event anchors resolve inside their template
//  4. instance parameter accounting stays balanced
//  5. simregion derivation partitions the chart's events exactly once
func CheckDocument(doc *model.Document) error {
	if doc == nil {
		return fmt.Errorf("nil document")
	}

	all := make([]model.TemplateID, 0, len(doc.Templates())+len(doc.DynamicTemplates()))
	all = append(all, doc.Templates()...)
	all = append(all, doc.DynamicTemplates()...)
	known := make(map[model.TemplateID]bool, len(all))
	for _, id := range all {
		known[id] = true
	}

	for _, id := range all {
		if err := checkTemplate(doc, id, known); err != nil {
			return err
		}
		if err := checkInstance(doc, &doc.Template(id).Instance, known); err != nil {
			return err
		}
	}

	insts := make([]model.InstanceID, 0, len(doc.Instances())+len(doc.LscInstances()))
	insts = append(insts, doc.Instances()...)
	insts = append(insts, doc.LscInstances()...)
	for _, id := range insts {
		if err := checkInstance(doc, doc.Instance(id), known); err != nil {
			return err
		}
	}

	for i := range doc.Processes() {
		if tpl := doc.Processes()[i].Template; !known[tpl] {
			return fmt.Errorf("process %d references unknown template %d", i, tpl)
		}
	}
	return nil
}

func checkTemplate(doc *model.Document, id model.TemplateID, known map[model.TemplateID]bool) error {
	t := doc.Template(id)
	name := doc.Table().Name(t.Sym)

	// 1) kind separation
	if t.IsTA && len(t.Lines)+len(t.Messages)+len(t.Conditions)+len(t.Updates) > 0 {
		return fmt.Errorf("%s: timed automaton holds scenario events", name)
	}
	if !t.IsTA && len(t.States)+len(t.Branchpoints)+len(t.Edges) > 0 {
		return fmt.Errorf("%s: chart holds automaton structure", name)
	}

	// 2) creation-order numbering
	for i := range t.States {
		if t.States[i].Nr != int32(i) {
			return fmt.Errorf("%s: state %d numbered %d", name, i, t.States[i].Nr)
		}
	}
	for i := range t.Branchpoints {
		if t.Branchpoints[i].Nr != int32(i) {
			return fmt.Errorf("%s: branchpoint %d numbered %d", name, i, t.Branchpoints[i].Nr)
		}
	}
	for i := range t.Edges {
		if t.Edges[i].Nr != i {
			return fmt.Errorf("%s: edge %d numbered %d", name, i, t.Edges[i].Nr)
		}
	}
	for i := range t.Lines {
		if t.Lines[i].Nr != int32(i) {
			return fmt.Errorf("%s: line %d numbered %d", name, i, t.Lines[i].Nr)
		}
	}

	// 3) endpoints and anchors
	if t.Init.IsValid() {
		found := false
		for i := range t.States {
			if t.States[i].Sym == t.Init {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%s: initial location is not a declared location", name)
		}
	}
	for i := range t.Edges {
		e := &t.Edges[i]
		if err := checkEndpoint(t, e.Src); err != nil {
			return fmt.Errorf("%s: edge %d source: %w", name, i, err)
		}
		if err := checkEndpoint(t, e.Dst); err != nil {
			return fmt.Errorf("%s: edge %d target: %w", name, i, err)
		}
	}
	lines := len(t.Lines)
	for i := range t.Messages {
		m := &t.Messages[i]
		if !lineInRange(m.Src, lines) || !lineInRange(m.Dst, lines) {
			return fmt.Errorf("%s: message %d anchors outside the chart's lines", name, i)
		}
		if m.Location < 0 {
			return fmt.Errorf("%s: message %d has negative location", name, i)
		}
	}
	for i := range t.Conditions {
		c := &t.Conditions[i]
		if len(c.Anchors) == 0 {
			return fmt.Errorf("%s: condition %d has no anchors", name, i)
		}
		for _, anchor := range c.Anchors {
			if !lineInRange(anchor, lines) {
				return fmt.Errorf("%s: condition %d anchors outside the chart's lines", name, i)
			}
		}
		if c.Location < 0 {
			return fmt.Errorf("%s: condition %d has negative location", name, i)
		}
	}
	for i := range t.Updates {
		u := &t.Updates[i]
		if !lineInRange(u.Anchor, lines) {
			return fmt.Errorf("%s: update %d anchors outside the chart's lines", name, i)
		}
		if u.Location < 0 {
			return fmt.Errorf("%s: update %d has negative location", name, i)
		}
	}
	for i := range t.Lines {
		if tpl := t.Lines[i].Template; tpl.IsValid() && !known[tpl] {
			return fmt.Errorf("%s: line %d depicts unknown template %d", name, i, tpl)
		}
	}

	// 5) simregion partition
	if !t.IsTA {
		regions := t.Simregions()
		var msgs, conds, upds int
		prev := -1
		for i := range regions {
			r := &regions[i]
			if r.Nr != i {
				return fmt.Errorf("%s: simregion %d numbered %d", name, i, r.Nr)
			}
			loc := r.Loc()
			if loc < prev {
				return fmt.Errorf("%s: simregion %d breaks location order", name, i)
			}
			prev = loc
			if r.HasMessage() {
				msgs++
			}
			if r.HasCondition() {
				conds++
			}
			if r.HasUpdate() {
				upds++
			}
		}
		if msgs != len(t.Messages) || conds != len(t.Conditions) || upds != len(t.Updates) {
			return fmt.Errorf("%s: simregions cover %d/%d/%d events, chart declares %d/%d/%d",
				name, msgs, conds, upds, len(t.Messages), len(t.Conditions), len(t.Updates))
		}
	}
	return nil
}

func checkEndpoint(t *model.Template, ep model.Endpoint) error {
	switch {
	case ep.IsState():
		if int(ep.State()) > len(t.States) {
			return fmt.Errorf("location %d out of range", ep.Index)
		}
	case ep.IsBranchpoint():
		if int(ep.Branchpoint()) > len(t.Branchpoints) {
			return fmt.Errorf("branchpoint %d out of range", ep.Index)
		}
	default:
		return fmt.Errorf("endpoint unset")
	}
	return nil
}

func checkInstance(doc *model.Document, inst *model.Instance, known map[model.TemplateID]bool) error {
	name := doc.Table().Name(inst.Sym)
	if !known[inst.Template] {
		return fmt.Errorf("%s: unknown base template %d", name, inst.Template)
	}
	if inst.Unbound < 0 {
		return fmt.Errorf("%s: negative unbound count %d", name, inst.Unbound)
	}
	if inst.Parameters.IsValid() {
		size := doc.Table().Size(inst.Parameters)
		if inst.Unbound+len(inst.Mapping) != size {
			return fmt.Errorf("%s: %d unbound + %d bound parameters, frame holds %d",
				name, inst.Unbound, len(inst.Mapping), size)
		}
	}
	return nil
}

func lineInRange(id model.InstanceLineID, n int) bool {
	return id.IsValid() && int(id) <= n
}
