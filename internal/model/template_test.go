package model

import (
	"testing"

	"taml/internal/symbols"
)

func TestConditionLookupByLineAndLocation(t *testing.T) {
	tmpl := Template{
		Conditions: []Condition{
			condEvent(0, 1, []InstanceLineID{1}, false),
			condEvent(1, 2, []InstanceLineID{2, 3}, false),
		},
	}

	if id, ok := tmpl.GetCondition(1, 1); !ok || id != 1 {
		t.Fatalf("GetCondition(1,1) = (%d, %v), want (1, true)", id, ok)
	}
	if id, ok := tmpl.GetCondition(3, 2); !ok || id != 2 {
		t.Fatalf("GetCondition(3,2) = (%d, %v), want (2, true)", id, ok)
	}
	if _, ok := tmpl.GetCondition(1, 2); ok {
		t.Fatalf("GetCondition matched the wrong line")
	}
	if _, ok := tmpl.GetCondition(9, 1); ok {
		t.Fatalf("GetCondition matched an unknown line")
	}

	if id, ok := tmpl.GetConditionOnLines([]InstanceLineID{9, 3}, 2); !ok || id != 2 {
		t.Fatalf("GetConditionOnLines = (%d, %v), want (2, true)", id, ok)
	}
	if _, ok := tmpl.GetConditionOnLines([]InstanceLineID{9}, 2); ok {
		t.Fatalf("GetConditionOnLines matched nothing anchored there")
	}
}

func TestUpdateLookupByLineAndLocation(t *testing.T) {
	tmpl := Template{
		Updates: []Update{
			updEvent(0, 1, 1, false),
			updEvent(1, 1, 2, false),
		},
	}

	if id, ok := tmpl.GetUpdate(2, 1); !ok || id != 2 {
		t.Fatalf("GetUpdate(2,1) = (%d, %v), want (2, true)", id, ok)
	}
	if _, ok := tmpl.GetUpdate(1, 5); ok {
		t.Fatalf("GetUpdate matched the wrong location")
	}
	if id, ok := tmpl.GetUpdateOnLines([]InstanceLineID{2, 1}, 1); !ok || id != 2 {
		t.Fatalf("GetUpdateOnLines = (%d, %v), want line 2 checked first", id, ok)
	}
}

func TestDynamicEvalRegistration(t *testing.T) {
	d := NewDocument(nil)
	tid, _ := d.AddTemplate("T", symbols.NoFrameID, sp(0, 1), true, "", "")
	tmpl := d.Template(tid)

	e := d.Exprs().Int(1, sp(0, 0))
	if got := tmpl.AddDynamicEval(e); got != 0 {
		t.Fatalf("first eval index = %d, want 0", got)
	}
	if got := tmpl.AddDynamicEval(e); got != 1 {
		t.Fatalf("second eval index = %d, want 1", got)
	}
	if len(tmpl.DynamicEvals) != 2 {
		t.Fatalf("DynamicEvals = %d, want 2", len(tmpl.DynamicEvals))
	}
}

func TestInvariantChartType(t *testing.T) {
	tmpl := Template{Type: "invariant"}
	if !tmpl.IsInvariant() {
		t.Fatalf("invariant type not recognised")
	}
	tmpl.Type = "existential"
	if tmpl.IsInvariant() {
		t.Fatalf("existential chart counted as invariant")
	}
}
