package diag

import (
	"testing"

	"taml/internal/source"
)

func span(start, end uint32) source.Span {
	return source.Span{Start: start, End: end}
}

func TestBagRoutesBySeverity(t *testing.T) {
	bag := NewBag(0)

	if !bag.Add(NewError(SemUnknownIdentifier, span(3, 7), "unknown identifier: x")) {
		t.Fatalf("Add(error) = false, want true")
	}
	if !bag.Add(NewWarning(SemShadowsAVariable, span(9, 12), "y shadows a variable")) {
		t.Fatalf("Add(warning) = false, want true")
	}

	if got := len(bag.Errors()); got != 1 {
		t.Fatalf("Errors() len = %d, want 1", got)
	}
	if got := len(bag.Warnings()); got != 1 {
		t.Fatalf("Warnings() len = %d, want 1", got)
	}
	if !bag.HasErrors() {
		t.Fatalf("HasErrors() = false, want true")
	}
	if !bag.HasWarnings() {
		t.Fatalf("HasWarnings() = false, want true")
	}
	if got := bag.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
}

func TestBagRespectsCap(t *testing.T) {
	bag := NewBag(2)

	for i := 0; i < 5; i++ {
		bag.Add(NewError(SemDuplicateDefinition, span(uint32(i), uint32(i)+1), "dup"))
	}
	if got := len(bag.Errors()); got != 2 {
		t.Fatalf("Errors() len = %d, want 2 (capped)", got)
	}

	// The cap applies per log, so warnings still fit.
	if !bag.Add(NewWarning(SemShadowsAVariable, span(0, 1), "shadow")) {
		t.Fatalf("Add(warning) under cap = false, want true")
	}
	if bag.Add(NewWarning(SemShadowsAVariable, span(1, 2), "shadow")) &&
		bag.Add(NewWarning(SemShadowsAVariable, span(2, 3), "shadow")) {
		t.Fatalf("Add(warning) past cap = true, want false")
	}
}

func TestBagClearKeepsOtherLog(t *testing.T) {
	bag := NewBag(0)
	bag.Add(NewError(SemInvalidType, span(0, 1), "invalid type T"))
	bag.Add(NewWarning(SemShadowsAVariable, span(1, 2), "z shadows a variable"))

	bag.ClearErrors()
	if bag.HasErrors() {
		t.Fatalf("HasErrors() after ClearErrors = true, want false")
	}
	if !bag.HasWarnings() {
		t.Fatalf("HasWarnings() after ClearErrors = false, want true")
	}

	bag.ClearWarnings()
	if bag.HasWarnings() {
		t.Fatalf("HasWarnings() after ClearWarnings = true, want false")
	}
}

func TestBagSortOrdersBySpanThenCode(t *testing.T) {
	bag := NewBag(0)
	bag.Add(NewError(SemNoSuchProcess, span(40, 44), "no such process: q"))
	bag.Add(NewError(SemUnknownIdentifier, span(10, 12), "unknown identifier: a"))
	bag.Add(NewError(SemDuplicateDefinition, span(10, 12), "duplicate definition of a"))

	bag.Sort()

	errs := bag.Errors()
	if len(errs) != 3 {
		t.Fatalf("Errors() len = %d, want 3", len(errs))
	}
	wantCodes := []Code{SemUnknownIdentifier, SemDuplicateDefinition, SemNoSuchProcess}
	for i, want := range wantCodes {
		if errs[i].Code != want {
			t.Fatalf("Errors()[%d].Code = %s, want %s", i, errs[i].Code, want)
		}
	}
}

func TestBagCloneIsIndependent(t *testing.T) {
	bag := NewBag(0)
	bag.Add(NewError(SemUnknownIdentifier, span(1, 2), "unknown identifier: v"))

	clone := bag.Clone()
	clone.Add(NewError(SemInvalidType, span(3, 4), "invalid type U"))

	if got := len(bag.Errors()); got != 1 {
		t.Fatalf("original Errors() len = %d after clone mutation, want 1", got)
	}
	if got := len(clone.Errors()); got != 2 {
		t.Fatalf("clone Errors() len = %d, want 2", got)
	}
}
