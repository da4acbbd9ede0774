package diag

import (
	"sort"
)

// Bag accumulates structural diagnostics in two append-only logs. It is
// owned independently of the document it describes so read-only passes can
// keep reporting; callers sharing one Bag across goroutines must serialize
// the appends themselves.
type Bag struct {
	errors   []Diagnostic
	warnings []Diagnostic
	max      int
}

// NewBag creates a sink capped at max entries per log; max <= 0 means
// unlimited.
func NewBag(max int) *Bag {
	return &Bag{max: max}
}

// Add routes a diagnostic into the matching log. Returns false when the
// log already holds max entries.
func (b *Bag) Add(d Diagnostic) bool {
	switch d.Severity {
	case SevError:
		if b.max > 0 && len(b.errors) >= b.max {
			return false
		}
		b.errors = append(b.errors, d)
	default:
		if b.max > 0 && len(b.warnings) >= b.max {
			return false
		}
		b.warnings = append(b.warnings, d)
	}
	return true
}

func (b *Bag) HasErrors() bool   { return len(b.errors) > 0 }
func (b *Bag) HasWarnings() bool { return len(b.warnings) > 0 }

// Errors returns the error log. Callers must not modify the slice.
func (b *Bag) Errors() []Diagnostic { return b.errors }

// Warnings returns the warning log. Callers must not modify the slice.
func (b *Bag) Warnings() []Diagnostic { return b.warnings }

func (b *Bag) Len() int { return len(b.errors) + len(b.warnings) }

// ClearErrors resets the error log, e.g. between independent checking
// passes over the same document.
func (b *Bag) ClearErrors() { b.errors = b.errors[:0] }

// ClearWarnings resets the warning log.
func (b *Bag) ClearWarnings() { b.warnings = b.warnings[:0] }

// Sort orders each log by span start, end, then code for deterministic
// output.
func (b *Bag) Sort() {
	byPos := func(items []Diagnostic) func(i, j int) bool {
		return func(i, j int) bool {
			di, dj := items[i], items[j]
			if di.Span != dj.Span {
				return di.Span.Before(dj.Span)
			}
			return di.Code < dj.Code
		}
	}
	sort.SliceStable(b.errors, byPos(b.errors))
	sort.SliceStable(b.warnings, byPos(b.warnings))
}

// Clone returns an independent copy of the sink.
func (b *Bag) Clone() *Bag {
	out := &Bag{max: b.max}
	if len(b.errors) > 0 {
		out.errors = append(out.errors, b.errors...)
	}
	if len(b.warnings) > 0 {
		out.warnings = append(out.warnings, b.warnings...)
	}
	return out
}
