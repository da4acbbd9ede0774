// Package observ collects wall-clock timings for document analysis
// phases. The driver feeds a Timer while running passes; the CLI
// renders the summary when --timings is set.
package observ

import (
	"fmt"
	"strings"
	"time"
)

// Phase is one finished measurement.
type Phase struct {
	Name string
	Dur  time.Duration
	Note string
}

// Timer accumulates phase durations. A nil Timer swallows all calls,
// so callers never guard their measurements.
type Timer struct {
	phases []Phase
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer { return &Timer{} }

// Start begins measuring a phase. The returned function stops the
// clock and records the phase with an optional note; calling it more
// than once records nothing further.
func (t *Timer) Start(name string) func(note string) {
	if t == nil {
		return func(string) {}
	}
	begin := time.Now()
	done := false
	return func(note string) {
		if done {
			return
		}
		done = true
		t.phases = append(t.phases, Phase{Name: name, Dur: time.Since(begin), Note: note})
	}
}

// Phases returns the recorded measurements in completion order.
func (t *Timer) Phases() []Phase {
	if t == nil {
		return nil
	}
	return t.phases
}

// Summary renders the phases as an aligned block for the terminal.
func (t *Timer) Summary() string {
	var b strings.Builder
	b.WriteString("timings:\n")
	var total time.Duration
	for _, p := range t.Phases() {
		total += p.Dur
		fmt.Fprintf(&b, "  %-20s %7.2f ms", p.Name, millis(p.Dur))
		if p.Note != "" {
			fmt.Fprintf(&b, "  (%s)", p.Note)
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "  %-20s %7.2f ms\n", "total", millis(total))
	return b.String()
}

// PhaseReport is the serializable form of one timed phase.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report aggregates all phases with the total duration in milliseconds.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

// Report builds the serializable aggregate.
func (t *Timer) Report() Report {
	phases := t.Phases()
	if len(phases) == 0 {
		return Report{}
	}
	out := Report{Phases: make([]PhaseReport, len(phases))}
	var total time.Duration
	for i, p := range phases {
		total += p.Dur
		out.Phases[i] = PhaseReport{Name: p.Name, DurationMS: millis(p.Dur), Note: p.Note}
	}
	out.TotalMS = millis(total)
	return out
}

func millis(d time.Duration) float64 { return float64(d) / float64(time.Millisecond) }
