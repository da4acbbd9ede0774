package model

import (
	"fmt"
	"sort"
	"strings"
)

// noEventNr marks an absent event slot.
const noEventNr = -1

// Simregion is a synchronized group of at most one message, one
// condition and one update occurring at the same logical step across
// the instance lines. All three slots are always present; an absent
// event is the sentinel value with Nr == -1, never a missing field, so
// comparing two simregions is a uniform value comparison. Use
// NewSimregion, not the zero value, to get the sentinels right.
type Simregion struct {
	Nr        int
	Message   Message
	Condition Condition
	Update    Update
}

func NewSimregion() Simregion {
	return Simregion{
		Message:   Message{Nr: noEventNr, Location: noEventNr},
		Condition: Condition{Nr: noEventNr, Location: noEventNr},
		Update:    Update{Nr: noEventNr, Location: noEventNr},
	}
}

func (s *Simregion) HasMessage() bool   { return s.Message.Nr != noEventNr }
func (s *Simregion) HasCondition() bool { return s.Condition.Nr != noEventNr }
func (s *Simregion) HasUpdate() bool    { return s.Update.Nr != noEventNr }

// Loc is the lattice level of the simregion: the largest location of
// its present events, or -1 for an empty region.
func (s *Simregion) Loc() int {
	loc := noEventNr
	if s.HasMessage() && s.Message.Location > loc {
		loc = s.Message.Location
	}
	if s.HasCondition() && s.Condition.Location > loc {
		loc = s.Condition.Location
	}
	if s.HasUpdate() && s.Update.Location > loc {
		loc = s.Update.Location
	}
	return loc
}

// InPrechart reports whether every present event is flagged as part of
// the prechart. A region with mixed flags, or with no events at all,
// is not in the prechart.
func (s *Simregion) InPrechart() bool {
	any := false
	if s.HasMessage() {
		if !s.Message.InPrechart {
			return false
		}
		any = true
	}
	if s.HasCondition() {
		if !s.Condition.InPrechart {
			return false
		}
		any = true
	}
	if s.HasUpdate() {
		if !s.Update.InPrechart {
			return false
		}
		any = true
	}
	return any
}

// Precedence ranks co-located simregions for the merge order: regions
// holding a condition sort first, then plain messages, then bare
// updates.
func (s *Simregion) Precedence() int {
	switch {
	case s.HasCondition():
		return 0
	case s.HasMessage():
		return 1
	default:
		return 2
	}
}

// SetMessage copies the message with the given nr into the slot.
func (s *Simregion) SetMessage(messages []Message, nr int) bool {
	for i := range messages {
		if messages[i].Nr == nr {
			s.Message = messages[i]
			return true
		}
	}
	return false
}

// SetCondition copies the condition with the given nr into the slot.
func (s *Simregion) SetCondition(conditions []Condition, nr int) bool {
	for i := range conditions {
		if conditions[i].Nr == nr {
			s.Condition = conditions[i].clone()
			return true
		}
	}
	return false
}

// SetUpdate copies the update with the given nr into the slot.
func (s *Simregion) SetUpdate(updates []Update, nr int) bool {
	for i := range updates {
		if updates[i].Nr == nr {
			s.Update = updates[i]
			return true
		}
	}
	return false
}

// Equal compares the three event slots by content. Labels compare by
// handle, which coincides with content for events copied out of the
// same document.
func (s *Simregion) Equal(o *Simregion) bool {
	if s.Message != o.Message {
		return false
	}
	if s.Update != o.Update {
		return false
	}
	c, d := &s.Condition, &o.Condition
	if c.Nr != d.Nr || c.Location != d.Location || c.Label != d.Label ||
		c.InPrechart != d.InPrechart || c.Hot != d.Hot ||
		len(c.Anchors) != len(d.Anchors) {
		return false
	}
	for i := range c.Anchors {
		if c.Anchors[i] != d.Anchors[i] {
			return false
		}
	}
	return true
}

// Touches reports whether any present event anchors at line.
func (s *Simregion) Touches(line InstanceLineID) bool {
	if s.HasMessage() && (s.Message.Src == line || s.Message.Dst == line) {
		return true
	}
	if s.HasCondition() && s.Condition.AnchoredAt(line) {
		return true
	}
	return s.HasUpdate() && s.Update.Anchor == line
}

func (s *Simregion) String() string {
	var parts []string
	if s.HasMessage() {
		parts = append(parts, fmt.Sprintf("m%d", s.Message.Nr))
	}
	if s.HasCondition() {
		parts = append(parts, fmt.Sprintf("c%d", s.Condition.Nr))
	}
	if s.HasUpdate() {
		parts = append(parts, fmt.Sprintf("u%d", s.Update.Nr))
	}
	return fmt.Sprintf("s%d(%s)", s.Nr, strings.Join(parts, ","))
}

// Simregions derives the ordered simregion sequence from the
// template's event deques. Each message absorbs the first free
// condition and update co-located on its source or destination line;
// leftover conditions absorb co-located updates on their anchors;
// leftover updates stand alone. The result is ordered by location with
// Precedence breaking ties, and renumbered.
func (t *Template) Simregions() []Simregion {
	condTaken := make([]bool, len(t.Conditions))
	updTaken := make([]bool, len(t.Updates))
	out := make([]Simregion, 0, len(t.Messages)+len(t.Conditions)+len(t.Updates))

	for mi := range t.Messages {
		msg := &t.Messages[mi]
		s := NewSimregion()
		s.SetMessage(t.Messages, msg.Nr)
		lines := []InstanceLineID{msg.Src, msg.Dst}
		if ci, ok := t.freeConditionOnLines(lines, msg.Location, condTaken); ok {
			s.SetCondition(t.Conditions, t.Conditions[ci].Nr)
			condTaken[ci] = true
		}
		if ui, ok := t.freeUpdateOnLines(lines, msg.Location, updTaken); ok {
			s.SetUpdate(t.Updates, t.Updates[ui].Nr)
			updTaken[ui] = true
		}
		out = append(out, s)
	}

	for ci := range t.Conditions {
		if condTaken[ci] {
			continue
		}
		cond := &t.Conditions[ci]
		s := NewSimregion()
		s.SetCondition(t.Conditions, cond.Nr)
		if ui, ok := t.freeUpdateOnLines(cond.Anchors, cond.Location, updTaken); ok {
			s.SetUpdate(t.Updates, t.Updates[ui].Nr)
			updTaken[ui] = true
		}
		out = append(out, s)
	}

	for ui := range t.Updates {
		if updTaken[ui] {
			continue
		}
		s := NewSimregion()
		s.SetUpdate(t.Updates, t.Updates[ui].Nr)
		out = append(out, s)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if li, lj := out[i].Loc(), out[j].Loc(); li != lj {
			return li < lj
		}
		return out[i].Precedence() < out[j].Precedence()
	})
	for i := range out {
		out[i].Nr = i
	}
	return out
}

func (t *Template) freeConditionOnLines(lines []InstanceLineID, y int, taken []bool) (int, bool) {
	for _, line := range lines {
		for i := range t.Conditions {
			if !taken[i] && t.Conditions[i].Location == y && t.Conditions[i].AnchoredAt(line) {
				return i, true
			}
		}
	}
	return -1, false
}

func (t *Template) freeUpdateOnLines(lines []InstanceLineID, y int, taken []bool) (int, bool) {
	for _, line := range lines {
		for i := range t.Updates {
			if !taken[i] && t.Updates[i].Location == y && t.Updates[i].Anchor == line {
				return i, true
			}
		}
	}
	return -1, false
}

// Simregions filters the template-wide sequence down to the regions
// that touch this line, preserving their order. Lines are numbered in
// creation order, which keeps Nr aligned with the line's ID.
func (l *InstanceLine) Simregions(all []Simregion) []Simregion {
	line := InstanceLineID(l.Nr + 1)
	var out []Simregion
	for i := range all {
		if all[i].Touches(line) {
			out = append(out, all[i])
		}
	}
	return out
}
