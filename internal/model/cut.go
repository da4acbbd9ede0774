package model

import (
	"strings"
)

// Cut is an antichain of simregions: one consistent snapshot of how far
// each instance line has progressed. Membership is by value equality,
// not insertion order, so two cuts holding the same regions compare
// equal however they were built.
type Cut struct {
	Nr         int
	Simregions []Simregion
}

func NewCut(nr int) Cut {
	return Cut{Nr: nr}
}

// Add appends a simregion to the cut.
func (c *Cut) Add(s Simregion) {
	c.Simregions = append(c.Simregions, s)
}

// Contains reports whether the cut holds a region equal to s.
func (c *Cut) Contains(s *Simregion) bool {
	for i := range c.Simregions {
		if c.Simregions[i].Equal(s) {
			return true
		}
	}
	return false
}

// Erase removes the first region equal to s, if any.
func (c *Cut) Erase(s *Simregion) {
	for i := range c.Simregions {
		if c.Simregions[i].Equal(s) {
			c.Simregions = append(c.Simregions[:i], c.Simregions[i+1:]...)
			return
		}
	}
}

// Equals compares two cuts as sets.
func (c *Cut) Equals(o *Cut) bool {
	if len(c.Simregions) != len(o.Simregions) {
		return false
	}
	matched := make([]bool, len(o.Simregions))
outer:
	for i := range c.Simregions {
		for j := range o.Simregions {
			if !matched[j] && c.Simregions[i].Equal(&o.Simregions[j]) {
				matched[j] = true
				continue outer
			}
		}
		return false
	}
	return true
}

// InPrechart reports whether every region in the cut is flagged
// prechart.
func (c *Cut) InPrechart() bool {
	for i := range c.Simregions {
		if !c.Simregions[i].InPrechart() {
			return false
		}
	}
	return true
}

// InPrechartWith reports whether the cut still lies in the prechart
// given one of its following simregions. The partial order makes
// prechart membership monotone, so one following region speaks for all
// of them: if it has left the prechart, the cut is at or past the
// boundary even when its own regions are all prechart-flagged.
func (c *Cut) InPrechartWith(following *Simregion) bool {
	return following.InPrechart() && c.InPrechart()
}

// Clone returns an independent copy of the cut.
func (c *Cut) Clone() Cut {
	out := Cut{Nr: c.Nr}
	if len(c.Simregions) > 0 {
		out.Simregions = make([]Simregion, len(c.Simregions))
		for i := range c.Simregions {
			out.Simregions[i] = c.Simregions[i]
			out.Simregions[i].Condition = c.Simregions[i].Condition.clone()
		}
	}
	return out
}

func (c *Cut) String() string {
	parts := make([]string, len(c.Simregions))
	for i := range c.Simregions {
		parts[i] = c.Simregions[i].String()
	}
	return "CUT(" + strings.Join(parts, " ") + ")"
}
