// Package scenario explores the partial order a live-sequence chart
// induces on its simregions. Each instance line orders the regions
// touching it; a region can happen once every earlier region on each of
// its lines has happened. The explorer enumerates the reachable cuts of
// that order breadth-first.
package scenario

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"

	"taml/internal/model"
)

// Order is the happens-before relation of one chart: the chart-wide
// simregion sequence plus, per instance line, the subsequence touching
// that line. Progress through the order is a vector of per-line
// positions.
type Order struct {
	regions  []model.Simregion
	lines    [][]int // per line, indexes into regions in location order
	touch    [][]int // per region, the lines it anchors at
	prechart bool
}

// NewOrder derives the order from the template's simregions.
func NewOrder(t *model.Template) *Order {
	regions := t.Simregions()
	o := &Order{
		regions: regions,
		lines:   make([][]int, len(t.Lines)),
		touch:   make([][]int, len(regions)),
	}
	for ri := range regions {
		if regions[ri].InPrechart() {
			o.prechart = true
		}
		for li := range t.Lines {
			if regions[ri].Touches(model.InstanceLineID(li + 1)) {
				o.lines[li] = append(o.lines[li], ri)
				o.touch[ri] = append(o.touch[ri], li)
			}
		}
	}
	return o
}

// Lines returns the number of instance lines.
func (o *Order) Lines() int { return len(o.lines) }

// Regions returns the chart-wide simregions in location order.
func (o *Order) Regions() []model.Simregion { return o.regions }

// LineRegions returns the regions touching line, in the order they must
// happen on it.
func (o *Order) LineRegions(line int) []model.Simregion {
	out := make([]model.Simregion, len(o.lines[line]))
	for i, ri := range o.lines[line] {
		out[i] = o.regions[ri]
	}
	return out
}

// HasPrechart reports whether any region carries the prechart flag.
func (o *Order) HasPrechart() bool { return o.prechart }

// Enabled lists the regions that can happen next at the given progress:
// a region qualifies when it is the first unconsumed region on every
// line it touches.
func (o *Order) Enabled(progress []int) []int {
	var out []int
next:
	for ri := range o.regions {
		if len(o.touch[ri]) == 0 {
			continue
		}
		for _, li := range o.touch[ri] {
			at := progress[li]
			if at >= len(o.lines[li]) || o.lines[li][at] != ri {
				continue next
			}
		}
		out = append(out, ri)
	}
	return out
}

// Fire advances progress past the region on every line it touches. The
// input vector is left untouched.
func (o *Order) Fire(progress []int, region int) []int {
	out := append([]int(nil), progress...)
	for _, li := range o.touch[region] {
		out[li]++
	}
	return out
}

// CutAt is the frontier of the consumed prefix: for every line that has
// progressed, the latest region consumed on it. A region shared between
// lines appears once.
func (o *Order) CutAt(progress []int, nr int) model.Cut {
	cut := model.NewCut(nr)
	seen := make(map[int]struct{})
	for li, at := range progress {
		if at == 0 {
			continue
		}
		ri := o.lines[li][at-1]
		if _, dup := seen[ri]; dup {
			continue
		}
		seen[ri] = struct{}{}
		cut.Add(o.regions[ri])
	}
	return cut
}

// prechartProgress is the vector consuming exactly the prechart prefix
// of every line.
func (o *Order) prechartProgress() []int {
	out := make([]int, len(o.lines))
	for li := range o.lines {
		for _, ri := range o.lines[li] {
			if !o.regions[ri].InPrechart() {
				break
			}
			out[li]++
		}
	}
	return out
}

// hash builds a canonical key for a progress vector.
func (o *Order) hash(progress []int) string {
	h := sha256.New()
	buf := make([]byte, 8)
	for _, at := range progress {
		binary.BigEndian.PutUint64(buf, uint64(at))
		h.Write(buf)
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}
