package scenario

import (
	"taml/internal/model"
)

// DefaultMaxCuts bounds the exploration when the caller sets no limit.
const DefaultMaxCuts = 10000

// Explorer enumerates the reachable cuts of one chart.
type Explorer struct {
	order   *Order
	maxCuts int
}

// NewExplorer derives the chart's order and prepares an exploration
// with the default cut limit.
func NewExplorer(t *model.Template) *Explorer {
	return &Explorer{order: NewOrder(t), maxCuts: DefaultMaxCuts}
}

// WithMaxCuts caps how many distinct cuts the exploration may visit.
func (e *Explorer) WithMaxCuts(max int) *Explorer {
	e.maxCuts = max
	return e
}

// Order exposes the derived order the exploration runs over.
func (e *Explorer) Order() *Order { return e.order }

// Result is one exploration's outcome. Cuts are distinct and numbered
// in discovery order; Boundary is the Nr of the cut that closes the
// prechart, -1 when the chart has no prechart or the exploration never
// reached it.
type Result struct {
	Cuts         []model.Cut
	PrechartCuts int
	Boundary     int
	Truncated    bool
	Stats        ExplorationStats
}

// ExplorationStats are metrics of the search itself.
type ExplorationStats struct {
	CutsExplored    int
	CutsLimit       int
	QueueMaxSize    int
	BranchingFactor float64
}

// Explore walks the progress vectors breadth-first, deduplicating them
// by canonical hash, and collects one cut per vector.
func (e *Explorer) Explore() *Result {
	o := e.order
	limit := e.maxCuts
	if limit <= 0 {
		limit = DefaultMaxCuts
	}
	res := &Result{Boundary: -1, Stats: ExplorationStats{CutsLimit: limit}}

	boundary := ""
	if o.prechart {
		boundary = o.hash(o.prechartProgress())
	}

	start := make([]int, len(o.lines))
	queue := [][]int{start}
	visited := map[string]struct{}{o.hash(start): {}}
	maxQueue := 1
	totalEnabled := 0
	branched := 0

	for len(queue) > 0 && len(res.Cuts) < limit {
		current := queue[0]
		queue = queue[1:]
		key := o.hash(current)

		nr := len(res.Cuts)
		cut := o.CutAt(current, nr)
		if o.prechart && cut.InPrechart() {
			res.PrechartCuts++
		}
		if key == boundary {
			res.Boundary = nr
		}
		res.Cuts = append(res.Cuts, cut)

		enabled := o.Enabled(current)
		if len(enabled) > 0 {
			totalEnabled += len(enabled)
			branched++
		}
		for _, ri := range enabled {
			next := o.Fire(current, ri)
			nextKey := o.hash(next)
			if _, ok := visited[nextKey]; ok {
				continue
			}
			visited[nextKey] = struct{}{}
			queue = append(queue, next)
			if len(queue) > maxQueue {
				maxQueue = len(queue)
			}
		}
	}

	res.Truncated = len(queue) > 0
	res.Stats.CutsExplored = len(res.Cuts)
	res.Stats.QueueMaxSize = maxQueue
	if branched > 0 {
		res.Stats.BranchingFactor = float64(totalEnabled) / float64(branched)
	}
	return res
}
