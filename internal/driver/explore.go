package driver

import (
	"context"
	"fmt"

	"taml/internal/model"
	"taml/internal/observ"
	"taml/internal/scenario"
	"taml/internal/trace"
)

// cacheApp names the XDG cache directory.
const cacheApp = "taml"

// ExploreOptions configures one exploration run.
type ExploreOptions struct {
	MaxCuts int           // 0 = scenario.DefaultMaxCuts
	NoCache bool          // skip the disk cache entirely
	Timer   *observ.Timer // optional phase timings
}

// ExploreReport is the exploration outcome for one chart, either
// computed fresh or restored from the disk cache.
type ExploreReport struct {
	Template  string
	Cuts      []model.Cut
	Prechart  int
	Boundary  int
	Truncated bool
	Stats     scenario.ExplorationStats
	FromCache bool
}

// Explore enumerates the cuts of one chart template. Reports are cached
// on disk keyed by the template signature; any structural edit to the
// chart produces a different key, so hits are always current.
func Explore(ctx context.Context, doc *model.Document, id model.TemplateID, opts ExploreOptions) (*ExploreReport, error) {
	tr := trace.FromContext(ctx)
	span := trace.Begin(tr, trace.ScopePass, "explore", 0)
	stopTimer := opts.Timer.Start("explore")

	tpl := doc.Template(id)
	name := doc.Table().Name(tpl.Sym)

	var cache *DiskCache
	if !opts.NoCache {
		var err error
		cache, err = OpenDiskCache(cacheApp)
		if err != nil {
			span.End("cache open failed")
			return nil, fmt.Errorf("open exploration cache: %w", err)
		}
	}

	sig := Signature(doc, id)

	if cache != nil {
		var payload ExplorePayload
		if hit, err := cache.Get(sig, &payload); err == nil && hit {
			if rep := payloadToReport(&payload, sig, tpl); rep != nil {
				stopTimer("cached")
				span.WithExtra("cache", "hit").End(fmt.Sprintf("%d cuts", len(rep.Cuts)))
				return rep, nil
			}
		}
	}

	res := scenario.NewExplorer(tpl).WithMaxCuts(opts.MaxCuts).Explore()

	rep := &ExploreReport{
		Template:  name,
		Cuts:      res.Cuts,
		Prechart:  res.PrechartCuts,
		Boundary:  res.Boundary,
		Truncated: res.Truncated,
		Stats:     res.Stats,
	}

	if cache != nil {
		// Cache is best-effort, errors are acceptable
		_ = cache.Put(sig, reportToPayload(rep, sig)) //nolint:errcheck
	}

	stopTimer(fmt.Sprintf("%d cuts", len(rep.Cuts)))
	span.End(fmt.Sprintf("%d cuts", len(rep.Cuts)))
	return rep, nil
}

// reportToPayload flattens cuts to region numbers for serialization.
func reportToPayload(rep *ExploreReport, sig Digest) *ExplorePayload {
	p := &ExplorePayload{
		Schema:          cacheSchemaVersion,
		Template:        rep.Template,
		Signature:       sig,
		Cuts:            make([][]int, len(rep.Cuts)),
		PrechartCuts:    rep.Prechart,
		Boundary:        rep.Boundary,
		Truncated:       rep.Truncated,
		CutsExplored:    rep.Stats.CutsExplored,
		CutsLimit:       rep.Stats.CutsLimit,
		QueueMaxSize:    rep.Stats.QueueMaxSize,
		BranchingFactor: rep.Stats.BranchingFactor,
	}
	for i := range rep.Cuts {
		nrs := make([]int, len(rep.Cuts[i].Simregions))
		for j := range rep.Cuts[i].Simregions {
			nrs[j] = rep.Cuts[i].Simregions[j].Nr
		}
		p.Cuts[i] = nrs
	}
	return p
}

// payloadToReport rebuilds full cuts from cached region numbers against
// the live template. Returns nil when the payload does not match the
// current schema or template, which the caller treats as a miss.
func payloadToReport(p *ExplorePayload, sig Digest, tpl *model.Template) *ExploreReport {
	if p == nil || p.Schema != cacheSchemaVersion || p.Signature != sig {
		return nil
	}

	regions := tpl.Simregions()
	rep := &ExploreReport{
		Template:  p.Template,
		Cuts:      make([]model.Cut, len(p.Cuts)),
		Prechart:  p.PrechartCuts,
		Boundary:  p.Boundary,
		Truncated: p.Truncated,
		Stats: scenario.ExplorationStats{
			CutsExplored:    p.CutsExplored,
			CutsLimit:       p.CutsLimit,
			QueueMaxSize:    p.QueueMaxSize,
			BranchingFactor: p.BranchingFactor,
		},
		FromCache: true,
	}
	for i, nrs := range p.Cuts {
		cut := model.NewCut(i)
		for _, nr := range nrs {
			if nr < 0 || nr >= len(regions) {
				return nil
			}
			cut.Add(regions[nr])
		}
		rep.Cuts[i] = cut
	}
	return rep
}
