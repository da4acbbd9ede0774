// Package driver runs read-only analysis passes over a built document:
// a parallel per-template stats pass and cut exploration behind a disk
// cache. Passes never mutate the document, so they are safe to run on
// a document shared with other readers.
package driver

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"taml/internal/model"
	"taml/internal/observ"
	"taml/internal/trace"
)

// TemplateStats counts the structural elements of one template.
type TemplateStats struct {
	ID      model.TemplateID
	Name    string
	IsTA    bool
	Dynamic bool

	// Automaton body
	States       int
	Branchpoints int
	Edges        int

	// Scenario body
	Lines      int
	Messages   int
	Conditions int
	Updates    int
	Simregions int
	Prechart   int

	// Declarations
	Variables int
	Functions int
}

// InstanceSummary aggregates the document's instantiation level.
type InstanceSummary struct {
	Instances int
	Closed    int
	Open      int
	LscCharts int
	Processes int
	Queries   int
}

// StatsResult is one stats pass over a document.
type StatsResult struct {
	Templates []TemplateStats
	Summary   InstanceSummary
}

// StatsOptions controls the parallel stats pass.
type StatsOptions struct {
	Jobs  int           // worker limit, <=0 means GOMAXPROCS
	Timer *observ.Timer // optional phase timings
}

// Stats walks every template in parallel and counts its structure.
// Static templates come first in declaration order, dynamic ones after.
func Stats(ctx context.Context, doc *model.Document, opts StatsOptions) (*StatsResult, error) {
	tr := trace.FromContext(ctx)
	span := trace.Begin(tr, trace.ScopePass, "stats", 0)
	stopTimer := opts.Timer.Start("stats")

	ids := make([]model.TemplateID, 0, len(doc.Templates())+len(doc.DynamicTemplates()))
	ids = append(ids, doc.Templates()...)
	ids = append(ids, doc.DynamicTemplates()...)

	out := &StatsResult{Summary: summarize(doc)}
	if len(ids) == 0 {
		stopTimer("no templates")
		span.End("no templates")
		return out, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Indices are unique per goroutine, no mutex needed.
	results := make([]TemplateStats, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(ids)))

	for i, id := range ids {
		g.Go(func(i int, id model.TemplateID) func() error {
			return func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				results[i] = templateStats(doc, id, tr, span.ID())
				return nil
			}
		}(i, id))
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out.Templates = results
	note := fmt.Sprintf("%d templates", len(ids))
	stopTimer(note)
	span.End(note)
	return out, nil
}

func templateStats(doc *model.Document, id model.TemplateID, tr trace.Tracer, parent uint64) TemplateStats {
	t := doc.Template(id)
	name := doc.Table().Name(t.Sym)

	sp := trace.Begin(tr, trace.ScopeTemplate, "template:"+name, parent)

	st := TemplateStats{
		ID:           id,
		Name:         name,
		IsTA:         t.IsTA,
		Dynamic:      t.Dynamic,
		States:       len(t.States),
		Branchpoints: len(t.Branchpoints),
		Edges:        len(t.Edges),
		Lines:        len(t.Lines),
		Messages:     len(t.Messages),
		Conditions:   len(t.Conditions),
		Updates:      len(t.Updates),
		Variables:    len(t.Variables),
		Functions:    len(t.Functions),
	}

	if !t.IsTA {
		regions := t.Simregions()
		st.Simregions = len(regions)
		for i := range regions {
			if regions[i].InPrechart() {
				st.Prechart++
			}
		}
	}

	sp.End("")
	return st
}

func summarize(doc *model.Document) InstanceSummary {
	var s InstanceSummary
	for _, id := range doc.Instances() {
		s.Instances++
		if doc.Instance(id).IsClosed() {
			s.Closed++
		} else {
			s.Open++
		}
	}
	s.LscCharts = len(doc.LscInstances())
	s.Processes = len(doc.Processes())
	s.Queries = len(doc.Queries())
	return s
}
