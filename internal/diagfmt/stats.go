package diagfmt

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	"taml/internal/driver"
)

// StatsTable renders the stats pass as aligned tables, automata first,
// charts after, then the instantiation summary line.
func StatsTable(w io.Writer, res *driver.StatsResult) {
	var automata, charts []driver.TemplateStats
	for _, t := range res.Templates {
		if t.IsTA {
			automata = append(automata, t)
		} else {
			charts = append(charts, t)
		}
	}

	if len(automata) > 0 {
		nameWidth := columnWidth(automata)
		fmt.Fprintln(w, "automata:")
		fmt.Fprintf(w, "  %s %6s %6s %6s %6s %6s\n",
			runewidth.FillRight("NAME", nameWidth), "STATES", "EDGES", "BRANCH", "VARS", "FUNCS")
		for _, t := range automata {
			fmt.Fprintf(w, "  %s %6d %6d %6d %6d %6d\n",
				runewidth.FillRight(displayName(t), nameWidth),
				t.States, t.Edges, t.Branchpoints, t.Variables, t.Functions)
		}
	}

	if len(charts) > 0 {
		if len(automata) > 0 {
			fmt.Fprintln(w)
		}
		nameWidth := columnWidth(charts)
		fmt.Fprintln(w, "charts:")
		fmt.Fprintf(w, "  %s %6s %6s %6s %6s %8s %9s\n",
			runewidth.FillRight("NAME", nameWidth), "LINES", "MSGS", "CONDS", "UPDS", "REGIONS", "PRECHART")
		for _, t := range charts {
			fmt.Fprintf(w, "  %s %6d %6d %6d %6d %8d %9d\n",
				runewidth.FillRight(displayName(t), nameWidth),
				t.Lines, t.Messages, t.Conditions, t.Updates, t.Simregions, t.Prechart)
		}
	}

	if len(res.Templates) > 0 {
		fmt.Fprintln(w)
	}
	s := res.Summary
	fmt.Fprintf(w, "instances: %d (%d closed, %d open)  charts: %d  processes: %d  queries: %d\n",
		s.Instances, s.Closed, s.Open, s.LscCharts, s.Processes, s.Queries)
}

func displayName(t driver.TemplateStats) string {
	if t.Dynamic {
		return t.Name + " (dynamic)"
	}
	return t.Name
}

func columnWidth(items []driver.TemplateStats) int {
	width := runewidth.StringWidth("NAME")
	for _, t := range items {
		if w := runewidth.StringWidth(displayName(t)); w > width {
			width = w
		}
	}
	return width
}

// Cuts renders an exploration report, one cut per line, marking the
// prechart portion and the boundary cut.
func Cuts(w io.Writer, rep *driver.ExploreReport) {
	fmt.Fprintf(w, "%s: %d cuts", rep.Template, len(rep.Cuts))
	if rep.Boundary >= 0 {
		fmt.Fprintf(w, ", %d in prechart, boundary at cut %d", rep.Prechart, rep.Boundary)
	}
	fmt.Fprintln(w)

	for i := range rep.Cuts {
		c := &rep.Cuts[i]
		fmt.Fprintf(w, "  #%-3d %s", c.Nr, c.String())
		if rep.Boundary >= 0 && c.InPrechart() && c.Nr <= rep.Boundary {
			fmt.Fprint(w, "  [prechart]")
		}
		if c.Nr == rep.Boundary {
			fmt.Fprint(w, " [boundary]")
		}
		fmt.Fprintln(w)
	}

	if rep.Truncated {
		fmt.Fprintf(w, "exploration truncated at %d cuts\n", rep.Stats.CutsLimit)
	}
	fmt.Fprintf(w, "explored %d cuts, queue max %d, branching factor %.2f\n",
		rep.Stats.CutsExplored, rep.Stats.QueueMaxSize, rep.Stats.BranchingFactor)
	if rep.FromCache {
		fmt.Fprintln(w, "(from cache)")
	}
}
