package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"taml/internal/driver"
	"taml/internal/fixture"
	"taml/internal/model"
	"taml/internal/scenario"
)

func TestStatsTableSections(t *testing.T) {
	res := &driver.StatsResult{
		Templates: []driver.TemplateStats{
			{Name: "Train", IsTA: true, States: 5, Edges: 6, Variables: 1},
			{Name: "Handshake", Lines: 2, Messages: 2, Conditions: 1, Updates: 1, Simregions: 3, Prechart: 1},
			{Name: "Spawner", IsTA: true, Dynamic: true, States: 1},
		},
		Summary: driver.InstanceSummary{Instances: 4, Closed: 3, Open: 1, LscCharts: 1, Processes: 3, Queries: 2},
	}

	var buf bytes.Buffer
	StatsTable(&buf, res)
	out := buf.String()

	for _, want := range []string{
		"automata:",
		"charts:",
		"Train",
		"Spawner (dynamic)",
		"Handshake",
		"STATES",
		"REGIONS",
		"instances: 4 (3 closed, 1 open)  charts: 1  processes: 3  queries: 2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestStatsTableEmptyDocument(t *testing.T) {
	var buf bytes.Buffer
	StatsTable(&buf, &driver.StatsResult{})
	out := buf.String()

	if strings.Contains(out, "automata:") || strings.Contains(out, "charts:") {
		t.Errorf("sections rendered for empty result:\n%s", out)
	}
	if !strings.Contains(out, "instances: 0") {
		t.Errorf("missing summary line:\n%s", out)
	}
}

func TestCutsRendersBoundary(t *testing.T) {
	doc := fixture.SenderReceiver()
	chart := doc.Templates()[2]
	res := scenario.NewExplorer(doc.Template(chart)).Explore()

	rep := &driver.ExploreReport{
		Template:  "Handshake",
		Cuts:      res.Cuts,
		Prechart:  res.PrechartCuts,
		Boundary:  res.Boundary,
		Truncated: res.Truncated,
		Stats:     res.Stats,
	}

	var buf bytes.Buffer
	Cuts(&buf, rep)
	out := buf.String()

	for _, want := range []string{
		"Handshake: 4 cuts, 2 in prechart, boundary at cut 1",
		"#0   CUT()  [prechart]",
		"[boundary]",
		"explored 4 cuts",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("cuts output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "(from cache)") {
		t.Errorf("unexpected cache note:\n%s", out)
	}
}

func TestCutsWithoutPrechart(t *testing.T) {
	rep := &driver.ExploreReport{
		Template: "Plain",
		Cuts:     []model.Cut{model.NewCut(0)},
		Boundary: -1,
	}

	var buf bytes.Buffer
	Cuts(&buf, rep)
	out := buf.String()

	if !strings.Contains(out, "Plain: 1 cuts") {
		t.Errorf("missing header:\n%s", out)
	}
	if strings.Contains(out, "prechart") || strings.Contains(out, "boundary") {
		t.Errorf("prechart markers on plain chart:\n%s", out)
	}

	rep.FromCache = true
	buf.Reset()
	Cuts(&buf, rep)
	if !strings.Contains(buf.String(), "(from cache)") {
		t.Errorf("missing cache note:\n%s", buf.String())
	}
}
