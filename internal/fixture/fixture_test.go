package fixture

import (
	"testing"

	"taml/internal/scenario"
)

func TestTrainGateDocumentIsClean(t *testing.T) {
	d := TrainGate()

	if d.HasErrors() {
		t.Fatalf("fixture produced diagnostics: %v", d.Errors())
	}
	if len(d.Templates()) != 2 {
		t.Fatalf("templates = %d, want Train and Gate", len(d.Templates()))
	}

	train, ok := d.FindTemplate("Train")
	if !ok {
		t.Fatalf("Train template missing")
	}
	tt := d.Template(train)
	if len(tt.States) != 5 || len(tt.Edges) != 6 {
		t.Errorf("Train body: %d states, %d edges, want 5 and 6", len(tt.States), len(tt.Edges))
	}
	if !tt.Init.IsValid() {
		t.Errorf("Train has no initial location")
	}
	if tt.Unbound != 1 {
		t.Errorf("Train.Unbound = %d, want the open id parameter", tt.Unbound)
	}

	gate, ok := d.FindTemplate("Gate")
	if !ok {
		t.Fatalf("Gate template missing")
	}
	if n := len(d.Template(gate).Edges); n != 2 {
		t.Errorf("Gate edges = %d, want 2", n)
	}

	for _, id := range d.Instances() {
		if !d.Instance(id).IsClosed() {
			t.Errorf("instance %d is not fully bound", id)
		}
	}
	if len(d.Processes()) != 3 {
		t.Errorf("processes = %d, want Train1, Train2, MainGate", len(d.Processes()))
	}
	if len(d.Queries()) != 2 {
		t.Errorf("queries = %d, want 2", len(d.Queries()))
	}
	if prios := d.ChanPriorities(); len(prios) != 1 || len(prios[0].Tail) != 1 {
		t.Errorf("chan priorities = %+v, want one declaration with one tail entry", prios)
	}

	line, ok := d.FindPosition(70)
	if !ok || line.Path != "traingate.tm" || line.Line != 8 {
		t.Errorf("FindPosition(70) = (%+v, %v)", line, ok)
	}
}

func TestTrainGateGuardsRender(t *testing.T) {
	d := TrainGate()
	train, _ := d.FindTemplate("Train")
	tt := d.Template(train)

	var rendered []string
	for i := range tt.Edges {
		if g := tt.Edges[i].Guard; g.IsValid() {
			rendered = append(rendered, d.Exprs().Render(g, d.Table()))
		}
	}
	if len(rendered) != 3 {
		t.Fatalf("guarded edges = %d, want 3", len(rendered))
	}
	if rendered[0] != "x >= 10" {
		t.Errorf("first guard renders %q", rendered[0])
	}
}

func TestSenderReceiverChart(t *testing.T) {
	d := SenderReceiver()

	if d.HasErrors() {
		t.Fatalf("fixture produced diagnostics: %v", d.Errors())
	}

	chart, ok := d.FindTemplate("Handshake")
	if !ok {
		t.Fatalf("Handshake template missing")
	}
	ct := d.Template(chart)
	if ct.IsTA {
		t.Fatalf("chart template flagged as an automaton")
	}
	if !ct.HasPrechart {
		t.Fatalf("prechart message did not mark the template")
	}
	if len(ct.Lines) != 2 {
		t.Fatalf("lines = %d, want sender and receiver", len(ct.Lines))
	}

	regions := ct.Simregions()
	if len(regions) != 3 {
		t.Fatalf("simregions = %d, want req, ack+ready, update", len(regions))
	}
	if !regions[0].InPrechart() {
		t.Errorf("request region should be prechart")
	}
	if !regions[1].HasMessage() || !regions[1].HasCondition() {
		t.Errorf("ack region did not absorb the co-located condition: %s", regions[1].String())
	}
	if !regions[2].HasUpdate() || regions[2].HasMessage() {
		t.Errorf("final region should be the bare update: %s", regions[2].String())
	}
}

func TestSenderReceiverExploration(t *testing.T) {
	d := SenderReceiver()
	chart, _ := d.FindTemplate("Handshake")

	res := scenario.NewExplorer(d.Template(chart)).Explore()
	if len(res.Cuts) != 4 {
		t.Fatalf("cuts = %d, want 4", len(res.Cuts))
	}
	if res.Boundary != 1 {
		t.Errorf("boundary = %d, want the cut after the request", res.Boundary)
	}
	if res.PrechartCuts != 2 {
		t.Errorf("prechart cuts = %d, want 2", res.PrechartCuts)
	}
	if res.Truncated {
		t.Errorf("four-cut chart reported truncation")
	}
}
