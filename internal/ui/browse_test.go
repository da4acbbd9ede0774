package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"taml/internal/fixture"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestRenderDetailAutomaton(t *testing.T) {
	doc := fixture.TrainGate()
	m := NewBrowseModel(doc).(*browseModel)

	if len(m.entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(m.entries))
	}
	if m.entries[0].name != "Train" || m.entries[0].kind != "automaton" {
		t.Fatalf("entry 0 = %q %q, want Train automaton", m.entries[0].name, m.entries[0].kind)
	}

	out := renderDetail(doc, m.entries[0])
	for _, want := range []string{
		"locations (5):",
		"* Safe",
		"inv x <= 20",
		"edges (6):",
		"Safe -> Appr",
		"sync appr",
		"when x >= 10",
		"variables (1):",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("automaton detail missing %q:\n%s", want, out)
		}
	}
}

func TestRenderDetailChart(t *testing.T) {
	doc := fixture.SenderReceiver()
	m := NewBrowseModel(doc).(*browseModel)

	if len(m.entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(m.entries))
	}
	chart := m.entries[2]
	if chart.kind != "chart" {
		t.Fatalf("kind = %q, want chart", chart.kind)
	}

	out := renderDetail(doc, chart)
	for _, want := range []string{
		"lines (2):",
		"simregions (3):",
		"[prechart]",
		"s -> r: req",
		"r -> s: ack",
		"hot cond count >= 0",
		"update count + 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("chart detail missing %q:\n%s", want, out)
		}
	}
}

func TestBrowseNavigation(t *testing.T) {
	doc := fixture.TrainGate()
	m := NewBrowseModel(doc).(*browseModel)

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if !m.ready {
		t.Fatal("viewport not initialised after window size")
	}

	m.Update(key("j"))
	if m.cursor != 1 {
		t.Fatalf("cursor = %d after j, want 1", m.cursor)
	}
	m.Update(key("j"))
	if m.cursor != 1 {
		t.Fatalf("cursor = %d at list end, want 1", m.cursor)
	}
	m.Update(key("k"))
	if m.cursor != 0 {
		t.Fatalf("cursor = %d after k, want 0", m.cursor)
	}

	m.Update(key("enter"))
	if !m.showing {
		t.Fatal("enter did not open the detail view")
	}
	if view := m.View(); !strings.Contains(view, "Train") {
		t.Errorf("detail view missing template name:\n%s", view)
	}

	m.Update(key("esc"))
	if m.showing {
		t.Fatal("esc did not return to the list")
	}
	if view := m.View(); !strings.Contains(view, "templates") {
		t.Errorf("list view missing title:\n%s", view)
	}

	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q did not produce a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q produced %T, want tea.QuitMsg", cmd())
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"Train", 10, "Train"},
		{"VeryLongTemplateName", 10, "Very..."},
		{"Train", 2, "Tr"},
		{"Train", 0, "Train"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.width); got != tc.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}
