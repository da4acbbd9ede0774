// Package ui renders an interactive browser over a built document:
// a template list on the left of the flow, a per-template detail pane
// behind enter. Single-threaded within the Bubble Tea event loop.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"taml/internal/model"
	"taml/internal/symbols"
)

type templateEntry struct {
	id   model.TemplateID
	name string
	kind string
}

type browseModel struct {
	doc      *model.Document
	entries  []templateEntry
	cursor   int
	viewport viewport.Model
	showing  bool
	ready    bool
	width    int
	height   int
}

// NewBrowseModel returns a Bubble Tea model listing every template of
// the document.
func NewBrowseModel(doc *model.Document) tea.Model {
	entries := make([]templateEntry, 0, len(doc.Templates())+len(doc.DynamicTemplates()))
	for _, id := range doc.Templates() {
		entries = append(entries, templateEntry{id: id, name: templateName(doc, id), kind: templateKind(doc.Template(id))})
	}
	for _, id := range doc.DynamicTemplates() {
		entries = append(entries, templateEntry{id: id, name: templateName(doc, id), kind: templateKind(doc.Template(id))})
	}
	return &browseModel{doc: doc, entries: entries, width: 80, height: 24}
}

func templateName(doc *model.Document, id model.TemplateID) string {
	return doc.Table().Name(doc.Template(id).Sym)
}

func templateKind(t *model.Template) string {
	switch {
	case t.Dynamic:
		return "dynamic"
	case t.IsTA:
		return "automaton"
	default:
		return "chart"
	}
}

func (m *browseModel) Init() tea.Cmd {
	return nil
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 2
		footerHeight := 2
		viewportHeight := m.height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(m.width, viewportHeight)
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = viewportHeight
		}
		return m, nil

	case tea.KeyMsg:
		if m.showing {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m *browseModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}

	case "enter", "right", "l":
		if len(m.entries) == 0 {
			break
		}
		m.showing = true
		if m.ready {
			m.viewport.SetContent(renderDetail(m.doc, m.entries[m.cursor]))
			m.viewport.GotoTop()
		}
	}
	return m, nil
}

func (m *browseModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "esc", "left", "h":
		m.showing = false

	case "down", "j":
		m.viewport.LineDown(1)

	case "up", "k":
		m.viewport.LineUp(1)

	case "ctrl+d":
		m.viewport.HalfViewDown()

	case "ctrl+u":
		m.viewport.HalfViewUp()

	case "g", "home":
		m.viewport.GotoTop()

	case "G", "end":
		m.viewport.GotoBottom()
	}
	return m, nil
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	kindStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func (m *browseModel) View() string {
	if m.showing {
		return m.detailView()
	}
	return m.listView()
}

func (m *browseModel) listView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("templates"))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString("  (document has no templates)\n")
	}

	nameWidth := m.width - 16
	if nameWidth < 12 {
		nameWidth = 12
	}
	for i, e := range m.entries {
		marker := "  "
		name := truncate(e.name, nameWidth)
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
			name = cursorStyle.Render(name)
		}
		fmt.Fprintf(&b, "%s%s %s\n", marker, name, kindStyle.Render(e.kind))
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("enter: open  j/k: move  q: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *browseModel) detailView() string {
	e := m.entries[m.cursor]

	var b strings.Builder
	b.WriteString(titleStyle.Render(e.name))
	b.WriteString(kindStyle.Render("  " + e.kind))
	b.WriteString("\n\n")
	if m.ready {
		b.WriteString(m.viewport.View())
	} else {
		b.WriteString(renderDetail(m.doc, e))
	}
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("esc: back  j/k: scroll  q: quit"))
	b.WriteString("\n")
	return b.String()
}

// renderDetail prints one template's structure: locations and edges
// for automata, lines and events for charts.
func renderDetail(doc *model.Document, e templateEntry) string {
	t := doc.Template(e.id)
	table := doc.Table()
	exprs := doc.Exprs()

	var b strings.Builder

	if t.IsTA {
		fmt.Fprintf(&b, "locations (%d):\n", len(t.States))
		for i := range t.States {
			s := &t.States[i]
			marker := " "
			if s.Sym == t.Init {
				marker = "*"
			}
			fmt.Fprintf(&b, "  %s %s", marker, table.Name(s.Sym))
			if s.Invariant.IsValid() {
				fmt.Fprintf(&b, "  inv %s", exprs.Render(s.Invariant, table))
			}
			b.WriteString("\n")
		}

		fmt.Fprintf(&b, "edges (%d):\n", len(t.Edges))
		for i := range t.Edges {
			ed := &t.Edges[i]
			fmt.Fprintf(&b, "  %s -> %s", endpointName(t, table, ed.Src), endpointName(t, table, ed.Dst))
			if ed.Guard.IsValid() {
				fmt.Fprintf(&b, "  when %s", exprs.Render(ed.Guard, table))
			}
			if ed.Sync.IsValid() {
				fmt.Fprintf(&b, "  sync %s", exprs.Render(ed.Sync, table))
			}
			b.WriteString("\n")
		}
	} else {
		fmt.Fprintf(&b, "lines (%d):\n", len(t.Lines))
		for i := range t.Lines {
			fmt.Fprintf(&b, "  %s\n", table.Name(t.Lines[i].Sym))
		}

		regions := t.Simregions()
		fmt.Fprintf(&b, "simregions (%d):\n", len(regions))
		for i := range regions {
			r := &regions[i]
			pch := ""
			if r.InPrechart() {
				pch = "  [prechart]"
			}
			fmt.Fprintf(&b, "  @%d %s%s\n", r.Loc(), r.String(), pch)
			if r.HasMessage() {
				msg := &r.Message
				fmt.Fprintf(&b, "      %s -> %s", table.Name(t.Line(msg.Src).Sym), table.Name(t.Line(msg.Dst).Sym))
				if msg.Label.IsValid() {
					fmt.Fprintf(&b, ": %s", exprs.Render(msg.Label, table))
				}
				b.WriteString("\n")
			}
			if r.HasCondition() {
				cond := &r.Condition
				temp := "cold"
				if cond.Hot {
					temp = "hot"
				}
				fmt.Fprintf(&b, "      %s cond", temp)
				if cond.Label.IsValid() {
					fmt.Fprintf(&b, " %s", exprs.Render(cond.Label, table))
				}
				b.WriteString("\n")
			}
			if r.HasUpdate() {
				upd := &r.Update
				b.WriteString("      update")
				if upd.Label.IsValid() {
					fmt.Fprintf(&b, " %s", exprs.Render(upd.Label, table))
				}
				b.WriteString("\n")
			}
		}
	}

	if n := len(t.Variables); n > 0 {
		fmt.Fprintf(&b, "variables (%d):\n", n)
		for i := range t.Variables {
			fmt.Fprintf(&b, "  %s\n", table.Name(t.Variables[i].Sym))
		}
	}
	if n := len(t.Functions); n > 0 {
		fmt.Fprintf(&b, "functions (%d):\n", n)
		for i := range t.Functions {
			fmt.Fprintf(&b, "  %s\n", table.Name(t.Functions[i].Sym))
		}
	}

	return b.String()
}

func endpointName(t *model.Template, table *symbols.Table, ep model.Endpoint) string {
	switch {
	case ep.IsState():
		return table.Name(t.State(ep.State()).Sym)
	case ep.IsBranchpoint():
		return table.Name(t.Branchpoint(ep.Branchpoint()).Sym)
	default:
		return "?"
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
