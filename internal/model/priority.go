package model

import (
	"strings"

	"taml/internal/expr"
	"taml/internal/symbols"
)

// ChanPriorityEntry is one "separator, channel" step of a priority
// declaration. The separator is '<' when the entry outranks everything
// before it and ',' when it shares the preceding level.
type ChanPriorityEntry struct {
	Separator byte
	Expr      expr.ID
}

// ChanPriority is one channel priority declaration: a head channel
// expression followed by separator-tagged channel expressions. The
// expressions must evaluate to a channel or an array of channels;
// checking that is the type checker's job.
type ChanPriority struct {
	Head expr.ID
	Tail []ChanPriorityEntry
}

func (p *ChanPriority) clone() ChanPriority {
	return ChanPriority{
		Head: p.Head,
		Tail: append([]ChanPriorityEntry(nil), p.Tail...),
	}
}

// Render prints the declaration back as source text.
func (p *ChanPriority) Render(tbl *symbols.Table, exprs *expr.Arena) string {
	var b strings.Builder
	b.WriteString("chan priority ")
	b.WriteString(exprs.Render(p.Head, tbl))
	for _, entry := range p.Tail {
		switch entry.Separator {
		case ',':
			b.WriteString(", ")
		default:
			b.WriteString(" < ")
		}
		b.WriteString(exprs.Render(entry.Expr, tbl))
	}
	return b.String()
}
