package expr

import (
	"fmt"
	"strconv"
	"strings"

	"taml/internal/symbols"
)

var opPrecedence = [...]int{
	OpOr:  1,
	OpAnd: 2,
	OpEq:  3, OpNe: 3,
	OpLt: 4, OpLe: 4, OpGe: 4, OpGt: 4,
	OpAdd: 5, OpSub: 5,
	OpMul: 6, OpDiv: 6, OpMod: 6,
}

// Render prints the tree back as source text, resolving symbol and text
// IDs through the table. Parentheses appear only where precedence needs
// them.
func (a *Arena) Render(id ID, table *symbols.Table) string {
	if !id.IsValid() {
		return ""
	}
	var b strings.Builder
	a.render(&b, id, table, 0)
	return b.String()
}

func (a *Arena) render(b *strings.Builder, id ID, table *symbols.Table, parent int) {
	n := a.Get(id)
	switch n.Kind {
	case KindIdent:
		if n.Sym.IsValid() {
			b.WriteString(table.Name(n.Sym))
		} else {
			b.WriteString("<unresolved>")
		}
	case KindInt:
		b.WriteString(strconv.FormatInt(n.Num, 10))
	case KindBool:
		if n.Num != 0 {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindDouble:
		b.WriteString(strconv.FormatFloat(n.Real, 'g', -1, 64))
	case KindText:
		fmt.Fprintf(b, "%q", table.Strings().MustLookup(n.Text))
	case KindUnary:
		b.WriteString(n.Op.String())
		a.render(b, n.Args[0], table, 7)
	case KindBinary:
		prec := 0
		if int(n.Op) < len(opPrecedence) {
			prec = opPrecedence[n.Op]
		}
		if prec < parent {
			b.WriteByte('(')
		}
		a.render(b, n.Args[0], table, prec)
		b.WriteByte(' ')
		b.WriteString(n.Op.String())
		b.WriteByte(' ')
		a.render(b, n.Args[1], table, prec+1)
		if prec < parent {
			b.WriteByte(')')
		}
	case KindCall:
		a.render(b, n.Args[0], table, 7)
		b.WriteByte('(')
		for i, arg := range n.Args[1:] {
			if i > 0 {
				b.WriteString(", ")
			}
			a.render(b, arg, table, 0)
		}
		b.WriteByte(')')
	case KindIndex:
		a.render(b, n.Args[0], table, 7)
		b.WriteByte('[')
		a.render(b, n.Args[1], table, 0)
		b.WriteByte(']')
	case KindMember:
		a.render(b, n.Args[0], table, 7)
		b.WriteByte('.')
		b.WriteString(table.Strings().MustLookup(n.Text))
	default:
		b.WriteString("<invalid>")
	}
}
