// Package expr stores the expressions a document hangs off its model
// objects: guards, invariants, initialisers, instance arguments. Nodes
// live in a flat arena addressed by 1-based IDs, so an absent expression
// is the zero ID and whole-document clones keep every ID stable.
//
// The package carries just enough structure to name symbols, compare
// trees and render them back; evaluation and typing stay with the
// callers that need them.
package expr

import (
	"fmt"

	"fortio.org/safecast"

	"taml/internal/source"
	"taml/internal/symbols"
)

// ID names a node in an Arena. The zero ID means "no expression".
type ID uint32

const NoID ID = 0

func (id ID) IsValid() bool { return id != NoID }

type Kind uint8

const (
	KindInvalid Kind = iota
	KindIdent
	KindInt
	KindBool
	KindDouble
	KindText
	KindUnary
	KindBinary
	KindCall
	KindIndex
	KindMember
)

type Op uint8

const (
	OpNone Op = iota
	OpNeg
	OpNot
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpLt
	OpLe
	OpEq
	OpNe
	OpGe
	OpGt
	OpAnd
	OpOr
)

var opStrings = [...]string{
	OpNone: "?",
	OpNeg:  "-",
	OpNot:  "!",
	OpAdd:  "+",
	OpSub:  "-",
	OpMul:  "*",
	OpDiv:  "/",
	OpMod:  "%",
	OpLt:   "<",
	OpLe:   "<=",
	OpEq:   "==",
	OpNe:   "!=",
	OpGe:   ">=",
	OpGt:   ">",
	OpAnd:  "&&",
	OpOr:   "||",
}

func (op Op) String() string {
	if int(op) < len(opStrings) {
		return opStrings[op]
	}
	return "?"
}

// Node is one expression node. Which fields matter depends on Kind:
// Sym for idents, Num for ints and bools, Real for doubles, Text for
// text literals and member names, Op plus Args for operators, Args for
// calls (callee first) and indexing (array, then index).
type Node struct {
	Kind Kind
	Op   Op
	Span source.Span
	Sym  symbols.SymbolID
	Text source.StringID
	Num  int64
	Real float64
	Args []ID
}

// Arena owns every node of one document. Index 0 is reserved.
type Arena struct {
	nodes []Node
}

func NewArena() *Arena {
	return &Arena{nodes: make([]Node, 1)}
}

func (a *Arena) alloc(n Node) ID {
	slot, err := safecast.Conv[uint32](len(a.nodes))
	if err != nil {
		panic(fmt.Errorf("len(nodes) overflow: %w", err))
	}
	a.nodes = append(a.nodes, n)
	return ID(slot)
}

// Get returns the stored node. The pointer is valid until the next
// allocation; hold the ID, not the pointer.
func (a *Arena) Get(id ID) *Node {
	if !id.IsValid() || int(id) >= len(a.nodes) {
		panic(fmt.Sprintf("expr: invalid id %d", id))
	}
	return &a.nodes[id]
}

// Len counts live nodes.
func (a *Arena) Len() int { return len(a.nodes) - 1 }

func (a *Arena) Ident(sym symbols.SymbolID, span source.Span) ID {
	return a.alloc(Node{Kind: KindIdent, Sym: sym, Span: span})
}

func (a *Arena) Int(v int64, span source.Span) ID {
	return a.alloc(Node{Kind: KindInt, Num: v, Span: span})
}

func (a *Arena) Bool(v bool, span source.Span) ID {
	n := Node{Kind: KindBool, Span: span}
	if v {
		n.Num = 1
	}
	return a.alloc(n)
}

func (a *Arena) Double(v float64, span source.Span) ID {
	return a.alloc(Node{Kind: KindDouble, Real: v, Span: span})
}

func (a *Arena) Text(text source.StringID, span source.Span) ID {
	return a.alloc(Node{Kind: KindText, Text: text, Span: span})
}

func (a *Arena) Unary(op Op, operand ID, span source.Span) ID {
	return a.alloc(Node{Kind: KindUnary, Op: op, Args: []ID{operand}, Span: span})
}

func (a *Arena) Binary(op Op, left, right ID, span source.Span) ID {
	return a.alloc(Node{Kind: KindBinary, Op: op, Args: []ID{left, right}, Span: span})
}

func (a *Arena) Call(callee ID, args []ID, span source.Span) ID {
	all := make([]ID, 0, len(args)+1)
	all = append(all, callee)
	all = append(all, args...)
	return a.alloc(Node{Kind: KindCall, Args: all, Span: span})
}

func (a *Arena) Index(array, index ID, span source.Span) ID {
	return a.alloc(Node{Kind: KindIndex, Args: []ID{array, index}, Span: span})
}

func (a *Arena) Member(record ID, name source.StringID, span source.Span) ID {
	return a.alloc(Node{Kind: KindMember, Text: name, Args: []ID{record}, Span: span})
}

// Clone deep-copies the arena. IDs stay stable across the copy.
func (a *Arena) Clone() *Arena {
	out := &Arena{nodes: make([]Node, len(a.nodes))}
	copy(out.nodes, a.nodes)
	for i := range out.nodes {
		if len(out.nodes[i].Args) > 0 {
			out.nodes[i].Args = append([]ID(nil), out.nodes[i].Args...)
		}
	}
	return out
}
