package expr

import "taml/internal/symbols"

// Equal compares two trees structurally. Spans are ignored, so the same
// expression written in two places still compares equal.
func (a *Arena) Equal(x, y ID) bool {
	if x == y {
		return true
	}
	if !x.IsValid() || !y.IsValid() {
		return false
	}
	nx, ny := a.Get(x), a.Get(y)
	if nx.Kind != ny.Kind || nx.Op != ny.Op ||
		nx.Sym != ny.Sym || nx.Text != ny.Text ||
		nx.Num != ny.Num || nx.Real != ny.Real ||
		len(nx.Args) != len(ny.Args) {
		return false
	}
	for i := range nx.Args {
		if !a.Equal(nx.Args[i], ny.Args[i]) {
			return false
		}
	}
	return true
}

// FreeVars collects every symbol the tree mentions, deduplicated in
// first-occurrence order.
func (a *Arena) FreeVars(id ID) []symbols.SymbolID {
	if !id.IsValid() {
		return nil
	}
	var out []symbols.SymbolID
	seen := make(map[symbols.SymbolID]struct{})
	a.walkFree(id, seen, &out)
	return out
}

func (a *Arena) walkFree(id ID, seen map[symbols.SymbolID]struct{}, out *[]symbols.SymbolID) {
	n := a.Get(id)
	if n.Kind == KindIdent && n.Sym.IsValid() {
		if _, dup := seen[n.Sym]; !dup {
			seen[n.Sym] = struct{}{}
			*out = append(*out, n.Sym)
		}
	}
	for _, arg := range n.Args {
		if arg.IsValid() {
			a.walkFree(arg, seen, out)
		}
	}
}

// Mentions reports whether the tree names sym anywhere.
func (a *Arena) Mentions(id ID, sym symbols.SymbolID) bool {
	if !id.IsValid() {
		return false
	}
	n := a.Get(id)
	if n.Kind == KindIdent && n.Sym == sym {
		return true
	}
	for _, arg := range n.Args {
		if a.Mentions(arg, sym) {
			return true
		}
	}
	return false
}
