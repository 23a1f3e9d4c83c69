package cfg

import "fmt"

// SymbolTable keeps track of the symbols used by a grammar under construction.
// It makes sure that a name denotes either a terminal or a non-terminal,
// never both.
type SymbolTable struct {
	table map[string]Symbol
	order []string
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{table: make(map[string]Symbol)}
}

// Resolve checks for a symbol in the table.
func (t *SymbolTable) Resolve(name string) (Symbol, bool) {
	sym, ok := t.table[name]
	return sym, ok
}

// ResolveOrDefine finds a symbol in the table and inserts sym if not found.
// Returns the symbol stored in the table and a flag, signalling whether the
// symbol has already been present. A present symbol of a different kind is
// an ErrSymbolKindClash.
func (t *SymbolTable) ResolveOrDefine(sym Symbol) (Symbol, bool, error) {
	if sym.IsEmpty() {
		return sym, true, nil
	}
	if old, ok := t.table[sym.name]; ok {
		if old.kind != sym.kind {
			return old, true, fmt.Errorf("%w: %q is a %s, cannot use it as %s",
				ErrSymbolKindClash, sym.name, old.kind, sym.kind)
		}
		return old, true, nil
	}
	t.table[sym.name] = sym
	t.order = append(t.order, sym.name)
	return sym, false, nil
}

// Size returns the number of symbols in the table.
func (t *SymbolTable) Size() int {
	return len(t.table)
}

// Each calls f for every symbol in order of definition.
func (t *SymbolTable) Each(f func(Symbol)) {
	for _, name := range t.order {
		f(t.table[name])
	}
}
