package cfg

import "fmt"

// Kind discriminates the variants of grammar symbols.
type Kind int8

// Kinds of grammar symbols. EmptyKind is reserved for ε, the empty string.
const (
	TerminalKind Kind = iota
	NonTerminalKind
	EmptyKind
)

func (k Kind) String() string {
	switch k {
	case TerminalKind:
		return "terminal"
	case NonTerminalKind:
		return "non-terminal"
	case EmptyKind:
		return "empty"
	}
	return fmt.Sprintf("Kind(%d)", int8(k))
}

// EpsilonName is the display name of the empty-string symbol.
const EpsilonName = "ε"

// Symbol is a grammar symbol: a terminal, a non-terminal or ε.
// Symbols are small values and may be compared with ==.
type Symbol struct {
	kind Kind
	name string
}

// T creates a terminal symbol.
func T(name string) Symbol {
	return Symbol{kind: TerminalKind, name: name}
}

// N creates a non-terminal symbol.
func N(name string) Symbol {
	return Symbol{kind: NonTerminalKind, name: name}
}

// Epsilon returns the symbol for the empty string. It is neither a terminal
// nor a non-terminal.
func Epsilon() Symbol {
	return Symbol{kind: EmptyKind, name: EpsilonName}
}

// Kind returns the variant of a symbol.
func (s Symbol) Kind() Kind {
	return s.kind
}

// Name returns the name of a symbol.
func (s Symbol) Name() string {
	return s.name
}

// IsTerminal is true for terminals. ε is not a terminal.
func (s Symbol) IsTerminal() bool {
	return s.kind == TerminalKind
}

// IsNonTerminal is true for non-terminals.
func (s Symbol) IsNonTerminal() bool {
	return s.kind == NonTerminalKind
}

// IsEmpty is true for ε.
func (s Symbol) IsEmpty() bool {
	return s.kind == EmptyKind
}

func (s Symbol) String() string {
	return s.name
}
