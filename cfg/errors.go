package cfg

import "errors"

// ErrUndefinedNonTerminal is returned if a transformation needs the rule of
// a non-terminal which is not defined by the grammar.
var ErrUndefinedNonTerminal = errors.New("undefined non-terminal")

// ErrAmbiguousStart is returned when constructing a grammar with more than
// one candidate start symbol.
var ErrAmbiguousStart = errors.New("ambiguous start symbol")

// ErrMalformedAlternative is returned for alternatives which are empty or
// mix ε with other symbols.
var ErrMalformedAlternative = errors.New("malformed alternative")

// ErrSymbolKindClash is returned by the grammar builder if a name is used
// for a terminal as well as for a non-terminal.
var ErrSymbolKindClash = errors.New("symbol used as terminal and non-terminal")

// ErrTooManyNullables is returned by ε-elimination for an alternative with
// more than MaxNullableOccurrences nullable non-terminals.
var ErrTooManyNullables = errors.New("too many nullable occurrences in alternative")

// ErrUnknownTransformation is returned for pipeline steps not naming a
// transformation.
var ErrUnknownTransformation = errors.New("unknown transformation")
