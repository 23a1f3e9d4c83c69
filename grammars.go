package grammars

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Token categories are defined by
// the scanners producing them.
type TokType int

// Token represents an input token, usually produced by a scanner for grammar
// notation. An example would be a token for a non-terminal:
//
//    TokType = NonTerm     // identifier for this kind of tokens (scanner specific)
//    Lexeme  = "<Expr>"    // lexeme how it appeared in the input
//    Span    = 2:5(17…23)  // line 2, column 5, bytes 17 to 23 of the input
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span locates a lexeme within its input. It denotes a start byte offset and
// the offset just behind the end, together with line and column of the start
// position. Lines and columns count from 1.
type Span struct {
	From, To  uint64 // (x…y)
	Line, Col int
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s.To - s.From
}

// IsNull is true for the zero span.
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns a span covering s and other. Line and column are taken
// from the span starting first.
func (s Span) Extend(other Span) Span {
	if other.From < s.From {
		s.From = other.From
		s.Line, s.Col = other.Line, other.Col
	}
	if other.To > s.To {
		s.To = other.To
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d(%d…%d)", s.Line, s.Col, s.From, s.To)
}
