package notation

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	grammars "github.com/E1izabeth/Grammars"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types of the notation scanner.
const (
	EOF grammars.TokType = iota
	NonTerm
	Term
	Empty
	Def
	Bar
	Sep
)

var tokenNames = map[grammars.TokType]string{
	EOF:     "end of input",
	NonTerm: "non-terminal",
	Term:    "terminal",
	Empty:   "ε",
	Def:     "':='",
	Bar:     "'|'",
	Sep:     "end of rule",
}

// literals are punctuation characters which denote terminals.
var literals = []string{
	"(", ")", "[", "]", "{", "}",
	"+", "-", "*", "/", "^", "%",
	",", ".", "=", "!", "?", "&", "$", "@", "~",
}

var definitions = []string{":=", "::=", "->", "-->"}

// token is the grammars.Token produced by the notation scanner. For
// symbols, value is the name of the symbol, i.e. the lexeme stripped of
// brackets or quotes.
type token struct {
	typ    grammars.TokType
	value  string
	lexeme string
	span   grammars.Span
}

var _ grammars.Token = token{}

func (t token) TokType() grammars.TokType { return t.typ }
func (t token) Lexeme() string             { return t.lexeme }
func (t token) Span() grammars.Span        { return t.span }

func (t token) String() string {
	if t.typ == EOF {
		return tokenNames[EOF]
	}
	return fmt.Sprintf("%s %q", tokenNames[t.typ], t.lexeme)
}

// --- Lexer -----------------------------------------------------------------

var (
	lexer     *lexmachine.Lexer
	lexerErr  error
	lexerOnce sync.Once
)

// compiledLexer creates the DFA on first use.
func compiledLexer() (*lexmachine.Lexer, error) {
	lexerOnce.Do(func() {
		lexer, lexerErr = newLexer()
	})
	return lexer, lexerErr
}

func newLexer() (*lexmachine.Lexer, error) {
	lex := lexmachine.NewLexer()
	lex.Add([]byte(`#[^\n]*`), skip)
	lex.Add([]byte(`( |\t|\r)+`), skip)
	lex.Add([]byte(`\n`), makeToken(Sep, 0))
	lex.Add([]byte(`;`), makeToken(Sep, 0))
	lex.Add([]byte(`\|`), makeToken(Bar, 0))
	lex.Add([]byte(`ε`), makeToken(Empty, 0))
	lex.Add([]byte(`→`), makeToken(Def, 0))
	for _, def := range definitions {
		lex.Add([]byte(escape(def)), makeToken(Def, 0))
	}
	lex.Add([]byte(`[A-Z]`), makeToken(NonTerm, 0))
	lex.Add([]byte(`<([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_|')*>`), makeToken(NonTerm, 1))
	lex.Add([]byte(`[a-z]`), makeToken(Term, 0))
	lex.Add([]byte(`[0-9]`), makeToken(Term, 0))
	lex.Add([]byte(`'[^'\n]*'`), makeToken(Term, 1))
	lex.Add([]byte(`"[^"\n]*"`), makeToken(Term, 1))
	for _, lit := range literals {
		lex.Add([]byte(escape(lit)), makeToken(Term, 0))
	}
	if err := lex.Compile(); err != nil {
		tracer().Errorf("error compiling DFA: %v", err)
		return nil, err
	}
	return lex, nil
}

// escape quotes every character of a literal for use as a regular expression.
func escape(lit string) string {
	return "\\" + strings.Join(strings.Split(lit, ""), "\\")
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken creates an action which wraps a match into a lexmachine token.
// The token value is the match, stripped by strip bytes at both ends.
func makeToken(typ grammars.TokType, strip int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		value := string(m.Bytes[strip : len(m.Bytes)-strip])
		return s.Token(int(typ), value, m), nil
	}
}

// --- Scanner ---------------------------------------------------------------

// scanner reads the tokens of one input text.
type scanner struct {
	lms   *lexmachine.Scanner
	input []byte
}

func newScanner(input string) (*scanner, error) {
	lex, err := compiledLexer()
	if err != nil {
		return nil, err
	}
	text := []byte(input)
	lms, err := lex.Scanner(text)
	if err != nil {
		return nil, err
	}
	return &scanner{lms: lms, input: text}, nil
}

// next returns the next token. Input not matching any token results in a
// *SyntaxError.
func (sc *scanner) next() (token, error) {
	tok, err, eof := sc.lms.Next()
	if err != nil {
		var ui *machines.UnconsumedInput
		if errors.As(err, &ui) {
			from, to := ui.StartTC, ui.FailTC
			if to <= from || to > len(sc.input) {
				_, size := utf8.DecodeRune(sc.input[from:])
				to = from + size
			}
			lexeme := string(sc.input[from:to])
			return token{}, &SyntaxError{
				Span:   sc.span(from, to),
				Lexeme: lexeme,
				Msg:    "unexpected character",
			}
		}
		return token{}, err
	}
	if eof {
		end := len(sc.input)
		return token{typ: EOF, span: sc.span(end, end)}, nil
	}
	lt := tok.(*lexmachine.Token)
	t := token{
		typ:    grammars.TokType(lt.Type),
		value:  lt.Value.(string),
		lexeme: string(lt.Lexeme),
		span:   sc.span(lt.TC, lt.TC+len(lt.Lexeme)),
	}
	tracer().Debugf("token %v at %v", t, t.span)
	return t, nil
}

// span locates bytes from…to of the input. Columns count runes.
func (sc *scanner) span(from, to int) grammars.Span {
	line, lineStart := 1, 0
	for i := 0; i < from; i++ {
		if sc.input[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	col := utf8.RuneCount(sc.input[lineStart:from]) + 1
	return grammars.Span{From: uint64(from), To: uint64(to), Line: line, Col: col}
}
