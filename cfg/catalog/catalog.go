package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
	"github.com/E1izabeth/Grammars/cfg"
	"github.com/E1izabeth/Grammars/cfg/notation"
)

// FormatName is the value of the format header of catalog files.
const FormatName = "GRAMMARS"

var (
	// ErrFormat is returned for files without a 'format = "GRAMMARS"' header.
	ErrFormat = errors.New(`missing 'format = "GRAMMARS"' header`)

	// ErrUnknownKey is returned for catalog files containing keys which are
	// not part of the catalog format, usually misspelled ones.
	ErrUnknownKey = errors.New("unknown key")

	// ErrDuplicateName is returned if two grammar entries have the same name.
	ErrDuplicateName = errors.New("duplicate grammar name")

	// ErrEmptyGrammar is returned for entries without name or rules.
	ErrEmptyGrammar = errors.New("incomplete grammar entry")

	// ErrNotFound is returned when looking up a grammar not in a catalog.
	ErrNotFound = errors.New("no such grammar")
)

//go:embed default.toml
var defaultCatalog []byte

// Catalog is a collection of named grammars.
type Catalog struct {
	Format  string  `toml:"format"`
	Entries []Entry `toml:"grammar"`
}

// Entry is a grammar of a catalog, together with the transformations to
// apply to it.
type Entry struct {
	Name           string   `toml:"name"`
	Description    string   `toml:"description"`
	Text           string   `toml:"text"`
	Start          string   `toml:"start"`
	Pipeline       []string `toml:"pipeline"`
	NoStartEpsilon bool     `toml:"no_start_epsilon"`
}

type header struct {
	Format string `toml:"format"`
}

// Default returns the catalog of example grammars.
func Default() (*Catalog, error) {
	c, err := Decode(defaultCatalog)
	if err != nil {
		return nil, fmt.Errorf("default catalog: %w", err)
	}
	return c, nil
}

// Load reads a catalog file.
func Load(path string) (*Catalog, error) {
	path = filepath.Clean(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%q: reading from disk: %w", path, err)
	}
	c, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	tracer().Infof("loaded %d grammars from %s", len(c.Entries), path)
	return c, nil
}

// Decode reads a catalog from TOML data and checks all of its entries:
// grammar texts must be free of syntax errors and pipelines must name
// known transformations only.
func Decode(data []byte) (*Catalog, error) {
	h, err := scanHeader(data)
	if err != nil {
		return nil, fmt.Errorf("detecting file format: %w", err)
	}
	if strings.ToUpper(h.Format) != FormatName {
		return nil, ErrFormat
	}
	c := &Catalog{}
	md, err := toml.Decode(string(data), c)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	seen := make(map[string]bool, len(c.Entries))
	for i := range c.Entries {
		e := &c.Entries[i]
		if err := e.validate(); err != nil {
			return nil, err
		}
		if seen[e.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, e.Name)
		}
		seen[e.Name] = true
	}
	return c, nil
}

// scanHeader reads the top-level table of a catalog file, i.e. everything
// before the first table header.
func scanHeader(data []byte) (header, error) {
	end := -1
	onNewLine := true
	for i, b := range data {
		if onNewLine && b == '[' {
			end = i
			break
		}
		if b == '\n' {
			onNewLine = true
		} else if !unicode.IsSpace(rune(b)) {
			onNewLine = false
		}
	}
	scan := data
	if end != -1 {
		scan = data[:end]
	}
	var h header
	err := toml.Unmarshal(scan, &h)
	return h, err
}

// Lookup finds a grammar by name.
func (c *Catalog) Lookup(name string) (*Entry, error) {
	for i := range c.Entries {
		if c.Entries[i].Name == name {
			return &c.Entries[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Names lists the names of all grammars of c, in order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Entries))
	for i, e := range c.Entries {
		names[i] = e.Name
	}
	return names
}

// --- Entries ---------------------------------------------------------------

func (e *Entry) validate() error {
	if e.Name == "" {
		return fmt.Errorf("%w: grammar without name", ErrEmptyGrammar)
	}
	for _, step := range e.Pipeline {
		if _, err := cfg.TransformationByName(step); err != nil {
			return fmt.Errorf("grammar %q: %w", e.Name, err)
		}
	}
	g, err := e.Grammar()
	if err != nil {
		return err
	}
	if g.Size() == 0 {
		return fmt.Errorf("%w: grammar %q has no rules", ErrEmptyGrammar, e.Name)
	}
	return nil
}

// Grammar parses the text of e. The grammar is named after e.
func (e *Entry) Grammar(opts ...cfg.GrammarOption) (*cfg.Grammar, error) {
	gopts := []cfg.GrammarOption{cfg.WithName(e.Name)}
	if e.Start != "" {
		gopts = append(gopts, cfg.WithStart(e.Start))
	}
	g, err := notation.Parse(e.Text, append(gopts, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("grammar %q: %w", e.Name, err)
	}
	if e.Start != "" && !g.Defines(e.Start) {
		return nil, fmt.Errorf("grammar %q: start symbol %s: %w", e.Name, e.Start, cfg.ErrUndefinedNonTerminal)
	}
	return g, nil
}

// Steps returns the transformation pipeline of e.
func (e *Entry) Steps() []string {
	if len(e.Pipeline) == 0 {
		return cfg.DefaultPipeline
	}
	return e.Pipeline
}

// Options returns the transformation options of e.
func (e *Entry) Options() []cfg.Option {
	if e.NoStartEpsilon {
		return []cfg.Option{cfg.NoStartEpsilon()}
	}
	return nil
}

// Run parses the grammar of e and applies its pipeline. It returns the
// input grammar and the result of every step.
func (e *Entry) Run(opts ...cfg.GrammarOption) (*cfg.Grammar, []cfg.Stage, error) {
	g, err := e.Grammar(opts...)
	if err != nil {
		return nil, nil, err
	}
	tracer().Debugf("running %s on grammar %s", strings.Join(e.Steps(), ", "), e.Name)
	stages, err := cfg.Pipeline(g, e.Steps(), e.Options()...)
	if err != nil {
		return g, stages, fmt.Errorf("grammar %q: %w", e.Name, err)
	}
	return g, stages, nil
}
