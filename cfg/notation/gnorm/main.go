package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/E1izabeth/Grammars/cfg"
	"github.com/E1izabeth/Grammars/cfg/catalog"
	"github.com/pterm/pterm"
	"github.com/spf13/pflag"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

const version = "0.3.1"

var (
	flagFile        = pflag.StringP("file", "f", "", "Read grammars from the given catalog file instead of the built-in one.")
	flagGrammar     = pflag.StringP("grammar", "g", "", "Run only the grammar with the given name.")
	flagInteractive = pflag.BoolP("interactive", "i", false, "Start an interactive session.")
	flagTrace       = pflag.StringP("trace", "t", "Error", "Trace level [Debug|Info|Error].")
	flagTable       = pflag.Bool("table", false, "Print grammars as tables.")
	flagQuiet       = pflag.BoolP("quiet", "q", false, "Do not print the protocol of the transformations.")
	flagVersion     = pflag.BoolP("version", "v", false, "Give the current version of gnorm and then exit.")
)

// We provide the expression grammar of the examples, built programmatically,
// as a starting point for interactive sessions.
//
//  I ➞ T  |  I + T  |  I - T
//  T ➞ M  |  T * M  |  T / M
//  M ➞ ( I )  |  K
//  K ➞ a  |  b  |  c
//
func makeExprGrammar(opts ...cfg.GrammarOption) *cfg.Grammar {
	b := cfg.NewGrammarBuilder("G")
	b.LHS("I").N("T").End()
	b.LHS("I").N("I").T("+").N("T").End()
	b.LHS("I").N("I").T("-").N("T").End()
	b.LHS("T").N("M").End()
	b.LHS("T").N("T").T("*").N("M").End()
	b.LHS("T").N("T").T("/").N("M").End()
	b.LHS("M").T("(").N("I").T(")").End()
	b.LHS("M").N("K").End()
	b.LHS("K").T("a").End()
	b.LHS("K").T("b").End()
	b.LHS("K").T("c").End()
	g, err := b.Grammar(opts...)
	if err != nil {
		panic(fmt.Errorf("error creating grammar: %s", err.Error()))
	}
	return g
}

func main() {
	pflag.Parse()
	if *flagVersion {
		fmt.Printf("gnorm v%s\n", version)
		return
	}
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*flagTrace))
	//
	cat, err := loadCatalog(*flagFile)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	names := pflag.Args()
	if pflag.Lookup("grammar").Changed {
		names = append(names, *flagGrammar)
	}
	if *flagInteractive {
		if len(names) > 0 {
			fmt.Fprintf(os.Stderr, "Grammar names are not accepted in interactive mode\nDo -h for help.\n")
			os.Exit(1)
		}
		repl(cat)
		return
	}
	b := batch{out: os.Stdout, table: *flagTable, quiet: *flagQuiet}
	if err := b.run(cat, names); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}

// --- Batch mode ------------------------------------------------------------

const separator = "--------------------------------------------"

// batch runs catalog entries and prints every stage.
type batch struct {
	out   io.Writer
	table bool
	quiet bool
}

// run processes the catalog entries with the given names, or all entries
// of cat if names is empty.
func (b batch) run(cat *catalog.Catalog, names []string) error {
	if len(names) == 0 {
		names = cat.Names()
	}
	for _, name := range names {
		e, err := cat.Lookup(name)
		if err != nil {
			return err
		}
		if err := b.runEntry(e); err != nil {
			return err
		}
	}
	fmt.Fprintln(b.out)
	return nil
}

func (b batch) runEntry(e *catalog.Entry) error {
	fmt.Fprintln(b.out, separator)
	fmt.Fprintln(b.out, e.Name)
	if e.Description != "" {
		fmt.Fprintln(b.out, e.Description)
	}
	g, err := e.Grammar(cfg.WithLog(func(line string) {
		fmt.Fprintln(b.out, line)
	}))
	if err != nil {
		return err
	}
	fmt.Fprintln(b.out, "Input:")
	b.print(g)
	opts := e.Options()
	if b.quiet {
		opts = append(opts, cfg.Quiet())
	}
	for _, step := range e.Steps() {
		tracer().Infof("%s: step %s", e.Name, step)
		t, err := cfg.TransformationByName(step)
		if err != nil {
			return err
		}
		if g, err = t(g, opts...); err != nil {
			return fmt.Errorf("grammar %q, step %s: %w", e.Name, step, err)
		}
		fmt.Fprintln(b.out)
		b.print(g)
	}
	return nil
}

func (b batch) print(g *cfg.Grammar) {
	if b.table {
		fmt.Fprint(b.out, grammarTable(g))
		return
	}
	fmt.Fprintln(b.out, g.String())
}

// listEntries gives a short overview of a catalog.
func listEntries(cat *catalog.Catalog) string {
	var sb strings.Builder
	for _, e := range cat.Entries {
		fmt.Fprintf(&sb, "%-10s %s [%s]\n", e.Name, e.Description, strings.Join(e.Steps(), ", "))
	}
	return sb.String()
}
