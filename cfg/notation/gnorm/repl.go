package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/E1izabeth/Grammars/cfg"
	"github.com/E1izabeth/Grammars/cfg/catalog"
	"github.com/E1izabeth/Grammars/cfg/notation"
	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
)

const helpText = `Rules in notation, e.g. "S := aB | ε", are added to the current grammar.
Commands:
  :producing :reachable :epsilon :chain   apply a transformation
  :run [step ...]     apply a pipeline of transformations (default all four)
  :undo               revert the last transformation or change
  :show               print the current grammar
  :table              print the current grammar as a table
  :tree               display the current grammar as a tree
  :sets               print producing, reachable, nullable symbols and chains
  :start X            make X the start symbol
  :list               list the grammars of the catalog
  :load name          load a grammar from the catalog
  :clear              start with an empty grammar
  :quiet              toggle the protocol of the transformations
  :noeps              toggle adding S → ε
  :help               print this text
  :quit               quit`

// Intp is our interpreter object.
type Intp struct {
	g       *cfg.Grammar
	history []*cfg.Grammar
	cat     *catalog.Catalog
	out     io.Writer
	quiet   bool
	noEps   bool
}

func newIntp(cat *catalog.Catalog, out io.Writer) *Intp {
	intp := &Intp{cat: cat, out: out}
	intp.g = makeExprGrammar(cfg.WithLog(intp.log))
	return intp
}

// log is the diagnostic sink of all grammars of a session.
func (intp *Intp) log(line string) {
	fmt.Fprintln(intp.out, line)
}

func (intp *Intp) options() []cfg.Option {
	var opts []cfg.Option
	if intp.quiet {
		opts = append(opts, cfg.Quiet())
	}
	if intp.noEps {
		opts = append(opts, cfg.NoStartEpsilon())
	}
	return opts
}

// repl starts interactive mode.
func repl(cat *catalog.Catalog) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: "gnorm> ",
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem(":producing"), readline.PcItem(":reachable"),
			readline.PcItem(":epsilon"), readline.PcItem(":chain"),
			readline.PcItem(":run"), readline.PcItem(":undo"),
			readline.PcItem(":show"), readline.PcItem(":table"),
			readline.PcItem(":tree"), readline.PcItem(":sets"),
			readline.PcItem(":start"), readline.PcItem(":list"),
			readline.PcItem(":load"), readline.PcItem(":clear"),
			readline.PcItem(":quiet"), readline.PcItem(":noeps"),
			readline.PcItem(":help"), readline.PcItem(":quit"),
		),
	})
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	defer rl.Close()
	intp := newIntp(cat, os.Stdout)
	pterm.Info.Println("Welcome to gnorm")
	pterm.Info.Println("Current grammar is the expression grammar, type :help for help")
	intp.Eval(":show")
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	fmt.Println("Good bye!")
}

var errUsage = errors.New("usage")

// Eval executes a command or adds the rules on line to the current grammar.
func (intp *Intp) Eval(line string) (bool, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false, nil
	}
	if !strings.HasPrefix(line, ":") {
		return false, intp.addRules(line)
	}
	args := strings.Fields(line)
	cmd := strings.TrimPrefix(args[0], ":")
	args = args[1:]
	tracer().Debugf("command %s %v", cmd, args)
	switch cmd {
	case cfg.StepProducing, cfg.StepReachable, cfg.StepEpsilon, cfg.StepChain:
		return false, intp.transform(cmd)
	case "run":
		return false, intp.run(args)
	case "undo":
		if len(intp.history) == 0 {
			return false, errors.New("nothing to undo")
		}
		intp.g = intp.history[len(intp.history)-1]
		intp.history = intp.history[:len(intp.history)-1]
		intp.show()
	case "show":
		intp.show()
	case "table":
		fmt.Fprint(intp.out, grammarTable(intp.g))
	case "tree":
		printTree(intp.g)
	case "sets":
		fmt.Fprint(intp.out, setsTable(intp.g))
	case "start":
		if len(args) != 1 {
			return false, fmt.Errorf("%w: :start <non-terminal>", errUsage)
		}
		return false, intp.setStart(args[0])
	case "list":
		fmt.Fprint(intp.out, listEntries(intp.cat))
	case "load":
		if len(args) != 1 {
			return false, fmt.Errorf("%w: :load <name>", errUsage)
		}
		return false, intp.load(args[0])
	case "clear":
		g, err := cfg.NewGrammar(nil, cfg.WithLog(intp.log))
		if err != nil {
			return false, err
		}
		intp.replace(g)
	case "quiet":
		intp.quiet = !intp.quiet
		fmt.Fprintf(intp.out, "protocol %s\n", onOff(!intp.quiet))
	case "noeps":
		intp.noEps = !intp.noEps
		fmt.Fprintf(intp.out, "S → ε %s\n", onOff(!intp.noEps))
	case "help":
		fmt.Fprintln(intp.out, helpText)
	case "quit", "q", "exit":
		return true, nil
	default:
		return false, fmt.Errorf("unknown command :%s, type :help for help", cmd)
	}
	return false, nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (intp *Intp) show() {
	if intp.g.Size() == 0 {
		fmt.Fprintln(intp.out, "(no rules)")
		return
	}
	fmt.Fprintln(intp.out, intp.g.String())
}

// replace makes g the current grammar, remembering the previous one.
func (intp *Intp) replace(g *cfg.Grammar) {
	intp.history = append(intp.history, intp.g)
	intp.g = g
}

func (intp *Intp) addRules(text string) error {
	if intp.g.Size() == 0 {
		g, err := notation.Parse(text, cfg.WithName(intp.g.Name()), cfg.WithLog(intp.log))
		if err != nil {
			return err
		}
		intp.replace(g)
		return nil
	}
	rules, err := notation.ParseRules(text)
	if err != nil {
		return err
	}
	g, err := intp.g.Extend(rules...)
	if err != nil {
		return err
	}
	intp.replace(g)
	return nil
}

func (intp *Intp) transform(step string) error {
	t, err := cfg.TransformationByName(step)
	if err != nil {
		return err
	}
	g, err := t(intp.g, intp.options()...)
	if err != nil {
		return err
	}
	intp.replace(g)
	intp.show()
	return nil
}

func (intp *Intp) run(steps []string) error {
	if len(steps) == 0 {
		steps = cfg.DefaultPipeline
	}
	stages, err := cfg.Pipeline(intp.g, steps, intp.options()...)
	if err != nil {
		return err
	}
	for _, stage := range stages {
		fmt.Fprintf(intp.out, "after %s:\n%s\n", stage.Step, stage.Grammar)
	}
	intp.replace(stages[len(stages)-1].Grammar)
	return nil
}

func (intp *Intp) setStart(name string) error {
	if !intp.g.Defines(name) {
		return fmt.Errorf("%w: %s", cfg.ErrUndefinedNonTerminal, name)
	}
	rules := intp.g.Rules()
	for i, r := range rules {
		rules[i] = cfg.NewRule(r.Name(), false, r.Alternatives()...)
	}
	g, err := cfg.NewGrammar(rules, cfg.WithName(intp.g.Name()), cfg.WithStart(name), cfg.WithLog(intp.log))
	if err != nil {
		return err
	}
	intp.replace(g)
	return nil
}

func (intp *Intp) load(name string) error {
	e, err := intp.cat.Lookup(name)
	if err != nil {
		return err
	}
	g, err := e.Grammar(cfg.WithLog(intp.log))
	if err != nil {
		return err
	}
	intp.replace(g)
	intp.noEps = e.NoStartEpsilon
	intp.show()
	return nil
}
