package main

import (
	"fmt"
	"strings"

	"github.com/E1izabeth/Grammars/cfg"
	"github.com/dekarrin/rosed"
	"github.com/pterm/pterm"
)

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

var tableOptions = rosed.Options{
	TableBorders: true,
	TableHeaders: true,
}

// grammarTable renders the rules of g as a text table. The start rule is
// marked with an asterisk.
func grammarTable(g *cfg.Grammar) string {
	data := [][]string{{"", "Non-terminal", "Alternatives"}}
	for _, r := range g.Rules() {
		marker := ""
		if r.IsStart() {
			marker = "*"
		}
		alts := make([]string, r.Len())
		for i, a := range r.Alternatives() {
			alts[i] = a.String()
		}
		data = append(data, []string{marker, r.Name(), strings.Join(alts, " | ")})
	}
	return rosed.Edit("").InsertTableOpts(0, data, 80, tableOptions).String()
}

// setsTable renders the symbol sets the transformations of g compute.
func setsTable(g *cfg.Grammar) string {
	VN, VT := cfg.Reachable(g)
	data := [][]string{
		{"Set", "Symbols"},
		{"Producing", cfg.Producing(g).String()},
		{"Reachable non-terminals", VN.String()},
		{"Reachable terminals", VT.String()},
		{"Nullable", cfg.Nullable(g).String()},
	}
	seen := make(map[string]bool)
	for _, r := range g.Rules() {
		if seen[r.Name()] {
			continue
		}
		seen[r.Name()] = true
		if chain, ok := cfg.ChainClosure(g, r.Name()); ok {
			data = append(data, []string{fmt.Sprintf("Chain(%s)", r.Name()), chain.String()})
		}
	}
	return rosed.Edit("").InsertTableOpts(0, data, 80, tableOptions).String()
}

// printTree displays g as a tree: rules, alternatives and symbols.
func printTree(g *cfg.Grammar) {
	label := g.Name()
	if label == "" {
		label = "grammar"
	}
	pterm.Println(label)
	root := pterm.NewTreeFromLeveledList(leveledRules(g))
	pterm.DefaultTree.WithRoot(root).Render()
}

func leveledRules(g *cfg.Grammar) pterm.LeveledList {
	ll := pterm.LeveledList{}
	for _, r := range g.Rules() {
		ll = append(ll, pterm.LeveledListItem{Level: 0, Text: r.Name()})
		for _, a := range r.Alternatives() {
			ll = append(ll, pterm.LeveledListItem{Level: 1, Text: a.String()})
			if a.Len() < 2 {
				continue
			}
			for _, s := range a.Symbols() {
				ll = append(ll, pterm.LeveledListItem{
					Level: 2,
					Text:  fmt.Sprintf("%s (%s)", s.Name(), s.Kind()),
				})
			}
		}
	}
	tracer().Debugf("|ll| = %d", len(ll))
	return ll
}
