package cfg

import "fmt"

// Option configures a transformation.
type Option func(*options)

type options struct {
	noStartEpsilon bool
	quiet          bool
}

// NoStartEpsilon suppresses adding S → ε to the result of a transformation,
// even if start symbol S is nullable.
func NoStartEpsilon() Option {
	return func(o *options) {
		o.noStartEpsilon = true
	}
}

// Quiet suppresses output to the diagnostic sink of a grammar. Tracing is
// not affected.
func Quiet() Option {
	return func(o *options) {
		o.quiet = true
	}
}

func collect(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// --- Diagnostics -----------------------------------------------------------

// diagnostics sends trace lines to the tracer and to a grammar's sink.
type diagnostics struct {
	sink func(string)
}

func (g *Grammar) diagnostics(quiet bool) diagnostics {
	if quiet {
		return diagnostics{}
	}
	return diagnostics{sink: g.log}
}

func (d diagnostics) line(s string) {
	tracer().Debugf("%s", s)
	if d.sink != nil {
		d.sink(s)
	}
}

func (d diagnostics) linef(format string, args ...interface{}) {
	d.line(fmt.Sprintf(format, args...))
}

// set traces a named set as "\tname = {...}".
func (d diagnostics) set(name string, set fmt.Stringer) {
	d.line("\t" + name + " = " + set.String())
}
