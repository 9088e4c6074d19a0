package internal

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// Interpreter keeps one global scope alive across runs, which is what
// the REPL needs
type Interpreter struct {
	printer     IPrinter
	logger      *logrus.Logger
	interactive bool
	now         func() time.Time

	globals *env
}

// Option configures an Interpreter
type Option func(*Interpreter)

// WithLogger sets the logger used to trace the pipeline
func WithLogger(logger *logrus.Logger) Option {
	return func(in *Interpreter) {
		in.logger = logger
	}
}

// WithInteractive makes a runtime error abort only the failing top level
// statement instead of the whole run
func WithInteractive() Option {
	return func(in *Interpreter) {
		in.interactive = true
	}
}

// WithClock replaces the time source of the clock native
func WithClock(now func() time.Time) Option {
	return func(in *Interpreter) {
		in.now = now
	}
}

// NewInterpreter creates an interpreter with its globals seeded
func NewInterpreter(p IPrinter, opts ...Option) *Interpreter {
	in := &Interpreter{
		printer: p,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(in)
	}
	if in.logger == nil {
		in.logger = logrus.New()
		in.logger.SetOutput(os.Stderr)
		in.logger.SetLevel(logrus.WarnLevel)
	}
	in.globals = newEnv(nil)
	defineGlobals(in.globals, in.now)
	return in
}

// Run scans, parses and executes source. Nothing executes if scanning or
// parsing reported an error. Returns false if any error was reported.
func (in *Interpreter) Run(source string) bool {
	state := newInterpreterState(source, in.printer)

	if !in.frontEnd(state) {
		state.PrintErrors()
		return false
	}

	start := time.Now()
	exec := &exec{
		state:  state,
		env:    in.globals,
		logger: in.logger,
	}
	ok := exec.interpret(in.interactive)
	in.logger.WithFields(logrus.Fields{
		"stmts":   len(state.stmts),
		"errors":  len(state.errors),
		"elapsed": time.Since(start),
	}).Debug("exec")

	state.PrintErrors()
	return ok
}

// DumpTokens prints every token of source, one per line
func (in *Interpreter) DumpTokens(source string) bool {
	state := newInterpreterState(source, in.printer)
	in.scan(state)
	for i := range state.tokens {
		in.printer.Println(state.tokens[i].String())
	}
	return !state.PrintErrors()
}

// DumpTree prints the syntax tree of source as s-expressions
func (in *Interpreter) DumpTree(source string) bool {
	state := newInterpreterState(source, in.printer)
	if in.frontEnd(state) {
		for _, st := range state.stmts {
			in.printer.Println(sprintStmt(st))
		}
	}
	return !state.PrintErrors()
}

// frontEnd scans and parses. The parser runs even after scan errors so
// that all the errors of the source are collected at once.
func (in *Interpreter) frontEnd(state *interpreterState) bool {
	in.scan(state)

	start := time.Now()
	newParser(state).parse()
	in.logger.WithFields(logrus.Fields{
		"stmts":   len(state.stmts),
		"errors":  len(state.errors),
		"elapsed": time.Since(start),
	}).Debug("parse")

	return state.Valid()
}

func (in *Interpreter) scan(state *interpreterState) {
	start := time.Now()
	newLexer(state).scan()
	in.logger.WithFields(logrus.Fields{
		"tokens":  len(state.tokens),
		"errors":  len(state.errors),
		"elapsed": time.Since(start),
	}).Debug("scan")
}

// RunSourceWithPrinter runs source code on a fresh interpreter instance
func RunSourceWithPrinter(source string, p IPrinter) bool {
	return NewInterpreter(p).Run(source)
}
