package internal

import (
	"os"
)

// interpreterState stores the state of a single run of the pipeline
type interpreterState struct {
	source  string
	tokens  []token
	stmts   []stmt
	errors  []error
	printer IPrinter
}

func newInterpreterState(source string, p IPrinter) *interpreterState {
	return &interpreterState{
		source:  source,
		errors:  make([]error, 0),
		printer: p,
	}
}

func (s *interpreterState) setError(err error) {
	s.errors = append(s.errors, err)
}

// Valid returns true if no error was recorded
func (s *interpreterState) Valid() bool {
	return len(s.errors) == 0
}

// PrintErrors prints all errors, returns true if there was any
func (s *interpreterState) PrintErrors() bool {
	for _, e := range s.errors {
		s.printer.Fprintln(os.Stderr, e)
	}
	return !s.Valid()
}
