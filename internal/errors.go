package internal

import (
	"errors"
	"fmt"
)

// Scanner errors
var errUnexpectedChar = errors.New("Unexpected character")
var errUnterminatedString = errors.New("Unterminated string")

// Parser errors
var errUnexpectedEOF = errors.New("Unexpected end of input")
var errInvalidToken = errors.New("Invalid token")
var errExpectedSomething = errors.New("Unexpected token")
var errInvalidAssignment = errors.New("Invalid assignment target")

// Runtime errors
var errReturnNotInAFunc = errors.New("Can't return from top-level code")
var errWrongNumArgs = errors.New("Wrong number of arguments")
var errNotCallable = errors.New("Can only call functions")
var errOperandShouldBeNumber = errors.New("Operand must be a number")
var errOperandsShouldBeNumber = errors.New("Operands must be numbers")
var errUndefinedVariable = errors.New("Undefined variable")
var errStackOverflow = errors.New("Stack overflow")

// Operator lookup errors, surfaced as errOperandsShouldBeNumber
var errUndefinedOp = errors.New("Undefined operator")
var errExpectedNumber = errors.New("Expected number")
var errExpectedString = errors.New("Expected string")

func report(line int, place, message string) string {
	return fmt.Sprintf("[line %d] Error%s: %s", line, place, message)
}

func at(tk *token) string {
	if tk.token == tkEOF {
		return " at end"
	}
	return fmt.Sprintf(" at '%s'", tk.lexeme)
}

// ScanError is reported by the scanner, which keeps going after it
type ScanError struct {
	err    error
	line   int
	lexeme string
}

func (e *ScanError) Error() string {
	if e.lexeme != "" {
		return report(e.line, "", fmt.Sprintf("%s '%s'.", e.err, e.lexeme))
	}
	return report(e.line, "", e.err.Error()+".")
}

func (e *ScanError) Unwrap() error {
	return e.err
}

// Line where the error was found
func (e *ScanError) Line() int {
	return e.line
}

// ParseError aborts the statement being parsed. token is the offending
// token: the unexpected one, the invalid one or the '=' of a bad assignment.
type ParseError struct {
	err      error
	token    *token
	expected string
}

func (e *ParseError) Error() string {
	var message string
	switch e.err {
	case errUnexpectedEOF:
		message = fmt.Sprintf("%s, expected %s.", e.err, e.expected)
	case errExpectedSomething:
		message = fmt.Sprintf("Expected %s but found '%s'.", e.expected, e.token.lexeme)
	case errInvalidToken:
		message = fmt.Sprintf("%s, expected expression.", e.err)
	default:
		message = e.err.Error() + "."
	}
	return report(e.token.line, at(e.token), message)
}

func (e *ParseError) Unwrap() error {
	return e.err
}

// Line where the error was found
func (e *ParseError) Line() int {
	return e.token.line
}

// RuntimeError aborts evaluation of the current statement
type RuntimeError struct {
	err      error
	token    *token
	operands []interface{}
	expected int
	actual   int
}

func (e *RuntimeError) Error() string {
	var message string
	switch e.err {
	case errOperandShouldBeNumber:
		message = fmt.Sprintf("%s, found %s.", e.err, repr(e.operands[0]))
	case errOperandsShouldBeNumber:
		if e.token.token == tkPlus {
			message = fmt.Sprintf(
				"Operands must be two numbers or two strings, found %s and %s.",
				repr(e.operands[0]),
				repr(e.operands[1]),
			)
		} else {
			message = fmt.Sprintf("%s, found %s and %s.", e.err, repr(e.operands[0]), repr(e.operands[1]))
		}
	case errNotCallable:
		message = fmt.Sprintf("%s, found %s.", e.err, repr(e.operands[0]))
	case errWrongNumArgs:
		message = fmt.Sprintf("Expected %d arguments but got %d.", e.expected, e.actual)
	case errUndefinedVariable:
		message = fmt.Sprintf("%s '%s'.", e.err, e.token.lexeme)
	default:
		message = e.err.Error() + "."
	}
	return report(e.token.line, at(e.token), message)
}

func (e *RuntimeError) Unwrap() error {
	return e.err
}

// Line where the error was found
func (e *RuntimeError) Line() int {
	return e.token.line
}

// returnSignal unwinds a function body up to its call site
type returnSignal struct {
	keyword *token
	value   interface{}
}

func (r *returnSignal) Error() string {
	return "return outside of a call"
}
