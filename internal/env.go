package internal

import "fmt"

// env is one scope of the chain. Closures share it by pointer,
// enclosing always points towards the globals.
type env struct {
	enclosing *env
	values    map[string]interface{}
}

func newEnv(enclosing *env) *env {
	return &env{
		enclosing: enclosing,
		values:    make(map[string]interface{}),
	}
}

func (e *env) get(name *token) (interface{}, error) {
	if name.token != tkIdentifier {
		panic(fmt.Sprintf("env: lookup of non identifier token %s", name))
	}
	if value, ok := e.values[name.lexeme]; ok {
		return value, nil
	}
	if e.enclosing != nil {
		return e.enclosing.get(name)
	}
	return nil, &RuntimeError{err: errUndefinedVariable, token: name}
}

// define always binds in this scope, shadowing any outer binding
func (e *env) define(name string, value interface{}) {
	e.values[name] = value
}

// assign rebinds in the nearest scope that defines name, never creates a binding
func (e *env) assign(name *token, value interface{}) error {
	if _, ok := e.values[name.lexeme]; ok {
		e.values[name.lexeme] = value
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.assign(name, value)
	}
	return &RuntimeError{err: errUndefinedVariable, token: name}
}
