package internal

import (
	"errors"
	"testing"
)

func ident(name string) *token {
	return &token{token: tkIdentifier, lexeme: name, line: 1}
}

func mustGet(t *testing.T, e *env, name string) interface{} {
	t.Helper()
	value, err := e.get(ident(name))
	if err != nil {
		t.Fatalf("get %s: %v", name, err)
	}
	return value
}

func TestEnvDefineGet(t *testing.T) {
	globals := newEnv(nil)
	globals.define("a", loxNumber(1))
	if v := mustGet(t, globals, "a"); v != loxNumber(1) {
		t.Errorf("a should be 1, got %v", v)
	}

	// redefinition replaces the value
	globals.define("a", loxString("x"))
	if v := mustGet(t, globals, "a"); v != loxString("x") {
		t.Errorf("a should be x, got %v", v)
	}

	// nil is a value, not a missing binding
	globals.define("n", nil)
	if v := mustGet(t, globals, "n"); v != nil {
		t.Errorf("n should be nil, got %v", v)
	}

	_, err := globals.get(ident("missing"))
	if !errors.Is(err, errUndefinedVariable) {
		t.Errorf("expected undefined variable, got %v", err)
	}
}

func TestEnvShadowing(t *testing.T) {
	globals := newEnv(nil)
	globals.define("a", loxNumber(1))
	inner := newEnv(globals)
	inner.define("a", loxNumber(2))

	if v := mustGet(t, inner, "a"); v != loxNumber(2) {
		t.Errorf("inner a should be 2, got %v", v)
	}
	if v := mustGet(t, globals, "a"); v != loxNumber(1) {
		t.Errorf("outer a should be 1, got %v", v)
	}
}

func TestEnvAssign(t *testing.T) {
	globals := newEnv(nil)
	globals.define("a", loxNumber(1))
	middle := newEnv(globals)
	inner := newEnv(middle)

	// assignment goes to the scope that defines the name
	if err := inner.assign(ident("a"), loxNumber(3)); err != nil {
		t.Fatal(err)
	}
	if v := mustGet(t, globals, "a"); v != loxNumber(3) {
		t.Errorf("global a should be 3, got %v", v)
	}
	if _, ok := inner.values["a"]; ok {
		t.Errorf("assign must not create a binding in the inner scope")
	}

	// assigning an unknown name fails and creates nothing
	err := inner.assign(ident("b"), loxNumber(1))
	var runErr *RuntimeError
	if !errors.As(err, &runErr) || !errors.Is(err, errUndefinedVariable) {
		t.Fatalf("expected undefined variable, got %v", err)
	}
	if runErr.Error() != "[line 1] Error at 'b': Undefined variable 'b'." {
		t.Errorf("bad message %q", runErr.Error())
	}
	if _, err := globals.get(ident("b")); err == nil {
		t.Errorf("b should still be undefined")
	}
}
