package internal

import (
	"errors"
	"fmt"
)

type callable interface {
	arity() int
	call(exec *exec, arguments []interface{}) (interface{}, error)
}

type loxFunction struct {
	declaration *fnStmt
	closure     *env
}

type nativeFn struct {
	name       string
	arityValue int
	callFn     func(exec *exec, arguments []interface{}) (interface{}, error)
}

func (n *nativeFn) arity() int {
	return n.arityValue
}

func (n *nativeFn) call(exec *exec, arguments []interface{}) (interface{}, error) {
	return n.callFn(exec, arguments)
}

func (n *nativeFn) String() string {
	return fmt.Sprintf("<native fn %s>", n.name)
}

func (f *loxFunction) arity() int {
	return len(f.declaration.params)
}

// call runs the body in a fresh scope enclosed by the closure, so free
// variables resolve where the function was declared
func (f *loxFunction) call(exec *exec, arguments []interface{}) (interface{}, error) {
	env := newEnv(f.closure)
	for i := range f.declaration.params {
		env.define(f.declaration.params[i].lexeme, arguments[i])
	}

	err := exec.executeBlock(f.declaration.body, env)

	var ret *returnSignal
	if errors.As(err, &ret) {
		return ret.value, nil
	}
	return nil, err
}

func (f *loxFunction) String() string {
	return fmt.Sprintf("<fn %s>", f.declaration.name.lexeme)
}
