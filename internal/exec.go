package internal

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// maxCallDepth bounds nested calls, deeper ones fail with errStackOverflow
const maxCallDepth = 10000

type exec struct {
	state *interpreterState

	env   *env
	depth int

	logger *logrus.Logger
}

// interpret runs every top level statement. The first error stops the run
// unless keepGoing is set, then only the failing statement is abandoned.
func (e *exec) interpret(keepGoing bool) bool {
	ok := true
	for _, s := range e.state.stmts {
		_, err := s.accept(e)
		if err == nil {
			continue
		}
		ok = false
		var ret *returnSignal
		if errors.As(err, &ret) {
			err = &RuntimeError{err: errReturnNotInAFunc, token: ret.keyword}
		}
		e.state.setError(err)
		e.logger.WithError(err).Debug("statement aborted")
		if !keepGoing {
			break
		}
	}
	return ok
}

func (e *exec) visitExprStmt(stmt *exprStmt) (R, error) {
	_, err := stmt.expression.accept(e)
	return nil, err
}

func (e *exec) visitPrintStmt(stmt *printStmt) (R, error) {
	value, err := stmt.expression.accept(e)
	if err != nil {
		return nil, err
	}
	e.state.printer.Println(stringify(value))
	return nil, nil
}

func (e *exec) visitVarStmt(stmt *varStmt) (R, error) {
	var val interface{}
	if stmt.initializer != nil {
		var err error
		val, err = stmt.initializer.accept(e)
		if err != nil {
			return nil, err
		}
	}
	e.env.define(stmt.name.lexeme, val)
	return nil, nil
}

func (e *exec) visitBlockStmt(stmt *blockStmt) (R, error) {
	return nil, e.executeBlock(stmt.stmts, newEnv(e.env))
}

func (e *exec) executeBlock(stmts []stmt, env *env) error {
	previous := e.env
	defer func() {
		e.env = previous
	}()
	e.env = env
	for _, s := range stmts {
		if _, err := s.accept(e); err != nil {
			return err
		}
	}
	return nil
}

func (e *exec) visitIfStmt(stmt *ifStmt) (R, error) {
	cond, err := stmt.condition.accept(e)
	if err != nil {
		return nil, err
	}
	if truthy(cond) {
		return stmt.thenBranch.accept(e)
	}
	if stmt.elseBranch != nil {
		return stmt.elseBranch.accept(e)
	}
	return nil, nil
}

func (e *exec) visitWhileStmt(stmt *whileStmt) (R, error) {
	for {
		cond, err := stmt.condition.accept(e)
		if err != nil {
			return nil, err
		}
		if !truthy(cond) {
			return nil, nil
		}
		if _, err := stmt.body.accept(e); err != nil {
			return nil, err
		}
	}
}

func (e *exec) visitFnStmt(stmt *fnStmt) (R, error) {
	e.env.define(stmt.name.lexeme, &loxFunction{
		declaration: stmt,
		closure:     e.env,
	})
	return nil, nil
}

func (e *exec) visitReturnStmt(stmt *returnStmt) (R, error) {
	var value interface{}
	if stmt.value != nil {
		var err error
		value, err = stmt.value.accept(e)
		if err != nil {
			return nil, err
		}
	}
	return nil, &returnSignal{keyword: stmt.keyword, value: value}
}

func (e *exec) visitAssignExpr(expr *assignExpr) (R, error) {
	val, err := expr.value.accept(e)
	if err != nil {
		return nil, err
	}
	if err := e.env.assign(expr.name, val); err != nil {
		return nil, err
	}
	return val, nil
}

func (e *exec) visitBinaryExpr(expr *binaryExpr) (R, error) {
	left, err := expr.left.accept(e)
	if err != nil {
		return nil, err
	}
	right, err := expr.right.accept(e)
	if err != nil {
		return nil, err
	}

	switch expr.operator.token {
	case tkEqualEqual:
		return loxBool(isEqual(left, right)), nil
	case tkBangEqual:
		return loxBool(!isEqual(left, right)), nil
	}

	op, ok := binaryOperators[expr.operator.token]
	if !ok {
		panic("exec: unknown binary operator " + expr.operator.lexeme)
	}
	result, err := applyOperator(op, left, right)
	if err != nil {
		return nil, &RuntimeError{
			err:      errOperandsShouldBeNumber,
			token:    expr.operator,
			operands: []interface{}{left, right},
		}
	}
	return result, nil
}

func (e *exec) visitCallExpr(expr *callExpr) (R, error) {
	callee, err := expr.callee.accept(e)
	if err != nil {
		return nil, err
	}

	arguments := make([]interface{}, len(expr.arguments))
	for i := range expr.arguments {
		arguments[i], err = expr.arguments[i].accept(e)
		if err != nil {
			return nil, err
		}
	}

	fn, isFn := callee.(callable)
	if !isFn {
		return nil, &RuntimeError{
			err:      errNotCallable,
			token:    expr.paren,
			operands: []interface{}{callee},
		}
	}

	if len(arguments) != fn.arity() {
		return nil, &RuntimeError{
			err:      errWrongNumArgs,
			token:    expr.paren,
			expected: fn.arity(),
			actual:   len(arguments),
		}
	}

	if e.depth >= maxCallDepth {
		return nil, &RuntimeError{err: errStackOverflow, token: expr.paren}
	}

	e.logger.WithFields(logrus.Fields{
		"callee": stringify(fn),
		"arity":  fn.arity(),
		"depth":  e.depth,
		"line":   expr.paren.line,
	}).Trace("call")

	e.depth++
	defer func() {
		e.depth--
	}()
	return fn.call(e, arguments)
}

func (e *exec) visitGroupingExpr(expr *groupingExpr) (R, error) {
	return expr.expression.accept(e)
}

func (e *exec) visitLiteralExpr(expr *literalExpr) (R, error) {
	return expr.value, nil
}

// visitLogicalExpr yields the operand that decided the result, the right
// operand is only evaluated when the left one does not decide it
func (e *exec) visitLogicalExpr(expr *logicalExpr) (R, error) {
	left, err := expr.left.accept(e)
	if err != nil {
		return nil, err
	}

	if expr.operator.token == tkOr {
		if truthy(left) {
			return left, nil
		}
	} else if !truthy(left) {
		return left, nil
	}

	return expr.right.accept(e)
}

func (e *exec) visitUnaryExpr(expr *unaryExpr) (R, error) {
	value, err := expr.right.accept(e)
	if err != nil {
		return nil, err
	}
	switch expr.operator.token {
	case tkBang:
		return loxBool(!truthy(value)), nil
	case tkMinus:
		valueNum, ok := value.(loxNumber)
		if !ok {
			return nil, &RuntimeError{
				err:      errOperandShouldBeNumber,
				token:    expr.operator,
				operands: []interface{}{value},
			}
		}
		return -valueNum, nil
	}
	panic("exec: unknown unary operator " + expr.operator.lexeme)
}

func (e *exec) visitVariableExpr(expr *variableExpr) (R, error) {
	return e.env.get(expr.name)
}
