package internal

import (
	"fmt"
	"strings"
)

//R generic type
type R interface{}

// treeString renders statements as s-expressions, one per line
func treeString(stmts []stmt) string {
	out := ""
	for _, st := range stmts {
		out += sprintStmt(st) + "\n"
	}
	return out
}

func sprintStmt(st stmt) string {
	out, _ := st.accept(stringVisitor{})
	return out.(string)
}

func sprintExpr(ex expr) string {
	out, _ := ex.accept(stringVisitor{})
	return out.(string)
}

type stringVisitor struct{}

func (v stringVisitor) visitExprStmt(stmt *exprStmt) (R, error) {
	return fmt.Sprintf("(; %s)", sprintExpr(stmt.expression)), nil
}

func (v stringVisitor) visitPrintStmt(stmt *printStmt) (R, error) {
	return fmt.Sprintf("(print %s)", sprintExpr(stmt.expression)), nil
}

func (v stringVisitor) visitVarStmt(stmt *varStmt) (R, error) {
	if stmt.initializer == nil {
		return fmt.Sprintf("(var %s)", stmt.name.lexeme), nil
	}
	return fmt.Sprintf("(var %s %s)", stmt.name.lexeme, sprintExpr(stmt.initializer)), nil
}

func (v stringVisitor) visitBlockStmt(stmt *blockStmt) (R, error) {
	out := "(block"
	for _, s := range stmt.stmts {
		out += " " + sprintStmt(s)
	}
	return out + ")", nil
}

func (v stringVisitor) visitIfStmt(stmt *ifStmt) (R, error) {
	out := fmt.Sprintf("(if %s %s", sprintExpr(stmt.condition), sprintStmt(stmt.thenBranch))
	if stmt.elseBranch != nil {
		out += " " + sprintStmt(stmt.elseBranch)
	}
	return out + ")", nil
}

func (v stringVisitor) visitWhileStmt(stmt *whileStmt) (R, error) {
	return fmt.Sprintf("(while %s %s)", sprintExpr(stmt.condition), sprintStmt(stmt.body)), nil
}

func (v stringVisitor) visitFnStmt(stmt *fnStmt) (R, error) {
	params := make([]string, len(stmt.params))
	for i, param := range stmt.params {
		params[i] = param.lexeme
	}
	out := fmt.Sprintf("(fun %s (%s)", stmt.name.lexeme, strings.Join(params, " "))
	for _, s := range stmt.body {
		out += " " + sprintStmt(s)
	}
	return out + ")", nil
}

func (v stringVisitor) visitReturnStmt(stmt *returnStmt) (R, error) {
	if stmt.value == nil {
		return "(return)", nil
	}
	return fmt.Sprintf("(return %s)", sprintExpr(stmt.value)), nil
}

func (v stringVisitor) visitAssignExpr(expr *assignExpr) (R, error) {
	return fmt.Sprintf("(= %s %s)", expr.name.lexeme, sprintExpr(expr.value)), nil
}

func (v stringVisitor) visitBinaryExpr(expr *binaryExpr) (R, error) {
	return fmt.Sprintf("(%s %s %s)", expr.operator.lexeme, sprintExpr(expr.left), sprintExpr(expr.right)), nil
}

func (v stringVisitor) visitCallExpr(expr *callExpr) (R, error) {
	out := "(call " + sprintExpr(expr.callee)
	for _, arg := range expr.arguments {
		out += " " + sprintExpr(arg)
	}
	return out + ")", nil
}

func (v stringVisitor) visitGroupingExpr(expr *groupingExpr) (R, error) {
	return fmt.Sprintf("(group %s)", sprintExpr(expr.expression)), nil
}

func (v stringVisitor) visitLiteralExpr(expr *literalExpr) (R, error) {
	return repr(expr.value), nil
}

func (v stringVisitor) visitLogicalExpr(expr *logicalExpr) (R, error) {
	return fmt.Sprintf("(%s %s %s)", expr.operator.lexeme, sprintExpr(expr.left), sprintExpr(expr.right)), nil
}

func (v stringVisitor) visitUnaryExpr(expr *unaryExpr) (R, error) {
	return fmt.Sprintf("(%s %s)", expr.operator.lexeme, sprintExpr(expr.right)), nil
}

func (v stringVisitor) visitVariableExpr(expr *variableExpr) (R, error) {
	return expr.name.lexeme, nil
}
