// Package ast defines the expression and statement node types produced
// by the parser and walked by the evaluator.
package ast

import "github.com/loxlang/slox/token"

// Expr is the sum type of expression nodes. It is a closed set: every
// concrete type below is the only thing that may appear where an Expr
// is expected, so the evaluator dispatches on it with a type switch
// instead of a visitor interface.
type Expr interface {
	exprNode()
}

// LiteralExpr is a literal value baked into the source: a number,
// string, boolean, or nil.
type LiteralExpr struct {
	Value interface{}
}

// VariableExpr reads the value bound to Name.
type VariableExpr struct {
	Name token.Token
}

// AssignExpr rebinds an existing variable and evaluates to the
// assigned value.
type AssignExpr struct {
	Name  token.Token
	Value Expr
}

// UnaryExpr applies a prefix operator (`-` or `!`) to Right.
type UnaryExpr struct {
	Op    token.Token
	Right Expr
}

// BinaryExpr applies an infix operator to two fully-evaluated operands.
type BinaryExpr struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

// LogicalExpr is `and`/`or`. It is a distinct node from BinaryExpr
// because it short-circuits: the right operand is only evaluated when
// the left doesn't already determine the result.
type LogicalExpr struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

// GroupingExpr is a parenthesized expression, kept as its own node so
// printers and future passes can tell `(a)` apart from `a`.
type GroupingExpr struct {
	Inner Expr
}

// CallExpr invokes Callee with Args. Paren is the closing `)` token and
// carries the line number used for call-site diagnostics (arity
// mismatch, calling a non-callable).
type CallExpr struct {
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

func (*LiteralExpr) exprNode()  {}
func (*VariableExpr) exprNode() {}
func (*AssignExpr) exprNode()   {}
func (*UnaryExpr) exprNode()    {}
func (*BinaryExpr) exprNode()   {}
func (*LogicalExpr) exprNode()  {}
func (*GroupingExpr) exprNode() {}
func (*CallExpr) exprNode()     {}
