package ast

import "github.com/loxlang/slox/token"

// Stmt is the sum type of statement nodes, closed the same way Expr is.
type Stmt interface {
	stmtNode()
}

// ExprStmt evaluates an expression purely for its side effects and
// discards the result.
type ExprStmt struct {
	Expr Expr
}

// PrintStmt evaluates Expr and writes its canonical display form
// followed by a newline to the output sink.
type PrintStmt struct {
	Expr Expr
}

// VarStmt declares Name in the innermost environment, bound to the
// evaluated Initializer (or nil if Initializer is nil).
type VarStmt struct {
	Name        token.Token
	Initializer Expr
}

// BlockStmt is a `{ ... }` statement list. Executing it pushes a fresh
// environment, runs Stmts in order, and pops the environment on any
// exit path.
type BlockStmt struct {
	Stmts []Stmt
}

// IfStmt executes Then when Cond is truthy, else Else (if present).
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt // nil if there is no else branch
}

// WhileStmt re-evaluates Cond before every iteration of Body.
type WhileStmt struct {
	Cond Expr
	Body Stmt
}

// FunctionStmt declares a named function, capturing the environment
// active at the point of declaration as its closure.
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

// ReturnStmt signals a non-local return out of the nearest enclosing
// function call, carrying Value (or nil, meaning return nil).
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr
}

func (*ExprStmt) stmtNode()     {}
func (*PrintStmt) stmtNode()    {}
func (*VarStmt) stmtNode()      {}
func (*BlockStmt) stmtNode()    {}
func (*IfStmt) stmtNode()       {}
func (*WhileStmt) stmtNode()    {}
func (*FunctionStmt) stmtNode() {}
func (*ReturnStmt) stmtNode()   {}
