// Package interp walks the AST the parser produces, managing the
// lexically scoped environment chain, first-class closures, and the
// runtime value domain described in spec §4.3.
package interp

import (
	"fmt"
	"io"

	"github.com/loxlang/slox/ast"
	"github.com/loxlang/slox/environment"
	"github.com/loxlang/slox/function"
	"github.com/loxlang/slox/object"
	"github.com/loxlang/slox/token"
)

// Interpreter executes a statement list against a mutable environment
// stack rooted at a global environment pre-populated with built-ins.
type Interpreter struct {
	globals *environment.Environment
	env     *environment.Environment
	out     io.Writer
}

// New creates an Interpreter that writes `print` output to out and
// registers the built-ins named in spec §4.3.4.
func New(out io.Writer) *Interpreter {
	globals := environment.New(nil)
	registerBuiltins(globals)
	return &Interpreter{globals: globals, env: globals, out: out}
}

// Run executes stmts in order. Each top-level statement that fails
// with a runtime error is logged (via the returned diagnostics) and
// execution continues with the next one, per spec §7's recovery rule.
// A `return` that escapes to the top level is silently discarded.
// It returns every diagnostic produced, in the order statements were
// executed.
func (i *Interpreter) Run(stmts []ast.Stmt) []string {
	var diagnostics []string
	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			if _, ok := err.(*returnSignal); ok {
				continue
			}
			diagnostics = append(diagnostics, err.Error())
		}
	}
	return diagnostics
}

// --- statement execution ---

func (i *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		_, err := i.eval(s.Expr)
		return err

	case *ast.PrintStmt:
		v, err := i.eval(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(i.out, v.String())
		return nil

	case *ast.VarStmt:
		var value object.Value = object.Nil{}
		if s.Initializer != nil {
			var err error
			value, err = i.eval(s.Initializer)
			if err != nil {
				return err
			}
		}
		i.env.Define(s.Name.Lexeme, value)
		return nil

	case *ast.BlockStmt:
		return i.executeBlock(s.Stmts, environment.New(i.env))

	case *ast.IfStmt:
		cond, err := i.eval(s.Cond)
		if err != nil {
			return err
		}
		if object.Truthy(cond) {
			return i.execute(s.Then)
		} else if s.Else != nil {
			return i.execute(s.Else)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := i.eval(s.Cond)
			if err != nil {
				return err
			}
			if !object.Truthy(cond) {
				return nil
			}
			if err := i.execute(s.Body); err != nil {
				return err
			}
		}

	case *ast.FunctionStmt:
		fn := &function.Scripted{Name: s.Name.Lexeme, Params: s.Params, Body: s.Body, Closure: i.env}
		i.env.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.ReturnStmt:
		var value object.Value = object.Nil{}
		if s.Value != nil {
			var err error
			value, err = i.eval(s.Value)
			if err != nil {
				return err
			}
		}
		return &returnSignal{value: value}

	default:
		return newRuntimeError(0, "unknown statement type %T", stmt)
	}
}

// executeBlock swaps in env, runs stmts, and restores the previous
// environment on every exit path — success, runtime error, or a
// returnSignal propagating through.
func (i *Interpreter) executeBlock(stmts []ast.Stmt, env *environment.Environment) error {
	previous := i.env
	i.env = env
	defer func() { i.env = previous }()

	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// --- expression evaluation ---

func (i *Interpreter) eval(expr ast.Expr) (object.Value, error) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return literalValue(e.Value), nil

	case *ast.VariableExpr:
		v, err := i.env.Get(e.Name.Lexeme)
		if err != nil {
			return nil, newRuntimeError(e.Name.Line, "%s", err.Error())
		}
		return v, nil

	case *ast.AssignExpr:
		value, err := i.eval(e.Value)
		if err != nil {
			return nil, err
		}
		if err := i.env.Assign(e.Name.Lexeme, value); err != nil {
			return nil, newRuntimeError(e.Name.Line, "%s", err.Error())
		}
		return value, nil

	case *ast.GroupingExpr:
		return i.eval(e.Inner)

	case *ast.UnaryExpr:
		return i.evalUnary(e)

	case *ast.LogicalExpr:
		return i.evalLogical(e)

	case *ast.BinaryExpr:
		return i.evalBinary(e)

	case *ast.CallExpr:
		return i.evalCall(e)

	default:
		return nil, newRuntimeError(0, "unknown expression type %T", expr)
	}
}

func literalValue(v interface{}) object.Value {
	switch v := v.(type) {
	case nil:
		return object.Nil{}
	case bool:
		return object.Boolean(v)
	case float64:
		return object.Number(v)
	case string:
		return object.String(v)
	default:
		return object.Nil{}
	}
}

func (i *Interpreter) evalUnary(e *ast.UnaryExpr) (object.Value, error) {
	right, err := i.eval(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case token.Minus:
		n, ok := right.(object.Number)
		if !ok {
			return nil, newRuntimeError(e.Op.Line, "Operand must be a number.")
		}
		return -n, nil
	case token.Bang:
		return object.Boolean(!object.Truthy(right)), nil
	default:
		return nil, newRuntimeError(e.Op.Line, "Unknown unary operator '%s'.", e.Op.Lexeme)
	}
}

func (i *Interpreter) evalLogical(e *ast.LogicalExpr) (object.Value, error) {
	left, err := i.eval(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Op.Kind == token.Or {
		if object.Truthy(left) {
			return left, nil
		}
	} else {
		if !object.Truthy(left) {
			return left, nil
		}
	}
	return i.eval(e.Right)
}

func (i *Interpreter) evalBinary(e *ast.BinaryExpr) (object.Value, error) {
	left, err := i.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.Plus:
		return evalAdd(left, right, e.Op.Line)
	case token.Minus, token.Star, token.Slash, token.Greater, token.GreaterEqual, token.Less, token.LessEqual:
		ln, lok := left.(object.Number)
		rn, rok := right.(object.Number)
		if !lok || !rok {
			return nil, newRuntimeError(e.Op.Line, "Operands must be numbers.")
		}
		switch e.Op.Kind {
		case token.Minus:
			return ln - rn, nil
		case token.Star:
			return ln * rn, nil
		case token.Slash:
			if rn == 0 {
				return nil, newRuntimeError(e.Op.Line, "Division by zero.")
			}
			return ln / rn, nil
		case token.Greater:
			return object.Boolean(ln > rn), nil
		case token.GreaterEqual:
			return object.Boolean(ln >= rn), nil
		case token.Less:
			return object.Boolean(ln < rn), nil
		case token.LessEqual:
			return object.Boolean(ln <= rn), nil
		}
	case token.EqualEqual:
		return object.Boolean(object.Equal(left, right)), nil
	case token.BangEqual:
		return object.Boolean(!object.Equal(left, right)), nil
	}
	return nil, newRuntimeError(e.Op.Line, "Unknown operator '%s'.", e.Op.Lexeme)
}

// evalAdd implements spec §4.3.1's `+`: Number+Number is numeric
// addition; any pairing involving a String concatenates, converting
// the non-string operand through its canonical display form. Any other
// pairing is a type error.
func evalAdd(left, right object.Value, line int) (object.Value, error) {
	ln, lok := left.(object.Number)
	rn, rok := right.(object.Number)
	if lok && rok {
		return ln + rn, nil
	}
	_, lstr := left.(object.String)
	_, rstr := right.(object.String)
	if lstr || rstr {
		return object.String(left.String() + right.String()), nil
	}
	return nil, newRuntimeError(line, "Operands must be two numbers or two strings.")
}

func (i *Interpreter) evalCall(e *ast.CallExpr) (object.Value, error) {
	callee, err := i.eval(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]object.Value, len(e.Args))
	for idx, argExpr := range e.Args {
		v, err := i.eval(argExpr)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}

	callable, ok := callee.(function.Callable)
	if !ok {
		return nil, newRuntimeError(e.Paren.Line, "Can only call functions.")
	}
	if len(args) != callable.Arity() {
		return nil, newRuntimeError(e.Paren.Line, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}

	switch fn := callable.(type) {
	case *function.Native:
		v, err := fn.Body(args)
		if err != nil {
			return nil, newRuntimeError(e.Paren.Line, "%s", err.Error())
		}
		return v, nil
	case *function.Scripted:
		return i.callScripted(fn, args)
	default:
		return nil, newRuntimeError(e.Paren.Line, "Can only call functions.")
	}
}

// callScripted implements the scripted call protocol of spec §4.3.3:
// a fresh environment enclosed by the function's captured closure
// (never the caller's environment), one binding per parameter, then
// the body run as a block. A returnSignal unwraps to its value; a
// normal fall-through returns nil; anything else propagates.
func (i *Interpreter) callScripted(fn *function.Scripted, args []object.Value) (object.Value, error) {
	callEnv := environment.New(fn.Closure)
	for idx, param := range fn.Params {
		callEnv.Define(param.Lexeme, args[idx])
	}

	err := i.executeBlock(fn.Body, callEnv)
	if err == nil {
		return object.Nil{}, nil
	}
	if ret, ok := err.(*returnSignal); ok {
		return ret.value, nil
	}
	return nil, err
}
