// Package function implements the two function-value variants the
// evaluator produces: scripted closures and host-provided natives.
//
// Neither variant knows how to invoke itself — that would require
// importing the evaluator, which in turn needs to recognize these
// types, an import cycle. Instead, as in the teacher interpreter this
// is grounded on, invocation logic lives entirely in the caller
// (package interp): these types are just the data a call needs.
package function

import (
	"fmt"

	"github.com/loxlang/slox/ast"
	"github.com/loxlang/slox/environment"
	"github.com/loxlang/slox/object"
	"github.com/loxlang/slox/token"
)

// Callable is satisfied by both function variants, letting the
// evaluator check arity uniformly before dispatching on the concrete
// type to decide how to run the body.
type Callable interface {
	object.Value
	Arity() int
	FuncName() string
}

// Scripted is a user-defined function. It holds a strong reference to
// Closure, the environment active at the point of its `fun`
// declaration — that reference is what makes recursive and mutually
// recursive closures, and counters like the one in spec scenario 2,
// work: every call starts a fresh environment enclosed by Closure, not
// by the caller's environment.
type Scripted struct {
	Name    string
	Params  []token.Token
	Body    []ast.Stmt
	Closure *environment.Environment
}

func (*Scripted) Type() object.Type  { return object.FunctionType }
func (f *Scripted) String() string   { return fmt.Sprintf("<lox fn %s>", f.Name) }
func (f *Scripted) Arity() int       { return len(f.Params) }
func (f *Scripted) FuncName() string { return f.Name }

// NativeBody is a pure mapping from an evaluated argument vector to a
// result value, provided by the host rather than by script source.
type NativeBody func(args []object.Value) (object.Value, error)

// Native is a built-in function such as clock.
type Native struct {
	Name     string
	ArityVal int
	Body     NativeBody
}

func (*Native) Type() object.Type  { return object.FunctionType }
func (f *Native) String() string   { return fmt.Sprintf("<native fn %s>", f.Name) }
func (f *Native) Arity() int       { return f.ArityVal }
func (f *Native) FuncName() string { return f.Name }
