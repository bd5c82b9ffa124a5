// Package environment implements the lexical scope chain used to bind
// and resolve identifiers: a mapping from name to value, paired with an
// optional pointer to an enclosing environment.
package environment

import (
	"fmt"

	"github.com/loxlang/slox/object"
)

// Environment is one activation record / lexical scope. Closures hold
// a direct pointer to the Environment active at their definition site,
// so mutating a captured variable through one closure is visible to
// every other closure (and to the still-executing enclosing block)
// that shares the same Environment.
type Environment struct {
	values    map[string]object.Value
	enclosing *Environment
}

// New creates an environment enclosed by parent, or a fresh global
// environment when parent is nil.
func New(parent *Environment) *Environment {
	return &Environment{values: make(map[string]object.Value), enclosing: parent}
}

// Define creates (or silently overwrites) a binding in this
// environment only, never in an enclosing one.
func (e *Environment) Define(name string, value object.Value) {
	e.values[name] = value
}

// Get resolves name by walking outward from this environment. It
// never consults the dynamic call chain, only the lexical parent
// pointers recorded at construction time.
func (e *Environment) Get(name string) (object.Value, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, fmt.Errorf("Undefined variable '%s'.", name)
}

// Assign rebinds an existing name, searching outward from this
// environment for the scope that declared it, and mutating that
// binding in place. It fails if name was never declared anywhere in
// the chain.
func (e *Environment) Assign(name string, value object.Value) error {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return fmt.Errorf("Undefined variable '%s'.", name)
}
