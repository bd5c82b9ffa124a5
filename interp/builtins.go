package interp

import (
	"time"

	"github.com/loxlang/slox/environment"
	"github.com/loxlang/slox/function"
	"github.com/loxlang/slox/object"
)

// registerBuiltins binds the host-provided functions spec §4.3.4
// requires into env. clock is the only one semantic conformance
// needs; it is deliberately pure from the script's point of view even
// though its Go implementation reads the wall clock.
func registerBuiltins(env *environment.Environment) {
	env.Define("clock", &function.Native{
		Name:     "clock",
		ArityVal: 0,
		Body: func(args []object.Value) (object.Value, error) {
			return object.Number(float64(time.Now().UnixNano()) / 1e9), nil
		},
	})
}
