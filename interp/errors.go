package interp

import (
	"fmt"

	"github.com/loxlang/slox/object"
)

// RuntimeError is a diagnosed failure tied to a source line, formatted
// the way spec §6 requires diagnostics: "line N: message". Exported so
// callers that want to branch on a runtime failure (rather than match
// its formatted text) can type-assert to *RuntimeError.
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

func newRuntimeError(line int, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Line: line, Message: fmt.Sprintf(format, args...)}
}

// returnSignal carries a `return` statement's value up the Go call
// stack to the scripted-call boundary that should catch it. It
// satisfies error purely as a control-flow vehicle, mirroring the
// teacher interpreter's ReturnValue wrapper object used the same way;
// it is never shown to the user.
type returnSignal struct {
	value object.Value
}

func (*returnSignal) Error() string { return "return" }
