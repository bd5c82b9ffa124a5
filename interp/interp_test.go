package interp_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/loxlang/slox/interp"
	"github.com/loxlang/slox/lexer"
	"github.com/loxlang/slox/parser"
	"github.com/stretchr/testify/require"
)

// run parses and executes src, returning stdout lines and diagnostics.
// It fails the test immediately on scan or parse errors, since those
// are a different stage's concern from the evaluator scenarios here.
func run(t *testing.T, src string) (string, []string) {
	t.Helper()
	tokens, scanErrs := lexer.New(src).ScanTokens()
	require.Empty(t, scanErrs)

	p := parser.New(tokens)
	stmts := p.Parse()
	require.Empty(t, p.Errors())

	var out bytes.Buffer
	diags := interp.New(&out).Run(stmts)
	return out.String(), diags
}

func TestRun_ArithmeticAndPrecedence(t *testing.T) {
	out, diags := run(t, "print 1 + 2 * 3;")
	require.Empty(t, diags)
	require.Equal(t, "7\n", out)
}

func TestRun_LexicalClosureCounter(t *testing.T) {
	out, diags := run(t, `
		fun makeCounter() {
		  var i = 0;
		  fun count() { i = i + 1; print i; }
		  return count;
		}
		var c = makeCounter();
		c(); c(); c();
	`)
	require.Empty(t, diags)
	require.Equal(t, "1\n2\n3\n", out)
}

func TestRun_ShortCircuitOrReturnsLeftOperandValue(t *testing.T) {
	out, diags := run(t, `print "a" or 2;`)
	require.Empty(t, diags)
	require.Equal(t, "a\n", out)
}

func TestRun_ForDesugarsCorrectly(t *testing.T) {
	out, diags := run(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	require.Empty(t, diags)
	require.Equal(t, "0\n1\n2\n", out)
}

func TestRun_DivisionByZeroIsRuntimeErrorNotOutput(t *testing.T) {
	out, diags := run(t, "print 1 / 0;")
	require.Empty(t, out)
	require.Len(t, diags, 1)
	require.Contains(t, diags[0], "Division by zero")
}

func TestRun_UndefinedVariableDiagnostic(t *testing.T) {
	_, diags := run(t, "print x;")
	require.Equal(t, []string{"line 1: Undefined variable 'x'."}, diags)
}

func TestRun_StringConcatenationWithNumberPromotion(t *testing.T) {
	out, diags := run(t, `print "x=" + 3;`)
	require.Empty(t, diags)
	require.Equal(t, "x=3\n", out)
}

func TestRun_StringPlusStringAndNumberPlusString(t *testing.T) {
	out, diags := run(t, `print "a" + "b"; print 3 + "x";`)
	require.Empty(t, diags)
	require.Equal(t, "ab\n3x\n", out)
}

func TestRun_ReturnOutOfNestedBlocks(t *testing.T) {
	out, diags := run(t, `
		fun f() { if (true) { return 42; } return 0; }
		print f();
	`)
	require.Empty(t, diags)
	require.Equal(t, "42\n", out)
}

func TestRun_RuntimeErrorLogsAndContinuesWithNextTopLevelStatement(t *testing.T) {
	out, diags := run(t, `
		print 1;
		print 1 / 0;
		print 2;
	`)
	require.Equal(t, "1\n2\n", out)
	require.Len(t, diags, 1)
}

func TestRun_BlockRestoresEnclosingEnvironmentAfterError(t *testing.T) {
	out, diags := run(t, `
		var x = 1;
		{
		  var x = 2;
		  print y;
		}
		print x;
	`)
	require.Len(t, diags, 1)
	require.Equal(t, "1\n", out)
}

func TestRun_TruthinessOfNilIsFalse(t *testing.T) {
	out, _ := run(t, `if (nil) { print "yes"; } else { print "no"; }`)
	require.Equal(t, "no\n", out)
}

func TestRun_ZeroAndEmptyStringAreTruthy(t *testing.T) {
	out, _ := run(t, `
		if (0) { print "zero truthy"; }
		if ("") { print "empty truthy"; }
	`)
	require.Equal(t, "zero truthy\nempty truthy\n", out)
}

func TestRun_WhileLoop(t *testing.T) {
	out, diags := run(t, `
		var i = 0;
		while (i < 3) {
		  print i;
		  i = i + 1;
		}
	`)
	require.Empty(t, diags)
	require.Equal(t, "0\n1\n2\n", out)
}

func TestRun_ArityMismatchIsRuntimeError(t *testing.T) {
	_, diags := run(t, `
		fun add(a, b) { return a + b; }
		print add(1);
	`)
	require.Len(t, diags, 1)
	require.Contains(t, diags[0], "Expected 2 arguments but got 1")
}

func TestRun_CallingNonCallableIsRuntimeError(t *testing.T) {
	_, diags := run(t, `
		var x = 1;
		x();
	`)
	require.Len(t, diags, 1)
	require.Contains(t, diags[0], "Can only call functions")
}

func TestRun_ClockBuiltinReturnsNumber(t *testing.T) {
	out, diags := run(t, `print clock() > 0;`)
	require.Empty(t, diags)
	require.Equal(t, "true\n", out)
}

func TestRun_FunctionDisplayForm(t *testing.T) {
	out, diags := run(t, `
		fun greet() {}
		print greet;
		print clock;
	`)
	require.Empty(t, diags)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Equal(t, "<lox fn greet>", lines[0])
	require.Equal(t, "<native fn clock>", lines[1])
}

func TestRun_ClosureCorrectnessNotDynamicScope(t *testing.T) {
	// The closure must resolve `x` through the lexical chain captured
	// at definition, not through whatever happens to be named `x` in
	// the caller at call time.
	out, diags := run(t, `
		var x = "global";
		fun showX() { print x; }
		fun runWithLocalX() {
		  var x = "local";
		  showX();
		}
		runWithLocalX();
	`)
	require.Empty(t, diags)
	require.Equal(t, "global\n", out)
}

func TestRun_RedefinitionInSameScopeSilentlyOverwrites(t *testing.T) {
	out, diags := run(t, `
		var x = 1;
		var x = 2;
		print x;
	`)
	require.Empty(t, diags)
	require.Equal(t, "2\n", out)
}

