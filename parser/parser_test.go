package parser_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/loxlang/slox/ast"
	"github.com/loxlang/slox/lexer"
	"github.com/loxlang/slox/parser"
	"github.com/loxlang/slox/token"
	"github.com/stretchr/testify/require"
)

// astDiff compares two statement trees structurally, ignoring token
// line numbers so the same program written on different lines still
// compares equal. A flat require.Equal failure on a tree this deep
// buries the one differing node in pages of dump; cmp.Diff instead
// prints just the path and values that disagree.
func astDiff(want, got []ast.Stmt) string {
	return cmp.Diff(want, got, cmpopts.IgnoreFields(token.Token{}, "Line"))
}

func parse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	tokens, scanErrs := lexer.New(src).ScanTokens()
	require.Empty(t, scanErrs)
	p := parser.New(tokens)
	stmts := p.Parse()
	require.Empty(t, p.Errors(), "unexpected parse errors: %v", p.Errors())
	return stmts
}

func TestParse_ArithmeticPrecedence(t *testing.T) {
	stmts := parse(t, "1 + 2 * 3;")
	require.Len(t, stmts, 1)
	exprStmt, ok := stmts[0].(*ast.ExprStmt)
	require.True(t, ok)
	binary, ok := exprStmt.Expr.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, "+", string(binary.Op.Kind))
	_, rightIsMul := binary.Right.(*ast.BinaryExpr)
	require.True(t, rightIsMul, "multiplication should bind tighter and nest on the right")
}

func TestParse_PreservesSourceOrder(t *testing.T) {
	stmts := parse(t, "var a = 1; var b = 2; var c = 3;")
	require.Len(t, stmts, 3)
	names := []string{}
	for _, s := range stmts {
		names = append(names, s.(*ast.VarStmt).Name.Lexeme)
	}
	require.Equal(t, []string{"a", "b", "c"}, names)
}

func TestParse_OrAndProduceLogicalNotBinary(t *testing.T) {
	stmts := parse(t, `"a" or 2;`)
	exprStmt := stmts[0].(*ast.ExprStmt)
	_, ok := exprStmt.Expr.(*ast.LogicalExpr)
	require.True(t, ok, "or must produce a Logical node, not Binary")
}

func TestParse_AssignmentTarget(t *testing.T) {
	stmts := parse(t, "x = 1;")
	exprStmt := stmts[0].(*ast.ExprStmt)
	assign, ok := exprStmt.Expr.(*ast.AssignExpr)
	require.True(t, ok)
	require.Equal(t, "x", assign.Name.Lexeme)
}

func TestParse_InvalidAssignmentTargetIsParseError(t *testing.T) {
	tokens, _ := lexer.New("1 = 2;").ScanTokens()
	p := parser.New(tokens)
	p.Parse()
	require.NotEmpty(t, p.Errors())
	require.Contains(t, p.Errors()[0], "Invalid assignment target")
}

func TestParse_SyntaxErrorsExposeStructuredLineAndLexeme(t *testing.T) {
	tokens, _ := lexer.New("1 = 2;").ScanTokens()
	p := parser.New(tokens)
	p.Parse()

	errs := p.SyntaxErrors()
	require.Len(t, errs, 1)
	require.Equal(t, 1, errs[0].Line)
	require.Equal(t, "=", errs[0].Lexeme)
	require.False(t, errs[0].AtEnd)
}

func TestParse_SyntaxErrorAtEndOfInput(t *testing.T) {
	tokens, _ := lexer.New("var x =").ScanTokens()
	p := parser.New(tokens)
	p.Parse()

	errs := p.SyntaxErrors()
	require.Len(t, errs, 1)
	require.True(t, errs[0].AtEnd)
	require.Contains(t, errs[0].Error(), "at end")
}

func TestParse_ForDesugarsToBlockWhileBlock(t *testing.T) {
	stmts := parse(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	require.Len(t, stmts, 1)
	outer, ok := stmts[0].(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, outer.Stmts, 2)

	_, isVar := outer.Stmts[0].(*ast.VarStmt)
	require.True(t, isVar)

	while, ok := outer.Stmts[1].(*ast.WhileStmt)
	require.True(t, ok)
	_, condIsBinary := while.Cond.(*ast.BinaryExpr)
	require.True(t, condIsBinary)

	whileBody, ok := while.Body.(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, whileBody.Stmts, 2)
	_, bodyIsPrint := whileBody.Stmts[0].(*ast.PrintStmt)
	require.True(t, bodyIsPrint)
	_, incrIsExprStmt := whileBody.Stmts[1].(*ast.ExprStmt)
	require.True(t, incrIsExprStmt)
}

func TestParse_ForWithMissingConditionDefaultsToTrue(t *testing.T) {
	stmts := parse(t, "for (;;) print 1;")
	while := stmts[0].(*ast.WhileStmt)
	lit, ok := while.Cond.(*ast.LiteralExpr)
	require.True(t, ok)
	require.Equal(t, true, lit.Value)
}

func TestParse_FunctionDeclaration(t *testing.T) {
	stmts := parse(t, "fun add(a, b) { return a + b; }")
	fn, ok := stmts[0].(*ast.FunctionStmt)
	require.True(t, ok)
	require.Equal(t, "add", fn.Name.Lexeme)
	require.Len(t, fn.Params, 2)
	require.Len(t, fn.Body, 1)
}

func TestParse_CallExpression(t *testing.T) {
	stmts := parse(t, "add(1, 2);")
	exprStmt := stmts[0].(*ast.ExprStmt)
	call, ok := exprStmt.Expr.(*ast.CallExpr)
	require.True(t, ok)
	require.Len(t, call.Args, 2)
}

func TestParse_SyntaxErrorRecoversAtNextStatement(t *testing.T) {
	tokens, _ := lexer.New("var = ; print 1;").ScanTokens()
	p := parser.New(tokens)
	stmts := p.Parse()
	require.NotEmpty(t, p.Errors())
	require.NotEmpty(t, stmts)
	_, ok := stmts[len(stmts)-1].(*ast.PrintStmt)
	require.True(t, ok, "parser should resynchronize and still parse the trailing print statement")
}

func TestParse_EquivalentProgramsOnDifferentLinesProduceSameTree(t *testing.T) {
	onOneLine := parse(t, `fun add(a, b) { return a + b; } print add(1, 2);`)
	onManyLines := parse(t, "fun add(a, b) {\n  return a + b;\n}\n\nprint add(1, 2);\n")

	if diff := astDiff(onOneLine, onManyLines); diff != "" {
		t.Errorf("trees differ beyond line numbers (-one-line +many-lines):\n%s", diff)
	}
}

func TestParse_DifferentOperatorProducesDifferentTree(t *testing.T) {
	plus := parse(t, "1 + 2;")
	minus := parse(t, "1 - 2;")

	require.NotEmpty(t, astDiff(plus, minus), "trees for `+` and `-` should not be reported identical")
}
