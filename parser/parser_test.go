package parser_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cero-lang/cero/ast"
	"github.com/cero-lang/cero/parser"
	"github.com/cero-lang/cero/report"
	"github.com/cero-lang/cero/source"
)

func parseString(t *testing.T, text string) (*ast.Tree, *report.Handler) {
	t.Helper()
	src := source.New("test.cero", []byte(text))
	h := report.NewHandler()
	return parser.Parse(src, h), h
}

// directChildren returns the indices of at's immediate children, skipping
// over each child's own descendants using its recursive DescendantCount.
func directChildren(tree *ast.Tree, at ast.Index) []ast.Index {
	start, end := tree.ChildrenOf(at)
	var out []ast.Index
	for i := start; i < end; {
		out = append(out, i)
		i += 1 + ast.Index(tree.DescendantCount(i))
	}
	return out
}

// allNodes returns every node in the tree, in storage order.
func allNodes(tree *ast.Tree) []ast.Node {
	nodes := make([]ast.Node, tree.Len())
	for i := range nodes {
		nodes[i] = tree.At(ast.Index(i))
	}
	return nodes
}

func TestParseEmptyFunction(t *testing.T) {
	tree, h := parseString(t, "main() {}")
	require.False(t, h.HasErrors())

	root := tree.Root()
	require.Equal(t, ast.Root, root.Kind)
	require.Equal(t, 1, root.NumChildren)

	defs := directChildren(tree, tree.RootIndex())
	require.Len(t, defs, 1)

	fn := tree.At(defs[0])
	access, name, numParams, numOutputs := fn.AsFunctionDefinition()
	assert.Equal(t, ast.AccessNone, access)
	assert.Equal(t, "main", name)
	assert.Equal(t, 0, numParams)
	assert.Equal(t, 0, numOutputs)
	assert.Empty(t, directChildren(tree, defs[0]))
}

func TestParseFibonacciSkeleton(t *testing.T) {
	src := `
		fib(int n) -> int {
			if n < 2 {
				return n;
			}
			return fib(n - 1) + fib(n - 2);
		}
	`
	tree, h := parseString(t, src)
	require.False(t, h.HasErrors())

	defs := directChildren(tree, tree.RootIndex())
	fn := tree.At(defs[0])
	_, name, numParams, numOutputs := fn.AsFunctionDefinition()
	assert.Equal(t, "fib", name)
	assert.Equal(t, 1, numParams)
	assert.Equal(t, 1, numOutputs)

	body := directChildren(tree, defs[0])
	require.Len(t, body, 4) // parameter, output, if-statement, return-statement

	param := tree.At(body[0])
	require.Equal(t, ast.FunctionParameter, param.Kind)
	_, paramName, _ := param.AsFunctionParameter()
	assert.Equal(t, "n", paramName)

	require.Equal(t, ast.FunctionOutput, tree.At(body[1]).Kind)
	require.Equal(t, ast.IfExpr, tree.At(body[2]).Kind)
	require.Equal(t, ast.ReturnExpr, tree.At(body[3]).Kind)
}

func TestParseOperatorPrecedence(t *testing.T) {
	tree, h := parseString(t, "f() { return 1 + 2 * 3; }")
	require.False(t, h.HasErrors())

	defs := directChildren(tree, tree.RootIndex())
	body := directChildren(tree, defs[0])
	require.Len(t, body, 1)

	ret := tree.At(body[0])
	require.Equal(t, ast.ReturnExpr, ret.Kind)
	require.Equal(t, 1, ret.AsReturnExpr())

	exprs := directChildren(tree, body[0])
	require.Len(t, exprs, 1)

	top := tree.At(exprs[0])
	require.Equal(t, ast.BinaryExpr, top.Kind)
	assert.Equal(t, ast.Add, top.AsBinaryExpr())

	operands := directChildren(tree, exprs[0])
	require.Len(t, operands, 2)
	assert.Equal(t, ast.NumericLiteralExpr, tree.At(operands[0]).Kind)

	right := tree.At(operands[1])
	require.Equal(t, ast.BinaryExpr, right.Kind)
	assert.Equal(t, ast.Multiply, right.AsBinaryExpr())
}

func TestParsePowerIsRightAssociative(t *testing.T) {
	// 2 ** 3 ** 2 should parse as 2 ** (3 ** 2), not (2 ** 3) ** 2.
	tree, h := parseString(t, "f() { return 2 ** 3 ** 2; }")
	require.False(t, h.HasErrors())

	defs := directChildren(tree, tree.RootIndex())
	body := directChildren(tree, defs[0])
	exprs := directChildren(tree, body[0])

	outer := tree.At(exprs[0])
	require.Equal(t, ast.BinaryExpr, outer.Kind)
	require.Equal(t, ast.Power, outer.AsBinaryExpr())

	operands := directChildren(tree, exprs[0])
	require.Len(t, operands, 2)
	assert.Equal(t, ast.NumericLiteralExpr, tree.At(operands[0]).Kind)

	right := tree.At(operands[1])
	require.Equal(t, ast.BinaryExpr, right.Kind)
	assert.Equal(t, ast.Power, right.AsBinaryExpr())
}

func TestParseGenericNameVsComparisonChain(t *testing.T) {
	tree, h := parseString(t, "f() { return Box<int>(1); }")
	require.False(t, h.HasErrors())

	defs := directChildren(tree, tree.RootIndex())
	body := directChildren(tree, defs[0])
	exprs := directChildren(tree, body[0])

	call := tree.At(exprs[0])
	require.Equal(t, ast.CallExpr, call.Kind)

	callArgs := directChildren(tree, exprs[0])
	require.Len(t, callArgs, 2) // callee, then the one call argument

	callee := tree.At(callArgs[0])
	require.Equal(t, ast.GenericNameExpr, callee.Kind)
	name, numArgs := callee.AsGenericNameExpr()
	assert.Equal(t, "Box", name)
	assert.Equal(t, 1, numArgs)
}

func TestParseComparisonChainFallsBackFromGenericSyntax(t *testing.T) {
	tree, h := parseString(t, "f() { return a < b < 1; }")
	require.False(t, h.HasErrors())

	defs := directChildren(tree, tree.RootIndex())
	body := directChildren(tree, defs[0])
	exprs := directChildren(tree, body[0])

	top := tree.At(exprs[0])
	require.Equal(t, ast.BinaryExpr, top.Kind)
	assert.Equal(t, ast.Less, top.AsBinaryExpr())
}

func TestParseAmbiguousOperatorMixingReported(t *testing.T) {
	_, h := parseString(t, "f() { return a + b & c; }")
	require.True(t, h.HasErrors())
	require.Len(t, h.Diagnostics, 1)
	assert.Equal(t, report.AmbiguousOperatorMixing, h.Diagnostics[0].Kind)
}

func TestParseUnterminatedStringReportsMissingClosingQuote(t *testing.T) {
	src := "f() { return \"abc; }\ng() {}"
	_, h := parseString(t, src)
	require.True(t, h.HasErrors())

	var kinds []report.Kind
	for _, d := range h.Diagnostics {
		kinds = append(kinds, d.Kind)
	}
	assert.Contains(t, kinds, report.MissingClosingQuote)
}

func TestParseBindingDeclarationWithInitializer(t *testing.T) {
	tree, h := parseString(t, "f() { let x = 1; }")
	require.False(t, h.HasErrors())

	defs := directChildren(tree, tree.RootIndex())
	body := directChildren(tree, defs[0])
	require.Len(t, body, 1)

	binding := tree.At(body[0])
	require.Equal(t, ast.BindingStatement, binding.Kind)
	spec, name, hasType, hasInit := binding.AsBindingStatement()
	assert.Equal(t, ast.BindingLet, spec)
	assert.Equal(t, "x", name)
	assert.False(t, hasType)
	assert.True(t, hasInit)
}

func TestParseImplicitTypedBindingFromTrailingName(t *testing.T) {
	tree, h := parseString(t, "f() { int x = 1; }")
	require.False(t, h.HasErrors())

	defs := directChildren(tree, tree.RootIndex())
	body := directChildren(tree, defs[0])
	require.Len(t, body, 1)

	binding := tree.At(body[0])
	require.Equal(t, ast.BindingStatement, binding.Kind)
	_, name, hasType, hasInit := binding.AsBindingStatement()
	assert.Equal(t, "x", name)
	assert.True(t, hasType)
	assert.True(t, hasInit)
}

func TestParseVarBindingWithExplicitType(t *testing.T) {
	tree, h := parseString(t, "f() { var uint32 result = 0; }")
	require.False(t, h.HasErrors())

	defs := directChildren(tree, tree.RootIndex())
	body := directChildren(tree, defs[0])
	require.Len(t, body, 1)

	binding := tree.At(body[0])
	require.Equal(t, ast.BindingStatement, binding.Kind)
	spec, name, hasType, hasInit := binding.AsBindingStatement()
	assert.Equal(t, ast.BindingVar, spec)
	assert.Equal(t, "result", name)
	assert.True(t, hasType)
	assert.True(t, hasInit)

	children := directChildren(tree, body[0])
	require.Len(t, children, 2) // the uint32 type expr, then the 0 initializer
	assert.Equal(t, ast.NameExpr, tree.At(children[0]).Kind)
	assert.Equal(t, ast.NumericLiteralExpr, tree.At(children[1]).Kind)
}

func TestParseVarBindingWithoutType(t *testing.T) {
	tree, h := parseString(t, "f() { var result = 0; }")
	require.False(t, h.HasErrors())

	defs := directChildren(tree, tree.RootIndex())
	body := directChildren(tree, defs[0])
	require.Len(t, body, 1)

	binding := tree.At(body[0])
	require.Equal(t, ast.BindingStatement, binding.Kind)
	spec, name, hasType, hasInit := binding.AsBindingStatement()
	assert.Equal(t, ast.BindingVar, spec)
	assert.Equal(t, "result", name)
	assert.False(t, hasType)
	assert.True(t, hasInit)

	children := directChildren(tree, body[0])
	require.Len(t, children, 1) // just the 0 initializer, no type child
}

func TestParseWhileLoopFlattensBlockStatements(t *testing.T) {
	tree, h := parseString(t, "f() { while true { let x = 1; let y = 2; } }")
	require.False(t, h.HasErrors())

	defs := directChildren(tree, tree.RootIndex())
	body := directChildren(tree, defs[0])
	require.Len(t, body, 1)

	loop := tree.At(body[0])
	require.Equal(t, ast.WhileLoop, loop.Kind)

	loopChildren := directChildren(tree, body[0])
	require.Len(t, loopChildren, 3) // condition, let x, let y
	assert.Equal(t, ast.NameExpr, tree.At(loopChildren[0]).Kind)
	assert.Equal(t, ast.BindingStatement, tree.At(loopChildren[1]).Kind)
	assert.Equal(t, ast.BindingStatement, tree.At(loopChildren[2]).Kind)
}

func TestParseForLoopIsUnsupportedStub(t *testing.T) {
	_, h := parseString(t, "f() { for x in y; }")
	require.True(t, h.HasErrors())
	require.Len(t, h.Diagnostics, 1)
	assert.Equal(t, report.ForLoopUnsupported, h.Diagnostics[0].Kind)
}

func TestParseStructAndEnumDefinitions(t *testing.T) {
	tree, h := parseString(t, "public struct Point private enum Color")
	require.False(t, h.HasErrors())
	assert.Equal(t, 2, tree.Root().NumChildren)

	defs := directChildren(tree, tree.RootIndex())
	require.Len(t, defs, 2)

	st := tree.At(defs[0])
	access, name := st.AsStructDefinition()
	assert.Equal(t, ast.AccessPublic, access)
	assert.Equal(t, "Point", name)

	en := tree.At(defs[1])
	enAccess, enName := en.AsEnumDefinition()
	assert.Equal(t, ast.AccessPrivate, enAccess)
	assert.Equal(t, "Color", enName)
}

// TestParseIsWhitespaceInvariant checks that two spellings of the same
// program, differing only in incidental whitespace, produce identical
// trees once source offsets (which necessarily differ) are ignored.
func TestParseIsWhitespaceInvariant(t *testing.T) {
	tight, h1 := parseString(t, "f(int x) -> int { return x + 1; }")
	require.False(t, h1.HasErrors())

	spaced, h2 := parseString(t, "f( int   x )  ->  int  {\n\treturn   x + 1 ;\n}")
	require.False(t, h2.HasErrors())

	diff := cmp.Diff(allNodes(tight), allNodes(spaced), cmpopts.IgnoreFields(ast.Node{}, "Offset"))
	assert.Empty(t, diff, "trees should match modulo source offsets:\n%s", diff)
}
