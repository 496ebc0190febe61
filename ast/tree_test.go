package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cero-lang/cero/ast"
)

// buildSmallTree builds the AST for `a + b` as a BinaryExpr over two
// NameExprs, using InsertParent the way the parser's Pratt loop does:
// the left operand is pushed first, then the parent is inserted at its
// saved index once the operator and right operand are known.
func buildSmallTree(t *ast.Tree) ast.Index {
	leftAt := t.Next()
	t.Push(ast.Node{Kind: ast.NameExpr, Offset: 0, Name: "a"})
	t.Push(ast.Node{Kind: ast.NameExpr, Offset: 4, Name: "b"})
	return t.InsertParent(leftAt, ast.Node{Kind: ast.BinaryExpr, Offset: 2, BinaryOp: ast.Add}, 2)
}

func TestInsertParentShiftsAndCounts(t *testing.T) {
	tree := ast.New()
	binAt := buildSmallTree(tree)

	bin := tree.At(binAt)
	assert.Equal(t, ast.BinaryExpr, bin.Kind)
	assert.Equal(t, 2, bin.NumChildren)

	start, end := tree.ChildrenOf(binAt)
	require.Equal(t, ast.Index(2), end-start)

	left := tree.At(start)
	right := tree.At(start + 1)
	assert.Equal(t, "a", left.AsNameExpr())
	assert.Equal(t, "b", right.AsNameExpr())
}

func TestRootIsAlwaysLastNode(t *testing.T) {
	tree := ast.New()
	buildSmallTree(tree)
	tree.Push(ast.Node{Kind: ast.NameExpr, Offset: 10, Name: "c"})

	rootAt := tree.SetRoot(0, 2)
	assert.Equal(t, rootAt, tree.RootIndex())
	assert.Equal(t, tree.Len()-1, int(tree.RootIndex()))

	root := tree.Root()
	assert.Equal(t, ast.Root, root.Kind)
	assert.Equal(t, 2, root.NumChildren, "two top-level trees: the binary expr subtree and the lone name")
}

func TestDescendantCountIsRecursive(t *testing.T) {
	tree := ast.New()
	binAt := buildSmallTree(tree)
	assert.Equal(t, 2, tree.DescendantCount(binAt))
}

// TestDescendantCountNestedDepth builds (a+b)+c, a three-level tree, the
// shallowest shape that distinguishes "immediate children" (NumChildren,
// always 2 for a BinaryExpr) from "total descendants" (which grows with
// depth) — a distinction a two-level tree can't expose, since every
// child is then a leaf and the two numbers happen to coincide.
func TestDescendantCountNestedDepth(t *testing.T) {
	tree := ast.New()
	outerAt := tree.Next()
	buildSmallTree(tree) // pushes the (a+b) subtree as the left operand
	tree.Push(ast.Node{Kind: ast.NameExpr, Offset: 8, Name: "c"})
	tree.InsertParent(outerAt, ast.Node{Kind: ast.BinaryExpr, Offset: 6, BinaryOp: ast.Add}, 2)

	outer := tree.At(outerAt)
	assert.Equal(t, ast.BinaryExpr, outer.Kind)
	assert.Equal(t, 2, outer.NumChildren, "two immediate children: the inner (a+b) subtree and c")
	assert.Equal(t, 4, tree.DescendantCount(outerAt), "bin(a,b), a, b, c")

	start, end := tree.ChildrenOf(outerAt)
	var kinds []ast.Kind
	for i := start; i < end; {
		kinds = append(kinds, tree.At(i).Kind)
		i += 1 + ast.Index(tree.DescendantCount(i))
	}
	assert.Equal(t, []ast.Kind{ast.BinaryExpr, ast.NameExpr}, kinds, "two direct children: the inner bin subtree and c")
}

func TestCursorVisitAllCoversEveryChild(t *testing.T) {
	tree := ast.New()
	buildSmallTree(tree)
	tree.Push(ast.Node{Kind: ast.NameExpr, Offset: 10, Name: "c"})
	rootAt := tree.SetRoot(0, 2)

	var kinds []ast.Kind
	ast.NewCursor(tree, rootAt).VisitAll(func(_ *ast.Tree, _ ast.Index, n ast.Node) {
		kinds = append(kinds, n.Kind)
	})

	assert.Equal(t, []ast.Kind{ast.BinaryExpr, ast.NameExpr, ast.NameExpr, ast.NameExpr}, kinds)
}

func TestCursorVisitChildVisitsOneSubtreeAtATime(t *testing.T) {
	tree := ast.New()
	buildSmallTree(tree)
	tree.Push(ast.Node{Kind: ast.NameExpr, Offset: 10, Name: "c"})
	rootAt := tree.SetRoot(0, 2)

	cursor := ast.NewCursor(tree, rootAt)
	require.Equal(t, 2, cursor.Remaining())

	var firstSubtree []ast.Kind
	cursor.VisitChild(func(_ *ast.Tree, _ ast.Index, n ast.Node) {
		firstSubtree = append(firstSubtree, n.Kind)
	})
	assert.Equal(t, []ast.Kind{ast.BinaryExpr, ast.NameExpr, ast.NameExpr}, firstSubtree)
	assert.Equal(t, 1, cursor.Remaining())
}

func TestAccessorsPanicOnWrongKind(t *testing.T) {
	n := ast.Node{Kind: ast.NameExpr, Name: "x"}
	assert.Panics(t, func() { n.AsBinaryExpr() })
}

func TestNodeKindIsTypeExpr(t *testing.T) {
	assert.True(t, ast.NameExpr.IsTypeExpr())
	assert.True(t, ast.ArrayTypeExpr.IsTypeExpr())
	assert.False(t, ast.CallExpr.IsTypeExpr())
}
