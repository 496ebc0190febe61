package ast

import "fmt"

// Index identifies a Node within a Tree by its position in pre-order.
type Index int

// Tree is the parser's output: a dense, append-only vector of Nodes in
// pre-order. A node's entire subtree (all its descendants, at every
// depth) occupies the contiguous range of indices immediately following
// it, so a subtree can always be identified by a single index once its
// total descendant count is known. That count is never stored directly:
// each Node only records its immediate child count (NumChildren); the
// total is derived by recursive descent (see DescendantCount).
type Tree struct {
	nodes []Node
}

// New returns an empty Tree.
func New() *Tree {
	return &Tree{}
}

// Len returns the number of nodes currently in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// At returns the node at index i.
func (t *Tree) At(i Index) Node { return t.nodes[i] }

// Next returns the index a node pushed right now would occupy.
func (t *Tree) Next() Index { return Index(len(t.nodes)) }

// Push appends a leaf or already-complete node and returns its index.
// Use this for nodes whose full set of children has already been pushed
// (e.g. a binary expression's left operand, or a node with no children).
func (t *Tree) Push(n Node) Index {
	idx := t.Next()
	t.nodes = append(t.nodes, n)
	return idx
}

// InsertParent inserts n at the position `at`, shifting every node
// already at or after `at` one slot to the right, and sets n's
// NumChildren to numChildren — the count of n's own immediate children,
// which the caller must already know (it parsed them). This is the
// operation a Pratt parser needs whenever a node's parent is discovered
// only after one or more of its children have already been parsed and
// pushed: the left operand of a binary expression, or the type
// expression that a trailing binding's name turns into a
// BindingStatement's child.
//
// `at` must have been captured (via Next) before any of the node's
// children were pushed. numChildren counts only n's immediate children,
// not their descendants: a single already-built operand subtree, however
// deep, is one child.
func (t *Tree) InsertParent(at Index, n Node, numChildren int) Index {
	shifted := len(t.nodes) - int(at)
	if shifted < 0 {
		panic(fmt.Sprintf("ast: InsertParent at %d past end of tree (len %d)", at, len(t.nodes)))
	}
	n.NumChildren = numChildren

	t.nodes = append(t.nodes, Node{})
	copy(t.nodes[at+1:], t.nodes[at:])
	t.nodes[at] = n
	return at
}

// FinishParent sets the NumChildren of the node at `at` to numChildren.
// Use this for parents pushed up front (Root, struct/enum/function
// definitions, blocks) whose children are then appended normally.
func (t *Tree) FinishParent(at Index, numChildren int) {
	t.nodes[at].NumChildren = numChildren
}

// Finish overwrites the node reserved at `at` (via Next/Push, typically
// pushed as a bare placeholder) with the complete node n, setting
// NumChildren to numChildren — the count of n's own immediate children,
// which the caller already knows from however many times it parsed one.
// This is the general "reserve, parse children, then fill in the full
// node" pattern: a parent whose scalar fields (name, specifiers,
// optional-child flags) are only fully known once its children have
// already been parsed reserves a slot up front and calls Finish once, at
// the end, with every field set.
func (t *Tree) Finish(at Index, n Node, numChildren int) {
	n.NumChildren = numChildren
	t.nodes[at] = n
}

// Ptr returns a pointer to the node at `at`, for the rare case where a
// single field must be toggled in place without disturbing NumChildren
// (e.g. marking a reserved node's optional trailing child as present
// right after pushing it, rather than deferring to Finish).
func (t *Tree) Ptr(at Index) *Node {
	return &t.nodes[at]
}

// Truncate discards every node from index at onward. This is the
// "rescind" half of the generic-name disambiguation: once a speculative
// parse has decided whether `Name <` is a generic argument list or a
// comparison chain, every node it pushed while looking ahead is erased so
// the real parse can start clean from the same index.
func (t *Tree) Truncate(at Index) {
	t.nodes = t.nodes[:at]
}

// SetRoot pushes the Root node once parsing completes. numDefinitions
// is the count of top-level definitions parsed (the parser's own
// running counter) — NOT the total node count, since each definition's
// subtree may itself contain many nodes.
func (t *Tree) SetRoot(offset int, numDefinitions int) Index {
	return t.Push(Node{Kind: Root, Offset: offset, NumChildren: numDefinitions})
}

// Root returns the tree's root node, which by construction is always
// the last node pushed.
func (t *Tree) Root() Node {
	return t.nodes[len(t.nodes)-1]
}

// RootIndex returns the index of the root node.
func (t *Tree) RootIndex() Index {
	return Index(len(t.nodes) - 1)
}

// ChildrenOf returns the index range [start, end) spanned by the
// immediate children of the node at `at`, together with every one of
// their descendants.
//
// Every node but Root is parent-first: its children start immediately
// after it, at at+1. Since NumChildren only counts the immediate
// children and says nothing about how deep each one's own subtree goes,
// `end` is found by walking those NumChildren children one at a time,
// skipping each one's own DescendantCount to land on the next sibling.
// Root is the one deliberate exception (see SetRoot): since it is always
// the last node in the tree, its NumChildren top-level definitions
// instead occupy everything that precedes it, [0, at) — a range those
// definitions (each already internally contiguous) exactly tile.
func (t *Tree) ChildrenOf(at Index) (start, end Index) {
	n := t.nodes[at]
	if n.Kind == Root {
		return 0, at
	}
	end = at + 1
	for i := 0; i < n.NumChildren; i++ {
		end += 1 + Index(t.DescendantCount(end))
	}
	return at + 1, end
}

// DescendantCount returns the total number of descendants (children,
// grandchildren, ...) of the node at `at`, found by recursively summing
// each immediate child's own subtree size. NumChildren only holds the
// immediate count (see InsertParent/Finish); the total is never stored.
func (t *Tree) DescendantCount(at Index) int {
	n := t.nodes[at]
	total := 0
	next := at + 1
	for i := 0; i < n.NumChildren; i++ {
		child := t.DescendantCount(next)
		total += 1 + child
		next += 1 + Index(child)
	}
	return total
}
