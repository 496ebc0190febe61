package ast

// Visitor is called once per node visited by a Cursor walk, in pre-order.
type Visitor func(tree *Tree, index Index, node Node)

// Cursor walks a subtree of a Tree, tracking how many of the current
// node's children remain unvisited so that callers can visit a node's
// children one at a time, in groups, or all at once without having to
// recompute subtree boundaries themselves.
type Cursor struct {
	tree *Tree

	// next is the index of the next node a Visit* call will look at.
	next Index

	// remaining is how many direct children of the node the cursor was
	// created over still need to be visited.
	remaining int
}

// NewCursor returns a Cursor over the children of the node at `at`.
func NewCursor(tree *Tree, at Index) *Cursor {
	start, _ := tree.ChildrenOf(at)
	return &Cursor{tree: tree, next: start, remaining: tree.At(at).NumChildren}
}

// Remaining reports how many direct children have not yet been visited.
func (c *Cursor) Remaining() int { return c.remaining }

// advance visits the node at c.next with visitor, recursively visiting
// its entire subtree first if recurse is true, then moves c.next past
// it and decrements remaining.
func (c *Cursor) advance(visitor Visitor, recurse bool) {
	if c.remaining <= 0 {
		panic("ast: Cursor has no more children to visit")
	}
	index := c.next
	node := c.tree.At(index)
	visitor(c.tree, index, node)

	descendants := 0
	if recurse {
		descendants = c.tree.DescendantCount(index)
		child := NewCursor(c.tree, index)
		for child.Remaining() > 0 {
			child.advance(visitor, true)
		}
	} else {
		descendants = c.tree.DescendantCount(index)
	}

	c.next = index + 1 + Index(descendants)
	c.remaining--
}

// VisitChild visits exactly the next unvisited child (and, recursively,
// everything beneath it) with visitor.
func (c *Cursor) VisitChild(visitor Visitor) {
	c.advance(visitor, true)
}

// VisitChildren visits the next n unvisited children (and their
// subtrees) with visitor.
func (c *Cursor) VisitChildren(n int, visitor Visitor) {
	for i := 0; i < n; i++ {
		c.advance(visitor, true)
	}
}

// VisitAll visits every remaining child (and its subtree) with visitor.
func (c *Cursor) VisitAll(visitor Visitor) {
	for c.remaining > 0 {
		c.advance(visitor, true)
	}
}

// Walk visits the node at `at` itself, followed by its entire subtree,
// in pre-order.
func Walk(tree *Tree, at Index, visitor Visitor) {
	visitor(tree, at, tree.At(at))
	NewCursor(tree, at).VisitAll(visitor)
}
