package Trees

// A node in the LinkedBinaryTree.
// The tree owns its nodes through root and the l, r links; parent is only a back
// reference. A node is dead once it has been deleted, which is permanent.
type node[E any] struct {
	v      E
	parent *node[E]
	l, r   *node[E]
	dead   bool
}

func (n *node[E]) numChildren() (c int) {
	if n.l != nil {
		c++
	}
	if n.r != nil {
		c++
	}
	return
}

// kill detaches n from the tree and marks it dead. Positions holding n fail validation afterward.
func (n *node[E]) kill() {
	n.parent, n.l, n.r = nil, nil, nil
	n.dead = true
}

// position binds a node to the tree it was obtained from. gen is the tree's
// generation at that time, see LinkedBinaryTree.gen.
type position[E any] struct {
	t   *LinkedBinaryTree[E]
	n   *node[E]
	gen uint64
}

func (p position[E]) Element() E {
	return p.n.v
}
