/*
Package Trees implements positional trees: a Tree is navigated through
Positions, handles to single nodes that stay valid until their node is
removed. The traversal algorithms are free functions over the Tree and
BinaryTree interfaces, LinkedBinaryTree is the node linked implementation.

Nothing here is safe for concurrent use. Iterators read the tree lazily, so
the tree must not be modified while one is in use.
*/
package Trees

// Position of a node in a Tree. Two Positions are equal(==) iff they refer to
// the same node of the same tree. Implementations must be comparable.
// A nil Position is an absent node, e.g. the parent of the root.
type Position[E any] interface {
	// Element stored at the node.
	Element() E
}

// Tree is the read only contract of a rooted tree. Methods taking a Position
// return ErrInvalidPosition(wrapped) if it doesn't belong to the tree, in which
// case the other return value is undefined.
// Everything else, IsLeaf, Depth, Height, the traversals..., is derived from
// these methods by the functions of this package.
type Tree[E any] interface {
	// Len is the number of nodes in the tree.
	Len() int
	// Root returns nil on an empty tree.
	Root() Position[E]
	// Parent returns nil for the root.
	Parent(p Position[E]) (Position[E], error)
	NumChildren(p Position[E]) (int, error)
	// Children of p, in traversal order. Empty for a leaf.
	Children(p Position[E]) ([]Position[E], error)
}

// BinaryTree is a Tree whose nodes have at most a left and a right child.
// Children must agree with BinaryChildren.
type BinaryTree[E any] interface {
	Tree[E]
	// Left returns nil if there is no left child.
	Left(p Position[E]) (Position[E], error)
	// Right returns nil if there is no right child.
	Right(p Position[E]) (Position[E], error)
}
