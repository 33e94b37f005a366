package Trees

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// LinkedBinaryTree is a BinaryTree made of linked nodes, each holding its element,
// its children and a back reference to its parent. Besides the BinaryTree
// methods, it supports adding nodes, replacing elements, deleting nodes with at
// most one child, and attaching whole trees under a leaf.
// Positions are only valid for the tree that returned them. They become invalid
// when their node is deleted, or when the tree is emptied by giving its nodes to
// another tree through Attach; using them afterward returns ErrInvalidPosition.
// Every method that fails leaves the tree unchanged.
// The zero value is an empty tree that doesn't log.
type LinkedBinaryTree[E any] struct {
	root *node[E]
	size int
	gen  uint64 // incremented each time the tree is an Attach donor
	log  *zerolog.Logger
}

// NewLinkedBinaryTree returns an empty tree.
func NewLinkedBinaryTree[E any](opts ...Option) *LinkedBinaryTree[E] {
	var c config
	for _, o := range opts {
		o(&c)
	}
	return &LinkedBinaryTree[E]{log: c.log}
}

// validate p and return its node.
func (u *LinkedBinaryTree[E]) validate(p Position[E], op string) (*node[E], error) {
	pos, ok := p.(position[E])
	switch {
	case !ok:
		return nil, errors.Wrapf(ErrInvalidPosition, "%s: not a LinkedBinaryTree position", op)
	case pos.t != u || pos.gen != u.gen:
		return nil, errors.Wrapf(ErrInvalidPosition, "%s: position is from another tree", op)
	case pos.n.dead:
		return nil, errors.Wrapf(ErrInvalidPosition, "%s: position was deleted", op)
	}
	return pos.n, nil
}

func (u *LinkedBinaryTree[E]) makePosition(n *node[E]) Position[E] {
	if n == nil {
		return nil
	}
	return position[E]{u, n, u.gen}
}

// debug event for a successful edit; nil when not logging, which zerolog ignores.
func (u *LinkedBinaryTree[E]) debug(op string) *zerolog.Event {
	if u.log == nil {
		return nil
	}
	return u.log.Debug().Str("op", op).Int("size", u.size)
}

func (u *LinkedBinaryTree[E]) reject(op string, err error) error {
	if u.log != nil {
		u.log.Debug().Str("op", op).Err(err).Msg("rejected")
	}
	return err
}

// Len [Tree.Len]
// Time: O(1)
func (u *LinkedBinaryTree[E]) Len() int {
	return u.size
}

// Root [Tree.Root]
func (u *LinkedBinaryTree[E]) Root() Position[E] {
	return u.makePosition(u.root)
}

// Parent [Tree.Parent]
func (u *LinkedBinaryTree[E]) Parent(p Position[E]) (Position[E], error) {
	n, err := u.validate(p, "parent")
	if err != nil {
		return nil, err
	}
	return u.makePosition(n.parent), nil
}

// Left [BinaryTree.Left]
func (u *LinkedBinaryTree[E]) Left(p Position[E]) (Position[E], error) {
	n, err := u.validate(p, "left")
	if err != nil {
		return nil, err
	}
	return u.makePosition(n.l), nil
}

// Right [BinaryTree.Right]
func (u *LinkedBinaryTree[E]) Right(p Position[E]) (Position[E], error) {
	n, err := u.validate(p, "right")
	if err != nil {
		return nil, err
	}
	return u.makePosition(n.r), nil
}

// NumChildren [Tree.NumChildren], 0, 1 or 2.
func (u *LinkedBinaryTree[E]) NumChildren(p Position[E]) (int, error) {
	n, err := u.validate(p, "num children")
	if err != nil {
		return 0, err
	}
	return n.numChildren(), nil
}

// Children [Tree.Children], see BinaryChildren.
func (u *LinkedBinaryTree[E]) Children(p Position[E]) ([]Position[E], error) {
	return BinaryChildren[E](u, p)
}

// AddRoot holding e to an empty tree. Returns ErrRootExists otherwise.
func (u *LinkedBinaryTree[E]) AddRoot(e E) (Position[E], error) {
	const op = "add root"
	if u.root != nil {
		return nil, u.reject(op, errors.Wrap(ErrRootExists, op))
	}
	u.root, u.size = &node[E]{v: e}, 1
	u.debug(op).Msg("added")
	return u.makePosition(u.root), nil
}

// AddLeft child holding e to p. Returns ErrChildExists if p has a left child.
func (u *LinkedBinaryTree[E]) AddLeft(p Position[E], e E) (Position[E], error) {
	return u.addChild(p, e, false)
}

// AddRight child holding e to p. Returns ErrChildExists if p has a right child.
func (u *LinkedBinaryTree[E]) AddRight(p Position[E], e E) (Position[E], error) {
	return u.addChild(p, e, true)
}

func (u *LinkedBinaryTree[E]) addChild(p Position[E], e E, right bool) (Position[E], error) {
	op := "add left"
	if right {
		op = "add right"
	}
	n, err := u.validate(p, op)
	if err != nil {
		return nil, u.reject(op, err)
	}
	c := &n.l
	if right {
		c = &n.r
	}
	if *c != nil {
		return nil, u.reject(op, errors.Wrap(ErrChildExists, op))
	}
	*c = &node[E]{v: e, parent: n}
	u.size++
	u.debug(op).Msg("added")
	return u.makePosition(*c), nil
}

// Replace the element at p with e, returning the old one.
func (u *LinkedBinaryTree[E]) Replace(p Position[E], e E) (E, error) {
	n, err := u.validate(p, "replace")
	if err != nil {
		return *new(E), u.reject("replace", err)
	}
	old := n.v
	n.v = e
	return old, nil
}

// Delete the node at p and return its element. p must have at most one child,
// which takes p's place under p's parent, or becomes the root. Returns
// ErrTwoChildren otherwise. p and every Position equal to it are invalid afterward.
// Time: O(1)
func (u *LinkedBinaryTree[E]) Delete(p Position[E]) (E, error) {
	const op = "delete"
	n, err := u.validate(p, op)
	if err != nil {
		return *new(E), u.reject(op, err)
	}
	if n.l != nil && n.r != nil {
		return *new(E), u.reject(op, errors.Wrap(ErrTwoChildren, op))
	}
	c := n.l
	if c == nil {
		c = n.r
	}
	if c != nil {
		c.parent = n.parent
	}
	switch parent := n.parent; {
	case n == u.root:
		u.root = c
	case n == parent.l:
		parent.l = c
	default:
		parent.r = c
	}
	u.size--
	v := n.v
	n.kill()
	u.debug(op).Msg("deleted")
	return v, nil
}

// Attach the nodes of left and right as the left and right subtrees of the leaf p.
// The nodes are moved, not copied: left and right are empty afterward, and the
// Positions they returned are invalid. An empty donor leaves its side empty.
// Returns ErrNotLeaf if p has children, ErrTypeMismatch unless both donors are
// non nil *LinkedBinaryTree[E], and ErrSameTree if a donor is u, or both donors are
// the same non empty tree.
// Time: O(1)
func (u *LinkedBinaryTree[E]) Attach(p Position[E], left, right BinaryTree[E]) error {
	const op = "attach"
	n, err := u.validate(p, op)
	if err != nil {
		return u.reject(op, err)
	}
	if n.numChildren() != 0 {
		return u.reject(op, errors.Wrap(ErrNotLeaf, op))
	}
	lt, lok := left.(*LinkedBinaryTree[E])
	rt, rok := right.(*LinkedBinaryTree[E])
	if !lok || !rok || lt == nil || rt == nil {
		return u.reject(op, errors.Wrapf(ErrTypeMismatch, "%s: donors must be *LinkedBinaryTree", op))
	}
	if lt == u || rt == u || (lt == rt && lt.size > 0) {
		return u.reject(op, errors.Wrap(ErrSameTree, op))
	}
	u.size += lt.size + rt.size
	n.l = lt.donate(n)
	n.r = rt.donate(n)
	u.debug(op).Msg("attached")
	return nil
}

// donate empties u and returns its former root, now a child of parent.
func (u *LinkedBinaryTree[E]) donate(parent *node[E]) *node[E] {
	r := u.root
	if r != nil {
		r.parent = parent
	}
	u.root, u.size = nil, 0
	u.gen++
	return r
}
