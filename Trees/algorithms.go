package Trees

import "github.com/pkg/errors"

// IsRoot reports whether p is the root of t. A nil p is never the root.
func IsRoot[E any](t Tree[E], p Position[E]) bool {
	return p != nil && p == t.Root()
}

// IsLeaf reports whether p has no children.
func IsLeaf[E any](t Tree[E], p Position[E]) (bool, error) {
	n, err := t.NumChildren(p)
	return n == 0, err
}

func IsEmpty[E any](t Tree[E]) bool {
	return t.Len() == 0
}

// Depth is the number of ancestors of p, 0 for the root.
// Time: O(Depth)
func Depth[E any](t Tree[E], p Position[E]) (d int, err error) {
	for !IsRoot(t, p) {
		if p, err = t.Parent(p); err != nil {
			return 0, err
		}
		d++
	}
	return d, nil
}

// Height of the subtree rooted at p, 0 for a leaf. A nil p means the root of t,
// in which case an empty t gives ErrEmptyTree. Recursive.
// Time: O(size of the subtree)
func Height[E any](t Tree[E], p Position[E]) (int, error) {
	if p == nil {
		if p = t.Root(); p == nil {
			return 0, errors.Wrap(ErrEmptyTree, "height")
		}
	}
	return height(t, p)
}

func height[E any](t Tree[E], p Position[E]) (int, error) {
	cs, err := t.Children(p)
	if err != nil {
		return 0, err
	}
	h := 0
	for _, c := range cs {
		ch, err := height(t, c)
		if err != nil {
			return 0, err
		}
		h = max(h, ch+1)
	}
	return h, nil
}

// BinaryChildren of p: the left child if present, then the right child if present.
// BinaryTree implementations can use it as their Children.
func BinaryChildren[E any](t BinaryTree[E], p Position[E]) ([]Position[E], error) {
	l, err := t.Left(p)
	if err != nil {
		return nil, err
	}
	r, err := t.Right(p)
	if err != nil {
		return nil, err
	}
	cs := make([]Position[E], 0, 2)
	if l != nil {
		cs = append(cs, l)
	}
	if r != nil {
		cs = append(cs, r)
	}
	return cs, nil
}

// Sibling of p, the other child of p's parent. nil for the root or an only child.
func Sibling[E any](t BinaryTree[E], p Position[E]) (Position[E], error) {
	parent, err := t.Parent(p)
	if err != nil || parent == nil {
		return nil, err
	}
	l, err := t.Left(parent)
	if err != nil {
		return nil, err
	}
	if p == l {
		return t.Right(parent)
	}
	return l, nil
}
