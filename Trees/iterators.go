package Trees

import "github.com/g-m-twostay/go-trees/Queues"

// Iterator over the positions of a tree. Calling Next is like calling "Next()"
// of iterators: p, valid = it.Next(). p is meaningful only if valid is true.
// valid can't turn true after it first became false. When the tree returned an
// error on the way, the iteration stops and Err returns it.
// Every constructor starts a fresh traversal over the current tree. The tree must
// not be modified during the iteration; the result is undefined if it is.
type Iterator[E any] interface {
	Next() (Position[E], bool)
	Err() error
}

// PreOrderIter visits a node before its children, using a stack.
type PreOrderIter[E any] struct {
	t   Tree[E]
	st  []Position[E]
	err error
}

// PreOrder traversal of t.
// Time: O(children of p) at each call to Next; Space: O(height*degree)
func PreOrder[E any](t Tree[E]) *PreOrderIter[E] {
	it := &PreOrderIter[E]{t: t}
	if r := t.Root(); r != nil {
		it.st = append(it.st, r)
	}
	return it
}

// Positions of t, in pre order.
func Positions[E any](t Tree[E]) *PreOrderIter[E] {
	return PreOrder(t)
}

func (it *PreOrderIter[E]) Next() (Position[E], bool) {
	if it.err != nil || len(it.st) == 0 {
		return nil, false
	}
	p := it.st[len(it.st)-1]
	it.st[len(it.st)-1] = nil
	it.st = it.st[:len(it.st)-1]
	cs, err := it.t.Children(p)
	if err != nil {
		it.err, it.st = err, nil
		return nil, false
	}
	for i := len(cs) - 1; i >= 0; i-- {
		it.st = append(it.st, cs[i])
	}
	return p, true
}

func (it *PreOrderIter[E]) Err() error {
	return it.err
}

type postFrame[E any] struct {
	p        Position[E]
	expanded bool // children are on the stack above
}

// PostOrderIter visits a node after all of its children, using a stack.
type PostOrderIter[E any] struct {
	t   Tree[E]
	st  []postFrame[E]
	err error
}

// PostOrder traversal of t.
// Time: amortized O(1) children per call to Next; Space: O(height*degree)
func PostOrder[E any](t Tree[E]) *PostOrderIter[E] {
	it := &PostOrderIter[E]{t: t}
	if r := t.Root(); r != nil {
		it.st = append(it.st, postFrame[E]{p: r})
	}
	return it
}

func (it *PostOrderIter[E]) Next() (Position[E], bool) {
	for it.err == nil && len(it.st) > 0 {
		top := &it.st[len(it.st)-1]
		if top.expanded {
			p := top.p
			*top = postFrame[E]{}
			it.st = it.st[:len(it.st)-1]
			return p, true
		}
		top.expanded = true
		cs, err := it.t.Children(top.p)
		if err != nil {
			it.err, it.st = err, nil
			break
		}
		for i := len(cs) - 1; i >= 0; i-- {
			it.st = append(it.st, postFrame[E]{p: cs[i]})
		}
	}
	return nil, false
}

func (it *PostOrderIter[E]) Err() error {
	return it.err
}

// BreadthFirstIter visits the tree level by level, using a Queues.Queue.
type BreadthFirstIter[E any] struct {
	t   Tree[E]
	q   Queues.Queue[Position[E]]
	err error
}

// BreadthFirst traversal of t over a Queues.ArrayQueue.
func BreadthFirst[E any](t Tree[E]) *BreadthFirstIter[E] {
	return BreadthFirstWith(t, Queues.MakeArrayQueue[Position[E]](uint(min(t.Len(), 16))))
}

// BreadthFirstWith traverses t using q as the FIFO of pending positions. q should
// be empty and not be used elsewhere until the iteration finishes.
func BreadthFirstWith[E any](t Tree[E], q Queues.Queue[Position[E]]) *BreadthFirstIter[E] {
	if r := t.Root(); r != nil {
		q.Push(r)
	}
	return &BreadthFirstIter[E]{t: t, q: q}
}

func (it *BreadthFirstIter[E]) Next() (Position[E], bool) {
	if it.err != nil || it.q.Empty() {
		return nil, false
	}
	p, err := it.q.Pop()
	if err == nil {
		var cs []Position[E]
		if cs, err = it.t.Children(p); err == nil {
			for _, c := range cs {
				it.q.Push(c)
			}
			return p, true
		}
	}
	it.err = err
	return nil, false
}

func (it *BreadthFirstIter[E]) Err() error {
	return it.err
}

// InOrderIter visits the left subtree of a node, the node, then its right subtree.
type InOrderIter[E any] struct {
	t   BinaryTree[E]
	st  []Position[E]
	err error
}

// InOrder traversal of the binary tree t, using a stack.
// Time: amortized O(1) at each call to Next; Space: O(height)
func InOrder[E any](t BinaryTree[E]) *InOrderIter[E] {
	it := &InOrderIter[E]{t: t}
	it.pushLeft(t.Root())
	return it
}

// pushLeft pushes p and its chain of left descendants.
func (it *InOrderIter[E]) pushLeft(p Position[E]) {
	for p != nil && it.err == nil {
		it.st = append(it.st, p)
		p, it.err = it.t.Left(p)
	}
	if it.err != nil {
		it.st = nil
	}
}

func (it *InOrderIter[E]) Next() (Position[E], bool) {
	if it.err != nil || len(it.st) == 0 {
		return nil, false
	}
	p := it.st[len(it.st)-1]
	it.st[len(it.st)-1] = nil
	it.st = it.st[:len(it.st)-1]
	r, err := it.t.Right(p)
	if err != nil {
		it.err, it.st = err, nil
		return nil, false
	}
	if it.pushLeft(r); it.err != nil {
		return nil, false
	}
	return p, true
}

func (it *InOrderIter[E]) Err() error {
	return it.err
}

// Collect the remaining positions of it.
func Collect[E any](it Iterator[E]) ([]Position[E], error) {
	var ps []Position[E]
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		ps = append(ps, p)
	}
	return ps, it.Err()
}

// Elements of the remaining positions of it.
func Elements[E any](it Iterator[E]) ([]E, error) {
	var es []E
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		es = append(es, p.Element())
	}
	return es, it.Err()
}
