package Trees

import (
	"testing"

	"github.com/g-m-twostay/go-trees/Queues"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestTraversal_Empty(t *testing.T) {
	tree := NewLinkedBinaryTree[int]()
	iters := map[string]Iterator[int]{
		"pre":     PreOrder[int](tree),
		"post":    PostOrder[int](tree),
		"breadth": BreadthFirst[int](tree),
		"in":      InOrder[int](tree),
	}
	for name, it := range iters {
		p, ok := it.Next()
		require.Falsef(t, ok, "%s", name)
		require.Nilf(t, p, "%s", name)
		require.NoErrorf(t, it.Err(), "%s", name)
	}
	_, err := Height[int](tree, nil)
	require.True(t, errors.Is(err, ErrEmptyTree), "got %v", err)
	s, err := Parenthesize[int](tree, nil)
	require.NoError(t, err)
	require.Equal(t, "", s)
}

func TestTraversal_Orders(t *testing.T) {
	tree, _ := build7(t)
	testCases := []struct {
		name string
		it   func() Iterator[int]
		want []int
	}{
		{"pre", func() Iterator[int] { return PreOrder[int](tree) }, []int{1, 2, 4, 5, 7, 3, 6}},
		{"positions", func() Iterator[int] { return Positions[int](tree) }, []int{1, 2, 4, 5, 7, 3, 6}},
		{"post", func() Iterator[int] { return PostOrder[int](tree) }, []int{4, 7, 5, 2, 6, 3, 1}},
		{"breadth", func() Iterator[int] { return BreadthFirst[int](tree) }, []int{1, 2, 3, 4, 5, 6, 7}},
		{"breadth linked", func() Iterator[int] {
			return BreadthFirstWith[int](tree, Queues.MakeLinkedQueue[Position[int]]())
		}, []int{1, 2, 3, 4, 5, 6, 7}},
		{"in", func() Iterator[int] { return InOrder[int](tree) }, []int{4, 2, 5, 7, 1, 3, 6}},
	}
	for _, c := range testCases {
		require.Equalf(t, c.want, elems(t, c.it()), "%s", c.name)
		// a new iterator starts over.
		require.Equalf(t, c.want, elems(t, c.it()), "%s restarted", c.name)
	}
}

func TestTraversal_Exhausted(t *testing.T) {
	tree, _, _, _ := build123(t)
	it := PostOrder[int](tree)
	_, err := Collect[int](it)
	require.NoError(t, err)
	for range 3 {
		_, ok := it.Next()
		require.False(t, ok)
	}
}

func TestAlgorithms(t *testing.T) {
	tree, ps := build7(t)

	depths := map[int]int{1: 0, 2: 1, 3: 1, 4: 2, 5: 2, 6: 2, 7: 3}
	heights := map[int]int{1: 3, 2: 2, 3: 1, 4: 0, 5: 1, 6: 0, 7: 0}
	for e, p := range ps {
		d, err := Depth[int](tree, p)
		require.NoError(t, err)
		require.Equalf(t, depths[e], d, "depth of %d", e)
		h, err := Height[int](tree, p)
		require.NoError(t, err)
		require.Equalf(t, heights[e], h, "height of %d", e)
		leaf, err := IsLeaf[int](tree, p)
		require.NoError(t, err)
		require.Equalf(t, heights[e] == 0, leaf, "leaf %d", e)
		require.Equalf(t, e == 1, IsRoot[int](tree, p), "root %d", e)
	}
	h, err := Height[int](tree, nil)
	require.NoError(t, err)
	require.Equal(t, 3, h)
	require.False(t, IsEmpty[int](tree))
	require.False(t, IsRoot[int](tree, nil))

	siblings := map[int]int{2: 3, 3: 2, 4: 5, 5: 4}
	for e, p := range ps {
		s, err := Sibling[int](tree, p)
		require.NoError(t, err)
		if want, ok := siblings[e]; ok {
			require.Equalf(t, ps[want], s, "sibling of %d", e)
		} else {
			require.Nilf(t, s, "sibling of %d", e)
		}
	}

	cs, err := BinaryChildren[int](tree, ps[5])
	require.NoError(t, err)
	require.Equal(t, []Position[int]{ps[7]}, cs)
	cs, err = tree.Children(ps[2])
	require.NoError(t, err)
	require.Equal(t, []Position[int]{ps[4], ps[5]}, cs)
	cs, err = tree.Children(ps[4])
	require.NoError(t, err)
	require.Empty(t, cs)

	_, err = Depth[int](tree, fakePos{})
	require.True(t, errors.Is(err, ErrInvalidPosition), "got %v", err)
	_, err = Height[int](tree, fakePos{})
	require.True(t, errors.Is(err, ErrInvalidPosition), "got %v", err)
	_, err = IsLeaf[int](tree, fakePos{})
	require.True(t, errors.Is(err, ErrInvalidPosition), "got %v", err)
	_, err = Sibling[int](tree, nil)
	require.True(t, errors.Is(err, ErrInvalidPosition), "got %v", err)
}

var errBroken = errors.New("broken")

// brokenTree fails to give the children, and the right child, of the node holding 2.
type brokenTree struct {
	*LinkedBinaryTree[int]
}

func (b brokenTree) Children(p Position[int]) ([]Position[int], error) {
	if p != nil && p.Element() == 2 {
		return nil, errBroken
	}
	return b.LinkedBinaryTree.Children(p)
}

func (b brokenTree) Right(p Position[int]) (Position[int], error) {
	if p != nil && p.Element() == 2 {
		return nil, errBroken
	}
	return b.LinkedBinaryTree.Right(p)
}

func TestTraversal_Error(t *testing.T) {
	tree, _ := build7(t)
	broken := brokenTree{tree}
	testCases := []struct {
		name string
		it   Iterator[int]
		want []int
	}{
		{"pre", PreOrder[int](broken), []int{1}},
		{"post", PostOrder[int](broken), nil},
		{"breadth", BreadthFirst[int](broken), []int{1}},
		{"in", InOrder[int](broken), []int{4}},
	}
	for _, c := range testCases {
		es, err := Elements(c.it)
		require.Equalf(t, c.want, es, "%s", c.name)
		require.Truef(t, errors.Is(err, errBroken), "%s: got %v", c.name, err)
		_, ok := c.it.Next()
		require.Falsef(t, ok, "%s", c.name)
	}
	_, err := Height[int](broken, nil)
	require.True(t, errors.Is(err, errBroken), "got %v", err)
	_, err = Parenthesize[int](broken, nil)
	require.True(t, errors.Is(err, errBroken), "got %v", err)
}

func TestTraversal_Random(t *testing.T) {
	for _, n := range []int{1, 2, 10, 500} {
		tree, ps := randomTree(n)
		root := tree.Root()
		pre, err := Collect[int](PreOrder[int](tree))
		require.NoError(t, err)
		post, err := Collect[int](PostOrder[int](tree))
		require.NoError(t, err)
		breadth, err := Collect[int](BreadthFirst[int](tree))
		require.NoError(t, err)
		in, err := Collect[int](InOrder[int](tree))
		require.NoError(t, err)

		for _, order := range [][]Position[int]{pre, post, breadth, in} {
			require.Len(t, order, n)
			require.ElementsMatch(t, ps, order)
		}
		require.Equal(t, root, pre[0])
		require.Equal(t, root, breadth[0])
		require.Equal(t, root, post[n-1])

		// breadth first visits by non decreasing depth.
		last := 0
		for _, p := range breadth {
			d, err := Depth[int](tree, p)
			require.NoError(t, err)
			require.GreaterOrEqual(t, d, last)
			last = d
			if p != root {
				parent, err := tree.Parent(p)
				require.NoError(t, err)
				pd, err := Depth[int](tree, parent)
				require.NoError(t, err)
				require.Equal(t, pd+1, d)
			}
		}
		h, err := Height[int](tree, nil)
		require.NoError(t, err)
		require.Equal(t, last, h)
	}
}
