package Trees

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

var rg = *rand.New(rand.NewSource(0))

func elems(t *testing.T, it Iterator[int]) []int {
	t.Helper()
	es, err := Elements(it)
	require.NoError(t, err)
	return es
}

// build123 returns the tree 1 (2, 3) and its positions.
func build123(t *testing.T) (tree *LinkedBinaryTree[int], root, l, r Position[int]) {
	t.Helper()
	tree = NewLinkedBinaryTree[int]()
	var err error
	root, err = tree.AddRoot(1)
	require.NoError(t, err)
	l, err = tree.AddLeft(root, 2)
	require.NoError(t, err)
	r, err = tree.AddRight(root, 3)
	require.NoError(t, err)
	return
}

// build7 returns the tree
//
//	    1
//	  /   \
//	 2     3
//	/ \     \
//	4  5     6
//	    \
//	     7
//
// and its positions indexed by element.
func build7(t *testing.T) (*LinkedBinaryTree[int], map[int]Position[int]) {
	t.Helper()
	tree := NewLinkedBinaryTree[int]()
	ps := make(map[int]Position[int])
	var err error
	ps[1], err = tree.AddRoot(1)
	require.NoError(t, err)
	for _, e := range []struct {
		parent, v int
		right     bool
	}{{1, 2, false}, {1, 3, true}, {2, 4, false}, {2, 5, true}, {3, 6, true}, {5, 7, true}} {
		if e.right {
			ps[e.v], err = tree.AddRight(ps[e.parent], e.v)
		} else {
			ps[e.v], err = tree.AddLeft(ps[e.parent], e.v)
		}
		require.NoError(t, err)
	}
	return tree, ps
}

// randomTree with n nodes holding 0..n-1, each added under a random position with a free slot.
func randomTree(n int) (*LinkedBinaryTree[int], []Position[int]) {
	tree := NewLinkedBinaryTree[int]()
	if n == 0 {
		return tree, nil
	}
	root, _ := tree.AddRoot(0)
	ps := []Position[int]{root}
	for i := 1; i < n; {
		p := ps[rg.Intn(len(ps))]
		var c Position[int]
		var err error
		if rg.Intn(2) == 0 {
			c, err = tree.AddLeft(p, i)
		} else {
			c, err = tree.AddRight(p, i)
		}
		if err == nil {
			ps = append(ps, c)
			i++
		}
	}
	return tree, ps
}

// otherTree is a BinaryTree that isn't a *LinkedBinaryTree.
type otherTree struct {
	*LinkedBinaryTree[int]
}

// fakePos is a Position no tree of this package returns.
type fakePos struct{}

func (fakePos) Element() int {
	return 0
}
