package Trees

import (
	"fmt"
	"strconv"

	"github.com/emicklei/dot"
)

// RenderDot renders t as a Graphviz digraph. Nodes are labelled with label(element),
// fmt.Sprint when label is nil, and edges with "l" or "r".
func RenderDot[E any](t BinaryTree[E], label func(E) string) (string, error) {
	if label == nil {
		label = func(e E) string { return fmt.Sprint(e) }
	}
	graph := dot.NewGraph(dot.Directed)
	nodes := make(map[Position[E]]dot.Node, t.Len())
	it := PreOrder[E](t)
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		// ids are the pre order rank, elements aren't unique.
		n := graph.Node(strconv.Itoa(len(nodes))).Label(label(p.Element()))
		nodes[p] = n
		parent, err := t.Parent(p)
		if err != nil {
			return "", err
		}
		if parent == nil {
			continue
		}
		l, err := t.Left(parent)
		if err != nil {
			return "", err
		}
		direction := "r"
		if l == p {
			direction = "l"
		}
		graph.Edge(nodes[parent], n, direction)
	}
	if err := it.Err(); err != nil {
		return "", err
	}
	return graph.String(), nil
}
