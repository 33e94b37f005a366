package Trees

import (
	"fmt"
	"strings"
)

// Parenthesize renders t as "root (child, child (grandchild))", formatting elements
// with format, fmt.Sprint when nil. An empty tree renders as "". Recursive.
func Parenthesize[E any](t Tree[E], format func(E) string) (string, error) {
	if format == nil {
		format = func(e E) string { return fmt.Sprint(e) }
	}
	var sb strings.Builder
	if r := t.Root(); r != nil {
		if err := parenthesize(t, r, format, &sb); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

func parenthesize[E any](t Tree[E], p Position[E], format func(E) string, sb *strings.Builder) error {
	sb.WriteString(format(p.Element()))
	cs, err := t.Children(p)
	if err != nil {
		return err
	}
	if len(cs) > 0 {
		sb.WriteString(" (")
		for i, c := range cs {
			if i > 0 {
				sb.WriteString(", ")
			}
			if err = parenthesize(t, c, format, sb); err != nil {
				return err
			}
		}
		sb.WriteByte(')')
	}
	return nil
}
