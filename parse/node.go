package parse

import (
	"fmt"

	"github.com/stc-format/go-stc/token"
)

// node is the intermediate tree built from assignments, private to one
// Parse call.  A node is either a container (kids non-nil) or a leaf
// literal; the root is always a container.
type node struct {
	kids map[string]*node
	leaf *token.Literal
	line int
}

func newContainer() *node {
	return &node{kids: map[string]*node{}}
}

func (n *node) isContainer() bool {
	return n.kids != nil
}

// fillIn inserts a leaf literal at path, creating intermediate containers
// on demand and rejecting structural conflicts immediately: a shorter
// path already holding a leaf cannot be extended, and a slot can be
// assigned only once.
func fillIn(root *node, path token.KeyPath, lit *token.Literal, line int) error {
	cur := root
	for i := 0; i < len(path)-1; i++ {
		if !cur.isContainer() {
			return prefixConflict(path.Prefix(i), line)
		}
		next, ok := cur.kids[path[i]]
		if !ok {
			next = newContainer()
			cur.kids[path[i]] = next
		}
		cur = next
	}
	if !cur.isContainer() {
		return prefixConflict(path.Prefix(len(path)-1), line)
	}
	last := path[len(path)-1]
	if prev, ok := cur.kids[last]; ok {
		if prev.isContainer() {
			return token.AtLine(line, fmt.Errorf(
				"%w: key `%s` is set both a value directly and at least one list item / dict attribute",
				ErrConflict, path))
		}
		return token.AtLine(line, fmt.Errorf(
			"%w: key `%s` is set at least two values %s | %s",
			ErrConflict, path, prev.leaf.Describe(), lit.Describe()))
	}
	cur.kids[last] = &node{leaf: lit, line: line}
	return nil
}

func prefixConflict(prefix string, line int) error {
	return token.AtLine(line, fmt.Errorf(
		"%w: key `%s` is set both a value and at least one list item / dict attribute",
		ErrConflict, prefix))
}
