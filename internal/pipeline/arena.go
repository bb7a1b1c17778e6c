package pipeline

import "golang.org/x/net/html"

// rootID is the arena id of the node the arena was built from.
const rootID = 0

// noParent marks the root entry.
const noParent = -1

// arenaNode is one indexed tree node. Children are ordered ids, captured when
// the arena is built, so traversal never follows live sibling pointers.
type arenaNode struct {
	node     *html.Node
	parent   int
	children []int
}

// arena indexes a parsed tree by integer id in document order.
type arena struct {
	nodes []arenaNode
}

// newArena indexes root and all of its descendants.
func newArena(root *html.Node) *arena {
	a := &arena{}
	a.add(root, noParent)
	return a
}

func (a *arena) add(n *html.Node, parent int) int {
	id := len(a.nodes)
	a.nodes = append(a.nodes, arenaNode{node: n, parent: parent})
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		child := a.add(c, id)
		a.nodes[id].children = append(a.nodes[id].children, child)
	}
	return id
}

// walk visits id and its descendants depth-first in document order.
// visit returns false to skip the children of the node it was given.
func (a *arena) walk(id int, visit func(id int, n *html.Node) bool) {
	if !visit(id, a.nodes[id].node) {
		return
	}
	children := a.nodes[id].children
	for _, child := range children {
		a.walk(child, visit)
	}
}

// setText replaces the content of a text node.
func (a *arena) setText(id int, text string) {
	a.nodes[id].node.Data = text
}
