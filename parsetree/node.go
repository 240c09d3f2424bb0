package parsetree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sync"
)

/*
We manage a tree of mutable nodes. Each node carries a string label and
maintains a slice of children. Inner nodes know their parent; terminal nodes
do not (see the package documentation for the rationale).
*/

// Node is the base type our trees are built of.
type Node struct {
	parent   *Node         // parent node of this node, nil for roots and terminals
	children childrenSlice // mutex-protected slice of children nodes
	label    string        // category label for inner nodes, token text for terminals
	terminal bool          // terminal nodes represent words and have no upward link
}

// NewNode creates a new inner tree node with a given label.
func NewNode(label string) *Node {
	return &Node{label: label}
}

// NewTerminal creates a terminal node for a given token.
// Terminal nodes never receive a parent link.
func NewTerminal(token string) *Node {
	return &Node{label: token, terminal: true}
}

// Label returns the category label of an inner node, or the token text of
// a terminal.
func (node *Node) Label() string {
	return node.label
}

// IsTerminal returns true for terminal (word) nodes.
func (node *Node) IsTerminal() bool {
	return node.terminal
}

// IsLeaf returns true if the node has no children. Terminals are always
// leaves; inner nodes may be childless, too.
func (node *Node) IsLeaf() bool {
	return node.ChildCount() == 0
}

// AddChild appends a child node.
// The newly inserted node is connected to this node as its parent, except
// for terminals, which stay without an upward link.
// It returns the parent node to allow for chaining.
//
// This operation is concurrency-safe.
func (node *Node) AddChild(ch *Node) *Node {
	if ch != nil {
		node.children.addChild(ch, node)
	}
	return node
}

// InsertChildAt inserts a new child node at a given position in relation
// to the other children, shifting children at later positions.
// It returns the parent node to allow for chaining.
//
// This operation is concurrency-safe.
func (node *Node) InsertChildAt(i int, ch *Node) *Node {
	if ch != nil {
		node.children.insertChildAt(i, ch, node)
	}
	return node
}

// Parent returns the parent node. It returns nil for the root of a tree and
// for terminal nodes.
func (node *Node) Parent() *Node {
	return node.parent
}

// Isolate removes a node from its parent and returns the isolated node.
func (node *Node) Isolate() *Node {
	if node != nil && node.parent != nil {
		node.parent.children.remove(node)
	}
	return node
}

// ChildCount returns the number of children-nodes for a node
// (concurrency-safe).
func (node *Node) ChildCount() int {
	return node.children.length()
}

// Child is a concurrency-safe way to get a children-node of a node.
func (node *Node) Child(n int) (*Node, bool) {
	if n < 0 || node.children.length() <= n {
		return nil, false
	}
	ch := node.children.child(n)
	return ch, ch != nil
}

// Children returns a slice with all children of a node.
func (node *Node) Children() []*Node {
	return node.children.asSlice()
}

// IndexOfChild returns the index of a child within the list of children
// of its parent, or -1 if ch is not a child of this node.
func (node *Node) IndexOfChild(ch *Node) int {
	if node.ChildCount() > 0 {
		children := node.Children()
		for i, child := range children {
			if ch == child {
				return i
			}
		}
	}
	return -1
}

// Root walks up the parent links as far as possible.
// For terminals, which have no upward link, Root returns the terminal itself.
func (node *Node) Root() *Node {
	r := node
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// TreePosition returns the address of a node: the sequence of zero-based
// child indices leading from the root to this node. The root has the empty
// address. Terminals cannot report an address (no upward link) and return
// ok=false.
func (node *Node) TreePosition() ([]int, bool) {
	if node.terminal {
		return nil, false
	}
	var pos []int
	for n := node; n.parent != nil; n = n.parent {
		i := n.parent.IndexOfChild(n)
		if i < 0 {
			tracer().Errorf("node %v not found among children of its parent", n)
			return nil, false
		}
		pos = append(pos, i)
	}
	// collected bottom-up, reverse in place
	for i, j := 0, len(pos)-1; i < j; i, j = i+1, j-1 {
		pos[i], pos[j] = pos[j], pos[i]
	}
	if pos == nil {
		pos = []int{}
	}
	return pos, true
}

// Preorder visits the subtree rooted at this node in document order: the
// node itself first, then the children's subtrees left to right. Traversal
// stops as soon as visit returns true, and Preorder reports whether it has
// been stopped.
func (node *Node) Preorder(visit func(*Node) bool) bool {
	if visit(node) {
		return true
	}
	chcnt := node.ChildCount()
	for i := 0; i < chcnt; i++ {
		if ch, ok := node.Child(i); ok {
			if ch.Preorder(visit) {
				return true
			}
		}
	}
	return false
}

// PreorderPositioned visits like Preorder, additionally passing each node's
// address relative to this node. The address slice is reused between calls;
// callers wanting to keep it have to copy it.
func (node *Node) PreorderPositioned(visit func(*Node, []int) bool) bool {
	return node.preorderPositioned(make([]int, 0, 8), visit)
}

func (node *Node) preorderPositioned(pos []int, visit func(*Node, []int) bool) bool {
	if visit(node, pos) {
		return true
	}
	chcnt := node.ChildCount()
	for i := 0; i < chcnt; i++ {
		if ch, ok := node.Child(i); ok {
			if ch.preorderPositioned(append(pos, i), visit) {
				return true
			}
		}
	}
	return false
}

// --- Slices of concurrency-safe sets of children ----------------------

type childrenSlice struct {
	sync.RWMutex
	slice []*Node
}

func (chs *childrenSlice) length() int {
	chs.RLock()
	defer chs.RUnlock()
	return len(chs.slice)
}

func (chs *childrenSlice) addChild(child *Node, parent *Node) {
	if child == nil {
		return
	}
	chs.Lock()
	defer chs.Unlock()
	chs.slice = append(chs.slice, child)
	if !child.terminal {
		child.parent = parent
	}
}

func (chs *childrenSlice) insertChildAt(i int, child *Node, parent *Node) {
	if child == nil {
		return
	}
	chs.Lock()
	defer chs.Unlock()
	if len(chs.slice) <= i {
		l := len(chs.slice)
		chs.slice = append(chs.slice, make([]*Node, i-l+1)...)
	} else {
		chs.slice = append(chs.slice, nil)   // make room for one child
		copy(chs.slice[i+1:], chs.slice[i:]) // shift i+1..n
	}
	chs.slice[i] = child
	if !child.terminal {
		child.parent = parent
	}
}

func (chs *childrenSlice) remove(node *Node) {
	chs.Lock()
	defer chs.Unlock()
	for i, ch := range chs.slice {
		if ch == node {
			chs.slice = append(chs.slice[:i], chs.slice[i+1:]...)
			node.parent = nil
			break
		}
	}
}

func (chs *childrenSlice) child(n int) *Node {
	if chs.length() == 0 || n < 0 || n >= chs.length() {
		return nil
	}
	chs.RLock()
	defer chs.RUnlock()
	return chs.slice[n]
}

func (chs *childrenSlice) asSlice() []*Node {
	chs.RLock()
	defer chs.RUnlock()
	children := make([]*Node, len(chs.slice))
	copy(children, chs.slice)
	return children
}
