package tgrep

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strconv"

	"github.com/npillmayer/tgrep/parsetree"
)

// A generator enumerates all nodes standing in a fixed structural relation
// to a subject node. Candidates are handed to yield one at a time, in
// document order where the relation admits more than one candidate.
// Enumeration stops as soon as yield returns true, and the generator
// reports whether it has been stopped. Generators are pure: they never
// mutate the tree and hold no state between calls. A subject without
// candidates (a childless node for '<', the root for '>', a terminal for
// any upward relation) yields nothing rather than failing.
type generator func(n *parsetree.Node, yield func(*parsetree.Node) bool) bool

// relationTable is the fixed registry of relation operators. The numeric
// child-index family (<N >N <-N >-N) is resolved by generatorFor.
var relationTable = map[string]generator{
	"<":   childNodes,
	">":   parentNode,
	"<,":  nthChildNode(1),
	"<1":  nthChildNode(1),
	">,":  parentIfNthChild(1),
	">1":  parentIfNthChild(1),
	"<'":  nthChildNode(-1),
	"<-":  nthChildNode(-1),
	"<-,": nthChildNode(-1),
	">'":  parentIfNthChild(-1),
	">-":  parentIfNthChild(-1),
	">-,": parentIfNthChild(-1),
	"<:":  onlyChildNode,
	">:":  parentIfOnlyChild,
	"<<":  descendantNodes,
	">>":  ancestorNodes,
	"<<,": leftmostDescendantNodes,
	"<<1": leftmostDescendantNodes,
	"<<'": rightmostDescendantNodes,
	">>,": ancestorsViaLeftmost,
	">>'": ancestorsViaRightmost,
	"<<:": unaryPathDescendants,
	">>:": unaryPathAncestors,
	".":   immediatelyFollowingNodes,
	",":   immediatelyPrecedingNodes,
	"..":  followingNodes,
	",,":  precedingNodes,
	"$":   siblingNodes,
	"$.":  rightSiblingNode,
	"$,":  leftSiblingNode,
	"$..": followingSiblingNodes,
	"$,,": precedingSiblingNodes,
}

// generatorFor resolves an operator token to its candidate generator.
// Tokens <N, >N, <-N and >-N carry a 1-based child index, negative counting
// from the last child.
func generatorFor(op string) (generator, bool) {
	if gen, ok := relationTable[op]; ok {
		return gen, true
	}
	if len(op) >= 2 && (op[0] == '<' || op[0] == '>') {
		rest := op[1:]
		neg := false
		if rest[0] == '-' {
			neg = true
			rest = rest[1:]
		}
		if rest != "" && allDigits(rest) {
			n, err := strconv.Atoi(rest)
			if err != nil {
				return nil, false
			}
			if neg {
				n = -n
			}
			if op[0] == '<' {
				return nthChildNode(n), true
			}
			return parentIfNthChild(n), true
		}
	}
	return nil, false
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// --- Downward relations ----------------------------------------------------

// childNodes yields the immediate children of n, left to right.
func childNodes(n *parsetree.Node, yield func(*parsetree.Node) bool) bool {
	chcnt := n.ChildCount()
	for i := 0; i < chcnt; i++ {
		if ch, ok := n.Child(i); ok {
			if yield(ch) {
				return true
			}
		}
	}
	return false
}

// resolveChildIndex maps a 1-based child index (negative counting from the
// last child) to a slice index, or -1 if out of range.
func resolveChildIndex(i, chcnt int) int {
	switch {
	case i > 0 && i <= chcnt:
		return i - 1
	case i < 0 && chcnt+i >= 0:
		return chcnt + i
	}
	return -1
}

// nthChildNode yields the i-th child of n, if it exists.
func nthChildNode(i int) generator {
	return func(n *parsetree.Node, yield func(*parsetree.Node) bool) bool {
		idx := resolveChildIndex(i, n.ChildCount())
		if idx < 0 {
			return false
		}
		if ch, ok := n.Child(idx); ok {
			return yield(ch)
		}
		return false
	}
}

// onlyChildNode yields the single child of n iff n has exactly one.
func onlyChildNode(n *parsetree.Node, yield func(*parsetree.Node) bool) bool {
	if n.ChildCount() != 1 {
		return false
	}
	if ch, ok := n.Child(0); ok {
		return yield(ch)
	}
	return false
}

// descendantNodes yields every proper descendant of n in preorder.
func descendantNodes(n *parsetree.Node, yield func(*parsetree.Node) bool) bool {
	chcnt := n.ChildCount()
	for i := 0; i < chcnt; i++ {
		if ch, ok := n.Child(i); ok {
			if ch.Preorder(yield) {
				return true
			}
		}
	}
	return false
}

// leftmostDescendantNodes yields the nodes along the always-first-child
// path below n.
func leftmostDescendantNodes(n *parsetree.Node, yield func(*parsetree.Node) bool) bool {
	for {
		ch, ok := n.Child(0)
		if !ok {
			return false
		}
		if yield(ch) {
			return true
		}
		n = ch
	}
}

// rightmostDescendantNodes yields the nodes along the always-last-child
// path below n.
func rightmostDescendantNodes(n *parsetree.Node, yield func(*parsetree.Node) bool) bool {
	for {
		ch, ok := n.Child(n.ChildCount() - 1)
		if !ok {
			return false
		}
		if yield(ch) {
			return true
		}
		n = ch
	}
}

// unaryPathDescendants yields descendants reachable while there is only a
// single path of descent.
func unaryPathDescendants(n *parsetree.Node, yield func(*parsetree.Node) bool) bool {
	for n.ChildCount() == 1 {
		ch, ok := n.Child(0)
		if !ok {
			return false
		}
		if yield(ch) {
			return true
		}
		n = ch
	}
	return false
}

// --- Upward relations ------------------------------------------------------

// parentNode yields the parent of n, if n has an upward link.
func parentNode(n *parsetree.Node, yield func(*parsetree.Node) bool) bool {
	if p := n.Parent(); p != nil {
		return yield(p)
	}
	return false
}

// parentIfNthChild yields the parent of n iff n is its i-th child.
func parentIfNthChild(i int) generator {
	return func(n *parsetree.Node, yield func(*parsetree.Node) bool) bool {
		p := n.Parent()
		if p == nil {
			return false
		}
		idx := resolveChildIndex(i, p.ChildCount())
		if idx < 0 {
			return false
		}
		if ch, ok := p.Child(idx); ok && ch == n {
			return yield(p)
		}
		return false
	}
}

// parentIfOnlyChild yields the parent of n iff n is an only child.
func parentIfOnlyChild(n *parsetree.Node, yield func(*parsetree.Node) bool) bool {
	if p := n.Parent(); p != nil && p.ChildCount() == 1 {
		return yield(p)
	}
	return false
}

// ancestorNodes yields the ancestors of n, nearest first.
func ancestorNodes(n *parsetree.Node, yield func(*parsetree.Node) bool) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if yield(p) {
			return true
		}
	}
	return false
}

// ancestorsViaLeftmost yields the ancestors of which n is a leftmost
// descendant, i.e. ancestors reached while climbing through first children.
func ancestorsViaLeftmost(n *parsetree.Node, yield func(*parsetree.Node) bool) bool {
	cur, p := n, n.Parent()
	for p != nil && p.IndexOfChild(cur) == 0 {
		if yield(p) {
			return true
		}
		cur, p = p, p.Parent()
	}
	return false
}

// ancestorsViaRightmost yields the ancestors of which n is a rightmost
// descendant.
func ancestorsViaRightmost(n *parsetree.Node, yield func(*parsetree.Node) bool) bool {
	cur, p := n, n.Parent()
	for p != nil && p.IndexOfChild(cur) == p.ChildCount()-1 {
		if yield(p) {
			return true
		}
		cur, p = p, p.Parent()
	}
	return false
}

// unaryPathAncestors yields ancestors of n which have exactly one child,
// nearest first, stopping at the first branching ancestor.
func unaryPathAncestors(n *parsetree.Node, yield func(*parsetree.Node) bool) bool {
	for p := n.Parent(); p != nil && p.ChildCount() == 1; p = p.Parent() {
		if yield(p) {
			return true
		}
	}
	return false
}

// --- Precedence relations --------------------------------------------------

/*
Two nodes stand in precedence relation iff neither dominates the other and
the terminals of one are completely before the terminals of the other. In
address terms, node q follows node p iff the common-length prefixes of their
addresses compare strictly greater.
*/

func cmpAddrPrefix(p, q []int) int {
	m := len(p)
	if len(q) < m {
		m = len(q)
	}
	for i := 0; i < m; i++ {
		if p[i] != q[i] {
			if p[i] < q[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// followingNodes yields every node of the tree which follows n in terminal
// order, in preorder.
func followingNodes(n *parsetree.Node, yield func(*parsetree.Node) bool) bool {
	pos, ok := n.TreePosition()
	if !ok {
		return false
	}
	return n.Root().PreorderPositioned(func(x *parsetree.Node, q []int) bool {
		if cmpAddrPrefix(pos, q) < 0 {
			return yield(x)
		}
		return false
	})
}

// precedingNodes yields every node of the tree which precedes n in terminal
// order, in preorder.
func precedingNodes(n *parsetree.Node, yield func(*parsetree.Node) bool) bool {
	pos, ok := n.TreePosition()
	if !ok {
		return false
	}
	return n.Root().PreorderPositioned(func(x *parsetree.Node, q []int) bool {
		if cmpAddrPrefix(pos, q) > 0 {
			return yield(x)
		}
		return false
	})
}

// immediatelyFollowingNodes yields the nodes whose first terminal
// immediately follows the last terminal of n: the nearest right neighbour
// found by climbing, plus its leftmost descendants.
func immediatelyFollowingNodes(n *parsetree.Node, yield func(*parsetree.Node) bool) bool {
	cur, p := n, n.Parent()
	for p != nil {
		i := p.IndexOfChild(cur)
		if next, ok := p.Child(i + 1); ok {
			if yield(next) {
				return true
			}
			return leftmostDescendantNodes(next, yield)
		}
		cur, p = p, p.Parent()
	}
	return false
}

// immediatelyPrecedingNodes yields the nodes whose last terminal
// immediately precedes the first terminal of n.
func immediatelyPrecedingNodes(n *parsetree.Node, yield func(*parsetree.Node) bool) bool {
	cur, p := n, n.Parent()
	for p != nil {
		i := p.IndexOfChild(cur)
		if i > 0 {
			prev, ok := p.Child(i - 1)
			if !ok {
				return false
			}
			if yield(prev) {
				return true
			}
			return rightmostDescendantNodes(prev, yield)
		}
		cur, p = p, p.Parent()
	}
	return false
}

// --- Sibling relations -----------------------------------------------------

// siblingNodes yields all siblings of n, left to right.
func siblingNodes(n *parsetree.Node, yield func(*parsetree.Node) bool) bool {
	p := n.Parent()
	if p == nil {
		return false
	}
	chcnt := p.ChildCount()
	for i := 0; i < chcnt; i++ {
		if ch, ok := p.Child(i); ok && ch != n {
			if yield(ch) {
				return true
			}
		}
	}
	return false
}

// rightSiblingNode yields the sibling immediately to the right of n.
func rightSiblingNode(n *parsetree.Node, yield func(*parsetree.Node) bool) bool {
	p := n.Parent()
	if p == nil {
		return false
	}
	if ch, ok := p.Child(p.IndexOfChild(n) + 1); ok {
		return yield(ch)
	}
	return false
}

// leftSiblingNode yields the sibling immediately to the left of n.
func leftSiblingNode(n *parsetree.Node, yield func(*parsetree.Node) bool) bool {
	p := n.Parent()
	if p == nil {
		return false
	}
	i := p.IndexOfChild(n)
	if i <= 0 {
		return false
	}
	if ch, ok := p.Child(i - 1); ok {
		return yield(ch)
	}
	return false
}

// followingSiblingNodes yields all siblings to the right of n.
func followingSiblingNodes(n *parsetree.Node, yield func(*parsetree.Node) bool) bool {
	p := n.Parent()
	if p == nil {
		return false
	}
	chcnt := p.ChildCount()
	for i := p.IndexOfChild(n) + 1; i < chcnt; i++ {
		if ch, ok := p.Child(i); ok {
			if yield(ch) {
				return true
			}
		}
	}
	return false
}

// precedingSiblingNodes yields all siblings to the left of n, left to right.
func precedingSiblingNodes(n *parsetree.Node, yield func(*parsetree.Node) bool) bool {
	p := n.Parent()
	if p == nil {
		return false
	}
	end := p.IndexOfChild(n)
	for i := 0; i < end; i++ {
		if ch, ok := p.Child(i); ok {
			if yield(ch) {
				return true
			}
		}
	}
	return false
}
