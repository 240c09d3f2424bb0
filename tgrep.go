package tgrep

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/tgrep/parsetree"
)

// Pattern is a compiled tgrep pattern. Compilation happens once per pattern
// string; the resulting Pattern is immutable and may be applied to any
// number of trees, concurrently if need be.
type Pattern struct {
	src   string
	root  expr
	match matcher
}

// Compile parses a pattern string and compiles it into a Pattern.
// Malformed patterns return a *SyntaxError; recognizable but unimplemented
// TGrep2 constructs return an *UnsupportedError. No partial pattern is
// ever returned.
func Compile(pattern string) (*Pattern, error) {
	ast, err := parsePattern(pattern)
	if err != nil {
		tracer().Debugf("pattern %q does not compile: %v", pattern, err)
		return nil, err
	}
	return &Pattern{src: pattern, root: ast, match: compileExpr(ast)}, nil
}

// String returns the pattern source text.
func (p *Pattern) String() string {
	return p.src
}

// Match reports whether a single node satisfies the pattern.
func (p *Pattern) Match(n *parsetree.Node) bool {
	if n == nil {
		return false
	}
	return p.match(n)
}

// Nodes walks the tree rooted at root in preorder and returns every node
// satisfying the pattern, in traversal order. The tree is not modified;
// searching twice yields identical results.
func (p *Pattern) Nodes(root *parsetree.Node) []*parsetree.Node {
	if root == nil {
		return nil
	}
	var selection []*parsetree.Node
	root.Preorder(func(n *parsetree.Node) bool {
		if p.match(n) {
			selection = append(selection, n)
		}
		return false
	})
	return selection
}

// Positions walks like Nodes but projects the matches onto their tree
// addresses. Addresses are tracked by the traversal itself, so terminal
// nodes (which cannot report their own position) are addressable here, too.
func (p *Pattern) Positions(root *parsetree.Node) [][]int {
	if root == nil {
		return nil
	}
	var selection [][]int
	root.PreorderPositioned(func(n *parsetree.Node, pos []int) bool {
		if p.match(n) {
			address := make([]int, len(pos))
			copy(address, pos)
			selection = append(selection, address)
		}
		return false
	})
	return selection
}

// Nodes parses, compiles and searches in one go, returning the matching
// nodes of the tree in preorder. Pattern errors are those of Compile.
func Nodes(root *parsetree.Node, pattern string) ([]*parsetree.Node, error) {
	if root == nil {
		return nil, ErrEmptyTree
	}
	p, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	return p.Nodes(root), nil
}

// Positions parses, compiles and searches in one go, returning the tree
// addresses of the matching nodes in preorder.
func Positions(root *parsetree.Node, pattern string) ([][]int, error) {
	if root == nil {
		return nil, ErrEmptyTree
	}
	p, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	return p.Positions(root), nil
}
