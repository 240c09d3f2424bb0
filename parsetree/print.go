package parsetree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	tp "github.com/xlab/treeprint"
)

// Sprint renders a tree as an indented branch diagram, suitable for
// diagnostic output.
func Sprint(node *Node) string {
	p := tp.New()
	ppt(p, node)
	return p.String()
}

func ppt(p tp.Tree, node *Node) {
	if node == nil {
		return
	}
	if node.IsLeaf() {
		p.AddNode(node.Label())
		return
	}
	branch := p.AddBranch(node.Label())
	for _, ch := range node.Children() {
		ppt(branch, ch)
	}
}
