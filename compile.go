package tgrep

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/tgrep/parsetree"
)

// matcher tests a single tree node for pattern membership.
type matcher func(n *parsetree.Node) bool

// compileExpr turns a pattern expression into a matcher by structural
// recursion over the (closed) set of expression kinds. Sub-matchers are
// closed over; no expression state is consulted after compilation.
func compileExpr(e expr) matcher {
	switch x := e.(type) {
	case *labelTest:
		return compileLabelTest(x)
	case *positionTest:
		address := x.address
		return func(n *parsetree.Node) bool {
			pos, ok := n.TreePosition()
			return ok && equalAddr(pos, address)
		}
	case *negation:
		inner := compileExpr(x.inner)
		return func(n *parsetree.Node) bool {
			return !inner(n)
		}
	case *conjunction:
		operands := make([]matcher, len(x.operands))
		for i, op := range x.operands {
			operands[i] = compileExpr(op)
		}
		return func(n *parsetree.Node) bool {
			for _, m := range operands {
				if !m(n) {
					return false
				}
			}
			return true
		}
	case *disjunction:
		operands := make([]matcher, len(x.operands))
		for i, op := range x.operands {
			operands[i] = compileExpr(op)
		}
		return func(n *parsetree.Node) bool {
			for _, m := range operands {
				if m(n) {
					return true
				}
			}
			return false
		}
	case *relationLink:
		// existential search: the generator stops producing candidates as
		// soon as one satisfies the right-hand pattern
		right := compileExpr(x.right)
		gen := x.gen
		return func(n *parsetree.Node) bool {
			return gen(n, func(candidate *parsetree.Node) bool {
				return right(candidate)
			})
		}
	}
	panic("unknown pattern expression kind")
}

func compileLabelTest(lt *labelTest) matcher {
	switch {
	case lt.wildcard:
		return func(*parsetree.Node) bool { return true }
	case lt.re != nil:
		re := lt.re
		return func(n *parsetree.Node) bool {
			return re.MatchString(n.Label())
		}
	case lt.icase:
		literal := lt.literal
		return func(n *parsetree.Node) bool {
			return strings.EqualFold(n.Label(), literal)
		}
	}
	literal := lt.literal
	return func(n *parsetree.Node) bool {
		return n.Label() == literal
	}
}

func equalAddr(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
