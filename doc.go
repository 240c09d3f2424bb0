/*
Package tgrep implements a TGrep2-style query language for selecting nodes
of linguistic parse trees (see package parsetree).

Overview

A pattern string is compiled once into a Pattern and may then be applied to
any number of trees:

   pat, err := tgrep.Compile("NP < NN")
   …
   nodes := pat.Nodes(root)        // matching nodes, in preorder
   addrs := pat.Positions(root)    // their tree addresses

A pattern consists of a node test (a label, a "quoted literal", a /regex/,
the wildcard '*', or a tree address N(0,1)), qualified by relation
constraints against other node tests:

   <  >      immediate child / parent
   <N >N     N-th child (negative N counts from the last child)
   <, <- <:  first, last, only child (and >, >- >: upward)
   << >>     dominance (descendant / ancestor), any depth
   <<, <<'   leftmost / rightmost descendant, <<: single-path descent
   .  ,      immediate precedence in terminal order (and .. ,, anywhere)
   $ $. $,   sibling, immediate right / left sibling ($.. $,, anywhere)

Constraints chain conjunctively onto their left node test, so "S < NP < VP"
selects S nodes having both an NP child and a VP child; the nested reading
requires parentheses, "S < (NP < VP)". A '!' before a node test or a
relation operator negates it, '&' conjoins, '|' (lowest precedence)
disjoins, and square brackets group relation constraints, as in
"NP [< DT | < JJ]".

TGrep2 macros, segmented patterns and node links ('=', '~') are recognized
and rejected with an *UnsupportedError, to keep them apart from plain typos.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tgrep

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tgrep.query'.
func tracer() tracing.Trace {
	return tracing.Select("tgrep.query")
}
