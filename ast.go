package tgrep

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"regexp"
)

/*
Pattern expressions form a closed union of node kinds. The compiler switches
structurally over the kind, so adding a case here means touching the switch
in compile.go, too.
*/

// expr is a node of the pattern syntax tree. It is purely declarative;
// no matching happens before compile.
type expr interface {
	patternExpr()
}

// labelTest matches a node by its label: a literal, a regular expression,
// or the universal wildcard.
type labelTest struct {
	wildcard bool
	literal  string
	re       *regexp.Regexp
	icase    bool
}

// positionTest matches the node at exactly one tree address.
type positionTest struct {
	address []int
}

// negation inverts its operand.
type negation struct {
	inner expr
}

// conjunction matches iff every operand matches. Operands may be node
// tests or relation links; all are evaluated against the same subject node.
type conjunction struct {
	operands []expr
}

// disjunction matches iff at least one operand matches.
type disjunction struct {
	operands []expr
}

// relationLink qualifies a subject node: at least one candidate reachable
// via the operator's generator must satisfy the right-hand pattern.
// Negated links (universal semantics) are expressed as negation{relationLink}.
type relationLink struct {
	op    string // operator as written, for diagnostics
	gen   generator
	right expr
}

func (*labelTest) patternExpr()    {}
func (*positionTest) patternExpr() {}
func (*negation) patternExpr()     {}
func (*conjunction) patternExpr()  {}
func (*disjunction) patternExpr()  {}
func (*relationLink) patternExpr() {}
