package tgrep

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
)

// ErrEmptyTree is returned by the package-level search functions if they are
// called without a tree.
var ErrEmptyTree = errors.New("cannot search empty tree")

// SyntaxError reports malformed pattern text: unbalanced delimiters, an
// unknown operator, a dangling relation operator, or an empty pattern.
// Compilation aborts; no partial pattern is ever returned.
type SyntaxError struct {
	Pattern string // the complete pattern string
	Pos     int    // byte offset of the offending input
	Token   string // offending substring, if any
	Msg     string
}

func (e *SyntaxError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("syntax error in pattern at offset %d near %q: %s", e.Pos, e.Token, e.Msg)
	}
	return fmt.Sprintf("syntax error in pattern at offset %d: %s", e.Pos, e.Msg)
}

// UnsupportedError reports a syntactically recognizable TGrep2 construct
// which this implementation intentionally does not support: macros,
// segmented pattern lists, node links ('=', '~'), link modifiers and the
// legacy '%'-prefixed operator aliases.
type UnsupportedError struct {
	Pattern   string
	Pos       int
	Construct string // e.g. "macro", "segmented pattern"
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported tgrep syntax at offset %d: %s", e.Pos, e.Construct)
}
