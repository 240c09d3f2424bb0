package tgrep

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strconv"
	"strings"
)

// --- Tokens ----------------------------------------------------------------

type tokenKind int8

const (
	tokEOF tokenKind = iota
	tokLabel            // bare node literal, including '*' and '__'
	tokString           // "quoted" node literal, unescaped
	tokRegex            // /regex/ node literal
	tokOp               // relation operator run, e.g. <  <<,  $..  <-2
	tokBang             // !
	tokAnd              // &
	tokOr               // |
	tokLParen           // (
	tokRParen           // )
	tokLBracket         // [
	tokRBracket         // ]
	tokTreePos          // N(i0,i1,…) tree address literal
	tokApostrophe       // ' (tgrep2 print marker)
	tokMacro            // @name — recognized, unsupported
	tokSemicolon        // ;    — pattern list separator, unsupported
	tokColon            // :    — segmentation, unsupported
	tokLink             // = or ~ — node links, unsupported
	tokQuestion         // ?    — link modifier, unsupported
)

type token struct {
	kind    tokenKind
	text    string // raw pattern text of the token
	val     string // payload: label text, unescaped string, regex body
	icase   bool   // token carried an i@ case-insensitivity prefix
	indices []int  // tree address for tokTreePos
	pos     int    // byte offset within the pattern
}

// --- Lexer -----------------------------------------------------------------

// lexer scans a pattern string into tokens. It is modeled as a struct over
// the input with a single reading position; each token family has its own
// scanning method.
type lexer struct {
	input string
	pos   int
	toks  []token
}

func tokenize(input string) ([]token, error) {
	l := &lexer{input: input}
	for l.pos < len(l.input) {
		start := l.pos
		c := l.input[l.pos]
		switch {
		case isPatternSpace(c):
			l.pos++
		case c == '!':
			l.emit(tokBang, start, l.single())
		case c == '&':
			l.emit(tokAnd, start, l.single())
		case c == '|':
			l.emit(tokOr, start, l.single())
		case c == '(':
			l.emit(tokLParen, start, l.single())
		case c == ')':
			l.emit(tokRParen, start, l.single())
		case c == '[':
			l.emit(tokLBracket, start, l.single())
		case c == ']':
			l.emit(tokRBracket, start, l.single())
		case c == ';':
			l.emit(tokSemicolon, start, l.single())
		case c == ':':
			l.emit(tokColon, start, l.single())
		case c == '=' || c == '~':
			l.emit(tokLink, start, l.single())
		case c == '?':
			l.emit(tokQuestion, start, l.single())
		case c == '\'':
			l.emit(tokApostrophe, start, l.single())
		case c == '@':
			l.lexMacro(start)
		case c == '"':
			if err := l.lexString(start, false); err != nil {
				return nil, err
			}
		case c == '/':
			if err := l.lexRegex(start, false); err != nil {
				return nil, err
			}
		case isOpStart(c):
			l.lexOp(start)
		case c == 'N' && l.pos+1 < len(l.input) && l.input[l.pos+1] == '(':
			if err := l.lexTreePos(start); err != nil {
				return nil, err
			}
		case c == 'i' && l.pos+1 < len(l.input) && l.input[l.pos+1] == '@':
			if err := l.lexICase(start); err != nil {
				return nil, err
			}
		case isLabelChar(c):
			l.lexLabel(start, false)
		default:
			return nil, &SyntaxError{
				Pattern: l.input, Pos: start, Token: string(c),
				Msg: "unexpected character",
			}
		}
	}
	l.toks = append(l.toks, token{kind: tokEOF, pos: len(l.input)})
	return l.toks, nil
}

func (l *lexer) single() string {
	s := l.input[l.pos : l.pos+1]
	l.pos++
	return s
}

func (l *lexer) emit(kind tokenKind, start int, text string) {
	l.toks = append(l.toks, token{kind: kind, text: text, val: text, pos: start})
}

// lexOp scans a relation operator run. The first character determines that
// this is an operator; continuation characters cover the multi-character
// operators and the numeric child-index forms.
func (l *lexer) lexOp(start int) {
	l.pos++
	for l.pos < len(l.input) && isOpCont(l.input[l.pos]) {
		l.pos++
	}
	l.emit(tokOp, start, l.input[start:l.pos])
}

// lexLabel scans a bare node literal.
func (l *lexer) lexLabel(start int, icase bool) {
	lstart := l.pos
	for l.pos < len(l.input) && isLabelChar(l.input[l.pos]) {
		l.pos++
	}
	l.toks = append(l.toks, token{
		kind: tokLabel, text: l.input[start:l.pos], val: l.input[lstart:l.pos],
		icase: icase, pos: start,
	})
}

// lexString scans a "quoted" literal with \" and \\ escapes.
func (l *lexer) lexString(start int, icase bool) error {
	l.pos++ // consume opening quote
	var b strings.Builder
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		switch {
		case c == '"':
			l.pos++
			l.toks = append(l.toks, token{
				kind: tokString, text: l.input[start:l.pos], val: b.String(),
				icase: icase, pos: start,
			})
			return nil
		case c == '\\' && l.pos+1 < len(l.input):
			next := l.input[l.pos+1]
			if next == '"' || next == '\\' {
				b.WriteByte(next)
			} else {
				b.WriteByte(c)
				b.WriteByte(next)
			}
			l.pos += 2
		default:
			b.WriteByte(c)
			l.pos++
		}
	}
	return &SyntaxError{Pattern: l.input, Pos: start, Token: l.input[start:], Msg: "unterminated quoted literal"}
}

// lexRegex scans a /…/ literal. Only the \/ escape is resolved; everything
// else is kept verbatim for the regexp engine.
func (l *lexer) lexRegex(start int, icase bool) error {
	l.pos++ // consume opening slash
	var b strings.Builder
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		switch {
		case c == '/':
			l.pos++
			l.toks = append(l.toks, token{
				kind: tokRegex, text: l.input[start:l.pos], val: b.String(),
				icase: icase, pos: start,
			})
			return nil
		case c == '\\' && l.pos+1 < len(l.input):
			next := l.input[l.pos+1]
			if next == '/' {
				b.WriteByte('/')
			} else {
				b.WriteByte(c)
				b.WriteByte(next)
			}
			l.pos += 2
		default:
			b.WriteByte(c)
			l.pos++
		}
	}
	return &SyntaxError{Pattern: l.input, Pos: start, Token: l.input[start:], Msg: "unterminated regex literal"}
}

// lexICase scans the i@ prefix and the literal following it.
func (l *lexer) lexICase(start int) error {
	l.pos += 2 // consume "i@"
	if l.pos >= len(l.input) {
		return &SyntaxError{Pattern: l.input, Pos: start, Token: "i@", Msg: "incomplete i@ literal"}
	}
	switch c := l.input[l.pos]; {
	case c == '"':
		return l.lexString(start, true)
	case c == '/':
		return l.lexRegex(start, true)
	case isLabelChar(c):
		l.lexLabel(start, true)
		return nil
	}
	return &SyntaxError{Pattern: l.input, Pos: start, Token: "i@", Msg: "i@ must be followed by a node literal"}
}

// lexMacro scans an @name macro reference (or the bare @ of a macro
// definition). Macros are not supported; the parser flags them.
func (l *lexer) lexMacro(start int) {
	l.pos++ // consume '@'
	for l.pos < len(l.input) && isLabelChar(l.input[l.pos]) {
		l.pos++
	}
	l.emit(tokMacro, start, l.input[start:l.pos])
}

// lexTreePos scans a tree address literal N(i0,i1,…). N() denotes the root.
func (l *lexer) lexTreePos(start int) error {
	l.pos += 2 // consume "N("
	indices := []int{}
	for {
		for l.pos < len(l.input) && isPatternSpace(l.input[l.pos]) {
			l.pos++
		}
		if l.pos >= len(l.input) {
			return &SyntaxError{Pattern: l.input, Pos: start, Token: l.input[start:], Msg: "unterminated tree-position literal"}
		}
		switch c := l.input[l.pos]; {
		case c == ')':
			l.pos++
			l.toks = append(l.toks, token{
				kind: tokTreePos, text: l.input[start:l.pos], indices: indices, pos: start,
			})
			return nil
		case c == ',':
			l.pos++
		case c >= '0' && c <= '9':
			dstart := l.pos
			for l.pos < len(l.input) && l.input[l.pos] >= '0' && l.input[l.pos] <= '9' {
				l.pos++
			}
			n, err := strconv.Atoi(l.input[dstart:l.pos])
			if err != nil {
				return &SyntaxError{Pattern: l.input, Pos: dstart, Token: l.input[dstart:l.pos], Msg: "malformed child index"}
			}
			indices = append(indices, n)
		default:
			return &SyntaxError{Pattern: l.input, Pos: l.pos, Token: string(c), Msg: "malformed tree-position literal"}
		}
	}
}

// --- Character classes -----------------------------------------------------

func isPatternSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// isOpStart covers the first character of a relation operator. '%' starts
// the legacy tgrep1 aliases, which lex fine but get rejected by the parser.
func isOpStart(c byte) bool {
	switch c {
	case '<', '>', '.', ',', '$', '%':
		return true
	}
	return false
}

func isOpCont(c byte) bool {
	switch c {
	case '<', '>', '.', ',', '-', ':', '\'':
		return true
	}
	return c >= '0' && c <= '9'
}

// isLabelChar admits everything a bare node literal may consist of. The
// excluded characters are the pattern metacharacters.
func isLabelChar(c byte) bool {
	if c <= ' ' {
		return false
	}
	switch c {
	case '[', ']', ';', ':', '.', ',', '&', '|', '<', '>', '(', ')',
		'$', '!', '@', '%', '\'', '^', '=', '"', '/', '?', '~':
		return false
	}
	return true
}
