package parsetree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
	"unicode"
)

// ErrEmptyInput is returned by Parse for input without any tree.
var ErrEmptyInput = fmt.Errorf("no tree in input")

// Parse reads a tree from bracketed (treebank) notation, e.g.
//
//    (S (NP (DT the) (NN dog)) (VP barks))
//
// Tokens without enclosing brackets become terminal nodes. Parse returns an
// error for unbalanced brackets or trailing input.
func Parse(input string) (*Node, error) {
	p := &bracketParser{input: input}
	p.skipSpace()
	if p.atEnd() {
		return nil, ErrEmptyInput
	}
	node, err := p.parseNode()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.atEnd() {
		return nil, fmt.Errorf("trailing input after tree at offset %d", p.pos)
	}
	tracer().Debugf("parsed tree %v", node)
	return node, nil
}

type bracketParser struct {
	input string
	pos   int
}

func (p *bracketParser) atEnd() bool {
	return p.pos >= len(p.input)
}

func (p *bracketParser) skipSpace() {
	for !p.atEnd() && unicode.IsSpace(rune(p.input[p.pos])) {
		p.pos++
	}
}

func (p *bracketParser) token() string {
	start := p.pos
	for !p.atEnd() {
		c := p.input[p.pos]
		if c == '(' || c == ')' || unicode.IsSpace(rune(c)) {
			break
		}
		p.pos++
	}
	return p.input[start:p.pos]
}

func (p *bracketParser) parseNode() (*Node, error) {
	p.skipSpace()
	if p.atEnd() {
		return nil, fmt.Errorf("unexpected end of input at offset %d", p.pos)
	}
	if p.input[p.pos] != '(' {
		tok := p.token()
		if tok == "" {
			return nil, fmt.Errorf("unexpected character %q at offset %d", p.input[p.pos], p.pos)
		}
		return NewTerminal(tok), nil
	}
	p.pos++ // consume '('
	p.skipSpace()
	label := p.token()
	if label == "" {
		return nil, fmt.Errorf("missing node label at offset %d", p.pos)
	}
	node := NewNode(label)
	for {
		p.skipSpace()
		if p.atEnd() {
			return nil, fmt.Errorf("unbalanced brackets: missing ')' at offset %d", p.pos)
		}
		if p.input[p.pos] == ')' {
			p.pos++
			return node, nil
		}
		child, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		node.AddChild(child)
	}
}

// String returns the subtree in bracketed notation. Terminals print as their
// bare token.
func (node *Node) String() string {
	if node == nil {
		return ""
	}
	if node.terminal {
		return node.label
	}
	var b strings.Builder
	node.bracketed(&b)
	return b.String()
}

func (node *Node) bracketed(b *strings.Builder) {
	if node.terminal {
		b.WriteString(node.label)
		return
	}
	b.WriteByte('(')
	b.WriteString(node.label)
	for _, ch := range node.Children() {
		if ch == nil {
			continue
		}
		b.WriteByte(' ')
		ch.bracketed(b)
	}
	b.WriteByte(')')
}
