package tgrep

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"regexp"
	"strings"
)

/*
Recursive-descent parser over the token stream, implementing the precedence
ladder of the query grammar:

   expression  :=  conjunction ( '|' conjunction )*
   conjunction :=  term ( '&'? (term | constraint) )*
   term        :=  '!'? atom
   constraint  :=  '!'? ( OP argument  |  '[' group ']' )
   group       :=  constraints ( '|' constraints )*
   argument    :=  '!'? atom
   atom        :=  label | "…" | /…/ | '*' | N(…) | '(' expression ')'

Negation binds tightest; relation constraints chain left-associatively onto
their anchor; '|' is lowest. A conjunction always starts with an anchoring
node test, never with a bare relation operator.
*/

type parser struct {
	pattern string
	toks    []token
	i       int
}

func parsePattern(pattern string) (expr, error) {
	toks, err := tokenize(pattern)
	if err != nil {
		return nil, err
	}
	p := &parser{pattern: pattern, toks: toks}
	if p.peek().kind == tokEOF {
		return nil, &SyntaxError{Pattern: pattern, Pos: 0, Msg: "empty pattern"}
	}
	e, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	switch t := p.peek(); t.kind {
	case tokEOF:
		return e, nil
	case tokSemicolon:
		return nil, p.unsupported(t, "segmented pattern list")
	case tokColon:
		return nil, p.unsupported(t, "pattern segmentation")
	case tokLink:
		return nil, p.unsupported(t, "node link ("+t.text+")")
	case tokQuestion:
		return nil, p.unsupported(t, "optional-link modifier")
	case tokMacro:
		return nil, p.unsupported(t, "macro")
	default:
		return nil, p.syntaxErr(t, "unexpected token")
	}
}

func (p *parser) peek() token {
	return p.toks[p.i]
}

func (p *parser) peekAt(ahead int) token {
	if p.i+ahead >= len(p.toks) {
		return p.toks[len(p.toks)-1] // EOF sentinel
	}
	return p.toks[p.i+ahead]
}

func (p *parser) next() token {
	t := p.toks[p.i]
	if t.kind != tokEOF {
		p.i++
	}
	return t
}

func (p *parser) syntaxErr(t token, msg string) error {
	return &SyntaxError{Pattern: p.pattern, Pos: t.pos, Token: t.text, Msg: msg}
}

func (p *parser) unsupported(t token, construct string) error {
	return &UnsupportedError{Pattern: p.pattern, Pos: t.pos, Construct: construct}
}

// --- Grammar ---------------------------------------------------------------

func (p *parser) parseExpression() (expr, error) {
	first, err := p.parseConjunction()
	if err != nil {
		return nil, err
	}
	operands := []expr{first}
	for p.peek().kind == tokOr {
		p.next()
		operand, err := p.parseConjunction()
		if err != nil {
			return nil, err
		}
		operands = append(operands, operand)
	}
	if len(operands) == 1 {
		return first, nil
	}
	return &disjunction{operands: operands}, nil
}

func (p *parser) parseConjunction() (expr, error) {
	anchor, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	operands := []expr{anchor}
	for {
		t := p.peek()
		amp := false
		if t.kind == tokAnd {
			p.next()
			amp = true
			t = p.peek()
		}
		switch {
		case p.startsConstraint(t):
			c, err := p.parseConstraint()
			if err != nil {
				return nil, err
			}
			operands = append(operands, c)
		case p.startsTerm(t):
			term, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			operands = append(operands, term)
		default:
			if amp {
				return nil, p.syntaxErr(t, "dangling '&'")
			}
			if len(operands) == 1 {
				return anchor, nil
			}
			return &conjunction{operands: operands}, nil
		}
	}
}

func (p *parser) startsConstraint(t token) bool {
	if t.kind == tokOp || t.kind == tokLBracket {
		return true
	}
	if t.kind == tokBang {
		nxt := p.peekAt(1)
		return nxt.kind == tokOp || nxt.kind == tokLBracket
	}
	return false
}

func (p *parser) startsTerm(t token) bool {
	switch t.kind {
	case tokLabel, tokString, tokRegex, tokTreePos, tokLParen, tokApostrophe:
		return true
	case tokBang:
		return p.startsTerm(p.peekAt(1))
	}
	return false
}

// parseTerm parses an optionally negated node test.
func (p *parser) parseTerm() (expr, error) {
	if p.peek().kind == tokBang {
		p.next()
		inner, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		return &negation{inner: inner}, nil
	}
	return p.parseAtom()
}

// parseConstraint parses one relation constraint: an operator with its
// right-hand node test, or a bracketed group of constraints. A leading '!'
// turns the existential search into a universal one.
func (p *parser) parseConstraint() (expr, error) {
	if p.peek().kind == tokBang {
		p.next()
		inner, err := p.parseConstraint()
		if err != nil {
			return nil, err
		}
		return &negation{inner: inner}, nil
	}
	t := p.next()
	switch t.kind {
	case tokLBracket:
		group, err := p.parseGroup()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokRBracket {
			return nil, p.syntaxErr(closing, "unbalanced brackets: expected ']'")
		}
		return group, nil
	case tokOp:
		if strings.HasPrefix(t.text, "%") {
			return nil, p.unsupported(t, "legacy operator alias ("+t.text+")")
		}
		gen, ok := generatorFor(t.text)
		if !ok {
			return nil, p.syntaxErr(t, "cannot interpret relation operator")
		}
		if p.peek().kind == tokEOF {
			return nil, p.syntaxErr(t, "relation operator has no right-hand pattern")
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		return &relationLink{op: t.text, gen: gen, right: right}, nil
	}
	return nil, p.syntaxErr(t, "expected relation operator")
}

// parseGroup parses the inside of a bracketed relation group: constraints
// combined with '&' (or adjacency) and '|'.
func (p *parser) parseGroup() (expr, error) {
	first, err := p.parseGroupConjunction()
	if err != nil {
		return nil, err
	}
	operands := []expr{first}
	for p.peek().kind == tokOr {
		p.next()
		operand, err := p.parseGroupConjunction()
		if err != nil {
			return nil, err
		}
		operands = append(operands, operand)
	}
	if len(operands) == 1 {
		return first, nil
	}
	return &disjunction{operands: operands}, nil
}

func (p *parser) parseGroupConjunction() (expr, error) {
	first, err := p.parseConstraint()
	if err != nil {
		return nil, err
	}
	operands := []expr{first}
	for {
		t := p.peek()
		amp := false
		if t.kind == tokAnd {
			p.next()
			amp = true
			t = p.peek()
		}
		if !p.startsConstraint(t) {
			if amp {
				return nil, p.syntaxErr(t, "dangling '&'")
			}
			break
		}
		c, err := p.parseConstraint()
		if err != nil {
			return nil, err
		}
		operands = append(operands, c)
	}
	if len(operands) == 1 {
		return first, nil
	}
	return &conjunction{operands: operands}, nil
}

// parseAtom parses a single node test.
func (p *parser) parseAtom() (expr, error) {
	t := p.next()
	switch t.kind {
	case tokApostrophe:
		// tgrep2 print marker, accepted and ignored
		return p.parseAtom()
	case tokLabel:
		if t.val == "*" || t.val == "__" {
			return &labelTest{wildcard: true}, nil
		}
		return &labelTest{literal: t.val, icase: t.icase}, nil
	case tokString:
		return &labelTest{literal: t.val, icase: t.icase}, nil
	case tokRegex:
		body := t.val
		if t.icase {
			body = "(?i)" + body
		}
		re, err := regexp.Compile(body)
		if err != nil {
			return nil, p.syntaxErr(t, "bad regex: "+err.Error())
		}
		return &labelTest{re: re}, nil
	case tokTreePos:
		return &positionTest{address: t.indices}, nil
	case tokLParen:
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return nil, p.syntaxErr(closing, "unbalanced parentheses: expected ')'")
		}
		return e, nil
	case tokMacro:
		return nil, p.unsupported(t, "macro")
	case tokLink:
		return nil, p.unsupported(t, "node link ("+t.text+")")
	case tokQuestion:
		return nil, p.unsupported(t, "optional-link modifier")
	case tokOp:
		return nil, p.syntaxErr(t, "relation operator has no left-hand pattern")
	case tokEOF:
		return nil, p.syntaxErr(t, "unexpected end of pattern")
	}
	return nil, p.syntaxErr(t, "unexpected token")
}
