package tgrep

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func kindsOf(toks []token) []tokenKind {
	kinds := make([]tokenKind, len(toks))
	for i, t := range toks {
		kinds[i] = t.kind
	}
	return kinds
}

func TestLexerOperators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tgrep.query")
	defer teardown()
	//
	toks, err := tokenize("S < NP <<, DT $.. VP <-2 X")
	if err != nil {
		t.Fatalf("expected pattern to tokenize, got error: %v", err)
	}
	want := []struct {
		kind tokenKind
		text string
	}{
		{tokLabel, "S"}, {tokOp, "<"}, {tokLabel, "NP"},
		{tokOp, "<<,"}, {tokLabel, "DT"},
		{tokOp, "$.."}, {tokLabel, "VP"},
		{tokOp, "<-2"}, {tokLabel, "X"},
		{tokEOF, ""},
	}
	if len(toks) != len(want) {
		t.Logf("tokens = %v", kindsOf(toks))
		t.Fatalf("expected %d tokens, got %d", len(want), len(toks))
	}
	for i, w := range want {
		if toks[i].kind != w.kind || toks[i].text != w.text {
			t.Errorf("token #%d: expected (%d %q), got (%d %q)", i, w.kind, w.text, toks[i].kind, toks[i].text)
		}
	}
}

func TestLexerQuotedLiteral(t *testing.T) {
	toks, err := tokenize(`"a \"quoted\" label"`)
	if err != nil {
		t.Fatalf("expected quoted literal to tokenize, got error: %v", err)
	}
	if toks[0].kind != tokString {
		t.Fatalf("expected a string token, got kind %d", toks[0].kind)
	}
	if toks[0].val != `a "quoted" label` {
		t.Errorf("expected escapes to be resolved, got %q", toks[0].val)
	}
}

func TestLexerRegexLiteral(t *testing.T) {
	toks, err := tokenize(`/^(NP|PP)\/x$/`)
	if err != nil {
		t.Fatalf("expected regex literal to tokenize, got error: %v", err)
	}
	if toks[0].kind != tokRegex {
		t.Fatalf("expected a regex token, got kind %d", toks[0].kind)
	}
	if toks[0].val != `^(NP|PP)/x$` {
		t.Errorf("expected \\/ to be unescaped, got %q", toks[0].val)
	}
}

func TestLexerCaseInsensitivePrefix(t *testing.T) {
	toks, err := tokenize(`i@np i@"VP" i@/dt/`)
	if err != nil {
		t.Fatalf("expected i@ literals to tokenize, got error: %v", err)
	}
	if !toks[0].icase || toks[0].kind != tokLabel || toks[0].val != "np" {
		t.Errorf("expected case-insensitive label 'np', got %+v", toks[0])
	}
	if !toks[1].icase || toks[1].kind != tokString || toks[1].val != "VP" {
		t.Errorf("expected case-insensitive string 'VP', got %+v", toks[1])
	}
	if !toks[2].icase || toks[2].kind != tokRegex || toks[2].val != "dt" {
		t.Errorf("expected case-insensitive regex 'dt', got %+v", toks[2])
	}
}

func TestLexerTreePositionLiteral(t *testing.T) {
	for _, c := range []struct {
		input string
		want  []int
	}{
		{"N()", []int{}},
		{"N(0)", []int{0}},
		{"N(0,)", []int{0}},
		{"N(0, 1, 12)", []int{0, 1, 12}},
	} {
		toks, err := tokenize(c.input)
		if err != nil {
			t.Errorf("expected %q to tokenize, got error: %v", c.input, err)
			continue
		}
		if toks[0].kind != tokTreePos {
			t.Errorf("%q: expected a tree-position token, got kind %d", c.input, toks[0].kind)
			continue
		}
		if len(toks[0].indices) != len(c.want) {
			t.Errorf("%q: expected indices %v, got %v", c.input, c.want, toks[0].indices)
			continue
		}
		for i := range c.want {
			if toks[0].indices[i] != c.want[i] {
				t.Errorf("%q: expected indices %v, got %v", c.input, c.want, toks[0].indices)
			}
		}
	}
}

func TestLexerWildcardAndUnderscore(t *testing.T) {
	toks, err := tokenize("* __ N")
	if err != nil {
		t.Fatalf("expected pattern to tokenize, got error: %v", err)
	}
	if toks[0].val != "*" || toks[1].val != "__" || toks[2].val != "N" {
		t.Errorf("unexpected label tokens: %q %q %q", toks[0].val, toks[1].val, toks[2].val)
	}
}

func TestLexerErrors(t *testing.T) {
	for _, input := range []string{
		`"unterminated`,
		`/unterminated`,
		`N(0`,
		`N(x)`,
		`^`,
	} {
		_, err := tokenize(input)
		if err == nil {
			t.Errorf("expected %q to fail tokenizing, didn't", input)
			continue
		}
		var serr *SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("expected a *SyntaxError for %q, got %T", input, err)
		}
	}
}

func TestLexerPunctuation(t *testing.T) {
	toks, err := tokenize("! & | ( ) [ ] ' ; : = ~ ? @m")
	if err != nil {
		t.Fatalf("expected punctuation to tokenize, got error: %v", err)
	}
	want := []tokenKind{
		tokBang, tokAnd, tokOr, tokLParen, tokRParen, tokLBracket, tokRBracket,
		tokApostrophe, tokSemicolon, tokColon, tokLink, tokLink, tokQuestion,
		tokMacro, tokEOF,
	}
	got := kindsOf(toks)
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token #%d: expected kind %d, got %d", i, want[i], got[i])
		}
	}
}
