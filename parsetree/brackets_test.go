package parsetree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseBrackets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tgrep.tree")
	defer teardown()
	//
	root, err := Parse("(S (NP (DT the) (NN dog)) (VP barks))")
	if err != nil {
		t.Fatalf("expected tree to parse, got error: %v", err)
	}
	if root.Label() != "S" || root.ChildCount() != 2 {
		t.Logf("tree =\n%s", Sprint(root))
		t.Errorf("expected root S with 2 children, got %s with %d", root.Label(), root.ChildCount())
	}
	np, _ := root.Child(0)
	dt, _ := np.Child(0)
	word, ok := dt.Child(0)
	if !ok || !word.IsTerminal() || word.Label() != "the" {
		t.Errorf("expected terminal 'the' below DT, got %v", word)
	}
}

func TestParseRoundTrip(t *testing.T) {
	input := "(S (NP (DT the) (JJ big) (NN dog)) (VP bit) (NP (DT a) (NN cat)))"
	root, err := Parse(input)
	if err != nil {
		t.Fatalf("expected tree to parse, got error: %v", err)
	}
	if root.String() != input {
		t.Logf("got  %s", root.String())
		t.Logf("want %s", input)
		t.Error("expected bracketed round-trip to be the identity, isn't")
	}
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"   ",
		"(S (NP)",
		"(S)) extra",
		"()",
		"(S (NP (DT the))) (S trailing)",
	} {
		if _, err := Parse(input); err == nil {
			t.Errorf("expected %q to fail parsing, didn't", input)
		}
	}
}

func TestParseBareToken(t *testing.T) {
	n, err := Parse("dog")
	if err != nil {
		t.Fatalf("expected bare token to parse, got error: %v", err)
	}
	if !n.IsTerminal() || n.Label() != "dog" {
		t.Errorf("expected terminal 'dog', got %v", n)
	}
}

func TestSprint(t *testing.T) {
	root, _ := Parse("(S (NP (DT the)))")
	out := Sprint(root)
	if out == "" {
		t.Error("expected non-empty tree rendering")
	}
	t.Logf("tree =\n%s", out)
}
