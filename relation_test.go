package tgrep

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tgrep/parsetree"
)

// the running example tree of most engine tests
const sentence = "(S (NP (DT the) (JJ big) (NN dog)) (VP bit) (NP (DT a) (NN cat)))"

func mustParseTree(t *testing.T, input string) *parsetree.Node {
	t.Helper()
	root, err := parsetree.Parse(input)
	if err != nil {
		t.Fatalf("cannot parse fixture tree: %v", err)
	}
	return root
}

// findNode returns the i-th node with the given label, in preorder.
func findNode(root *parsetree.Node, label string, i int) *parsetree.Node {
	var hit *parsetree.Node
	root.Preorder(func(n *parsetree.Node) bool {
		if n.Label() == label {
			if i == 0 {
				hit = n
				return true
			}
			i--
		}
		return false
	})
	return hit
}

// collect drains a generator into a label slice.
func collect(gen generator, n *parsetree.Node) []string {
	var labels []string
	gen(n, func(c *parsetree.Node) bool {
		labels = append(labels, c.Label())
		return false
	})
	return labels
}

func expectLabels(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("expected candidates %v, got %v", want, got)
		return
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected candidates %v, got %v", want, got)
			return
		}
	}
}

func TestRelationChildrenAndParent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tgrep.query")
	defer teardown()
	//
	root := mustParseTree(t, sentence)
	np := findNode(root, "NP", 0)
	expectLabels(t, collect(childNodes, np), "DT", "JJ", "NN")
	expectLabels(t, collect(parentNode, np), "S")
	expectLabels(t, collect(parentNode, root)) // root has no parent
}

func TestRelationNthChild(t *testing.T) {
	root := mustParseTree(t, sentence)
	expectLabels(t, collect(nthChildNode(1), root), "NP")
	expectLabels(t, collect(nthChildNode(2), root), "VP")
	expectLabels(t, collect(nthChildNode(-1), root), "NP")
	expectLabels(t, collect(nthChildNode(-3), root), "NP")
	expectLabels(t, collect(nthChildNode(4), root))  // out of range
	expectLabels(t, collect(nthChildNode(-4), root)) // out of range
	expectLabels(t, collect(nthChildNode(0), root))  // no 0th child
}

func TestRelationParentIfNthChild(t *testing.T) {
	root := mustParseTree(t, sentence)
	vp := findNode(root, "VP", 0)
	expectLabels(t, collect(parentIfNthChild(2), vp), "S")
	expectLabels(t, collect(parentIfNthChild(1), vp))
	expectLabels(t, collect(parentIfNthChild(-2), vp), "S")
}

func TestRelationOnlyChild(t *testing.T) {
	root := mustParseTree(t, "(S (A x))")
	a := findNode(root, "A", 0)
	expectLabels(t, collect(onlyChildNode, root), "A")
	expectLabels(t, collect(parentIfOnlyChild, a), "S")
	expectLabels(t, collect(onlyChildNode, a), "x")
	wide := mustParseTree(t, sentence)
	expectLabels(t, collect(onlyChildNode, wide))
}

func TestRelationDominance(t *testing.T) {
	root := mustParseTree(t, sentence)
	expectLabels(t, collect(descendantNodes, root),
		"NP", "DT", "the", "JJ", "big", "NN", "dog", "VP", "bit", "NP", "DT", "a", "NN", "cat")
	nn := findNode(root, "NN", 0)
	expectLabels(t, collect(ancestorNodes, nn), "NP", "S")
	// terminals have no upward link: no ancestors
	dog := findNode(root, "dog", 0)
	expectLabels(t, collect(ancestorNodes, dog))
}

func TestRelationEdgeDescendants(t *testing.T) {
	root := mustParseTree(t, sentence)
	expectLabels(t, collect(leftmostDescendantNodes, root), "NP", "DT", "the")
	expectLabels(t, collect(rightmostDescendantNodes, root), "NP", "NN", "cat")
	dt := findNode(root, "DT", 0)
	expectLabels(t, collect(ancestorsViaLeftmost, dt), "NP", "S")
	cat := findNode(root, "NN", 1)
	expectLabels(t, collect(ancestorsViaRightmost, cat), "NP", "S")
	jj := findNode(root, "JJ", 0)
	expectLabels(t, collect(ancestorsViaLeftmost, jj))
}

func TestRelationUnaryPaths(t *testing.T) {
	root := mustParseTree(t, "(S (A (B x)))")
	expectLabels(t, collect(unaryPathDescendants, root), "A", "B", "x")
	b := findNode(root, "B", 0)
	expectLabels(t, collect(unaryPathAncestors, b), "A", "S")
	wide := mustParseTree(t, sentence)
	expectLabels(t, collect(unaryPathDescendants, wide))
}

func TestRelationImmediatePrecedence(t *testing.T) {
	root := mustParseTree(t, sentence)
	// the NN over 'dog' ends its NP; next in terminal order is VP and its
	// leftmost descendants
	nn := findNode(root, "NN", 0)
	expectLabels(t, collect(immediatelyFollowingNodes, nn), "VP", "bit")
	vp := findNode(root, "VP", 0)
	expectLabels(t, collect(immediatelyPrecedingNodes, vp), "NP", "NN", "dog")
	// nothing follows the last NP
	last := findNode(root, "NP", 1)
	expectLabels(t, collect(immediatelyFollowingNodes, last))
	// terminals have no upward link: no neighbours
	dog := findNode(root, "dog", 0)
	expectLabels(t, collect(immediatelyFollowingNodes, dog))
}

func TestRelationPrecedence(t *testing.T) {
	root := mustParseTree(t, sentence)
	vp := findNode(root, "VP", 0)
	expectLabels(t, collect(followingNodes, vp), "NP", "DT", "a", "NN", "cat")
	expectLabels(t, collect(precedingNodes, vp), "NP", "DT", "the", "JJ", "big", "NN", "dog")
	// the root neither precedes nor follows anything
	expectLabels(t, collect(followingNodes, root))
	expectLabels(t, collect(precedingNodes, root))
}

func TestRelationSiblings(t *testing.T) {
	root := mustParseTree(t, sentence)
	jj := findNode(root, "JJ", 0)
	expectLabels(t, collect(siblingNodes, jj), "DT", "NN")
	expectLabels(t, collect(rightSiblingNode, jj), "NN")
	expectLabels(t, collect(leftSiblingNode, jj), "DT")
	expectLabels(t, collect(followingSiblingNodes, jj), "NN")
	expectLabels(t, collect(precedingSiblingNodes, jj), "DT")
	dt := findNode(root, "DT", 0)
	expectLabels(t, collect(leftSiblingNode, dt))
	expectLabels(t, collect(siblingNodes, root))
}

func TestRelationTableLookup(t *testing.T) {
	for _, op := range []string{
		"<", ">", "<,", "<1", ">,", ">1", "<'", "<-", "<-,", ">'", ">-", ">-,",
		"<:", ">:", "<<", ">>", "<<,", "<<1", "<<'", ">>,", ">>'", "<<:", ">>:",
		".", ",", "..", ",,", "$", "$.", "$,", "$..", "$,,",
		"<3", ">3", "<-2", ">-2",
	} {
		if _, ok := generatorFor(op); !ok {
			t.Errorf("expected operator %q to resolve, didn't", op)
		}
	}
	for _, op := range []string{"><", "<>", "$$", "<-x", "!"} {
		if _, ok := generatorFor(op); ok {
			t.Errorf("expected operator %q not to resolve, did", op)
		}
	}
}

func TestRelationGeneratorShortCircuits(t *testing.T) {
	root := mustParseTree(t, sentence)
	visited := 0
	stopped := descendantNodes(root, func(n *parsetree.Node) bool {
		visited++
		return n.Label() == "DT"
	})
	if !stopped {
		t.Error("expected generator to report early stop, didn't")
	}
	if visited != 2 {
		t.Errorf("expected candidate production to stop after 2 nodes, took %d", visited)
	}
}
