package digraph

import (
	"strings"
	"testing"
)

func TestFromEdgeList(t *testing.T) {
	input := "a b c\n\nb c\n  \nc a\n"
	g, err := FromEdgeList(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.HasEdge("a", "b") || !g.HasEdge("a", "c") || !g.HasEdge("b", "c") || !g.HasEdge("c", "a") {
		t.Fatalf("missing expected edges, adj(a)=%v adj(b)=%v adj(c)=%v", g.Adj("a"), g.Adj("b"), g.Adj("c"))
	}
}

func TestFromEdgeList_RejectsMalformedLine(t *testing.T) {
	_, err := FromEdgeList(strings.NewReader("onlyone\n"))
	if err == nil {
		t.Fatal("expected error for a line with a single token")
	}
}
