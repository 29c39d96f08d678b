package digraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// FromEdgeList builds a Graph from a whitespace-separated edge-list file:
// each non-blank line is "vertex vertex+", interpreted as
// AddEdge(first, rest...). Lines that are empty or all-whitespace are
// skipped. This is the thin file-ingestion glue described in the external
// interfaces; it performs no validation beyond tokenizing (structural
// validation, if wanted, is CheckForCycles after the graph is built).
func FromEdgeList(r io.Reader) (*Graph, error) {
	g := New()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("digraph: edge-list line %d: want \"vertex vertex+\", got %q", lineNo, line)
		}
		g.AddEdge(fields[0], fields[1:]...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("digraph: reading edge list: %w", err)
	}
	return g, nil
}
