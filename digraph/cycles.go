package digraph

import "fmt"

// color tracks a vertex's state during three-color cycle-detection DFS,
// grounded on the teacher's white/gray/black implied-by cycle check.
type color int

const (
	white color = iota // unvisited
	gray               // on the current DFS path
	black              // fully processed
)

// CheckForCycles runs a standard three-color DFS over the whole graph. It
// returns nil if the graph is a DAG. If a cycle exists, it returns
// ErrCycleDetected wrapped with the back-edge's cycle trace (the path from
// the revisited vertex back to itself) for diagnostics.
//
// Vertices are visited in insertion order for deterministic output; the
// particular cycle reported when several exist is whichever DFS finds
// first under that order.
func (g *Graph) CheckForCycles() ([]string, error) {
	colors := make([]color, len(g.names))
	var path []int

	var cycle []int
	var dfs func(v int) bool
	dfs = func(v int) bool {
		colors[v] = gray
		path = append(path, v)

		for _, n := range g.adj[v] {
			switch colors[n] {
			case white:
				if dfs(n) {
					return true
				}
			case gray:
				// Back edge: n is an ancestor on the current path.
				start := indexOf(path, n)
				cycle = append([]int(nil), path[start:]...)
				cycle = append(cycle, n)
				return true
			case black:
				// Forward/cross edge: not part of a cycle.
			}
		}

		path = path[:len(path)-1]
		colors[v] = black
		return false
	}

	for v := range g.names {
		if colors[v] == white {
			if dfs(v) {
				trace := make([]string, len(cycle))
				for i, vi := range cycle {
					trace[i] = g.names[vi]
				}
				return trace, fmt.Errorf("%w: %s", ErrCycleDetected, formatCycle(trace))
			}
		}
	}
	return nil, nil
}

func indexOf(path []int, v int) int {
	for i, p := range path {
		if p == v {
			return i
		}
	}
	return -1
}

func formatCycle(trace []string) string {
	s := ""
	for i, name := range trace {
		if i > 0 {
			s += " -> "
		}
		s += name
	}
	return s
}
