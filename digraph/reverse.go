package digraph

// Reverse returns a structurally distinct graph with the same vertex set
// and every edge flipped. Vertex indices are preserved so callers can
// translate between g and g.Reverse() without re-resolving symbols. The
// receiver is left unchanged.
func (g *Graph) Reverse() *Graph {
	r := &Graph{
		index: make(map[string]int, len(g.names)),
		names: make([]string, len(g.names)),
		adj:   make([][]int, len(g.names)),
	}
	for s, i := range g.index {
		r.index[s] = i
	}
	copy(r.names, g.names)

	for from, adj := range g.adj {
		for _, to := range adj {
			r.insertSorted(to, from)
		}
	}
	return r
}
