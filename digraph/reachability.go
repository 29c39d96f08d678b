package digraph

// Reachable reports whether to is reachable from from by a path of one or
// more edges. Per the normative self-reachability rule: Reachable(v, v) is
// true iff there exists a cycle through v — a zero-length "path" from a
// vertex to itself never counts. Unknown symbols are never reachable from
// or to anything.
func (g *Graph) Reachable(from, to string) bool {
	fi, ok := g.index[from]
	if !ok {
		return false
	}
	ti, ok := g.index[to]
	if !ok {
		return false
	}

	visited := make(map[int]bool)
	var dfs func(v int) bool
	dfs = func(v int) bool {
		if v == ti {
			return true
		}
		if visited[v] {
			return false
		}
		visited[v] = true
		for _, n := range g.adj[v] {
			if dfs(n) {
				return true
			}
		}
		return false
	}

	for _, n := range g.adj[fi] {
		if dfs(n) {
			return true
		}
	}
	return false
}

// Ancestors returns the symbols reachable from symbol by one or more edges,
// in the order they were first visited by a DFS starting at each direct
// neighbor (not sorted; callers needing the raw adjacency order should use
// Adj directly). Returns nil for an unknown symbol or one with no outgoing
// reach.
func (g *Graph) Ancestors(symbol string) []string {
	si, ok := g.index[symbol]
	if !ok {
		return nil
	}

	visited := make(map[int]bool)
	var order []int
	var dfs func(v int)
	dfs = func(v int) {
		if visited[v] {
			return
		}
		visited[v] = true
		order = append(order, v)
		for _, n := range g.adj[v] {
			dfs(n)
		}
	}

	for _, n := range g.adj[si] {
		dfs(n)
	}

	if len(order) == 0 {
		return nil
	}
	out := make([]string, len(order))
	for i, vi := range order {
		out[i] = g.names[vi]
	}
	return out
}
