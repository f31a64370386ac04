package core

// AddEdge appends a new directed edge source -> target and returns its
// dense EdgeID. Both endpoints must already exist; AddEdge does not
// validate this (callers — ingraph.Import and the derived-graph builders —
// only ever add edges between vertices they just created).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(source, target VertexID) EdgeID {
	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, edge{source: source, target: target})
	g.outEdges[source] = append(g.outEdges[source], id)

	return id
}

// EdgeCount returns the number of edges added so far.
//
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	return len(g.edges)
}

// Edges returns every edge id in [0, EdgeCount()).
//
// Complexity: O(m).
func (g *Graph) Edges() []EdgeID {
	m := g.EdgeCount()
	es := make([]EdgeID, m)
	for i := 0; i < m; i++ {
		es[i] = EdgeID(i)
	}

	return es
}

// Source returns the source vertex of e.
//
// Complexity: O(1).
func (g *Graph) Source(e EdgeID) VertexID {
	return g.edges[e].source
}

// Target returns the target vertex of e.
//
// Complexity: O(1).
func (g *Graph) Target(e EdgeID) VertexID {
	return g.edges[e].target
}

// OutEdges returns the multiset of edge ids sourced at v, in insertion
// order. Parallel edges appear once per insertion.
//
// Complexity: O(1) to return the slice (O(out-degree) to iterate it).
func (g *Graph) OutEdges(v VertexID) []EdgeID {
	return g.outEdges[v]
}
