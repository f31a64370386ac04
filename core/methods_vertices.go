package core

// AddVertex appends a new vertex and returns its dense VertexID (the
// previous vertex count).
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex() VertexID {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	id := VertexID(g.vertexCount)
	g.vertexCount++
	g.outEdges = append(g.outEdges, nil)

	return id
}

// VertexCount returns the number of vertices added so far.
//
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return int(g.vertexCount)
}

// Vertices returns every vertex id in [0, VertexCount()).
//
// Complexity: O(n).
func (g *Graph) Vertices() []VertexID {
	n := g.VertexCount()
	vs := make([]VertexID, n)
	for i := 0; i < n; i++ {
		vs[i] = VertexID(i)
	}

	return vs
}

// HasVertex reports whether v is a valid vertex of g.
//
// Complexity: O(1).
func (g *Graph) HasVertex(v VertexID) bool {
	return v != InvalidVertexID && uint64(v) < uint64(g.VertexCount())
}
