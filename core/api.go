package core

// PathGraph is the minimal read-only surface the path-counting, sampling,
// and alpha-matrix algorithms need. Both *Graph and *derived.Graph (which
// embeds a *Graph) satisfy it, so those algorithms can run unmodified over
// either a base graph or a layered crossing construction.
type PathGraph interface {
	VertexCount() int
	OutEdges(v VertexID) []EdgeID
	Target(e EdgeID) VertexID
	IsFinalState(v VertexID) bool
	InitialState() VertexID
}

var _ PathGraph = (*Graph)(nil)
