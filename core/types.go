// Package core defines the Graph, VertexID, and EdgeID types that back the
// rest of the module: a directed multigraph with one designated initial
// state and a set of final states.
//
// Graph is built incrementally (AddVertex/AddEdge/SetInitialState/
// AddFinalState) under a pair of RWMutex-guarded sections, mirroring the
// construction-time safety of a library meant to be built once and then
// read many times. The per-vertex and per-edge queries (OutEdges, Source,
// Target, IsFinalState, ...) take no lock, since Graph is treated as
// immutable once import has finished; VertexCount and EdgeCount, and the
// queries built on them (Vertices, Edges, IsConnected, Eccentricity), take
// a read lock.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNoInitialState indicates a query required an initial state that was never set.
	ErrNoInitialState = errors.New("core: no initial state set")
)

// VertexID uniquely identifies a vertex within its Graph. IDs are dense and
// contiguous starting at 0.
type VertexID uint64

// InvalidVertexID is the sentinel value of a Graph's initial state before
// SetInitialState has been called.
const InvalidVertexID VertexID = ^VertexID(0)

// EdgeID uniquely identifies an edge within its Graph. IDs are dense and
// contiguous starting at 0.
type EdgeID uint64

// edge is the triple (source, target) addressed by its EdgeID's position.
type edge struct {
	source VertexID
	target VertexID
}

// Graph is a directed multigraph with one initial state and a set of final
// states. Parallel edges and self-loops are both permitted; out-edges are
// stored per source vertex as an insertion-ordered slice, which is a
// multiset by construction (duplicates preserve multiplicity).
type Graph struct {
	muVert sync.RWMutex // guards vertexCount during construction
	muEdge sync.RWMutex // guards edges and outEdges during construction

	vertexCount uint64
	edges       []edge
	outEdges    [][]EdgeID // outEdges[v] = multiset of edge ids sourced at v

	initialState VertexID
	finalStates  map[VertexID]struct{}
}

// NewGraph returns an empty Graph with no vertices, no edges, and no
// initial or final state. Use AddVertex to grow it.
func NewGraph() *Graph {
	return &Graph{
		initialState: InvalidVertexID,
		finalStates:  make(map[VertexID]struct{}),
	}
}
