package core

// SetInitialState designates v as the single initial state for all
// path-based computations.
//
// Complexity: O(1).
func (g *Graph) SetInitialState(v VertexID) {
	g.initialState = v
}

// InitialState returns the designated initial state, or InvalidVertexID if
// none has been set.
//
// Complexity: O(1).
func (g *Graph) InitialState() VertexID {
	return g.initialState
}

// IsInitialState reports whether v is the designated initial state.
//
// Complexity: O(1).
func (g *Graph) IsInitialState(v VertexID) bool {
	return g.initialState == v
}

// AddFinalState marks v as a final (accepting) state.
//
// Complexity: O(1).
func (g *Graph) AddFinalState(v VertexID) {
	g.finalStates[v] = struct{}{}
}

// IsFinalState reports whether v has been marked final.
//
// Complexity: O(1).
func (g *Graph) IsFinalState(v VertexID) bool {
	_, ok := g.finalStates[v]
	return ok
}

// FinalStates returns every final vertex, in no particular order.
//
// Complexity: O(|F|).
func (g *Graph) FinalStates() []VertexID {
	vs := make([]VertexID, 0, len(g.finalStates))
	for v := range g.finalStates {
		vs = append(vs, v)
	}

	return vs
}

// IsConnected reports whether every vertex is forward-reachable from the
// initial state (or from vertex 0 if no initial state was set). Only
// forward reachability is considered; an empty graph is connected.
//
// Complexity: O(n + m).
func (g *Graph) IsConnected() bool {
	n := g.VertexCount()
	if n == 0 {
		return true
	}

	start := g.initialState
	if start == InvalidVertexID {
		start = 0
	}

	visited := make([]bool, n)
	visited[start] = true

	todo := make([]VertexID, 0, n)
	todo = append(todo, start)

	for len(todo) > 0 {
		curr := todo[0]
		todo = todo[1:]

		for _, e := range g.OutEdges(curr) {
			next := g.Target(e)
			if !visited[next] {
				visited[next] = true
				todo = append(todo, next)
			}
		}
	}

	for _, seen := range visited {
		if !seen {
			return false
		}
	}

	return true
}

// Eccentricity computes the single-source shortest-path distance (unit edge
// weights) from the initial state to every vertex via Bellman-Ford-style
// relaxation, and returns the maximum such distance. Unreachable vertices
// are left at n+1 and participate in that maximum — callers must only
// invoke this on connected graphs.
//
// Complexity: O(n * m) worst case, with early exit on a no-update round.
func (g *Graph) Eccentricity() int {
	n := g.VertexCount()
	if n == 0 {
		return 0
	}

	distance := make([]int, n)
	for i := range distance {
		distance[i] = n + 1
	}
	distance[g.initialState] = 0

	edges := g.Edges()

	for k := 0; k < n; k++ {
		updated := false

		for _, e := range edges {
			src := g.Source(e)
			dst := g.Target(e)
			newDistance := distance[src] + 1

			if newDistance < distance[dst] {
				distance[dst] = newDistance
				updated = true
			}
		}

		if !updated {
			break
		}
	}

	max := distance[0]
	for _, d := range distance[1:] {
		if d > max {
			max = d
		}
	}

	return max
}
