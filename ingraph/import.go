package ingraph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/finitestate/graphcover/core"
)

// ErrMalformedInput is returned when a token of the <n> <init>
// (<source> <target>)* format is not an integer, or when the vertex count,
// initial state or an edge endpoint is out of range. Input that ends before
// the initial state or between an edge's source and target yields an error
// wrapping io.EOF instead.
var ErrMalformedInput = errors.New("ingraph: malformed input")

// Import reads the whitespace-separated text format: vertex count, then
// the 0-based initial state id, then source/target pairs until EOF. Every
// vertex is implicitly final.
//
// Complexity: O(n + m).
func Import(r io.Reader) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	n, err := nextInt(sc)
	if err != nil {
		return nil, fmt.Errorf("ingraph: reading vertex count: %w", err)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative vertex count %d", ErrMalformedInput, n)
	}

	init, err := nextInt(sc)
	if err != nil {
		return nil, fmt.Errorf("ingraph: reading initial state: %w", err)
	}

	g := core.NewGraph()
	for v := 0; v < n; v++ {
		g.AddVertex()
		g.AddFinalState(core.VertexID(v))
	}

	if init < 0 || init >= n {
		return nil, fmt.Errorf("%w: initial state %d out of range [0,%d)", ErrMalformedInput, init, n)
	}
	g.SetInitialState(core.VertexID(init))

	for {
		src, err := nextInt(sc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ingraph: reading edge source: %w", err)
		}

		dst, err := nextInt(sc)
		if err != nil {
			return nil, fmt.Errorf("ingraph: reading edge target: %w", err)
		}

		if src < 0 || src >= n || dst < 0 || dst >= n {
			return nil, fmt.Errorf("%w: edge (%d,%d) out of range [0,%d)", ErrMalformedInput, src, dst, n)
		}
		g.AddEdge(core.VertexID(src), core.VertexID(dst))
	}

	return g, nil
}

func nextInt(sc *bufio.Scanner) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	v, err := strconv.Atoi(sc.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrMalformedInput, sc.Text())
	}

	return v, nil
}
