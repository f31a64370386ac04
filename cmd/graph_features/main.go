// Command graph_features prints a graph's vertex/edge counts, connectivity,
// eccentricity, and the count of length-<=2*eccentricity paths from the
// initial state.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/finitestate/graphcover/cover"
	"github.com/finitestate/graphcover/ingraph"
	"github.com/finitestate/graphcover/paths"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s <graph>\n", os.Args[0])
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()

	g, err := ingraph.Import(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	connected := g.IsConnected()
	fmt.Printf("vertices=%d edges=%d connected=%t\n", g.VertexCount(), g.EdgeCount(), connected)

	if !connected {
		return
	}

	ecc := g.Eccentricity()
	length := cover.LengthFactor * ecc
	count := paths.CountMaxLengthFromInitial(g, length)
	fmt.Printf("eccentricity=%d length=%d paths_from_initial=%g\n", ecc, length, count)
}
