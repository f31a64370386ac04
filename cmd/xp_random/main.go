// Command xp_random prints cover metrics over a graph under unweighted
// random walks.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/finitestate/graphcover/cover"
	"github.com/finitestate/graphcover/ingraph"
	"github.com/finitestate/graphcover/metrics"
	"github.com/finitestate/graphcover/rng"
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

	length := cover.LengthFactor * g.Eccentricity()
	eng := rng.NewEngine()

	results := cover.CoverMultipleRandom(g, length, eng, cover.CoverTries, os.Stdout)
	fmt.Println()
	fmt.Print(metrics.ComputeMeanMetrics(results))
}
