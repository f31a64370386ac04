// Command xp_approx prints cover metrics over a graph under the maximin
// mixture computed from a Monte-Carlo alpha matrix with T = factor*|V|
// trials.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/finitestate/graphcover/alpha"
	"github.com/finitestate/graphcover/cover"
	"github.com/finitestate/graphcover/ingraph"
	"github.com/finitestate/graphcover/metrics"
	"github.com/finitestate/graphcover/rng"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s <graph> <factor>\n", os.Args[0])
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}

	factor, err := strconv.Atoi(flag.Arg(1))
	if err != nil || factor <= 0 {
		fmt.Fprintln(os.Stderr, "factor must be a positive integer")
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
	trials := factor * g.VertexCount()
	eng := rng.NewEngine()

	a := alpha.ApproxAlphaMatrix(g, length, trials, eng)
	dist := cover.NewDistributionFromAlpha(a, eng)

	results := cover.CoverMultiple(g, length, dist, eng, cover.CoverTries, os.Stdout)
	fmt.Println()
	fmt.Print(metrics.ComputeMeanMetrics(results))
}
