// Command xp_random_and_uniform prints cover metrics under two
// re-injection strategies side by side: plain random walks with no
// re-injection, and weighted walks forced through a re-injection vertex
// chosen uniformly across vertices.
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

	fmt.Println("random:")
	randomResults := cover.CoverMultipleRandom(g, length, eng, cover.CoverTries, os.Stdout)
	fmt.Println()
	fmt.Print(metrics.ComputeMeanMetrics(randomResults))

	fmt.Println("uniform:")
	uniform := cover.NewUniformDistribution(g.VertexCount())
	uniformResults := cover.CoverMultiple(g, length, uniform, eng, cover.CoverTries, os.Stdout)
	fmt.Println()
	fmt.Print(metrics.ComputeMeanMetrics(uniformResults))
}
