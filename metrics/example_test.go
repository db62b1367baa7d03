package metrics_test

import (
	"fmt"

	"github.com/katalvlaran/pandemaniac/core"
	"github.com/katalvlaran/pandemaniac/metrics"
)

// ExampleSummarize prints the global statistics of a triangle with a pendant.
func ExampleSummarize() {
	g, _ := core.FromJSON([]byte(`{"A":["B","C"],"B":["C"],"C":["D"],"D":[]}`))
	s, _ := metrics.Summarize(g)
	fmt.Printf("V=%d E=%d diameter=%d\n", s.Vertices, s.Edges, s.Diameter)
	fmt.Printf("avg cc=%.4f overall cc=%.2f\n", s.AverageClustering, s.OverallClustering)
	// Output:
	// V=4 E=4 diameter=2
	// avg cc=0.5833 overall cc=0.60
}
