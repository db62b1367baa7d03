package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/pandemaniac/bfs"
	"github.com/katalvlaran/pandemaniac/core"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 grid (9 vertices).
// We expect to see the start at "0_0", then its 2 neighbors {"0_1","1_0"}, then the next frontier, etc.
func ExampleBFS_gridTraversal() {
	// Build a 3×3 undirected grid: vertices "i_j" for 0 ≤ i,j < 3
	adj := core.Adjacency{}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			// connect to right neighbor
			if j+1 < 3 {
				adj.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i, j+1))
			}
			// connect to down neighbor
			if i+1 < 3 {
				adj.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i+1, j))
			}
		}
	}
	g, _ := core.NewGraph(adj)

	// BFS from top-left corner
	res, err := bfs.BFS(g, "0_0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Print the visit order; should follow non-decreasing Manhattan distance
	fmt.Println(res.Order)
	// Output:
	// [0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2]
}

// ExampleDistances reads a graph file payload and prints the distance map of
// one vertex of the 4-cycle.
func ExampleDistances() {
	g, _ := core.FromJSON([]byte(`{"0":["1","3"],"1":["0","2"],"2":["1","3"],"3":["0","2"]}`))

	dist, _ := bfs.Distances(g, "0")
	for _, id := range g.Vertices() {
		fmt.Printf("%s:%d ", id, dist[id])
	}
	fmt.Println()
	fmt.Println("eccentricity:", dist.Max())
	// Output:
	// 0:0 1:1 2:2 3:1
	// eccentricity: 2
}
