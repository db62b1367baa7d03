// Package pandemaniac is a toolkit for a multi-player seed-selection game:
// players each pick a fixed number of seed vertices on an undirected graph,
// an external simulator spreads influence from the seeds, and the player
// that ends up holding the most vertices wins.
//
// The module covers everything on the player's side of that contract:
//
//	core/     - immutable undirected Graph built from a JSON adjacency listing
//	bfs/      - layered breadth-first search and distance maps
//	metrics/  - triangles, clustering, diameter, average distance, centralities
//	builder/  - deterministic and random graph generators
//	game/     - Game, SeedSet, graph-file naming and round-output files
//	sim/      - the simulator (oracle) contract and adapters
//	strategy/ - Random, TopK, TwinAttack, CompositeRank, BeatDegree
//	match/    - Play, pairwise Tally, game generation
//	config/   - viper settings, zerolog logger, configured strategies
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	{"0":["1","3"],"1":["0","2"],"2":["1","3"],"3":["0","2"]}
//
// is the 4-cycle: every vertex has degree 2 and the diameter is 2. Saved as
// "2.1.7.json" it is a two-player, one-seed game with id 7.
//
// The simulator itself is never implemented here; plug one in through
// sim.Oracle (sim.OracleFunc for a closure).
package pandemaniac
