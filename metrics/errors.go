package metrics

import "errors"

// Sentinel errors for metric computations.
var (
	// ErrEmptyGraph indicates a global metric was requested on a graph with no vertices.
	ErrEmptyGraph = errors.New("metrics: graph has no vertices")

	// ErrDisconnected indicates a distance metric was requested on a disconnected graph.
	ErrDisconnected = errors.New("metrics: graph is disconnected")

	// ErrOddTriangleCount indicates the ordered-pair triangle count of a vertex was odd,
	// which is impossible for a symmetric graph and signals a construction bug.
	ErrOddTriangleCount = errors.New("metrics: odd ordered triangle count")

	// ErrUnknownMetric indicates Lookup was called with an unregistered name.
	ErrUnknownMetric = errors.New("metrics: unknown metric")
)
