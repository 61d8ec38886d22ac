package decimate

import "errors"

// Sentinel errors for Graph construction and self-checking. The first
// three are detected by NewGraph while building the graph from
// caller-supplied facets/positions; the rest are returned by CheckLegality.
// All are returned wrapped with the offending index/edge.
var (
	// ErrOutOfRangeIndex indicates a facet references a point index
	// outside the bounds of the positions slice.
	ErrOutOfRangeIndex = errors.New("decimate: facet index out of range")

	// ErrDegenerateFacet indicates a facet whose three indices are not
	// all distinct.
	ErrDegenerateFacet = errors.New("decimate: facet has duplicate indices")

	// ErrNonManifoldEdge indicates an edge shared by three or more
	// facets. Behavior on non-manifold input is otherwise unspecified;
	// this is a best-effort construction-time check.
	ErrNonManifoldEdge = errors.New("decimate: non-manifold edge")

	// ErrUnknownVertex is returned by CheckLegality when a node claims a
	// neighbor that is absent from the graph.
	ErrUnknownVertex = errors.New("decimate: unknown vertex")

	// ErrMutualAdjacencyViolation is returned by CheckLegality when a
	// node claims a neighbor that does not claim it back.
	ErrMutualAdjacencyViolation = errors.New("decimate: mutual adjacency violation")

	// ErrFacetAdjacencyMismatch is returned by CheckLegality when an
	// incident facet references a vertex outside the node's own
	// adjacency set.
	ErrFacetAdjacencyMismatch = errors.New("decimate: facet references a non-adjacent vertex")
)
