package horizon

import "github.com/vertexlab/autolod/geom"

// Extract returns the set of edges that appear in exactly one facet of
// facets. An edge touching three or more facets (non-manifold) is
// classified as shared, not horizon — callers must not feed non-manifold
// input; this classifier does not complain.
//
// Complexity: O(|facets|) expected.
func Extract(facets []geom.Facet) map[geom.Edge]struct{} {
	// state: true == seen exactly once so far ("unique"), false == "shared"
	state := make(map[geom.Edge]bool, len(facets)*3)

	for _, f := range facets {
		for _, e := range f.Edges() {
			ce := geom.CanonicalEdge(e)
			if _, ok := state[ce]; ok {
				state[ce] = false // second-or-later sighting: shared
			} else {
				state[ce] = true // first sighting: unique so far
			}
		}
	}

	horizon := make(map[geom.Edge]struct{})
	for e, unique := range state {
		if unique {
			horizon[e] = struct{}{}
		}
	}
	return horizon
}
