// Package horizon classifies the boundary edges of a triangle mesh: the
// edges that belong to exactly one facet in a given facet list.
//
// Algorithm: walk every facet's three edges, tracking per-edge "unique" vs
// "shared" state in a map keyed by the edge's canonical (order-independent)
// form. The first sighting of an edge marks it unique; any further
// sighting flips it to shared. An edge seen a third time stays shared —
// non-manifold input (an edge touching 3+ facets) is not flagged as an
// error here, only folded into "not horizon".
//
// Time complexity: O(|facets|). Memory: O(|facets|).
package horizon
