package decimate

import (
	"fmt"

	"github.com/vertexlab/autolod/geom"
)

// canonicalPair returns the canonical (order-independent) form of the
// edge {a,b}, for use as a horizonEdges lookup key.
func canonicalPair(a, b int) geom.Edge {
	return geom.CanonicalEdge(geom.NewEdge(a, b))
}

// Ecol performs the half-edge collapse removing vRemove into vKeep. The
// caller must have just confirmed EcolIsLegal(vKeep, vRemove) and must not
// have mutated the graph since. Ecol repeats only some of those checks
// (both endpoints live and adjacent, the edge not on the horizon, exactly
// two facets on the edge) and panics when one fails; the remaining
// EcolIsLegal conditions are not re-checked.
//
// Postcondition: adjacency and incidence stay consistent, live node count
// decreases by exactly 1, live facet count decreases by exactly 2,
// horizonEdges and horizonVerts are unchanged.
func (g *Graph) Ecol(vKeep, vRemove int) {
	keep, okK := g.nodes[vKeep]
	remove, okR := g.nodes[vRemove]
	if !okK || !okR {
		panic(fmt.Sprintf("decimate: Ecol(%d, %d): both endpoints must be live nodes", vKeep, vRemove))
	}
	if _, adjacent := keep.neighbors[vRemove]; !adjacent {
		panic(fmt.Sprintf("decimate: Ecol(%d, %d): endpoints are not adjacent", vKeep, vRemove))
	}
	if _, onHorizon := g.horizonEdges[canonicalPair(vKeep, vRemove)]; onHorizon {
		panic(fmt.Sprintf("decimate: Ecol(%d, %d): collapsing a horizon edge", vKeep, vRemove))
	}

	collFacets := g.collapsingFacets(keep, vRemove)
	if len(collFacets) != 2 {
		panic(fmt.Sprintf("decimate: Ecol(%d, %d): collapsing edge must border exactly two facets, got %d", vKeep, vRemove, len(collFacets)))
	}

	// Build the affected set: neighbors of both endpoints, minus vRemove.
	affected := make(map[int]struct{}, len(keep.neighbors)+len(remove.neighbors))
	for adj := range keep.neighbors {
		affected[adj] = struct{}{}
	}
	for adj := range remove.neighbors {
		affected[adj] = struct{}{}
	}
	delete(affected, vRemove)
	if _, ok := affected[vKeep]; !ok {
		panic(fmt.Sprintf("decimate: Ecol(%d, %d): keep vertex missing from affected set", vKeep, vRemove))
	}

	// Merge removeNode's facets into keepNode (set semantics absorb dupes).
	for _, f := range remove.incident {
		keep.addFacet(f)
	}

	for u := range affected {
		un := g.nodes[u]
		un.dirty = true

		un.removeFacet(collFacets[0])
		un.removeFacet(collFacets[1])
		replaceVertexInIncident(un, vRemove, vKeep)

		delete(un.neighbors, vRemove)
		if u != vKeep {
			un.neighbors[vKeep] = struct{}{}
		}
	}

	// Add removeNode's remaining neighbors to keepNode.
	for w := range remove.neighbors {
		if w != vKeep {
			keep.neighbors[w] = struct{}{}
		}
	}

	delete(g.nodes, vRemove)
}

// replaceVertexInIncident rewrites every facet in n.incident that
// references old, substituting newIdx, while preserving the facet's
// stored winding order in the other two slots.
func replaceVertexInIncident(n *node, old, newIdx int) {
	// Collect first: mutating a map while ranging over it is unsafe.
	var stale []geom.Facet
	for _, f := range n.incident {
		if f.Contains(old) {
			stale = append(stale, f)
		}
	}

	for _, f := range stale {
		n.removeFacet(f)
		f.Replace(old, newIdx)
		n.addFacet(f)
	}
}
