package decimate

import "github.com/vertexlab/autolod/geom"

// node is one currently-live vertex: its adjacent live vertices, the
// facets currently incident to it, and a per-sweep dirty flag consumed by
// the batch scheduler.
type node struct {
	vert      int
	neighbors map[int]struct{}
	incident  map[geom.FacetKey]geom.Facet
	dirty     bool
}

func newNode(vert int) *node {
	return &node{
		vert:      vert,
		neighbors: make(map[int]struct{}),
		incident:  make(map[geom.FacetKey]geom.Facet),
	}
}

// addNeighbor records adj as an adjacent live vertex.
func (n *node) addNeighbor(adj int) {
	n.neighbors[adj] = struct{}{}
}

// addFacet inserts f into incident with set semantics: a facet already
// present (by winding-independent identity) is left as-is.
func (n *node) addFacet(f geom.Facet) {
	key := f.Canonical()
	if _, exists := n.incident[key]; !exists {
		n.incident[key] = f
	}
}

// removeFacet erases f from incident, if present.
func (n *node) removeFacet(f geom.Facet) {
	delete(n.incident, f.Canonical())
}

// hasFacet reports whether a winding-independent match of f is incident.
func (n *node) hasFacet(f geom.Facet) bool {
	_, ok := n.incident[f.Canonical()]
	return ok
}
