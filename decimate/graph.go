package decimate

import (
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vertexlab/autolod/geom"
	"github.com/vertexlab/autolod/horizon"
)

// Graph is the mutable half-edge-collapse graph over a fixed, read-only
// position array. It is not safe for concurrent use and is not re-entrant
// with respect to a single Ecol call.
type Graph struct {
	positions []mgl64.Vec3
	nodes     map[int]*node

	// horizonEdges and horizonVerts are fixed at construction and never
	// touched again: the open boundary of a mesh never moves.
	horizonEdges map[geom.Edge]struct{}
	horizonVerts map[int]struct{}
}

// NewGraph builds a Graph from facets over positions. Returns
// ErrOutOfRangeIndex, ErrDegenerateFacet, or ErrNonManifoldEdge if the
// input is not a valid manifold-with-boundary triangle mesh.
//
// Complexity: O(|facets|) expected.
func NewGraph(facets []geom.Facet, positions []mgl64.Vec3) (*Graph, error) {
	if err := validate(facets, positions); err != nil {
		return nil, err
	}

	g := &Graph{
		positions: positions,
		nodes:     make(map[int]*node, len(positions)),
	}

	for _, f := range facets {
		idx := f.Indices()
		for i := 0; i < 3; i++ {
			v := idx[i]
			n, ok := g.nodes[v]
			if !ok {
				n = newNode(v)
				g.nodes[v] = n
			}
			n.addFacet(f)
			for j := 0; j < 3; j++ {
				if i != j {
					n.addNeighbor(idx[j])
				}
			}
		}
	}

	g.horizonEdges = horizon.Extract(facets)
	g.horizonVerts = make(map[int]struct{}, len(g.horizonEdges)*2)
	for e := range g.horizonEdges {
		g.horizonVerts[e.A] = struct{}{}
		g.horizonVerts[e.B] = struct{}{}
	}

	return g, nil
}

// validate checks index bounds, facet degeneracy, and flags non-manifold
// edges (an edge shared by 3+ facets) before any node is constructed.
func validate(facets []geom.Facet, positions []mgl64.Vec3) error {
	nPts := len(positions)
	edgeCount := make(map[geom.Edge]int, len(facets)*3)

	for _, f := range facets {
		idx := f.Indices()
		for _, v := range idx {
			if v < 0 || v >= nPts {
				return fmt.Errorf("%w: %d (positions has %d entries)", ErrOutOfRangeIndex, v, nPts)
			}
		}
		if idx[0] == idx[1] || idx[1] == idx[2] || idx[0] == idx[2] {
			return fmt.Errorf("%w: %v", ErrDegenerateFacet, idx)
		}
		for _, e := range f.Edges() {
			edgeCount[geom.CanonicalEdge(e)]++
		}
	}

	for e, count := range edgeCount {
		if count >= 3 {
			return fmt.Errorf("%w: {%d,%d} touches %d facets", ErrNonManifoldEdge, e.A, e.B, count)
		}
	}
	return nil
}

// LiveCount returns the number of currently-live vertices.
func (g *Graph) LiveCount() int {
	return len(g.nodes)
}

// HasVertex reports whether v is a currently-live vertex.
func (g *Graph) HasVertex(v int) bool {
	_, ok := g.nodes[v]
	return ok
}

// Position returns the read-only position of point index v.
func (g *Graph) Position(v int) mgl64.Vec3 {
	return g.positions[v]
}

// sortedLiveVertices returns live vertex indices in ascending order, giving
// every sweep a deterministic node-iteration order despite Go's randomized
// map iteration.
func (g *Graph) sortedLiveVertices() []int {
	out := make([]int, 0, len(g.nodes))
	for v := range g.nodes {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// Facets returns the current, deduplicated set of live facets by walking
// every live node's incident set.
//
// Complexity: O(|live facets|).
func (g *Graph) Facets() []geom.Facet {
	seen := make(map[geom.FacetKey]geom.Facet)
	for _, v := range g.sortedLiveVertices() {
		for key, f := range g.nodes[v].incident {
			if _, ok := seen[key]; !ok {
				seen[key] = f
			}
		}
	}
	out := make([]geom.Facet, 0, len(seen))
	for _, f := range seen {
		out = append(out, f)
	}
	return out
}

// CheckLegality walks every node verifying symmetric adjacency with every
// claimed neighbor, and that every index of every incident facet is either
// the node's own vertex or a claimed neighbor.
func (g *Graph) CheckLegality() error {
	for _, v := range g.sortedLiveVertices() {
		n := g.nodes[v]
		for adj := range n.neighbors {
			adjNode, ok := g.nodes[adj]
			if !ok {
				return fmt.Errorf("%w: %d claims neighbor %d which does not exist", ErrUnknownVertex, v, adj)
			}
			if _, mutual := adjNode.neighbors[v]; !mutual {
				return fmt.Errorf("%w: %d -> %d is not reciprocated", ErrMutualAdjacencyViolation, v, adj)
			}
		}
		for _, f := range n.incident {
			for _, idx := range f.Indices() {
				if idx == v {
					continue
				}
				if _, adjacent := n.neighbors[idx]; !adjacent {
					return fmt.Errorf("%w: node %d incident facet %v references non-neighbor %d", ErrFacetAdjacencyMismatch, v, f, idx)
				}
			}
		}
	}
	return nil
}
