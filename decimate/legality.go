package decimate

import (
	"math"

	"github.com/vertexlab/autolod/geom"
)

// collapsingFacets returns the (at most two) facets incident to vKeep that
// contain the edge {vKeep, vRemove} — the two triangles destroyed by the
// collapse. Returns fewer than two if the edge isn't shared by exactly two
// facets.
func (g *Graph) collapsingFacets(keep *node, vRemove int) []geom.Facet {
	collEdge := geom.NewEdge(keep.vert, vRemove)
	var out []geom.Facet
	for _, f := range keep.incident {
		if f.ContainsEdge(collEdge) {
			out = append(out, f)
		}
	}
	return out
}

// EcolIsLegal reports whether collapsing vRemove into vKeep would preserve
// manifoldness and not flip any retained triangle's normal. It does not
// mutate the graph.
func (g *Graph) EcolIsLegal(vKeep, vRemove int) bool {
	if _, onHorizon := g.horizonVerts[vRemove]; onHorizon {
		return false // 1: collapsing onto an open boundary is forbidden
	}

	keep, okK := g.nodes[vKeep]
	remove, okR := g.nodes[vRemove]
	if !okK || !okR {
		return false
	}
	if _, adjacent := keep.neighbors[vRemove]; !adjacent {
		return false // 2
	}

	collFacets := g.collapsingFacets(keep, vRemove)
	if len(collFacets) != 2 {
		return false // 3: exactly two facets must share the collapsing edge
	}

	shared := 0
	for adj := range keep.neighbors {
		if _, ok := remove.neighbors[adj]; ok {
			shared++
		}
	}
	if shared != 2 {
		return false // 4: exactly two shared neighbors (link-condition proxy)
	}

	// 5: no face flip. For every facet incident to vRemove other than the
	// two collapsing facets, the post-collapse normal must not reverse.
	for _, f := range remove.incident {
		if f.Equal(collFacets[0]) || f.Equal(collFacets[1]) {
			continue
		}
		newFacet := f
		newFacet.Replace(vRemove, vKeep)

		origIdx := f.Indices()
		newIdx := newFacet.Indices()
		origNormal := geom.FaceNormal(g.positions[origIdx[0]], g.positions[origIdx[1]], g.positions[origIdx[2]])
		newNormal := geom.FaceNormal(g.positions[newIdx[0]], g.positions[newIdx[1]], g.positions[newIdx[2]])
		if newNormal.Dot(origNormal) < 0 {
			return false
		}
	}

	return true
}

// EcolLoss returns the directed loss of collapsing vNeighbor into vThis:
// the magnitude of the cross product of the two collapsing facets' unit
// normals, scaled by their combined area. Returns -1 if the two endpoints
// don't share exactly two incident facets; callers must filter negatives
// before scoring candidates.
func (g *Graph) EcolLoss(vThis, vNeighbor int) float64 {
	this, ok := g.nodes[vThis]
	if !ok {
		return -1
	}
	collFacets := g.collapsingFacets(this, vNeighbor)
	if len(collFacets) != 2 {
		return -1
	}

	idx0 := collFacets[0].Indices()
	idx1 := collFacets[1].Indices()
	n0 := geom.FaceNormal(g.positions[idx0[0]], g.positions[idx0[1]], g.positions[idx0[2]])
	n1 := geom.FaceNormal(g.positions[idx1[0]], g.positions[idx1[1]], g.positions[idx1[2]])
	a0 := geom.TriArea(g.positions[idx0[0]], g.positions[idx0[1]], g.positions[idx0[2]])
	a1 := geom.TriArea(g.positions[idx1[0]], g.positions[idx1[1]], g.positions[idx1[2]])

	return n0.Cross(n1).Len() * (a0 + a1)
}

// VertexSaliency is a diagnostic, undirected "how much topological
// information does this vertex carry" metric: the per-axis variance of its
// incident facets' unit normals about their unweighted mean, reduced to
// the Euclidean norm of that variance vector and scaled by the total
// incident area. It is not consulted by
// EcolLoss or GenLODMesh — see DESIGN.md.
func (g *Graph) VertexSaliency(v int) float64 {
	n, ok := g.nodes[v]
	if !ok || len(n.incident) == 0 {
		return 0
	}

	type sample struct {
		normal [3]float64
		area   float64
	}
	samples := make([]sample, 0, len(n.incident))
	for _, f := range n.incident {
		idx := f.Indices()
		nrm := geom.FaceNormal(g.positions[idx[0]], g.positions[idx[1]], g.positions[idx[2]])
		area := geom.TriArea(g.positions[idx[0]], g.positions[idx[1]], g.positions[idx[2]])
		samples = append(samples, sample{normal: [3]float64{nrm.X(), nrm.Y(), nrm.Z()}, area: area})
	}

	var mean [3]float64
	var totalArea float64
	for _, s := range samples {
		for i := 0; i < 3; i++ {
			mean[i] += s.normal[i]
		}
		totalArea += s.area
	}
	k := float64(len(samples))
	for i := 0; i < 3; i++ {
		mean[i] /= k
	}

	var variance [3]float64
	for _, s := range samples {
		for i := 0; i < 3; i++ {
			d := mean[i] - s.normal[i]
			variance[i] += d * d
		}
	}
	var stdevNorm float64
	for i := 0; i < 3; i++ {
		variance[i] /= k
		stdevNorm += variance[i] * variance[i]
	}

	return totalArea * math.Sqrt(stdevNorm)
}
