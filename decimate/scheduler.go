package decimate

import (
	"log/slog"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vertexlab/autolod/config"
	"github.com/vertexlab/autolod/geom"
)

// candidate is a scoreable (loss, vKeep, vRemove) collapse proposal.
// Within a sweep, candidates are applied in ascending (loss, vKeep,
// vRemove) lexicographic order, cheapest first.
type candidate struct {
	loss           float64
	vKeep, vRemove int
}

func less(a, b candidate) bool {
	if a.loss != b.loss {
		return a.loss < b.loss
	}
	if a.vKeep != b.vKeep {
		return a.vKeep < b.vKeep
	}
	return a.vRemove < b.vRemove
}

// GenLODMesh computes a coarser facet set from facets/positions, iteratively
// applying legal half-edge collapses in ascending-loss order until the live
// vertex count is at or below profile.CompressionFactor's target, or no
// legal collapse remains.
//
// Returns the final facet set and the number of surviving vertices.
// actualSize may exceed the target if the mesh runs out of legal
// candidates first — this is not an error.
func GenLODMesh(facets []geom.Facet, positions []mgl64.Vec3, profile config.Profile) ([]geom.Facet, int, error) {
	if err := profile.Validate(); err != nil {
		return nil, 0, err
	}

	g, err := NewGraph(facets, positions)
	if err != nil {
		return nil, 0, err
	}

	baseSize := g.LiveCount()
	target := int(float64(baseSize) / profile.CompressionFactor)

	for g.LiveCount() > target {
		for _, v := range g.sortedLiveVertices() {
			g.nodes[v].dirty = false
		}

		candidates := g.collectCandidates()
		if len(candidates) == 0 {
			slog.Info("autolod: no legal collapse remains", "live_nodes", g.LiveCount(), "target", target)
			break
		}

		maxBatch := len(candidates) / profile.BatchDivisor
		applied := 0
		for _, c := range candidates {
			if applied > maxBatch {
				break
			}
			keep, okK := g.nodes[c.vKeep]
			remove, okR := g.nodes[c.vRemove]
			if !okK || !okR {
				continue // removed earlier in this batch
			}
			if keep.dirty || remove.dirty {
				continue
			}
			g.Ecol(c.vKeep, c.vRemove)
			applied++
		}

		slog.Debug("autolod: sweep complete",
			"live_nodes", g.LiveCount(),
			"candidates", len(candidates),
			"applied", applied,
		)
	}

	slog.Info("autolod: decimation finished", "actual_size", g.LiveCount(), "target", target, "base_size", baseSize)
	return g.Facets(), g.LiveCount(), nil
}

// collectCandidates scores every legal, non-horizon collapse from every
// live vertex to every one of its neighbors, returning them sorted
// ascending by (loss, vKeep, vRemove).
func (g *Graph) collectCandidates() []candidate {
	var out []candidate
	for _, v := range g.sortedLiveVertices() {
		n := g.nodes[v]
		neighbors := make([]int, 0, len(n.neighbors))
		for adj := range n.neighbors {
			neighbors = append(neighbors, adj)
		}
		sort.Ints(neighbors)

		for _, adj := range neighbors {
			if _, onHorizon := g.horizonEdges[canonicalPair(v, adj)]; onHorizon {
				continue
			}
			if !g.EcolIsLegal(v, adj) {
				continue
			}
			loss := g.EcolLoss(v, adj)
			if loss < 0 {
				continue
			}
			out = append(out, candidate{loss: loss, vKeep: v, vRemove: adj})
		}
	}

	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
