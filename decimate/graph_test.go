package decimate_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/vertexlab/autolod/decimate"
	"github.com/vertexlab/autolod/geom"
	"github.com/vertexlab/autolod/horizon"
)

func triangleMesh() ([]geom.Facet, []mgl64.Vec3) {
	positions := []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	facets := []geom.Facet{geom.NewFacet(0, 1, 2)}
	return facets, positions
}

// icosahedronMesh builds a regular icosahedron: 12 vertices, 20 facets,
// closed (no horizon).
func icosahedronMesh() ([]geom.Facet, []mgl64.Vec3) {
	t := (1 + math.Sqrt(5)) / 2

	positions := []mgl64.Vec3{
		{-1, t, 0}, {1, t, 0}, {-1, -t, 0}, {1, -t, 0},
		{0, -1, t}, {0, 1, t}, {0, -1, -t}, {0, 1, -t},
		{t, 0, -1}, {t, 0, 1}, {-t, 0, -1}, {-t, 0, 1},
	}

	facets := []geom.Facet{
		geom.NewFacet(0, 11, 5), geom.NewFacet(0, 5, 1), geom.NewFacet(0, 1, 7),
		geom.NewFacet(0, 7, 10), geom.NewFacet(0, 10, 11),
		geom.NewFacet(1, 5, 9), geom.NewFacet(5, 11, 4), geom.NewFacet(11, 10, 2),
		geom.NewFacet(10, 7, 6), geom.NewFacet(7, 1, 8),
		geom.NewFacet(3, 9, 4), geom.NewFacet(3, 4, 2), geom.NewFacet(3, 2, 6),
		geom.NewFacet(3, 6, 8), geom.NewFacet(3, 8, 9),
		geom.NewFacet(4, 9, 5), geom.NewFacet(2, 4, 11), geom.NewFacet(6, 2, 10),
		geom.NewFacet(8, 6, 7), geom.NewFacet(9, 8, 1),
	}
	return facets, positions
}

func TestNewGraph_SingleTriangle(t *testing.T) {
	r := require.New(t)
	facets, positions := triangleMesh()

	g, err := decimate.NewGraph(facets, positions)
	r.NoError(err)
	r.Equal(3, g.LiveCount())
	r.NoError(g.CheckLegality())

	out := g.Facets()
	r.Len(out, 1)
	r.True(out[0].Equal(facets[0]))
}

func TestNewGraph_OutOfRangeIndex(t *testing.T) {
	r := require.New(t)
	positions := []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}}
	facets := []geom.Facet{geom.NewFacet(0, 1, 2)} // 2 is out of range
	_, err := decimate.NewGraph(facets, positions)
	r.ErrorIs(err, decimate.ErrOutOfRangeIndex)
}

func TestNewGraph_DegenerateFacet(t *testing.T) {
	r := require.New(t)
	positions := []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	facets := []geom.Facet{geom.NewFacet(0, 1, 1)}
	_, err := decimate.NewGraph(facets, positions)
	r.ErrorIs(err, decimate.ErrDegenerateFacet)
}

func TestNewGraph_NonManifoldEdge(t *testing.T) {
	r := require.New(t)
	positions := []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {2, 0, 0}}
	// edge {0,1} shared by three facets
	facets := []geom.Facet{
		geom.NewFacet(0, 1, 2),
		geom.NewFacet(0, 1, 3),
		geom.NewFacet(0, 1, 4),
	}
	_, err := decimate.NewGraph(facets, positions)
	r.ErrorIs(err, decimate.ErrNonManifoldEdge)
}

// pyramidMesh builds a 3-triangle "umbrella": an apex (index 0, interior,
// not on the horizon) surrounded by a base ring of 3 boundary vertices
// (1,2,3). Every ring edge {1,2},{2,3},{3,1} touches exactly one facet
// (horizon); every spoke edge touches exactly two (not horizon).
func pyramidMesh() ([]geom.Facet, []mgl64.Vec3) {
	positions := []mgl64.Vec3{
		{0, 0, 1},         // 0: apex
		{1, 0, 0},         // 1
		{-0.5, 0.866, 0},  // 2
		{-0.5, -0.866, 0}, // 3
	}
	facets := []geom.Facet{
		geom.NewFacet(0, 1, 2),
		geom.NewFacet(0, 2, 3),
		geom.NewFacet(0, 3, 1),
	}
	return facets, positions
}

func TestNewGraph_Pyramid_HorizonExcludesApex(t *testing.T) {
	r := require.New(t)
	facets, positions := pyramidMesh()
	g, err := decimate.NewGraph(facets, positions)
	r.NoError(err)
	r.NoError(g.CheckLegality())

	// The ring edges {1,2},{2,3},{3,1} each touch exactly one facet, so
	// 1, 2 and 3 sit on the horizon; the apex's spoke edges each touch
	// two facets, so 0 does not.
	boundary := horizon.Extract(facets)
	onVert := func(v int) bool {
		for e := range boundary {
			if e.Contains(v) {
				return true
			}
		}
		return false
	}
	r.False(onVert(0))
	r.True(onVert(1))
	r.True(onVert(2))
	r.True(onVert(3))

	// EcolIsLegal must reject every collapse that removes a boundary
	// vertex, regardless of which vertex is kept.
	r.False(g.EcolIsLegal(0, 1))
	r.False(g.EcolIsLegal(2, 3))
	// ...but removing the apex into a ring vertex is a candidate.
	r.True(g.EcolIsLegal(1, 0))
}
