package decimate

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vertexlab/autolod/geom"
)

// MeshSource supplies the (facets, positions) pair GenLODMesh consumes.
// OBJ parsing and material handling are out of scope; MeshSource is the
// seam an external loader implements.
type MeshSource interface {
	Load() (facets []geom.Facet, positions []mgl64.Vec3, err error)
}

// Remapper compacts a sparse facet/position pair — such as GenLODMesh's
// output, whose positions slice still carries holes for every removed
// vertex — into a dense mesh with contiguous indices. Vertex-index
// remapping itself is out of scope for the core; Remapper is the seam a
// downstream exporter implements.
type Remapper interface {
	Remap(facets []geom.Facet, positions []mgl64.Vec3) (denseFacets []geom.Facet, densePositions []mgl64.Vec3, err error)
}
