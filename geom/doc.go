// Package geom defines the order-independent triangle-mesh primitives used
// by horizon and decimate: Edge and Facet value types, face-normal and
// triangle-area helpers built on mgl64.Vec3, and a mesh bounding-box
// diagonal helper.
//
// Edge and Facet compare and hash as unordered index sets: {a,b} == {b,a}
// and {i,j,k} == {k,j,i}. Facet.Replace preserves the stored index order
// of the other two slots, since face-normal orientation depends on the
// order in which a facet's indices are stored even though facet identity
// does not.
package geom
