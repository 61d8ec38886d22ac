package geom

import "github.com/go-gl/mathgl/mgl64"

// FaceNormal returns the unit normal of the triangle (p0,p1,p2), pointing
// per the right-hand rule for the stored winding order.
//
// Complexity: O(1).
func FaceNormal(p0, p1, p2 mgl64.Vec3) mgl64.Vec3 {
	e1 := p1.Sub(p0)
	e2 := p2.Sub(p0)
	n := e1.Cross(e2)
	if n.Len() == 0 {
		return n // degenerate triangle: undefined normal, returned as the zero vector
	}
	return n.Normalize()
}

// TriArea returns the area of the triangle (p0,p1,p2).
//
// Complexity: O(1).
func TriArea(p0, p1, p2 mgl64.Vec3) float64 {
	e1 := p1.Sub(p0)
	e2 := p2.Sub(p0)
	return 0.5 * e1.Cross(e2).Len()
}

// BoundsDiagonal returns the length of the diagonal of the axis-aligned
// bounding box enclosing positions. Returns 0 for an empty slice.
//
// Complexity: O(n).
func BoundsDiagonal(positions []mgl64.Vec3) float64 {
	if len(positions) == 0 {
		return 0
	}
	min, max := positions[0], positions[0]
	for _, p := range positions[1:] {
		for axis := 0; axis < 3; axis++ {
			if p[axis] < min[axis] {
				min[axis] = p[axis]
			}
			if p[axis] > max[axis] {
				max[axis] = p[axis]
			}
		}
	}
	return max.Sub(min).Len()
}
