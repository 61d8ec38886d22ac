package geom

// Edge is an unordered pair of point indices. Two Edges are equal
// regardless of which endpoint is stored in A and which in B.
type Edge struct {
	A, B int
}

// NewEdge builds an Edge from two distinct point indices.
func NewEdge(a, b int) Edge {
	return Edge{A: a, B: b}
}

// Equal reports whether e and other share the same unordered endpoint pair.
func (e Edge) Equal(other Edge) bool {
	return (e.A == other.A && e.B == other.B) || (e.A == other.B && e.B == other.A)
}

// Contains reports whether pt is one of the edge's two endpoints.
func (e Edge) Contains(pt int) bool {
	return pt == e.A || pt == e.B
}

// Key returns an order-independent hash of the edge's two endpoints:
// swapping A and B leaves it unchanged.
func (e Edge) Key() uint64 {
	return hash64(e.A) ^ hash64(e.B)
}

// CanonicalEdge returns e with endpoints ordered so that A <= B, giving a
// single struct representative for the unordered pair. Use this as a map
// key when Edge identity (not just its hash) must be order-independent.
func CanonicalEdge(e Edge) Edge {
	if e.A <= e.B {
		return e
	}
	return Edge{A: e.B, B: e.A}
}
