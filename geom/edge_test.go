package geom_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vertexlab/autolod/geom"
)

// TestEdge_EqualIsOrderIndependent verifies the hashing precondition: an
// Edge{a,b} and Edge{b,a} must compare and hash identically so horizon
// classification and legality lookups don't miss reversed endpoints.
func TestEdge_EqualIsOrderIndependent(t *testing.T) {
	r := require.New(t)

	e1 := geom.NewEdge(3, 7)
	e2 := geom.NewEdge(7, 3)

	r.True(e1.Equal(e2))
	r.Equal(e1.Key(), e2.Key())
	r.Equal(geom.CanonicalEdge(e1), geom.CanonicalEdge(e2))
}

func TestEdge_Contains(t *testing.T) {
	r := require.New(t)
	e := geom.NewEdge(1, 2)
	r.True(e.Contains(1))
	r.True(e.Contains(2))
	r.False(e.Contains(3))
}

func TestEdge_NotEqualDifferentPairs(t *testing.T) {
	r := require.New(t)
	r.False(geom.NewEdge(1, 2).Equal(geom.NewEdge(1, 3)))
}
