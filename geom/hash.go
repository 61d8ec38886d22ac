package geom

// hash64 mixes an int index into a well-distributed 64-bit digest, a
// SplitMix64-style finalizer: two xorshift/multiply rounds spread
// low-order bits across the whole word so small, sequential vertex
// indices don't collide in a map.
func hash64(v int) uint64 {
	x := uint64(v) + 0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	x = x ^ (x >> 31)
	return x
}
