// Package decimate implements the mesh decimation engine: the half-edge
// collapse graph (Graph), the legality predicate and loss metric
// (EcolIsLegal, EcolLoss), the collapse mutation (Ecol), and the
// batch-ordered scheduler (GenLODMesh).
//
// Graph maintains, per live vertex, its adjacent live vertices and the
// facets currently incident to it. Construction is O(|facets|); Ecol
// mutates only the bounded neighborhood touched by a single collapse.
// GenLODMesh repeatedly scores every legal candidate collapse, applies the
// cheapest independent half in one sweep, and iterates until the target
// vertex count is reached or no legal collapse remains.
//
// Symmetric adjacency, facet/adjacency agreement, and boundary immutability
// hold after construction and after every complete Ecol; CheckLegality
// re-verifies the adjacency invariants for tests and debugging.
package decimate
