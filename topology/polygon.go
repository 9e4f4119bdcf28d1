// SPDX-License-Identifier: MIT
// Package: quadedge/topology
//
// polygon.go — Bigon and Polygon constructors.
//
// Contract:
//   - Polygon requires n >= minPolygonEdges (else ErrTooFewEdges).
//   - Edges are allocated in ascending index order via m.MakeEdge().
//   - Edge i's destination is spliced to edge (i+1 mod n)'s origin, in
//     ascending i, closing the ring on the final iteration.
//   - Never panics on bad n; MakeEdge/Splice preconditions cannot be
//     violated by construction since every Node passed to Splice comes
//     from m itself.
//
// Complexity: O(n) time, O(n) space for both constructors.
package topology

import (
	"fmt"

	quadedge "github.com/katalvlaran/quadedge"
)

// File-local constants (stable method tag for wrapped errors).
const (
	methodPolygon   = "Polygon"
	minPolygonEdges = 3
	bigonEdgeCount  = 2
)

// Bigon returns the minimal two-edge topology: two vertices joined by a
// pair of parallel edges, bounding two faces. It is the canonical starting
// point for incremental algorithms (e.g. Delaunay insertion) that require
// some topology to exist before the first point is classified.
//
// Bigon never fails: two freshly made edges always splice cleanly.
func Bigon[V, F any](m *quadedge.Manifold[V, F]) []quadedge.Node[V, F] {
	edges := makeRing[V, F](m, bigonEdgeCount)
	closeRing(edges)
	return edges
}

// Polygon returns a Constructor-free, direct build of an n-edge simple
// cycle: n vertices, n edges, and (topologically) two faces, one on each
// side of the ring. It is the quad-edge analogue of builder.Cycle(n).
//
// Polygon validates n before allocating any edge: on error, m is left
// completely unmodified.
func Polygon[V, F any](m *quadedge.Manifold[V, F], n int) ([]quadedge.Node[V, F], error) {
	if n < minPolygonEdges {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPolygon, n, minPolygonEdges, ErrTooFewEdges)
	}

	edges := makeRing[V, F](m, n)
	closeRing(edges)
	return edges, nil
}

// makeRing allocates n fresh edges from m, in ascending order.
func makeRing[V, F any](m *quadedge.Manifold[V, F], n int) []quadedge.Node[V, F] {
	edges := make([]quadedge.Node[V, F], n)
	for i := 0; i < n; i++ {
		edges[i] = m.MakeEdge()
	}
	return edges
}

// closeRing splices edge i's destination onto edge (i+1 mod n)'s origin,
// for every i in ascending order, turning an array of isolated edges into
// a single closed polygonal ring.
func closeRing[V, F any](edges []quadedge.Node[V, F]) {
	n := len(edges)
	for i := 0; i < n; i++ {
		edges[i].Sym().Splice(edges[(i+1)%n])
	}
}
