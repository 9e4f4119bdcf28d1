// SPDX-License-Identifier: MIT
// Package: quadedge/ring
//
// manifold_walk.go — Walk: the full-manifold counterpart of the teacher's
// DFS(..., WithFullTraversal) mode.
package ring

import quadedge "github.com/katalvlaran/quadedge"

// Walk returns one Node per QuadRecord m owns — position 0 of each — in
// ordinal (insertion) order. Unlike VertexOrbit/FaceOrbit it does not
// traverse any next-pointer ring: since a Manifold already tracks every
// record it owns, no connectivity search is needed, just an ordinal walk
// over Manifold.At.
//
// Walk is total: a Manifold's own record list cannot fail to enumerate,
// so there is no error to report.
func Walk[V, F any](m *quadedge.Manifold[V, F]) []quadedge.Node[V, F] {
	n := m.Len()
	nodes := make([]quadedge.Node[V, F], n)
	for i := 0; i < n; i++ {
		nodes[i] = m.At(i)
	}
	return nodes
}
