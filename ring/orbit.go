// SPDX-License-Identifier: MIT
// Package: quadedge/ring
//
// orbit.go — VertexOrbit and FaceOrbit: the two named rings of interest.
package ring

import quadedge "github.com/katalvlaran/quadedge"

// VertexOrbit returns every edge radiating from n's origin vertex, in
// Onext order, starting with n itself. Its length is the degree of that
// vertex.
func VertexOrbit[V, F any](n quadedge.Node[V, F], opts ...Option) ([]quadedge.Node[V, F], error) {
	return walkRing(n, quadedge.Node[V, F].Onext, opts...)
}

// FaceOrbit returns every edge bounding the face to the left of n, in
// Lnext order, starting with n itself. Its length is the number of edges
// bounding that face.
func FaceOrbit[V, F any](n quadedge.Node[V, F], opts ...Option) ([]quadedge.Node[V, F], error) {
	return walkRing(n, quadedge.Node[V, F].Lnext, opts...)
}
