// SPDX-License-Identifier: MIT
// Package: quadedge/ring
//
// doc.go — package overview.

// Package ring implements two distinct kinds of traversal over a Manifold:
// orbit enumeration (the Onext ring of edges sharing a vertex, and the
// Lnext ring of edges bounding a face) and a full-manifold walk over every
// record it owns. It plays the same role for quad-edge topology that dfs
// plays for core.Graph: read-only exploration of a structure that already
// exists, not a builder of new structure.
//
// Key features:
//
//   - VertexOrbit(n): the edges encountered walking Onext from n back to n.
//   - FaceOrbit(n):   the edges encountered walking Lnext from n back to n.
//   - Walk(m):        one Node per QuadRecord m owns, in ordinal order —
//     the full-manifold counterpart of the teacher's
//     DFS(..., WithFullTraversal) mode. Unlike the orbit functions, it
//     never fails: a Manifold's own record list cannot fail to close.
//
// VertexOrbit and FaceOrbit share an unexported bounded step-and-stop
// traversal; this is a separate mechanism from Walk and does not share
// its name.
//
// Complexity: O(k) time and space, where k is the size of the ring or
// manifold walked.
//
// Options (VertexOrbit/FaceOrbit only):
//
//   - WithMaxSteps(limit): caps the walk so a malformed or externally
//     mutated Manifold cannot hang a caller in an infinite loop.
//
// Errors (VertexOrbit/FaceOrbit only):
//
//   - ErrStepLimitExceeded: the ring did not close within the step budget.
package ring
