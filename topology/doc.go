// SPDX-License-Identifier: MIT
// Package: quadedge/topology
//
// doc.go — package overview.

// Package topology provides canonical building blocks for assembling
// quad-edge structures from nothing, the way builder assembles core.Graph
// values from nothing: each constructor here calls Manifold.MakeEdge and
// Node.Splice a fixed number of times and returns the resulting handles,
// with no dependency on any prior topology.
//
// The package offers:
//
//   - Bigon:   the minimal two-edge, two-vertex, two-face subdivision used
//     to bootstrap incremental algorithms (e.g. Delaunay insertion) that
//     need a starting topology before any point is classified.
//   - Polygon: an n-edge simple cycle — n vertices, n edges, two faces —
//     the quad-edge analogue of builder.Cycle(n).
//
// Guarantees:
//
//   - Deterministic edge emission order: edge i always connects vertex i
//     to vertex (i+1) mod n.
//   - No partial construction on error: Polygon validates n before
//     allocating any edge.
package topology
