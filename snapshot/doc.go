// SPDX-License-Identifier: MIT
// Package: quadedge/snapshot
//
// doc.go — package overview.

// Package snapshot provides a read-only, flattened view of a Manifold, the
// way core's view.go provides UnweightedView and InducedSubgraph as
// non-mutating projections of a Graph. Manifold deliberately exposes no
// raw arena access (only Node handles and the Splice/MakeEdge operators),
// so snapshot is the supported way to inspect one: enumerate its vertices,
// faces, and primal edges without reaching into internals.
//
// A Snapshot is never consulted by the core algebra; it exists for tests,
// debugging, and downstream callers — e.g. a Delaunay triangulator that
// wants to print or render the subdivision it has built.
package snapshot
