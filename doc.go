// Package quadedge implements the quad-edge data structure of Guibas and
// Stolfi (1985): a topological representation of the edges, vertices, and
// faces of a subdivision of a 2-manifold.
//
// It is the algebraic substrate underneath algorithms like Delaunay
// triangulation, Voronoi diagram construction, and polygon subdivision —
// none of which live here. This package provides exactly the primal/dual
// edge algebra and the one mutator (Splice) that such algorithms are built
// from, plus the arena that owns the structure and a persistence format
// that survives a round trip without losing identity across the structure's
// inherently cyclic pointer graph.
//
// Three layers, leaves first:
//
//	QuadRecord[V, F] — a four-slot record: one undirected edge and its dual.
//	Node[V, F]       — an immutable (record, position) handle; all the
//	                    algebra (Rot, Sym, InvRot, Onext, …) is defined here.
//	Manifold[V, F]   — owns the arena of QuadRecords, assigns each a stable
//	                    ordinal, and is the only way to mint a new edge.
//
// Vertex payloads (type V) live at even positions, face payloads (type F)
// at odd positions — see Node.SetVertex / Node.SetFace. Both are opaque to
// this package; it never interprets them.
//
// Splice is the sole topological mutator. It is its own inverse: calling it
// twice on the same pair of Nodes restores the prior state exactly. Everything
// else here — Rot, Sym, InvRot, Onext and the derived ring walks Oprev, Dnext,
// Dprev, Lnext, Lprev, Rnext, Rprev — is pure and O(1).
//
// Subpackages built on top, none consulted by the core algebra itself:
//
//	topology/ — canonical subdivision constructors (Bigon, Polygon)
//	ring/     — orbit enumeration (VertexOrbit, FaceOrbit, Walk)
//	snapshot/ — flattens a Manifold into inspectable vertex/edge/face lists
//
// A Manifold is not safe for concurrent mutation: Splice, MakeEdge, and
// Import must not run concurrently with each other or with a read. Concurrent
// read-only traversal of a quiescent Manifold is fine.
package quadedge
