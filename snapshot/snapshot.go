// SPDX-License-Identifier: MIT
// Package: quadedge/snapshot
//
// snapshot.go — Of, and the Vertex/Face/Edge projections it produces.
package snapshot

import (
	quadedge "github.com/katalvlaran/quadedge"
	"github.com/katalvlaran/quadedge/ring"
)

// Vertex is a read-only projection of one vertex ring. ID is the ordinal
// of the orbit's representative Node's record — stable for the lifetime
// of this Snapshot, but not a durable vertex identity: a later Splice on
// the live Manifold can merge or split the ring this ID was assigned to.
type Vertex[V any] struct {
	ID      int
	Payload V
}

// Face is the dual of Vertex: a read-only projection of one face ring.
type Face[F any] struct {
	ID      int
	Payload F
}

// Edge is one primal QuadRecord, reduced to the two vertex IDs (from
// this same Snapshot's Vertices) it connects.
type Edge struct {
	Ordinal  int
	OriginID int
	DestID   int
}

// Snapshot is a flattened, point-in-time view of a Manifold: its distinct
// vertices, its distinct faces, and its primal edges, each already
// deduplicated across the orbits that share them.
type Snapshot[V, F any] struct {
	Vertices []Vertex[V]
	Faces    []Face[F]
	Edges    []Edge
}

// Of walks m's records (via ring.Walk) and every vertex and face ring (via
// ring.VertexOrbit / ring.FaceOrbit) once, and produces a Snapshot. m is
// not mutated.
//
// Of never silently swallows an orbit failure: if a Manifold's
// next-pointers have been corrupted (outside of Splice/MakeEdge/Import) so
// that a ring never closes, VertexOrbit/FaceOrbit's ErrStepLimitExceeded
// is returned immediately and no Snapshot is produced — a non-closing ring
// makes the result meaningless, not merely incomplete.
//
// Complexity: O(n) time and space, where n = m.Len().
func Of[V, F any](m *quadedge.Manifold[V, F]) (Snapshot[V, F], error) {
	records := ring.Walk(m)

	vertexID := make(map[quadedge.Node[V, F]]int, len(records)*2)
	faceID := make(map[quadedge.Node[V, F]]int, len(records)*2)

	var out Snapshot[V, F]

	assignVertex := func(node quadedge.Node[V, F]) (int, error) {
		if id, ok := vertexID[node]; ok {
			return id, nil
		}
		orbit, err := ring.VertexOrbit(node)
		if err != nil {
			return 0, err
		}
		id := node.Record().Ordinal()
		out.Vertices = append(out.Vertices, Vertex[V]{ID: id, Payload: node.Vertex()})
		for _, member := range orbit {
			vertexID[member] = id
		}
		return id, nil
	}

	assignFace := func(node quadedge.Node[V, F]) error {
		if _, ok := faceID[node]; ok {
			return nil
		}
		// node is a dual Node whose origin is the face; node.Rot() is the
		// primal edge with that face on its left, so the face's dual Nodes
		// are the InvRot of every edge in that edge's Lnext orbit.
		orbit, err := ring.FaceOrbit(node.Rot())
		if err != nil {
			return err
		}
		id := node.Record().Ordinal()
		out.Faces = append(out.Faces, Face[F]{ID: id, Payload: node.Face()})
		for _, member := range orbit {
			faceID[member.InvRot()] = id
		}
		return nil
	}

	out.Edges = make([]Edge, len(records))
	for i, origin := range records {
		dest := origin.Sym()

		originID, err := assignVertex(origin)
		if err != nil {
			return Snapshot[V, F]{}, err
		}
		destID, err := assignVertex(dest)
		if err != nil {
			return Snapshot[V, F]{}, err
		}
		out.Edges[i] = Edge{Ordinal: i, OriginID: originID, DestID: destID}

		if err := assignFace(origin.Rot()); err != nil {
			return Snapshot[V, F]{}, err
		}
		if err := assignFace(origin.InvRot()); err != nil {
			return Snapshot[V, F]{}, err
		}
	}

	return out, nil
}
