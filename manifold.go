// SPDX-License-Identifier: MIT
// File: manifold.go
// Role: Manifold — the arena that owns QuadRecords and the only way to
// mint a new edge. Mirrors the teacher package's functional-options
// constructor idiom (GraphOption / BuilderOption) as ManifoldOption.
package quadedge

// ManifoldOption configures a Manifold at construction time.
type ManifoldOption func(*manifoldConfig)

type manifoldConfig struct {
	capacityHint int
}

// WithCapacityHint pre-sizes the Manifold's record arena for n edges,
// avoiding reallocation when the final size is known in advance. Purely a
// performance hint; n <= 0 is ignored.
func WithCapacityHint(n int) ManifoldOption {
	return func(c *manifoldConfig) { c.capacityHint = n }
}

// Manifold owns an arena of QuadRecords and assigns each a stable ordinal
// equal to its position in insertion order — the identity Export/Import
// round-trip on. It never exposes a raw QuadRecord pointer to callers;
// every QuadRecord is reached only through a Node.
//
// Manifold is not safe for concurrent mutation (see the package doc); it
// carries no internal lock, matching its Non-goal of concurrent mutation
// support.
type Manifold[V, F any] struct {
	records []*QuadRecord[V, F]
}

// NewManifold creates an empty Manifold.
func NewManifold[V, F any](opts ...ManifoldOption) *Manifold[V, F] {
	cfg := manifoldConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	m := &Manifold[V, F]{}
	if cfg.capacityHint > 0 {
		m.records = make([]*QuadRecord[V, F], 0, cfg.capacityHint)
	}
	return m
}

// Len returns the number of QuadRecords this Manifold owns.
func (m *Manifold[V, F]) Len() int { return len(m.records) }

// MakeEdge allocates a new QuadRecord in the arena and returns the Node at
// its position 0. The record is initialized as an isolated edge: a ring of
// exactly four positions whose origin and destination are distinct
// single-vertex cycles and whose left and right faces are the same single
// face — the identity element for topology building (invariant pattern in
// spec scenario S1):
//
//	Onext(q,0) = (q,0)
//	Onext(q,1) = (q,3)
//	Onext(q,2) = (q,2)
//	Onext(q,3) = (q,1)
//
// MakeEdge is O(1) and never fails.
func (m *Manifold[V, F]) MakeEdge() Node[V, F] {
	rec := &QuadRecord[V, F]{owner: m, ordinal: len(m.records)}
	rec.next[0] = nodeAt(rec, 0)
	rec.next[1] = nodeAt(rec, 3)
	rec.next[2] = nodeAt(rec, 2)
	rec.next[3] = nodeAt(rec, 1)
	m.records = append(m.records, rec)
	return nodeAt(rec, 0)
}

// allocRecord allocates a new QuadRecord with all four next-pointers left
// as the zero Node (uninitialized). Used only by Import's two-phase
// construction, where slots are wired in a second pass once every ordinal
// in the input is known to exist.
func (m *Manifold[V, F]) allocRecord() *QuadRecord[V, F] {
	rec := &QuadRecord[V, F]{owner: m, ordinal: len(m.records)}
	m.records = append(m.records, rec)
	return rec
}

// At returns the Node at position 0 of the record with the given ordinal.
// It panics with a *PreconditionError if ordinal is out of range — this is
// a convenience for callers holding an ordinal from a Snapshot or from
// Export output, not part of the core algebra.
func (m *Manifold[V, F]) At(ordinal int) Node[V, F] {
	if ordinal < 0 || ordinal >= len(m.records) {
		precondition("At", "ordinal out of range")
	}
	return nodeAt(m.records[ordinal], 0)
}
