// SPDX-License-Identifier: MIT
// File: splice.go
// Role: Splice — the sole topological mutator of the quad-edge algebra.
package quadedge

// Splice combines or splits the edge rings around the origins of n and
// other, and, independently, the face rings to their left. If the two
// origin rings are distinct, Splice merges them into one (joining two
// vertices); if they are the same ring, Splice breaks it into two (one
// vertex becomes two). The dual exchange does the same for the two face
// rings. See Guibas and Stolfi (1985) p.96.
//
// Splice is its own inverse: Splice(n, other) applied twice, with the same
// two Nodes, restores every next-pointer of every QuadRecord involved to
// its prior state (invariant I3).
//
// Preconditions (panic with *PreconditionError on violation, per this
// package's error taxonomy — these are programmer errors, not recoverable
// ones):
//   - n and other must have indices of equal parity (both even or both
//     odd); Splice is only defined within one of the two dual rings.
//   - n and other must belong to QuadRecords owned by the same Manifold.
//
// Splice is O(1).
func (n Node[V, F]) Splice(other Node[V, F]) {
	n.requireNonZero("Splice")
	other.requireNonZero("Splice")

	if n.idx%2 != other.idx%2 {
		precondition("Splice", "operands have unequal parity")
	}
	if n.rec.owner != other.rec.owner {
		precondition("Splice", "operands belong to different Manifolds")
	}

	// alpha/beta are the duals of the current successors of n/other,
	// captured before either ring is touched.
	alpha := n.Onext().Rot()
	beta := other.Onext().Rot()

	nNext := n.Onext()
	otherNext := other.Onext()
	alphaNext := alpha.Onext()
	betaNext := beta.Onext()

	n.setNext(otherNext)
	other.setNext(nNext)
	alpha.setNext(betaNext)
	beta.setNext(alphaNext)
}
