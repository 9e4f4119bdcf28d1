// SPDX-License-Identifier: MIT
// File: node.go
// Role: The Node operator algebra — Rot, Sym, InvRot, Onext, and the seven
// derived ring-walk operators. All are pure, total, and O(1); none mutate.
package quadedge

// Rot returns the dual of n: rotate one quarter-turn counter-clockwise.
// Rot^4 is the identity (invariant I1).
func (n Node[V, F]) Rot() Node[V, F] {
	n.requireNonZero("Rot")
	return nodeAt(n.rec, mod4(n.idx+1))
}

// Sym returns the same undirected edge as n, directed the other way.
// Sym(n) == Rot(Rot(n)).
func (n Node[V, F]) Sym() Node[V, F] {
	n.requireNonZero("Sym")
	return nodeAt(n.rec, mod4(n.idx+2))
}

// InvRot returns the inverse dual rotation: a quarter-turn clockwise.
// InvRot(n) == Rot(Rot(Rot(n))).
func (n Node[V, F]) InvRot() Node[V, F] {
	n.requireNonZero("InvRot")
	return nodeAt(n.rec, mod4(n.idx+3))
}

// Onext returns the next edge counter-clockwise around the origin of n —
// the stored next-pointer at n's position. Onext never changes primal/dual
// kind (invariant I2): Onext of an even position is even, of an odd
// position is odd.
func (n Node[V, F]) Onext() Node[V, F] {
	n.requireNonZero("Onext")
	return n.rec.next[n.idx]
}

// setNext stores target as the next-pointer at n's position. Unexported:
// only Splice and Manifold.Import touch the next-pointers directly.
func (n Node[V, F]) setNext(target Node[V, F]) {
	n.rec.next[n.idx] = target
}

// Oprev returns the previous edge (clockwise) around the origin of n.
// Oprev = Rot ∘ Onext ∘ Rot.
func (n Node[V, F]) Oprev() Node[V, F] {
	return n.Rot().Onext().Rot()
}

// Dnext returns the next edge around the destination of n.
// Dnext = Sym ∘ Onext ∘ Sym.
func (n Node[V, F]) Dnext() Node[V, F] {
	return n.Sym().Onext().Sym()
}

// Dprev returns the previous edge around the destination of n.
// Dprev = InvRot ∘ Onext ∘ InvRot.
func (n Node[V, F]) Dprev() Node[V, F] {
	return n.InvRot().Onext().InvRot()
}

// Lnext returns the next edge, counter-clockwise, around the left face of n.
// Lnext = Rot ∘ Onext ∘ InvRot.
func (n Node[V, F]) Lnext() Node[V, F] {
	return n.InvRot().Onext().Rot()
}

// Lprev returns the previous edge around the left face of n.
// Lprev = Sym ∘ Onext.
func (n Node[V, F]) Lprev() Node[V, F] {
	return n.Onext().Sym()
}

// Rnext returns the next edge, counter-clockwise, around the right face of n.
// Rnext = InvRot ∘ Onext ∘ Rot.
func (n Node[V, F]) Rnext() Node[V, F] {
	return n.Rot().Onext().InvRot()
}

// Rprev returns the previous edge around the right face of n.
// Rprev = Onext ∘ Sym.
func (n Node[V, F]) Rprev() Node[V, F] {
	return n.Sym().Onext()
}
