// SPDX-License-Identifier: MIT
// File: payload.go
// Role: Vertex/face payload attachment. Even positions (0,2) carry the
// vertex payload (type V) — position 0 is the Origin, position 2 the
// Destination. Odd positions (1,3) carry the face payload (type F) —
// position 1 is the Right face, position 3 the Left face.
package quadedge

// SetVertex attaches v as the vertex payload at n, which must be an even
// position (0 or 2). Calling it on an odd position is a precondition
// violation (panic), since odd positions carry face payloads.
func (n Node[V, F]) SetVertex(v V) {
	n.requireNonZero("SetVertex")
	if n.idx%2 != 0 {
		precondition("SetVertex", "called on an odd (face-carrying) position")
	}
	n.rec.vertex[n.idx/2] = v
}

// Vertex returns the vertex payload at n, which must be an even position.
func (n Node[V, F]) Vertex() V {
	n.requireNonZero("Vertex")
	if n.idx%2 != 0 {
		precondition("Vertex", "called on an odd (face-carrying) position")
	}
	return n.rec.vertex[n.idx/2]
}

// SetFace attaches f as the face payload at n, which must be an odd
// position (1 or 3). Calling it on an even position is a precondition
// violation (panic), since even positions carry vertex payloads.
func (n Node[V, F]) SetFace(f F) {
	n.requireNonZero("SetFace")
	if n.idx%2 != 1 {
		precondition("SetFace", "called on an even (vertex-carrying) position")
	}
	n.rec.face[n.idx/2] = f
}

// Face returns the face payload at n, which must be an odd position.
func (n Node[V, F]) Face() F {
	n.requireNonZero("Face")
	if n.idx%2 != 1 {
		precondition("Face", "called on an even (vertex-carrying) position")
	}
	return n.rec.face[n.idx/2]
}
