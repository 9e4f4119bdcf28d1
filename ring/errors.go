// SPDX-License-Identifier: MIT
// Package: quadedge/ring
//
// errors.go — sentinel errors for the ring package.
package ring

import "errors"

// ErrStepLimitExceeded indicates that VertexOrbit or FaceOrbit took more
// steps than its configured MaxSteps without returning to the starting
// Node. This signals either a ring genuinely longer than expected, or a
// Manifold whose next-pointers have been corrupted outside of
// Splice/MakeEdge/Import.
var ErrStepLimitExceeded = errors.New("ring: step limit exceeded before the ring closed")
