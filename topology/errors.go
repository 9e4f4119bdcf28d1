// SPDX-License-Identifier: MIT
// Package: quadedge/topology
//
// errors.go — sentinel errors for the topology package.
//
// Error policy, inherited from the core package:
//   - Only sentinel variables are exposed.
//   - Callers use errors.Is(err, ErrX) to branch on semantics.
//   - Context is attached with %w wrapping at the call site, never baked
//     into the sentinel's own message.
package topology

import "errors"

// ErrTooFewEdges indicates that Polygon was asked for fewer edges than the
// minimum needed to form a simple polygon (a cycle with distinct faces on
// each side).
var ErrTooFewEdges = errors.New("topology: too few edges for a polygon")
