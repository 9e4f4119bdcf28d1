// SPDX-License-Identifier: MIT
// Package: quadedge/ring
//
// walk.go — walkRing, the bounded step-and-stop traversal VertexOrbit and
// FaceOrbit are built on. Not the same operation as the manifold-wide
// Walk in manifold_walk.go, and deliberately does not share its name.
package ring

import (
	"fmt"

	quadedge "github.com/katalvlaran/quadedge"
)

const methodWalkRing = "walkRing"

// walkRing repeatedly applies step to start until it returns to start, and
// returns the sequence of distinct Nodes visited, in order, beginning with
// start. It is the shared engine behind VertexOrbit (step = Node.Onext) and
// FaceOrbit (step = Node.Lnext).
//
// walkRing never mutates the Manifold start belongs to. If step does not
// return to start within the configured step budget (see WithMaxSteps), it
// returns ErrStepLimitExceeded.
func walkRing[V, F any](start quadedge.Node[V, F], step func(quadedge.Node[V, F]) quadedge.Node[V, F], opts ...Option) ([]quadedge.Node[V, F], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	visited := []quadedge.Node[V, F]{start}
	cur := step(start)
	for cur != start {
		if len(visited) >= cfg.maxSteps {
			return nil, fmt.Errorf("%s: %w", methodWalkRing, ErrStepLimitExceeded)
		}
		visited = append(visited, cur)
		cur = step(cur)
	}
	return visited, nil
}
