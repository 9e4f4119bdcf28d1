// SPDX-License-Identifier: MIT
// Package: quadedge/ring
//
// types.go — options and shared types for ring traversal.
package ring

// defaultMaxSteps bounds VertexOrbit/FaceOrbit when the caller supplies no
// explicit limit. It is generous relative to any ring arising from
// MakeEdge/Splice/Import of a reasonably sized Manifold, while still
// catching a genuinely broken next-pointer cycle rather than hanging
// forever.
const defaultMaxSteps = 1 << 20

// Option configures a VertexOrbit or FaceOrbit call.
type Option func(*config)

type config struct {
	maxSteps int
}

func defaultConfig() config {
	return config{maxSteps: defaultMaxSteps}
}

// WithMaxSteps overrides the step budget VertexOrbit/FaceOrbit are allowed
// before giving up and returning ErrStepLimitExceeded. A non-positive
// limit is ignored and the default is retained.
func WithMaxSteps(limit int) Option {
	return func(c *config) {
		if limit > 0 {
			c.maxSteps = limit
		}
	}
}
