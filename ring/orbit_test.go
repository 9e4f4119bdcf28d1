package ring_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	quadedge "github.com/katalvlaran/quadedge"
	"github.com/katalvlaran/quadedge/ring"
	"github.com/katalvlaran/quadedge/topology"
)

type OrbitSuite struct {
	suite.Suite
}

// TestVertexOrbitOnIsolatedEdge asserts each endpoint of a freshly made
// edge is a singleton vertex orbit.
func (s *OrbitSuite) TestVertexOrbitOnIsolatedEdge() {
	require := require.New(s.T())

	m := quadedge.NewManifold[struct{}, struct{}]()
	n0 := m.MakeEdge()

	orig, err := ring.VertexOrbit(n0)
	require.NoError(err)
	require.Equal([]quadedge.Node[struct{}, struct{}]{n0}, orig)

	dest, err := ring.VertexOrbit(n0.Sym())
	require.NoError(err)
	require.Equal([]quadedge.Node[struct{}, struct{}]{n0.Sym()}, dest)
}

// TestVertexOrbitOnPolygon asserts every vertex of an n-gon has degree 2
// (one edge in, one edge out) in its vertex orbit.
func (s *OrbitSuite) TestVertexOrbitOnPolygon() {
	require := require.New(s.T())

	m := quadedge.NewManifold[struct{}, struct{}]()
	edges, err := topology.Polygon(m, 5)
	require.NoError(err)

	for i, e := range edges {
		orbit, err := ring.VertexOrbit(e)
		require.NoError(err)
		require.Len(orbit, 2, "vertex %d must have degree 2", i)
		require.Contains(orbit, e)
	}
}

// TestFaceOrbitOnPolygon asserts the inside face of an n-gon is bounded by
// all n edges.
func (s *OrbitSuite) TestFaceOrbitOnPolygon() {
	require := require.New(s.T())

	m := quadedge.NewManifold[struct{}, struct{}]()
	edges, err := topology.Polygon(m, 5)
	require.NoError(err)

	face, err := ring.FaceOrbit(edges[0])
	require.NoError(err)
	require.Len(face, 5)
}

// TestVertexOrbitStepLimitExceeded asserts a tight step budget surfaces
// ErrStepLimitExceeded rather than looping forever, using a ring larger
// than the configured limit.
func (s *OrbitSuite) TestVertexOrbitStepLimitExceeded() {
	require := require.New(s.T())

	m := quadedge.NewManifold[struct{}, struct{}]()
	edges, err := topology.Polygon(m, 10)
	require.NoError(err)

	_, err = ring.VertexOrbit(edges[0], ring.WithMaxSteps(1))
	require.ErrorIs(err, ring.ErrStepLimitExceeded)
}

func TestOrbitSuite(t *testing.T) {
	suite.Run(t, new(OrbitSuite))
}
