package quadedge_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	qe "github.com/katalvlaran/quadedge"
)

type SpliceSuite struct {
	suite.Suite
	m *qe.Manifold[struct{}, struct{}]
}

func (s *SpliceSuite) SetupTest() {
	s.m = qe.NewManifold[struct{}, struct{}]()
}

// TestSelfSpliceOriginDestination asserts scenario S3.
func (s *SpliceSuite) TestSelfSpliceOriginDestination() {
	require := require.New(s.T())

	n0 := s.m.MakeEdge()
	n1 := n0.Rot()
	n2 := n0.Sym()
	n3 := n0.InvRot()

	n0.Splice(n2)

	require.Equal(n2, n0.Onext())
	require.Equal(n1, n1.Onext())
	require.Equal(n0, n2.Onext())
	require.Equal(n3, n3.Onext())
}

// TestSpliceArgumentOrderSymmetric asserts scenario S4: splicing (a,b) or
// (b,a) produces the same resulting table under the obvious renaming.
func (s *SpliceSuite) TestSpliceArgumentOrderSymmetric() {
	require := require.New(s.T())

	q0 := s.m.MakeEdge()
	q0.Splice(q0.Sym())

	m1 := qe.NewManifold[struct{}, struct{}]()
	q1 := m1.MakeEdge()
	q1.Sym().Splice(q1)

	require.Equal(q0.Onext().Index(), q1.Onext().Index())
	require.Equal(q0.Rot().Onext().Index(), q1.Rot().Onext().Index())
	require.Equal(q0.Sym().Onext().Index(), q1.Sym().Onext().Index())
	require.Equal(q0.InvRot().Onext().Index(), q1.InvRot().Onext().Index())
}

// TestSpliceJoinSplitInverse asserts scenario S5 and invariant I3: joining
// two isolated edges then splicing the same pair again restores both to
// their isolated-edge pattern.
func (s *SpliceSuite) TestSpliceJoinSplitInverse() {
	require := require.New(s.T())

	q0 := s.m.MakeEdge()
	q1 := s.m.MakeEdge()

	q0.Splice(q1)

	require.Equal(q1, q0.Onext())
	require.Equal(q1.InvRot(), q0.Rot().Onext())
	require.Equal(q0.Sym(), q0.Sym().Onext())
	require.Equal(q0.Rot(), q0.InvRot().Onext())
	require.Equal(q0, q1.Onext())
	require.Equal(q0.InvRot(), q1.Rot().Onext())
	require.Equal(q1.Sym(), q1.Sym().Onext())
	require.Equal(q1.Rot(), q1.InvRot().Onext())

	// Splice is self-inverse: applying it again restores the isolated
	// pattern for both edges.
	q1.Splice(q0)

	require.Equal(q0, q0.Onext())
	require.Equal(q0.InvRot(), q0.Rot().Onext())
	require.Equal(q0.Sym(), q0.Sym().Onext())
	require.Equal(q0.Rot(), q0.InvRot().Onext())
	require.Equal(q1, q1.Onext())
	require.Equal(q1.InvRot(), q1.Rot().Onext())
	require.Equal(q1.Sym(), q1.Sym().Onext())
	require.Equal(q1.Rot(), q1.InvRot().Onext())
}

// TestSpliceInvolutionOnSingleEdge asserts invariant I3 directly on the
// self-splice case: Splice(a,b) twice is identity, down to every
// next-pointer of the record.
func (s *SpliceSuite) TestSpliceInvolutionOnSingleEdge() {
	require := require.New(s.T())

	n0 := s.m.MakeEdge()
	before := [4]qe.Node[struct{}, struct{}]{n0.Onext(), n0.Rot().Onext(), n0.Sym().Onext(), n0.InvRot().Onext()}

	n0.Splice(n0.Sym())
	n0.Splice(n0.Sym())

	after := [4]qe.Node[struct{}, struct{}]{n0.Onext(), n0.Rot().Onext(), n0.Sym().Onext(), n0.InvRot().Onext()}
	require.Equal(before, after)
}

// TestSpliceParityMismatchPanics asserts precondition I6: Splice requires
// equal parity, surfaced as a *PreconditionError panic.
func (s *SpliceSuite) TestSpliceParityMismatchPanics() {
	n0 := s.m.MakeEdge()

	s.Panics(func() {
		n0.Splice(n0.Rot())
	})
}

// TestSpliceForeignManifoldPanics asserts the cross-Manifold precondition.
func (s *SpliceSuite) TestSpliceForeignManifoldPanics() {
	other := qe.NewManifold[struct{}, struct{}]()
	a := s.m.MakeEdge()
	b := other.MakeEdge()

	s.Panics(func() {
		a.Splice(b)
	})
}

func TestSpliceSuite(t *testing.T) {
	suite.Run(t, new(SpliceSuite))
}
