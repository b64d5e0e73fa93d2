package submatch_test

import (
	"testing"

	"github.com/katalvlaran/submatch/molgraph"
	"github.com/katalvlaran/submatch/submatch"
	"github.com/stretchr/testify/require"
)

// buildChain builds a straight chain of n carbon atoms, C-C-C-...-C.
func buildChain(t *testing.T, n int) *molgraph.Molecule {
	m := molgraph.NewMolecule()
	var prev molgraph.AtomHandle
	for i := 0; i < n; i++ {
		a, err := m.AddAtom("C")
		require.NoError(t, err)
		if i > 0 {
			_, err = m.AddBond(prev, a)
			require.NoError(t, err)
		}
		prev = a
	}
	return m
}

func drainAll(t *testing.T, m *submatch.Matcher) [][]molgraph.AtomHandle {
	var maps [][]molgraph.AtomHandle
	for {
		match, err := m.NextMatch()
		require.NoError(t, err)
		if match == nil {
			return maps
		}
		maps = append(maps, match.VertexMap)
	}
}

// TestScenario1OverlapTruePermuteFalse matches every shifted window of
// CCCC, overlap=true, permute=false.
func TestScenario1OverlapTruePermuteFalse(t *testing.T) {
	pattern := buildChain(t, 2)
	target := buildChain(t, 4)

	m, err := submatch.NewMatcher(pattern, submatch.WithOverlap(true), submatch.WithPermute(false))
	require.NoError(t, err)
	require.NoError(t, m.Bind(target))

	maps := drainAll(t, m)
	require.Equal(t, [][]molgraph.AtomHandle{{1, 2}, {2, 3}, {3, 4}}, maps)
}

// TestScenario2OverlapFalsePermuteFalse matches disjoint windows of
// CCCC, overlap=false, permute=false.
func TestScenario2OverlapFalsePermuteFalse(t *testing.T) {
	pattern := buildChain(t, 2)
	target := buildChain(t, 4)

	m, err := submatch.NewMatcher(pattern, submatch.WithOverlap(false), submatch.WithPermute(false))
	require.NoError(t, err)
	require.NoError(t, m.Bind(target))

	maps := drainAll(t, m)
	require.Equal(t, [][]molgraph.AtomHandle{{1, 2}, {3, 4}}, maps)
}

// TestScenario3OverlapTruePermuteTrue matches both orientations of
// overlap=true, permute=true.
func TestScenario3OverlapTruePermuteTrue(t *testing.T) {
	pattern := buildChain(t, 2)
	target := buildChain(t, 2)

	m, err := submatch.NewMatcher(pattern, submatch.WithOverlap(true), submatch.WithPermute(true))
	require.NoError(t, err)
	require.NoError(t, m.Bind(target))

	maps := drainAll(t, m)
	require.Equal(t, [][]molgraph.AtomHandle{{1, 2}, {2, 1}}, maps)
}

// TestScenario4OverlapTruePermuteFalse matches one canonical orientation of
// overlap=true, permute=false.
func TestScenario4OverlapTruePermuteFalse(t *testing.T) {
	pattern := buildChain(t, 2)
	target := buildChain(t, 2)

	m, err := submatch.NewMatcher(pattern, submatch.WithOverlap(true), submatch.WithPermute(false))
	require.NoError(t, err)
	require.NoError(t, m.Bind(target))

	maps := drainAll(t, m)
	require.Equal(t, [][]molgraph.AtomHandle{{1, 2}}, maps)
}

// TestScenario6NoLabelMatch verifies that pattern CN has no
// match anywhere in target CCO since no atom is labeled N.
func TestScenario6NoLabelMatch(t *testing.T) {
	pattern := molgraph.NewMolecule()
	c, _ := pattern.AddAtom("C")
	n, _ := pattern.AddAtom("N")
	_, err := pattern.AddBond(c, n)
	require.NoError(t, err)

	target := buildChain(t, 2)
	o, err := target.AddAtom("O")
	require.NoError(t, err)
	_, err = target.AddBond(2, o)
	require.NoError(t, err)

	m, err := submatch.NewMatcher(pattern)
	require.NoError(t, err)
	require.NoError(t, m.Bind(target))

	match, err := m.NextMatch()
	require.NoError(t, err)
	require.Nil(t, match)
}

func TestNewMatcherRejectsEmptyPattern(t *testing.T) {
	_, err := submatch.NewMatcher(molgraph.NewMolecule())
	require.ErrorIs(t, err, submatch.ErrEmptyPattern)
}

func TestBindRejectsNilTarget(t *testing.T) {
	m, err := submatch.NewMatcher(buildChain(t, 1))
	require.NoError(t, err)
	require.ErrorIs(t, m.Bind(nil), submatch.ErrNilTarget)
}

func TestNextMatchRejectsUnboundMatcher(t *testing.T) {
	m, err := submatch.NewMatcher(buildChain(t, 1))
	require.NoError(t, err)

	_, err = m.NextMatch()
	require.ErrorIs(t, err, submatch.ErrNotBound)
}

func TestNewMatcherRejectsPredicateForUnknownPatternAtom(t *testing.T) {
	pattern := buildChain(t, 1)
	_, err := submatch.NewMatcher(pattern, submatch.WithVertexPredicate(99, nil))
	require.ErrorIs(t, err, submatch.ErrInvalidPredicateTarget)
}

// TestRebindRestartsIteration verifies that Bind can be called again on
// the same Matcher to search a different target from scratch.
func TestRebindRestartsIteration(t *testing.T) {
	pattern := buildChain(t, 2)

	m, err := submatch.NewMatcher(pattern, submatch.WithOverlap(false))
	require.NoError(t, err)

	require.NoError(t, m.Bind(buildChain(t, 4)))
	require.Len(t, drainAll(t, m), 2)

	require.NoError(t, m.Bind(buildChain(t, 2)))
	require.Len(t, drainAll(t, m), 1)
}
