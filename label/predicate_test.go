package label_test

import (
	"testing"

	"github.com/katalvlaran/submatch/label"
	"github.com/katalvlaran/submatch/molgraph"
	"github.com/stretchr/testify/require"
)

func TestDefaultVertexPredicateElementEquality(t *testing.T) {
	m := molgraph.NewMolecule()
	c, _ := m.AddAtom("C")
	n, _ := m.AddAtom("N")
	c2, _ := m.AddAtom("C")

	require.True(t, label.DefaultVertexPredicate(c, c2, m, m))
	require.False(t, label.DefaultVertexPredicate(c, n, m, m))
}

func TestDefaultEdgePredicateOrderEquality(t *testing.T) {
	m := molgraph.NewMolecule()
	a1, _ := m.AddAtom("C")
	a2, _ := m.AddAtom("C")
	a3, _ := m.AddAtom("O")
	single, _ := m.AddBond(a1, a2)
	double, _ := m.AddBond(a1, a3, molgraph.WithOrder(molgraph.Double))

	require.True(t, label.DefaultEdgePredicate(single, single, m, m))
	require.False(t, label.DefaultEdgePredicate(single, double, m, m))
}

func TestPredicateSetResolvesOverrideOrDefault(t *testing.T) {
	m := molgraph.NewMolecule()
	c, _ := m.AddAtom("C")
	anyAtom, _ := m.AddAtom("Xx")

	set := label.NewPredicateSet()
	set.SetVertex(c, func(patt, tgt molgraph.AtomHandle, pattMol, tgtMol *molgraph.Molecule) bool {
		return true // wildcard: accept any target element for this pattern atom
	})

	require.True(t, set.ResolveVertex(c)(c, anyAtom, m, m))

	other, _ := m.AddAtom("N")
	require.Equal(t, label.DefaultVertexPredicate(other, anyAtom, m, m), set.ResolveVertex(other)(other, anyAtom, m, m))
}
