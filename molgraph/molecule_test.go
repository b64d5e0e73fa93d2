package molgraph_test

import (
	"testing"

	"github.com/katalvlaran/submatch/molgraph"
	"github.com/stretchr/testify/require"
)

func TestAddAtomRejectsEmptyElement(t *testing.T) {
	m := molgraph.NewMolecule()
	_, err := m.AddAtom("")
	require.ErrorIs(t, err, molgraph.ErrEmptyElement)
}

func TestAddBondRejectsUnknownAtom(t *testing.T) {
	m := molgraph.NewMolecule()
	a, err := m.AddAtom("C")
	require.NoError(t, err)

	_, err = m.AddBond(a, molgraph.AtomHandle(99))
	require.ErrorIs(t, err, molgraph.ErrUnknownAtom)
}

func TestBondsOfStableOrder(t *testing.T) {
	m := molgraph.NewMolecule()
	a1, _ := m.AddAtom("C")
	a2, _ := m.AddAtom("C")
	a3, _ := m.AddAtom("O")

	b1, err := m.AddBond(a1, a2)
	require.NoError(t, err)
	b2, err := m.AddBond(a1, a3, molgraph.WithOrder(molgraph.Double))
	require.NoError(t, err)

	got := m.BondsOf(a1)
	require.Equal(t, []molgraph.IncidentBond{
		{Bond: b1, Other: a2},
		{Bond: b2, Other: a3},
	}, got)
	require.Equal(t, molgraph.Double, m.BondOrder(b2))
}

func TestEndpointsAndValidate(t *testing.T) {
	m := molgraph.NewMolecule()
	a1, _ := m.AddAtom("C")
	a2, _ := m.AddAtom("Cl")
	b, err := m.AddBond(a1, a2)
	require.NoError(t, err)

	from, to, err := m.Endpoints(b)
	require.NoError(t, err)
	require.Equal(t, a1, from)
	require.Equal(t, a2, to)
	require.NoError(t, m.Validate())
}

func TestCloneIsIndependent(t *testing.T) {
	m := molgraph.NewMolecule()
	a1, _ := m.AddAtom("C")
	a2, _ := m.AddAtom("N")
	_, err := m.AddBond(a1, a2)
	require.NoError(t, err)

	clone := m.Clone()
	_, err = clone.AddAtom("O")
	require.NoError(t, err)

	require.Equal(t, 2, m.AtomCount())
	require.Equal(t, 3, clone.AtomCount())
}
