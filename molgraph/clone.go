package molgraph

// Clone returns a deep copy of m: a fresh arena with the same atoms and
// bonds in the same order, so handles are stable across the copy. Matchers
// never mutate their P/T, but callers building several related targets
// from one template molecule find this useful, the same role
// core.Graph's CloneEmpty/View helpers play for general graphs.
// Complexity: O(V+E).
func (m *Molecule) Clone() *Molecule {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := &Molecule{
		atoms: make([]atom, len(m.atoms)),
		bonds: make([]bond, len(m.bonds)),
	}
	for i, a := range m.atoms {
		out.atoms[i] = atom{element: a.element, bonds: append([]IncidentBond(nil), a.bonds...)}
	}
	copy(out.bonds, m.bonds)

	return out
}
