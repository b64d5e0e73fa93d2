// Package smiles reads the small organic subset of SMILES needed to build
// molgraph.Molecule values for the matcher's worked examples and fixture
// files: bare element symbols (C, N, O, Cl, ...), implicit single bonds,
// explicit "=" and "#" bonds, parenthesized branches, and single-digit
// ring-closure marks.
//
// This is deliberately not a chemistry-complete SMILES reader: no
// aromaticity (lowercase atom symbols), no charges, isotopes, or stereo
// descriptors, and no two-digit "%nn" ring closures. Parse exists only to
// feed the matcher's pattern/target inputs from a compact notation, not to
// round-trip arbitrary real-world SMILES.
package smiles
