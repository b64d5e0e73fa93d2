package smiles

import (
	"fmt"

	"github.com/katalvlaran/submatch/molgraph"
)

// Parse reads s as the organic SMILES subset described in the package doc
// and returns the Molecule it denotes. Ring-closure digits must pair up
// exactly once each; an odd one out is ErrUnclosedRing.
func Parse(s string) (*molgraph.Molecule, error) {
	expr, err := smilesParser.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	mol := molgraph.NewMolecule()
	b := &builder{mol: mol, ringOpen: make(map[string]molgraph.AtomHandle)}
	if err := b.walk(expr, molgraph.InvalidAtom); err != nil {
		return nil, err
	}
	if len(b.ringOpen) > 0 {
		return nil, ErrUnclosedRing
	}
	return mol, nil
}

// builder tallies atoms and bonds into a Molecule as the parse tree is
// walked, mirroring how a grammar-driven graph builder elsewhere in the
// corpus accumulates vertices/edges from a parsed expression tree instead
// of building them directly in grammar action callbacks.
type builder struct {
	mol      *molgraph.Molecule
	ringOpen map[string]molgraph.AtomHandle // ring digit -> atom awaiting its partner
}

// walk appends every atom of chain to b.mol, bonding each to the atom that
// precedes it — the previous atom in the chain, or parent for a branch's
// first atom — using the bond symbol carried on the atomExpr itself.
func (b *builder) walk(chain *chainExpr, parent molgraph.AtomHandle) error {
	prev := parent
	for _, a := range chain.Atoms {
		h, err := b.mol.AddAtom(a.Element)
		if err != nil {
			return err
		}
		if prev != molgraph.InvalidAtom {
			if _, err := b.mol.AddBond(prev, h, bondOptions(a.Bond)...); err != nil {
				return err
			}
		}

		for _, d := range a.Rings {
			if open, ok := b.ringOpen[d]; ok {
				delete(b.ringOpen, d)
				if _, err := b.mol.AddBond(open, h); err != nil {
					return err
				}
			} else {
				b.ringOpen[d] = h
			}
		}

		for _, br := range a.Branches {
			if err := b.walk(br, h); err != nil {
				return err
			}
		}

		prev = h
	}
	return nil
}

func bondOptions(sym string) []molgraph.BondOption {
	switch sym {
	case "=":
		return []molgraph.BondOption{molgraph.WithOrder(molgraph.Double)}
	case "#":
		return []molgraph.BondOption{molgraph.WithOrder(molgraph.Triple)}
	default:
		return nil
	}
}
