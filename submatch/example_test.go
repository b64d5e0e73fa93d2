package submatch_test

import (
	"fmt"

	"github.com/katalvlaran/submatch/molgraph"
	"github.com/katalvlaran/submatch/submatch"
)

// ExampleMatcher builds the acyl-chloride pattern C(=O)Cl and searches for
// it inside a cyclopentane ring bearing that same acyl-chloride
// substituent, mirroring the worked example of locating a reactive group
// inside a larger molecule.
func ExampleMatcher() {
	pattern := molgraph.NewMolecule()
	pc, _ := pattern.AddAtom("C")
	po, _ := pattern.AddAtom("O")
	pcl, _ := pattern.AddAtom("Cl")
	_, _ = pattern.AddBond(pc, po, molgraph.WithOrder(molgraph.Double))
	_, _ = pattern.AddBond(pc, pcl)

	target := molgraph.NewMolecule()
	ring := make([]molgraph.AtomHandle, 5)
	for i := range ring {
		ring[i], _ = target.AddAtom("C")
	}
	for i := 0; i < len(ring); i++ {
		_, _ = target.AddBond(ring[i], ring[(i+1)%len(ring)])
	}
	acylC, _ := target.AddAtom("C")
	_, _ = target.AddBond(ring[0], acylC)
	cl, _ := target.AddAtom("Cl")
	_, _ = target.AddBond(acylC, cl)
	o, _ := target.AddAtom("O")
	_, _ = target.AddBond(acylC, o, molgraph.WithOrder(molgraph.Double))

	m, err := submatch.NewMatcher(pattern)
	if err != nil {
		fmt.Println("NewMatcher error:", err)
		return
	}
	if err := m.Bind(target); err != nil {
		fmt.Println("Bind error:", err)
		return
	}

	for {
		match, err := m.NextMatch()
		if err != nil {
			fmt.Println("NextMatch error:", err)
			return
		}
		if match == nil {
			fmt.Println("exhausted")
			return
		}
		fmt.Println("match vertex map:", match.VertexMap)
	}
	// Output:
	// match vertex map: [6 8 7]
	// exhausted
}
