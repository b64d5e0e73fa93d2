package plan

import (
	"errors"

	"github.com/katalvlaran/submatch/molgraph"
)

// ErrStepOutOfOrder indicates a Plan violates the pre-order invariant: a
// step referenced an atom that no earlier step introduced.
var ErrStepOutOfOrder = errors.New("plan: step references an atom not yet introduced")

// ErrBondRepeated indicates the same pattern bond appears in more than one
// step.
var ErrBondRepeated = errors.New("plan: bond appears more than once")

// Validate checks the structural invariants a DFS plan must hold: every
// atom an Edge or RingClose starts from is introduced earlier (by an
// Anchor/UnanchoredAnchor or as an earlier Edge's ToEnd), and no bond
// appears in more than one step. Validate has no access to the pattern,
// so it does not check that every pattern atom and bond is present in the
// plan. Flatten's own
// output always satisfies this; Validate exists as a self-check for the
// plan package's tests and for callers who hand-build or transform a Plan.
// Complexity: O(len(Steps)).
func (p Plan) Validate() error {
	introduced := make(map[molgraph.AtomHandle]bool)
	bondSeen := make(map[molgraph.BondHandle]bool)

	for _, s := range p.Steps {
		switch s.Kind {
		case Anchor, UnanchoredAnchor:
			introduced[s.Vertex] = true
		case Edge:
			if !introduced[s.FromEnd] {
				return ErrStepOutOfOrder
			}
			if bondSeen[s.PatternEdge] {
				return ErrBondRepeated
			}
			bondSeen[s.PatternEdge] = true
			introduced[s.ToEnd] = true
		case RingClose:
			if !introduced[s.EndA] || !introduced[s.EndB] {
				return ErrStepOutOfOrder
			}
			if bondSeen[s.PatternEdge] {
				return ErrBondRepeated
			}
			bondSeen[s.PatternEdge] = true
		}
	}

	return nil
}
