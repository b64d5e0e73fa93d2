package plan

import (
	"errors"

	"github.com/katalvlaran/submatch/molgraph"
)

// ErrEmptyPattern indicates Flatten was called on a pattern with zero
// atoms; this is a programmer error per the matcher's contract, not an
// exhaustion signal.
var ErrEmptyPattern = errors.New("plan: pattern has no atoms")

// StepKind tags the variant carried by a Step. Using a tagged-variant
// struct here (instead of subclassing a pattern-vertex/pattern-edge type
// hierarchy) is a deliberate simplification: the engine switches on Kind
// once per step and never needs type assertions or virtual dispatch.
type StepKind int

const (
	// Anchor is the first atom of the pattern's first connected
	// component; the engine matches it directly against the anchor atom
	// chosen by the caller/iterator.
	Anchor StepKind = iota

	// UnanchoredAnchor is the first atom of a subsequent connected
	// component (only emitted for disconnected patterns); the engine
	// ranges over all currently-unused target atoms to match it.
	UnanchoredAnchor

	// Edge is a forward DFS bond: FromEnd is already mapped, ToEnd is
	// not yet mapped.
	Edge

	// RingClose is a back-edge bond: both EndA and EndB are already
	// mapped by the time the plan reaches this step.
	RingClose
)

// Step is one instruction in a Plan. Only the fields relevant to Kind are
// meaningful; the zero value for the rest is InvalidAtom/InvalidBond.
type Step struct {
	Kind StepKind

	// Vertex is the pattern atom introduced by an Anchor or
	// UnanchoredAnchor step.
	Vertex molgraph.AtomHandle

	// PatternEdge is the pattern bond matched by an Edge or RingClose
	// step.
	PatternEdge molgraph.BondHandle

	// FromEnd/ToEnd are populated for Edge steps: FromEnd is already
	// mapped, ToEnd is the newly introduced atom.
	FromEnd, ToEnd molgraph.AtomHandle

	// EndA/EndB are populated for RingClose steps: both are already
	// mapped atoms that PatternEdge connects.
	EndA, EndB molgraph.AtomHandle
}

// Plan is the ordered sequence of Steps produced by Flatten.
type Plan struct {
	Steps []Step
}

// Len returns the number of steps in the plan.
func (p Plan) Len() int { return len(p.Steps) }
