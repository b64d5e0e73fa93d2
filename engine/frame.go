package engine

import "github.com/katalvlaran/submatch/molgraph"

// frame is one entry of the exploration stack: the plan position it
// services, the next candidate index to try there, and — if this frame's
// last successful attempt painted anything — exactly what it painted, so
// popping the frame can undo precisely that and nothing else.
type frame struct {
	stepIdx int // index into plan.Steps
	cand    int // next candidate index to try at this step

	paintedVertex molgraph.AtomHandle // molgraph.InvalidAtom if this frame painted no vertex
	paintedEdge   molgraph.BondHandle // molgraph.InvalidBond if this frame painted no edge

	// mappedPatternVertex/mappedPatternEdge name which pattern handle's
	// vMap/eMap entry this frame populated, so pop can clear exactly that
	// entry (InvalidAtom/InvalidBond mean "this frame mapped none").
	mappedPatternVertex molgraph.AtomHandle
	mappedPatternEdge   molgraph.BondHandle
}
