package plan

import "github.com/katalvlaran/submatch/molgraph"

// flattenWalker carries the state threaded through the recursive descent,
// mirroring the small walker struct used by a depth-first traversal: the
// graph being walked, a visited set, and the plan under construction.
type flattenWalker struct {
	pattern  *molgraph.Molecule
	visited  []bool // indexed by AtomHandle-1
	bondSeen []bool // indexed by BondHandle-1
	steps    []Step
}

// Flatten produces the DFS plan for pattern p. It returns ErrEmptyPattern
// if p has no atoms.
// Complexity: O(V+E) in the pattern.
func Flatten(p *molgraph.Molecule) (Plan, error) {
	atoms := p.Atoms()
	if len(atoms) == 0 {
		return Plan{}, ErrEmptyPattern
	}

	w := &flattenWalker{
		pattern:  p,
		visited:  make([]bool, len(atoms)),
		bondSeen: make([]bool, p.BondCount()),
		steps:    make([]Step, 0, len(atoms)+p.BondCount()),
	}

	first := true
	for _, v := range atoms {
		if w.visited[v-1] {
			continue
		}
		if first {
			w.steps = append(w.steps, Step{Kind: Anchor, Vertex: v})
			first = false
		} else {
			w.steps = append(w.steps, Step{Kind: UnanchoredAnchor, Vertex: v})
		}
		w.visited[v-1] = true
		w.visit(v)
	}

	return Plan{Steps: w.steps}, nil
}

// visit walks the component reachable from v, emitting Edge for each bond
// that first discovers a new atom and RingClose for each bond that closes
// back onto an already-visited atom. Each bond is emitted exactly once: we
// only act on it the first time we encounter it, which happens from
// whichever of its two endpoints is visited first.
func (w *flattenWalker) visit(v molgraph.AtomHandle) {
	for _, ib := range w.pattern.BondsOf(v) {
		if w.bondSeen[ib.Bond-1] {
			continue
		}
		w.bondSeen[ib.Bond-1] = true

		other := ib.Other
		if w.visited[other-1] {
			// other was placed by some earlier step, and this bond is not
			// the one that placed v itself (that one was already marked
			// seen when v was discovered) — so it is a genuine ring
			// closure between two already-mapped ends.
			w.steps = append(w.steps, Step{Kind: RingClose, PatternEdge: ib.Bond, EndA: v, EndB: other})
			continue
		}

		w.steps = append(w.steps, Step{Kind: Edge, PatternEdge: ib.Bond, FromEnd: v, ToEnd: other})
		w.visited[other-1] = true
		w.visit(other)
	}
}
