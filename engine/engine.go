package engine

import (
	"fmt"

	"github.com/katalvlaran/submatch/label"
	"github.com/katalvlaran/submatch/molgraph"
	"github.com/katalvlaran/submatch/plan"
)

// Outcome is the result of one Advance call.
type Outcome int

const (
	// Matched means the plan was completed: VertexMap/EdgeMap now hold a
	// full, valid mapping. The next Advance call resumes the search for
	// a different one.
	Matched Outcome = iota
	// Exhausted means no mapping (or no further mapping) exists from the
	// current anchor. Further Advance calls keep returning Exhausted.
	Exhausted
)

// Engine is the backtracking walker described in the package doc. One
// Engine is bound to one pattern plan and one target molecule for the
// duration of a single anchor's search; package submatch creates a fresh
// Engine (or re-initializes one) per anchor via InitAnchor.
type Engine struct {
	plan    plan.Plan
	pattern *molgraph.Molecule
	target  *molgraph.Molecule
	preds   *label.PredicateSet

	vMap []molgraph.AtomHandle // indexed by pattern AtomHandle-1
	eMap []molgraph.BondHandle // indexed by pattern BondHandle-1

	paint paint
	stack []frame

	targetAtoms []molgraph.AtomHandle // stable order, for UnanchoredAnchor
	anchorAtom  molgraph.AtomHandle   // target atom the Anchor step must match

	logger Logger
	anchor bool // true once InitAnchor has been called
}

// New returns an Engine ready for InitAnchor against target, walking p
// (the flattened plan for pattern). patternAtomCount/patternBondCount
// size the dense vMap/eMap arrays.
func New(p plan.Plan, pattern, target *molgraph.Molecule, preds *label.PredicateSet, patternAtomCount, patternBondCount int) *Engine {
	return &Engine{
		plan:        p,
		pattern:     pattern,
		target:      target,
		preds:       preds,
		vMap:        make([]molgraph.AtomHandle, patternAtomCount),
		eMap:        make([]molgraph.BondHandle, patternBondCount),
		targetAtoms: target.Atoms(),
		logger:      noopLogger{},
	}
}

// SetLogger attaches a diagnostic sink; passing nil restores the no-op
// default. Engine never logs anything performance-sensitive per candidate,
// only per Advance outcome and per predicate panic.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		l = noopLogger{}
	}
	e.logger = l
}

// InitAnchor (re)starts the search against anchor t0. excluded, when
// non-nil, marks target atoms (indexed by AtomHandle) that must never be
// mapped by this search — the caller's vertex-disjointness exclusion set
// for matches already yielded — and every one of them is pre-painted
// before the search starts, so no step of the plan (Anchor, Edge,
// RingClose, or an UnanchoredAnchor component) can ever propose one as a
// candidate: tryAnchor, tryUnanchoredAnchor, and tryEdge all reject a
// painted vertex before consulting any predicate, and a pre-painted bit
// is never cleared by undoFrame since no frame ever recorded painting it.
// Passing excluded starts from an empty paint table regardless of what
// was left over from a previous anchor. Passing nil preserves whatever
// paint state is already there if one exists (an in-progress mapping from
// a prior anchor is not disturbed by this reset), else starts empty.
// Complexity: O(V) when excluded is non-nil or paint has not yet been
// allocated, else O(1).
func (e *Engine) InitAnchor(t0 molgraph.AtomHandle, excluded []bool) {
	for i := range e.vMap {
		e.vMap[i] = molgraph.InvalidAtom
	}
	for i := range e.eMap {
		e.eMap[i] = molgraph.InvalidBond
	}

	if excluded != nil || e.paint.vertex.words == nil {
		e.paint = newPaint(e.target.AtomCount(), e.target.BondCount())
	}
	for t, ex := range excluded {
		if ex {
			e.paint.vertex.set(t)
		}
	}

	e.stack = e.stack[:0]
	e.stack = append(e.stack, frame{stepIdx: 0, cand: 0})
	e.anchorAtom = t0
	e.anchor = true
}

// VertexMap returns the current mapping from pattern atom to target atom
// (element i belongs to pattern atom handle i+1), valid after a Matched
// outcome.
func (e *Engine) VertexMap() []molgraph.AtomHandle {
	out := make([]molgraph.AtomHandle, len(e.vMap))
	copy(out, e.vMap)
	return out
}

// EdgeMap returns the current mapping from pattern bond to target bond,
// valid after a Matched outcome.
func (e *Engine) EdgeMap() []molgraph.BondHandle {
	out := make([]molgraph.BondHandle, len(e.eMap))
	copy(out, e.eMap)
	return out
}

// Advance runs the walker until it reports Matched or Exhausted.
//
// Every iteration first undoes whatever the top frame last committed (a
// no-op the first time a frame is visited), then tries that same step
// again starting at the frame's stored candidate index. This is what
// lets a Matched call be followed by another Advance that finds a
// different mapping using the same anchor: the top frame still holds the
// candidate index just past the one that matched, so undo-then-retry
// naturally walks to the next alternative at that depth before ever
// falling back to a shallower one. Only when a frame's candidates are
// exhausted does it come off the stack for good.
func (e *Engine) Advance() (Outcome, error) {
	if !e.anchor {
		return Exhausted, ErrNoAnchor
	}

	for {
		if len(e.stack) == 0 {
			e.logger.Printf("engine: anchor %d exhausted", e.anchorAtom)
			return Exhausted, nil
		}

		top := &e.stack[len(e.stack)-1]
		e.undoFrame(top)

		step := e.plan.Steps[top.stepIdx]
		ok, err := e.tryStep(top, step)
		if err != nil {
			e.logger.Printf("engine: anchor %d aborted: %v", e.anchorAtom, err)
			return Exhausted, err
		}
		if !ok {
			e.stack = e.stack[:len(e.stack)-1]
			continue
		}

		nextIdx := top.stepIdx + 1
		if nextIdx == len(e.plan.Steps) {
			e.logger.Printf("engine: anchor %d matched, vMap=%v", e.anchorAtom, e.vMap)
			return Matched, nil
		}
		e.stack = append(e.stack, frame{stepIdx: nextIdx, cand: 0})
	}
}

// tryStep attempts to advance past the step at the top frame, starting at
// top.cand. On success it mutates vMap/eMap/paint, records what it did on
// top so undoFrame can reverse it, advances top.cand past the candidate
// it used (so a future retry of this same frame starts after it), and
// returns (true, nil). On exhaustion of candidates it returns (false, nil)
// without touching state. A panicking predicate yields (false, err).
func (e *Engine) tryStep(top *frame, step plan.Step) (bool, error) {
	switch step.Kind {
	case plan.Anchor:
		return e.tryAnchor(top, step)
	case plan.UnanchoredAnchor:
		return e.tryUnanchoredAnchor(top, step)
	case plan.Edge:
		return e.tryEdge(top, step)
	case plan.RingClose:
		return e.tryRingClose(top, step)
	default:
		return false, fmt.Errorf("engine: unknown step kind %d", step.Kind)
	}
}

func (e *Engine) tryAnchor(top *frame, step plan.Step) (bool, error) {
	if top.cand > 0 {
		return false, nil // the single candidate (the chosen anchor) was already tried
	}
	top.cand = 1

	t0 := e.anchorAtom
	if e.paint.vertex.isSet(int(t0)) {
		return false, nil
	}

	ok, err := e.acceptVertex(step.Vertex, t0)
	if err != nil || !ok {
		return false, err
	}

	e.mapVertex(step.Vertex, t0)
	top.paintedVertex = t0
	top.mappedPatternVertex = step.Vertex
	return true, nil
}

func (e *Engine) tryUnanchoredAnchor(top *frame, step plan.Step) (bool, error) {
	for i := top.cand; i < len(e.targetAtoms); i++ {
		t := e.targetAtoms[i]
		top.cand = i + 1
		if e.paint.vertex.isSet(int(t)) {
			continue
		}

		ok, err := e.acceptVertex(step.Vertex, t)
		if err != nil {
			return false, err
		}
		if !ok {
			continue
		}

		e.mapVertex(step.Vertex, t)
		top.paintedVertex = t
		top.mappedPatternVertex = step.Vertex
		return true, nil
	}
	return false, nil
}

func (e *Engine) tryEdge(top *frame, step plan.Step) (bool, error) {
	tFrom := e.vMap[step.FromEnd-1]
	incident := e.target.BondsOf(tFrom)

	for i := top.cand; i < len(incident); i++ {
		ib := incident[i]
		top.cand = i + 1

		if e.paint.edge.isSet(int(ib.Bond)) || e.paint.vertex.isSet(int(ib.Other)) {
			continue
		}

		edgeOK, err := e.acceptEdge(step.PatternEdge, ib.Bond)
		if err != nil {
			return false, err
		}
		if !edgeOK {
			continue
		}

		vertexOK, err := e.acceptVertex(step.ToEnd, ib.Other)
		if err != nil {
			return false, err
		}
		if !vertexOK {
			continue
		}

		e.mapVertex(step.ToEnd, ib.Other)
		e.mapEdge(step.PatternEdge, ib.Bond)
		top.paintedVertex = ib.Other
		top.paintedEdge = ib.Bond
		top.mappedPatternVertex = step.ToEnd
		top.mappedPatternEdge = step.PatternEdge
		return true, nil
	}
	return false, nil
}

func (e *Engine) tryRingClose(top *frame, step plan.Step) (bool, error) {
	tA := e.vMap[step.EndA-1]
	tB := e.vMap[step.EndB-1]
	incident := e.target.BondsOf(tA)

	for i := top.cand; i < len(incident); i++ {
		ib := incident[i]
		top.cand = i + 1

		if ib.Other != tB || e.paint.edge.isSet(int(ib.Bond)) {
			continue
		}

		edgeOK, err := e.acceptEdge(step.PatternEdge, ib.Bond)
		if err != nil {
			return false, err
		}
		if !edgeOK {
			continue
		}

		e.mapEdge(step.PatternEdge, ib.Bond)
		top.paintedEdge = ib.Bond
		top.mappedPatternEdge = step.PatternEdge
		return true, nil
	}
	return false, nil
}

func (e *Engine) mapVertex(p molgraph.AtomHandle, t molgraph.AtomHandle) {
	e.vMap[p-1] = t
	e.paint.vertex.set(int(t))
}

func (e *Engine) mapEdge(p molgraph.BondHandle, t molgraph.BondHandle) {
	e.eMap[p-1] = t
	e.paint.edge.set(int(t))
}

// undoFrame reverses exactly the paint/map mutations top last committed
// and clears those fields, leaving top ready for tryStep to attempt its
// next candidate (or, if the caller is about to drop top from the stack,
// leaving nothing dangling behind). Safe to call on a frame that has
// never committed anything: every field is already the Invalid sentinel.
func (e *Engine) undoFrame(top *frame) {
	if top.paintedVertex != molgraph.InvalidAtom {
		e.paint.vertex.clear(int(top.paintedVertex))
		top.paintedVertex = molgraph.InvalidAtom
	}
	if top.paintedEdge != molgraph.InvalidBond {
		e.paint.edge.clear(int(top.paintedEdge))
		top.paintedEdge = molgraph.InvalidBond
	}
	if top.mappedPatternVertex != molgraph.InvalidAtom {
		e.vMap[top.mappedPatternVertex-1] = molgraph.InvalidAtom
		top.mappedPatternVertex = molgraph.InvalidAtom
	}
	if top.mappedPatternEdge != molgraph.InvalidBond {
		e.eMap[top.mappedPatternEdge-1] = molgraph.InvalidBond
		top.mappedPatternEdge = molgraph.InvalidBond
	}
}

// acceptVertex calls the resolved vertex predicate for pattern atom p
// against target atom t, recovering a panic into ErrPredicatePanicked.
func (e *Engine) acceptVertex(p, t molgraph.AtomHandle) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			ok, err = false, fmt.Errorf("%w: vertex predicate for pattern atom %d: %v", ErrPredicatePanicked, p, r)
		}
	}()

	pred := e.preds.ResolveVertex(p)
	return pred(p, t, e.pattern, e.target), nil
}

// acceptEdge calls the resolved edge predicate for pattern bond p against
// target bond t, recovering a panic into ErrPredicatePanicked.
func (e *Engine) acceptEdge(p, t molgraph.BondHandle) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			ok, err = false, fmt.Errorf("%w: edge predicate for pattern bond %d: %v", ErrPredicatePanicked, p, r)
		}
	}()

	pred := e.preds.ResolveEdge(p)
	return pred(p, t, e.pattern, e.target), nil
}
