package submatch

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/submatch/engine"
	"github.com/katalvlaran/submatch/molgraph"
	"github.com/katalvlaran/submatch/plan"
)

// Match is one reported pattern-to-target correspondence. Both maps are
// indexed by pattern insertion order: VertexMap[i] is the target atom
// matched to the pattern atom with handle i+1, and likewise for EdgeMap.
type Match struct {
	VertexMap []molgraph.AtomHandle
	EdgeMap   []molgraph.BondHandle
}

// Matcher drives the search engine across every anchor vertex of a bound
// target, applying the overlap and permute duplicate-suppression policy
// described in the Option functions, and hands back one Match per call to
// NextMatch. Construct with NewMatcher, bind a target with Bind, then call
// NextMatch until it returns (nil, nil).
type Matcher struct {
	pattern *molgraph.Molecule
	plan    plan.Plan
	cfg     matcherConfig

	target  *molgraph.Molecule
	eng     *engine.Engine
	bound   bool
	err     error // sticky: once set, every subsequent call returns it

	anchors        []molgraph.AtomHandle // pending FIFO, stable target order
	participated   []bool                // indexed by target AtomHandle (index 0 unused)
	needNextAnchor bool
	yielded        map[string]struct{}
}

// NewMatcher validates pattern, flattens it into a plan once, and resolves
// opts into a configuration. pattern must be non-empty and structurally
// valid; both are programmer errors per the package's contract, not
// exhaustion signals, so they are returned immediately rather than
// deferred to Bind/NextMatch.
func NewMatcher(pattern *molgraph.Molecule, opts ...Option) (*Matcher, error) {
	if pattern == nil || pattern.AtomCount() == 0 {
		return nil, ErrEmptyPattern
	}
	if err := pattern.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedGraph, err)
	}

	p, err := plan.Flatten(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedGraph, err)
	}

	cfg := newMatcherConfig(opts...)
	if err := validatePredicateTargets(pattern, cfg); err != nil {
		return nil, err
	}

	return &Matcher{pattern: pattern, plan: p, cfg: cfg}, nil
}

func validatePredicateTargets(pattern *molgraph.Molecule, cfg matcherConfig) error {
	for _, v := range cfg.preds.VertexHandles() {
		if int(v) < 1 || int(v) > pattern.AtomCount() {
			return fmt.Errorf("%w: atom %d", ErrInvalidPredicateTarget, v)
		}
	}
	for _, e := range cfg.preds.EdgeHandles() {
		if int(e) < 1 || int(e) > pattern.BondCount() {
			return fmt.Errorf("%w: bond %d", ErrInvalidPredicateTarget, e)
		}
	}
	return nil
}

// Bind attaches target as the molecule to search within, resetting all
// iteration state (the FIFO of anchors, the yielded-key set, the
// participation table). Bind may be called again on the same Matcher to
// restart the search against a new target.
func (m *Matcher) Bind(target *molgraph.Molecule) error {
	if m.err != nil {
		return m.err
	}
	if target == nil {
		return ErrNilTarget
	}
	if err := target.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedGraph, err)
	}

	m.target = target
	m.eng = engine.New(m.plan, m.pattern, target, m.cfg.preds, m.pattern.AtomCount(), m.pattern.BondCount())
	m.eng.SetLogger(m.cfg.logger)

	m.anchors = target.Atoms()
	m.participated = make([]bool, target.AtomCount()+1)
	m.yielded = make(map[string]struct{})
	m.needNextAnchor = true
	m.bound = true
	return nil
}

// NextMatch advances the search and returns the next match not yet
// yielded under the current overlap/permute policy, or (nil, nil) once
// every anchor has been exhausted. Once it returns a non-nil error every
// later call returns that same error.
func (m *Matcher) NextMatch() (*Match, error) {
	if m.err != nil {
		return nil, m.err
	}
	if !m.bound {
		return nil, ErrNotBound
	}

	for {
		if m.needNextAnchor {
			t0, ok := m.nextAnchor()
			if !ok {
				return nil, nil
			}
			var excluded []bool
			if !m.cfg.overlap {
				excluded = m.participated
			}
			m.eng.InitAnchor(t0, excluded)
			m.needNextAnchor = false
		}

		outcome, err := m.eng.Advance()
		if err != nil {
			m.err = err
			return nil, err
		}
		if outcome == engine.Exhausted {
			m.needNextAnchor = true
			continue
		}

		vm := m.eng.VertexMap()
		em := m.eng.EdgeMap()
		key := matchKey(vm, em, m.cfg.permute)
		if _, dup := m.yielded[key]; dup {
			continue
		}
		m.yielded[key] = struct{}{}
		for _, t := range vm {
			m.participated[t] = true
		}

		if !m.cfg.overlap {
			// Overlap discipline: one match per anchor, then move on,
			// restricting the next anchor to vertices no yielded match used.
			m.needNextAnchor = true
		}
		return &Match{VertexMap: vm, EdgeMap: em}, nil
	}
}

// nextAnchor pops the FIFO, skipping any target vertex already used by a
// yielded match when overlap=false. This only keeps a used vertex from
// ever being tried as an *anchor* again; the engine enforces the rest of
// the exclusion (no non-anchor step may map onto one either) from the
// participated set passed into InitAnchor.
func (m *Matcher) nextAnchor() (molgraph.AtomHandle, bool) {
	for len(m.anchors) > 0 {
		t0 := m.anchors[0]
		m.anchors = m.anchors[1:]
		if m.cfg.overlap || !m.participated[t0] {
			return t0, true
		}
	}
	return molgraph.InvalidAtom, false
}

// CurrentVertexMap returns the vertex mapping the engine currently holds:
// the match NextMatch last returned, while the search is parked on it.
// Entries read InvalidAtom before the first match and once the search has
// backtracked past a match (including after NextMatch reports exhaustion).
func (m *Matcher) CurrentVertexMap() ([]molgraph.AtomHandle, error) {
	if !m.bound {
		return nil, ErrNotBound
	}
	return m.eng.VertexMap(), nil
}

// CurrentEdgeMap returns the edge mapping the engine currently holds, with
// the same lifetime as CurrentVertexMap; unset entries read InvalidBond.
func (m *Matcher) CurrentEdgeMap() ([]molgraph.BondHandle, error) {
	if !m.bound {
		return nil, ErrNotBound
	}
	return m.eng.EdgeMap(), nil
}

// matchKey builds the dedup key: the ordered tuple of (vertex map, edge
// map) target identities when permute is true, or the
// same two lists independently sorted — a canonical form under which two
// correspondences covering the same target vertices/edges collapse to one
// key — when permute is false.
func matchKey(vm []molgraph.AtomHandle, em []molgraph.BondHandle, permute bool) string {
	vs := make([]int, len(vm))
	for i, v := range vm {
		vs[i] = int(v)
	}
	es := make([]int, len(em))
	for i, e := range em {
		es[i] = int(e)
	}
	if !permute {
		sort.Ints(vs)
		sort.Ints(es)
	}

	var b strings.Builder
	b.WriteString("v:")
	writeInts(&b, vs)
	b.WriteString("|e:")
	writeInts(&b, es)
	return b.String()
}

func writeInts(b *strings.Builder, xs []int) {
	for i, x := range xs {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(b, "%d", x)
	}
}
