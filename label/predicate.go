package label

import "github.com/katalvlaran/submatch/molgraph"

// VertexPredicate decides whether target atom tgt is an acceptable image of
// pattern atom patt. The first two arguments are the handles; pattMol and
// tgtMol let the predicate look up labels, neighborhoods, or any other
// property of either side.
type VertexPredicate func(patt, tgt molgraph.AtomHandle, pattMol, tgtMol *molgraph.Molecule) bool

// EdgePredicate decides whether target bond tgt is an acceptable image of
// pattern bond patt.
type EdgePredicate func(patt, tgt molgraph.BondHandle, pattMol, tgtMol *molgraph.Molecule) bool

// DefaultVertexPredicate accepts (patt, tgt) when both atoms carry the same
// element label. This is the predicate used whenever a pattern vertex has
// no predicate of its own registered in a PredicateSet.
func DefaultVertexPredicate(patt, tgt molgraph.AtomHandle, pattMol, tgtMol *molgraph.Molecule) bool {
	return pattMol.Element(patt) == tgtMol.Element(tgt)
}

// DefaultEdgePredicate accepts (patt, tgt) when both bonds carry the same
// order label. This is the predicate used whenever a pattern edge has no
// predicate of its own registered in a PredicateSet.
func DefaultEdgePredicate(patt, tgt molgraph.BondHandle, pattMol, tgtMol *molgraph.Molecule) bool {
	return pattMol.BondOrder(patt) == tgtMol.BondOrder(tgt)
}

// PredicateSet maps pattern handles to the caller-supplied predicate that
// should govern them, falling back to the defaults above for any pattern
// handle with no entry. A zero-value PredicateSet is valid and behaves as
// "all defaults".
type PredicateSet struct {
	vertex map[molgraph.AtomHandle]VertexPredicate
	edge   map[molgraph.BondHandle]EdgePredicate
}

// NewPredicateSet returns an empty PredicateSet.
func NewPredicateSet() *PredicateSet {
	return &PredicateSet{
		vertex: make(map[molgraph.AtomHandle]VertexPredicate),
		edge:   make(map[molgraph.BondHandle]EdgePredicate),
	}
}

// SetVertex registers p as the predicate governing pattern atom v,
// overriding DefaultVertexPredicate for that handle.
func (s *PredicateSet) SetVertex(v molgraph.AtomHandle, p VertexPredicate) {
	if s.vertex == nil {
		s.vertex = make(map[molgraph.AtomHandle]VertexPredicate)
	}
	s.vertex[v] = p
}

// SetEdge registers p as the predicate governing pattern bond e,
// overriding DefaultEdgePredicate for that handle.
func (s *PredicateSet) SetEdge(e molgraph.BondHandle, p EdgePredicate) {
	if s.edge == nil {
		s.edge = make(map[molgraph.BondHandle]EdgePredicate)
	}
	s.edge[e] = p
}

// VertexHandles returns every pattern atom handle with a caller-registered
// predicate, in no particular order. Used by submatch to validate that
// WithVertexPredicate options name handles that exist in the bound pattern.
func (s *PredicateSet) VertexHandles() []molgraph.AtomHandle {
	if s == nil {
		return nil
	}
	out := make([]molgraph.AtomHandle, 0, len(s.vertex))
	for v := range s.vertex {
		out = append(out, v)
	}
	return out
}

// EdgeHandles returns every pattern bond handle with a caller-registered
// predicate, in no particular order. Used by submatch to validate that
// WithEdgePredicate options name handles that exist in the bound pattern.
func (s *PredicateSet) EdgeHandles() []molgraph.BondHandle {
	if s == nil {
		return nil
	}
	out := make([]molgraph.BondHandle, 0, len(s.edge))
	for e := range s.edge {
		out = append(out, e)
	}
	return out
}

// ResolveVertex returns the predicate governing pattern atom v: the
// caller-registered one if present, else DefaultVertexPredicate.
func (s *PredicateSet) ResolveVertex(v molgraph.AtomHandle) VertexPredicate {
	if s != nil {
		if p, ok := s.vertex[v]; ok {
			return p
		}
	}
	return DefaultVertexPredicate
}

// ResolveEdge returns the predicate governing pattern bond e: the
// caller-registered one if present, else DefaultEdgePredicate.
func (s *PredicateSet) ResolveEdge(e molgraph.BondHandle) EdgePredicate {
	if s != nil {
		if p, ok := s.edge[e]; ok {
			return p
		}
	}
	return DefaultEdgePredicate
}
