package submatch

import "errors"

// ErrEmptyPattern indicates NewMatcher was given a pattern with no atoms;
// an empty pattern has no canonical starting vertex for the flattener.
var ErrEmptyPattern = errors.New("submatch: pattern has no atoms")

// ErrMalformedGraph indicates a pattern or target molecule failed
// structural validation (a bond referencing an atom handle it does not
// own). Matcher checks this defensively at NewMatcher/Bind time so a
// caller-assembled Molecule that skipped AddAtom/AddBond never reaches the
// engine.
var ErrMalformedGraph = errors.New("submatch: malformed molecule")

// ErrNilTarget indicates Bind was called with a nil target.
var ErrNilTarget = errors.New("submatch: nil target")

// ErrNotBound indicates NextMatch, CurrentVertexMap, or CurrentEdgeMap was
// called before a successful Bind.
var ErrNotBound = errors.New("submatch: matcher is not bound to a target")

// ErrInvalidPredicateTarget indicates WithVertexPredicate or
// WithEdgePredicate named a pattern handle that does not exist in the
// pattern passed to NewMatcher.
var ErrInvalidPredicateTarget = errors.New("submatch: predicate option targets an unknown pattern handle")
