package engine

import "errors"

// ErrPredicatePanicked indicates a caller-supplied label predicate panicked
// while being evaluated. Per the matcher's error-handling contract this is
// fatal to the current Advance call: the engine does not retry the
// candidate that triggered it or any other candidate at that frame.
var ErrPredicatePanicked = errors.New("engine: predicate panicked")

// ErrNoAnchor indicates Advance was called before InitAnchor.
var ErrNoAnchor = errors.New("engine: no anchor initialized")
