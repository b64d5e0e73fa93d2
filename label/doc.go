// Package label holds the per-vertex and per-edge predicates that give the
// matcher's labels their meaning. The engine never inspects an atom's
// element string or a bond's order kind directly; it only ever calls a
// VertexPredicate or EdgePredicate and reads the bool back. That keeps
// label semantics entirely separate from the search itself.
//
// Predicates are always called as (pattern side, target side), never
// reversed, and are expected to be pure functions of their two handle
// arguments and the two molecules. A predicate that panics is fatal to the
// current match attempt: the engine recovers the panic exactly once at its
// single call site and reports engine.ErrPredicatePanicked rather than
// retrying with a different candidate (matching backtracking, which is
// part of the algorithm, not an error-recovery policy).
package label
