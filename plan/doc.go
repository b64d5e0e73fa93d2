// Package plan implements the flattener: it turns a pattern molecule into
// a linear DFS plan, an ordered list of Steps that the search engine walks
// iteratively instead of recursing over the pattern graph.
//
// Flattening once, ahead of the search, is what makes the engine
// resumable (see package engine): a step kind plus a plan position is
// enough state to know exactly what to try next, with no recursive call
// stack to re-enter. This mirrors the structure of a depth-first walk
// without paying the cost of an actual DFS frame stack.
//
// Algorithm (verbatim from the matcher's contract):
//
//  1. Pick the pattern's first atom by stable insertion order as the
//     canonical start of its connected component and emit Anchor for it.
//  2. Walk the component depth-first. The first time an atom is reached
//     via some bond, emit Edge for that bond before descending into the
//     atom. A bond reaching an already-visited atom instead emits
//     RingClose.
//  3. When a component is exhausted and unvisited atoms remain, emit
//     UnanchoredAnchor for the first atom of the next component and
//     resume the walk there.
//
// Every pattern atom appears in the plan in DFS pre-order exactly once;
// every pattern bond appears exactly once, as either an Edge or a
// RingClose; every Edge's FromEnd and every RingClose's two ends refer to
// atoms that appear earlier in the plan than the step itself.
package plan
