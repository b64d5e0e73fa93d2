// Package engine implements the search engine: the stateful backtracking
// walker that drives a plan.Plan against a target molecule, one Advance
// call at a time.
//
// An Engine owns the exploration stack, the paint table (which target
// atoms/bonds are currently committed to the in-progress mapping), and the
// partial vertex/edge maps. Advance runs the walker until it either
// completes the plan (Matched) or exhausts every alternative at every
// depth (Exhausted). Matched leaves the stack parked so the very next
// Advance call resumes the search for a different mapping; this parked
// state, together with the plan's step kinds, is what replaces a
// recursive "coroutine" with an explicit, inspectable stack of frames —
// each frame knows exactly which step it is on and which candidate to try
// next, so backtracking is a local, O(1) pop rather than unwinding a call
// stack.
//
// Engine does not choose anchors or deduplicate matches; that is
// package submatch's job (the iterator/dedup layer). Engine only answers
// "is there another way to complete the plan from here".
package engine
