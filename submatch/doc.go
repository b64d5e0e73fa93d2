// Package submatch is the public entry point: given a pattern Molecule and
// a target Molecule, a Matcher yields every (or, depending on options, every
// non-overlapping/non-permuted) subgraph isomorphism of the pattern into
// the target, one call to NextMatch at a time.
//
// A Matcher composes the three lower layers: plan.Flatten turns the pattern
// into a linear walk once at construction time, engine.Engine drives that
// walk against the bound target one anchor at a time, and Matcher itself
// owns the FIFO of candidate anchors, the already-yielded match-key set,
// and the overlap/permute duplicate-suppression policy described in the
// package's Option functions. Matcher holds all of that state in plain
// fields and is not safe for concurrent use; a goroutine that needs two
// searches in flight creates two Matchers.
package submatch
