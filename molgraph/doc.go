// Package molgraph defines the labeled, undirected graph used throughout
// submatch: atoms (vertices carrying an element label) joined by bonds
// (edges carrying a bond-order label).
//
// Unlike a general-purpose graph library, molgraph stores its vertices and
// edges in contiguous arenas addressed by small integer handles rather than
// by pointer or by string ID. The matcher never sees object references: it
// walks handles, and the "currently in use" paint table it keeps is a plain
// bitset indexed by handle. This removes the cyclic atom<->bond object
// graph that a naive pointer-based chemistry model tends to accumulate, and
// it lets two independent Matchers share one immutable *Molecule safely.
//
// A Molecule is mutable only during construction (AddAtom/AddBond); once
// handed to a Matcher it is treated as read-only for the lifetime of the
// search. Handles returned by a Molecule remain valid for that Molecule's
// lifetime and are never reused, even across removal (molgraph does not
// support removal — chemistry inputs here are built once and matched).
package molgraph

import "errors"

// Sentinel errors for molgraph construction and validation.
var (
	// ErrUnknownAtom indicates a bond referenced an AtomHandle that does
	// not belong to the Molecule it is being added to.
	ErrUnknownAtom = errors.New("molgraph: unknown atom handle")

	// ErrEmptyElement indicates AddAtom was called with an empty element label.
	ErrEmptyElement = errors.New("molgraph: element label is empty")

	// ErrUnknownBond indicates a query referenced a BondHandle that does
	// not belong to the Molecule it was queried against.
	ErrUnknownBond = errors.New("molgraph: unknown bond handle")

	// ErrMalformedGraph indicates a bond's endpoints are not both present
	// in the arena backing it (defensive re-check at bind time; see
	// Molecule.Validate).
	ErrMalformedGraph = errors.New("molgraph: malformed graph: bond endpoints missing")
)
