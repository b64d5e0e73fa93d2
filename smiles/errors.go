package smiles

import "errors"

// ErrSyntax indicates the input could not be parsed as the supported
// SMILES subset at all (unexpected character, unterminated branch, ...).
var ErrSyntax = errors.New("smiles: syntax error")

// ErrUnclosedRing indicates a ring-closure digit was opened but never
// matched by a second occurrence of the same digit before the string
// ended.
var ErrUnclosedRing = errors.New("smiles: unclosed ring bond")
