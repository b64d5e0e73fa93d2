package fixture

import "errors"

// ErrTruncated indicates the input ended before the "()" sentinel line
// that must terminate every scenario's expected-match list.
var ErrTruncated = errors.New("fixture: truncated scenario, missing \"()\" sentinel")

// ErrMalformedHeader indicates the first three lines (pattern, options,
// target) were not all present.
var ErrMalformedHeader = errors.New("fixture: malformed scenario header")

// ErrMalformedMatchLine indicates an expected-match line was not of the
// form "(id id ...)".
var ErrMalformedMatchLine = errors.New("fixture: malformed match line")
