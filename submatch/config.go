package submatch

import (
	"github.com/katalvlaran/submatch/label"
	"github.com/katalvlaran/submatch/molgraph"
)

// matcherConfig aggregates every knob an Option can set. Defaults match
// spec's documented default options object: overlap true, permute false.
type matcherConfig struct {
	overlap bool
	permute bool
	preds   *label.PredicateSet
	logger  Logger
}

func newMatcherConfig(opts ...Option) matcherConfig {
	cfg := matcherConfig{
		overlap: true,
		permute: false,
		preds:   label.NewPredicateSet(),
		logger:  noopLogger{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option customizes a Matcher at NewMatcher time.
type Option func(*matcherConfig)

// WithOverlap sets whether two yielded matches may share a target vertex.
// Defaults to true.
func WithOverlap(overlap bool) Option {
	return func(cfg *matcherConfig) { cfg.overlap = overlap }
}

// WithPermute sets whether two yielded matches that cover the same target
// vertex/edge set but differ as ordered tuples are both reported, or
// collapsed to one canonical representative. Defaults to false.
func WithPermute(permute bool) Option {
	return func(cfg *matcherConfig) { cfg.permute = permute }
}

// WithVertexPredicate overrides the default element-equality predicate for
// pattern atom v. v is validated against the bound pattern at NewMatcher
// time (ErrInvalidPredicateTarget if out of range).
func WithVertexPredicate(v molgraph.AtomHandle, p label.VertexPredicate) Option {
	return func(cfg *matcherConfig) { cfg.preds.SetVertex(v, p) }
}

// WithEdgePredicate overrides the default bond-order-equality predicate for
// pattern bond e. e is validated against the bound pattern at NewMatcher
// time (ErrInvalidPredicateTarget if out of range).
func WithEdgePredicate(e molgraph.BondHandle, p label.EdgePredicate) Option {
	return func(cfg *matcherConfig) { cfg.preds.SetEdge(e, p) }
}

// WithLogger attaches a diagnostic sink; the Matcher hands it to the
// Engine it drives, which writes through it. A nil Logger is equivalent to
// omitting this option.
func WithLogger(l Logger) Option {
	return func(cfg *matcherConfig) {
		if l == nil {
			l = noopLogger{}
		}
		cfg.logger = l
	}
}
