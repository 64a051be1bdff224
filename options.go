package huequant

import "github.com/huequant/huequant/pixel"

// DefaultMaxColors bounds histogram cardinality when WithMaxColors is
// not given.
const DefaultMaxColors = 1 << 16

type options struct {
	gamma      float64
	maxColors  int
	ignoreBits int
	importance []float32
	workers    int
	logger     *Logger
}

func defaultOptions() *options {
	return &options{
		gamma:     pixel.DefaultGamma,
		maxColors: DefaultMaxColors,
		workers:   1,
		logger:    NoopLogger(),
	}
}

// Option configures ComputeHistogram behavior.
type Option func(*options)

// WithGamma sets the gamma used to linearize 8-bit channels into
// perceptual values. Values <= 0 fall back to pixel.DefaultGamma.
func WithGamma(gamma float64) Option {
	return func(o *options) {
		o.gamma = gamma
	}
}

// WithMaxColors caps the number of distinct post-posterization colors.
// Exceeding the cap fails the whole build with *ErrTooManyColors.
func WithMaxColors(n int) Option {
	return func(o *options) {
		o.maxColors = n
	}
}

// WithIgnoreBits sets the posterization level: the lowest n bits of each
// channel are zeroed before hashing, merging near-duplicate colors. This
// is the knob that trades histogram precision for bounded size; raising
// it never increases the distinct-color count. Valid range is 0..7.
func WithIgnoreBits(n int) Option {
	return func(o *options) {
		o.ignoreBits = n
	}
}

// WithImportance supplies one scalar per pixel, row-major and aligned
// with the raster. Each pixel then contributes 0.5 + importance to its
// color's weight instead of 1.0, biasing the histogram toward visually
// important regions (e.g. from a saliency map) without altering color
// identity.
func WithImportance(importance []float32) Option {
	return func(o *options) {
		o.importance = importance
	}
}

// WithWorkers splits the scan across n row ranges built concurrently and
// merged under the same color bound.
//
// The default of 1 keeps the sequential reference behavior, including
// the (unspecified but stable) materialization order. Values above the
// row count are clamped.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}

// WithLogger sets the logger used for build telemetry.
// Defaults to NoopLogger.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
