package lattice

import "github.com/crimson-sun/lattice/internal/intersect"

// IntervalPolicy selects how two numeric values generalize into an
// interval.
type IntervalPolicy string

const (
	// Basic generalizes to the tightest bounded interval [min, max].
	Basic IntervalPolicy = "basic"
	// LowerBounded generalizes to [min, +Inf).
	LowerBounded IntervalPolicy = "lower-bounded"
	// UpperAnchored generalizes to [max, +Inf); use when larger values
	// indicate stronger membership.
	UpperAnchored IntervalPolicy = "upper-anchored"
)

// IntervalFunc is a custom numeric generalization: it returns the
// interval [lo, hi] covering both arguments. hi may be +Inf.
type IntervalFunc = intersect.IntervalFunc

// ProgressFunc receives (done, total) query counts during a verbose
// prediction call. It is a reporting side channel with no effect on
// results.
type ProgressFunc func(done, total int)

type options struct {
	consistencyThreshold float64
	minExtentSize        int
	checkNumber          int
	policy               IntervalPolicy
	interval             IntervalFunc
	progress             ProgressFunc
}

// Option configures a Classifier at construction.
type Option func(*options)

// WithConsistencyThreshold sets the minimum majority share within an
// extent required to commit to a label. Default: 0.9.
func WithConsistencyThreshold(t float64) Option {
	return func(o *options) { o.consistencyThreshold = t }
}

// WithMinExtentSize sets the minimum matching-row count before a
// verdict is attempted. Default: 2.
func WithMinExtentSize(n int) Option {
	return func(o *options) { o.minExtentSize = n }
}

// WithCheckNumber sets how many decided extents are gathered before the
// per-query scan stops early, and the minimum vote total required to
// resolve a query. Default: 1.
func WithCheckNumber(n int) Option {
	return func(o *options) { o.checkNumber = n }
}

// WithIntervalPolicy selects one of the named numeric generalization
// policies. Default: Basic.
func WithIntervalPolicy(p IntervalPolicy) Option {
	return func(o *options) {
		o.policy = p
		o.interval = PolicyFunc(p)
	}
}

// WithIntervalFunc supplies a fully custom numeric generalization,
// overriding any named policy.
func WithIntervalFunc(fn IntervalFunc) Option {
	return func(o *options) {
		o.policy = ""
		o.interval = fn
	}
}

// WithProgress sets the callback used by verbose prediction calls.
func WithProgress(fn ProgressFunc) Option {
	return func(o *options) { o.progress = fn }
}

// PolicyFunc returns the interval function for a named policy.
// Unknown policies fall back to Basic.
func PolicyFunc(p IntervalPolicy) IntervalFunc {
	switch p {
	case LowerBounded:
		return intersect.LowerBounded
	case UpperAnchored:
		return intersect.UpperAnchored
	default:
		return intersect.Basic
	}
}

func defaultOptions() options {
	return options{
		consistencyThreshold: 0.9,
		minExtentSize:        2,
		checkNumber:          1,
		policy:               Basic,
		interval:             intersect.Basic,
	}
}

// PredictOption configures a single Predict call.
type PredictOption func(*predictOptions)

type predictOptions struct {
	trainX         []Instance
	trainY         []string
	withConfidence bool
	verbose        bool
}

// WithTrainingData supplies training data for this call only,
// overriding anything stored by Fit.
func WithTrainingData(x []Instance, y []string) PredictOption {
	return func(po *predictOptions) {
		po.trainX = x
		po.trainY = y
	}
}

// WithConfidence records a confidence score on each decided outcome.
func WithConfidence() PredictOption {
	return func(po *predictOptions) { po.withConfidence = true }
}

// WithVerbose enables the progress side channel for this call.
func WithVerbose() PredictOption {
	return func(po *predictOptions) { po.verbose = true }
}
