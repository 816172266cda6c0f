package lattice

import "fmt"

// Estimator is the fixed capability contract expected by generic ML
// tooling built around this package: fit, predict, score, and
// parameter access, with explicit signatures rather than reflective
// attribute inspection.
type Estimator interface {
	Fit(x []Instance, y []string) error
	Predict(x []Instance, opts ...PredictOption) (*Stream, error)
	Score(x []Instance, y []string) (float64, error)
	Params() Params
	SetParams(p Params) error
}

var _ Estimator = (*Classifier)(nil)

// Params is the recognized hyperparameter set of the classifier.
// IntervalPolicy is empty when a custom interval function is active.
type Params struct {
	ConsistencyThreshold float64
	MinExtentSize        int
	CheckNumber          int
	IntervalPolicy       IntervalPolicy
}

// Params returns the classifier's current hyperparameters.
func (c *Classifier) Params() Params {
	return Params{
		ConsistencyThreshold: c.opts.consistencyThreshold,
		MinExtentSize:        c.opts.minExtentSize,
		CheckNumber:          c.opts.checkNumber,
		IntervalPolicy:       c.opts.policy,
	}
}

// SetParams replaces the classifier's hyperparameters. A custom
// interval function set at construction is kept when IntervalPolicy is
// empty. Stored training data is unaffected.
func (c *Classifier) SetParams(p Params) error {
	if p.ConsistencyThreshold <= 0 || p.ConsistencyThreshold > 1 {
		return fmt.Errorf("lattice: consistency threshold %v outside (0, 1]", p.ConsistencyThreshold)
	}
	if p.MinExtentSize < 1 {
		return fmt.Errorf("lattice: min extent size %d < 1", p.MinExtentSize)
	}
	if p.CheckNumber < 1 {
		return fmt.Errorf("lattice: check number %d < 1", p.CheckNumber)
	}
	switch p.IntervalPolicy {
	case "", Basic, LowerBounded, UpperAnchored:
	default:
		return fmt.Errorf("lattice: unknown interval policy %q", p.IntervalPolicy)
	}

	c.opts.consistencyThreshold = p.ConsistencyThreshold
	c.opts.minExtentSize = p.MinExtentSize
	c.opts.checkNumber = p.CheckNumber
	if p.IntervalPolicy != "" {
		c.opts.policy = p.IntervalPolicy
		c.opts.interval = PolicyFunc(p.IntervalPolicy)
	}
	return nil
}
