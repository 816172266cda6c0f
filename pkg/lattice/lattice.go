package lattice

import (
	"errors"
	"fmt"

	"github.com/crimson-sun/lattice/internal/encoding"
	"github.com/crimson-sun/lattice/internal/engine"
	"github.com/crimson-sun/lattice/internal/extent"
	"github.com/crimson-sun/lattice/internal/intersect"
	"github.com/crimson-sun/lattice/internal/model"
	"github.com/crimson-sun/lattice/internal/progress"
	"github.com/crimson-sun/lattice/internal/schema"
	"github.com/crimson-sun/lattice/internal/validate"
)

// Value is a single feature cell; build one with Num or Sym.
type Value = model.Value

// Instance is an ordered fixed-length vector of feature values.
type Instance = model.Instance

// Num creates a numeric feature value.
func Num(f float64) Value { return model.Num(f) }

// Sym creates a categorical feature value.
func Sym(s string) Value { return model.Sym(s) }

// Outcome is the prediction for one query instance. When Decided is
// false the classifier could not commit to either class; that is a
// valid result, not an error.
type Outcome struct {
	Decided    bool
	Class      string
	Confidence float64 // winning vote share in (0.5, 1.0]; 0 unless requested
}

var (
	// ErrNotFitted is returned by Predict and Score when no training
	// data is stored and none was supplied for the call.
	ErrNotFitted = errors.New("lattice: classifier is not fitted")
	// ErrNotBinary is returned when the label set does not contain
	// exactly two distinct classes.
	ErrNotBinary = encoding.ErrNotBinary
)

// Classifier is a lazy pattern-based binary classifier. There is no
// training step; Fit only validates and stores the data scanned at
// prediction time.
//
// A Classifier is safe for concurrent Predict calls: every call
// snapshots its training data and returns a Stream with its own
// counters. Individual Streams are single-pass and not safe for
// concurrent use.
type Classifier struct {
	opts options

	trainX []model.Instance
	trainY []int
	bin    *encoding.Binarizer
	schema schema.Schema
}

// New creates a Classifier. Defaults: consistency threshold 0.9,
// minimum extent size 2, check number 1, Basic interval policy.
func New(opts ...Option) *Classifier {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Classifier{opts: o}
}

// Fit validates and stores training data for later prediction calls.
// It does not train a model. Labels may be any two distinct strings;
// anything else fails with ErrNotBinary.
func (c *Classifier) Fit(x []Instance, y []string) error {
	trainX, trainY, bin, sch, err := prepare(x, y)
	if err != nil {
		return err
	}
	c.trainX, c.trainY, c.bin, c.schema = trainX, trainY, bin, sch
	return nil
}

// Predict returns the lazy outcome stream for the query instances,
// one outcome per query in input order. Training data stored by Fit is
// used unless WithTrainingData overrides it for this call.
func (c *Classifier) Predict(x []Instance, opts ...PredictOption) (*Stream, error) {
	var po predictOptions
	for _, opt := range opts {
		opt(&po)
	}

	trainX, trainY, bin, sch := c.trainX, c.trainY, c.bin, c.schema
	if po.trainX != nil || po.trainY != nil {
		var err error
		trainX, trainY, bin, sch, err = prepare(po.trainX, po.trainY)
		if err != nil {
			return nil, err
		}
	}
	if len(trainX) == 0 {
		return nil, ErrNotFitted
	}

	if err := validate.Matrix(x, sch); err != nil {
		return nil, fmt.Errorf("lattice: queries: %w", err)
	}

	it := intersect.New(sch, c.opts.interval)
	ev := extent.New(sch, c.opts.minExtentSize, c.opts.consistencyThreshold)
	eng := engine.New(it, ev, trainX, trainY, c.opts.checkNumber)

	var rep progress.Reporter
	if po.verbose && c.opts.progress != nil {
		rep = progress.Func(c.opts.progress)
	}
	return &Stream{
		inner: eng.Predict(x, po.withConfidence, rep),
		bin:   bin,
	}, nil
}

// Score predicts x and returns the share of outcomes matching y, with
// undecided outcomes counting as incorrect.
func (c *Classifier) Score(x []Instance, y []string) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("lattice: %w", validate.ErrLengthMismatch)
	}
	stream, err := c.Predict(x)
	if err != nil {
		return 0, err
	}
	correct := 0
	for i := 0; ; i++ {
		out, ok := stream.Next()
		if !ok {
			break
		}
		if out.Decided && out.Class == y[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(y)), nil
}

// Classes returns the two class labels in mapping order. Zero values
// before Fit.
func (c *Classifier) Classes() [2]string {
	if c.bin == nil {
		return [2]string{}
	}
	return c.bin.Classes()
}

// prepare validates training input and builds the binarized snapshot.
func prepare(x []Instance, y []string) ([]model.Instance, []int, *encoding.Binarizer, schema.Schema, error) {
	if err := validate.XY(x, y); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("lattice: %w", err)
	}
	sch, err := schema.Infer(x)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("lattice: %w", err)
	}
	if err := sch.Check(x); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("lattice: %w", err)
	}
	bin, err := encoding.NewBinarizer(y)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("lattice: %w", err)
	}
	labels, err := bin.Transform(y)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("lattice: %w", err)
	}
	return x, labels, bin, sch, nil
}

// Stream is the lazy outcome sequence of one Predict call: single-pass,
// forward-only, not restartable, and not safe for concurrent use.
type Stream struct {
	inner *engine.Stream
	bin   *encoding.Binarizer
}

// Len returns the total number of queries in the stream.
func (s *Stream) Len() int { return s.inner.Len() }

// Next resolves the next query and returns its outcome. ok is false
// once every query has been consumed.
func (s *Stream) Next() (Outcome, bool) {
	o, ok := s.inner.Next()
	if !ok {
		return Outcome{}, false
	}
	out := Outcome{Decided: o.Decided, Confidence: o.Confidence}
	if o.Decided {
		out.Class = s.bin.Class(o.Label)
	}
	return out, true
}

// Collect materializes the remaining outcomes in query order.
func (s *Stream) Collect() []Outcome {
	outcomes := make([]Outcome, 0, s.inner.Len())
	for {
		out, ok := s.Next()
		if !ok {
			return outcomes
		}
		outcomes = append(outcomes, out)
	}
}
