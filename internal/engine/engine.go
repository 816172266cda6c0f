// Package engine runs the per-query scan-and-vote loop over an
// immutable training snapshot.
package engine

import (
	"github.com/crimson-sun/lattice/internal/extent"
	"github.com/crimson-sun/lattice/internal/intersect"
	"github.com/crimson-sun/lattice/internal/model"
	"github.com/crimson-sun/lattice/internal/progress"
)

// Engine orchestrates the generalize → evaluate → vote loop. The
// training data it holds must not be mutated while any Stream produced
// by Predict is live.
type Engine struct {
	intersector *intersect.Intersector
	evaluator   *extent.Evaluator
	trainX      []model.Instance
	trainY      []int
	checkNumber int
}

// New creates an Engine over the given training snapshot. checkNumber
// is the number of decided extents gathered before the scan stops, and
// the minimum vote total required to resolve a query.
func New(it *intersect.Intersector, ev *extent.Evaluator, trainX []model.Instance, trainY []int, checkNumber int) *Engine {
	return &Engine{
		intersector: it,
		evaluator:   ev,
		trainX:      trainX,
		trainY:      trainY,
		checkNumber: checkNumber,
	}
}

// classify resolves a single query instance. Training rows are scanned
// in original order; undecided extents do not count toward the stopping
// budget. Once checkNumber decided extents are gathered the scan stops
// early and remaining rows are not examined.
func (e *Engine) classify(x model.Instance, withConfidence bool) model.Outcome {
	checked := 0
	votes0, votes1 := 0, 0

	for i := range e.trainX {
		pattern := e.intersector.Generalize(x, e.trainX[i])
		switch e.evaluator.Evaluate(pattern, e.trainX, e.trainY) {
		case model.Label0:
			votes0++
			checked++
		case model.Label1:
			votes1++
			checked++
		default:
			continue
		}
		if checked >= e.checkNumber {
			break
		}
	}

	// Not enough corroborating extents before the set was exhausted,
	// or an exact vote split: undecided.
	if votes0+votes1 < e.checkNumber || votes0 == votes1 {
		return model.Outcome{}
	}

	label, winning := 0, votes0
	if votes1 > votes0 {
		label, winning = 1, votes1
	}
	out := model.Outcome{Decided: true, Label: label}
	if withConfidence {
		out.Confidence = float64(winning) / float64(checked)
	}
	return out
}

// Predict returns the lazy outcome sequence for the given queries.
// Each call returns an independent Stream with its own counters, so
// two streams from the same engine never share mutable state.
func (e *Engine) Predict(queries []model.Instance, withConfidence bool, rep progress.Reporter) *Stream {
	if rep == nil {
		rep = progress.Nop{}
	}
	return &Stream{
		engine:         e,
		queries:        queries,
		withConfidence: withConfidence,
		reporter:       rep,
	}
}

// Stream is the lazy, single-pass outcome sequence of one predict
// call. Outcomes are produced in query order, exactly one per query.
// A Stream is forward-only, not restartable, and not safe for
// concurrent use.
type Stream struct {
	engine         *Engine
	queries        []model.Instance
	withConfidence bool
	reporter       progress.Reporter
	next           int
}

// Len returns the total number of queries in the stream.
func (s *Stream) Len() int { return len(s.queries) }

// Next resolves and returns the outcome for the next query row.
// ok is false once every query has been consumed.
func (s *Stream) Next() (model.Outcome, bool) {
	if s.next >= len(s.queries) {
		return model.Outcome{}, false
	}
	x := s.queries[s.next]
	s.next++
	out := s.engine.classify(x, s.withConfidence)
	s.reporter.Step(s.next, len(s.queries))
	return out, true
}

// Collect materializes the remaining outcomes in query order.
// Consuming the stream fully this way is equivalent to eager
// evaluation.
func (s *Stream) Collect() []model.Outcome {
	outcomes := make([]model.Outcome, 0, len(s.queries)-s.next)
	for {
		out, ok := s.Next()
		if !ok {
			return outcomes
		}
		outcomes = append(outcomes, out)
	}
}
