// Package intersect computes the generalized pattern shared by a query
// instance and a training instance.
package intersect

import (
	"math"

	"github.com/crimson-sun/lattice/internal/model"
	"github.com/crimson-sun/lattice/internal/schema"
)

// IntervalFunc generalizes two numeric feature values into an interval
// [lo, hi]. hi may be +Inf for open-ended policies. Implementations
// must be deterministic and order-insensitive in their bounds.
type IntervalFunc func(a, b float64) (lo, hi float64)

// Basic returns the tightest bounded interval containing both values.
func Basic(a, b float64) (float64, float64) {
	return math.Min(a, b), math.Max(a, b)
}

// LowerBounded returns [min(a,b), +Inf); only the lower bound constrains.
func LowerBounded(a, b float64) (float64, float64) {
	return math.Min(a, b), math.Inf(1)
}

// UpperAnchored returns [max(a,b), +Inf); used when larger values
// indicate stronger membership.
func UpperAnchored(a, b float64) (float64, float64) {
	return math.Max(a, b), math.Inf(1)
}

// Intersector generalizes query rows against training rows under a
// fixed column schema and interval policy.
type Intersector struct {
	schema   schema.Schema
	interval IntervalFunc
}

// New creates an Intersector. A nil interval function falls back to Basic.
func New(s schema.Schema, interval IntervalFunc) *Intersector {
	if interval == nil {
		interval = Basic
	}
	return &Intersector{schema: s, interval: interval}
}

// Generalize computes the pattern shared by query and trainRow.
// Categorical columns keep a shared symbol or widen to the wildcard;
// numeric columns widen to the policy interval. Pure and deterministic.
func (it *Intersector) Generalize(query, trainRow model.Instance) model.Pattern {
	p := make(model.Pattern, len(query))
	for i := range query {
		if it.schema[i] == model.Categorical {
			if query[i].Sym() == trainRow[i].Sym() {
				p[i] = model.PatternValue{Sym: query[i].Sym()}
			} else {
				p[i] = model.PatternValue{Wildcard: true}
			}
			continue
		}
		lo, hi := it.interval(query[i].Num(), trainRow[i].Num())
		p[i] = model.PatternValue{Lo: lo, Hi: hi}
	}
	return p
}
