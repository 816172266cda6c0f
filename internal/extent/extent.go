// Package extent computes the training subset matching a pattern and
// turns its label counts into a verdict.
package extent

import (
	"github.com/crimson-sun/lattice/internal/model"
	"github.com/crimson-sun/lattice/internal/schema"
)

// Evaluator decides whether a pattern's extent commits to a label.
// It is read-only over the training data and safe to share.
type Evaluator struct {
	schema        schema.Schema
	minExtentSize int
	threshold     float64
}

// New creates an Evaluator with the given minimum extent size and
// consistency threshold.
func New(s schema.Schema, minExtentSize int, threshold float64) *Evaluator {
	return &Evaluator{schema: s, minExtentSize: minExtentSize, threshold: threshold}
}

// Evaluate scans the training set for rows satisfying pattern and
// returns the majority label when the extent is large and pure enough.
// Undersized extents and exact label splits yield Undecided.
func (e *Evaluator) Evaluate(pattern model.Pattern, trainX []model.Instance, trainY []int) model.Verdict {
	count0, count1 := 0, 0
	for i, row := range trainX {
		if !e.matches(pattern, row) {
			continue
		}
		if trainY[i] == 1 {
			count1++
		} else {
			count0++
		}
	}

	size := count0 + count1
	if size < e.minExtentSize {
		return model.Undecided
	}
	if count0 == count1 {
		// No label dominates an exact split.
		return model.Undecided
	}

	majority, verdict := count0, model.Label0
	if count1 > count0 {
		majority, verdict = count1, model.Label1
	}
	if float64(majority)/float64(size) >= e.threshold {
		return verdict
	}
	return model.Undecided
}

// matches reports whether row satisfies pattern: categorical columns
// must equal the pattern symbol unless the pattern is a wildcard, and
// numeric columns must lie within [Lo, Hi] inclusive.
func (e *Evaluator) matches(pattern model.Pattern, row model.Instance) bool {
	for i := range pattern {
		if e.schema[i] == model.Categorical {
			if pattern[i].Wildcard {
				continue
			}
			if row[i].Sym() != pattern[i].Sym {
				return false
			}
			continue
		}
		v := row[i].Num()
		if v < pattern[i].Lo || v > pattern[i].Hi {
			return false
		}
	}
	return true
}
