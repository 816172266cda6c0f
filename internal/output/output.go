// Package output defines destinations for prediction records.
package output

import (
	"context"

	"github.com/crimson-sun/lattice/internal/model"
)

// Record is the externally visible form of one prediction outcome.
type Record struct {
	Index      int     `json:"index"`
	Decided    bool    `json:"decided"`
	Class      string  `json:"class,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}

// FromOutcome builds the record for the outcome of query row index.
func FromOutcome(index int, o model.Outcome) Record {
	return Record{
		Index:      index,
		Decided:    o.Decided,
		Class:      o.Class,
		Confidence: o.Confidence,
	}
}

// Output defines the interface for prediction record destinations.
type Output interface {
	Write(ctx context.Context, rec Record) error
	Close() error
}
