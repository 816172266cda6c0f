// Package validate performs the shape checks that must pass before the
// core prediction loop runs. The core itself assumes shape-consistent,
// schema-consistent input.
package validate

import (
	"errors"
	"fmt"

	"github.com/crimson-sun/lattice/internal/model"
	"github.com/crimson-sun/lattice/internal/schema"
)

var (
	// ErrEmpty is returned for empty instance or label arrays.
	ErrEmpty = errors.New("validate: empty input")
	// ErrLengthMismatch is returned when instances and labels disagree
	// in length.
	ErrLengthMismatch = errors.New("validate: instances and labels differ in length")
)

// XY checks that X and y are non-empty and of equal length.
func XY(x []model.Instance, y []string) error {
	if len(x) == 0 {
		return fmt.Errorf("%w: no instances", ErrEmpty)
	}
	if len(y) == 0 {
		return fmt.Errorf("%w: no labels", ErrEmpty)
	}
	if len(x) != len(y) {
		return fmt.Errorf("%w: %d instances, %d labels", ErrLengthMismatch, len(x), len(y))
	}
	return nil
}

// Matrix checks that rows is non-empty and conforms to the schema.
func Matrix(rows []model.Instance, s schema.Schema) error {
	if len(rows) == 0 {
		return fmt.Errorf("%w: no instances", ErrEmpty)
	}
	return s.Check(rows)
}
