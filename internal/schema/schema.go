// Package schema derives and enforces the per-column kind layout of a
// dataset. Kinds are computed once when training data is supplied and
// reused for every comparison, so the hot loops never inspect cell
// types.
package schema

import (
	"errors"
	"fmt"

	"github.com/crimson-sun/lattice/internal/model"
)

// ErrEmpty is returned when a schema is requested for an empty dataset.
var ErrEmpty = errors.New("schema: no instances to infer from")

// Schema records the Kind of every feature column.
type Schema []model.Kind

// Infer derives the column schema from the first instance. Check should
// be called afterwards to verify the remaining rows conform.
func Infer(rows []model.Instance) (Schema, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}
	s := make(Schema, len(rows[0]))
	for i, v := range rows[0] {
		s[i] = v.Kind()
	}
	return s, nil
}

// Check verifies that every instance matches the schema in arity and
// per-column kind.
func (s Schema) Check(rows []model.Instance) error {
	for r, row := range rows {
		if len(row) != len(s) {
			return fmt.Errorf("schema: row %d has %d features, want %d", r, len(row), len(s))
		}
		for i, v := range row {
			if v.Kind() != s[i] {
				return fmt.Errorf("schema: row %d column %d is %s, want %s", r, i, v.Kind(), s[i])
			}
		}
	}
	return nil
}

// NumericColumns returns the count of numeric columns.
func (s Schema) NumericColumns() int {
	n := 0
	for _, k := range s {
		if k == model.Numeric {
			n++
		}
	}
	return n
}
