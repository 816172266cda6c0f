// Package encoding maps the caller's two class labels onto the {0, 1}
// representation the core operates on, and back.
package encoding

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNotBinary is returned when the label set does not contain exactly
// two distinct classes.
var ErrNotBinary = errors.New("encoding: label set must contain exactly two distinct classes")

// Binarizer holds the two class labels in sorted order; the smaller
// maps to 0 and the larger to 1.
type Binarizer struct {
	classes [2]string
}

// NewBinarizer scans y for its distinct classes. Any label set other
// than exactly two distinct values is rejected with ErrNotBinary.
func NewBinarizer(y []string) (*Binarizer, error) {
	seen := make(map[string]struct{}, 2)
	for _, label := range y {
		seen[label] = struct{}{}
		if len(seen) > 2 {
			return nil, fmt.Errorf("%w: found more than two", ErrNotBinary)
		}
	}
	if len(seen) != 2 {
		return nil, fmt.Errorf("%w: found %d", ErrNotBinary, len(seen))
	}

	classes := make([]string, 0, 2)
	for label := range seen {
		classes = append(classes, label)
	}
	sort.Strings(classes)
	return &Binarizer{classes: [2]string{classes[0], classes[1]}}, nil
}

// Transform maps labels to {0, 1}. Labels outside the binarizer's class
// set are reported as an error.
func (b *Binarizer) Transform(y []string) ([]int, error) {
	out := make([]int, len(y))
	for i, label := range y {
		switch label {
		case b.classes[0]:
			out[i] = 0
		case b.classes[1]:
			out[i] = 1
		default:
			return nil, fmt.Errorf("encoding: unknown class %q", label)
		}
	}
	return out, nil
}

// Class returns the original label for a binarized value.
func (b *Binarizer) Class(label int) string {
	if label == 1 {
		return b.classes[1]
	}
	return b.classes[0]
}

// Classes returns the two class labels in mapping order.
func (b *Binarizer) Classes() [2]string { return b.classes }
