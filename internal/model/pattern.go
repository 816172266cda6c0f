package model

import (
	"fmt"
	"math"
	"strings"
)

// PatternValue is one generalized feature of a Pattern. For a
// categorical column it is either an exact symbol or the wildcard; for
// a numeric column it is the closed interval [Lo, Hi], where Hi may be
// +Inf under open-ended interval policies.
type PatternValue struct {
	Wildcard bool
	Sym      string
	Lo, Hi   float64
}

// Pattern is a generalized description of two instances, one value per
// feature column. Pattern arity always equals instance arity.
type Pattern []PatternValue

// String renders the pattern for debugging and verbose output.
func (p Pattern) String() string {
	parts := make([]string, len(p))
	for i, pv := range p {
		switch {
		case pv.Wildcard:
			parts[i] = "*"
		case pv.Sym != "":
			parts[i] = pv.Sym
		case math.IsInf(pv.Hi, 1):
			parts[i] = fmt.Sprintf("[%g,+inf)", pv.Lo)
		default:
			parts[i] = fmt.Sprintf("[%g,%g]", pv.Lo, pv.Hi)
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
