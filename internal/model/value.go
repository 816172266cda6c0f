package model

import "strconv"

// Kind identifies how a feature column is compared. It is fixed per
// column for the whole dataset, never per cell.
type Kind int

const (
	// Categorical columns hold discrete symbols with exact-match semantics.
	Categorical Kind = iota
	// Numeric columns hold real numbers with interval semantics.
	Numeric
)

func (k Kind) String() string {
	switch k {
	case Categorical:
		return "categorical"
	case Numeric:
		return "numeric"
	default:
		return "unknown"
	}
}

// Value is a single feature cell. Which accessor is meaningful is
// decided by the column's Kind in the dataset schema.
type Value struct {
	kind Kind
	sym  string
	num  float64
}

// Sym creates a categorical value.
func Sym(s string) Value {
	return Value{kind: Categorical, sym: s}
}

// Num creates a numeric value.
func Num(f float64) Value {
	return Value{kind: Numeric, num: f}
}

// Kind returns the kind the value was constructed with.
func (v Value) Kind() Kind { return v.kind }

// Sym returns the categorical symbol. Zero for numeric values.
func (v Value) Sym() string { return v.sym }

// Num returns the numeric value. Zero for categorical values.
func (v Value) Num() float64 { return v.num }

func (v Value) String() string {
	if v.kind == Categorical {
		return v.sym
	}
	return strconv.FormatFloat(v.num, 'g', -1, 64)
}

// Instance is an ordered fixed-length vector of feature values.
type Instance []Value
