package model

// Verdict is the result of evaluating one pattern's extent against the
// training set: a committed label or Undecided.
type Verdict int

const (
	Undecided Verdict = iota
	Label0
	Label1
)

func (v Verdict) String() string {
	switch v {
	case Label0:
		return "label0"
	case Label1:
		return "label1"
	default:
		return "undecided"
	}
}

// Outcome is the final prediction for a single query instance.
// Undecided is a valid, expected outcome, not an error.
type Outcome struct {
	Decided    bool
	Label      int     // 0 or 1, meaningful only when Decided
	Class      string  // original class label, set once mapped back
	Confidence float64 // winning vote share in (0.5, 1.0]; 0 when not recorded
}
