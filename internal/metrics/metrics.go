// Package metrics evaluates prediction outcomes against known labels.
package metrics

import "github.com/crimson-sun/lattice/internal/model"

// Summary aggregates classification quality over one outcome sequence.
// Undecided outcomes count against Accuracy but are excluded from
// DecidedAccuracy.
type Summary struct {
	Total           int     `json:"total"`
	Decided         int     `json:"decided"`
	Correct         int     `json:"correct"`
	Accuracy        float64 `json:"accuracy"`
	Coverage        float64 `json:"coverage"`
	DecidedAccuracy float64 `json:"decided_accuracy"`
	Precision       float64 `json:"precision"`
	Recall          float64 `json:"recall"`
	F1              float64 `json:"f1"`
}

// Evaluate compares outcomes to true class labels. positive names the
// class treated as the positive one for precision/recall/F1.
// Outcomes and yTrue are index-aligned.
func Evaluate(yTrue []string, outcomes []model.Outcome, positive string) Summary {
	s := Summary{Total: len(outcomes)}
	tp, fp, fn := 0, 0, 0

	for i, out := range outcomes {
		if !out.Decided {
			if yTrue[i] == positive {
				fn++
			}
			continue
		}
		s.Decided++
		if out.Class == yTrue[i] {
			s.Correct++
		}
		switch {
		case out.Class == positive && yTrue[i] == positive:
			tp++
		case out.Class == positive && yTrue[i] != positive:
			fp++
		case out.Class != positive && yTrue[i] == positive:
			fn++
		}
	}

	if s.Total > 0 {
		s.Accuracy = float64(s.Correct) / float64(s.Total)
		s.Coverage = float64(s.Decided) / float64(s.Total)
	}
	if s.Decided > 0 {
		s.DecidedAccuracy = float64(s.Correct) / float64(s.Decided)
	}
	if tp+fp > 0 {
		s.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		s.Recall = float64(tp) / float64(tp+fn)
	}
	if s.Precision+s.Recall > 0 {
		s.F1 = 2 * s.Precision * s.Recall / (s.Precision + s.Recall)
	}
	return s
}

// Accuracy is the share of outcomes whose class matches the true label,
// with undecided outcomes counting as incorrect.
func Accuracy(yTrue []string, outcomes []model.Outcome) float64 {
	if len(outcomes) == 0 {
		return 0
	}
	correct := 0
	for i, out := range outcomes {
		if out.Decided && out.Class == yTrue[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(outcomes))
}
