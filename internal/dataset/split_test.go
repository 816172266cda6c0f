package dataset

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimson-sun/lattice/internal/model"
	"github.com/crimson-sun/lattice/internal/schema"
)

func numTable(n int) *Table {
	t := &Table{Header: []string{"x"}, Schema: schema.Schema{model.Numeric}}
	for i := 0; i < n; i++ {
		t.X = append(t.X, model.Instance{model.Num(float64(i))})
		label := "even"
		if i%2 == 1 {
			label = "odd"
		}
		t.Y = append(t.Y, label)
	}
	return t
}

func TestSplitSizes(t *testing.T) {
	tbl := numTable(10)
	train, test := tbl.Split(0.3, 1)
	assert.Len(t, test.X, 3)
	assert.Len(t, train.X, 7)
	assert.Len(t, test.Y, 3)
	assert.Len(t, train.Y, 7)
}

func TestSplitKeepsRowsInUnison(t *testing.T) {
	tbl := numTable(20)
	train, test := tbl.Split(0.25, 42)

	check := func(part *Table) {
		for i, inst := range part.X {
			want := "even"
			if int(inst[0].Num())%2 == 1 {
				want = "odd"
			}
			require.Equal(t, want, part.Y[i], "row %d", i)
		}
	}
	check(train)
	check(test)
}

func TestSplitDeterministicPerSeed(t *testing.T) {
	tbl := numTable(12)
	train1, test1 := tbl.Split(0.5, 7)
	train2, test2 := tbl.Split(0.5, 7)

	opt := cmp.AllowUnexported(model.Value{})
	assert.Empty(t, cmp.Diff(train1.X, train2.X, opt))
	assert.Empty(t, cmp.Diff(test1.X, test2.X, opt))

	// A different seed should shuffle differently for this size.
	_, test3 := tbl.Split(0.5, 8)
	assert.NotEmpty(t, cmp.Diff(test1.X, test3.X, opt))
}

func TestSplitNoLabels(t *testing.T) {
	tbl := numTable(4)
	tbl.Y = nil
	train, test := tbl.Split(0.5, 1)
	assert.Nil(t, train.Y)
	assert.Nil(t, test.Y)
}
