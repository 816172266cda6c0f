package dataset

import "math/rand"

// Split partitions the table into train and test subsets by testRatio,
// shuffling rows with the given seed. Instances and labels stay in
// unison. The same seed always yields the same partition.
func (t *Table) Split(testRatio float64, seed int64) (train, test *Table) {
	n := len(t.X)
	indices := rand.New(rand.NewSource(seed)).Perm(n)
	nTest := int(float64(n) * testRatio)

	train = &Table{Header: t.Header, Schema: t.Schema}
	test = &Table{Header: t.Header, Schema: t.Schema}
	for i, idx := range indices {
		dst := train
		if i < nTest {
			dst = test
		}
		dst.X = append(dst.X, t.X[idx])
		if t.Y != nil {
			dst.Y = append(dst.Y, t.Y[idx])
		}
	}
	return train, test
}
