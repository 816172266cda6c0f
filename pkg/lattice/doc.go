// Package lattice provides a lazy, pattern-based binary classifier.
// Instead of training a model, every query instance is generalized
// against each stored training instance; when the generalization's
// extent in the training set is pure enough, its majority label votes
// for the query.
//
// Quick start:
//
//	clf := lattice.New(lattice.WithMinExtentSize(1))
//	if err := clf.Fit(trainX, trainY); err != nil {
//	    log.Fatal(err)
//	}
//
//	stream, _ := clf.Predict(queries, lattice.WithConfidence())
//	for {
//	    out, ok := stream.Next()
//	    if !ok {
//	        break
//	    }
//	    fmt.Println(out.Class, out.Confidence)
//	}
//
// Outcomes are produced lazily in query order; a stream is single-pass
// and not safe for concurrent use. Undecided is a valid outcome, not an
// error. Features may mix categorical and numeric columns; the column
// kind is fixed for the whole dataset and derived from the training
// data. Labels may be any two distinct strings.
package lattice
