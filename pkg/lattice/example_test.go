package lattice_test

import (
	"fmt"
	"log"

	"github.com/crimson-sun/lattice/pkg/lattice"
)

func Example() {
	trainX := []lattice.Instance{
		{lattice.Num(1.0), lattice.Sym("a")},
		{lattice.Num(2.0), lattice.Sym("a")},
		{lattice.Num(5.0), lattice.Sym("b")},
	}
	trainY := []string{"ok", "ok", "fraud"}

	clf := lattice.New(lattice.WithMinExtentSize(1))
	if err := clf.Fit(trainX, trainY); err != nil {
		log.Fatal(err)
	}

	stream, err := clf.Predict([]lattice.Instance{
		{lattice.Num(1.5), lattice.Sym("a")},
		{lattice.Num(5.5), lattice.Sym("b")},
	}, lattice.WithConfidence())
	if err != nil {
		log.Fatal(err)
	}

	for {
		out, ok := stream.Next()
		if !ok {
			break
		}
		fmt.Printf("%s (%.1f)\n", out.Class, out.Confidence)
	}
	// Output:
	// ok (1.0)
	// fraud (1.0)
}
