// Package pipeline drains a prediction stream into an output
// destination.
package pipeline

import (
	"context"
	"fmt"

	"github.com/crimson-sun/lattice/internal/encoding"
	"github.com/crimson-sun/lattice/internal/engine"
	"github.com/crimson-sun/lattice/internal/output"
)

// Run pulls outcomes from the stream in query order, maps labels back
// to the caller's classes, and writes one record per query. Stops early
// when the context is cancelled; the remaining queries are then never
// evaluated.
func Run(ctx context.Context, stream *engine.Stream, bin *encoding.Binarizer, out output.Output) error {
	idx := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		o, ok := stream.Next()
		if !ok {
			return nil
		}
		if o.Decided {
			o.Class = bin.Class(o.Label)
		}
		if err := out.Write(ctx, output.FromOutcome(idx, o)); err != nil {
			return fmt.Errorf("pipeline output: %w", err)
		}
		idx++
	}
}
