// Package progress is the optional side channel that reports how far a
// prediction scan has advanced. It never affects results.
package progress

import "go.uber.org/zap"

// Reporter receives per-query progress during a prediction call.
type Reporter interface {
	Step(done, total int)
}

// Nop discards all progress events.
type Nop struct{}

func (Nop) Step(int, int) {}

// Func adapts a plain callback to the Reporter interface.
type Func func(done, total int)

func (f Func) Step(done, total int) { f(done, total) }

// Log reports progress through a zap logger, emitting at most one line
// per Every queries plus a final line.
type Log struct {
	logger *zap.Logger
	every  int
}

// NewLog creates a logging reporter. every <= 0 defaults to 100.
func NewLog(logger *zap.Logger, every int) *Log {
	if every <= 0 {
		every = 100
	}
	return &Log{logger: logger, every: every}
}

func (l *Log) Step(done, total int) {
	if done%l.every != 0 && done != total {
		return
	}
	l.logger.Info("predicting",
		zap.Int("done", done),
		zap.Int("total", total),
	)
}
