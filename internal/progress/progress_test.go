package progress

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestFuncAdapter(t *testing.T) {
	var got [][2]int
	r := Func(func(done, total int) {
		got = append(got, [2]int{done, total})
	})
	r.Step(1, 3)
	r.Step(2, 3)
	if len(got) != 2 || got[0] != [2]int{1, 3} || got[1] != [2]int{2, 3} {
		t.Fatalf("unexpected steps: %v", got)
	}
}

func TestLogEmitsAtIntervalAndFinal(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := NewLog(zap.New(core), 2)

	total := 5
	for done := 1; done <= total; done++ {
		r.Step(done, total)
	}

	// done=2, done=4, and the final done=5.
	if logs.Len() != 3 {
		t.Fatalf("expected 3 log lines, got %d", logs.Len())
	}
	last := logs.All()[logs.Len()-1]
	fields := last.ContextMap()
	if fields["done"] != int64(5) || fields["total"] != int64(5) {
		t.Fatalf("unexpected final fields: %v", fields)
	}
}

func TestLogDefaultInterval(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := NewLog(zap.New(core), 0)

	for done := 1; done <= 99; done++ {
		r.Step(done, 200)
	}
	if logs.Len() != 0 {
		t.Fatalf("expected no lines below default interval, got %d", logs.Len())
	}
	r.Step(100, 200)
	if logs.Len() != 1 {
		t.Fatalf("expected one line at interval, got %d", logs.Len())
	}
}
