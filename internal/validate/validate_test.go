package validate

import (
	"errors"
	"testing"

	"github.com/crimson-sun/lattice/internal/model"
	"github.com/crimson-sun/lattice/internal/schema"
)

func TestXY(t *testing.T) {
	x := []model.Instance{{model.Num(1)}, {model.Num(2)}}
	if err := XY(x, []string{"a", "b"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := XY(nil, []string{"a"}); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
	if err := XY(x, nil); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
	if err := XY(x, []string{"a"}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestMatrix(t *testing.T) {
	s := schema.Schema{model.Numeric}
	if err := Matrix([]model.Instance{{model.Num(1)}}, s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Matrix(nil, s); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
	if err := Matrix([]model.Instance{{model.Sym("a")}}, s); err == nil {
		t.Fatal("expected schema error")
	}
}
