package stdout

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/crimson-sun/lattice/internal/output"
)

func TestWriteNDJSON(t *testing.T) {
	var buf bytes.Buffer
	o := NewWriter(&buf, false)

	recs := []output.Record{
		{Index: 0, Decided: true, Class: "pos", Confidence: 1.0},
		{Index: 1},
	}
	for _, rec := range recs {
		if err := o.Write(context.Background(), rec); err != nil {
			t.Fatalf("Write() error: %v", err)
		}
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	var first map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if first["class"] != "pos" || first["confidence"] != 1.0 {
		t.Fatalf("unexpected first record: %v", first)
	}

	// Undecided records omit class and confidence.
	var second map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := second["class"]; ok {
		t.Fatal("class should be omitted for undecided records")
	}
	if _, ok := second["confidence"]; ok {
		t.Fatal("confidence should be omitted for undecided records")
	}
	if second["decided"] != false {
		t.Fatalf("expected decided=false, got %v", second["decided"])
	}
}

func TestWritePretty(t *testing.T) {
	var buf bytes.Buffer
	o := NewWriter(&buf, true)
	if err := o.Write(context.Background(), output.Record{Index: 0, Decided: true, Class: "a"}); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Fatal("expected indented JSON")
	}
}
