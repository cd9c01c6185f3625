package store

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDv7Generator(t *testing.T) {
	gen := UUIDv7Generator{}

	a := gen.Generate()
	b := gen.Generate()
	if a == b {
		t.Fatal("Generate() returned the same ID twice")
	}

	id, err := uuid.Parse(a)
	if err != nil {
		t.Fatalf("Generate() = %q, not a UUID: %v", a, err)
	}
	if id.Version() != 7 {
		t.Errorf("version = %d, want 7", id.Version())
	}
}

func TestFixedGenerator(t *testing.T) {
	gen := NewFixedGenerator("run-1", "run-2")

	if got := gen.Generate(); got != "run-1" {
		t.Errorf("Generate() = %q, want run-1", got)
	}
	if got := gen.Generate(); got != "run-2" {
		t.Errorf("Generate() = %q, want run-2", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("Generate() after exhaustion should panic")
		}
	}()
	gen.Generate()
}

var _ IDGenerator = UUIDv7Generator{}
var _ IDGenerator = (*FixedGenerator)(nil)
