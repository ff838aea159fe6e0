package game

import (
	"errors"
	"testing"
)

func TestDefaultRosterOrder(t *testing.T) {
	r := DefaultRoster()

	if r.Len() != 3 {
		t.Fatalf("Expected 3 characters, got %d", r.Len())
	}
	want := []string{"rex", "raptor", "trike"}
	for i, id := range r.IDs() {
		if id != want[i] {
			t.Errorf("Expected id %q at %d, got %q", want[i], i, id)
		}
	}
	if r.First().ID != "rex" {
		t.Errorf("Expected first character rex, got %q", r.First().ID)
	}
}

func TestRosterLookup(t *testing.T) {
	r := DefaultRoster()

	if !r.Has("rex") {
		t.Error("Expected Has(rex) to be true")
	}
	if r.Has("bogus") {
		t.Error("Expected Has(bogus) to be false")
	}

	spec, err := r.Get("raptor")
	if err != nil {
		t.Fatalf("Get(raptor) failed: %v", err)
	}
	if spec.Name != "Raptor" {
		t.Errorf("Expected name Raptor, got %q", spec.Name)
	}
	if spec.Scale != 0.9 {
		t.Errorf("Expected scale 0.9, got %v", spec.Scale)
	}

	_, err = r.Get("bogus")
	if !errors.Is(err, ErrUnknownCharacter) {
		t.Errorf("Expected ErrUnknownCharacter, got %v", err)
	}
}

func TestRosterByIndex(t *testing.T) {
	r := DefaultRoster()

	spec, ok := r.ByIndex(0)
	if !ok || spec.ID != "rex" {
		t.Errorf("Expected rex at index 0, got %q ok=%v", spec.ID, ok)
	}
	spec, ok = r.ByIndex(2)
	if !ok || spec.ID != "trike" {
		t.Errorf("Expected trike at index 2, got %q ok=%v", spec.ID, ok)
	}
	if _, ok := r.ByIndex(3); ok {
		t.Error("Expected index 3 to miss")
	}
	if _, ok := r.ByIndex(-1); ok {
		t.Error("Expected index -1 to miss")
	}
}
