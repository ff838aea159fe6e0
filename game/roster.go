// Package game implements the runner gameplay: the selectable character
// roster, player kinematics, the scrolling obstacle field, and the stage
// that assembles them into a scene
package game

import (
	"errors"
	"fmt"

	"github.com/Tokenzrey/dinosaurus/terminal"
)

// ErrUnknownCharacter is returned when a roster lookup misses
var ErrUnknownCharacter = errors.New("unknown character")

// CharacterSpec describes one selectable runner
type CharacterSpec struct {
	ID    string
	Name  string
	Body  terminal.RGB
	Scale float64
}

// Roster is the fixed set of selectable characters in menu order
type Roster struct {
	order []string
	byID  map[string]CharacterSpec
}

// NewRoster builds a roster preserving the given order
func NewRoster(specs ...CharacterSpec) *Roster {
	r := &Roster{byID: make(map[string]CharacterSpec, len(specs))}
	for _, spec := range specs {
		r.order = append(r.order, spec.ID)
		r.byID[spec.ID] = spec
	}
	return r
}

// DefaultRoster returns the built-in characters
func DefaultRoster() *Roster {
	return NewRoster(
		CharacterSpec{ID: "rex", Name: "Rex", Body: terminal.RGB{R: 96, G: 130, B: 78}, Scale: 1.0},
		CharacterSpec{ID: "raptor", Name: "Raptor", Body: terminal.RGB{R: 158, G: 104, B: 66}, Scale: 0.9},
		CharacterSpec{ID: "trike", Name: "Trike", Body: terminal.RGB{R: 92, G: 108, B: 146}, Scale: 1.1},
	)
}

// Has reports whether id names a roster entry
func (r *Roster) Has(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// Get returns the spec for id
func (r *Roster) Get(id string) (CharacterSpec, error) {
	spec, ok := r.byID[id]
	if !ok {
		return CharacterSpec{}, fmt.Errorf("character %q: %w", id, ErrUnknownCharacter)
	}
	return spec, nil
}

// ByIndex returns the spec at menu position i
func (r *Roster) ByIndex(i int) (CharacterSpec, bool) {
	if i < 0 || i >= len(r.order) {
		return CharacterSpec{}, false
	}
	return r.byID[r.order[i]], true
}

// IDs returns the roster ids in menu order
func (r *Roster) IDs() []string {
	return r.order
}

// First returns the leading roster entry, the fallback character
func (r *Roster) First() CharacterSpec {
	return r.byID[r.order[0]]
}

// Len returns the roster size
func (r *Roster) Len() int {
	return len(r.order)
}
