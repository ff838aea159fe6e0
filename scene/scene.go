package scene

import (
	"github.com/Tokenzrey/dinosaurus/vmath"
)

// Scene is the ordered collection of actors owned by the active session
// The scene pointer stays stable for the process lifetime; transitions
// swap its contents, never the scene itself
type Scene struct {
	actors []*Actor
}

func NewScene() *Scene {
	return &Scene{}
}

func (s *Scene) Add(a *Actor) {
	s.actors = append(s.actors, a)
}

// Remove detaches an actor without disposing it
func (s *Scene) Remove(a *Actor) bool {
	for i, actor := range s.actors {
		if actor == a {
			s.actors = append(s.actors[:i], s.actors[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Scene) Len() int {
	return len(s.actors)
}

// Actors returns the root actor list; callers must not mutate it
func (s *Scene) Actors() []*Actor {
	return s.actors
}

func (s *Scene) Find(name string) *Actor {
	for _, a := range s.actors {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// Clear disposes every actor and empties the scene
func (s *Scene) Clear() {
	for _, a := range s.actors {
		a.Dispose()
	}
	s.actors = s.actors[:0]
}

// Visit walks all actors depth-first with composed world transforms
func (s *Scene) Visit(fn func(a *Actor, world vmath.Mat4)) {
	identity := vmath.M4Identity()
	for _, a := range s.actors {
		a.visit(identity, fn)
	}
}

// Light returns the first light rig in the scene, or nil
func (s *Scene) Light() *DirectionalLight {
	for _, a := range s.actors {
		if a.Light != nil {
			return a.Light
		}
	}
	return nil
}
