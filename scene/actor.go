package scene

import (
	"github.com/Tokenzrey/dinosaurus/terminal"
	"github.com/Tokenzrey/dinosaurus/vmath"
)

// Actor is one entity in the scene graph
// An actor is owned by exactly one scene at a time and must not be used
// after Dispose
type Actor struct {
	Name      string
	Mesh      *Mesh
	Transform vmath.Mat4
	Color     terminal.RGB

	// CastShadow includes the mesh in the shadow depth pass
	CastShadow bool
	// ReceiveShadow applies the soft shadow filter to the mesh's fragments
	ReceiveShadow bool
	// Backdrop marks the actor as a painted background instead of geometry
	Backdrop bool
	// Light makes the actor a light rig instead of renderable geometry
	Light *DirectionalLight

	children []*Actor
	disposed bool
}

// NewActor creates an actor with an identity transform
func NewActor(name string) *Actor {
	return &Actor{
		Name:      name,
		Transform: vmath.M4Identity(),
	}
}

func (a *Actor) AddChild(c *Actor) {
	a.children = append(a.children, c)
}

func (a *Actor) RemoveChild(c *Actor) bool {
	for i, child := range a.children {
		if child == c {
			a.children = append(a.children[:i], a.children[i+1:]...)
			return true
		}
	}
	return false
}

func (a *Actor) Children() []*Actor {
	return a.children
}

// Dispose releases the actor and everything below it
func (a *Actor) Dispose() {
	if a.disposed {
		return
	}
	for _, c := range a.children {
		c.Dispose()
	}
	a.children = nil
	a.Mesh = nil
	a.Light = nil
	a.disposed = true
}

func (a *Actor) Disposed() bool {
	return a.disposed
}

// visit walks the actor and its children depth-first, composing transforms
func (a *Actor) visit(parent vmath.Mat4, fn func(*Actor, vmath.Mat4)) {
	if a.disposed {
		return
	}
	world := vmath.M4Mul(parent, a.Transform)
	fn(a, world)
	for _, c := range a.children {
		c.visit(world, fn)
	}
}
