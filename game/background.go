package game

import (
	"github.com/Tokenzrey/dinosaurus/scene"
	"github.com/Tokenzrey/dinosaurus/terminal"
	"github.com/Tokenzrey/dinosaurus/vmath"
)

// parallaxLayer slides a group of scenery actors against the run
// direction and wraps by one spacing period so the drift never ends
type parallaxLayer struct {
	root   *scene.Actor
	factor float64
	offset float64
	period float64
}

// Background drifts distant scenery at a fraction of the world speed
type Background struct {
	speedOf func() float64
	layers  []*parallaxLayer
}

// NewBackground builds the scenery layers under root
// speedOf is sampled every update so the drift follows the speed ramp
func NewBackground(root *scene.Actor, speedOf func() float64) *Background {
	return &Background{
		speedOf: speedOf,
		layers: []*parallaxLayer{
			newCloudLayer(root),
			newHillLayer(root),
		},
	}
}

func newCloudLayer(root *scene.Actor) *parallaxLayer {
	layer := scene.NewActor("clouds")
	root.AddChild(layer)
	heights := [3]float64{4.6, 5.4, 5.0}
	for i, y := range heights {
		c := scene.NewActor("cloud")
		c.Mesh = scene.BoxMesh(1.9, 0.35, 0.4)
		c.Color = terminal.RGB{R: 226, G: 230, B: 238}
		c.Transform = vmath.M4Translate(vmath.Vec3{X: -9 + float64(i)*9, Y: y, Z: 8})
		layer.AddChild(c)
	}
	return &parallaxLayer{root: layer, factor: 0.25, period: 9}
}

func newHillLayer(root *scene.Actor) *parallaxLayer {
	layer := scene.NewActor("hills")
	root.AddChild(layer)
	for i := 0; i < 3; i++ {
		h := scene.NewActor("hill")
		h.Mesh = scene.WedgeMesh(9, 1.9, 2)
		h.Color = terminal.RGB{R: 196, G: 172, B: 132}
		h.Transform = vmath.M4Translate(vmath.Vec3{X: -12 + float64(i)*12, Z: 14})
		layer.AddChild(h)
	}
	return &parallaxLayer{root: layer, factor: 0.5, period: 12}
}

// Update drifts every layer by dt seconds of world travel
func (b *Background) Update(dt float64) {
	speed := b.speedOf()
	for _, l := range b.layers {
		l.offset -= speed * l.factor * dt
		for l.offset <= -l.period {
			l.offset += l.period
		}
		l.root.Transform = vmath.M4Translate(vmath.Vec3{X: l.offset})
	}
}
