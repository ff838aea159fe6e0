package game

import (
	"math"
	"math/rand"

	"github.com/Tokenzrey/dinosaurus/constants"
	"github.com/Tokenzrey/dinosaurus/scene"
	"github.com/Tokenzrey/dinosaurus/terminal"
	"github.com/Tokenzrey/dinosaurus/vmath"
)

type obstacleKind uint8

const (
	obstacleCactus obstacleKind = iota
	obstacleCactusTall
	obstaclePtero
)

// pteroBodyHeight centers the flyer's box on PteroAltitude
// The gap under it is duckable and the box too tall to jump over
const pteroBodyHeight = 0.7

func (k obstacleKind) dims() (w, h, d, baseY float64) {
	switch k {
	case obstacleCactusTall:
		return 0.55, 1.3, 0.5, constants.GroundY
	case obstaclePtero:
		return 1.1, pteroBodyHeight, 0.5, constants.PteroAltitude - pteroBodyHeight/2
	default:
		return 0.5, 0.95, 0.5, constants.GroundY
	}
}

func (k obstacleKind) color() terminal.RGB {
	switch k {
	case obstacleCactusTall:
		return terminal.RGB{R: 62, G: 128, B: 78}
	case obstaclePtero:
		return terminal.RGB{R: 118, G: 110, B: 128}
	default:
		return terminal.RGB{R: 74, G: 142, B: 86}
	}
}

type obstacle struct {
	actor   *scene.Actor
	kind    obstacleKind
	x       float64
	w, h, d float64
	baseY   float64
	flap    float64
}

func (o *obstacle) place() {
	bob := 0.0
	if o.kind == obstaclePtero {
		// Wing bob is visual only, bounds stay fixed
		bob = 0.08 * math.Sin(o.flap)
	}
	o.actor.Transform = vmath.M4Translate(vmath.Vec3{X: o.x, Y: o.baseY + bob})
}

func (o *obstacle) bounds() AABB {
	return AABB{
		Min: vmath.Vec3{X: o.x - o.w/2, Y: o.baseY, Z: -o.d / 2},
		Max: vmath.Vec3{X: o.x + o.w/2, Y: o.baseY + o.h, Z: o.d / 2},
	}
}

// World scrolls the obstacle field toward the player, ramps the run
// speed, tracks distance, and marks the player terminal on contact
type World struct {
	root       *scene.Actor
	player     *Player
	rng        *rand.Rand
	speed      float64
	distance   float64
	untilSpawn float64
	obstacles  []*obstacle
}

// NewWorld creates a world whose obstacles live under root
func NewWorld(root *scene.Actor, seed int64) *World {
	return &World{
		root:       root,
		rng:        rand.New(rand.NewSource(seed)),
		speed:      constants.RunSpeedStart,
		untilSpawn: constants.ObstacleGapMin,
	}
}

// BindPlayer sets the player the world collides against
// Called again after every player rebuild
func (w *World) BindPlayer(p *Player) {
	w.player = p
}

// Update scrolls the field by dt seconds
func (w *World) Update(dt float64) {
	w.speed = math.Min(constants.RunSpeedMax, w.speed+constants.RunSpeedRamp*dt)
	step := w.speed * dt
	w.distance += step

	w.untilSpawn -= step
	if w.untilSpawn <= 0 {
		w.spawn()
		w.untilSpawn = constants.ObstacleGapMin +
			w.rng.Float64()*(constants.ObstacleGapMax-constants.ObstacleGapMin)
	}

	kept := w.obstacles[:0]
	for _, o := range w.obstacles {
		o.x -= step
		if o.kind == obstaclePtero {
			o.flap += dt * 9
		}
		if o.x < constants.ObstacleDespawnX {
			w.root.RemoveChild(o.actor)
			o.actor.Dispose()
			continue
		}
		o.place()
		kept = append(kept, o)
	}
	w.obstacles = kept

	if w.player != nil && !w.player.Terminal() {
		pb := w.player.Bounds()
		for _, o := range w.obstacles {
			if pb.Intersects(o.bounds()) {
				w.player.MarkTerminal()
				break
			}
		}
	}
}

func (w *World) spawn() {
	kind := w.rollKind()
	ow, oh, od, baseY := kind.dims()

	a := scene.NewActor("obstacle")
	if kind == obstaclePtero {
		a.Mesh = scene.WedgeMesh(ow, oh, od)
	} else {
		a.Mesh = scene.BoxMesh(ow, oh, od)
	}
	a.Color = kind.color()
	a.CastShadow = true

	o := &obstacle{actor: a, kind: kind, x: constants.ObstacleSpawnX, w: ow, h: oh, d: od, baseY: baseY}
	o.place()
	w.root.AddChild(a)
	w.obstacles = append(w.obstacles, o)
}

// rollKind keeps flyers out of the early game until the ramp picks up
func (w *World) rollKind() obstacleKind {
	roll := w.rng.Float64()
	switch {
	case roll > 0.75 && w.speed > 8:
		return obstaclePtero
	case roll > 0.45:
		return obstacleCactusTall
	default:
		return obstacleCactus
	}
}

// Speed returns the current scroll speed
func (w *World) Speed() float64 {
	return w.speed
}

// Distance returns how far the run has scrolled in world units
func (w *World) Distance() float64 {
	return w.distance
}

// Score returns the run distance as a whole-number score
func (w *World) Score() int {
	return int(w.distance)
}

// ObstacleCount returns how many obstacles are live in the lane
func (w *World) ObstacleCount() int {
	return len(w.obstacles)
}
