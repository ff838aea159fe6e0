package game

import (
	"math"

	"github.com/Tokenzrey/dinosaurus/constants"
	"github.com/Tokenzrey/dinosaurus/scene"
	"github.com/Tokenzrey/dinosaurus/terminal"
	"github.com/Tokenzrey/dinosaurus/vmath"
)

// Unscaled body dimensions, multiplied by the character's scale
const (
	playerWidth  = 0.9
	playerHeight = 1.2
	playerDepth  = 0.6

	// Ducking squashes the body down and stretches it forward
	duckSquash  = 0.55
	duckStretch = 1.25
)

// Player is the runner the session controls
// It owns its scene actor and keeps the actor transform in sync with
// its kinematic state every update
type Player struct {
	spec     CharacterSpec
	actor    *scene.Actor
	y        float64
	vy       float64
	airborne bool
	ducking  bool
	duckLeft float64
	gait     float64
	terminal bool
}

// NewPlayer builds a player and its actor for the given character
func NewPlayer(spec CharacterSpec) *Player {
	body := scene.NewActor("player")
	body.Mesh = scene.BoxMesh(playerWidth, playerHeight, playerDepth)
	body.Color = spec.Body
	body.CastShadow = true

	head := scene.NewActor("player-head")
	head.Mesh = scene.BoxMesh(0.45, 0.35, 0.5)
	head.Color = terminal.ScaleRGB(spec.Body, 1.1)
	head.CastShadow = true
	head.Transform = vmath.M4Translate(vmath.Vec3{X: playerWidth/2 - 0.05, Y: 0.95})
	body.AddChild(head)

	tail := scene.NewActor("player-tail")
	tail.Mesh = scene.WedgeMesh(0.5, 0.3, 0.3)
	tail.Color = terminal.ScaleRGB(spec.Body, 0.85)
	tail.CastShadow = true
	tail.Transform = vmath.M4Translate(vmath.Vec3{X: -0.65, Y: 0.55})
	body.AddChild(tail)

	p := &Player{spec: spec, actor: body, y: constants.GroundY}
	p.refreshTransform()
	return p
}

// Actor returns the player's scene actor
func (p *Player) Actor() *scene.Actor {
	return p.actor
}

// Spec returns the character this player was built from
func (p *Player) Spec() CharacterSpec {
	return p.spec
}

// Update advances jump and duck kinematics by dt seconds
func (p *Player) Update(dt float64) {
	if p.ducking {
		p.duckLeft -= dt
		if p.duckLeft <= 0 {
			p.ducking = false
			p.duckLeft = 0
		}
	}
	if p.airborne {
		p.vy -= constants.Gravity * dt
		p.y += p.vy * dt
		if p.y <= constants.GroundY {
			p.y = constants.GroundY
			p.vy = 0
			p.airborne = false
		}
	} else {
		p.gait += dt * 9
	}
	p.refreshTransform()
}

// Jump launches the player if grounded, cancelling any duck
// Returns true when a jump actually started
func (p *Player) Jump() bool {
	if p.airborne {
		return false
	}
	p.ducking = false
	p.duckLeft = 0
	p.vy = constants.JumpImpulse
	p.airborne = true
	return true
}

// Duck crouches a grounded player, or slams an airborne one down
func (p *Player) Duck() {
	if p.airborne {
		if p.vy > -constants.JumpImpulse {
			p.vy = -constants.JumpImpulse
		}
		return
	}
	p.ducking = true
	p.duckLeft = constants.DuckDuration
}

// Bounds returns the collision box in world space
func (p *Player) Bounds() AABB {
	w := playerWidth * p.spec.Scale
	h := playerHeight * p.spec.Scale
	d := playerDepth * p.spec.Scale
	if p.ducking {
		h *= duckSquash
		w *= duckStretch
	}
	return AABB{
		Min: vmath.Vec3{X: constants.PlayerLaneX - w/2, Y: p.y, Z: -d / 2},
		Max: vmath.Vec3{X: constants.PlayerLaneX + w/2, Y: p.y + h, Z: d / 2},
	}
}

// Terminal reports whether the player has hit an obstacle
func (p *Player) Terminal() bool {
	return p.terminal
}

// MarkTerminal latches the terminal flag
// The flag never clears; a rebuild replaces the player instead
func (p *Player) MarkTerminal() {
	p.terminal = true
}

// Airborne reports whether the player is off the ground
func (p *Player) Airborne() bool {
	return p.airborne
}

// Ducking reports whether the player is crouched
func (p *Player) Ducking() bool {
	return p.ducking
}

// Y returns the current height above the ground plane
func (p *Player) Y() float64 {
	return p.y
}

func (p *Player) refreshTransform() {
	bob := 0.0
	if !p.airborne && !p.ducking {
		bob = math.Abs(math.Sin(p.gait)) * 0.05
	}
	sx := p.spec.Scale
	sy := p.spec.Scale
	if p.ducking {
		sy *= duckSquash
		sx *= duckStretch
	}
	p.actor.Transform = vmath.M4Mul(
		vmath.M4Translate(vmath.Vec3{X: constants.PlayerLaneX, Y: p.y + bob}),
		vmath.M4Scale(vmath.Vec3{X: sx, Y: sy, Z: p.spec.Scale}),
	)
}
