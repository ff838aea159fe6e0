package game

import (
	"github.com/Tokenzrey/dinosaurus/constants"
	"github.com/Tokenzrey/dinosaurus/scene"
	"github.com/Tokenzrey/dinosaurus/terminal"
	"github.com/Tokenzrey/dinosaurus/vmath"
)

// Stage owns the scene graph and the gameplay collaborators living in it
// Rebuilds go through the stage so the scene, the player, the world and
// the background never drift out of sync
type Stage struct {
	sc         *scene.Scene
	cam        *scene.Camera
	roster     *Roster
	seed       int64
	player     *Player
	world      *World
	background *Background
}

// NewStage creates an empty stage
// Call BuildBaseline before the first frame
func NewStage(roster *Roster, seed int64) *Stage {
	return &Stage{
		sc: scene.NewScene(),
		cam: &scene.Camera{
			Eye:    vmath.Vec3{Y: 1.8, Z: -7},
			Target: vmath.Vec3{Y: 0.8},
			Focal:  constants.CameraFocal,
		},
		roster: roster,
		seed:   seed,
	}
}

// BuildBaseline populates an empty scene with the six baseline actors:
// sun, ground, sky, world, player and background
func (s *Stage) BuildBaseline(characterID string) {
	spec := s.resolve(characterID)

	sun := scene.NewActor("sun")
	sun.Light = &scene.DirectionalLight{
		Position:     vmath.Vec3{X: constants.PlayerLaneX + 1.5, Y: constants.LightHeight, Z: -2},
		Target:       vmath.Vec3{X: constants.PlayerLaneX},
		FrustumWidth: constants.LightFrustumWidth,
		Near:         constants.ShadowNearPlane,
		Far:          constants.ShadowFarPlane,
	}
	s.sc.Add(sun)

	// The strip starts behind the player and ends past the horizon,
	// entirely in front of the camera
	ground := scene.NewActor("ground")
	ground.Mesh = scene.PlaneMesh(60, 34)
	ground.Transform = vmath.M4Translate(vmath.Vec3{Z: 11})
	ground.Color = terminal.RGB{R: 214, G: 186, B: 148}
	ground.ReceiveShadow = true
	s.sc.Add(ground)

	sky := scene.NewActor("sky")
	sky.Backdrop = true
	sky.Color = terminal.RGB{R: 116, G: 186, B: 236}
	s.sc.Add(sky)

	worldRoot := scene.NewActor("world")
	s.sc.Add(worldRoot)
	s.seed++
	s.world = NewWorld(worldRoot, s.seed)

	s.player = NewPlayer(spec)
	s.sc.Add(s.player.Actor())
	s.world.BindPlayer(s.player)

	bgRoot := scene.NewActor("background")
	s.sc.Add(bgRoot)
	s.background = NewBackground(bgRoot, func() float64 { return s.world.Speed() })
}

// RebuildPlayer replaces only the player actor, keeping the rest of
// the scene as it stands
func (s *Stage) RebuildPlayer(characterID string) {
	spec := s.resolve(characterID)
	if old := s.sc.Find("player"); old != nil {
		s.sc.Remove(old)
		old.Dispose()
	}
	s.player = NewPlayer(spec)
	s.sc.Add(s.player.Actor())
	s.world.BindPlayer(s.player)
}

// RebuildAll disposes the whole scene and rebuilds the baseline
func (s *Stage) RebuildAll(characterID string) {
	s.sc.Clear()
	s.BuildBaseline(characterID)
}

// resolve maps a character id to its spec, keeping the current
// character when the id is unknown
func (s *Stage) resolve(characterID string) CharacterSpec {
	spec, err := s.roster.Get(characterID)
	if err != nil {
		if s.player != nil {
			return s.player.spec
		}
		return s.roster.First()
	}
	return spec
}

// Scene returns the stage's scene graph
func (s *Stage) Scene() *scene.Scene {
	return s.sc
}

// Camera returns the fixed chase camera
func (s *Stage) Camera() *scene.Camera {
	return s.cam
}

// Player returns the current player
func (s *Stage) Player() *Player {
	return s.player
}

// World returns the current obstacle field
func (s *Stage) World() *World {
	return s.world
}

// Background returns the current scenery
func (s *Stage) Background() *Background {
	return s.background
}

// Roster returns the character roster the stage builds from
func (s *Stage) Roster() *Roster {
	return s.roster
}
