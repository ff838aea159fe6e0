package engine

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/Tokenzrey/dinosaurus/scene"
)

// Updater advances one collaborator by a frame delta in seconds
type Updater interface {
	Update(dt float64)
}

// PlayerActor is the updatable the loop polls for terminal contact
type PlayerActor interface {
	Updater
	Terminal() bool
}

// Cast resolves the current gameplay collaborators
// Resolution happens every tick so rebuilds swap in cleanly mid-run
type Cast interface {
	Player() PlayerActor
	World() Updater
	Background() Updater
}

// FrameRenderer draws one frame of the scene
type FrameRenderer interface {
	Render(sc *scene.Scene, cam *scene.Camera)
}

// RefreshSource schedules frame callbacks, stamping each with
// milliseconds on the source's own timeline
type RefreshSource interface {
	RequestFrame(cb func(tsMS float64))
}

// FrameLoop drives the per-frame pipeline
// Each tick schedules its successor first, advances gameplay only
// while the session is playing, renders in every state, and finally
// polls the player for terminal contact
type FrameLoop struct {
	source   RefreshSource
	session  *Session
	cast     Cast
	renderer FrameRenderer
	sc       *scene.Scene
	cam      *scene.Camera
	log      *zap.SugaredLogger

	running atomic.Bool
	hasPrev bool
	prevMS  float64
}

// NewFrameLoop wires a loop to its collaborators without starting it
func NewFrameLoop(source RefreshSource, session *Session, cast Cast, renderer FrameRenderer, sc *scene.Scene, cam *scene.Camera, log *zap.SugaredLogger) *FrameLoop {
	return &FrameLoop{
		source:   source,
		session:  session,
		cast:     cast,
		renderer: renderer,
		sc:       sc,
		cam:      cam,
		log:      log,
	}
}

// Start arms the loop and schedules the first frame
func (l *FrameLoop) Start() {
	if !l.running.CompareAndSwap(false, true) {
		return
	}
	l.hasPrev = false
	l.source.RequestFrame(l.Tick)
	l.log.Infow("frame loop started")
}

// Stop breaks the frame chain
// The frame in flight still completes; no further frames schedule
func (l *FrameLoop) Stop() {
	if l.running.CompareAndSwap(true, false) {
		l.log.Infow("frame loop stopped")
	}
}

// Running reports whether the frame chain is armed
func (l *FrameLoop) Running() bool {
	return l.running.Load()
}

// Tick runs one frame at the given source timestamp
// The first tick after Start only records its timestamp so deltas
// always span two real frames
func (l *FrameLoop) Tick(tsMS float64) {
	if !l.running.Load() {
		return
	}
	// Rearm before any frame work so a slow frame cannot stall the chain
	l.source.RequestFrame(l.Tick)

	if !l.hasPrev {
		l.hasPrev = true
		l.prevMS = tsMS
		return
	}
	dt := (tsMS - l.prevMS) / 1000

	if l.session.State() == StatePlaying {
		l.cast.Player().Update(dt)
		l.cast.World().Update(dt)
		l.cast.Background().Update(dt)
	}

	l.renderer.Render(l.sc, l.cam)

	if l.cast.Player().Terminal() {
		l.session.NotifyTerminal()
	}

	l.prevMS = tsMS
}
