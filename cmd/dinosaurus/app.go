package main

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Tokenzrey/dinosaurus/audio"
	"github.com/Tokenzrey/dinosaurus/config"
	"github.com/Tokenzrey/dinosaurus/engine"
	"github.com/Tokenzrey/dinosaurus/game"
	"github.com/Tokenzrey/dinosaurus/input"
	"github.com/Tokenzrey/dinosaurus/render"
	"github.com/Tokenzrey/dinosaurus/terminal"
	"github.com/Tokenzrey/dinosaurus/ui"
)

// cast adapts the stage to the loop's collaborator view
// Lookups go through the stage on every call so player and world
// rebuilds swap in without re-wiring the loop
type cast struct {
	stage *game.Stage
}

func (c cast) Player() engine.PlayerActor { return c.stage.Player() }
func (c cast) World() engine.Updater      { return c.stage.World() }
func (c cast) Background() engine.Updater { return c.stage.Background() }

// app owns every runtime collaborator and the wiring between them
type app struct {
	cfg config.Config
	log *zap.SugaredLogger

	screen   *terminal.Screen
	roster   *game.Roster
	stage    *game.Stage
	renderer *render.Renderer
	sound    *audio.Manager
	session  *engine.Session
	ui       *ui.Controller
	reader   *input.Reader
	source   *engine.TickerSource
	loop     *engine.FrameLoop

	// lastChirp is the last score milestone rewarded with a cue
	lastChirp int
}

func newApp(cfg config.Config, log *zap.SugaredLogger) (*app, error) {
	screen, err := terminal.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	a := &app{
		cfg:    cfg,
		log:    log,
		screen: screen,
	}

	a.roster = game.DefaultRoster()
	a.stage = game.NewStage(a.roster, time.Now().UnixNano())
	a.stage.BuildBaseline(cfg.Character)

	a.renderer = render.NewRenderer(screen, cfg.ShadowMapSize)

	a.sound = audio.NewManager(cfg.Mute, log)
	a.sound.Initialize()

	// The stage already resolved unknown ids, so seed the session with
	// whatever it actually built
	a.session = engine.NewSession(a.stage, a.roster, a.stage.Player().Spec().ID, log)

	a.ui = ui.NewController(a.roster,
		func() int { return a.stage.World().Score() },
		func() string { return a.session.Character() },
	)
	a.session.AddListener(a.ui)
	a.session.AddListener(engine.StateListenerFunc(func(prev, next engine.SessionState) {
		if next == engine.StateGameOver {
			a.sound.PlayCrash()
		}
	}))

	a.renderer.Register(a.ui.HUD(), 10)
	a.renderer.Register(a.ui.Menu(), 20)
	a.renderer.Register(a.ui.Panel(), 30)

	a.reader = input.NewReader(screen)
	a.source = engine.NewTickerSource(cfg.RefreshHz, a.beforeFrame)
	a.loop = engine.NewFrameLoop(a.source, a.session, cast{a.stage}, a.renderer, a.stage.Scene(), a.stage.Camera(), log)

	return a, nil
}

// Run starts the input pump and frame chain, then blocks on the ticker
func (a *app) Run() {
	a.reader.Start()
	a.loop.Start()
	a.log.Infow("dinosaurus running",
		"refresh_hz", a.cfg.RefreshHz,
		"character", a.session.Character(),
		"mute", a.cfg.Mute,
	)
	a.source.Run()
}

// Close releases the reader, audio, and terminal in that order
func (a *app) Close() {
	a.reader.Stop()
	a.sound.Cleanup()
	a.screen.Fini()
}

// beforeFrame runs on the ticker goroutine ahead of every frame,
// keeping all game mutation single-threaded
func (a *app) beforeFrame() {
	for {
		select {
		case act := <-a.reader.Actions():
			a.dispatch(act)
		default:
			a.maybeChirp()
			return
		}
	}
}

func (a *app) dispatch(act input.Action) {
	switch act.Kind {
	case input.ActionQuit:
		a.loop.Stop()
		a.source.Stop()
	case input.ActionResize:
		a.renderer.HandleResize()
		a.screen.Sync()
	case input.ActionJump:
		switch a.session.State() {
		case engine.StateIdle:
			if err := a.session.Start(""); err == nil {
				a.lastChirp = 0
			}
		case engine.StatePlaying:
			if a.stage.Player().Jump() {
				a.sound.PlayJump()
			}
		case engine.StateGameOver:
			a.replay()
		}
	case input.ActionDuck:
		if a.session.State() == engine.StatePlaying {
			a.stage.Player().Duck()
		}
	case input.ActionReplay:
		if a.session.State() == engine.StateGameOver {
			a.replay()
		}
	case input.ActionSelect:
		if spec, ok := a.roster.ByIndex(act.Index); ok {
			a.session.SelectCharacter(spec.ID)
		}
	}
}

func (a *app) replay() {
	if err := a.session.Replay(""); err == nil {
		a.lastChirp = 0
	}
}

// maybeChirp plays a cue each time the score crosses a 100 boundary
func (a *app) maybeChirp() {
	if a.session.State() != engine.StatePlaying {
		return
	}
	if m := a.stage.World().Score() / 100; m > a.lastChirp {
		a.lastChirp = m
		a.sound.PlayChirp()
	}
}
