package ui

import (
	"github.com/Tokenzrey/dinosaurus/engine"
	"github.com/Tokenzrey/dinosaurus/game"
	"github.com/Tokenzrey/dinosaurus/render"
)

// Controller owns the three overlays and implements
// engine.StateListener to keep their visibility in step with the
// session
type Controller struct {
	menu  *Menu
	hud   *HUD
	panel *GameOverPanel
}

// NewController builds the overlays for an idle session: menu shown,
// HUD and panel hidden
// scoreOf and selectedOf are sampled at draw time so they always
// reflect the current run
func NewController(roster *game.Roster, scoreOf func() int, selectedOf func() string) *Controller {
	nameOf := func() string {
		spec, err := roster.Get(selectedOf())
		if err != nil {
			return ""
		}
		return spec.Name
	}
	return &Controller{
		menu:  &Menu{roster: roster, selectedOf: selectedOf, visible: true},
		hud:   &HUD{scoreOf: scoreOf, nameOf: nameOf},
		panel: &GameOverPanel{scoreOf: scoreOf},
	}
}

// Menu returns the character select overlay
func (c *Controller) Menu() render.Overlay { return c.menu }

// HUD returns the score overlay
func (c *Controller) HUD() render.Overlay { return c.hud }

// Panel returns the game-over overlay
func (c *Controller) Panel() render.Overlay { return c.panel }

// SessionStateChanged flips overlay visibility for the new state
func (c *Controller) SessionStateChanged(prev, next engine.SessionState) {
	switch next {
	case engine.StateIdle:
		c.menu.visible = true
		c.hud.visible = false
		c.panel.visible = false
	case engine.StatePlaying:
		c.menu.visible = false
		c.hud.visible = true
		c.panel.visible = false
	case engine.StateGameOver:
		c.menu.visible = false
		c.hud.visible = true
		c.panel.visible = true
	}
}
