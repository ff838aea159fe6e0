package ui

import (
	"fmt"

	"github.com/Tokenzrey/dinosaurus/render"
)

// HUD shows the live score and the character name during a run
type HUD struct {
	scoreOf func() int
	nameOf  func() string
	visible bool
}

func (h *HUD) Draw(buf *render.Buffer) {
	if !h.visible {
		return
	}
	score := fmt.Sprintf("%05d", h.scoreOf())
	buf.WriteString(buf.Width()-len(score)-2, 1, score, inkDark)
	buf.WriteString(2, 1, h.nameOf(), inkDark)
}
