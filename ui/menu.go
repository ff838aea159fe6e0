// Package ui draws the menu, the HUD and the game-over panel as
// render overlays and flips their visibility on session transitions
package ui

import (
	"fmt"

	"github.com/Tokenzrey/dinosaurus/game"
	"github.com/Tokenzrey/dinosaurus/render"
	"github.com/Tokenzrey/dinosaurus/terminal"
)

var (
	inkDark   = terminal.RGB{R: 34, G: 44, B: 58}
	inkBright = terminal.RGB{R: 250, G: 250, B: 245}
	inkAlert  = terminal.RGB{R: 196, G: 64, B: 52}
)

// Menu is the idle-state character select and start prompt
type Menu struct {
	roster     *game.Roster
	selectedOf func() string
	visible    bool
}

func (m *Menu) Draw(buf *render.Buffer) {
	if !m.visible {
		return
	}
	w := buf.Width()
	center := func(s string, y int, fg terminal.RGB) {
		buf.WriteString((w-len(s))/2, y, s, fg)
	}

	center("D I N O S A U R U S", 2, inkDark)
	center("SPACE to run", 4, inkDark)

	left := (w - 16) / 2
	for i, id := range m.roster.IDs() {
		spec, err := m.roster.Get(id)
		if err != nil {
			continue
		}
		marker := "  "
		if id == m.selectedOf() {
			marker = "> "
		}
		buf.WriteString(left, 6+i, fmt.Sprintf("%s%d %s", marker, i+1, spec.Name), inkDark)
	}

	center("Q to quit", 7+m.roster.Len(), inkDark)
}
