package ui

import (
	"fmt"

	"github.com/Tokenzrey/dinosaurus/render"
)

// GameOverPanel shows the final score and the replay prompt
type GameOverPanel struct {
	scoreOf func() int
	visible bool
}

func (p *GameOverPanel) Draw(buf *render.Buffer) {
	if !p.visible {
		return
	}
	w := buf.Width()
	cy := buf.Height() / 2

	title := "G A M E  O V E R"
	buf.WriteString((w-len(title))/2, cy-2, title, inkAlert)
	score := fmt.Sprintf("SCORE %05d", p.scoreOf())
	buf.WriteString((w-len(score))/2, cy, score, inkBright)
	prompt := "SPACE or R to replay"
	buf.WriteString((w-len(prompt))/2, cy+2, prompt, inkDark)
}
