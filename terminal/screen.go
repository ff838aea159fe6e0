package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Screen owns the live tcell screen for the process lifetime
type Screen struct {
	tc tcell.Screen
}

// NewScreen acquires and initializes the terminal surface
// Failure here is fatal at startup, there is nothing to draw on
func NewScreen() (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := tc.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	tc.SetStyle(tcell.StyleDefault)
	tc.HideCursor()
	tc.Clear()
	return &Screen{tc: tc}, nil
}

// Fini restores the terminal to its original state
func (s *Screen) Fini() {
	s.tc.Fini()
}

func (s *Screen) Size() (int, int) {
	return s.tc.Size()
}

func (s *Screen) SetCell(x, y int, c Cell) {
	r := c.Rune
	if r == 0 {
		r = ' '
	}
	style := tcell.StyleDefault.Foreground(c.Fg.Tcell()).Background(c.Bg.Tcell())
	s.tc.SetContent(x, y, r, nil, style)
}

func (s *Screen) Show() {
	s.tc.Show()
}

// Sync forces a full repaint, used after terminal resize
func (s *Screen) Sync() {
	s.tc.Sync()
}

// PollEvent blocks until the next terminal event
func (s *Screen) PollEvent() tcell.Event {
	return s.tc.PollEvent()
}

// PostInterrupt unblocks a pending PollEvent during shutdown
func (s *Screen) PostInterrupt() {
	_ = s.tc.PostEvent(tcell.NewEventInterrupt(nil))
}
