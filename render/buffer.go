package render

import (
	"github.com/Tokenzrey/dinosaurus/terminal"
)

// Buffer is a cell compositor backed by a flat terminal.Cell array
// Reused across frames to avoid per-tick allocation
type Buffer struct {
	cells  []terminal.Cell
	width  int
	height int
}

func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts dimensions, reallocating only when capacity is short
func (b *Buffer) Resize(width, height int) {
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]terminal.Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = terminal.Cell{Rune: ' '}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the cell at (x, y); zero Cell when out of bounds
func (b *Buffer) At(x, y int) terminal.Cell {
	if !b.inBounds(x, y) {
		return terminal.Cell{}
	}
	return b.cells[y*b.width+x]
}

// Set overwrites a cell completely
func (b *Buffer) Set(x, y int, r rune, fg, bg terminal.RGB) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = terminal.Cell{Rune: r, Fg: fg, Bg: bg}
}

// SetBg replaces only the background, keeping rune and foreground
func (b *Buffer) SetBg(x, y int, bg terminal.RGB) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x].Bg = bg
}

// SetFg replaces the rune and foreground over the existing background
func (b *Buffer) SetFg(x, y int, r rune, fg terminal.RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Rune = r
	b.cells[idx].Fg = fg
}

// BlendBg mixes the existing background toward c by alpha
func (b *Buffer) BlendBg(x, y int, c terminal.RGB, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Bg = terminal.LerpRGB(b.cells[idx].Bg, c, alpha)
}

// WriteString draws text left to right over existing backgrounds
func (b *Buffer) WriteString(x, y int, s string, fg terminal.RGB) {
	for _, r := range s {
		b.SetFg(x, y, r, fg)
		x++
	}
}

// Flush pushes every cell to the surface and presents the frame
func (b *Buffer) Flush(s terminal.Surface) {
	for y := 0; y < b.height; y++ {
		row := y * b.width
		for x := 0; x < b.width; x++ {
			s.SetCell(x, y, b.cells[row+x])
		}
	}
	s.Show()
}
