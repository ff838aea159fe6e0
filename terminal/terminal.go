// Package terminal is a thin true-color layer over tcell
package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Tcell converts to a tcell color value
func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// LerpRGB interpolates between two colors by t in [0,1]
func LerpRGB(a, b RGB, t float64) RGB {
	return RGB{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
	}
}

// ScaleRGB multiplies a color by f, clamping each channel
func ScaleRGB(c RGB, f float64) RGB {
	return RGB{scaleChan(c.R, f), scaleChan(c.G, f), scaleChan(c.B, f)}
}

func scaleChan(v uint8, f float64) uint8 {
	s := float64(v) * f
	if s > 255 {
		return 255
	}
	if s < 0 {
		return 0
	}
	return uint8(s)
}

// Cell is one renderable terminal cell
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

// Surface is the sink side of a terminal, implemented by Screen and by test fakes
type Surface interface {
	Size() (int, int)
	SetCell(x, y int, c Cell)
	Show()
}
