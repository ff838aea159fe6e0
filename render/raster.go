package render

import (
	"math"
)

// fragmentFn receives raster coordinates, interpolated depth, and the
// barycentric weights of the fragment
type fragmentFn func(x, y int, depth, b0, b1, b2 float64)

// rasterizeTriangle fills a projected triangle inside a w by h raster,
// sampling at cell centers; accepts either winding
func rasterizeTriangle(x0, y0, d0, x1, y1, d1, x2, y2, d2 float64, w, h int, frag fragmentFn) {
	area := (x1-x0)*(y2-y0) - (y1-y0)*(x2-x0)
	if math.Abs(area) < 1e-12 {
		return
	}
	inv := 1.0 / area

	minX := int(math.Floor(min3(x0, x1, x2)))
	maxX := int(math.Ceil(max3(x0, x1, x2)))
	minY := int(math.Floor(min3(y0, y1, y2)))
	maxY := int(math.Ceil(max3(y0, y1, y2)))
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > w-1 {
		maxX = w - 1
	}
	if maxY > h-1 {
		maxY = h - 1
	}

	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5
			b0 := ((x1-px)*(y2-py) - (y1-py)*(x2-px)) * inv
			b1 := ((x2-px)*(y0-py) - (y2-py)*(x0-px)) * inv
			b2 := 1.0 - b0 - b1
			if b0 < 0 || b1 < 0 || b2 < 0 {
				continue
			}
			frag(x, y, b0*d0+b1*d1+b2*d2, b0, b1, b2)
		}
	}
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}
