package render

// DepthMap is a square raster of linear depths as seen from the light
type DepthMap struct {
	size  int
	depth []float64
}

func NewDepthMap(size int) *DepthMap {
	if size < 1 {
		size = 1
	}
	return &DepthMap{
		size:  size,
		depth: make([]float64, size*size),
	}
}

func (m *DepthMap) Size() int {
	return m.size
}

// Reset fills the map with the far depth before a shadow pass
func (m *DepthMap) Reset(far float64) {
	for i := range m.depth {
		m.depth[i] = far
	}
}

func (m *DepthMap) At(x, y int) float64 {
	return m.depth[y*m.size+x]
}

// Write keeps the closest depth per texel
func (m *DepthMap) Write(x, y int, d float64) {
	if x < 0 || x >= m.size || y < 0 || y >= m.size {
		return
	}
	idx := y*m.size + x
	if d < m.depth[idx] {
		m.depth[idx] = d
	}
}

// Sample decodes the depth at a UV coordinate, clamping to the edge
// Satisfies ShadowSampler
func (m *DepthMap) Sample(u, v float64) float64 {
	x := int(u * float64(m.size))
	y := int(v * float64(m.size))
	if x < 0 {
		x = 0
	}
	if x >= m.size {
		x = m.size - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= m.size {
		y = m.size - 1
	}
	return m.depth[y*m.size+x]
}
