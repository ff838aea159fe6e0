package render

import (
	"math"
	"sort"

	"github.com/Tokenzrey/dinosaurus/constants"
	"github.com/Tokenzrey/dinosaurus/scene"
	"github.com/Tokenzrey/dinosaurus/terminal"
	"github.com/Tokenzrey/dinosaurus/vmath"
)

// Overlay draws UI on top of the rendered scene
type Overlay interface {
	Draw(buf *Buffer)
}

type overlayEntry struct {
	overlay  Overlay
	priority int
}

// Renderer rasterizes the scene with soft shadows and composites overlays
type Renderer struct {
	surface  terminal.Surface
	buf      *Buffer
	depth    *DepthMap
	overlays []overlayEntry
}

func NewRenderer(surface terminal.Surface, shadowMapSize int) *Renderer {
	w, h := surface.Size()
	return &Renderer{
		surface: surface,
		buf:     NewBuffer(w, h),
		depth:   NewDepthMap(shadowMapSize),
	}
}

// Register adds an overlay; lower priority draws first
func (r *Renderer) Register(o Overlay, priority int) {
	entry := overlayEntry{overlay: o, priority: priority}
	pos := len(r.overlays)
	for i, e := range r.overlays {
		if priority < e.priority {
			pos = i
			break
		}
	}
	r.overlays = append(r.overlays, overlayEntry{})
	copy(r.overlays[pos+1:], r.overlays[pos:])
	r.overlays[pos] = entry
}

// HandleResize re-reads the surface size after a terminal resize
func (r *Renderer) HandleResize() {
	w, h := r.surface.Size()
	r.buf.Resize(w, h)
}

// Render draws one frame: shadow pass, sky, geometry, overlays, flush
// Called every tick in every session state
func (r *Renderer) Render(sc *scene.Scene, cam *scene.Camera) {
	r.buf.Clear()

	tris := collectTriangles(sc)
	light := sc.Light()
	var ls lightSpace
	if light != nil {
		ls = newLightSpace(light)
		renderShadowMap(r.depth, light, ls, tris)
	}

	r.drawBackdrop(sc)
	r.drawGeometry(tris, cam, light, ls)

	for _, e := range r.overlays {
		e.overlay.Draw(r.buf)
	}
	r.buf.Flush(r.surface)
}

// drawBackdrop paints the sky gradient from the backdrop actor's color
func (r *Renderer) drawBackdrop(sc *scene.Scene) {
	var sky *scene.Actor
	for _, a := range sc.Actors() {
		if a.Backdrop && !a.Disposed() {
			sky = a
			break
		}
	}
	if sky == nil {
		return
	}
	horizon := terminal.RGB{R: 236, G: 214, B: 176}
	h := r.buf.Height()
	w := r.buf.Width()
	for y := 0; y < h; y++ {
		t := 0.0
		if h > 1 {
			t = float64(y) / float64(h-1)
		}
		c := terminal.LerpRGB(sky.Color, horizon, t)
		for x := 0; x < w; x++ {
			r.buf.SetBg(x, y, c)
		}
	}
}

type projectedTri struct {
	tri                    *worldTri
	x0, y0, x1, y1, x2, y2 float64
	depth                  float64
	lambert                float64
}

// drawGeometry projects, depth-sorts, and shades the world triangles
func (r *Renderer) drawGeometry(tris []worldTri, cam *scene.Camera, light *scene.DirectionalLight, ls lightSpace) {
	w := r.buf.Width()
	h := r.buf.Height()
	if w == 0 || h == 0 {
		return
	}

	view := cam.View()
	focal := cam.Focal * float64(h)
	cx := float64(w) / 2
	cy := float64(h) / 2

	var lightDir vmath.Vec3
	if light != nil {
		lightDir = light.Direction()
	}

	projected := make([]projectedTri, 0, len(tris))
	for i := range tris {
		t := &tris[i]
		va := vmath.M4TransformPoint(view, t.a)
		vb := vmath.M4TransformPoint(view, t.b)
		vc := vmath.M4TransformPoint(view, t.c)
		// The lane keeps geometry in front of the camera, so triangles
		// touching the near region are dropped instead of clipped
		if va.Z < constants.NearClip || vb.Z < constants.NearClip || vc.Z < constants.NearClip {
			continue
		}

		lambert := 0.0
		if light != nil {
			n := vmath.V3Normalize(vmath.V3Cross(vmath.V3Sub(t.b, t.a), vmath.V3Sub(t.c, t.a)))
			// Triangle winding is not guaranteed, light both sides
			lambert = math.Abs(vmath.V3Dot(n, lightDir))
		}

		projected = append(projected, projectedTri{
			tri:     t,
			x0:      cx + va.X/va.Z*focal*constants.CellAspect,
			y0:      cy - va.Y/va.Z*focal,
			x1:      cx + vb.X/vb.Z*focal*constants.CellAspect,
			y1:      cy - vb.Y/vb.Z*focal,
			x2:      cx + vc.X/vc.Z*focal*constants.CellAspect,
			y2:      cy - vc.Y/vc.Z*focal,
			depth:   (va.Z + vb.Z + vc.Z) / 3,
			lambert: lambert,
		})
	}

	// Painter's algorithm: far to near
	sort.Slice(projected, func(i, j int) bool {
		return projected[i].depth > projected[j].depth
	})

	for i := range projected {
		p := &projected[i]
		t := p.tri
		rasterizeTriangle(
			p.x0, p.y0, 0,
			p.x1, p.y1, 0,
			p.x2, p.y2, 0,
			w, h,
			func(x, y int, _, b0, b1, b2 float64) {
				shadow := 1.0
				if light != nil && t.receiveShadow {
					world := vmath.Vec3{
						X: t.a.X*b0 + t.b.X*b1 + t.c.X*b2,
						Y: t.a.Y*b0 + t.b.Y*b1 + t.c.Y*b2,
						Z: t.a.Z*b0 + t.b.Z*b1 + t.c.Z*b2,
					}
					u, v, depth := ls.project(world)
					shadow = SoftShadow(r.depth.Sample, u, v, depth)
				}
				intensity := constants.AmbientLight + constants.DiffuseLight*p.lambert*shadow
				r.buf.Set(x, y, ' ', terminal.RGB{}, terminal.ScaleRGB(t.color, intensity))
			},
		)
	}
}
