package viz

import (
	"math"
	"sort"

	"github.com/elin-r/xtal/internal/geometry"
)

// Camera projects world coordinates onto the canvas with a simple
// perspective model: rotate around the origin, scale by zoom, project toward
// a viewpoint on +z.
type Camera struct {
	Distance         float64
	RotX, RotY, RotZ float64
	Zoom             float64
}

func NewCamera() *Camera {
	return &Camera{Distance: 50, RotX: 0.4, RotY: -0.6, Zoom: 1.0}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) RotateZ(a float64) { c.RotZ += a }
func (c *Camera) ZoomIn()           { c.Zoom = math.Min(8, c.Zoom*1.2) }
func (c *Camera) ZoomOut()          { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

func (c *Camera) rotate(p geometry.Vec3) geometry.Vec3 {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cz, sz := math.Cos(c.RotZ), math.Sin(c.RotZ)
	p.X, p.Y = p.X*cz-p.Y*sz, p.X*sz+p.Y*cz
	return p
}

// Project maps a world point to subpixel coordinates on a sw x sh grid.
// Returns screen x, y, view-space depth, and whether the point is in front of
// the near plane.
func (c *Camera) Project(p geometry.Vec3, sw, sh int) (int, int, float64, bool) {
	rot := c.rotate(p).Scale(c.Zoom)
	if rot.Z >= c.Distance-0.1 {
		return 0, 0, 0, false
	}
	persp := c.Distance / (c.Distance - rot.Z)
	minDim := math.Min(float64(sw), float64(sh)*2) // braille cells are taller than wide
	unit := minDim / 4.5
	sx := int(rot.X*persp*unit) + sw/2
	sy := int(-rot.Y*persp*unit/2) + sh/2
	return sx, sy, rot.Z, true
}

type depthEdge struct {
	x1, y1, x2, y2 int
	depth          float64
}

// DrawEdges projects an edge list and draws it back to front.
func DrawEdges(c *Canvas, cam *Camera, edges []geometry.Edge) {
	sw, sh := c.Width*2, c.Height*4
	proj := make([]depthEdge, 0, len(edges))
	for _, e := range edges {
		x1, y1, d1, ok1 := cam.Project(e.Start, sw, sh)
		x2, y2, d2, ok2 := cam.Project(e.End, sw, sh)
		if ok1 || ok2 {
			proj = append(proj, depthEdge{x1, y1, x2, y2, (d1 + d2) / 2})
		}
	}
	sort.Slice(proj, func(i, j int) bool { return proj[i].depth < proj[j].depth })
	for _, e := range proj {
		if e.x1 == e.x2 && e.y1 == e.y2 {
			c.Set(e.x1, e.y1)
		} else {
			c.Line(e.x1, e.y1, e.x2, e.y2)
		}
	}
}
