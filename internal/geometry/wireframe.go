package geometry

import "math"

type Edge struct {
	Start, End Vec3
}

// Wireframe is an edge list centered on the origin, the unit both rendering
// shells consume.
type Wireframe struct {
	Edges []Edge
}

func NewWireframe() *Wireframe { return &Wireframe{Edges: make([]Edge, 0)} }

func (w *Wireframe) Add(s, e Vec3) { w.Edges = append(w.Edges, Edge{s, e}) }

// Transformed returns a copy of the wireframe with t applied to every vertex.
func (w *Wireframe) Transformed(t Transform) *Wireframe {
	out := &Wireframe{Edges: make([]Edge, len(w.Edges))}
	for i, e := range w.Edges {
		out.Edges[i] = Edge{t.Apply(e.Start), t.Apply(e.End)}
	}
	return out
}

// WireframeFor builds the edge list for a placeholder solid description.
func WireframeFor(d SolidDescription) *Wireframe {
	switch d.Category {
	case TrigonalPrism, HexagonalPrism:
		return prismWireframe(d.Radius, d.Height, d.Sides)
	case Tetrahedron:
		return tetrahedronWireframe(d.Width)
	default:
		shearZ := 0.0
		if d.Category == ScaleneBox {
			shearZ = d.Shear * 0.6
		}
		return boxWireframe(d.Width, d.Height, d.Depth, d.Shear, shearZ)
	}
}

func boxWireframe(w, h, d, shearX, shearZ float64) *Wireframe {
	wf := NewWireframe()
	hw, hh, hd := w/2, h/2, d/2
	// Bottom face first, top face displaced by the shear offsets.
	v := []Vec3{
		{-hw, -hh, -hd}, {hw, -hh, -hd}, {hw, -hh, hd}, {-hw, -hh, hd},
		{-hw + shearX*h, hh, -hd + shearZ*h}, {hw + shearX*h, hh, -hd + shearZ*h},
		{hw + shearX*h, hh, hd + shearZ*h}, {-hw + shearX*h, hh, hd + shearZ*h},
	}
	ei := [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	for _, e := range ei {
		wf.Add(v[e[0]], v[e[1]])
	}
	return wf
}

func prismWireframe(radius, height float64, sides int) *Wireframe {
	if sides < 3 {
		sides = 3
	}
	wf := NewWireframe()
	hh := height / 2
	bottom := make([]Vec3, sides)
	top := make([]Vec3, sides)
	for i := 0; i < sides; i++ {
		a := 2 * math.Pi * float64(i) / float64(sides)
		x, z := radius*math.Cos(a), radius*math.Sin(a)
		bottom[i] = Vec3{x, -hh, z}
		top[i] = Vec3{x, hh, z}
	}
	for i := 0; i < sides; i++ {
		j := (i + 1) % sides
		wf.Add(bottom[i], bottom[j])
		wf.Add(top[i], top[j])
		wf.Add(bottom[i], top[i])
	}
	return wf
}

func tetrahedronWireframe(size float64) *Wireframe {
	wf := NewWireframe()
	s := size / 2
	// Alternate corners of a cube form a regular tetrahedron.
	v := []Vec3{{s, s, s}, {s, -s, -s}, {-s, s, -s}, {-s, -s, s}}
	ei := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	for _, e := range ei {
		wf.Add(v[e[0]], v[e[1]])
	}
	return wf
}
