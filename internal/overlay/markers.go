// Package overlay lays out the static visual markers for a point group's
// symmetry elements: axis segments, mirror-plane quads and the inversion
// center. Layout depends only on the operation parameters, never on time.
package overlay

import (
	"github.com/elin-r/xtal/internal/geometry"
	"github.com/elin-r/xtal/internal/symmetry"
)

// Marker placement constants.
const (
	AxisHalfLength = 1.5
	PlaneSize      = 2.5
)

// MarkerKind tags the marker variants.
type MarkerKind int

const (
	MarkerAxis MarkerKind = iota
	MarkerPlane
	MarkerCenter
)

// Marker describes one symmetry-element overlay. Axis markers use Start/End;
// plane markers use Normal and Corners; the center marker sits at the origin.
type Marker struct {
	Kind          MarkerKind
	Label         string
	Start, End    geometry.Vec3
	Normal        geometry.Vec3
	Corners       [4]geometry.Vec3
	Order         int
	Rotoinversion bool
}

// Layout computes the markers for an operation list, one marker per
// operation, in list order.
func Layout(ops []symmetry.Operation) []Marker {
	markers := make([]Marker, 0, len(ops))
	for _, op := range ops {
		switch op.Kind {
		case symmetry.OpRotation:
			markers = append(markers, axisMarker(op))
		case symmetry.OpMirror:
			markers = append(markers, planeMarker(op))
		case symmetry.OpInversion:
			markers = append(markers, Marker{Kind: MarkerCenter, Label: op.Label()})
		}
	}
	return markers
}

func axisMarker(op symmetry.Operation) Marker {
	dir := op.Axis.Normalize()
	return Marker{
		Kind:          MarkerAxis,
		Label:         op.Label(),
		Start:         dir.Scale(-AxisHalfLength),
		End:           dir.Scale(AxisHalfLength),
		Order:         op.Order,
		Rotoinversion: op.Rotoinversion,
	}
}

func planeMarker(op symmetry.Operation) Marker {
	n := op.Normal.Normalize()
	u, v := n.OrthonormalBasis()
	h := PlaneSize / 2
	return Marker{
		Kind:   MarkerPlane,
		Label:  op.Label(),
		Normal: n,
		Corners: [4]geometry.Vec3{
			u.Scale(-h).Add(v.Scale(-h)),
			u.Scale(h).Add(v.Scale(-h)),
			u.Scale(h).Add(v.Scale(h)),
			u.Scale(-h).Add(v.Scale(h)),
		},
	}
}
