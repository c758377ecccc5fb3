package overlay

import (
	"math"
	"reflect"
	"testing"

	"github.com/elin-r/xtal/internal/geometry"
	"github.com/elin-r/xtal/internal/symmetry"
)

func TestLayout_AxisMarker(t *testing.T) {
	ops := []symmetry.Operation{symmetry.Rotate(4, geometry.Vec3{Z: 2})}
	markers := Layout(ops)

	if len(markers) != 1 {
		t.Fatalf("got %d markers, want 1", len(markers))
	}
	m := markers[0]
	if m.Kind != MarkerAxis {
		t.Fatalf("kind = %v, want axis", m.Kind)
	}
	// Axis is normalized before extension to the half-length.
	if m.End != (geometry.Vec3{Z: AxisHalfLength}) || m.Start != (geometry.Vec3{Z: -AxisHalfLength}) {
		t.Errorf("segment = %v..%v", m.Start, m.End)
	}
	if m.Order != 4 || m.Rotoinversion {
		t.Errorf("order/roto = %d/%v", m.Order, m.Rotoinversion)
	}
	if m.Label != "4-fold rotation" {
		t.Errorf("label = %q", m.Label)
	}
}

func TestLayout_RotoinversionFlagged(t *testing.T) {
	markers := Layout([]symmetry.Operation{symmetry.Rotoinvert(4, geometry.Vec3{Z: 1})})
	if !markers[0].Rotoinversion {
		t.Error("rotoinversion axis not flagged")
	}
}

func TestLayout_PlaneMarker(t *testing.T) {
	markers := Layout([]symmetry.Operation{symmetry.MirrorAcross(geometry.Vec3{X: 3})})
	m := markers[0]

	if m.Kind != MarkerPlane {
		t.Fatalf("kind = %v, want plane", m.Kind)
	}
	if m.Normal != (geometry.Vec3{X: 1}) {
		t.Errorf("normal = %v, want normalized x", m.Normal)
	}
	half := PlaneSize / 2
	diag := math.Sqrt(2) * half
	for i, c := range m.Corners {
		if math.Abs(c.Dot(m.Normal)) > 1e-9 {
			t.Errorf("corner %d not in plane: %v", i, c)
		}
		if math.Abs(c.Length()-diag) > 1e-9 {
			t.Errorf("corner %d distance = %v, want %v", i, c.Length(), diag)
		}
	}
}

func TestLayout_CenterMarker(t *testing.T) {
	markers := Layout([]symmetry.Operation{symmetry.Invert()})
	m := markers[0]
	if m.Kind != MarkerCenter {
		t.Fatalf("kind = %v, want center", m.Kind)
	}
	if !m.Start.IsZero() || !m.End.IsZero() {
		t.Error("center marker not at origin")
	}
}

func TestLayout_OrderAndIdempotence(t *testing.T) {
	g, err := symmetry.Lookup("4/mmm")
	if err != nil {
		t.Fatal(err)
	}

	first := Layout(g.Operations)
	second := Layout(g.Operations)
	if len(first) != len(g.Operations) {
		t.Fatalf("got %d markers for %d operations", len(first), len(g.Operations))
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("Layout is not idempotent")
	}
}

func TestLayout_EmptyGroup(t *testing.T) {
	g, err := symmetry.Lookup("1")
	if err != nil {
		t.Fatal(err)
	}
	if markers := Layout(g.Operations); len(markers) != 0 {
		t.Errorf("group 1 produced %d markers, want 0", len(markers))
	}
}
