package scene

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/elin-r/xtal/internal/geometry"
	"github.com/elin-r/xtal/internal/symmetry"
)

func TestNew_UnknownGroup(t *testing.T) {
	_, err := New("17")
	if !errors.Is(err, symmetry.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSelectPointGroup(t *testing.T) {
	s, err := New("4/mmm")
	if err != nil {
		t.Fatal(err)
	}

	if got := s.Group().ID; got != "4/mmm" {
		t.Fatalf("group = %s", got)
	}
	if got := s.Solid().Category; got != geometry.TetragonalBox {
		t.Errorf("solid = %s, want tetragonal-box", got)
	}
	if got := len(s.Markers()); got != 5 {
		t.Errorf("markers = %d, want 5 (one 4-fold, three mirrors, inversion)", got)
	}

	// Unknown id leaves the session unchanged.
	if err := s.SelectPointGroup("nope"); !errors.Is(err, symmetry.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if got := s.Group().ID; got != "4/mmm" {
		t.Errorf("group changed to %s after failed select", got)
	}
}

func TestIdentityGroupHasNoMarkers(t *testing.T) {
	s, err := New("1")
	if err != nil {
		t.Fatal(err)
	}
	if got := len(s.Markers()); got != 0 {
		t.Errorf("markers = %d, want 0", got)
	}
	if len(s.Group().Operations) != 0 {
		t.Error("group 1 should have no operations to animate")
	}
}

func TestMarkersIdempotent(t *testing.T) {
	s, err := New("mmm")
	if err != nil {
		t.Fatal(err)
	}
	first := s.Markers()
	s.Tick(0.7) // time must not affect static markers
	second := s.Markers()
	if !reflect.DeepEqual(first, second) {
		t.Error("markers changed without a group change")
	}
}

func TestGhostLifecycle(t *testing.T) {
	s, err := New("mm2")
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := s.GhostTransform(); ok {
		t.Fatal("ghost present before activation")
	}

	// Activate the x-normal mirror and tick to mid-loop: scale (0,1,1).
	var mirror *symmetry.Operation
	for i, op := range s.Group().Operations {
		if op.Kind == symmetry.OpMirror && op.Normal == (geometry.Vec3{X: 1}) {
			mirror = &s.Group().Operations[i]
		}
	}
	if mirror == nil {
		t.Fatal("mm2 has no x-normal mirror")
	}
	s.SetActiveOperation(mirror)
	s.Tick(1.0)

	tr, ok := s.GhostTransform()
	if !ok {
		t.Fatal("no ghost after activation")
	}
	if math.Abs(tr.Scale.X) > 1e-12 || tr.Scale.Y != 1 || tr.Scale.Z != 1 {
		t.Errorf("scale = %v, want (0,1,1)", tr.Scale)
	}

	// Stopping suppresses the ghost on the next tick.
	s.SetActiveOperation(nil)
	s.Tick(0.1)
	if _, ok := s.GhostTransform(); ok {
		t.Error("ghost still present after stop")
	}
}

func TestSwitchingGroupStopsAnimation(t *testing.T) {
	s, err := New("4")
	if err != nil {
		t.Fatal(err)
	}
	op := s.Group().Operations[0]
	s.SetActiveOperation(&op)
	s.Tick(0.5)

	if err := s.SelectPointGroup("6"); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.ActiveOperation(); ok {
		t.Error("animation survived a group switch")
	}
	if s.Elapsed() != 0 {
		t.Errorf("elapsed = %v after group switch, want 0", s.Elapsed())
	}
}

func TestSwitchingOperationResetsClock(t *testing.T) {
	s, err := New("4/mmm")
	if err != nil {
		t.Fatal(err)
	}
	ops := s.Group().Operations
	s.SetActiveOperation(&ops[0])
	s.Tick(0.75)
	if s.Elapsed() != 0.75 {
		t.Fatalf("elapsed = %v", s.Elapsed())
	}

	s.SetActiveOperation(&ops[1])
	if s.Elapsed() != 0 {
		t.Errorf("elapsed = %v after switching operations, want 0", s.Elapsed())
	}
}
