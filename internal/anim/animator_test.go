package anim

import (
	"math"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/elin-r/xtal/internal/geometry"
	"github.com/elin-r/xtal/internal/symmetry"
)

func TestPhase(t *testing.T) {
	tests := []struct {
		elapsed float64
		want    float64
	}{
		{0, 0},
		{0.5, 0.25},
		{1.0, 0.5},
		{2.0, 0},   // exactly one period wraps to the start
		{3.0, 0.5}, // one and a half periods
		{4.5, 0.25},
	}

	for _, tt := range tests {
		if got := Phase(tt.elapsed); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Phase(%v) = %v, want %v", tt.elapsed, got, tt.want)
		}
	}
}

// Ticking the order-3 rotation of group 32 by 1.0s (half the period) must
// rotate by pi/3 about the normalized [1,0,0] axis.
func TestGhost_RotationSweep(t *testing.T) {
	g := NewWithT(t)

	grp, err := symmetry.Lookup("32")
	g.Expect(err).NotTo(HaveOccurred())
	op := grp.Operations[0]
	g.Expect(op.Order).To(Equal(3))

	tr := Ghost(op, 1.0)
	g.Expect(tr.Scale).To(Equal(geometry.Vec3{X: 1, Y: 1, Z: 1}))
	g.Expect(tr.Translation).To(Equal(geometry.Vec3{}))

	// Rotation about x by pi/3 maps y to (0, cos60, sin60).
	rotated := tr.Rotation.MulVec(geometry.Vec3{Y: 1})
	g.Expect(rotated.X).To(BeNumerically("~", 0, 1e-12))
	g.Expect(rotated.Y).To(BeNumerically("~", math.Cos(math.Pi/3), 1e-12))
	g.Expect(rotated.Z).To(BeNumerically("~", math.Sin(math.Pi/3), 1e-12))
}

// A full loop sweeps exactly one operation step, 2*pi/n, not a revolution.
func TestGhost_RotationFullLoopIsOneStep(t *testing.T) {
	g := NewWithT(t)

	for _, order := range []int{2, 3, 4, 6} {
		op := symmetry.Rotate(order, geometry.Vec3{Z: 1})
		step := 2 * math.Pi / float64(order)

		// Sample just below the wrap point.
		tr := Ghost(op, Period-1e-9)
		rotated := tr.Rotation.MulVec(geometry.Vec3{X: 1})
		wantAngle := step * (Period - 1e-9) / Period
		g.Expect(rotated.X).To(BeNumerically("~", math.Cos(wantAngle), 1e-6), "order %d", order)
		g.Expect(rotated.Y).To(BeNumerically("~", math.Sin(wantAngle), 1e-6), "order %d", order)

		// At the wrap the sweep restarts from identity.
		tr = Ghost(op, Period)
		rotated = tr.Rotation.MulVec(geometry.Vec3{X: 1})
		g.Expect(rotated.X).To(BeNumerically("~", 1, 1e-12))
		g.Expect(rotated.Y).To(BeNumerically("~", 0, 1e-12))
	}
}

// Rotoinversion animates the same rotational sweep as a proper rotation; the
// inversion half is not baked into the transform.
func TestGhost_RotoinversionMatchesProperSweep(t *testing.T) {
	g := NewWithT(t)

	proper := symmetry.Rotate(4, geometry.Vec3{Z: 1})
	roto := symmetry.Rotoinvert(4, geometry.Vec3{Z: 1})
	for _, elapsed := range []float64{0, 0.3, 1.0, 1.7} {
		g.Expect(Ghost(roto, elapsed)).To(Equal(Ghost(proper, elapsed)), "elapsed %v", elapsed)
	}
}

func TestGhost_MirrorScaleLaw(t *testing.T) {
	g := NewWithT(t)

	op := symmetry.MirrorAcross(geometry.Vec3{X: 1})

	// s(0) = 1: untouched.
	tr := Ghost(op, 0)
	g.Expect(tr.Scale).To(Equal(geometry.Vec3{X: 1, Y: 1, Z: 1}))

	// s(period/2) = 0: collapsed onto the plane, other axes untouched.
	tr = Ghost(op, Period/2)
	g.Expect(tr.Scale.X).To(BeNumerically("~", 0, 1e-12))
	g.Expect(tr.Scale.Y).To(Equal(1.0))
	g.Expect(tr.Scale.Z).To(Equal(1.0))
	g.Expect(tr.Rotation).To(Equal(geometry.Identity()))

	// s approaches -1 as the loop wraps.
	tr = Ghost(op, Period-1e-9)
	g.Expect(tr.Scale.X).To(BeNumerically("~", -1, 1e-6))
}

func TestGhost_MirrorDiagonalNormalScalesBothAxes(t *testing.T) {
	g := NewWithT(t)

	// Normalized [1,1,0] has components ~0.707 on x and y: both scale.
	op := symmetry.MirrorAcross(geometry.Vec3{X: 1, Y: 1})
	tr := Ghost(op, Period/2)
	g.Expect(tr.Scale.X).To(BeNumerically("~", 0, 1e-12))
	g.Expect(tr.Scale.Y).To(BeNumerically("~", 0, 1e-12))
	g.Expect(tr.Scale.Z).To(Equal(1.0))
}

func TestGhost_InversionIsotropic(t *testing.T) {
	g := NewWithT(t)

	op := symmetry.Invert()

	tr := Ghost(op, 0)
	g.Expect(tr.Scale).To(Equal(geometry.Vec3{X: 1, Y: 1, Z: 1}))

	tr = Ghost(op, Period/2)
	g.Expect(tr.Scale.X).To(BeNumerically("~", 0, 1e-12))
	g.Expect(tr.Scale.Y).To(BeNumerically("~", 0, 1e-12))
	g.Expect(tr.Scale.Z).To(BeNumerically("~", 0, 1e-12))

	tr = Ghost(op, Period-1e-9)
	g.Expect(tr.Scale.X).To(BeNumerically("~", -1, 1e-6))
	g.Expect(tr.Scale.Y).To(BeNumerically("~", -1, 1e-6))
	g.Expect(tr.Scale.Z).To(BeNumerically("~", -1, 1e-6))
}

func TestState_TickAndReset(t *testing.T) {
	s := NewState()

	// No active operation: the clock stays at zero.
	s.Tick(1.0)
	if s.Elapsed() != 0 {
		t.Fatalf("elapsed = %v with no active op, want 0", s.Elapsed())
	}
	if _, ok := s.Ghost(); ok {
		t.Fatal("Ghost() should report inactive")
	}

	op := symmetry.Rotate(4, geometry.Vec3{Z: 1})
	s.SetActive(&op)
	s.Tick(0.5)
	s.Tick(0.25)
	if got := s.Elapsed(); math.Abs(got-0.75) > 1e-12 {
		t.Fatalf("elapsed = %v, want 0.75", got)
	}
	if _, ok := s.Ghost(); !ok {
		t.Fatal("Ghost() should report active")
	}

	// Switching operations resets the clock.
	other := symmetry.Invert()
	s.SetActive(&other)
	if s.Elapsed() != 0 {
		t.Fatalf("elapsed = %v after switch, want 0", s.Elapsed())
	}

	// Stopping suppresses the ghost on the very next tick.
	s.Tick(0.5)
	s.SetActive(nil)
	s.Tick(0.1)
	if s.Elapsed() != 0 {
		t.Fatalf("elapsed = %v after stop, want 0", s.Elapsed())
	}
	if _, ok := s.Ghost(); ok {
		t.Fatal("Ghost() should report inactive after stop")
	}
}

func TestState_NegativeDeltaClamped(t *testing.T) {
	s := NewState()
	op := symmetry.Invert()
	s.SetActive(&op)
	s.Tick(0.5)
	s.Tick(-1.0)
	if got := s.Elapsed(); got != 0.5 {
		t.Fatalf("elapsed = %v, want 0.5", got)
	}
}

func TestState_CopiesOperation(t *testing.T) {
	s := NewState()
	op := symmetry.Rotate(4, geometry.Vec3{Z: 1})
	s.SetActive(&op)
	op.Order = 99

	got, ok := s.Active()
	if !ok || got.Order != 4 {
		t.Fatalf("Active() = %+v, %v; want order 4", got, ok)
	}
}
