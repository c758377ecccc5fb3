// Package anim computes the per-frame ghost transform that previews a
// symmetry operation. The transform is a pure function of elapsed time modulo
// a fixed period, so the animation is a deterministic, restartable loop.
package anim

import (
	"math"
	"sync"

	"github.com/elin-r/xtal/internal/geometry"
	"github.com/elin-r/xtal/internal/symmetry"
)

// Period is the loop length in seconds. The phase t = mod(elapsed, Period) /
// Period runs over [0, 1) once per loop.
const Period = 2.0

// Phase maps elapsed time to the loop phase in [0, 1).
func Phase(elapsed float64) float64 {
	t := math.Mod(elapsed, Period) / Period
	if t < 0 {
		t += 1
	}
	return t
}

// Ghost returns the instantaneous transform for the ghost copy of the solid.
// The transform always starts from identity and exactly one rule fires:
//
//   - Proper rotation of order n sweeps an angle of (2pi/n)*t about the
//     normalized axis: one operation step per loop, not a full revolution.
//   - Rotoinversion uses the same rotational sweep; the inversion half is
//     conveyed by markers and labeling, not baked into the transform.
//   - Mirror scales by 1-2t along every local axis whose normalized-normal
//     component magnitude exceeds 0.5 (a simplification valid for axial and
//     45-degree-diagonal normals): the solid collapses onto the plane at
//     mid-loop and is fully mirrored as the loop wraps.
//   - Inversion applies the same 1-2t scale isotropically.
func Ghost(op symmetry.Operation, elapsed float64) geometry.Transform {
	t := Phase(elapsed)
	tr := geometry.IdentityTransform()
	switch op.Kind {
	case symmetry.OpRotation:
		angle := 2 * math.Pi / float64(op.Order) * t
		tr.Rotation = geometry.AxisAngle(op.Axis, angle)
	case symmetry.OpMirror:
		s := 1 - 2*t
		n := op.Normal.Normalize()
		if math.Abs(n.X) > 0.5 {
			tr.Scale.X = s
		}
		if math.Abs(n.Y) > 0.5 {
			tr.Scale.Y = s
		}
		if math.Abs(n.Z) > 0.5 {
			tr.Scale.Z = s
		}
	case symmetry.OpInversion:
		s := 1 - 2*t
		tr.Scale = geometry.Vec3{X: s, Y: s, Z: s}
	}
	return tr
}

// State owns the mutable animation state: the active operation and the time
// accumulated since it was activated. A single mutex guards it so that
// activation, stop and tick are atomic with respect to each other; the tick
// after a change fully observes the new state.
type State struct {
	mu      sync.Mutex
	active  *symmetry.Operation
	elapsed float64
}

func NewState() *State { return &State{} }

// SetActive starts animating op, resetting elapsed time. A nil op stops the
// animation; re-activating also restarts from zero.
func (s *State) SetActive(op *symmetry.Operation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.elapsed = 0
	if op == nil {
		s.active = nil
		return
	}
	cp := *op
	s.active = &cp
}

// Stop is shorthand for SetActive(nil).
func (s *State) Stop() { s.SetActive(nil) }

// Active returns the operation being animated, if any.
func (s *State) Active() (symmetry.Operation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return symmetry.Operation{}, false
	}
	return *s.active, true
}

// Elapsed returns the accumulated animation time in seconds.
func (s *State) Elapsed() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsed
}

// Tick advances the clock by dt seconds. While no operation is active the
// clock stays at zero. Negative deltas are clamped; the frame clock is
// monotonic.
func (s *State) Tick(dt float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		s.elapsed = 0
		return
	}
	if dt > 0 {
		s.elapsed += dt
	}
}

// Ghost returns the current ghost transform, or false when no operation is
// active (the caller must omit the ghost copy entirely).
func (s *State) Ghost() (geometry.Transform, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return geometry.Transform{}, false
	}
	return Ghost(*s.active, s.elapsed), true
}
