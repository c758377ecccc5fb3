// Package scene ties the catalog, geometry selector, overlay layout and
// animator together behind the small command/query surface the rendering
// shells drive.
package scene

import (
	"sync"

	"github.com/elin-r/xtal/internal/anim"
	"github.com/elin-r/xtal/internal/geometry"
	"github.com/elin-r/xtal/internal/overlay"
	"github.com/elin-r/xtal/internal/symmetry"
)

// Session holds the active point group and its derived display state. Solid
// and markers are recomputed only when the group changes; the ghost transform
// is sampled once per tick. All mutations go through one mutex so a tick
// observes either the old state or the new state, never a mix.
type Session struct {
	mu      sync.Mutex
	group   symmetry.PointGroup
	solid   geometry.SolidDescription
	markers []overlay.Marker
	anim    *anim.State
}

// New creates a session showing the given point group id.
func New(id string) (*Session, error) {
	s := &Session{anim: anim.NewState()}
	if err := s.SelectPointGroup(id); err != nil {
		return nil, err
	}
	return s, nil
}

// SelectPointGroup switches the active group, recomputing the solid and the
// static markers and stopping any running animation. Unknown ids leave the
// session unchanged and return symmetry.ErrNotFound.
func (s *Session) SelectPointGroup(id string) error {
	g, err := symmetry.Lookup(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.group = g
	s.solid = geometry.SolidFor(g.Geometry)
	s.markers = overlay.Layout(g.Operations)
	s.anim.Stop()
	return nil
}

// Group returns the active point group.
func (s *Session) Group() symmetry.PointGroup {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.group
}

// SetActiveOperation starts animating op; nil stops the animation. Either way
// the elapsed clock resets.
func (s *Session) SetActiveOperation(op *symmetry.Operation) {
	s.anim.SetActive(op)
}

// ActiveOperation returns the operation currently being animated, if any.
func (s *Session) ActiveOperation() (symmetry.Operation, bool) {
	return s.anim.Active()
}

// Tick advances the animation clock by dt seconds.
func (s *Session) Tick(dt float64) {
	s.anim.Tick(dt)
}

// Elapsed returns the accumulated animation time.
func (s *Session) Elapsed() float64 {
	return s.anim.Elapsed()
}

// Solid returns the placeholder solid for the active group.
func (s *Session) Solid() geometry.SolidDescription {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.solid
}

// Markers returns the static symmetry-element markers for the active group.
// The result depends only on the group, never on animation time.
func (s *Session) Markers() []overlay.Marker {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]overlay.Marker, len(s.markers))
	copy(out, s.markers)
	return out
}

// GhostTransform returns the current ghost transform, or false when no
// operation is active.
func (s *Session) GhostTransform() (geometry.Transform, bool) {
	return s.anim.Ghost()
}
