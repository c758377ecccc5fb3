package symmetry

import "github.com/elin-r/xtal/internal/geometry"

// CrystalSystem is one of the seven crystal systems.
type CrystalSystem string

const (
	Triclinic    CrystalSystem = "triclinic"
	Monoclinic   CrystalSystem = "monoclinic"
	Orthorhombic CrystalSystem = "orthorhombic"
	Tetragonal   CrystalSystem = "tetragonal"
	Trigonal     CrystalSystem = "trigonal"
	Hexagonal    CrystalSystem = "hexagonal"
	Cubic        CrystalSystem = "cubic"
)

// Systems lists the seven crystal systems in conventional order.
func Systems() []CrystalSystem {
	return []CrystalSystem{Triclinic, Monoclinic, Orthorhombic, Tetragonal, Trigonal, Hexagonal, Cubic}
}

// PointGroup is one immutable catalog entry: a crystallographic point group
// with its generating operations and the placeholder solid drawn for it.
type PointGroup struct {
	ID          string // Hermann-Mauguin short symbol, the stable key
	Name        string // crystal class name
	Schoenflies string
	System      CrystalSystem
	Description string
	Example     string // a representative mineral
	Geometry    geometry.SolidCategory
	Operations  []Operation
}

// Rotations returns the group's rotation operations (proper and rotoinversion)
// in catalog order.
func (g PointGroup) Rotations() []Operation {
	var ops []Operation
	for _, op := range g.Operations {
		if op.Kind == OpRotation {
			ops = append(ops, op)
		}
	}
	return ops
}

// Mirrors returns the group's mirror operations in catalog order.
func (g PointGroup) Mirrors() []Operation {
	var ops []Operation
	for _, op := range g.Operations {
		if op.Kind == OpMirror {
			ops = append(ops, op)
		}
	}
	return ops
}

// HasInversion reports whether the group lists an inversion center.
func (g PointGroup) HasInversion() bool {
	for _, op := range g.Operations {
		if op.Kind == OpInversion {
			return true
		}
	}
	return false
}
