package symmetry

import (
	"errors"
	"fmt"

	"github.com/elin-r/xtal/internal/geometry"
)

// ErrNotFound is returned by Lookup for an id not present in the catalog.
var ErrNotFound = errors.New("symmetry: point group not found")

var (
	axisX   = geometry.Vec3{X: 1}
	axisY   = geometry.Vec3{Y: 1}
	axisZ   = geometry.Vec3{Z: 1}
	diagXY  = geometry.Vec3{X: 1, Y: 1}
	diagXYZ = geometry.Vec3{X: 1, Y: 1, Z: 1}
)

// catalog is the fixed table of the 32 crystallographic point groups. Each
// entry lists generating operations, not the full group: the principal
// rotation/rotoinversion axes, the distinct mirror generators, and the
// inversion center when present. Trigonal 3-fold axes run along x; tetragonal
// and hexagonal principal axes run along z; cubic body diagonals along
// [1,1,1].
var catalog = []PointGroup{
	// Triclinic
	{
		ID: "1", Name: "pedial", Schoenflies: "C1", System: Triclinic,
		Description: "No symmetry beyond identity; every face is unique.",
		Example:     "kaolinite", Geometry: geometry.ScaleneBox,
	},
	{
		ID: "-1", Name: "pinacoidal", Schoenflies: "Ci", System: Triclinic,
		Description: "Inversion center only; faces come in antiparallel pairs.",
		Example:     "axinite", Geometry: geometry.ScaleneBox,
		Operations:  []Operation{Invert()},
	},

	// Monoclinic
	{
		ID: "2", Name: "sphenoidal", Schoenflies: "C2", System: Monoclinic,
		Description: "A single 2-fold rotation axis along the unique direction.",
		Example:     "sucrose", Geometry: geometry.ShearedBox,
		Operations:  []Operation{Rotate(2, axisY)},
	},
	{
		ID: "m", Name: "domatic", Schoenflies: "Cs", System: Monoclinic,
		Description: "A single mirror plane and nothing else.",
		Example:     "hilgardite", Geometry: geometry.ShearedBox,
		Operations:  []Operation{MirrorAcross(axisY)},
	},
	{
		ID: "2/m", Name: "prismatic", Schoenflies: "C2h", System: Monoclinic,
		Description: "A 2-fold axis with a mirror perpendicular to it, implying an inversion center.",
		Example:     "gypsum", Geometry: geometry.ShearedBox,
		Operations:  []Operation{Rotate(2, axisY), MirrorAcross(axisY), Invert()},
	},

	// Orthorhombic
	{
		ID: "222", Name: "rhombic-disphenoidal", Schoenflies: "D2", System: Orthorhombic,
		Description: "Three mutually perpendicular 2-fold axes, no mirrors.",
		Example:     "epsomite", Geometry: geometry.OrthoBox,
		Operations:  []Operation{Rotate(2, axisZ), Rotate(2, axisX), Rotate(2, axisY)},
	},
	{
		ID: "mm2", Name: "rhombic-pyramidal", Schoenflies: "C2v", System: Orthorhombic,
		Description: "A polar 2-fold axis lying in two perpendicular mirror planes.",
		Example:     "hemimorphite", Geometry: geometry.OrthoBox,
		Operations:  []Operation{Rotate(2, axisZ), MirrorAcross(axisX), MirrorAcross(axisY)},
	},
	{
		ID: "mmm", Name: "rhombic-dipyramidal", Schoenflies: "D2h", System: Orthorhombic,
		Description: "Three 2-fold axes, three perpendicular mirrors and an inversion center.",
		Example:     "barite", Geometry: geometry.OrthoBox,
		Operations: []Operation{
			Rotate(2, axisZ), Rotate(2, axisX), Rotate(2, axisY),
			MirrorAcross(axisZ), MirrorAcross(axisX), MirrorAcross(axisY), Invert(),
		},
	},

	// Tetragonal
	{
		ID: "4", Name: "tetragonal-pyramidal", Schoenflies: "C4", System: Tetragonal,
		Description: "A single polar 4-fold rotation axis.",
		Example:     "wulfenite", Geometry: geometry.TetragonalBox,
		Operations:  []Operation{Rotate(4, axisZ)},
	},
	{
		ID: "-4", Name: "tetragonal-disphenoidal", Schoenflies: "S4", System: Tetragonal,
		Description: "A single 4-fold rotoinversion axis.",
		Example:     "cahnite", Geometry: geometry.TetragonalBox,
		Operations:  []Operation{Rotoinvert(4, axisZ)},
	},
	{
		ID: "4/m", Name: "tetragonal-dipyramidal", Schoenflies: "C4h", System: Tetragonal,
		Description: "A 4-fold axis with a perpendicular mirror and an inversion center.",
		Example:     "scheelite", Geometry: geometry.TetragonalBox,
		Operations:  []Operation{Rotate(4, axisZ), MirrorAcross(axisZ), Invert()},
	},
	{
		ID: "422", Name: "tetragonal-trapezohedral", Schoenflies: "D4", System: Tetragonal,
		Description: "A 4-fold axis with perpendicular 2-fold axes, no mirrors.",
		Example:     "phosgenite", Geometry: geometry.TetragonalBox,
		Operations:  []Operation{Rotate(4, axisZ), Rotate(2, axisX), Rotate(2, diagXY)},
	},
	{
		ID: "4mm", Name: "ditetragonal-pyramidal", Schoenflies: "C4v", System: Tetragonal,
		Description: "A polar 4-fold axis lying in axial and diagonal mirror planes.",
		Example:     "diaboleite", Geometry: geometry.TetragonalBox,
		Operations:  []Operation{Rotate(4, axisZ), MirrorAcross(axisX), MirrorAcross(diagXY)},
	},
	{
		ID: "-42m", Name: "tetragonal-scalenohedral", Schoenflies: "D2d", System: Tetragonal,
		Description: "A 4-fold rotoinversion axis with 2-fold axes and diagonal mirrors.",
		Example:     "chalcopyrite", Geometry: geometry.TetragonalBox,
		Operations:  []Operation{Rotoinvert(4, axisZ), Rotate(2, axisX), MirrorAcross(diagXY)},
	},
	{
		ID: "4/mmm", Name: "ditetragonal-dipyramidal", Schoenflies: "D4h", System: Tetragonal,
		Description: "Full tetragonal symmetry: 4-fold axis, three mirror generators, inversion center.",
		Example:     "rutile", Geometry: geometry.TetragonalBox,
		Operations: []Operation{
			Rotate(4, axisZ),
			MirrorAcross(axisZ), MirrorAcross(axisX), MirrorAcross(diagXY),
			Invert(),
		},
	},

	// Trigonal
	{
		ID: "3", Name: "trigonal-pyramidal", Schoenflies: "C3", System: Trigonal,
		Description: "A single polar 3-fold rotation axis.",
		Example:     "gratonite", Geometry: geometry.TrigonalPrism,
		Operations:  []Operation{Rotate(3, axisX)},
	},
	{
		ID: "-3", Name: "rhombohedral", Schoenflies: "C3i", System: Trigonal,
		Description: "A 3-fold rotoinversion axis, implying an inversion center.",
		Example:     "dolomite", Geometry: geometry.TrigonalPrism,
		Operations:  []Operation{Rotoinvert(3, axisX), Invert()},
	},
	{
		ID: "32", Name: "trigonal-trapezohedral", Schoenflies: "D3", System: Trigonal,
		Description: "A 3-fold axis with perpendicular 2-fold axes, no mirrors.",
		Example:     "quartz", Geometry: geometry.TrigonalPrism,
		Operations:  []Operation{Rotate(3, axisX), Rotate(2, axisY)},
	},
	{
		ID: "3m", Name: "ditrigonal-pyramidal", Schoenflies: "C3v", System: Trigonal,
		Description: "A polar 3-fold axis lying in three mirror planes.",
		Example:     "tourmaline", Geometry: geometry.TrigonalPrism,
		Operations:  []Operation{Rotate(3, axisX), MirrorAcross(axisY)},
	},
	{
		ID: "-3m", Name: "ditrigonal-scalenohedral", Schoenflies: "D3d", System: Trigonal,
		Description: "A 3-fold rotoinversion axis with 2-fold axes and mirrors, inversion center.",
		Example:     "calcite", Geometry: geometry.TrigonalPrism,
		Operations:  []Operation{Rotoinvert(3, axisX), Rotate(2, axisY), MirrorAcross(axisZ), Invert()},
	},

	// Hexagonal
	{
		ID: "6", Name: "hexagonal-pyramidal", Schoenflies: "C6", System: Hexagonal,
		Description: "A single polar 6-fold rotation axis.",
		Example:     "nepheline", Geometry: geometry.HexagonalPrism,
		Operations:  []Operation{Rotate(6, axisZ)},
	},
	{
		ID: "-6", Name: "trigonal-dipyramidal", Schoenflies: "C3h", System: Hexagonal,
		Description: "A single 6-fold rotoinversion axis (a 3-fold axis with a perpendicular mirror).",
		Example:     "laurelite", Geometry: geometry.HexagonalPrism,
		Operations:  []Operation{Rotoinvert(6, axisZ)},
	},
	{
		ID: "6/m", Name: "hexagonal-dipyramidal", Schoenflies: "C6h", System: Hexagonal,
		Description: "A 6-fold axis with a perpendicular mirror and an inversion center.",
		Example:     "apatite", Geometry: geometry.HexagonalPrism,
		Operations:  []Operation{Rotate(6, axisZ), MirrorAcross(axisZ), Invert()},
	},
	{
		ID: "622", Name: "hexagonal-trapezohedral", Schoenflies: "D6", System: Hexagonal,
		Description: "A 6-fold axis with perpendicular 2-fold axes, no mirrors.",
		Example:     "beta-quartz", Geometry: geometry.HexagonalPrism,
		Operations:  []Operation{Rotate(6, axisZ), Rotate(2, axisX), Rotate(2, axisY)},
	},
	{
		ID: "6mm", Name: "dihexagonal-pyramidal", Schoenflies: "C6v", System: Hexagonal,
		Description: "A polar 6-fold axis lying in six mirror planes.",
		Example:     "wurtzite", Geometry: geometry.HexagonalPrism,
		Operations:  []Operation{Rotate(6, axisZ), MirrorAcross(axisX), MirrorAcross(axisY)},
	},
	{
		ID: "-6m2", Name: "ditrigonal-dipyramidal", Schoenflies: "D3h", System: Hexagonal,
		Description: "A 6-fold rotoinversion axis with mirrors and perpendicular 2-fold axes.",
		Example:     "benitoite", Geometry: geometry.HexagonalPrism,
		Operations:  []Operation{Rotoinvert(6, axisZ), MirrorAcross(axisZ), MirrorAcross(axisX), Rotate(2, axisY)},
	},
	{
		ID: "6/mmm", Name: "dihexagonal-dipyramidal", Schoenflies: "D6h", System: Hexagonal,
		Description: "Full hexagonal symmetry: 6-fold axis, mirror generators, inversion center.",
		Example:     "beryl", Geometry: geometry.HexagonalPrism,
		Operations: []Operation{
			Rotate(6, axisZ),
			MirrorAcross(axisZ), MirrorAcross(axisX), MirrorAcross(axisY),
			Invert(),
		},
	},

	// Cubic
	{
		ID: "23", Name: "tetartoidal", Schoenflies: "T", System: Cubic,
		Description: "2-fold cube axes and 3-fold body diagonals, no mirrors.",
		Example:     "langbeinite", Geometry: geometry.Tetrahedron,
		Operations:  []Operation{Rotate(2, axisZ), Rotate(3, diagXYZ)},
	},
	{
		ID: "m-3", Name: "diploidal", Schoenflies: "Th", System: Cubic,
		Description: "2-fold axes and 3-fold body diagonals with axial mirrors and an inversion center.",
		Example:     "pyrite", Geometry: geometry.Tetrahedron,
		Operations:  []Operation{Rotate(2, axisZ), Rotate(3, diagXYZ), MirrorAcross(axisZ), Invert()},
	},
	{
		ID: "432", Name: "gyroidal", Schoenflies: "O", System: Cubic,
		Description: "4-fold cube axes, 3-fold body diagonals and 2-fold edge axes, no mirrors.",
		Example:     "petzite", Geometry: geometry.Cube,
		Operations:  []Operation{Rotate(4, axisZ), Rotate(3, diagXYZ), Rotate(2, diagXY)},
	},
	{
		ID: "-43m", Name: "hextetrahedral", Schoenflies: "Td", System: Cubic,
		Description: "4-fold rotoinversion axes, 3-fold body diagonals and diagonal mirrors.",
		Example:     "sphalerite", Geometry: geometry.Tetrahedron,
		Operations:  []Operation{Rotoinvert(4, axisZ), Rotate(3, diagXYZ), MirrorAcross(diagXY)},
	},
	{
		ID: "m-3m", Name: "hexoctahedral", Schoenflies: "Oh", System: Cubic,
		Description: "Full cubic symmetry: 4-fold axes, body diagonals, axial and diagonal mirrors, inversion center.",
		Example:     "galena", Geometry: geometry.Cube,
		Operations: []Operation{
			Rotate(4, axisZ), Rotate(3, diagXYZ), Rotate(2, diagXY),
			MirrorAcross(axisZ), MirrorAcross(diagXY),
			Invert(),
		},
	},
}

var byID = make(map[string]int, len(catalog))

func init() {
	for i, g := range catalog {
		if _, dup := byID[g.ID]; dup {
			panic(fmt.Sprintf("symmetry: duplicate point group id %q", g.ID))
		}
		byID[g.ID] = i
		for j, op := range g.Operations {
			if err := op.Validate(); err != nil {
				panic(fmt.Sprintf("symmetry: group %q operation %d: %v", g.ID, j, err))
			}
		}
	}
}

// All returns the full 32-entry catalog in conventional order. The returned
// slice is a copy; the catalog itself is never mutated.
func All() []PointGroup {
	out := make([]PointGroup, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a point group by its Hermann-Mauguin symbol.
func Lookup(id string) (PointGroup, error) {
	i, ok := byID[id]
	if !ok {
		return PointGroup{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return catalog[i], nil
}

// BySystem returns the groups of one crystal system in catalog order.
// The empty string or "All" returns the whole catalog; an unknown system
// returns an empty slice.
func BySystem(system string) []PointGroup {
	if system == "" || system == "All" {
		return All()
	}
	var out []PointGroup
	for _, g := range catalog {
		if string(g.System) == system {
			out = append(out, g)
		}
	}
	return out
}
