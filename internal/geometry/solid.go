package geometry

// SolidCategory selects the placeholder solid drawn for a point group. These
// are illustrative stand-ins keyed to the crystal system, not faithful
// crystal-morphology models.
type SolidCategory string

const (
	ScaleneBox     SolidCategory = "scalene-box"
	ShearedBox     SolidCategory = "sheared-box"
	OrthoBox       SolidCategory = "ortho-box"
	TetragonalBox  SolidCategory = "tetragonal-box"
	TrigonalPrism  SolidCategory = "trigonal-prism"
	HexagonalPrism SolidCategory = "hexagonal-prism"
	Cube           SolidCategory = "cube"
	Tetrahedron    SolidCategory = "tetrahedron"
)

// SolidDescription holds the parametric dimensions of a placeholder solid.
// Boxes use Width/Height/Depth and optionally Shear (x displacement of the
// top face per unit height); prisms use Radius, Height and Sides.
type SolidDescription struct {
	Category SolidCategory
	Width    float64
	Height   float64
	Depth    float64
	Shear    float64
	Radius   float64
	Sides    int
}

// SolidFor maps a category to its placeholder dimensions. Unknown categories
// fall back to a unit cube so display never fails.
func SolidFor(cat SolidCategory) SolidDescription {
	switch cat {
	case ScaleneBox:
		return SolidDescription{Category: cat, Width: 1.4, Height: 0.8, Depth: 1.1, Shear: 0.25}
	case ShearedBox:
		return SolidDescription{Category: cat, Width: 1.2, Height: 1.0, Depth: 0.9, Shear: 0.3}
	case OrthoBox:
		return SolidDescription{Category: cat, Width: 1.4, Height: 1.0, Depth: 0.7}
	case TetragonalBox:
		return SolidDescription{Category: cat, Width: 0.9, Height: 1.4, Depth: 0.9}
	case TrigonalPrism:
		return SolidDescription{Category: cat, Radius: 0.8, Height: 1.2, Sides: 3}
	case HexagonalPrism:
		return SolidDescription{Category: cat, Radius: 0.8, Height: 1.2, Sides: 6}
	case Tetrahedron:
		return SolidDescription{Category: cat, Width: 1.3}
	case Cube:
		return SolidDescription{Category: cat, Width: 1.0, Height: 1.0, Depth: 1.0}
	default:
		return SolidDescription{Category: Cube, Width: 1.0, Height: 1.0, Depth: 1.0}
	}
}
