package symmetry

import (
	"fmt"

	"github.com/elin-r/xtal/internal/geometry"
)

// OpKind tags the closed set of symmetry operation variants.
type OpKind int

const (
	OpRotation OpKind = iota
	OpMirror
	OpInversion
)

func (k OpKind) String() string {
	switch k {
	case OpRotation:
		return "rotation"
	case OpMirror:
		return "mirror"
	case OpInversion:
		return "inversion"
	default:
		return fmt.Sprintf("opkind(%d)", int(k))
	}
}

// Operation is a tagged variant: a proper rotation or rotoinversion about
// Axis, a mirror through the origin with the given Normal, or a point
// inversion. Axis and Normal are non-zero but not necessarily unit length;
// consumers normalize before use.
type Operation struct {
	Kind          OpKind
	Order         int           // rotations only, >= 2
	Axis          geometry.Vec3 // rotations only
	Rotoinversion bool          // rotations only
	Normal        geometry.Vec3 // mirrors only
}

func Rotate(order int, axis geometry.Vec3) Operation {
	return Operation{Kind: OpRotation, Order: order, Axis: axis}
}

func Rotoinvert(order int, axis geometry.Vec3) Operation {
	return Operation{Kind: OpRotation, Order: order, Axis: axis, Rotoinversion: true}
}

func MirrorAcross(normal geometry.Vec3) Operation {
	return Operation{Kind: OpMirror, Normal: normal}
}

func Invert() Operation {
	return Operation{Kind: OpInversion}
}

// Validate reports catalog-integrity violations. These are configuration
// errors caught once at startup, never during animation.
func (o Operation) Validate() error {
	switch o.Kind {
	case OpRotation:
		if o.Order < 2 {
			return fmt.Errorf("rotation order must be >= 2, got %d", o.Order)
		}
		if o.Axis.IsZero() {
			return fmt.Errorf("rotation axis must be non-zero")
		}
	case OpMirror:
		if o.Normal.IsZero() {
			return fmt.Errorf("mirror normal must be non-zero")
		}
	case OpInversion:
	default:
		return fmt.Errorf("unknown operation kind %d", int(o.Kind))
	}
	return nil
}

// Label is the human-readable name shown in operation lists, e.g.
// "4-fold rotation" or "3-fold rotoinversion".
func (o Operation) Label() string {
	switch o.Kind {
	case OpRotation:
		if o.Rotoinversion {
			return fmt.Sprintf("%d-fold rotoinversion", o.Order)
		}
		return fmt.Sprintf("%d-fold rotation", o.Order)
	case OpMirror:
		return "mirror plane"
	case OpInversion:
		return "inversion center"
	default:
		return o.Kind.String()
	}
}
