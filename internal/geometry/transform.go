package geometry

// Transform is an affine transform decomposed into per-axis scale, rotation
// and translation, applied to a point in that order.
type Transform struct {
	Rotation    Mat3
	Scale       Vec3
	Translation Vec3
}

func IdentityTransform() Transform {
	return Transform{
		Rotation: Identity(),
		Scale:    Vec3{1, 1, 1},
	}
}

// Apply maps a point through the transform: rotate(scale(p)) + translation.
func (t Transform) Apply(p Vec3) Vec3 {
	return t.Rotation.MulVec(p.Mul(t.Scale)).Add(t.Translation)
}
