package math3d

// Transform composes a basis change, a translation, a rotation and a scale
// into one invertible affine map. Rotation and scale act in the frame of the
// basis; the matrix is basis⁻¹ · translation · rotation · scale · basis.
//
// The zero value is not a valid transform; start from TransformIdentity.
type Transform struct {
	basis       Basis
	translation Translation
	rotation    Rotation
	scale       Scale

	// inverted applies the inverse components in reverse order.
	inverted bool
}

// NewTransform composes the given components.
func NewTransform(b Basis, t Translation, r Rotation, s Scale) Transform {
	return Transform{basis: b, translation: t, rotation: r, scale: s}
}

// TransformIdentity returns the transform that changes nothing.
func TransformIdentity() Transform {
	return NewTransform(BasisXYZ, Translation{}, RotationIdentity(), ScaleIdentity())
}

// TransformTranslation returns a pure translation by offset.
func TransformTranslation(offset Vector) Transform {
	return TransformIdentity().WithTranslation(NewTranslation(offset))
}

// TransformRotation returns the rotation turning Forward towards look.
// A zero look yields the identity.
func TransformRotation(look Vector) Transform {
	r, _ := LookTowards(look)
	return TransformIdentity().WithRotation(r)
}

// TransformScale returns a pure scale. It reports false when any ratio is zero.
func TransformScale(ratio Vector) (Transform, bool) {
	s, ok := NewScale(ratio)
	if !ok {
		return TransformIdentity(), false
	}
	return TransformIdentity().WithScale(s), true
}

// WithBasis returns a copy using the given basis.
func (t Transform) WithBasis(b Basis) Transform {
	t.basis = b
	return t
}

// WithTranslation returns a copy using the given translation.
func (t Transform) WithTranslation(tr Translation) Transform {
	t.translation = tr
	return t
}

// WithRotation returns a copy using the given rotation.
func (t Transform) WithRotation(r Rotation) Transform {
	t.rotation = r
	return t
}

// WithScale returns a copy using the given scale.
func (t Transform) WithScale(s Scale) Transform {
	t.scale = s
	return t
}

// Basis returns the basis component.
func (t Transform) Basis() Basis { return t.basis }

// Translation returns the translation component.
func (t Transform) Translation() Translation { return t.translation }

// Rotation returns the rotation component.
func (t Transform) Rotation() Rotation { return t.rotation }

// Scale returns the scale component.
func (t Transform) Scale() Scale { return t.scale }

// Inverted reports whether t is the inverse of its components' composition.
func (t Transform) Inverted() bool { return t.inverted }

// Inverse returns the transform undoing t.
func (t Transform) Inverse() Transform {
	t.inverted = !t.inverted
	return t
}

// Matrix returns the composed affine matrix.
func (t Transform) Matrix() Matrix {
	in := t.basis.Matrix()
	out := t.basis.Inverse().Matrix()
	if t.inverted {
		return out.
			Mul(t.scale.Inverse().Matrix()).
			Mul(t.rotation.Inverse().Matrix()).
			Mul(t.translation.Inverse().Matrix()).
			Mul(in)
	}
	return out.
		Mul(t.translation.Matrix()).
		Mul(t.rotation.Matrix()).
		Mul(t.scale.Matrix()).
		Mul(in)
}
