package math3d

import "math"

// Rotation turns space around the second vector of its basis by the angle
// whose sine and cosine it stores. Rotating around an arbitrary axis thus
// reduces to rotating around Y inside a frame aligned with that axis.
type Rotation struct {
	basis  Basis
	sine   float64
	cosine float64
}

// RotationIdentity returns the rotation by zero radians.
func RotationIdentity() Rotation {
	return Rotation{basis: BasisXYZ, sine: 0, cosine: 1}
}

// RotationOnX rotates around the X axis, turning +Y towards +Z.
func RotationOnX(radians float64) Rotation {
	s, c := math.Sincos(radians)
	return Rotation{basis: BasisZXY, sine: s, cosine: c}
}

// RotationOnY rotates around the Y axis, turning +Z towards +X.
func RotationOnY(radians float64) Rotation {
	s, c := math.Sincos(radians)
	return Rotation{basis: BasisXYZ, sine: s, cosine: c}
}

// RotationOnZ rotates around the Z axis, turning +X towards +Y.
func RotationOnZ(radians float64) Rotation {
	s, c := math.Sincos(radians)
	return Rotation{basis: BasisYZX, sine: s, cosine: c}
}

// RotationAround rotates counter-clockwise around axis (right-hand rule).
// It reports false when the axis is zero.
func RotationAround(axis Vector, radians float64) (Rotation, bool) {
	b, ok := BasisFromUp(axis)
	if !ok {
		return RotationIdentity(), false
	}
	s, c := math.Sincos(radians)
	return Rotation{basis: b, sine: s, cosine: c}, true
}

// LookTowards returns the rotation that turns Forward onto the direction.
// A zero direction yields the identity and false. The opposite of Forward
// is reached by a half turn around Y.
func LookTowards(direction Vector) (Rotation, bool) {
	look, ok := direction.Normalized()
	if !ok {
		return RotationIdentity(), false
	}

	axis := Forward().Cross(look)
	b, ok := BasisFromUp(axis)
	if !ok {
		b = BasisXYZ
	}
	return Rotation{basis: b, sine: axis.Len(), cosine: look.Z}, true
}

// Sine returns the sine of the rotation angle.
func (r Rotation) Sine() float64 { return r.sine }

// Cosine returns the cosine of the rotation angle.
func (r Rotation) Cosine() float64 { return r.cosine }

// Axis returns the unit axis the rotation turns around.
func (r Rotation) Axis() Vector { return r.basis.v }

// Inverse returns the rotation by the opposite angle around the same axis.
func (r Rotation) Inverse() Rotation {
	return Rotation{basis: r.basis, sine: -r.sine, cosine: r.cosine}
}

// Matrix returns basis⁻¹ · R_y · basis.
func (r Rotation) Matrix() Matrix {
	rotateY := NewMatrix(
		r.cosine, 0, r.sine, 0,
		0, 1, 0, 0,
		-r.sine, 0, r.cosine, 0,
		0, 0, 0, 1,
	)
	return r.basis.Inverse().Matrix().Mul(rotateY).Mul(r.basis.Matrix())
}
