// Package math3d provides the geometric primitives and affine transformation
// algebra used by the Moonshade ray tracer.
package math3d

import "math"

// Epsilon is the tolerance shared by every approximate comparison in the
// renderer: zero vectors, singular bases, tangent rays and self-intersections.
const Epsilon = 1e-9

// Vector represents a 3D direction or displacement.
type Vector struct {
	X, Y, Z float64
}

// Vec creates a new Vector.
func Vec(x, y, z float64) Vector {
	return Vector{x, y, z}
}

// Zero returns the zero vector.
func Zero() Vector {
	return Vector{}
}

// One returns the vector (1, 1, 1).
func One() Vector {
	return Vector{1, 1, 1}
}

// Up returns the world up vector (0, 1, 0).
func Up() Vector {
	return Vector{0, 1, 0}
}

// Down returns (0, -1, 0).
func Down() Vector {
	return Vector{0, -1, 0}
}

// Forward returns the world forward vector (0, 0, 1), the direction lenses look along.
func Forward() Vector {
	return Vector{0, 0, 1}
}

// Backward returns (0, 0, -1).
func Backward() Vector {
	return Vector{0, 0, -1}
}

// Right returns the world right vector (1, 0, 0).
func Right() Vector {
	return Vector{1, 0, 0}
}

// Left returns (-1, 0, 0).
func Left() Vector {
	return Vector{-1, 0, 0}
}

// Add returns the vector sum a + b.
func (a Vector) Add(b Vector) Vector {
	return Vector{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vector) Sub(b Vector) Vector {
	return Vector{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Mul returns the component-wise product a * b.
func (a Vector) Mul(b Vector) Vector {
	return Vector{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

// Scale returns the scalar product a * s.
func (a Vector) Scale(s float64) Vector {
	return Vector{a.X * s, a.Y * s, a.Z * s}
}

// Div returns the scalar division a / s.
func (a Vector) Div(s float64) Vector {
	return Vector{a.X / s, a.Y / s, a.Z / s}
}

// Negate returns the negated vector.
func (a Vector) Negate() Vector {
	return Vector{-a.X, -a.Y, -a.Z}
}

// Dot returns the dot product a · b.
func (a Vector) Dot(b Vector) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// AbsDot returns |a · b|.
func (a Vector) AbsDot(b Vector) float64 {
	return math.Abs(a.Dot(b))
}

// Cross returns the cross product a × b.
func (a Vector) Cross(b Vector) Vector {
	return Vector{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Sine returns the sine of the unsigned angle between a and b.
// It is zero when either vector is zero.
func (a Vector) Sine(b Vector) float64 {
	return a.NormalizedOrZero().Cross(b.NormalizedOrZero()).Len()
}

// Cosine returns the cosine of the angle between a and b.
// It is zero when either vector is zero.
func (a Vector) Cosine(b Vector) float64 {
	return a.NormalizedOrZero().Dot(b.NormalizedOrZero())
}

// Len returns the length (magnitude) of the vector.
func (a Vector) Len() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z)
}

// LenSq returns the squared length (faster, no sqrt).
func (a Vector) LenSq() float64 {
	return a.X*a.X + a.Y*a.Y + a.Z*a.Z
}

// IsZero reports whether every component is within Epsilon of zero.
func (a Vector) IsZero() bool {
	return math.Abs(a.X) < Epsilon && math.Abs(a.Y) < Epsilon && math.Abs(a.Z) < Epsilon
}

// Normalized returns the unit vector in the same direction.
// It reports false for the zero vector.
func (a Vector) Normalized() (Vector, bool) {
	if a.IsZero() {
		return Vector{}, false
	}
	return a.Div(a.Len()), true
}

// NormalizedOrZero is Normalized with the zero vector as fallback.
func (a Vector) NormalizedOrZero() Vector {
	n, _ := a.Normalized()
	return n
}

// Inverse returns a / |a|², the vector whose dot product with a is 1.
// It reports false for the zero vector.
func (a Vector) Inverse() (Vector, bool) {
	if a.IsZero() {
		return Vector{}, false
	}
	return a.Div(a.LenSq()), true
}

// InverseOrZero is Inverse with the zero vector as fallback.
func (a Vector) InverseOrZero() Vector {
	inv, _ := a.Inverse()
	return inv
}

// Projection returns the projection of a onto the direction of onto.
func (a Vector) Projection(onto Vector) Vector {
	return onto.InverseOrZero().Scale(a.Dot(onto))
}

// ScalarProjection returns the signed length of a along onto.
func (a Vector) ScalarProjection(onto Vector) float64 {
	return a.Dot(onto.NormalizedOrZero())
}

// Rejection returns the component of a perpendicular to onto.
func (a Vector) Rejection(onto Vector) Vector {
	return a.Sub(a.Projection(onto))
}

// ScalarRejection returns the length of the rejection of a from onto.
func (a Vector) ScalarRejection(onto Vector) float64 {
	return a.Rejection(onto).Len()
}

// Reflection mirrors a about the plane whose normal is axis: a - 2·proj(a, axis).
// The axis does not need to be unit length.
func (a Vector) Reflection(axis Vector) Vector {
	return a.Sub(a.Projection(axis).Scale(2))
}

// Min returns the component-wise minimum.
func (a Vector) Min(b Vector) Vector {
	return Vector{
		math.Min(a.X, b.X),
		math.Min(a.Y, b.Y),
		math.Min(a.Z, b.Z),
	}
}

// Max returns the component-wise maximum.
func (a Vector) Max(b Vector) Vector {
	return Vector{
		math.Max(a.X, b.X),
		math.Max(a.Y, b.Y),
		math.Max(a.Z, b.Z),
	}
}

// Abs returns the component-wise absolute value.
func (a Vector) Abs() Vector {
	return Vector{
		math.Abs(a.X),
		math.Abs(a.Y),
		math.Abs(a.Z),
	}
}

// Sign returns the component-wise sign (-1, 0 or 1).
func (a Vector) Sign() Vector {
	return Vector{sign(a.X), sign(a.Y), sign(a.Z)}
}

func sign(f float64) float64 {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	}
	return 0
}

// ApproxEqual reports whether every component differs by at most tol.
func (a Vector) ApproxEqual(b Vector, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}
