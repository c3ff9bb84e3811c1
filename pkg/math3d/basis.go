package math3d

import "math"

// Basis is a change of frame given by three vectors u, v, w. Its matrix has
// them as rows, so it maps world coordinates into the frame's coordinates.
type Basis struct {
	u, v, w Vector
}

// Standard bases. The second vector is the axis rotations turn around.
var (
	BasisXYZ = Basis{Right(), Up(), Forward()}
	BasisZXY = Basis{Forward(), Right(), Up()}
	BasisYZX = Basis{Up(), Forward(), Right()}
)

// NewBasis creates a basis from three vectors.
// It reports false when they are coplanar (zero scalar triple product). The
// triple product is compared to the lengths of the vectors, so a basis of
// small vectors is accepted.
func NewBasis(u, v, w Vector) (Basis, bool) {
	if math.Abs(u.Dot(v.Cross(w))) <= Epsilon*u.Len()*v.Len()*w.Len() {
		return Basis{}, false
	}
	return Basis{u, v, w}, true
}

// BasisFromUp builds a right-handed orthonormal basis whose v is the
// normalized up. It reports false when up is zero.
func BasisFromUp(up Vector) (Basis, bool) {
	v, ok := up.Normalized()
	if !ok {
		return Basis{}, false
	}

	var u Vector
	switch {
	case math.Abs(v.X) < Epsilon:
		u = Vector{0, -v.Z, v.Y}
	case math.Abs(v.Y) < Epsilon:
		u = Vector{-v.Z, 0, v.X}
	default:
		u = Vector{-v.Y, v.X, 0}
	}
	u = u.NormalizedOrZero()

	return Basis{u, v, u.Cross(v)}, true
}

// BasisFromUpAndRight builds a right-handed orthonormal basis with v along up
// and u as close to right as orthogonality allows. It reports false when up
// is zero or parallel to right.
func BasisFromUpAndRight(up, right Vector) (Basis, bool) {
	v, ok := up.Normalized()
	if !ok {
		return Basis{}, false
	}
	w, ok := right.Cross(v).Normalized()
	if !ok {
		return Basis{}, false
	}
	return Basis{v.Cross(w), v, w}, true
}

// U returns the first basis vector.
func (b Basis) U() Vector { return b.u }

// V returns the second basis vector, the rotation axis.
func (b Basis) V() Vector { return b.v }

// W returns the third basis vector.
func (b Basis) W() Vector { return b.w }

// Determinant returns the scalar triple product u · (v × w).
func (b Basis) Determinant() float64 {
	return b.u.Dot(b.v.Cross(b.w))
}

// Inverse returns the basis mapping frame coordinates back to world
// coordinates. For orthonormal bases this is the transpose.
func (b Basis) Inverse() Basis {
	det := b.Determinant()
	if math.Abs(det) <= Epsilon*b.u.Len()*b.v.Len()*b.w.Len() {
		return b
	}
	// Columns of the inverse are the pairwise cross products over det.
	c0 := b.v.Cross(b.w).Div(det)
	c1 := b.w.Cross(b.u).Div(det)
	c2 := b.u.Cross(b.v).Div(det)
	return Basis{
		Vector{c0.X, c1.X, c2.X},
		Vector{c0.Y, c1.Y, c2.Y},
		Vector{c0.Z, c1.Z, c2.Z},
	}
}

// Matrix returns the matrix with rows u, v, w.
func (b Basis) Matrix() Matrix {
	return NewMatrix(
		b.u.X, b.u.Y, b.u.Z, 0,
		b.v.X, b.v.Y, b.v.Z, 0,
		b.w.X, b.w.Y, b.w.Z, 0,
		0, 0, 0, 1,
	)
}
