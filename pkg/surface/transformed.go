package surface

import (
	"github.com/Cubidev3/Moonshade/pkg/math3d"
)

// TransformedSurface places a surface in the world through an affine
// transform. Both matrices are computed once at construction.
type TransformedSurface struct {
	surface Surface
	matrix  math3d.Matrix
	inverse math3d.Matrix
}

// NewTransformedSurface wraps s so that its local space maps to the world by t.
func NewTransformedSurface(t math3d.Transform, s Surface) *TransformedSurface {
	return &TransformedSurface{
		surface: s,
		matrix:  t.Matrix(),
		inverse: t.Inverse().Matrix(),
	}
}

// NewTransformedSurfaceMatrix wraps s with an explicit matrix and its inverse.
func NewTransformedSurfaceMatrix(m, inverse math3d.Matrix, s Surface) *TransformedSurface {
	return &TransformedSurface{surface: s, matrix: m, inverse: inverse}
}

// Surface returns the wrapped surface.
func (ts *TransformedSurface) Surface() Surface {
	return ts.surface
}

// Matrix returns the local-to-world matrix.
func (ts *TransformedSurface) Matrix() math3d.Matrix {
	return ts.matrix
}

// Intersect maps the ray into local space, intersects there and maps the hit
// back. The local T is rescaled by the length of the local direction; hits
// whose rescaled T is not above math3d.Epsilon are discarded.
func (ts *TransformedSurface) Intersect(ray math3d.Ray) (SurfacePoint, bool) {
	local := ts.inverse.MulRay(ray)
	hit, ok := ts.surface.Intersect(local)
	if !ok {
		return SurfacePoint{}, false
	}

	t := hit.T * local.Direction.Len()
	if t <= math3d.Epsilon {
		return SurfacePoint{}, false
	}

	return SurfacePoint{
		T:        t,
		Point:    ts.matrix.MulPoint(hit.Point),
		Normal:   ts.matrix.MulVector(hit.Normal),
		Material: hit.Material,
	}, true
}

var (
	_ Surface = (*Sphere)(nil)
	_ Surface = (*MultipleSurfaces)(nil)
	_ Surface = (*TransformedSurface)(nil)
)
