package surface

import (
	"math"

	"github.com/Cubidev3/Moonshade/pkg/math3d"
)

// Sphere is a sphere centered at the local origin.
type Sphere struct {
	Radius   float64
	Material Material
}

// NewSphere creates a new sphere.
func NewSphere(radius float64, material Material) *Sphere {
	return &Sphere{Radius: radius, Material: material}
}

// Intersect solves |o + t·d|² = r² for the nearest root whose travelled
// distance exceeds math3d.Epsilon. The normal is the unnormalized vector from
// the center to the hit point.
func (s *Sphere) Intersect(ray math3d.Ray) (SurfacePoint, bool) {
	oc := ray.Origin.Vector()
	od := oc.Dot(ray.Direction)
	dd := ray.Direction.LenSq()

	// Discriminant scaled by |d|², so the roots are (-o·d ∓ √Δ) / |d|².
	delta := od*od + dd*s.Radius*s.Radius - dd*oc.LenSq()
	if delta < math3d.Epsilon {
		return SurfacePoint{}, false
	}

	sqrtD := math.Sqrt(delta)
	length := math.Sqrt(dd)

	// Try the closer root first, then the farther one.
	t := (-od - sqrtD) / dd
	if t*length <= math3d.Epsilon {
		t = (-od + sqrtD) / dd
		if t*length <= math3d.Epsilon {
			return SurfacePoint{}, false
		}
	}

	point := ray.At(t)
	return SurfacePoint{
		T:        t,
		Point:    point,
		Normal:   point.Vector(),
		Material: s.Material,
	}, true
}
