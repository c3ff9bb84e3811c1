// Package surface defines the intersection protocol between rays and scene
// geometry, and the primitive, composite and transformed surfaces built on it.
package surface

import "github.com/Cubidev3/Moonshade/pkg/math3d"

// Material describes how a surface filters the light it reflects.
type Material struct {
	Diffuse math3d.Color
}

// NewMaterial creates a material with the given diffuse color.
func NewMaterial(diffuse math3d.Color) Material {
	return Material{Diffuse: diffuse}
}

// SurfacePoint is the result of a ray hitting a surface.
type SurfacePoint struct {
	// T is the ray parameter of the hit, used to pick the nearest one.
	T        float64
	Point    math3d.Point
	Normal   math3d.Vector
	Material Material
}

// Surface is anything a ray can hit. Intersect returns the nearest valid hit
// in front of the ray origin and false when the ray misses.
//
// Implementations are read concurrently by render workers and must not
// mutate state during Intersect.
type Surface interface {
	Intersect(ray math3d.Ray) (SurfacePoint, bool)
}
