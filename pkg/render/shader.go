package render

import (
	"github.com/Cubidev3/Moonshade/pkg/math3d"
	"github.com/Cubidev3/Moonshade/pkg/surface"
)

// RayShader drives the propagation of a ray through the scene. For each hit
// it decides what to record on the reflection stack and which ray, if any,
// to follow next. Implementations must be safe for concurrent use.
type RayShader interface {
	// OnIntersection returns the stack after recording hit.
	OnIntersection(ray math3d.Ray, hit surface.SurfacePoint, stack []surface.SurfacePoint) []surface.SurfacePoint
	// NextRay proposes the ray to follow after hit, or false to stop.
	NextRay(ray math3d.Ray, hit surface.SurfacePoint, stack []surface.SurfacePoint) (math3d.Ray, bool)
	// ReflectionCountHint is the expected stack depth, used for preallocation.
	ReflectionCountHint() int
}

// PixelShader folds a reflection stack into the color of a pixel.
type PixelShader interface {
	FinalColor(stack []surface.SurfacePoint, scene surface.Surface) math3d.Color
}

// DefaultRayShader follows perfect mirror reflections and records at most
// MaxReflections hits.
type DefaultRayShader struct {
	MaxReflections int
}

// NewDefaultRayShader creates a mirror ray shader. A negative maximum is treated as zero.
func NewDefaultRayShader(maxReflections int) DefaultRayShader {
	return DefaultRayShader{MaxReflections: max(maxReflections, 0)}
}

// OnIntersection appends hit while the stack is below the maximum.
func (s DefaultRayShader) OnIntersection(_ math3d.Ray, hit surface.SurfacePoint, stack []surface.SurfacePoint) []surface.SurfacePoint {
	if len(stack) >= s.MaxReflections {
		return stack
	}
	return append(stack, hit)
}

// NextRay reflects the ray about the hit normal, starting at the hit point.
func (s DefaultRayShader) NextRay(ray math3d.Ray, hit surface.SurfacePoint, stack []surface.SurfacePoint) (math3d.Ray, bool) {
	if len(stack) >= s.MaxReflections {
		return math3d.Ray{}, false
	}
	return math3d.NewRay(hit.Point, ray.Direction.Reflection(hit.Normal)), true
}

// ReflectionCountHint implements RayShader.
func (s DefaultRayShader) ReflectionCountHint() int {
	return s.MaxReflections
}

// DefaultPixelShader multiplies the diffuse colors of every recorded hit,
// so light reaching the eye is filtered by each surface it bounced off.
// A pixel whose primary ray hit nothing is Black.
type DefaultPixelShader struct{}

// FinalColor implements PixelShader.
func (DefaultPixelShader) FinalColor(stack []surface.SurfacePoint, _ surface.Surface) math3d.Color {
	if len(stack) == 0 {
		return math3d.Black
	}
	acc := math3d.White
	for i := len(stack) - 1; i >= 0; i-- {
		acc = stack[i].Material.Diffuse.Mul(acc)
	}
	return acc
}

// Trace follows ray through scene under the control of rays and returns the
// reflection stack, nearest hit first.
func Trace(rays RayShader, ray math3d.Ray, scene surface.Surface) []surface.SurfacePoint {
	stack := make([]surface.SurfacePoint, 0, rays.ReflectionCountHint())
	for {
		hit, ok := scene.Intersect(ray)
		if !ok {
			return stack
		}
		stack = rays.OnIntersection(ray, hit, stack)

		next, ok := rays.NextRay(ray, hit, stack)
		if !ok {
			return stack
		}
		ray = next
	}
}

var (
	_ RayShader   = DefaultRayShader{}
	_ PixelShader = DefaultPixelShader{}
)
