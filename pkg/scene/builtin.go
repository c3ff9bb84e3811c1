package scene

import (
	"math"

	"github.com/Cubidev3/Moonshade/pkg/math3d"
	"github.com/Cubidev3/Moonshade/pkg/surface"
)

// Default is a large green sphere ahead of the lens and a small blue one
// behind it, each reflected in the other.
func Default() surface.Surface {
	return surface.NewMultipleSurfaces(
		surface.NewTransformedSurface(
			math3d.TransformTranslation(math3d.Forward().Scale(5)),
			surface.NewSphere(3, surface.NewMaterial(math3d.Green)),
		),
		surface.NewTransformedSurface(
			math3d.TransformTranslation(math3d.Forward().Scale(-5)),
			surface.NewSphere(1, surface.NewMaterial(math3d.NewColor(0.25, 0.5, 1, 1))),
		),
	)
}

// Corridor encloses the lens between two large mirrors with tinted spheres
// floating in between, so most rays bounce until the reflection limit.
func Corridor() surface.Surface {
	mirror := surface.NewMaterial(math3d.Solid(0.95, 0.95, 0.95))
	world := surface.NewMultipleSurfaces(
		surface.NewTransformedSurface(
			math3d.TransformTranslation(math3d.Vec(0, 0, 60)),
			surface.NewSphere(50, mirror),
		),
		surface.NewTransformedSurface(
			math3d.TransformTranslation(math3d.Vec(0, 0, -60)),
			surface.NewSphere(50, mirror),
		),
	)

	tints := []math3d.Color{
		math3d.Solid(1, 0.4, 0.4),
		math3d.Solid(0.4, 1, 0.4),
		math3d.Solid(0.4, 0.4, 1),
	}
	for i, tint := range tints {
		angle := float64(i) * 2 * math.Pi / float64(len(tints))
		offset := math3d.Vec(2.5*math.Cos(angle), 2.5*math.Sin(angle), 4)
		world.Add(surface.NewTransformedSurface(
			math3d.TransformTranslation(offset),
			surface.NewSphere(1, surface.NewMaterial(tint)),
		))
	}
	return world
}

// Grid is a 5x3 wall of spheres squashed and stretched by per-sphere scales,
// in front of a large backdrop sphere.
func Grid() surface.Surface {
	world := surface.NewMultipleSurfaces(
		surface.NewTransformedSurface(
			math3d.TransformTranslation(math3d.Vec(0, 0, 40)),
			surface.NewSphere(20, surface.NewMaterial(math3d.Solid(0.8, 0.8, 0.7))),
		),
	)

	for row := range 3 {
		for col := range 5 {
			ratio := math3d.Vec(1, 1+0.25*float64(row), 1+0.25*float64(col))
			scale, _ := math3d.NewScale(ratio)
			look := math3d.Vec(float64(col-2), float64(row-1), 4)

			rotation, _ := math3d.LookTowards(look)
			transform := math3d.NewTransform(
				math3d.BasisXYZ,
				math3d.NewTranslation(math3d.Vec(float64(col-2)*3, float64(row-1)*3, 12)),
				rotation,
				scale,
			)
			color := math3d.Solid(0.3+0.15*float64(col), 0.4+0.2*float64(row), 0.9-0.15*float64(col))
			world.Add(surface.NewTransformedSurface(transform, surface.NewSphere(0.9, surface.NewMaterial(color))))
		}
	}
	return world
}
