package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/Cubidev3/Moonshade/pkg/math3d"
)

// LensShader maps a normalized image coordinate to the primary ray cast for
// it. x and y are in [0, 1], with (0, 0) at the first pixel of the first row.
// Implementations must be safe for concurrent use.
type LensShader interface {
	RayToLensPoint(x, y float64) (math3d.Ray, bool)
}

// PlanePerspectiveLens casts rays from the origin through a rectangle of the
// given size centered focalLength units ahead.
type PlanePerspectiveLens struct {
	topLeft math3d.Point
	size    math3d.Vector
}

// NewPlanePerspectiveLens creates a pinhole lens. Only the X and Y of size are
// used; size.Z is ignored.
func NewPlanePerspectiveLens(focalLength float64, size math3d.Vector) PlanePerspectiveLens {
	size.Z = 0
	return PlanePerspectiveLens{
		topLeft: math3d.Pt(0, 0, focalLength).SubVector(size.Div(2)),
		size:    size,
	}
}

// RayToLensPoint implements LensShader.
func (l PlanePerspectiveLens) RayToLensPoint(x, y float64) (math3d.Ray, bool) {
	target := l.topLeft.Add(l.size.Mul(math3d.Vec(x, y, 1)))
	return math3d.RayFromPoints(math3d.Origin(), target), true
}

// PlaneOrthographicLens casts parallel rays along Forward from a rectangle
// centered on the origin.
type PlaneOrthographicLens struct {
	topLeft math3d.Point
	size    math3d.Vector
}

// NewPlaneOrthographicLens creates an orthographic lens of the given size.
// size.Z is ignored.
func NewPlaneOrthographicLens(size math3d.Vector) PlaneOrthographicLens {
	size.Z = 0
	return PlaneOrthographicLens{
		topLeft: math3d.Origin().SubVector(size.Div(2)),
		size:    size,
	}
}

// RayToLensPoint implements LensShader.
func (l PlaneOrthographicLens) RayToLensPoint(x, y float64) (math3d.Ray, bool) {
	origin := l.topLeft.Add(l.size.Mul(math3d.Vec(x, y, 1)))
	return math3d.NewRay(origin, math3d.Forward()), true
}

// SphereLens sweeps rays from the origin over a patch of a sphere:
// amplitudeX radians around Y and amplitudeY radians of tilt.
type SphereLens struct {
	amplitudeX float64
	amplitudeY float64
	radius     float64
}

// NewSphereLens creates a spherical lens.
func NewSphereLens(amplitudeX, amplitudeY, radius float64) SphereLens {
	return SphereLens{amplitudeX: amplitudeX, amplitudeY: amplitudeY, radius: radius}
}

// FullSphereLens covers every direction.
func FullSphereLens(radius float64) SphereLens {
	return NewSphereLens(2*math.Pi, math.Pi, radius)
}

// RayToLensPoint implements LensShader. Increasing y tilts towards +Y, like
// the plane lenses.
func (l SphereLens) RayToLensPoint(x, y float64) (math3d.Ray, bool) {
	m := math3d.RotationOnX(-l.amplitudeY * (y - 0.5)).Matrix().
		Mul(math3d.RotationOnY(l.amplitudeX * (x - 0.5)).Matrix())
	return math3d.NewRay(math3d.Origin(), m.MulVector(math3d.Forward().Scale(l.radius))), true
}

// PanoramaPerspectiveLens sweeps rays around Y and spreads them vertically
// from a single origin, giving a cylindrical perspective panorama.
type PanoramaPerspectiveLens struct {
	amplitude float64
	height    float64
	radius    float64
}

// NewPanoramaPerspectiveLens creates a cylindrical perspective lens.
func NewPanoramaPerspectiveLens(amplitude, height, radius float64) PanoramaPerspectiveLens {
	return PanoramaPerspectiveLens{amplitude: amplitude, height: height, radius: radius}
}

// FullPanoramaPerspectiveLens sweeps a full turn.
func FullPanoramaPerspectiveLens(height, radius float64) PanoramaPerspectiveLens {
	return NewPanoramaPerspectiveLens(2*math.Pi, height, radius)
}

// RayToLensPoint implements LensShader.
func (l PanoramaPerspectiveLens) RayToLensPoint(x, y float64) (math3d.Ray, bool) {
	dir := math3d.RotationOnY(l.amplitude * (x - 0.5)).Matrix().MulVector(math3d.Forward().Scale(l.radius))
	dir = dir.Add(math3d.Up().Scale(l.height * (y - 0.5)))
	return math3d.NewRay(math3d.Origin(), dir), true
}

// PanoramaOrthographicLens sweeps rays around Y and stacks them vertically by
// moving their origins, giving a cylindrical orthographic panorama.
type PanoramaOrthographicLens struct {
	amplitude float64
	height    float64
	radius    float64
}

// NewPanoramaOrthographicLens creates a cylindrical orthographic lens.
func NewPanoramaOrthographicLens(amplitude, height, radius float64) PanoramaOrthographicLens {
	return PanoramaOrthographicLens{amplitude: amplitude, height: height, radius: radius}
}

// FullPanoramaOrthographicLens sweeps a full turn.
func FullPanoramaOrthographicLens(height, radius float64) PanoramaOrthographicLens {
	return NewPanoramaOrthographicLens(2*math.Pi, height, radius)
}

// RayToLensPoint implements LensShader.
func (l PanoramaOrthographicLens) RayToLensPoint(x, y float64) (math3d.Ray, bool) {
	m := math3d.NewTranslation(math3d.Vec(0, l.height*(y-0.5), 0)).Matrix().
		Mul(math3d.RotationOnY(l.amplitude * (x - 0.5)).Matrix())
	return m.MulRay(math3d.NewRay(math3d.Origin(), math3d.Forward().Scale(l.radius))), true
}

// LensKind names one of the lens shaders.
type LensKind string

// Lens kinds.
const (
	LensPlane         LensKind = "plane"
	LensOrthographic  LensKind = "ortho"
	LensSphere        LensKind = "sphere"
	LensPanorama      LensKind = "panorama"
	LensPanoramaOrtho LensKind = "panorama-ortho"
)

// LensKinds lists every lens kind.
func LensKinds() []LensKind {
	return []LensKind{LensPlane, LensOrthographic, LensSphere, LensPanorama, LensPanoramaOrtho}
}

// ParseLensKind parses a lens kind name, ignoring case.
func ParseLensKind(s string) (LensKind, error) {
	k := LensKind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range LensKinds() {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown lens %q", s)
}

var (
	_ LensShader = PlanePerspectiveLens{}
	_ LensShader = PlaneOrthographicLens{}
	_ LensShader = SphereLens{}
	_ LensShader = PanoramaPerspectiveLens{}
	_ LensShader = PanoramaOrthographicLens{}
)
