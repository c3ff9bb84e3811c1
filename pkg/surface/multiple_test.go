package surface

import (
	"math"
	"testing"

	"github.com/Cubidev3/Moonshade/pkg/math3d"
)

// fixedSurface reports the same hit for every ray.
type fixedSurface struct {
	hit SurfacePoint
	ok  bool
}

func (f fixedSurface) Intersect(math3d.Ray) (SurfacePoint, bool) {
	return f.hit, f.ok
}

func TestMultipleSurfacesNearestHit(t *testing.T) {
	near := translated(t, math3d.Vec(0, 0, -5), NewSphere(1, NewMaterial(math3d.Red)))
	far := translated(t, math3d.Vec(0, 0, 5), NewSphere(1, NewMaterial(math3d.Blue)))
	ray := math3d.NewRay(math3d.Pt(0, 0, -10), math3d.Vec(0, 0, 1))

	for _, order := range [][]Surface{{near, far}, {far, near}} {
		group := NewMultipleSurfaces(order...)
		hit, ok := group.Intersect(ray)
		if !ok {
			t.Fatal("expected a hit")
		}
		if hit.Material.Diffuse != math3d.Red {
			t.Errorf("got material %v, want the nearer red sphere", hit.Material.Diffuse)
		}
		if math.Abs(hit.T-4) > 1e-9 {
			t.Errorf("t = %v, want 4", hit.T)
		}
	}

	// Without the nearer sphere the ray reaches the farther one.
	hit, ok := NewMultipleSurfaces(far).Intersect(ray)
	if !ok {
		t.Fatal("expected a hit on the far sphere")
	}
	if hit.Material.Diffuse != math3d.Blue {
		t.Errorf("got material %v, want the farther blue sphere", hit.Material.Diffuse)
	}
	if math.Abs(hit.T-14) > 1e-9 {
		t.Errorf("t = %v, want 14", hit.T)
	}
}

func TestMultipleSurfacesMisses(t *testing.T) {
	ray := math3d.NewRay(math3d.Origin(), math3d.Forward())

	if _, ok := NewMultipleSurfaces().Intersect(ray); ok {
		t.Error("empty group should miss")
	}

	group := NewMultipleSurfaces(fixedSurface{}, fixedSurface{})
	if _, ok := group.Intersect(ray); ok {
		t.Error("group of misses should miss")
	}
}

func TestMultipleSurfacesIgnoresNaN(t *testing.T) {
	group := NewMultipleSurfaces(
		fixedSurface{hit: SurfacePoint{T: math.NaN()}, ok: true},
		fixedSurface{hit: SurfacePoint{T: 2, Material: NewMaterial(math3d.Green)}, ok: true},
	)
	hit, ok := group.Intersect(math3d.NewRay(math3d.Origin(), math3d.Forward()))
	if !ok || hit.T != 2 {
		t.Errorf("got %v, %v; want the finite hit", hit, ok)
	}
}

func TestMultipleSurfacesAdd(t *testing.T) {
	group := NewMultipleSurfaces()
	group.Add(NewSphere(1, Material{}), NewSphere(2, Material{}))
	if group.Len() != 2 {
		t.Errorf("Len = %d, want 2", group.Len())
	}
}

// translated wraps s in a pure translation.
func translated(t *testing.T, offset math3d.Vector, s Surface) Surface {
	t.Helper()
	return NewTransformedSurface(math3d.TransformTranslation(offset), s)
}
