package surface

import (
	"math"
	"testing"

	"github.com/Cubidev3/Moonshade/pkg/math3d"
)

func TestTransformedSurfaceRescalesT(t *testing.T) {
	scale, ok := math3d.TransformScale(math3d.Vec(2, 2, 2))
	if !ok {
		t.Fatal("TransformScale failed")
	}
	ts := NewTransformedSurface(scale, NewSphere(1, NewMaterial(math3d.White)))
	ray := math3d.NewRay(math3d.Pt(0, 0, -10), math3d.Vec(0, 0, 1))

	hit, ok := ts.Intersect(ray)
	if !ok {
		t.Fatal("expected a hit")
	}
	// Local ray: origin (0,0,-5), direction (0,0,0.5), local t = 8.
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("t = %v, want 4", hit.T)
	}
	if !hit.Point.ApproxEqual(math3d.Pt(0, 0, -2), 1e-9) {
		t.Errorf("point = %v, want (0, 0, -2)", hit.Point)
	}
	if !hit.Normal.ApproxEqual(math3d.Vec(0, 0, -2), 1e-9) {
		t.Errorf("normal = %v, want (0, 0, -2)", hit.Normal)
	}
}

func TestTransformedSurfaceTranslation(t *testing.T) {
	ts := NewTransformedSurface(
		math3d.TransformTranslation(math3d.Vec(0, 0, 5)),
		NewSphere(3, NewMaterial(math3d.Green)),
	)

	tests := []struct {
		name      string
		ray       math3d.Ray
		wantHit   bool
		wantPoint math3d.Point
	}{
		{"hit", math3d.NewRay(math3d.Origin(), math3d.Forward()), true, math3d.Pt(0, 0, 2)},
		{"offset hit", math3d.NewRay(math3d.Pt(0, 2, 0), math3d.Forward()), true, math3d.Pt(0, 2, 5-math.Sqrt(5))},
		{"miss", math3d.NewRay(math3d.Pt(0, 4, 0), math3d.Forward()), false, math3d.Point{}},
		{"behind", math3d.NewRay(math3d.Origin(), math3d.Backward()), false, math3d.Point{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hit, ok := ts.Intersect(tc.ray)
			if ok != tc.wantHit {
				t.Fatalf("hit = %v, want %v", ok, tc.wantHit)
			}
			if ok && !hit.Point.ApproxEqual(tc.wantPoint, 1e-9) {
				t.Errorf("point = %v, want %v", hit.Point, tc.wantPoint)
			}
		})
	}
}

func TestTransformedSurfaceNested(t *testing.T) {
	inner := NewTransformedSurface(
		math3d.TransformTranslation(math3d.Vec(0, 0, 5)),
		NewSphere(1, NewMaterial(math3d.Red)),
	)
	outer := NewTransformedSurface(math3d.TransformTranslation(math3d.Vec(3, 0, 0)), inner)

	hit, ok := outer.Intersect(math3d.NewRay(math3d.Pt(3, 0, 0), math3d.Forward()))
	if !ok {
		t.Fatal("expected a hit")
	}
	if !hit.Point.ApproxEqual(math3d.Pt(3, 0, 4), 1e-9) {
		t.Errorf("point = %v, want (3, 0, 4)", hit.Point)
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("t = %v, want 4", hit.T)
	}
}

func TestTransformedSurfaceRotation(t *testing.T) {
	// A sphere off to the right, rotated a quarter turn around Y, ends up behind.
	inner := NewTransformedSurface(
		math3d.TransformTranslation(math3d.Vec(5, 0, 0)),
		NewSphere(1, NewMaterial(math3d.Blue)),
	)
	rotated := NewTransformedSurface(
		math3d.TransformIdentity().WithRotation(math3d.RotationOnY(math.Pi/2)),
		inner,
	)

	hit, ok := rotated.Intersect(math3d.NewRay(math3d.Origin(), math3d.Backward()))
	if !ok {
		t.Fatal("expected a hit behind the origin")
	}
	if !hit.Point.ApproxEqual(math3d.Pt(0, 0, -4), 1e-9) {
		t.Errorf("point = %v, want (0, 0, -4)", hit.Point)
	}
}

func TestTransformedSurfaceDiscardsNearZero(t *testing.T) {
	ts := NewTransformedSurface(
		math3d.TransformIdentity(),
		fixedSurface{hit: SurfacePoint{T: 1e-12}, ok: true},
	)
	if _, ok := ts.Intersect(math3d.NewRay(math3d.Origin(), math3d.Forward())); ok {
		t.Error("near-zero hit should be discarded")
	}
}
