package scene

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/Cubidev3/Moonshade/pkg/math3d"
)

func TestBuiltinScenes(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := Builtin(name)
			if err != nil {
				t.Fatalf("Builtin: %v", err)
			}
			// Every built-in scene has something straight ahead of the origin.
			if _, ok := s.Intersect(math3d.NewRay(math3d.Origin(), math3d.Forward())); !ok {
				t.Error("forward ray missed the scene")
			}
		})
	}
}

func TestDefaultSceneHits(t *testing.T) {
	s := Default()

	hit, ok := s.Intersect(math3d.NewRay(math3d.Origin(), math3d.Forward()))
	if !ok || hit.Material.Diffuse != math3d.Green {
		t.Fatalf("forward hit = %v, %v; want the green sphere", hit, ok)
	}
	if !hit.Point.ApproxEqual(math3d.Pt(0, 0, 2), 1e-9) {
		t.Errorf("forward hit at %v, want (0, 0, 2)", hit.Point)
	}

	hit, ok = s.Intersect(math3d.NewRay(math3d.Origin(), math3d.Backward()))
	if !ok || !hit.Point.ApproxEqual(math3d.Pt(0, 0, -4), 1e-9) {
		t.Errorf("backward hit = %v, %v; want (0, 0, -4)", hit.Point, ok)
	}
}

func TestBuiltinUnknown(t *testing.T) {
	if _, err := Builtin("nebula"); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("err = %v, want ErrUnknownScene", err)
	}
	if _, err := Load("nebula"); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Load err = %v, want ErrUnknownScene", err)
	}
}

func TestLoadDispatchesOnExtension(t *testing.T) {
	if _, err := Load("CORRIDOR"); err != nil {
		t.Errorf("Load(CORRIDOR): %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.gltf")); err == nil || errors.Is(err, ErrUnknownScene) {
		t.Errorf("missing glTF file gave %v", err)
	}
}

func TestCorridorBouncesBetweenMirrors(t *testing.T) {
	s := Corridor()
	ray := math3d.NewRay(math3d.Origin(), math3d.Forward())
	for i := range 20 {
		hit, ok := s.Intersect(ray)
		if !ok {
			t.Fatalf("bounce %d escaped the corridor", i)
		}
		want := 10.0
		if i%2 == 1 {
			want = -10
		}
		if math.Abs(hit.Point.Z-want) > 1e-6 {
			t.Fatalf("bounce %d hit z = %v, want %v", i, hit.Point.Z, want)
		}
		ray = math3d.NewRay(hit.Point, ray.Direction.Reflection(hit.Normal))
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
