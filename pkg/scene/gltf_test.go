package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/Cubidev3/Moonshade/pkg/math3d"
)

const hierarchyGLTF = `{
  "asset": {"version": "2.0"},
  "scene": 0,
  "scenes": [{"nodes": [0, 3]}],
  "nodes": [
    {"name": "parent", "translation": [0, 0, 10], "children": [1, 2]},
    {"name": "red", "mesh": 0, "translation": [-3, 0, 0], "extras": {"radius": 2}},
    {"name": "blue", "mesh": 1, "translation": [3, 0, 0], "scale": [0.5, 0.5, 0.5]},
    {"name": "turned", "mesh": 2, "translation": [0, 0, -10], "rotation": [0, 0.7071067811865476, 0, 0.7071067811865476]}
  ],
  "meshes": [
    {"primitives": [{"attributes": {}, "material": 0}]},
    {"primitives": [{"attributes": {}, "material": 1}]},
    {"primitives": [{"attributes": {}}]}
  ],
  "materials": [
    {"pbrMetallicRoughness": {"baseColorFactor": [1, 0, 0, 1]}},
    {"pbrMetallicRoughness": {"baseColorFactor": [0, 0, 1, 1]}}
  ]
}`

func TestLoadGLTFHierarchy(t *testing.T) {
	s, err := LoadGLTF(writeFile(t, "scene.gltf", hierarchyGLTF))
	if err != nil {
		t.Fatalf("LoadGLTF: %v", err)
	}

	tests := []struct {
		name      string
		ray       math3d.Ray
		wantColor math3d.Color
		wantPoint math3d.Point
	}{
		// Parent translation plus child translation, radius from extras.
		{"red", math3d.NewRay(math3d.Pt(-3, 0, 0), math3d.Forward()), math3d.Red, math3d.Pt(-3, 0, 8)},
		// Unit sphere scaled by one half.
		{"blue", math3d.NewRay(math3d.Pt(3, 0, 0), math3d.Forward()), math3d.Blue, math3d.Pt(3, 0, 9.5)},
		// No material falls back to white; the rotation keeps a sphere in place.
		{"turned", math3d.NewRay(math3d.Origin(), math3d.Backward()), math3d.White, math3d.Pt(0, 0, -9)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hit, ok := s.Intersect(tc.ray)
			if !ok {
				t.Fatal("expected a hit")
			}
			if hit.Material.Diffuse != tc.wantColor {
				t.Errorf("color = %v, want %v", hit.Material.Diffuse, tc.wantColor)
			}
			if !hit.Point.ApproxEqual(tc.wantPoint, 1e-9) {
				t.Errorf("point = %v, want %v", hit.Point, tc.wantPoint)
			}
		})
	}
}

func TestQuaternionRotation(t *testing.T) {
	half := math.Sqrt2 / 2
	tests := []struct {
		name string
		q    [4]float64
		in   math3d.Vector
		want math3d.Vector
	}{
		{"identity", [4]float64{0, 0, 0, 1}, math3d.Forward(), math3d.Forward()},
		{"quarter around y", [4]float64{0, half, 0, half}, math3d.Forward(), math3d.Right()},
		{"quarter around x", [4]float64{half, 0, 0, half}, math3d.Up(), math3d.Forward()},
		{"unnormalized", [4]float64{0, 0, 2, 2}, math3d.Right(), math3d.Up()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := quaternionRotation(tc.q).Matrix().MulVector(tc.in)
			if !got.ApproxEqual(tc.want, 1e-9) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestLoadGLTFMatrixNode(t *testing.T) {
	const doc = `{
  "asset": {"version": "2.0"},
  "nodes": [
    {"mesh": 0, "matrix": [2, 0, 0, 0, 0, 2, 0, 0, 0, 0, 2, 0, 0, 0, 5, 1]}
  ],
  "meshes": [{"primitives": [{"attributes": {}}]}]
}`
	s, err := LoadGLTF(writeFile(t, "matrix.gltf", doc))
	if err != nil {
		t.Fatalf("LoadGLTF: %v", err)
	}
	hit, ok := s.Intersect(math3d.NewRay(math3d.Origin(), math3d.Forward()))
	if !ok {
		t.Fatal("expected a hit")
	}
	if !hit.Point.ApproxEqual(math3d.Pt(0, 0, 3), 1e-9) {
		t.Errorf("point = %v, want (0, 0, 3)", hit.Point)
	}
}

func TestLoadGLTFErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			name:    "no meshes",
			doc:     `{"asset": {"version": "2.0"}, "nodes": [{"name": "empty"}]}`,
			wantErr: ErrNoSurfaces,
		},
		{
			name: "zero scale",
			doc: `{"asset": {"version": "2.0"},
			  "nodes": [{"mesh": 0, "scale": [1, 0, 1]}],
			  "meshes": [{"primitives": [{"attributes": {}}]}]}`,
		},
		{
			name: "cycle",
			doc: `{"asset": {"version": "2.0"}, "scenes": [{"nodes": [0]}],
			  "nodes": [{"children": [1]}, {"children": [0]}]}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadGLTF(writeFile(t, "bad.gltf", tc.doc))
			if err == nil {
				t.Fatal("expected an error")
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Errorf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestLoadGLTFInvalidPath(t *testing.T) {
	if _, err := LoadGLTF("/nonexistent/path.glb"); err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestLoadGLTFSmallScale(t *testing.T) {
	tests := []struct {
		name string
		node string
	}{
		{"trs", `{"mesh": 0, "translation": [0, 0, 5], "scale": [0.0005, 0.0005, 0.0005]}`},
		{"matrix", `{"mesh": 0, "matrix": [0.0005, 0, 0, 0, 0, 0.0005, 0, 0, 0, 0, 0.0005, 0, 0, 0, 5, 1]}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := `{"asset": {"version": "2.0"}, "nodes": [` + tc.node + `],
			  "meshes": [{"primitives": [{"attributes": {}}]}]}`
			s, err := LoadGLTF(writeFile(t, "small.gltf", doc))
			if err != nil {
				t.Fatalf("LoadGLTF: %v", err)
			}
			hit, ok := s.Intersect(math3d.NewRay(math3d.Origin(), math3d.Forward()))
			if !ok {
				t.Fatal("expected a hit")
			}
			if !hit.Point.ApproxEqual(math3d.Pt(0, 0, 4.9995), 1e-9) {
				t.Errorf("point = %v, want (0, 0, 4.9995)", hit.Point)
			}
		})
	}
}
