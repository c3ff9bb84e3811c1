package scene

import (
	"fmt"
	"math"

	"github.com/qmuntal/gltf"

	"github.com/Cubidev3/Moonshade/pkg/math3d"
	"github.com/Cubidev3/Moonshade/pkg/surface"
)

// radiusExtra is the node extras key overriding the sphere radius.
const radiusExtra = "radius"

// GLTFLoader imports glTF node hierarchies as sphere scenes. Only spheres
// can be traced, so every node with a mesh becomes one sphere placed by the
// node's transform; the mesh geometry itself is ignored.
type GLTFLoader struct {
	// DefaultRadius is used for nodes without a "radius" extra.
	DefaultRadius float64
	// DefaultColor is used for meshes without a base color.
	DefaultColor math3d.Color
}

// NewGLTFLoader creates a loader with unit spheres and white materials.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{
		DefaultRadius: 1,
		DefaultColor:  math3d.White,
	}
}

// LoadGLTF loads a .gltf or .glb file with the default loader.
func LoadGLTF(path string) (surface.Surface, error) {
	return NewGLTFLoader().Load(path)
}

// Load opens path and builds the surface of its default scene.
func (l *GLTFLoader) Load(path string) (surface.Surface, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	s, err := l.Build(doc)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return s, nil
}

// Build converts an already decoded document.
func (l *GLTFLoader) Build(doc *gltf.Document) (surface.Surface, error) {
	world := surface.NewMultipleSurfaces()
	for _, idx := range rootNodes(doc) {
		s, ok, err := l.buildNode(doc, idx, make(map[int]bool))
		if err != nil {
			return nil, err
		}
		if ok {
			world.Add(s)
		}
	}
	if world.Len() == 0 {
		return nil, ErrNoSurfaces
	}
	return world, nil
}

// rootNodes returns the nodes of the default scene, or every node that is
// nobody's child when the document has no scenes.
func rootNodes(doc *gltf.Document) []int {
	if len(doc.Scenes) > 0 {
		idx := 0
		if doc.Scene != nil && *doc.Scene < len(doc.Scenes) {
			idx = *doc.Scene
		}
		return doc.Scenes[idx].Nodes
	}

	isChild := make([]bool, len(doc.Nodes))
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			if c >= 0 && c < len(isChild) {
				isChild[c] = true
			}
		}
	}
	var roots []int
	for i, child := range isChild {
		if !child {
			roots = append(roots, i)
		}
	}
	return roots
}

// buildNode returns the surface of a node and its descendants, or false when
// the subtree holds no mesh.
func (l *GLTFLoader) buildNode(doc *gltf.Document, idx int, visiting map[int]bool) (surface.Surface, bool, error) {
	if idx < 0 || idx >= len(doc.Nodes) {
		return nil, false, fmt.Errorf("node index %d out of range", idx)
	}
	if visiting[idx] {
		return nil, false, fmt.Errorf("node %d: cycle in node hierarchy", idx)
	}
	visiting[idx] = true
	defer delete(visiting, idx)

	node := doc.Nodes[idx]
	group := surface.NewMultipleSurfaces()

	if node.Mesh != nil {
		material, err := l.meshMaterial(doc, *node.Mesh)
		if err != nil {
			return nil, false, fmt.Errorf("node %q: %w", node.Name, err)
		}
		group.Add(surface.NewSphere(l.nodeRadius(node), material))
	}
	for _, child := range node.Children {
		s, ok, err := l.buildNode(doc, child, visiting)
		if err != nil {
			return nil, false, err
		}
		if ok {
			group.Add(s)
		}
	}
	if group.Len() == 0 {
		return nil, false, nil
	}

	var content surface.Surface = group
	if group.Len() == 1 {
		content = group.Surfaces()[0]
	}

	placed, err := placeNode(node, content)
	if err != nil {
		return nil, false, fmt.Errorf("node %q: %w", node.Name, err)
	}
	return placed, true, nil
}

// placeNode wraps s in the node's local transform. Nodes given as a matrix
// are inverted numerically; TRS nodes get an analytic inverse.
func placeNode(node *gltf.Node, s surface.Surface) (surface.Surface, error) {
	if m := node.MatrixOrDefault(); m != gltf.DefaultMatrix {
		// glTF matrices are column-major, like math3d.Matrix.
		matrix := math3d.Matrix(m)
		inverse, ok := matrix.Inverse()
		if !ok {
			return nil, fmt.Errorf("singular node matrix")
		}
		return surface.NewTransformedSurfaceMatrix(matrix, inverse, s), nil
	}

	t := node.TranslationOrDefault()
	sc := node.ScaleOrDefault()
	scale, ok := math3d.NewScale(math3d.Vec(sc[0], sc[1], sc[2]))
	if !ok {
		return nil, fmt.Errorf("degenerate scale %v", sc)
	}

	transform := math3d.NewTransform(
		math3d.BasisXYZ,
		math3d.NewTranslation(math3d.Vec(t[0], t[1], t[2])),
		quaternionRotation(node.RotationOrDefault()),
		scale,
	)
	if transform.Matrix() == math3d.Identity() {
		return s, nil
	}
	return surface.NewTransformedSurface(transform, s), nil
}

// quaternionRotation converts a glTF (x, y, z, w) quaternion.
func quaternionRotation(q [4]float64) math3d.Rotation {
	axis := math3d.Vec(q[0], q[1], q[2])
	w := q[3]
	if n := math.Sqrt(axis.LenSq() + w*w); n > 0 {
		axis, w = axis.Div(n), w/n
	}
	angle := 2 * math.Acos(math.Max(-1, math.Min(1, w)))
	r, ok := math3d.RotationAround(axis, angle)
	if !ok {
		return math3d.RotationIdentity()
	}
	return r
}

// meshMaterial returns the material of the first primitive that has one.
func (l *GLTFLoader) meshMaterial(doc *gltf.Document, meshIdx int) (surface.Material, error) {
	if meshIdx < 0 || meshIdx >= len(doc.Meshes) {
		return surface.Material{}, fmt.Errorf("mesh index %d out of range", meshIdx)
	}
	for _, prim := range doc.Meshes[meshIdx].Primitives {
		if prim.Material == nil {
			continue
		}
		if *prim.Material < 0 || *prim.Material >= len(doc.Materials) {
			return surface.Material{}, fmt.Errorf("material index %d out of range", *prim.Material)
		}
		mat := doc.Materials[*prim.Material]
		if mat.PBRMetallicRoughness == nil || mat.PBRMetallicRoughness.BaseColorFactor == nil {
			break
		}
		c := mat.PBRMetallicRoughness.BaseColorFactor
		return surface.NewMaterial(math3d.NewColor(c[0], c[1], c[2], c[3])), nil
	}
	return surface.NewMaterial(l.DefaultColor), nil
}

// nodeRadius reads the "radius" extra of a node.
func (l *GLTFLoader) nodeRadius(node *gltf.Node) float64 {
	extras, ok := node.Extras.(map[string]any)
	if !ok {
		return l.DefaultRadius
	}
	if r, ok := extras[radiusExtra].(float64); ok && r > 0 {
		return r
	}
	return l.DefaultRadius
}
