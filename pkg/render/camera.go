package render

import (
	"github.com/Cubidev3/Moonshade/pkg/math3d"
)

// Camera places a lens in the world. Lenses produce rays in camera space,
// looking along Forward from the origin; the camera moves and turns them.
//
// Setters must not be called while a render is using the camera.
type Camera struct {
	lens LensShader

	position math3d.Point
	rotation math3d.Rotation

	// Cached camera-to-world matrix, rebuilt by every setter.
	matrix math3d.Matrix
}

// NewCamera creates a camera at the origin looking along Forward.
func NewCamera(lens LensShader) *Camera {
	return &Camera{
		lens:     lens,
		rotation: math3d.RotationIdentity(),
		matrix:   math3d.Identity(),
	}
}

// Lens returns the wrapped lens.
func (c *Camera) Lens() LensShader {
	return c.lens
}

// Position returns the camera position.
func (c *Camera) Position() math3d.Point {
	return c.position
}

// SetPosition moves the camera, keeping its orientation.
func (c *Camera) SetPosition(pos math3d.Point) {
	c.position = pos
	c.update()
}

// SetRotation turns the camera, keeping its position.
func (c *Camera) SetRotation(r math3d.Rotation) {
	c.rotation = r
	c.update()
}

// LookAt turns the camera towards target. It reports false, leaving the
// camera unchanged, when target is the camera position.
func (c *Camera) LookAt(target math3d.Point) bool {
	r, ok := math3d.LookTowards(target.Sub(c.position))
	if !ok {
		return false
	}
	c.SetRotation(r)
	return true
}

// SetTransform replaces position and rotation with an arbitrary transform.
// A later SetPosition, SetRotation or LookAt discards it.
func (c *Camera) SetTransform(t math3d.Transform) {
	c.matrix = t.Matrix()
	c.position = c.matrix.MulPoint(math3d.Origin())
}

// Matrix returns the camera-to-world matrix.
func (c *Camera) Matrix() math3d.Matrix {
	return c.matrix
}

func (c *Camera) update() {
	c.matrix = math3d.NewTranslation(c.position.Vector()).Matrix().Mul(c.rotation.Matrix())
}

// RayToLensPoint implements LensShader.
func (c *Camera) RayToLensPoint(x, y float64) (math3d.Ray, bool) {
	ray, ok := c.lens.RayToLensPoint(x, y)
	if !ok {
		return math3d.Ray{}, false
	}
	return c.matrix.MulRay(ray), true
}

var _ LensShader = (*Camera)(nil)
