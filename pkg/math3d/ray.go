package math3d

// Ray is a half-line starting at Origin. Direction is not required to be unit
// length; the parameter t of At is measured in multiples of it.
type Ray struct {
	Origin    Point
	Direction Vector
}

// NewRay creates a new Ray.
func NewRay(origin Point, direction Vector) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// RayFromPoints returns the ray from a through b, reaching b at t = 1.
func RayFromPoints(a, b Point) Ray {
	return Ray{Origin: a, Direction: b.Sub(a)}
}

// At returns the point origin + direction·t.
func (r Ray) At(t float64) Point {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Normalized returns the ray with a unit direction.
// It reports false when the direction is zero.
func (r Ray) Normalized() (Ray, bool) {
	d, ok := r.Direction.Normalized()
	if !ok {
		return Ray{}, false
	}
	return Ray{Origin: r.Origin, Direction: d}, true
}

// TOfPoint returns the parameter at which the ray passes through p.
// It reports false when p is not on the ray.
func (r Ray) TOfPoint(p Point) (float64, bool) {
	if !r.Contains(p) {
		return 0, false
	}
	return r.Direction.InverseOrZero().Dot(p.Sub(r.Origin)), true
}

// Contains reports whether p lies on the ray, within Epsilon of its line and
// not behind its origin.
func (r Ray) Contains(p Point) bool {
	if r.Direction.IsZero() {
		return p.Sub(r.Origin).IsZero()
	}
	offset := p.Sub(r.Origin)
	return offset.ScalarRejection(r.Direction) < Epsilon && offset.Dot(r.Direction) > -Epsilon
}
