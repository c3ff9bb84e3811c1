package math3d

import "math"

// Point is a location in 3D space. Points and vectors are kept apart so that
// affine transforms translate the former and leave the latter alone.
type Point struct {
	X, Y, Z float64
}

// Pt creates a new Point.
func Pt(x, y, z float64) Point {
	return Point{x, y, z}
}

// Origin returns the point (0, 0, 0).
func Origin() Point {
	return Point{}
}

// Add returns p displaced by v.
func (p Point) Add(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// SubVector returns p displaced by -v.
func (p Point) SubVector(v Vector) Point {
	return Point{p.X - v.X, p.Y - v.Y, p.Z - v.Z}
}

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Vector returns the displacement from the origin to p.
func (p Point) Vector() Vector {
	return Vector{p.X, p.Y, p.Z}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Len()
}

// DistanceSq returns the squared distance between two points.
func (p Point) DistanceSq(q Point) float64 {
	return p.Sub(q).LenSq()
}

// Reflected mirrors p about the plane through the origin with normal axis.
func (p Point) Reflected(axis Vector) Point {
	r := p.Vector().Reflection(axis)
	return Point{r.X, r.Y, r.Z}
}

// ApproxEqual reports whether every coordinate differs by at most tol.
func (p Point) ApproxEqual(q Point, tol float64) bool {
	return math.Abs(p.X-q.X) <= tol && math.Abs(p.Y-q.Y) <= tol && math.Abs(p.Z-q.Z) <= tol
}
