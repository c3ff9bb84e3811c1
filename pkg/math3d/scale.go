package math3d

import "math"

// Scale stretches each axis by its own ratio.
type Scale struct {
	ratio Vector
}

// NewScale creates a per-axis scale.
// It reports false when any ratio is zero, since the scale would not be invertible.
func NewScale(ratio Vector) (Scale, bool) {
	if math.Abs(ratio.X) < Epsilon || math.Abs(ratio.Y) < Epsilon || math.Abs(ratio.Z) < Epsilon {
		return Scale{}, false
	}
	return Scale{ratio}, true
}

// UniformScale creates a scale by s on every axis.
func UniformScale(s float64) (Scale, bool) {
	return NewScale(Vector{s, s, s})
}

// ScaleIdentity returns the scale that changes nothing.
func ScaleIdentity() Scale {
	return Scale{One()}
}

// Ratio returns the per-axis ratios.
func (s Scale) Ratio() Vector {
	return s.ratio
}

// Inverse returns the reciprocal scale.
func (s Scale) Inverse() Scale {
	return Scale{Vector{1 / s.ratio.X, 1 / s.ratio.Y, 1 / s.ratio.Z}}
}

// Matrix returns the diagonal scaling matrix.
func (s Scale) Matrix() Matrix {
	return NewMatrix(
		s.ratio.X, 0, 0, 0,
		0, s.ratio.Y, 0, 0,
		0, 0, s.ratio.Z, 0,
		0, 0, 0, 1,
	)
}
