package math3d

// Transformation is anything that can be expressed as an affine matrix.
// Every implementation also provides an Inverse method returning its own
// type, computed analytically rather than by numerical inversion.
type Transformation interface {
	Matrix() Matrix
}

var (
	_ Transformation = Basis{}
	_ Transformation = Translation{}
	_ Transformation = Rotation{}
	_ Transformation = Scale{}
	_ Transformation = Transform{}
)
