package math3d

// Translation moves points by a fixed offset and leaves vectors unchanged.
type Translation struct {
	offset Vector
}

// NewTranslation creates a translation by offset.
func NewTranslation(offset Vector) Translation {
	return Translation{offset}
}

// Offset returns the translation vector.
func (t Translation) Offset() Vector {
	return t.offset
}

// Inverse returns the opposite translation.
func (t Translation) Inverse() Translation {
	return Translation{t.offset.Negate()}
}

// Matrix returns the translation matrix.
func (t Translation) Matrix() Matrix {
	return NewMatrix(
		1, 0, 0, t.offset.X,
		0, 1, 0, t.offset.Y,
		0, 0, 1, t.offset.Z,
		0, 0, 0, 1,
	)
}
