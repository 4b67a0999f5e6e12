package canvaswire

// Transform holds the six coefficients of a 2D affine transformation, in
// the conventional column order:
//
//	| A  C  E |
//	| B  D  F |
//
// The encoder only stores and compares coefficients; composing, inverting
// and applying transforms is the host's concern.
type Transform struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transformation.
func Identity() Transform {
	return Transform{A: 1, D: 1}
}

// IsIdentity returns true for the identity transformation.
func (t Transform) IsIdentity() bool {
	return t == Identity()
}
