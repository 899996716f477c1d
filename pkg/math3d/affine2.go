package math3d

// Affine2 is a 2D affine transform in row-vector form:
//
//	x' = x*M11 + y*M21 + M31
//	y' = x*M12 + y*M22 + M32
//
// a.Mul(b) applies a first, then b, so chains read left to right.
type Affine2 struct {
	M11, M12 float64
	M21, M22 float64
	M31, M32 float64
}

// Identity2 returns the identity transform.
func Identity2() Affine2 {
	return Affine2{M11: 1, M22: 1}
}

// Scale2 creates a non-uniform scaling transform.
func Scale2(v Vec2) Affine2 {
	return Affine2{M11: v.X, M22: v.Y}
}

// ScaleUniform2 creates a uniform scaling transform.
func ScaleUniform2(s float64) Affine2 {
	return Scale2(V2(s, s))
}

// Translate2 creates a translation transform.
func Translate2(v Vec2) Affine2 {
	return Affine2{M11: 1, M22: 1, M31: v.X, M32: v.Y}
}

// Mul returns the transform that applies a and then b.
//
//nolint:st1016 // a*b naming convention is clearer for matrix multiplication
func (a Affine2) Mul(b Affine2) Affine2 {
	return Affine2{
		M11: a.M11*b.M11 + a.M12*b.M21,
		M12: a.M11*b.M12 + a.M12*b.M22,
		M21: a.M21*b.M11 + a.M22*b.M21,
		M22: a.M21*b.M12 + a.M22*b.M22,
		M31: a.M31*b.M11 + a.M32*b.M21 + b.M31,
		M32: a.M31*b.M12 + a.M32*b.M22 + b.M32,
	}
}

// Apply transforms a point.
func (a Affine2) Apply(v Vec2) Vec2 {
	return Vec2{
		v.X*a.M11 + v.Y*a.M21 + a.M31,
		v.X*a.M12 + v.Y*a.M22 + a.M32,
	}
}
