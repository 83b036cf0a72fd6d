package math

import "math"

// Mat4 is a 4x4 matrix in column-major order.
// Layout: [m0 m4 m8  m12]
//
//	[m1 m5 m9  m13]
//	[m2 m6 m10 m14]
//	[m3 m7 m11 m15]
//
// Column i, row j lives at m[i*4+j]. Column vectors are post-multiplied.
type Mat4 [16]float32

// degenerateEpsilon is the squared length below which a direction is treated as zero.
const degenerateEpsilon = 1e-18

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns the element at column col, row row.
func (m Mat4) At(col, row int) float32 {
	return m[col*4+row]
}

// Perspective returns a right-handed perspective projection matrix.
// fovY is in radians, aspect is width/height. View-space z in [-near, -far]
// maps to depth [0, 1] with w = -z.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	ys := float32(1.0 / math.Tan(float64(fovY)*0.5))
	xs := ys / aspect
	zs := far / (near - far)

	return Mat4{
		xs, 0, 0, 0,
		0, ys, 0, 0,
		0, 0, zs, -1,
		0, 0, zs * near, 0,
	}
}

// LookAt returns a right-handed view matrix looking from eye to center with up direction.
//
// If eye and center coincide the view looks down -Z. If up is parallel to the
// view direction, +Z and then +X are tried as the up vector instead.
func LookAt(eye, center, up Vec3) Mat4 {
	dir := center.Sub(eye)
	if dir.Dot(dir) < degenerateEpsilon {
		dir = Vec3{0, 0, -1}
	}
	f := dir.Normalize()

	var s Vec3
	for _, candidate := range [...]Vec3{up, {0, 0, 1}, {1, 0, 0}} {
		side := f.Cross(candidate)
		if side.Dot(side) >= degenerateEpsilon {
			s = side.Normalize()
			break
		}
	}
	u := s.Cross(f)

	return Mat4{
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1,
	}
}

// Translate returns a translation matrix.
func Translate(x, y, z float32) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// Scale returns a scale matrix.
func Scale(x, y, z float32) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// RotateY returns a rotation matrix around the Y axis.
// angle is in radians.
func RotateY(angle float32) Mat4 {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))

	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// Mul multiplies this matrix by another (m * other).
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * other[col*4+k]
			}
			result[col*4+row] = sum
		}
	}
	return result
}

// TransformVec3 transforms a point by this matrix (w=1), dividing by w when it is not 0 or 1.
func (m Mat4) TransformVec3(v Vec3) Vec3 {
	x := m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]
	y := m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]
	z := m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]
	w := m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]
	if w != 0 && w != 1 {
		return Vec3{x / w, y / w, z / w}
	}
	return Vec3{x, y, z}
}

// Ptr returns a pointer to the first element (for OpenGL uniform calls).
func (m *Mat4) Ptr() *float32 {
	return &m[0]
}
