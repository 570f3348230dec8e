package math3d

import "math"

// Mat4 is a 4x4 matrix in column-major order, the layout glTF and OpenGL
// use: m[12], m[13] and m[14] hold the translation.
type Mat4 [16]float64

func Identity() Mat4 {
	return Scale(Vec3{1, 1, 1})
}

func Translate(v Vec3) Mat4 {
	m := Identity()
	m[12], m[13], m[14] = v.X, v.Y, v.Z
	return m
}

func Scale(v Vec3) Mat4 {
	return Mat4{0: v.X, 5: v.Y, 10: v.Z, 15: 1}
}

// axisRotation rotates by angle in the plane of axes i and j, turning i
// toward j.
func axisRotation(i, j int, angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	m := Identity()
	m[i*4+i], m[i*4+j] = c, s
	m[j*4+i], m[j*4+j] = -s, c
	return m
}

func RotateX(angle float64) Mat4 { return axisRotation(1, 2, angle) }
func RotateY(angle float64) Mat4 { return axisRotation(2, 0, angle) }
func RotateZ(angle float64) Mat4 { return axisRotation(0, 1, angle) }

// Perspective is a right-handed projection looking down -Z that maps
// [near, far] to NDC z in [-1, 1]. fovy is in radians.
func Perspective(fovy, aspect, near, far float64) Mat4 {
	f := 1 / math.Tan(fovy/2)
	depth := near - far
	return Mat4{
		0:  f / aspect,
		5:  f,
		10: (far + near) / depth,
		11: -1,
		14: 2 * far * near / depth,
	}
}

// At returns the element in row r, column c.
func (m Mat4) At(r, c int) float64 { return m[c*4+r] }

// Mul returns a*b, so b is applied to a vector first.
func (a Mat4) Mul(b Mat4) Mat4 {
	var out Mat4
	for c := range 4 {
		for r := range 4 {
			out[c*4+r] = a.At(r, 0)*b.At(0, c) + a.At(r, 1)*b.At(1, c) +
				a.At(r, 2)*b.At(2, c) + a.At(r, 3)*b.At(3, c)
		}
	}
	return out
}

// MulVec4 returns m*v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	var out [4]float64
	for r := range out {
		out[r] = m.At(r, 0)*v.X + m.At(r, 1)*v.Y + m.At(r, 2)*v.Z + m.At(r, 3)*v.W
	}
	return Vec4{out[0], out[1], out[2], out[3]}
}

// MulVec3 transforms a point, dividing by w unless w is zero.
func (m Mat4) MulVec3(v Vec3) Vec3 {
	return m.MulVec4(V4FromV3(v, 1)).PerspectiveDivide()
}

// MulVec3Dir transforms a direction, ignoring translation.
func (m Mat4) MulVec3Dir(v Vec3) Vec3 {
	return m.MulVec4(V4FromV3(v, 0)).Vec3()
}

func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for c := range 4 {
		for r := range 4 {
			out[r*4+c] = m[c*4+r]
		}
	}
	return out
}

// minors2 holds the 2x2 determinants of the first two and the last two
// columns that both Determinant and Inverse expand along.
type minors2 struct {
	b00, b01, b02, b03, b04, b05 float64
	b06, b07, b08, b09, b10, b11 float64
}

func (m *Mat4) minors() minors2 {
	return minors2{
		b00: m[0]*m[5] - m[1]*m[4],
		b01: m[0]*m[6] - m[2]*m[4],
		b02: m[0]*m[7] - m[3]*m[4],
		b03: m[1]*m[6] - m[2]*m[5],
		b04: m[1]*m[7] - m[3]*m[5],
		b05: m[2]*m[7] - m[3]*m[6],
		b06: m[8]*m[13] - m[9]*m[12],
		b07: m[8]*m[14] - m[10]*m[12],
		b08: m[8]*m[15] - m[11]*m[12],
		b09: m[9]*m[14] - m[10]*m[13],
		b10: m[9]*m[15] - m[11]*m[13],
		b11: m[10]*m[15] - m[11]*m[14],
	}
}

func (b minors2) det() float64 {
	return b.b00*b.b11 - b.b01*b.b10 + b.b02*b.b09 + b.b03*b.b08 - b.b04*b.b07 + b.b05*b.b06
}

func (m Mat4) Determinant() float64 {
	return m.minors().det()
}

// Inverse returns the inverse of m, or the identity when m is singular.
func (m Mat4) Inverse() Mat4 {
	b := m.minors()
	det := b.det()
	if det == 0 {
		return Identity()
	}
	k := 1 / det
	return Mat4{
		(m[5]*b.b11 - m[6]*b.b10 + m[7]*b.b09) * k,
		(m[2]*b.b10 - m[1]*b.b11 - m[3]*b.b09) * k,
		(m[13]*b.b05 - m[14]*b.b04 + m[15]*b.b03) * k,
		(m[10]*b.b04 - m[9]*b.b05 - m[11]*b.b03) * k,

		(m[6]*b.b08 - m[4]*b.b11 - m[7]*b.b07) * k,
		(m[0]*b.b11 - m[2]*b.b08 + m[3]*b.b07) * k,
		(m[14]*b.b02 - m[12]*b.b05 - m[15]*b.b01) * k,
		(m[8]*b.b05 - m[10]*b.b02 + m[11]*b.b01) * k,

		(m[4]*b.b10 - m[5]*b.b08 + m[7]*b.b06) * k,
		(m[1]*b.b08 - m[0]*b.b10 - m[3]*b.b06) * k,
		(m[12]*b.b04 - m[13]*b.b02 + m[15]*b.b00) * k,
		(m[9]*b.b02 - m[8]*b.b04 - m[11]*b.b00) * k,

		(m[5]*b.b07 - m[4]*b.b09 - m[6]*b.b06) * k,
		(m[0]*b.b09 - m[1]*b.b07 + m[2]*b.b06) * k,
		(m[13]*b.b01 - m[12]*b.b03 - m[14]*b.b00) * k,
		(m[8]*b.b03 - m[9]*b.b01 + m[10]*b.b00) * k,
	}
}

func (m Mat4) Translation() Vec3 {
	return Vec3{m[12], m[13], m[14]}
}

// EulerXYZ builds a rotation matrix from Euler angles applied in X, Y, Z
// order, i.e. Rx * Ry * Rz.
func EulerXYZ(rot Vec3) Mat4 {
	return RotateX(rot.X).Mul(RotateY(rot.Y)).Mul(RotateZ(rot.Z))
}

// Quaternion builds a rotation matrix from a unit quaternion (x, y, z, w)
// with w the scalar part.
func Quaternion(x, y, z, w float64) Mat4 {
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z
	return Mat4{
		1 - 2*(yy+zz), 2 * (xy + wz), 2 * (xz - wy), 0,
		2 * (xy - wz), 1 - 2*(xx+zz), 2 * (yz + wx), 0,
		2 * (xz + wy), 2 * (yz - wx), 1 - 2*(xx+yy), 0,
		0, 0, 0, 1,
	}
}

// Compose builds a local transform from translation, Euler rotation and
// scale: T * R * S.
func Compose(pos, rot, scale Vec3) Mat4 {
	return Translate(pos).Mul(EulerXYZ(rot)).Mul(Scale(scale))
}

// NormalMatrix returns the inverse transpose of m, for transforming normals
// under non-uniform scale with MulVec3Dir.
func (m Mat4) NormalMatrix() Mat4 {
	return m.Inverse().Transpose()
}

// Transformer is anything that can report a world transform. Scene nodes
// and cameras implement it so either can parent the other.
type Transformer interface {
	WorldMatrix() Mat4
}
