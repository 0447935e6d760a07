package math

import "github.com/chewxy/math32"

/**
 * @brief Creates and returns a matrix with d on the diagonal and 0 elsewhere.
 */
func NewMat4Diagonal(d float32) Mat4 {
	return Mat4{
		{d, 0, 0, 0},
		{0, d, 0, 0},
		{0, 0, d, 0},
		{0, 0, 0, d},
	}
}

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 *
 * @return A new identity matrix
 */
func NewMat4Identity() Mat4 {
	return NewMat4Diagonal(1.0)
}

/**
 * @brief Returns the result of multiplying m and other. The result applies
 * other first and m second to a column vector.
 *
 * @param other The right hand matrix.
 * @return The result of the matrix multiplication.
 */
func (m Mat4) Mul(other Mat4) Mat4 {
	out := Mat4{}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := float32(0)
			for i := 0; i < 4; i++ {
				sum += m[row][i] * other[i][col]
			}
			out[row][col] = sum
		}
	}
	return out
}

// MulAssign sets m to m.Mul(other) and returns m.
func (m *Mat4) MulAssign(other Mat4) *Mat4 {
	*m = m.Mul(other)
	return m
}

/**
 * @brief Transforms the column vector v by m. Each component of the result
 * is the dot product of one row of m with v.
 */
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m.Row(0).Dot(v),
		m.Row(1).Dot(v),
		m.Row(2).Dot(v),
		m.Row(3).Dot(v),
	}
}

/**
 * @brief Transforms v by m as a point, with an implied w of 1.0. The w
 * result is discarded; no perspective divide happens.
 */
func (m Mat4) MulPoint(v Vec3) Vec3 {
	return m.MulVec4(NewVec4FromVec3(v, 1.0)).ToVec3()
}

/**
 * @brief Transforms v by m as a direction, with an implied w of 0.0, so
 * translation does not apply.
 */
func (m Mat4) MulDirection(v Vec3) Vec3 {
	return m.MulVec4(NewVec4FromVec3(v, 0.0)).ToVec3()
}

// Row returns row i of m. i must be in [0, 3].
func (m Mat4) Row(i int) Vec4 {
	return Vec4{m[i][0], m[i][1], m[i][2], m[i][3]}
}

// Col returns column i of m. i must be in [0, 3].
func (m Mat4) Col(i int) Vec4 {
	return Vec4{m[0][i], m[1][i], m[2][i], m[3][i]}
}

/**
 * @brief Returns a transposed copy of m (rows->columns).
 */
func (m Mat4) Transposed() Mat4 {
	out := Mat4{}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[col][row] = m[row][col]
		}
	}
	return out
}

// Data returns the 16 elements of m in row-major order.
func (m Mat4) Data() [16]float32 {
	out := [16]float32{}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[row*4+col] = m[row][col]
		}
	}
	return out
}

// ColumnMajor returns the 16 elements of m in column-major order, the
// layout OpenGL and Vulkan expect for uniform upload.
func (m Mat4) ColumnMajor() [16]float32 {
	return m.Transposed().Data()
}

// CompareEpsilon reports whether every element of m and other differ by no
// more than tolerance.
func (m Mat4) CompareEpsilon(other Mat4, tolerance float32) bool {
	for row := 0; row < 4; row++ {
		if !m.Row(row).CompareEpsilon(other.Row(row), tolerance) {
			return false
		}
	}
	return true
}

/**
 * @brief Creates and returns a translation matrix from the given position.
 * The translation lives in column 3, so
 * NewMat4Translation(v).MulVec4({0, 0, 0, 1}) == {v.X, v.Y, v.Z, 1}.
 *
 * @param position The position to be used to create the matrix.
 * @return A newly created translation matrix.
 */
func NewMat4Translation(position Vec3) Mat4 {
	out := NewMat4Identity()
	out[0][3] = position.X
	out[1][3] = position.Y
	out[2][3] = position.Z
	return out
}

/**
 * @brief Returns a scale matrix using the provided scale.
 *
 * @param scale The 3-component scale.
 * @return A scale matrix.
 */
func NewMat4Scale(scale Vec3) Mat4 {
	out := NewMat4Identity()
	out[0][0] = scale.X
	out[1][1] = scale.Y
	out[2][2] = scale.Z
	return out
}

/**
 * @brief Creates the rotation of degrees counter-clockwise about axis using
 * Rodrigues' formula. It matches NewQuatFromAxisAngle(axis, degrees).ToMat4():
 * axis is normalized and a zero axis gives the identity.
 *
 * @param axis The axis of rotation.
 * @param degrees The angle of rotation in degrees.
 * @return A rotation matrix.
 */
func NewMat4Rotation(axis Vec3, degrees float32) Mat4 {
	if axis.Normalize() == 0 {
		return NewMat4Identity()
	}

	radians := DegToRad(degrees)
	c := math32.Cos(radians)
	s := math32.Sin(radians)
	t := 1.0 - c

	x, y, z := axis.X, axis.Y, axis.Z

	return Mat4{
		{t*x*x + c, t*x*y - s*z, t*x*z + s*y, 0},
		{t*x*y + s*z, t*y*y + c, t*y*z - s*x, 0},
		{t*x*z - s*y, t*y*z + s*x, t*z*z + c, 0},
		{0, 0, 0, 1},
	}
}

/**
 * @brief Creates and returns a right-handed perspective matrix with the
 * camera looking down -Z, mapping depth to [-1, 1] after the perspective
 * divide. The bottom row is (0, 0, -1, 0), so w' = -z.
 *
 * Preconditions (not checked, violations produce Inf/NaN):
 * fov_degrees in (0, 360), aspect_ratio != 0, near_clip != far_clip.
 *
 * @param fov_degrees The vertical field of view in degrees.
 * @param aspect_ratio The aspect ratio (width / height).
 * @param near_clip The near clipping plane distance.
 * @param far_clip The far clipping plane distance.
 * @return A new perspective matrix.
 */
func NewMat4Perspective(fov_degrees, aspect_ratio, near_clip, far_clip float32) Mat4 {
	f := 1.0 / math32.Tan(DegToRad(fov_degrees)*0.5)
	nf := 1.0 / (near_clip - far_clip)

	return Mat4{
		{f / aspect_ratio, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, (far_clip + near_clip) * nf, 2.0 * far_clip * near_clip * nf},
		{0, 0, -1.0, 0},
	}
}

/**
 * @brief Creates and returns an orthographic projection matrix. Typically used to
 * render flat or 2D scenes. The box maps to [-1, 1] on every axis, with
 * -near_clip at -1 and -far_clip at +1 on Z.
 *
 * Preconditions (not checked): left != right, bottom != top, near_clip != far_clip.
 *
 * @param left The left side of the view frustum.
 * @param right The right side of the view frustum.
 * @param bottom The bottom side of the view frustum.
 * @param top The top side of the view frustum.
 * @param near_clip The near clipping plane distance.
 * @param far_clip The far clipping plane distance.
 * @return A new orthographic projection matrix.
 */
func NewMat4Orthographic(left, right, bottom, top, near_clip, far_clip float32) Mat4 {
	rl := 1.0 / (right - left)
	tb := 1.0 / (top - bottom)
	fn := 1.0 / (far_clip - near_clip)

	return Mat4{
		{2.0 * rl, 0, 0, -(right + left) * rl},
		{0, 2.0 * tb, 0, -(top + bottom) * tb},
		{0, 0, -2.0 * fn, -(far_clip + near_clip) * fn},
		{0, 0, 0, 1.0},
	}
}

/**
 * @brief Creates and returns a right-handed view matrix looking at target
 * from position. up must not be parallel to the view direction.
 *
 * @param position The position of the matrix.
 * @param target The position to "look at".
 * @param up The up vector.
 * @return A matrix looking at target from the perspective of position.
 */
func NewMat4LookAt(position, target, up Vec3) Mat4 {
	forward := target.Sub(position).Normalized()
	side := forward.Cross(up).Normalized()
	upward := side.Cross(forward)

	return Mat4{
		{side.X, side.Y, side.Z, -side.Dot(position)},
		{upward.X, upward.Y, upward.Z, -upward.Dot(position)},
		{-forward.X, -forward.Y, -forward.Z, forward.Dot(position)},
		{0, 0, 0, 1.0},
	}
}
