package math

import "github.com/chewxy/math32"

/**
 * @brief Creates and returns a new 4-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @param w The w value.
 * @return A new 4-element vector.
 */
func NewVec4(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

/**
 * @brief Returns a new vec4 using v as the x, y and z components and w for w.
 */
func NewVec4FromVec3(v Vec3, w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

// NewVec4Point returns the homogeneous position (x, y, z, 1).
func NewVec4Point(x, y, z float32) Vec4 {
	return Vec4{x, y, z, 1.0}
}

/**
 * @brief Creates and returns a 4-component vector with all components set to 0.0f.
 */
func NewVec4Zero() Vec4 {
	return Vec4{0.0, 0.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 4-component vector with all components set to 1.0f.
 */
func NewVec4One() Vec4 {
	return Vec4{1.0, 1.0, 1.0, 1.0}
}

/**
 * @brief Returns a new vec3 containing the x, y and z components of v,
 * essentially dropping the w component.
 */
func (v Vec4) ToVec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// Set assigns all four components.
func (v *Vec4) Set(x, y, z, w float32) {
	v.X = x
	v.Y = y
	v.Z = z
	v.W = w
}

// SetZero sets all components to 0.
func (v *Vec4) SetZero() {
	*v = Vec4{}
}

/**
 * @brief Returns X for 0, Y for 1, Z for 2 and W for 3.
 * An index outside [0, 3] is a caller error; it resolves to W.
 */
func (v Vec4) Index(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		return v.W
	}
}

/**
 * @brief Sets X for 0, Y for 1, Z for 2 and W for 3.
 * An index outside [0, 3] is a caller error; it writes W.
 */
func (v *Vec4) SetIndex(i int, value float32) {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	default:
		v.W = value
	}
}

/**
 * @brief Adds other to v and returns a copy of the result.
 */
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
		W: v.W + other.W,
	}
}

/**
 * @brief Subtracts other from v and returns a copy of the result.
 */
func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
		W: v.W - other.W,
	}
}

// Negate returns (-x, -y, -z, -w).
func (v Vec4) Negate() Vec4 {
	return Vec4{-v.X, -v.Y, -v.Z, -v.W}
}

/**
 * @brief Multiplies v by other component-wise and returns a copy of the result.
 */
func (v Vec4) Mul(other Vec4) Vec4 {
	return Vec4{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
		W: v.W * other.W,
	}
}

/**
 * @brief Divides v by other component-wise and returns a copy of the result.
 * Zero components in other are not guarded.
 */
func (v Vec4) Div(other Vec4) Vec4 {
	return Vec4{
		X: v.X / other.X,
		Y: v.Y / other.Y,
		Z: v.Z / other.Z,
		W: v.W / other.W,
	}
}

/**
 * @brief Multiplies all elements of v by scalar and returns a copy of the result.
 */
func (v Vec4) MulScalar(scalar float32) Vec4 {
	return Vec4{v.X * scalar, v.Y * scalar, v.Z * scalar, v.W * scalar}
}

/**
 * @brief Divides all elements of v by scalar and returns a copy of the result.
 * Division by zero is not guarded and yields IEEE Inf/NaN.
 */
func (v Vec4) DivScalar(scalar float32) Vec4 {
	inv := 1.0 / scalar
	return Vec4{v.X * inv, v.Y * inv, v.Z * inv, v.W * inv}
}

// Dot returns the four component dot product of v and other.
func (v Vec4) Dot(other Vec4) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

/**
 * @brief Returns the squared length of the provided vector.
 */
func (v Vec4) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

/**
 * @brief Returns the length of the provided vector.
 */
func (v Vec4) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

/**
 * @brief Normalizes v in place to unit length and returns the length it had
 * before. A zero vector stays zero and 0 is returned.
 */
func (v *Vec4) Normalize() float32 {
	length := v.Length()
	inv := float32(0)
	if length != 0 {
		inv = 1.0 / length
	}
	v.X *= inv
	v.Y *= inv
	v.Z *= inv
	v.W *= inv
	return length
}

/**
 * @brief Returns a normalized copy of v. A zero vector yields a zero vector.
 */
func (v Vec4) Normalized() Vec4 {
	v.Normalize()
	return v
}

// Compare reports whether all components match exactly.
func (v Vec4) Compare(other Vec4) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z && v.W == other.W
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is no more than tolerance.
 *
 * @param tolerance The difference tolerance. Typically K_FLOAT_EPSILON or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec4) CompareEpsilon(other Vec4, tolerance float32) bool {
	if math32.Abs(v.X-other.X) > tolerance {
		return false
	}

	if math32.Abs(v.Y-other.Y) > tolerance {
		return false
	}

	if math32.Abs(v.Z-other.Z) > tolerance {
		return false
	}

	if math32.Abs(v.W-other.W) > tolerance {
		return false
	}

	return true
}

// Clamp01 clamps every component into [0, 1] independently.
func (v *Vec4) Clamp01() {
	v.X = Clamp(v.X, 0.0, 1.0)
	v.Y = Clamp(v.Y, 0.0, 1.0)
	v.Z = Clamp(v.Z, 0.0, 1.0)
	v.W = Clamp(v.W, 0.0, 1.0)
}

// SnapInt moves each component to the nearest integer value.
func (v *Vec4) SnapInt() {
	v.X = NearestFloat(v.X)
	v.Y = NearestFloat(v.Y)
	v.Z = NearestFloat(v.Z)
	v.W = NearestFloat(v.W)
}
