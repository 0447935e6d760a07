package math

import "github.com/chewxy/math32"

/**
 * @brief Creates and returns a new 2-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @return A new 2-element vector.
 */
func NewVec2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 0.0f.
 */
func NewVec2Zero() Vec2 {
	return Vec2{0.0, 0.0}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 1.0f.
 */
func NewVec2One() Vec2 {
	return Vec2{1.0, 1.0}
}

/**
 * @brief Creates and returns a 2-component vector with both components set to K_FLOAT_EPSILON.
 */
func NewVec2Epsilon() Vec2 {
	return Vec2{K_FLOAT_EPSILON, K_FLOAT_EPSILON}
}

// NewVec2Up returns (0, 1).
func NewVec2Up() Vec2 {
	return Vec2{0.0, 1.0}
}

// NewVec2Down returns (0, -1).
func NewVec2Down() Vec2 {
	return Vec2{0.0, -1.0}
}

// NewVec2Left returns (-1, 0).
func NewVec2Left() Vec2 {
	return Vec2{-1.0, 0.0}
}

// NewVec2Right returns (1, 0).
func NewVec2Right() Vec2 {
	return Vec2{1.0, 0.0}
}

// Set assigns both components.
func (v *Vec2) Set(x, y float32) {
	v.X = x
	v.Y = y
}

// SetZero sets both components to 0.
func (v *Vec2) SetZero() {
	v.X = 0
	v.Y = 0
}

/**
 * @brief Returns the component at index i: X for 0 and Y for 1.
 * An index outside [0, 1] is a caller error; it resolves to Y.
 */
func (v Vec2) Index(i int) float32 {
	if i == 0 {
		return v.X
	}
	return v.Y
}

/**
 * @brief Sets the component at index i: X for 0 and Y for 1.
 * An index outside [0, 1] is a caller error; it writes Y.
 */
func (v *Vec2) SetIndex(i int, value float32) {
	if i == 0 {
		v.X = value
		return
	}
	v.Y = value
}

/**
 * @brief Adds other to v and returns a copy of the result.
 */
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

/**
 * @brief Subtracts other from v and returns a copy of the result.
 */
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Negate returns (-x, -y).
func (v Vec2) Negate() Vec2 {
	return Vec2{-v.X, -v.Y}
}

/**
 * @brief Multiplies all elements of v by scalar and returns a copy of the result.
 */
func (v Vec2) MulScalar(scalar float32) Vec2 {
	return Vec2{v.X * scalar, v.Y * scalar}
}

/**
 * @brief Divides all elements of v by scalar and returns a copy of the result.
 * Division by zero is not guarded and yields IEEE Inf/NaN.
 */
func (v Vec2) DivScalar(scalar float32) Vec2 {
	inv := 1.0 / scalar
	return Vec2{v.X * inv, v.Y * inv}
}

/**
 * @brief Returns the dot product between the provided vectors.
 */
func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

/**
 * Returns the squared length of the provided vector.
 */
func (v Vec2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

/**
 * @brief Returns the length of the provided vector.
 */
func (v Vec2) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

/**
 * @brief Normalizes v in place to unit length and returns the length it had
 * before. A zero vector stays zero and 0 is returned.
 */
func (v *Vec2) Normalize() float32 {
	length := v.Length()
	inv := float32(0)
	if length != 0 {
		inv = 1.0 / length
	}
	v.X *= inv
	v.Y *= inv
	return length
}

/**
 * @brief Returns a normalized copy of v. A zero vector yields a zero vector.
 */
func (v Vec2) Normalized() Vec2 {
	v.Normalize()
	return v
}

// Compare reports whether both components match exactly.
func (v Vec2) Compare(other Vec2) bool {
	return v.X == other.X && v.Y == other.Y
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is no more than tolerance.
 *
 * @param tolerance The difference tolerance. Typically K_FLOAT_EPSILON or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec2) CompareEpsilon(other Vec2, tolerance float32) bool {
	if math32.Abs(v.X-other.X) > tolerance {
		return false
	}
	if math32.Abs(v.Y-other.Y) > tolerance {
		return false
	}
	return true
}

/**
 * @brief Returns the distance between v and other.
 */
func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Length()
}

// SnapInt moves each component to the nearest integer value.
func (v *Vec2) SnapInt() {
	v.X = NearestFloat(v.X)
	v.Y = NearestFloat(v.Y)
}

// ToVec3 returns (x, y, 0).
func (v Vec2) ToVec3() Vec3 {
	return Vec3{v.X, v.Y, 0.0}
}
