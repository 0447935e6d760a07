package math

import "github.com/chewxy/math32"

// NewQuat returns the quaternion (x, y, z, w). The caller is responsible
// for the components describing a unit quaternion.
func NewQuat(x, y, z, w float32) Quaternion {
	return Quaternion{x, y, z, w}
}

// NewQuatFromVec3 returns the quaternion with vector part v and scalar part s.
func NewQuatFromVec3(v Vec3, s float32) Quaternion {
	return Quaternion{v.X, v.Y, v.Z, s}
}

/**
 * @brief Creates an identity quaternion.
 *
 * @return An identity quaternion.
 */
func NewQuatIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1.0}
}

/**
 * @brief Creates the rotation of degrees counter-clockwise about axis in a
 * right-handed coordinate system. This is the only constructor that
 * guarantees a unit quaternion: axis is normalized first, and a zero axis
 * produces the identity.
 *
 * @param axis The axis of rotation, any length.
 * @param degrees The angle of rotation in degrees.
 * @return A new unit quaternion.
 */
func NewQuatFromAxisAngle(axis Vec3, degrees float32) Quaternion {
	if axis.Normalize() == 0 {
		return NewQuatIdentity()
	}
	halfAngle := DegToRad(degrees) * 0.5
	s := math32.Sin(halfAngle)
	return Quaternion{axis.X * s, axis.Y * s, axis.Z * s, math32.Cos(halfAngle)}
}

// Set assigns all four components.
func (q *Quaternion) Set(x, y, z, w float32) {
	q.X = x
	q.Y = y
	q.Z = z
	q.W = w
}

// Index returns X, Y, Z, W for 0..3. Out of range resolves to W.
func (q Quaternion) Index(i int) float32 {
	switch i {
	case 0:
		return q.X
	case 1:
		return q.Y
	case 2:
		return q.Z
	default:
		return q.W
	}
}

// SetIndex writes X, Y, Z, W for 0..3. Out of range writes W.
func (q *Quaternion) SetIndex(i int, value float32) {
	switch i {
	case 0:
		q.X = value
	case 1:
		q.Y = value
	case 2:
		q.Z = value
	default:
		q.W = value
	}
}

/**
 * @brief Returns the Grassmann product q*p:
 *   [ (qs*pv + ps*qv + qv x pv), (qs*ps - qv.pv) ]
 * The product does not commute. As a rotation, q.Mul(p) applies p first
 * and q second.
 *
 * @param p The right hand quaternion.
 * @return The multiplied quaternion.
 */
func (q Quaternion) Mul(p Quaternion) Quaternion {
	return Quaternion{
		X: q.W*p.X + q.X*p.W + q.Y*p.Z - q.Z*p.Y,
		Y: q.W*p.Y + q.Y*p.W + q.Z*p.X - q.X*p.Z,
		Z: q.W*p.Z + q.Z*p.W + q.X*p.Y - q.Y*p.X,
		W: q.W*p.W - q.X*p.X - q.Y*p.Y - q.Z*p.Z,
	}
}

// MulAssign sets q to q.Mul(p) and returns q.
func (q *Quaternion) MulAssign(p Quaternion) *Quaternion {
	*q = q.Mul(p)
	return q
}

/**
 * @brief Returns the conjugate of q. That is, the x, y and z elements are
 * negated, but the w element is untouched.
 */
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, q.W}
}

/**
 * @brief Returns the inverse of q. For a unit quaternion this is the
 * conjugate, which is all that is computed; there is no general inverse.
 */
func (q Quaternion) Inverse() Quaternion {
	return q.Conjugate()
}

// Length returns the norm of q. A valid rotation has length 1.
func (q Quaternion) Length() float32 {
	return math32.Sqrt(q.Dot(q))
}

// Dot returns the four component dot product of q and other.
func (q Quaternion) Dot(other Quaternion) float32 {
	return q.X*other.X +
		q.Y*other.Y +
		q.Z*other.Z +
		q.W*other.W
}

// Normalized returns q scaled to unit length. A zero quaternion becomes
// the identity so the result is always a usable rotation.
func (q Quaternion) Normalized() Quaternion {
	length := q.Length()
	if length == 0 {
		return NewQuatIdentity()
	}
	inv := 1.0 / length
	return Quaternion{q.X * inv, q.Y * inv, q.Z * inv, q.W * inv}
}

// CompareEpsilon reports whether every component of q and other differ by
// no more than tolerance. q and -q are the same rotation but do not compare
// equal here.
func (q Quaternion) CompareEpsilon(other Quaternion, tolerance float32) bool {
	return Vec4(q).CompareEpsilon(Vec4(other), tolerance)
}

/**
 * @brief Rotates v counter-clockwise by q in a right-handed coordinate
 * system. This is the expanded and factored form of
 * q * Quaternion{v.X, v.Y, v.Z, 0} * q^-1 and is only correct for unit
 * quaternions.
 */
func (q Quaternion) RotateVec3(v Vec3) Vec3 {
	xxzz := q.X*q.X - q.Z*q.Z
	wwyy := q.W*q.W - q.Y*q.Y

	xw2 := q.X * q.W * 2.0
	xy2 := q.X * q.Y * 2.0
	xz2 := q.X * q.Z * 2.0
	yw2 := q.Y * q.W * 2.0
	yz2 := q.Y * q.Z * 2.0
	zw2 := q.Z * q.W * 2.0

	return Vec3{
		(xxzz+wwyy)*v.X + (xy2-zw2)*v.Y + (xz2+yw2)*v.Z,
		(xy2+zw2)*v.X + (q.Y*q.Y+q.W*q.W-q.X*q.X-q.Z*q.Z)*v.Y + (yz2-xw2)*v.Z,
		(xz2-yw2)*v.X + (yz2+xw2)*v.Y + (wwyy-xxzz)*v.Z,
	}
}

/**
 * @brief Rotates v, taken as (v.X, v.Y, 0), by q and drops the z result.
 * Same conventions and unit length requirement as RotateVec3.
 */
func (q Quaternion) RotateVec2(v Vec2) Vec2 {
	xxzz := q.X*q.X - q.Z*q.Z
	wwyy := q.W*q.W - q.Y*q.Y

	xy2 := q.X * q.Y * 2.0
	zw2 := q.Z * q.W * 2.0

	return Vec2{
		(xxzz+wwyy)*v.X + (xy2-zw2)*v.Y,
		(xy2+zw2)*v.X + (q.Y*q.Y+q.W*q.W-q.X*q.X-q.Z*q.Z)*v.Y,
	}
}

/**
 * @brief Creates a rotation matrix from q. Multiplying the matrix with a
 * column vector gives the same result as RotateVec3.
 */
func (q Quaternion) ToMat4() Mat4 {
	xxzz := q.X*q.X - q.Z*q.Z
	wwyy := q.W*q.W - q.Y*q.Y

	xw2 := q.X * q.W * 2.0
	xy2 := q.X * q.Y * 2.0
	xz2 := q.X * q.Z * 2.0
	yw2 := q.Y * q.W * 2.0
	yz2 := q.Y * q.Z * 2.0
	zw2 := q.Z * q.W * 2.0

	return Mat4{
		{xxzz + wwyy, xy2 - zw2, xz2 + yw2, 0},
		{xy2 + zw2, q.Y*q.Y + q.W*q.W - q.X*q.X - q.Z*q.Z, yz2 - xw2, 0},
		{xz2 - yw2, yz2 + xw2, wwyy - xxzz, 0},
		{0, 0, 0, 1},
	}
}

// QuatRotateVec3 returns v rotated by degrees counter-clockwise about axis.
func QuatRotateVec3(axis Vec3, degrees float32, v Vec3) Vec3 {
	return NewQuatFromAxisAngle(axis, degrees).RotateVec3(v)
}

// QuatRotateVec2 returns v rotated by degrees counter-clockwise about axis.
// Only the z axis keeps the result in the xy plane.
func QuatRotateVec2(axis Vec3, degrees float32, v Vec2) Vec2 {
	return NewQuatFromAxisAngle(axis, degrees).RotateVec2(v)
}

// QuatRotateVec3InPlace rotates *v by degrees counter-clockwise about axis.
func QuatRotateVec3InPlace(axis Vec3, degrees float32, v *Vec3) {
	*v = QuatRotateVec3(axis, degrees, *v)
}

// QuatRotateVec2InPlace rotates *v by degrees counter-clockwise about axis.
func QuatRotateVec2InPlace(axis Vec3, degrees float32, v *Vec2) {
	*v = QuatRotateVec2(axis, degrees, *v)
}
