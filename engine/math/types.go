package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float32
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 represents a 4D vector. It carries no point/direction tag: a
// homogeneous position uses W = 1, a direction W = 0.
type Vec4 struct {
	X, Y, Z, W float32
}

/**
 * @brief A quaternion used for rotations. Only unit length quaternions are
 * valid rotations; nothing renormalizes them. The zero value is NOT the
 * identity, use NewQuatIdentity.
 */
type Quaternion struct {
	X, Y, Z, W float32
}

/**
 * @brief A 4x4 row-major matrix addressed as m[row][col]. Matrices act on
 * column vectors (M * v), so in A.Mul(B) the transform B applies first.
 * The zero value is the zero matrix, use NewMat4Identity for the identity.
 */
type Mat4 [4][4]float32

/**
 * @brief Represents a single vertex in 3D space.
 */
type Vertex3D struct {
	/** @brief The position of the vertex */
	Position Vec3
	/** @brief The colour of the vertex. */
	Colour Vec4
}
