package math

/**
 * @brief Represents the transform of an object in the world.
 * Transforms can have a parent whose own transform is then
 * taken into account. NOTE: The fields should not be edited
 * directly; use the setters so the local matrix is rebuilt.
 */
type Transform struct {
	position Vec3
	rotation Quaternion
	scale    Vec3
	/** @brief Set when position, rotation or scale changed since Local was built. */
	isDirty bool
	local   Mat4
	parent  *Transform
}

// NewTransform returns a transform at the origin with no rotation and unit scale.
func NewTransform() *Transform {
	return NewTransformFromPositionRotationScale(NewVec3Zero(), NewQuatIdentity(), NewVec3One())
}

func NewTransformFromPosition(position Vec3) *Transform {
	return NewTransformFromPositionRotationScale(position, NewQuatIdentity(), NewVec3One())
}

func NewTransformFromRotation(rotation Quaternion) *Transform {
	return NewTransformFromPositionRotationScale(NewVec3Zero(), rotation, NewVec3One())
}

func NewTransformFromPositionRotationScale(position Vec3, rotation Quaternion, scale Vec3) *Transform {
	return &Transform{
		position: position,
		rotation: rotation,
		scale:    scale,
		isDirty:  true,
		local:    NewMat4Identity(),
	}
}

func (t *Transform) Position() Vec3 {
	return t.position
}

func (t *Transform) Rotation() Quaternion {
	return t.rotation
}

func (t *Transform) Scale() Vec3 {
	return t.scale
}

func (t *Transform) Parent() *Transform {
	return t.parent
}

// SetParent attaches t to parent. A nil parent detaches it.
func (t *Transform) SetParent(parent *Transform) {
	t.parent = parent
}

func (t *Transform) SetPosition(position Vec3) {
	t.position = position
	t.isDirty = true
}

func (t *Transform) Translate(translation Vec3) {
	t.position = t.position.Add(translation)
	t.isDirty = true
}

func (t *Transform) SetRotation(rotation Quaternion) {
	t.rotation = rotation
	t.isDirty = true
}

// Rotate composes rotation onto the current one in the local frame: the
// new rotation applies before the existing orientation.
func (t *Transform) Rotate(rotation Quaternion) {
	t.rotation = t.rotation.Mul(rotation)
	t.isDirty = true
}

func (t *Transform) SetScale(scale Vec3) {
	t.scale = scale
	t.isDirty = true
}

// ScaleBy multiplies the current scale component-wise.
func (t *Transform) ScaleBy(scale Vec3) {
	t.scale = t.scale.Mul(scale)
	t.isDirty = true
}

/**
 * @brief Returns the local matrix T * R * S: scale first, then rotation,
 * then translation. Rebuilt only when something changed. A nil transform
 * is the identity.
 */
func (t *Transform) Local() Mat4 {
	if t == nil {
		return NewMat4Identity()
	}
	if t.isDirty {
		tr := NewMat4Translation(t.position)
		tr.MulAssign(t.rotation.ToMat4())
		tr.MulAssign(NewMat4Scale(t.scale))
		t.local = tr
		t.isDirty = false
	}
	return t.local
}

// World returns parent.World() * Local(), walking up the parent chain.
func (t *Transform) World() Mat4 {
	if t == nil {
		return NewMat4Identity()
	}
	l := t.Local()
	if t.parent != nil {
		return t.parent.World().Mul(l)
	}
	return l
}
