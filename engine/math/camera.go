package math

/**
 * @brief A right-handed perspective camera. View and projection matrices
 * are cached and rebuilt when a setter changes their inputs.
 */
type Camera struct {
	position Vec3
	target   Vec3
	up       Vec3

	fov    float32
	aspect float32
	near   float32
	far    float32

	viewDirty       bool
	projectionDirty bool
	view            Mat4
	projection      Mat4
}

/**
 * @brief Creates a camera at position looking at target with +Y up.
 *
 * @param fov_degrees The vertical field of view, in (0, 360).
 * @param aspect_ratio Width over height, non zero.
 * @param near_clip, far_clip Distinct clip plane distances.
 */
func NewCamera(position, target Vec3, fov_degrees, aspect_ratio, near_clip, far_clip float32) *Camera {
	return &Camera{
		position:        position,
		target:          target,
		up:              NewVec3Up(),
		fov:             fov_degrees,
		aspect:          aspect_ratio,
		near:            near_clip,
		far:             far_clip,
		viewDirty:       true,
		projectionDirty: true,
	}
}

func (c *Camera) Position() Vec3 {
	return c.position
}

func (c *Camera) SetPosition(position Vec3) {
	c.position = position
	c.viewDirty = true
}

func (c *Camera) SetTarget(target Vec3) {
	c.target = target
	c.viewDirty = true
}

func (c *Camera) SetUp(up Vec3) {
	c.up = up
	c.viewDirty = true
}

// SetAspect updates the aspect ratio, typically after a resize.
func (c *Camera) SetAspect(aspect_ratio float32) {
	c.aspect = aspect_ratio
	c.projectionDirty = true
}

// SetPerspective replaces every projection parameter at once.
func (c *Camera) SetPerspective(fov_degrees, aspect_ratio, near_clip, far_clip float32) {
	c.fov = fov_degrees
	c.aspect = aspect_ratio
	c.near = near_clip
	c.far = far_clip
	c.projectionDirty = true
}

func (c *Camera) View() Mat4 {
	if c.viewDirty {
		c.view = NewMat4LookAt(c.position, c.target, c.up)
		c.viewDirty = false
	}
	return c.view
}

func (c *Camera) Projection() Mat4 {
	if c.projectionDirty {
		c.projection = NewMat4Perspective(c.fov, c.aspect, c.near, c.far)
		c.projectionDirty = false
	}
	return c.projection
}

// ViewProjection returns Projection() * View().
func (c *Camera) ViewProjection() Mat4 {
	return c.Projection().Mul(c.View())
}

/**
 * @brief Projects a world space point to normalized device coordinates.
 * The second result is false when the point is at or behind the camera
 * plane (w <= 0) and the coordinates are meaningless.
 */
func (c *Camera) Project(point Vec3) (Vec3, bool) {
	clip := c.ViewProjection().MulVec4(NewVec4FromVec3(point, 1.0))
	if clip.W <= 0 {
		return Vec3{}, false
	}
	return clip.ToVec3().DivScalar(clip.W), true
}
