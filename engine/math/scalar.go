package math

import (
	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Clamp returns f limited to [low, high]. Any ordered type is accepted.
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// NearestFloat rounds x to the nearest whole number, halves rounding up.
func NearestFloat(x float32) float32 {
	return math32.Floor(x + 0.5)
}

// NearestInt is NearestFloat converted to int. Rounding goes through
// floor, not truncation, so negative inputs round the same way as
// positive ones.
func NearestInt(x float32) int {
	return int(NearestFloat(x))
}

/**
 * @brief Converts provided degrees to radians.
 *
 * @param degrees The degrees to be converted.
 * @return The amount in radians.
 */
func DegToRad(degrees float32) float32 {
	return degrees * K_DEG2RAD_MULTIPLIER
}

/**
 * @brief Converts provided radians to degrees.
 *
 * @param radians The radians to be converted.
 * @return The amount in degrees.
 */
func RadToDeg(radians float32) float32 {
	return radians * K_RAD2DEG_MULTIPLIER
}

// IsoToOrtho rotates isometric coordinates roughly 45 degrees
// counter-clockwise into orthographic (cartesian) space.
func IsoToOrtho(x, y float32) (float32, float32) {
	return (2.0*y + x) * 0.5, (2.0*y - x) * 0.5
}

// IsoToOrthoInt is IsoToOrtho for tile coordinates. Results are rounded
// with NearestInt, so round trips may be off by one unit.
func IsoToOrthoInt(x, y int) (int, int) {
	isoX, isoY := float32(x), float32(y)
	return NearestInt((2.0*isoY + isoX) * 0.5), NearestInt((2.0*isoY - isoX) * 0.5)
}

// OrthoToIso rotates orthographic coordinates roughly 45 degrees clockwise
// into isometric space. It is the inverse of IsoToOrtho.
func OrthoToIso(x, y float32) (float32, float32) {
	return x - y, (x + y) * 0.5
}

// OrthoToIsoInt is OrthoToIso for tile coordinates. The x result is exact,
// the y result is rounded with NearestInt.
func OrthoToIsoInt(x, y int) (int, int) {
	return x - y, NearestInt(float32(x+y) * 0.5)
}

// GetAngle returns the heading in degrees of the direction (x, y), which
// must already be unit length. Results lie in (-90, 270]. The axis aligned
// cases x == 0 return exactly 90 or 270 so no division by zero happens;
// (0, 0) is undefined.
func GetAngle(x, y float32) float32 {
	if x == 0.0 && y > 0.0 {
		return 90.0
	}
	if x == 0.0 && y < 0.0 {
		return 270.0
	}

	angle := RadToDeg(math32.Atan(y / x))
	if x < 0 {
		angle += 180.0
	}
	return angle
}
