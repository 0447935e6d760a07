package math

import (
	m "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeZeroVector(t *testing.T) {
	t.Run("Vec2", func(t *testing.T) {
		v := NewVec2Zero()
		assert.Equal(t, float32(0), v.Normalize())
		assert.Equal(t, NewVec2Zero(), v)
		assert.Equal(t, NewVec2Zero(), NewVec2Zero().Normalized())
	})

	t.Run("Vec3", func(t *testing.T) {
		v := NewVec3Zero()
		assert.Equal(t, float32(0), v.Normalize())
		assert.Equal(t, NewVec3Zero(), v)
		assert.Equal(t, NewVec3Zero(), NewVec3Zero().Normalized())
	})

	t.Run("Vec4", func(t *testing.T) {
		v := NewVec4Zero()
		assert.Equal(t, float32(0), v.Normalize())
		assert.Equal(t, NewVec4Zero(), v)
		assert.Equal(t, NewVec4Zero(), NewVec4Zero().Normalized())
	})
}

func TestNormalizeReturnsPreviousLength(t *testing.T) {
	v := NewVec2(3, 4)
	assert.Equal(t, float32(5), v.Normalize())
	assert.InDelta(t, 0.6, v.X, 1e-6)
	assert.InDelta(t, 0.8, v.Y, 1e-6)

	v3 := NewVec3(0, 0, -7)
	assert.Equal(t, float32(7), v3.Normalize())
	assert.Equal(t, NewVec3(0, 0, -1), v3)
}

func TestNormalizedIsUnitLength(t *testing.T) {
	vectors := []Vec3{
		NewVec3(1, 2, 3),
		NewVec3(-0.001, 0.002, 0.0005),
		NewVec3(1000, -2000, 3000),
		NewVec3Forward(),
	}

	for _, v := range vectors {
		n := v.Normalized()
		assert.InDelta(t, 1.0, n.Length(), 1e-5, "length of normalized %v", v)
		assert.InDelta(t, 1.0, NewVec4FromVec3(v, 2).Normalized().Length(), 1e-5)
		if v.X == 0 && v.Y == 0 {
			// the xy projection collapses to the zero vector, which stays zero
			assert.Equal(t, NewVec2Zero(), NewVec2(v.X, v.Y).Normalized())
			continue
		}
		assert.InDelta(t, 1.0, NewVec2(v.X, v.Y).Normalized().Length(), 1e-5)
	}
}

func TestNormalizedLeavesReceiverUntouched(t *testing.T) {
	v := NewVec3(2, 0, 0)
	_ = v.Normalized()
	assert.Equal(t, NewVec3(2, 0, 0), v)
}

func TestCrossAndDotSymmetry(t *testing.T) {
	pairs := [][2]Vec3{
		{NewVec3(1, 0, 0), NewVec3(0, 1, 0)},
		{NewVec3(1, 2, 3), NewVec3(-4, 5, 0.5)},
		{NewVec3(0.1, -0.7, 9), NewVec3(3.3, 3.3, -1)},
	}

	for _, p := range pairs {
		a, b := p[0], p[1]
		// arm64 may fuse the products, so no exact match here.
		assert.True(t, a.Cross(b).CompareEpsilon(b.Cross(a).Negate(), 1e-6))
		assert.Equal(t, a.Dot(b), b.Dot(a))

		a2, b2 := NewVec2(a.X, a.Y), NewVec2(b.X, b.Y)
		assert.Equal(t, a2.Dot(b2), b2.Dot(a2))
	}
}

func TestCrossIsRightHanded(t *testing.T) {
	assert.Equal(t, NewVec3(0, 0, 1), NewVec3Right().Cross(NewVec3Up()))

	var v Vec3
	v.SetCross(NewVec3Up(), NewVec3Back())
	assert.Equal(t, NewVec3(1, 0, 0), v)
}

func TestVecArithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	assert.Equal(t, NewVec3(5, 7, 9), a.Add(b))
	assert.Equal(t, NewVec3(-3, -3, -3), a.Sub(b))
	assert.Equal(t, NewVec3(2, 4, 6), a.MulScalar(2))
	assert.Equal(t, NewVec3(0.5, 1, 1.5), a.DivScalar(2))
	assert.Equal(t, NewVec3(-1, -2, -3), a.Negate())
	assert.Equal(t, NewVec3(4, 10, 18), a.Mul(b))
	assert.Equal(t, float32(32), a.Dot(b))
	assert.Equal(t, float32(14), a.LengthSquared())
	assert.InDelta(t, m.Sqrt(27), a.Distance(b), 1e-5)

	v2 := NewVec2(1, 2).Add(NewVec2(3, 4))
	assert.Equal(t, NewVec2(4, 6), v2)
	assert.Equal(t, NewVec2(2, 3), v2.DivScalar(2))
	assert.Equal(t, NewVec2(-4, -6), v2.Negate())

	v4 := NewVec4(1, 2, 3, 4)
	assert.Equal(t, NewVec4(2, 6, 12, 20), v4.Mul(NewVec4(2, 3, 4, 5)))
	assert.Equal(t, NewVec4(0.5, 1, 1.5, 2), v4.Div(NewVec4(2, 2, 2, 2)))
	assert.Equal(t, NewVec4(3, 6, 9, 12), v4.MulScalar(3))
	assert.Equal(t, NewVec4(0, 0, 0, 0), v4.Sub(v4))
}

func TestScalarDivisionByZeroPropagates(t *testing.T) {
	v := NewVec2(1, 0).DivScalar(0)
	assert.True(t, m.IsInf(float64(v.X), 1))
	assert.True(t, m.IsNaN(float64(v.Y)))

	v4 := NewVec4One().DivScalar(0)
	assert.True(t, m.IsInf(float64(v4.W), 1))
}

func TestIndexedAccess(t *testing.T) {
	v2 := NewVec2(1, 2)
	assert.Equal(t, float32(1), v2.Index(0))
	assert.Equal(t, float32(2), v2.Index(1))
	v2.SetIndex(0, 9)
	assert.Equal(t, NewVec2(9, 2), v2)

	v3 := NewVec3(1, 2, 3)
	for i, want := range []float32{1, 2, 3} {
		assert.Equal(t, want, v3.Index(i))
	}
	v3.SetIndex(2, 7)
	assert.Equal(t, NewVec3(1, 2, 7), v3)

	v4 := NewVec4(1, 2, 3, 4)
	for i, want := range []float32{1, 2, 3, 4} {
		assert.Equal(t, want, v4.Index(i))
	}
	v4.SetIndex(1, -2)
	assert.Equal(t, NewVec4(1, -2, 3, 4), v4)
}

func TestCompare(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(1, 2, 3.000001)

	assert.True(t, a.Compare(a))
	assert.False(t, a.Compare(b))
	assert.True(t, a.CompareEpsilon(b, 1e-5))
	assert.False(t, a.CompareEpsilon(NewVec3(1, 2.1, 3), 1e-5))

	assert.True(t, NewVec2(1, 1).CompareEpsilon(NewVec2(1, 1).Add(NewVec2Epsilon()), K_FLOAT_EPSILON))
	assert.False(t, NewVec2(1, 1).Compare(NewVec2(1, 0)))
	assert.True(t, NewVec4One().CompareEpsilon(NewVec4(1, 1, 1, 1.0000001), 1e-6))
	assert.False(t, NewVec4One().Compare(NewVec4Zero()))
}

func TestSnapInt(t *testing.T) {
	v2 := NewVec2(1.4, -1.5)
	v2.SnapInt()
	assert.Equal(t, NewVec2(1, -1), v2)

	v3 := NewVec3(1.5, 2.49, -0.6)
	v3.SnapInt()
	assert.Equal(t, NewVec3(2, 2, -1), v3)

	v4 := NewVec4(0.5, 0.49, 3.7, -3.7)
	v4.SnapInt()
	assert.Equal(t, NewVec4(1, 0, 4, -4), v4)
}

func TestClamp01(t *testing.T) {
	v := NewVec4(-1, 0.5, 2, 1)
	v.Clamp01()
	assert.Equal(t, NewVec4(0, 0.5, 1, 1), v)
}

func TestVecConversions(t *testing.T) {
	v3 := NewVec3FromVec2(NewVec2(1, 2))
	require.Equal(t, NewVec3(1, 2, 0), v3)
	assert.Equal(t, v3, NewVec2(1, 2).ToVec3())

	v4 := v3.ToVec4(1)
	assert.Equal(t, NewVec4(1, 2, 0, 1), v4)
	assert.Equal(t, NewVec4Point(1, 2, 0), v4)
	assert.Equal(t, v3, v4.ToVec3())
	assert.Equal(t, v3, NewVec3FromVec4(v4))
}

func TestSetAndZero(t *testing.T) {
	var v2 Vec2
	v2.Set(1, 2)
	assert.Equal(t, NewVec2(1, 2), v2)
	v2.SetZero()
	assert.Equal(t, NewVec2Zero(), v2)

	var v3 Vec3
	v3.Set(1, 2, 3)
	assert.Equal(t, NewVec3(1, 2, 3), v3)
	v3.SetZero()
	assert.Equal(t, NewVec3Zero(), v3)

	var v4 Vec4
	v4.Set(1, 2, 3, 4)
	assert.Equal(t, NewVec4(1, 2, 3, 4), v4)
	v4.SetZero()
	assert.Equal(t, NewVec4Zero(), v4)
}
