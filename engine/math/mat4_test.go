package math

import (
	m "math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertVec4InDelta(t *testing.T, want, got Vec4, delta float32) {
	t.Helper()
	assert.True(t, want.CompareEpsilon(got, delta), "want %v, got %v", want, got)
}

func sampleMatrices() []Mat4 {
	return []Mat4{
		NewMat4Identity(),
		{},
		NewMat4Translation(NewVec3(1, -2, 3)),
		NewMat4Scale(NewVec3(2, 3, 4)),
		NewMat4Rotation(NewVec3(1, 1, 0), 33),
		NewMat4Perspective(60, 1.5, 0.1, 100),
		{
			{1, 2, 3, 4},
			{5, 6, 7, 8},
			{9, 10, 11, 12},
			{13, 14, 15, 16},
		},
	}
}

func TestMat4ZeroValueIsNotIdentity(t *testing.T) {
	var zero Mat4
	assert.NotEqual(t, NewMat4Identity(), zero)
	assert.Equal(t, NewVec4Zero(), zero.MulVec4(NewVec4(1, 2, 3, 4)))

	id := NewMat4Identity()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := float32(0)
			if i == j {
				want = 1
			}
			assert.Equal(t, want, id[i][j], "identity[%d][%d]", i, j)
		}
	}
	assert.Equal(t, NewMat4Diagonal(1), id)
}

func TestMat4IdentityLaw(t *testing.T) {
	id := NewMat4Identity()
	for _, mat := range sampleMatrices() {
		assert.True(t, id.Mul(mat).CompareEpsilon(mat, 1e-6))
		assert.True(t, mat.Mul(id).CompareEpsilon(mat, 1e-6))
	}
}

func TestMat4MulIsRowByColumn(t *testing.T) {
	a := Mat4{
		{1, 2, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
	b := Mat4{
		{1, 0, 0, 0},
		{3, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
	want := Mat4{
		{7, 2, 0, 0},
		{3, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
	assert.Equal(t, want, a.Mul(b))

	c := a
	c.MulAssign(b)
	assert.Equal(t, want, c)
}

func TestMat4TranslationConformance(t *testing.T) {
	v := NewVec3(3, -4, 5.5)
	got := NewMat4Translation(v).MulVec4(NewVec4(0, 0, 0, 1))
	assert.Equal(t, NewVec4(v.X, v.Y, v.Z, 1), got)

	dir := NewMat4Translation(v).MulDirection(NewVec3(1, 0, 0))
	assert.Equal(t, NewVec3(1, 0, 0), dir)
}

func TestMat4TranslationComposition(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(-5, 0.5, 10)
	origin := NewVec4(0, 0, 0, 1)

	composed := NewMat4Translation(a).Mul(NewMat4Translation(b)).MulVec4(origin)
	summed := NewMat4Translation(a.Add(b)).MulVec4(origin)
	assertVec4InDelta(t, summed, composed, 1e-6)
}

func TestMat4ScaleScenario(t *testing.T) {
	got := NewMat4Scale(NewVec3(2, 3, 4)).MulVec4(NewVec4(1, 1, 1, 1))
	assert.Equal(t, NewVec4(2, 3, 4, 1), got)
}

func TestMat4CompositionOrder(t *testing.T) {
	tr := NewMat4Translation(NewVec3(5, 0, 0))
	sc := NewMat4Scale(NewVec3(2, 2, 2))
	p := NewVec3(1, 0, 0)

	assert.Equal(t, NewVec3(7, 0, 0), tr.Mul(sc).MulPoint(p))
	assert.Equal(t, NewVec3(12, 0, 0), sc.Mul(tr).MulPoint(p))
}

func TestMat4Rotation(t *testing.T) {
	tests := []struct {
		name    string
		axis    Vec3
		degrees float32
		in      Vec3
		want    Vec3
	}{
		{name: "x to y about z", axis: NewVec3Back(), degrees: 90, in: NewVec3Right(), want: NewVec3Up()},
		{name: "x to -z about y", axis: NewVec3Up(), degrees: 90, in: NewVec3Right(), want: NewVec3(0, 0, -1)},
		{name: "y to z about x", axis: NewVec3Right(), degrees: 90, in: NewVec3Up(), want: NewVec3Back()},
		{name: "unnormalized axis", axis: NewVec3(0, 0, 8), degrees: 180, in: NewVec3(1, 1, 0), want: NewVec3(-1, -1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec3InDelta(t, tt.want, NewMat4Rotation(tt.axis, tt.degrees).MulPoint(tt.in), 1e-5)
		})
	}
}

func TestMat4RotationMatchesQuaternion(t *testing.T) {
	axes := []Vec3{NewVec3(1, 0, 0), NewVec3(0.3, 0.3, 0.9), NewVec3(-2, 1, 5)}
	for _, axis := range axes {
		for _, degrees := range []float32{-120, 15, 90, 270} {
			rm := NewMat4Rotation(axis, degrees)
			qm := NewQuatFromAxisAngle(axis, degrees).ToMat4()
			assert.True(t, rm.CompareEpsilon(qm, 1e-5), "axis %v degrees %v", axis, degrees)

			// rotations are orthonormal
			assert.True(t, rm.Mul(rm.Transposed()).CompareEpsilon(NewMat4Identity(), 1e-5))
		}
	}

	assert.Equal(t, NewMat4Identity(), NewMat4Rotation(NewVec3Zero(), 45))
}

func TestMat4PerspectiveFrustumBoundary(t *testing.T) {
	const (
		fov    = 90
		aspect = 2
		near   = 1
		far    = 10
	)
	proj := NewMat4Perspective(fov, aspect, near, far)

	tests := []struct {
		name  string
		point Vec4
		ndc   Vec3
	}{
		{name: "near top right", point: NewVec4(2, 1, -1, 1), ndc: NewVec3(1, 1, -1)},
		{name: "near bottom left", point: NewVec4(-2, -1, -1, 1), ndc: NewVec3(-1, -1, -1)},
		{name: "far top right", point: NewVec4(20, 10, -10, 1), ndc: NewVec3(1, 1, 1)},
		{name: "far center", point: NewVec4(0, 0, -10, 1), ndc: NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clip := proj.MulVec4(tt.point)
			assert.Equal(t, -tt.point.Z, clip.W, "w' must be -z")
			assertVec3InDelta(t, tt.ndc, clip.ToVec3().DivScalar(clip.W), 1e-5)
		})
	}

	assert.Equal(t, NewVec4(0, 0, -1, 0), proj.Row(3))
}

func TestMat4OrthographicBoundary(t *testing.T) {
	proj := NewMat4Orthographic(-2, 2, -1, 1, 0.5, 10)

	assertVec4InDelta(t, NewVec4(1, 1, 1, 1), proj.MulVec4(NewVec4(2, 1, -10, 1)), 1e-6)
	assertVec4InDelta(t, NewVec4(-1, -1, -1, 1), proj.MulVec4(NewVec4(-2, -1, -0.5, 1)), 1e-6)
	assertVec4InDelta(t, NewVec4(0, 0, 0, 1), proj.MulVec4(NewVec4(0, 0, -5.25, 1)), 1e-6)

	offCenter := NewMat4Orthographic(0, 800, 0, 600, -1, 1)
	assertVec4InDelta(t, NewVec4(-1, -1, 0, 1), offCenter.MulVec4(NewVec4(0, 0, 0, 1)), 1e-6)
	assertVec4InDelta(t, NewVec4(1, 1, 0, 1), offCenter.MulVec4(NewVec4(800, 600, 0, 1)), 1e-6)
}

func TestMat4DegenerateProjectionsPropagate(t *testing.T) {
	sameClip := NewMat4Perspective(60, 1, 1, 1)
	assert.True(t, m.IsInf(float64(sameClip[2][2]), 0))

	noAspect := NewMat4Perspective(60, 0, 0.1, 100)
	assert.True(t, m.IsInf(float64(noAspect[0][0]), 1))

	flat := NewMat4Orthographic(1, 1, 0, 1, 0, 1)
	assert.True(t, m.IsInf(float64(flat[0][0]), 0))
}

func TestMat4RawBuffers(t *testing.T) {
	tr := NewMat4Translation(NewVec3(1, 2, 3))

	rowMajor := tr.Data()
	assert.Equal(t, float32(1), rowMajor[3])
	assert.Equal(t, float32(2), rowMajor[7])
	assert.Equal(t, float32(3), rowMajor[11])
	assert.Equal(t, float32(1), rowMajor[15])

	colMajor := tr.ColumnMajor()
	assert.Equal(t, float32(1), colMajor[12])
	assert.Equal(t, float32(2), colMajor[13])
	assert.Equal(t, float32(3), colMajor[14])
}

func TestMat4RowsColumnsTranspose(t *testing.T) {
	mat := sampleMatrices()[6]
	assert.Equal(t, NewVec4(5, 6, 7, 8), mat.Row(1))
	assert.Equal(t, NewVec4(2, 6, 10, 14), mat.Col(1))
	assert.Equal(t, mat.Row(2), mat.Transposed().Col(2))
	assert.Equal(t, mat, mat.Transposed().Transposed())
}

func TestMat4LookAt(t *testing.T) {
	view := NewMat4LookAt(NewVec3(0, 0, 5), NewVec3Zero(), NewVec3Up())
	assertVec3InDelta(t, NewVec3(0, 0, -5), view.MulPoint(NewVec3Zero()), 1e-5)
	assertVec3InDelta(t, NewVec3(1, 0, -5), view.MulPoint(NewVec3(1, 0, 0)), 1e-5)

	side := NewMat4LookAt(NewVec3(5, 0, 0), NewVec3Zero(), NewVec3Up())
	assertVec3InDelta(t, NewVec3(0, 0, -5), side.MulPoint(NewVec3Zero()), 1e-5)
	assertVec3InDelta(t, NewVec3(1, 0, -5), side.MulPoint(NewVec3(0, 0, -1)), 1e-5)
}
