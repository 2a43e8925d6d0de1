package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const tol = 1e-5

func assertVec4(t *testing.T, want, got mgl32.Vec4) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], tol, "component %d of %v", i, got)
	}
}

func assertMat4(t *testing.T, want, got mgl32.Mat4) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], tol, "entry %d of %v", i, got)
	}
}

func TestEyePositionMainView(t *testing.T) {
	c := New(MainView)
	assertVec4(t, mgl32.Vec4{0, 1.5, 0, 1}, c.EyePosition())
}

func TestTranslateForwardMovesEyeDownZ(t *testing.T) {
	c := New(MainView)
	c.Translate(mgl32.Vec3{0, 0, 0.05})
	assertVec4(t, mgl32.Vec4{0, 1.5, -0.05, 1}, c.EyePosition())
}

func TestEyePositionMatchesInverse(t *testing.T) {
	c := New(MainView)
	c.Translate(mgl32.Vec3{0.3, 0, 2})
	c.Yaw(0.4)
	c.Pitch(-0.2)
	c.Translate(mgl32.Vec3{0, 0, 1})

	want := c.View.Inv().Col(3)
	assertVec4(t, want, c.EyePosition())
}

func TestYawKeepsEye(t *testing.T) {
	c := New(MainView)
	before := c.EyePosition()
	c.Yaw(0.025)
	c.Pitch(0.025)
	assertVec4(t, before, c.EyePosition())
}

func TestToggle(t *testing.T) {
	c := New(MainView)
	c.Translate(mgl32.Vec3{1, 2, 3})
	assert.Equal(t, Main, c.Mode())

	c.Toggle()
	assert.Equal(t, BirdsEye, c.Mode())
	assert.Equal(t, BirdsEyeView, c.View)

	// the floor point under the eye is straight ahead, 15 units down
	p := c.View.Mul4x1(mgl32.Vec4{0, 0, -12, 1})
	assertVec4(t, mgl32.Vec4{0, 0, -15, 1}, p)
	assertVec4(t, mgl32.Vec4{0, 15, -12, 1}, c.EyePosition())

	c.Toggle()
	assert.Equal(t, Main, c.Mode())
	assert.Equal(t, MainView, c.View)
	assert.Equal(t, "main", c.Mode().String())
	assert.Equal(t, "birds-eye", BirdsEye.String())
}

func TestSpinInPlaceKeepsTranslation(t *testing.T) {
	model := mgl32.Translate3D(0, 3, -5.5)
	spun := SpinInPlace(model, 0.025)
	assert.InDelta(t, 0, spun.Col(3).Vec3().Sub(model.Col(3).Vec3()).Len(), tol)

	// a full turn in quarter steps returns to the start
	for i := 0; i < 4; i++ {
		model = SpinInPlace(model, math.Pi/2)
	}
	assertMat4(t, mgl32.Translate3D(0, 3, -5.5), model)
}

func TestOrbitMovesAroundWorldY(t *testing.T) {
	cube := mgl32.Translate3D(0, 0, -10.5)
	orbited := Orbit(cube, math.Pi/2)
	assertVec4(t, mgl32.Vec4{-10.5, 0, 0, 1}, orbited.Col(3))
}

func TestInGround(t *testing.T) {
	ground := mgl32.Translate3D(0, 0, -6.5)
	cylinder := mgl32.Translate3D(0, 1, -5.5)
	assertVec4(t, mgl32.Vec4{0, 1, -12, 1}, InGround(cylinder, ground).Col(3))
}

func TestPerspectiveClampsSize(t *testing.T) {
	p := Perspective(0, 0, 0.5, 25)
	assert.Equal(t, mgl32.Perspective(1, 1, 0.5, 25), p)
	for _, v := range p {
		assert.False(t, math.IsNaN(float64(v)) || math.IsInf(float64(v), 0))
	}
	assert.Equal(t, mgl32.Perspective(1, 800.0/600.0, 0.5, 25), Perspective(800, 600, 0.5, 25))
}
