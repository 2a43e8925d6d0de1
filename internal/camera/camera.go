// Package camera composes the view and model matrices driven by the keyboard.
//
// Matrices are mgl32 column-vector matrices, so appending a transform to a
// view (v' = v then T) is a pre-multiplication: T.Mul4(v).
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Mode is the camera's fixed viewpoint state.
type Mode int

const (
	Main Mode = iota
	BirdsEye
)

func (m Mode) String() string {
	if m == BirdsEye {
		return "birds-eye"
	}
	return "main"
}

var (
	// MainView looks down -Z from 1.5 units above the floor.
	MainView = mgl32.Translate3D(0, -1.5, 0)
	// BirdsEyeView pitches down a quarter turn and pulls back over the scene.
	BirdsEyeView = mgl32.Translate3D(0, -12, -15).Mul4(mgl32.HomogRotate3DX(math.Pi / 2))
)

// Camera owns a view matrix.
type Camera struct {
	View mgl32.Mat4
	mode Mode
}

// New starts a camera at view in Main mode.
func New(view mgl32.Mat4) *Camera {
	return &Camera{View: view}
}

func (c *Camera) Mode() Mode { return c.mode }

// Translate moves the scene by delta in eye space (positive z moves forward).
func (c *Camera) Translate(delta mgl32.Vec3) {
	c.View = mgl32.Translate3D(delta[0], delta[1], delta[2]).Mul4(c.View)
}

// Yaw turns the camera about the eye's Y axis.
func (c *Camera) Yaw(rad float32) {
	c.View = mgl32.HomogRotate3DY(rad).Mul4(c.View)
}

// Pitch turns the camera about the eye's X axis.
func (c *Camera) Pitch(rad float32) {
	c.View = mgl32.HomogRotate3DX(rad).Mul4(c.View)
}

// SetMode jumps to the fixed view for m.
func (c *Camera) SetMode(m Mode) {
	c.mode = m
	if m == BirdsEye {
		c.View = BirdsEyeView
		return
	}
	c.View = MainView
}

// Toggle switches between the main and birds-eye views.
func (c *Camera) Toggle() {
	if c.mode == BirdsEye {
		c.SetMode(Main)
		return
	}
	c.SetMode(BirdsEye)
}

// EyePosition is the world-space eye of the rigid view matrix.
func (c *Camera) EyePosition() mgl32.Vec4 {
	return EyePosition(c.View)
}

// EyePosition inverts a rotation+translation view: eye = -R^T t.
func EyePosition(view mgl32.Mat4) mgl32.Vec4 {
	t := view.Col(3).Vec3()
	eye := view.Mat3().Transpose().Mul3x1(t).Mul(-1)
	return eye.Vec4(1)
}
