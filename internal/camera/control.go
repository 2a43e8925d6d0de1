package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/paperboard/labs3d/internal/input"
)

// Steps are the distances one key press moves or turns the camera.
type Steps struct {
	Move float32
	Turn float32 // radians
}

// Apply performs a camera action and reports whether a is a camera action.
func (c *Camera) Apply(a input.Action, s Steps) bool {
	switch a {
	case input.Forward, input.MoveIn:
		c.Translate(mgl32.Vec3{0, 0, s.Move})
	case input.Backward, input.MoveOut:
		c.Translate(mgl32.Vec3{0, 0, -s.Move})
	case input.MoveLeft:
		c.Translate(mgl32.Vec3{s.Move, 0, 0})
	case input.MoveRight:
		c.Translate(mgl32.Vec3{-s.Move, 0, 0})
	case input.MoveUp:
		c.Translate(mgl32.Vec3{0, -s.Move, 0})
	case input.MoveDown:
		c.Translate(mgl32.Vec3{0, s.Move, 0})
	case input.YawLeft:
		c.Yaw(-s.Turn)
	case input.YawRight:
		c.Yaw(s.Turn)
	case input.PitchUp:
		c.Pitch(s.Turn)
	case input.PitchDown:
		c.Pitch(-s.Turn)
	case input.BirdsEye:
		c.SetMode(BirdsEye)
	case input.MainView:
		c.SetMode(Main)
	case input.ToggleView:
		c.Toggle()
	default:
		return false
	}
	return true
}
