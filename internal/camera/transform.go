package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

const fovy = 1 // radians

// SpinInPlace rotates model about the Y axis through its own origin.
// The model's translation is unchanged.
func SpinInPlace(model mgl32.Mat4, rad float32) mgl32.Mat4 {
	t := model.Col(3).Vec3()
	toOrigin := mgl32.Translate3D(-t[0], -t[1], -t[2])
	back := mgl32.Translate3D(t[0], t[1], t[2])
	return back.Mul4(mgl32.HomogRotate3DY(rad)).Mul4(toOrigin).Mul4(model)
}

// Orbit rotates model about the world Y axis.
func Orbit(model mgl32.Mat4, rad float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DY(rad).Mul4(model)
}

// InGround places an object given in ground space into the world.
func InGround(object, ground mgl32.Mat4) mgl32.Mat4 {
	return ground.Mul4(object)
}

// Perspective is the labs' projection for a width x height viewport.
// Sizes below one pixel are clamped so a minimised window stays finite.
func Perspective(width, height int, near, far float32) mgl32.Mat4 {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return mgl32.Perspective(fovy, float32(width)/float32(height), near, far)
}
