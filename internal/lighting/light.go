package lighting

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxLights matches the uLight array size in the lighting shaders.
const MaxLights = 4

// Light is a world-space point light.
type Light struct {
	Position mgl32.Vec4
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
}

// White returns a point light at pos with grey intensities.
func White(pos mgl32.Vec3, ambient, diffuse, specular float32) Light {
	return Light{
		Position: pos.Vec4(1),
		Ambient:  mgl32.Vec3{ambient, ambient, ambient},
		Diffuse:  mgl32.Vec3{diffuse, diffuse, diffuse},
		Specular: mgl32.Vec3{specular, specular, specular},
	}
}

// ApplyLights writes lights to uLight[i] and sets uLightCount.
func ApplyLights(u Uniforms, lights []Light) error {
	if len(lights) > MaxLights {
		return fmt.Errorf("%d lights exceeds the shader limit of %d", len(lights), MaxLights)
	}
	for i, l := range lights {
		prefix := fmt.Sprintf("uLight[%d].", i)
		u.SetVec4(prefix+"Position", l.Position)
		u.SetVec3(prefix+"AmbientLight", l.Ambient)
		u.SetVec3(prefix+"DiffuseLight", l.Diffuse)
		u.SetVec3(prefix+"SpecularLight", l.Specular)
	}
	u.SetInt("uLightCount", int32(len(lights)))
	return nil
}
