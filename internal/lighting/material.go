// Package lighting holds the Phong material table and point lights the lit
// labs upload before each draw.
package lighting

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Uniforms is the part of a shader program the lighting code writes to.
type Uniforms interface {
	SetVec3(name string, v mgl32.Vec3)
	SetVec4(name string, v mgl32.Vec4)
	SetFloat(name string, f float32)
	SetInt(name string, i int32)
}

//go:generate enumgen

// Material selects a fixed set of reflectivity constants.
type Material int32 //enums:enum -transform snake -accept-lower

const (
	YellowRubber Material = iota
	Gold
	Brass
	Chrome
	Emerald
)

// Reflectivity is a material's Phong coefficients. Shininess is normalised
// to [0,1]; the shader receives Shininess*128.
type Reflectivity struct {
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Shininess float32
}

var materials = [MaterialN]Reflectivity{
	YellowRubber: {
		Ambient:   mgl32.Vec3{0, 0, 0},
		Diffuse:   mgl32.Vec3{0.5, 0.5, 0},
		Specular:  mgl32.Vec3{0.6, 0.6, 0.5},
		Shininess: 0.25,
	},
	Gold: {
		Ambient:   mgl32.Vec3{0.24725, 0.1995, 0.0745},
		Diffuse:   mgl32.Vec3{0.75164, 0.60648, 0.22648},
		Specular:  mgl32.Vec3{0.628281, 0.555802, 0.366065},
		Shininess: 0.4,
	},
	Brass: {
		Ambient:   mgl32.Vec3{0.329412, 0.223529, 0.027451},
		Diffuse:   mgl32.Vec3{0.780392, 0.568627, 0.113725},
		Specular:  mgl32.Vec3{0.992157, 0.941176, 0.807843},
		Shininess: 0.21794872,
	},
	Chrome: {
		Ambient:   mgl32.Vec3{0.25, 0.25, 0.25},
		Diffuse:   mgl32.Vec3{0.4, 0.4, 0.4},
		Specular:  mgl32.Vec3{0.774597, 0.774597, 0.774597},
		Shininess: 0.6,
	},
	Emerald: {
		Ambient:   mgl32.Vec3{0.0215, 0.1745, 0.0215},
		Diffuse:   mgl32.Vec3{0.07568, 0.61424, 0.07568},
		Specular:  mgl32.Vec3{0.633, 0.727811, 0.633},
		Shininess: 0.6,
	},
}

// Reflectivity returns the constants for m. Unknown materials get chrome.
func (m Material) Reflectivity() Reflectivity {
	if !m.IsValid() {
		return materials[Chrome]
	}
	return materials[m]
}

// Parse accepts a material name in any case, with or without underscores.
func Parse(name string) (Material, error) {
	name = strings.TrimSpace(name)
	var m Material
	if err := m.SetString(name); err == nil {
		return m, nil
	}
	key := strings.ReplaceAll(strings.ToLower(name), "_", "")
	for _, v := range MaterialValues() {
		if strings.ReplaceAll(v.String(), "_", "") == key {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown material %q", name)
}

// Exponent is the specular exponent sent to the shader.
func (r Reflectivity) Exponent() float32 { return r.Shininess * 128 }

// Apply writes m to the uMaterial uniform block.
func Apply(u Uniforms, m Material) {
	r := m.Reflectivity()
	u.SetVec3("uMaterial.AmbientReflectivity", r.Ambient)
	u.SetVec3("uMaterial.DiffuseReflectivity", r.Diffuse)
	u.SetVec3("uMaterial.SpecularReflectivity", r.Specular)
	u.SetFloat("uMaterial.Shininess", r.Exponent())
}
