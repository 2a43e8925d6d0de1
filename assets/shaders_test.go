package assets

import (
	"io/fs"
	"regexp"
	"strconv"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperboard/labs3d/internal/lighting"
)

var (
	defineRe  = regexp.MustCompile(`#define\s+(\w+)\s+(\w+)`)
	structRe  = regexp.MustCompile(`struct\s+(\w+)\s*\{([^}]*)\}`)
	memberRe  = regexp.MustCompile(`\w+\s+(\w+)\s*;`)
	uniformRe = regexp.MustCompile(`uniform\s+(\w+)\s+(\w+)\s*(?:\[(\w+)\])?\s*;`)
	inRe      = regexp.MustCompile(`(?m)^\s*in\s+\w+\s+(\w+)\s*;`)
	outRe     = regexp.MustCompile(`(?m)^\s*out\s+\w+\s+(\w+)\s*;`)
	useRe     = regexp.MustCompile(`^(\w+)(?:\[(\d+)\])?(?:\.(\w+))?$`)
)

type uniformDecl struct {
	typ  string
	size int // 0 when not an array
}

// program is the interface one vertex+fragment pair exposes to Go code.
type program struct {
	structs  map[string]map[string]bool
	uniforms map[string]uniformDecl
	inputs   map[string]bool // vertex attributes
}

func readShader(t *testing.T, name string) string {
	t.Helper()
	b, err := fs.ReadFile(Embedded(), name)
	require.NoError(t, err)
	return string(b)
}

func linkProgram(t *testing.T, vert, frag string) program {
	t.Helper()
	vs, fsrc := readShader(t, vert), readShader(t, frag)
	p := program{
		structs:  map[string]map[string]bool{},
		uniforms: map[string]uniformDecl{},
		inputs:   map[string]bool{},
	}
	for _, src := range []string{vs, fsrc} {
		defines := map[string]string{}
		for _, m := range defineRe.FindAllStringSubmatch(src, -1) {
			defines[m[1]] = m[2]
		}
		for _, m := range structRe.FindAllStringSubmatch(src, -1) {
			members := map[string]bool{}
			for _, f := range memberRe.FindAllStringSubmatch(m[2], -1) {
				members[f[1]] = true
			}
			p.structs[m[1]] = members
		}
		for _, m := range uniformRe.FindAllStringSubmatch(src, -1) {
			d := uniformDecl{typ: m[1]}
			if m[3] != "" {
				size := m[3]
				if v, ok := defines[size]; ok {
					size = v
				}
				n, err := strconv.Atoi(size)
				require.NoError(t, err, "array size of %s", m[2])
				d.size = n
			}
			p.uniforms[m[2]] = d
		}
	}
	for _, m := range inRe.FindAllStringSubmatch(vs, -1) {
		p.inputs[m[1]] = true
	}

	// every fragment input is fed by the vertex stage
	outs := map[string]bool{}
	for _, m := range outRe.FindAllStringSubmatch(vs, -1) {
		outs[m[1]] = true
	}
	for _, m := range inRe.FindAllStringSubmatch(fsrc, -1) {
		assert.True(t, outs[m[1]], "%s reads %s, which %s does not write", frag, m[1], vert)
	}
	return p
}

// assertUniform checks a name as passed to glGetUniformLocation, such as
// "uLight[2].Position" or "uMaterial.Shininess".
func (p program) assertUniform(t *testing.T, name string) {
	t.Helper()
	m := useRe.FindStringSubmatch(name)
	require.NotNil(t, m, name)
	d, ok := p.uniforms[m[1]]
	if !assert.True(t, ok, "uniform %s is not declared", name) {
		return
	}
	if m[2] != "" {
		i, _ := strconv.Atoi(m[2])
		assert.Less(t, i, d.size, "uniform %s is out of range", name)
	}
	if m[3] != "" {
		assert.True(t, p.structs[d.typ][m[3]], "uniform %s: %s has no member %s", name, d.typ, m[3])
	}
}

// names records the uniform names the lighting package writes.
type names map[string]bool

func (n names) SetVec3(name string, _ mgl32.Vec3) { n[name] = true }
func (n names) SetVec4(name string, _ mgl32.Vec4) { n[name] = true }
func (n names) SetFloat(name string, _ float32)   { n[name] = true }
func (n names) SetInt(name string, _ int32)       { n[name] = true }

func lightingUniforms(t *testing.T) []string {
	t.Helper()
	n := names{}
	lighting.Apply(n, lighting.Gold)
	lights := make([]lighting.Light, lighting.MaxLights)
	require.NoError(t, lighting.ApplyLights(n, lights))
	out := make([]string, 0, len(n))
	for name := range n {
		out = append(out, name)
	}
	return out
}

func TestShaderInterfaces(t *testing.T) {
	camera := []string{"uModel", "uView", "uProjection"}
	lit := append(append([]string{"uEyePosition"}, camera...), lightingUniforms(t)...)

	tests := []struct {
		vert, frag string
		attribs    []string
		uniforms   []string
	}{
		{"shaders/vSimple.vert", "shaders/fSimple.frag", []string{"vPosition"}, nil},
		{"shaders/vLab21.vert", "shaders/fColour.frag", []string{"vPosition", "vColour"}, nil},
		{"shaders/vLab22.vert", "shaders/fColour.frag", []string{"vPosition", "vColour"}, camera},
		{"shaders/vPassThrough.vert", "shaders/fLighting.frag", []string{"vPosition", "vNormal"}, lit},
		{"shaders/vTexture.vert", "shaders/fTexture.frag", []string{"vPosition", "vNormal", "vTexCoords"},
			append([]string{"uTextureSampler"}, lit...)},
	}
	for _, tt := range tests {
		t.Run(tt.frag, func(t *testing.T) {
			p := linkProgram(t, tt.vert, tt.frag)
			for _, a := range tt.attribs {
				assert.True(t, p.inputs[a], "attribute %s is not declared in %s", a, tt.vert)
			}
			for _, u := range tt.uniforms {
				p.assertUniform(t, u)
			}
		})
	}
}

func TestLightArrayMatchesMaxLights(t *testing.T) {
	for vert, frag := range map[string]string{
		"shaders/vPassThrough.vert": "shaders/fLighting.frag",
		"shaders/vTexture.vert":     "shaders/fTexture.frag",
	} {
		p := linkProgram(t, vert, frag)
		assert.Equal(t, lighting.MaxLights, p.uniforms["uLight"].size, frag)
	}
}
