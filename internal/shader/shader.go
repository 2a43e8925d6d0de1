// Package shader compiles and links vertex/fragment shader pairs and
// exposes their attribute and uniform locations.
package shader

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Program is a linked shader program.
type Program struct {
	ID       uint32
	uniforms map[string]int32
}

// Load reads a vertex and a fragment shader from fsys and links them.
func Load(fsys fs.FS, vertexPath, fragmentPath string) (*Program, error) {
	vertexSource, err := readSource(fsys, vertexPath)
	if err != nil {
		return nil, err
	}
	fragmentSource, err := readSource(fsys, fragmentPath)
	if err != nil {
		return nil, err
	}
	return New(vertexSource, fragmentSource)
}

// New compiles NUL-terminated shader sources and links them into a program.
func New(vertexSource, fragmentSource string) (*Program, error) {
	id, err := newProgram(vertexSource, fragmentSource)
	if err != nil {
		return nil, err
	}
	return &Program{ID: id, uniforms: map[string]int32{}}, nil
}

// readSource loads a GLSL file as a NUL-terminated string for gl.Strs.
func readSource(fsys fs.FS, path string) (string, error) {
	b, err := fs.ReadFile(fsys, path)
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", path, err)
	}
	if len(b) == 0 || b[len(b)-1] != 0 {
		b = append(b, 0)
	}
	return string(b), nil
}

func (p *Program) Use() { gl.UseProgram(p.ID) }

// Delete unbinds and frees the program.
func (p *Program) Delete() {
	gl.UseProgram(0)
	gl.DeleteProgram(p.ID)
}

// Attrib returns the location of a vertex attribute, or -1 if the program has none by that name.
func (p *Program) Attrib(name string) int32 {
	return gl.GetAttribLocation(p.ID, gl.Str(name+"\x00"))
}

// Uniform returns the cached location of a uniform, or -1.
func (p *Program) Uniform(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.ID, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

// The setters below write to the currently bound program.

func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.Uniform(name), 1, false, &m[0])
}

func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3fv(p.Uniform(name), 1, &v[0])
}

func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	gl.Uniform4fv(p.Uniform(name), 1, &v[0])
}

func (p *Program) SetFloat(name string, f float32) {
	gl.Uniform1f(p.Uniform(name), f)
}

func (p *Program) SetInt(name string, i int32) {
	gl.Uniform1i(p.Uniform(name), i)
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {

	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()

	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	// flagged for deletion once the program is gone
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {

		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return 0, fmt.Errorf("failed to link program: %v", trimLog(log))

	}

	return program, nil

}

func compileShader(source string, shaderType uint32) (uint32, error) {

	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {

		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("failed to compile %v shader: %v", shaderKind(shaderType), trimLog(log))

	}

	return shader, nil

}

func shaderKind(shaderType uint32) string {
	switch shaderType {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	default:
		return fmt.Sprintf("%#x", shaderType)
	}
}

func trimLog(log string) string {
	return strings.TrimSpace(strings.TrimRight(log, "\x00"))
}
