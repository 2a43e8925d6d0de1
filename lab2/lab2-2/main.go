// Lab 2.2 draws one model twice through a perspective camera that the
// keyboard slides along the view axes.
package main

import (
	"flag"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/paperboard/labs3d/assets"
	"github.com/paperboard/labs3d/internal/camera"
	"github.com/paperboard/labs3d/internal/config"
	"github.com/paperboard/labs3d/internal/glutil"
	"github.com/paperboard/labs3d/internal/input"
	"github.com/paperboard/labs3d/internal/model"
	"github.com/paperboard/labs3d/internal/shader"
	"github.com/paperboard/labs3d/internal/window"
)

var defaults = config.Config{
	Window: config.Window{
		Title:      "Lab 2_2 Understanding the Camera",
		Width:      800,
		Height:     600,
		ClearColor: config.MustColor("dodgerblue"),
	},
	Camera: config.Camera{MoveStep: 0.01, Near: 0.5, Far: 5},
	Models: map[string]string{"square": "models/lab22model.sjg"},
}

// the same model placed twice
var placements = []mgl32.Mat4{
	mgl32.Translate3D(0.5, 0, 0).Mul4(mgl32.HomogRotate3DZ(0.8)),
	mgl32.Translate3D(-0.5, 0.5, 0).Mul4(mgl32.HomogRotate3DZ(0.8)),
}

func init() {
	// glfw must be on main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in settings")
	flag.Parse()

	cfg, err := config.Load(*configPath, defaults)
	if err != nil {
		slog.Error("lab2-2: config", "err", err)
		os.Exit(1)
	}
	keys, err := cfg.Keymap(input.Translate())
	if err != nil {
		slog.Error("lab2-2: keys", "err", err)
		os.Exit(1)
	}

	err = window.Run(window.Config{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		VSync:  cfg.Window.VSync,
	}, &lab{cfg: cfg, keys: keys})
	if err != nil {
		slog.Error("lab2-2", "err", err)
		os.Exit(1)
	}
}

type lab struct {
	window.Base
	cfg     config.Config
	keys    input.Keymap
	program *shader.Program
	vao     glutil.VertexArrays
	vbo     glutil.Buffers
	mesh    glutil.Object
	camera  *camera.Camera
}

func (l *lab) OnLoad(*window.Window) error {
	// cleared background colour comes from the config
	c := l.cfg.Window.ClearColor.Floats()
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)

	fsys := assets.FS(l.cfg.Assets)
	// load game objects
	name := l.cfg.Model("square", "models/lab22model.sjg")
	m, err := model.LoadLogged(fsys, name, "")
	if err != nil {
		return err
	}

	// create shader program
	l.program, err = shader.Load(fsys, "shaders/vLab22.vert", "shaders/fColour.frag")
	if err != nil {
		return err
	}
	l.program.Use()

	// camera starts 2 units back from the model
	l.camera = camera.New(mgl32.Translate3D(0, 0, -2))

	layout := glutil.VertexLayout{
		Stride: m.Stride,
		Attributes: []glutil.Attribute{
			{Location: l.program.Attrib("vPosition"), Size: 3, Offset: 0},
			{Location: l.program.Attrib("vColour"), Size: 3, Offset: 3},
		},
	}
	// prepare vao/vbo/ibo buffers
	l.vao = glutil.GenVertexArrays(1)
	l.vbo = glutil.GenBuffers(2)
	l.mesh, err = glutil.UploadObject(l.vao[0], l.vbo[0], l.vbo[1], m.Vertices, m.Indices, layout, gl.TRIANGLES)
	return err
}

func (l *lab) OnResize(_ *window.Window, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	l.program.Use()
	l.program.SetMat4("uProjection", camera.Perspective(width, height, l.cfg.Camera.Near, l.cfg.Camera.Far))
}

func (l *lab) OnKeyPress(_ *window.Window, key rune) {
	a, ok := l.keys.Lookup(key)
	if !ok {
		return
	}
	l.camera.Apply(a, camera.Steps{Move: l.cfg.Camera.MoveStep})
}

func (l *lab) OnRenderFrame(*window.Window, float64) {
	// clear screen
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	l.program.Use()
	l.program.SetMat4("uView", l.camera.View)
	for _, m := range placements {
		l.program.SetMat4("uModel", m)
		l.mesh.Draw()
	}
	gl.BindVertexArray(0)
}

func (l *lab) OnUnload(*window.Window) {
	l.vbo.Delete()
	l.vao.Delete()
	l.program.Delete()
}
