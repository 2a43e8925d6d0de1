// Lab 1 draws a pentagon from an indexed vertex buffer.
package main

import (
	"flag"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/paperboard/labs3d/assets"
	"github.com/paperboard/labs3d/internal/config"
	"github.com/paperboard/labs3d/internal/glutil"
	"github.com/paperboard/labs3d/internal/shader"
	"github.com/paperboard/labs3d/internal/window"
)

var defaults = config.Config{
	Window: config.Window{
		Title:      "Lab 1 Hello, Triangle",
		Width:      800,
		Height:     600,
		ClearColor: config.MustColor("gold"),
	},
	Camera: config.Camera{Near: 0.5, Far: 25},
}

// pentagon outline, anti-clockwise from the top
var vertices = []float32{
	0.0, 0.8,
	0.8, 0.4,
	0.6, -0.6,
	-0.6, -0.6,
	-0.8, 0.4,
}

// three triangles fanning out from the top vertex
var indices = []uint32{
	0, 4, 3,
	0, 3, 2,
	0, 2, 1,
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
		slog.Error("lab1: config", "err", err)
		os.Exit(1)
	}

	err = window.Run(window.Config{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		VSync:  cfg.Window.VSync,
	}, &lab{cfg: cfg})
	if err != nil {
		slog.Error("lab1", "err", err)
		os.Exit(1)
	}
}

type lab struct {
	window.Base
	cfg     config.Config
	program *shader.Program
	vao     glutil.VertexArrays
	vbo     glutil.Buffers
	shape   glutil.Object
}

func (l *lab) OnLoad(*window.Window) error {
	// cleared background colour comes from the config
	c := l.cfg.Window.ClearColor.Floats()
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Enable(gl.CULL_FACE)

	var err error
	// create shader program
	l.program, err = shader.Load(assets.FS(l.cfg.Assets), "shaders/vSimple.vert", "shaders/fSimple.frag")
	if err != nil {
		return err
	}
	l.program.Use()

	l.vao = glutil.GenVertexArrays(1)
	l.vbo = glutil.GenBuffers(2)

	layout := glutil.VertexLayout{
		Stride: 2,
		Attributes: []glutil.Attribute{
			{Location: l.program.Attrib("vPosition"), Size: 2},
		},
	}
	// copy the pentagon into the buffers
	l.shape, err = glutil.UploadObject(l.vao[0], l.vbo[0], l.vbo[1], vertices, indices, layout, gl.TRIANGLES)
	return err
}

func (l *lab) OnResize(_ *window.Window, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (l *lab) OnRenderFrame(*window.Window, float64) {
	// clear screen
	gl.Clear(gl.COLOR_BUFFER_BIT)

	l.program.Use()
	l.shape.Draw()
	gl.BindVertexArray(0)
}

func (l *lab) OnUnload(*window.Window) {
	l.vbo.Delete()
	l.vao.Delete()
	l.program.Delete()
}
