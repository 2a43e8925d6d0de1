// Lab 2.1 gives a triangle and a square their own vertex arrays with
// per-vertex colour and lets the depth test decide which is in front.
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
		Title:      "Lab 2_1 Linking to Shaders and VAOs",
		Width:      800,
		Height:     600,
		ClearColor: config.MustColor("cadetblue"),
	},
	Camera: config.Camera{Near: 0.5, Far: 25},
}

// x, y, z, r, g, b
var (
	triangleVertices = []float32{
		-0.8, 0.8, 0.4, 0.644, 0.51, 0.8,
		-0.6, -0.4, 0.4, 0.284, 0.22, 0.4,
		0.2, 0.2, 0.4, 0.934, 0.99, 1.0,
	}
	triangleIndices = []uint32{0, 1, 2}

	squareVertices = []float32{
		-0.2, -0.4, 0.2, 0.378, 1.0, 0.8,
		0.8, -0.4, 0.2, 0.642, 0.45, 0.2,
		0.8, 0.6, 0.2, 0.198, 0.7, 0.3,
		-0.2, 0.6, 0.2, 0.843, 0.9, 0.345,
	}
	squareIndices = []uint32{0, 1, 2, 3}
)

func init() {
	// glfw must be on main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in settings")
	flag.Parse()

	cfg, err := config.Load(*configPath, defaults)
	if err != nil {
		slog.Error("lab2-1: config", "err", err)
		os.Exit(1)
	}

	err = window.Run(window.Config{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		VSync:  cfg.Window.VSync,
	}, &lab{cfg: cfg})
	if err != nil {
		slog.Error("lab2-1", "err", err)
		os.Exit(1)
	}
}

type lab struct {
	window.Base
	cfg      config.Config
	program  *shader.Program
	vao      glutil.VertexArrays
	vbo      glutil.Buffers
	triangle glutil.Object
	square   glutil.Object
}

func (l *lab) OnLoad(*window.Window) error {
	// cleared background colour comes from the config
	c := l.cfg.Window.ClearColor.Floats()
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Enable(gl.DEPTH_TEST)

	var err error
	// create shader program
	l.program, err = shader.Load(assets.FS(l.cfg.Assets), "shaders/vLab21.vert", "shaders/fColour.frag")
	if err != nil {
		return err
	}
	l.program.Use()

	layout := glutil.VertexLayout{
		Stride: 6,
		Attributes: []glutil.Attribute{
			{Location: l.program.Attrib("vPosition"), Size: 3, Offset: 0},
			{Location: l.program.Attrib("vColour"), Size: 3, Offset: 3},
		},
	}

	// prepare vao/vbo/ibo buffers
	l.vao = glutil.GenVertexArrays(2)
	l.vbo = glutil.GenBuffers(4)

	l.triangle, err = glutil.UploadObject(l.vao[0], l.vbo[0], l.vbo[1], triangleVertices, triangleIndices, layout, gl.TRIANGLES)
	if err != nil {
		return err
	}
	l.square, err = glutil.UploadObject(l.vao[1], l.vbo[2], l.vbo[3], squareVertices, squareIndices, layout, gl.TRIANGLE_FAN)
	return err
}

func (l *lab) OnResize(_ *window.Window, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (l *lab) OnRenderFrame(*window.Window, float64) {
	// clear screen
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	// square first; depth decides what the triangle covers
	l.square.Draw()
	l.triangle.Draw()

	gl.BindVertexArray(0)
}

func (l *lab) OnUnload(*window.Window) {
	l.vbo.Delete()
	l.vao.Delete()
	l.program.Delete()
}
