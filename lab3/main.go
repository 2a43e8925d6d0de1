// Lab 3 lights a floor, an armadillo and a cylinder with a point light and
// per-object materials, viewed through a first-person camera.
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
	"github.com/paperboard/labs3d/internal/lighting"
	"github.com/paperboard/labs3d/internal/model"
	"github.com/paperboard/labs3d/internal/shader"
	"github.com/paperboard/labs3d/internal/window"
)

var defaults = config.Config{
	Window: config.Window{
		Title:      "Lab 3 Lighting and Material Properties",
		Width:      800,
		Height:     600,
		ClearColor: config.MustColor("forestgreen"),
	},
	Camera: config.Camera{MoveStep: 0.05, TurnStep: 0.025, Near: 0.5, Far: 25},
	Models: map[string]string{
		"armadillo": "models/model.bin",
		"cylinder":  "models/cylinder.bin",
	},
}

// x, y, z, normal
var floorVertices = []float32{
	-10, 0, -10, 0, 1, 0,
	-10, 0, 10, 0, 1, 0,
	10, 0, 10, 0, 1, 0,
	10, 0, -10, 0, 1, 0,
}

var lights = []lighting.Light{
	lighting.White(mgl32.Vec3{2, 4, -8.5}, 0.5, 0.8, 0.4),
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
		slog.Error("lab3: config", "err", err)
		os.Exit(1)
	}
	keys, err := cfg.Keymap(input.FirstPerson())
	if err != nil {
		slog.Error("lab3: keys", "err", err)
		os.Exit(1)
	}

	err = window.Run(window.Config{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		VSync:  cfg.Window.VSync,
	}, &lab{cfg: cfg, keys: keys})
	if err != nil {
		slog.Error("lab3", "err", err)
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
	camera  *camera.Camera

	floor, armadillo, cylinder                 glutil.Object
	groundModel, armadilloModel, cylinderModel mgl32.Mat4
}

func (l *lab) OnLoad(*window.Window) error {
	// cleared background colour comes from the config
	c := l.cfg.Window.ClearColor.Floats()
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)

	fsys := assets.FS(l.cfg.Assets)

	var err error
	// create shader program
	l.program, err = shader.Load(fsys, "shaders/vPassThrough.vert", "shaders/fLighting.frag")
	if err != nil {
		return err
	}
	l.program.Use()

	layout := glutil.VertexLayout{
		Stride: 6,
		Attributes: []glutil.Attribute{
			{Location: l.program.Attrib("vPosition"), Size: 3, Offset: 0},
			{Location: l.program.Attrib("vNormal"), Size: 3, Offset: 3},
		},
	}

	// prepare vao/vbo/ibo buffers
	l.vao = glutil.GenVertexArrays(3)
	l.vbo = glutil.GenBuffers(5)

	l.floor, err = glutil.UploadObject(l.vao[0], l.vbo[0], 0, floorVertices, nil, layout, gl.TRIANGLE_FAN)
	if err != nil {
		return err
	}

	// load game objects
	armadillo, err := model.LoadLogged(fsys, l.cfg.Model("armadillo", ""), "builtin:sphere")
	if err != nil {
		return err
	}
	l.armadillo, err = glutil.UploadObject(l.vao[1], l.vbo[1], l.vbo[2], armadillo.Vertices, armadillo.Indices, layout, gl.TRIANGLES)
	if err != nil {
		return err
	}

	cylinder, err := model.LoadLogged(fsys, l.cfg.Model("cylinder", ""), "builtin:cylinder")
	if err != nil {
		return err
	}
	l.cylinder, err = glutil.UploadObject(l.vao[2], l.vbo[3], l.vbo[4], cylinder.Vertices, cylinder.Indices, layout, gl.TRIANGLES)
	if err != nil {
		return err
	}

	// calculate camera matrices
	l.camera = camera.New(camera.MainView)
	l.uploadView()

	l.groundModel = mgl32.Translate3D(0, 0, -5)
	l.armadilloModel = mgl32.Translate3D(0, 3, -5)
	l.cylinderModel = mgl32.Translate3D(0, 1, -5)

	// upload the light once; it never moves
	return lighting.ApplyLights(l.program, lights)
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
	turn := l.cfg.Camera.TurnStep
	switch a {
	case input.SpinLeft:
		l.armadilloModel = camera.SpinInPlace(l.armadilloModel, -turn)
	case input.SpinRight:
		l.armadilloModel = camera.SpinInPlace(l.armadilloModel, turn)
	default:
		if l.camera.Apply(a, camera.Steps{Move: l.cfg.Camera.MoveStep, Turn: turn}) {
			l.uploadView()
		}
	}
}

func (l *lab) uploadView() {
	l.program.Use()
	l.program.SetMat4("uView", l.camera.View)
	l.program.SetVec4("uEyePosition", l.camera.EyePosition())
}

func (l *lab) OnRenderFrame(*window.Window, float64) {
	// clear screen
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	l.program.Use()

	// floor
	lighting.Apply(l.program, lighting.Emerald)
	l.program.SetMat4("uModel", l.groundModel)
	l.floor.Draw()

	// armadillo
	lighting.Apply(l.program, lighting.Gold)
	l.program.SetMat4("uModel", camera.InGround(l.armadilloModel, l.groundModel))
	l.armadillo.Draw()

	// cylinder
	lighting.Apply(l.program, lighting.YellowRubber)
	l.program.SetMat4("uModel", camera.InGround(l.cylinderModel, l.groundModel))
	l.cylinder.Draw()

	gl.BindVertexArray(0)
}

func (l *lab) OnUnload(*window.Window) {
	l.vbo.Delete()
	l.vao.Delete()
	l.program.Delete()
}
