// ACW is the coursework scene: a floor, an armadillo, a cylinder and an
// orbiting cube under two lights, with main and birds-eye cameras.
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
		Title:      "3D Coursework",
		Width:      800,
		Height:     600,
		ClearColor: config.MustColor("sienna"),
	},
	Camera: config.Camera{MoveStep: 0.05, TurnStep: 0.025, Near: 0.5, Far: 25},
	Models: map[string]string{
		"armadillo": "models/model.bin",
		"cylinder":  "models/cylinder.bin",
	},
}

// cube orbit per update tick
const cubeOrbit = -0.025

// x, y, z, normal
var floorVertices = []float32{
	-10, 0, -10, 0, 1, 0,
	-10, 0, 10, 0, 1, 0,
	10, 0, 10, 0, 1, 0,
	10, 0, -10, 0, 1, 0,
}

var lights = []lighting.Light{
	lighting.White(mgl32.Vec3{2, 4, -8.5}, 0.8, 0.6, 0.78),
	lighting.White(mgl32.Vec3{8, 1, -8.5}, 0.1, 0.5, 0.5),
}

// scene is one mesh and where it sits relative to the ground.
type scene struct {
	object   glutil.Object
	model    mgl32.Mat4
	material lighting.Material
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
		slog.Error("acw: config", "err", err)
		os.Exit(1)
	}
	keys, err := cfg.Keymap(input.Coursework())
	if err != nil {
		slog.Error("acw: keys", "err", err)
		os.Exit(1)
	}

	err = window.Run(window.Config{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		VSync:  cfg.Window.VSync,
	}, &coursework{cfg: cfg, keys: keys})
	if err != nil {
		slog.Error("acw", "err", err)
		os.Exit(1)
	}
}

type coursework struct {
	window.Base
	cfg     config.Config
	keys    input.Keymap
	program *shader.Program
	vao     glutil.VertexArrays
	vbo     glutil.Buffers
	camera  *camera.Camera

	ground                           mgl32.Mat4
	floor, armadillo, cylinder, cube scene
}

func (c *coursework) OnLoad(*window.Window) error {
	// cleared background colour comes from the config
	bg := c.cfg.Window.ClearColor.Floats()
	gl.ClearColor(bg[0], bg[1], bg[2], bg[3])
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)

	fsys := assets.FS(c.cfg.Assets)

	var err error
	// create shader program
	c.program, err = shader.Load(fsys, "shaders/vPassThrough.vert", "shaders/fLighting.frag")
	if err != nil {
		return err
	}
	c.program.Use()

	layout := glutil.VertexLayout{
		Stride: model.FloatsPerVertex,
		Attributes: []glutil.Attribute{
			{Location: c.program.Attrib("vPosition"), Size: 3, Offset: 0},
			{Location: c.program.Attrib("vNormal"), Size: 3, Offset: 3},
		},
	}

	// load game objects
	armadillo, err := model.LoadLogged(fsys, c.cfg.Model("armadillo", ""), "builtin:sphere")
	if err != nil {
		return err
	}
	cylinder, err := model.LoadLogged(fsys, c.cfg.Model("cylinder", ""), "builtin:cylinder")
	if err != nil {
		return err
	}
	cube := model.CornerCube(2)

	// prepare vao/vbo/ibo buffers
	c.vao = glutil.GenVertexArrays(4)
	c.vbo = glutil.GenBuffers(7)

	upload := []struct {
		dst      *scene
		vao      uint32
		vbo, ibo uint32
		vertices []float32
		indices  []uint32
		mode     uint32
	}{
		{&c.floor, c.vao[0], c.vbo[0], 0, floorVertices, nil, gl.TRIANGLE_FAN},
		{&c.armadillo, c.vao[1], c.vbo[1], c.vbo[2], armadillo.Vertices, armadillo.Indices, gl.TRIANGLES},
		{&c.cylinder, c.vao[2], c.vbo[3], c.vbo[4], cylinder.Vertices, cylinder.Indices, gl.TRIANGLES},
		{&c.cube, c.vao[3], c.vbo[5], c.vbo[6], cube.Vertices, cube.Indices, gl.TRIANGLES},
	}
	for _, u := range upload {
		u.dst.object, err = glutil.UploadObject(u.vao, u.vbo, u.ibo, u.vertices, u.indices, layout, u.mode)
		if err != nil {
			return err
		}
	}

	// pre-gameloop setup: placements and materials
	c.ground = mgl32.Translate3D(0, 0, -6.5)
	c.floor.model = mgl32.Ident4()
	c.floor.material = lighting.Chrome
	c.armadillo.model = mgl32.Translate3D(0, 3, -5.5)
	c.armadillo.material = lighting.Emerald
	c.cylinder.model = mgl32.Translate3D(0, 1, -5.5)
	c.cylinder.material = lighting.Brass
	c.cube.model = mgl32.Translate3D(0, 0, -10.5)
	c.cube.material = lighting.Gold

	c.camera = camera.New(camera.MainView)
	c.uploadView()

	return lighting.ApplyLights(c.program, lights)
}

func (c *coursework) OnResize(_ *window.Window, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	c.program.Use()
	c.program.SetMat4("uProjection", camera.Perspective(width, height, c.cfg.Camera.Near, c.cfg.Camera.Far))
}

func (c *coursework) OnKeyPress(_ *window.Window, key rune) {
	a, ok := c.keys.Lookup(key)
	if !ok {
		return
	}
	turn := c.cfg.Camera.TurnStep
	switch a {
	case input.SpinLeft:
		c.armadillo.model = camera.SpinInPlace(c.armadillo.model, -turn)
	case input.SpinRight:
		c.armadillo.model = camera.SpinInPlace(c.armadillo.model, turn)
	default:
		if c.camera.Apply(a, camera.Steps{Move: c.cfg.Camera.MoveStep, Turn: turn}) {
			if a == input.BirdsEye || a == input.MainView || a == input.ToggleView {
				slog.Info("view changed", "mode", c.camera.Mode())
			}
			c.uploadView()
		}
	}
}

func (c *coursework) uploadView() {
	c.program.Use()
	c.program.SetMat4("uView", c.camera.View)
	c.program.SetVec4("uEyePosition", c.camera.EyePosition())
}

func (c *coursework) OnUpdateFrame(*window.Window, float64) {
	c.cube.model = camera.Orbit(c.cube.model, cubeOrbit)
}

func (c *coursework) OnRenderFrame(*window.Window, float64) {
	// clear screen
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	c.program.Use()

	// draw every object in ground space
	for _, s := range []*scene{&c.floor, &c.armadillo, &c.cylinder, &c.cube} {
		lighting.Apply(c.program, s.material)
		c.program.SetMat4("uModel", camera.InGround(s.model, c.ground))
		s.object.Draw()
	}

	gl.BindVertexArray(0)
}

func (c *coursework) OnUnload(*window.Window) {
	c.vbo.Delete()
	c.vao.Delete()
	c.program.Delete()
}
