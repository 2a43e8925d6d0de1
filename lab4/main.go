// Lab 4 maps an image onto a lit floor and cube.
package main

import (
	"errors"
	"flag"
	"image"
	"io/fs"
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
	"github.com/paperboard/labs3d/internal/texture"
	"github.com/paperboard/labs3d/internal/window"
)

var defaults = config.Config{
	Window: config.Window{
		Title:      "Lab 4 Texturing",
		Width:      800,
		Height:     600,
		ClearColor: config.MustColor("cadetblue"),
	},
	Camera:  config.Camera{MoveStep: 0.05, TurnStep: 0.025, Near: 0.5, Far: 25},
	Texture: "textures/ground.bmp",
}

// x, y, z, normal, u, v; the texture repeats ten times across the floor
var floorVertices = []float32{
	-10, 0, -10, 0, 1, 0, 0, 10,
	-10, 0, 10, 0, 1, 0, 0, 0,
	10, 0, 10, 0, 1, 0, 10, 0,
	10, 0, -10, 0, 1, 0, 10, 10,
}

var lights = []lighting.Light{
	lighting.White(mgl32.Vec3{2, 4, -8.5}, 0.4, 0.8, 0.6),
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
		slog.Error("lab4: config", "err", err)
		os.Exit(1)
	}
	keys, err := cfg.Keymap(input.FirstPerson())
	if err != nil {
		slog.Error("lab4: keys", "err", err)
		os.Exit(1)
	}

	err = window.Run(window.Config{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		VSync:  cfg.Window.VSync,
	}, &lab{cfg: cfg, keys: keys})
	if err != nil {
		slog.Error("lab4", "err", err)
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
	tex     uint32
	camera  *camera.Camera

	floor, cube            glutil.Object
	groundModel, cubeModel mgl32.Mat4
}

// loadImage reads the configured texture, or a checkerboard when there is none.
func loadImage(fsys fs.FS, name string) (*image.RGBA, error) {
	img, err := texture.Open(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Warn("texture missing, using checkerboard", "name", name)
		return texture.Checkerboard(256, 8, config.MustColor("white").NRGBA(), config.MustColor("gray").NRGBA()), nil
	}
	return img, err
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
	l.program, err = shader.Load(fsys, "shaders/vTexture.vert", "shaders/fTexture.frag")
	if err != nil {
		return err
	}
	l.program.Use()

	// load texture into unit 0
	img, err := loadImage(fsys, l.cfg.Texture)
	if err != nil {
		return err
	}
	if l.tex, err = texture.Upload(img); err != nil {
		return err
	}
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, l.tex)
	l.program.SetInt("uTextureSampler", 0)

	layout := glutil.VertexLayout{
		Stride: model.TexturedCubeStride,
		Attributes: []glutil.Attribute{
			{Location: l.program.Attrib("vPosition"), Size: 3, Offset: 0},
			{Location: l.program.Attrib("vNormal"), Size: 3, Offset: 3},
			{Location: l.program.Attrib("vTexCoords"), Size: 2, Offset: 6},
		},
	}

	// prepare vao/vbo/ibo buffers
	l.vao = glutil.GenVertexArrays(2)
	l.vbo = glutil.GenBuffers(3)

	l.floor, err = glutil.UploadObject(l.vao[0], l.vbo[0], 0, floorVertices, nil, layout, gl.TRIANGLE_FAN)
	if err != nil {
		return err
	}
	// make textured cube
	cube := model.TexturedCube(2)
	l.cube, err = glutil.UploadObject(l.vao[1], l.vbo[1], l.vbo[2], cube.Vertices, cube.Indices, layout, gl.TRIANGLES)
	if err != nil {
		return err
	}

	// calculate camera matrices
	l.camera = camera.New(camera.MainView)
	l.uploadView()

	l.groundModel = mgl32.Translate3D(0, 0, -5)
	l.cubeModel = mgl32.Translate3D(0, 1, -5)

	lighting.Apply(l.program, lighting.Chrome)
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
		l.cubeModel = camera.SpinInPlace(l.cubeModel, -turn)
	case input.SpinRight:
		l.cubeModel = camera.SpinInPlace(l.cubeModel, turn)
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
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, l.tex)

	l.program.SetMat4("uModel", l.groundModel)
	l.floor.Draw()

	l.program.SetMat4("uModel", camera.InGround(l.cubeModel, l.groundModel))
	l.cube.Draw()

	gl.BindVertexArray(0)
}

func (l *lab) OnUnload(*window.Window) {
	texture.Delete(l.tex)
	l.vbo.Delete()
	l.vao.Delete()
	l.program.Delete()
}
