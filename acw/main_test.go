package main

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperboard/labs3d/internal/camera"
	"github.com/paperboard/labs3d/internal/config"
	"github.com/paperboard/labs3d/internal/input"
	"github.com/paperboard/labs3d/internal/lighting"
	"github.com/paperboard/labs3d/internal/model"
)

func TestDefaults(t *testing.T) {
	require.NoError(t, defaults.Validate())
	assert.Equal(t, "3D Coursework", defaults.Window.Title)
	assert.LessOrEqual(t, len(lights), lighting.MaxLights)
}

func TestFloor(t *testing.T) {
	// a fan of four corners, drawn without indices
	require.Zero(t, len(floorVertices)%model.FloatsPerVertex)
	assert.Equal(t, 4, len(floorVertices)/model.FloatsPerVertex)
}

func TestCubeOrbitKeepsHeightAndRadius(t *testing.T) {
	cube := mgl32.Translate3D(0, 0, -10.5)
	for i := 0; i < 100; i++ {
		cube = camera.Orbit(cube, cubeOrbit)
	}
	pos := cube.Col(3).Vec3()
	assert.InDelta(t, 0, pos.Y(), 1e-5)
	assert.InDelta(t, 10.5, pos.Len(), 1e-4)
}

func TestKeyPressWithoutGL(t *testing.T) {
	keys, err := defaults.Keymap(input.Coursework())
	require.NoError(t, err)

	c := &coursework{cfg: defaults, keys: keys}
	c.armadillo.model = mgl32.Translate3D(0, 3, -5.5)
	c.camera = camera.New(camera.MainView)

	// spinning the armadillo does not touch GL state
	c.OnKeyPress(nil, 'c')
	pos := c.armadillo.model.Col(3).Vec3()
	assert.InDelta(t, 0, pos.Sub(mgl32.Vec3{0, 3, -5.5}).Len(), 1e-5)
	assert.NotEqual(t, mgl32.Ident4().Col(0), c.armadillo.model.Col(0))
	assert.Equal(t, camera.Main, c.camera.Mode())

	c.OnKeyPress(nil, 'q')
	assert.Equal(t, camera.MainView, c.camera.View)
}

func TestConfigOverride(t *testing.T) {
	cfg, err := config.Parse([]byte("keys: {\"x\": birds_eye}\n"), defaults)
	require.NoError(t, err)
	keys, err := cfg.Keymap(input.Coursework())
	require.NoError(t, err)
	a, ok := keys.Lookup('x')
	assert.True(t, ok)
	assert.Equal(t, input.BirdsEye, a)
}
