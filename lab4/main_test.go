package main

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperboard/labs3d/internal/model"
)

func TestLoadImageFallsBackToCheckerboard(t *testing.T) {
	img, err := loadImage(fstest.MapFS{}, "textures/ground.bmp")
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.NotEqual(t, img.RGBAAt(0, 0), img.RGBAAt(32, 0))
}

func TestLoadImageRejectsGarbage(t *testing.T) {
	fsys := fstest.MapFS{"textures/ground.bmp": {Data: []byte("not an image")}}
	_, err := loadImage(fsys, "textures/ground.bmp")
	assert.Error(t, err)
}

func TestFloorLayout(t *testing.T) {
	// a fan of four corners, drawn without indices
	require.Zero(t, len(floorVertices)%model.TexturedCubeStride)
	assert.Equal(t, 4, len(floorVertices)/model.TexturedCubeStride)
}
