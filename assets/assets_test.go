package assets

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperboard/labs3d/internal/model"
)

func TestOverlay(t *testing.T) {
	top := fstest.MapFS{"shaders/a.vert": {Data: []byte("top")}}
	bottom := fstest.MapFS{
		"shaders/a.vert": {Data: []byte("bottom")},
		"shaders/b.frag": {Data: []byte("only bottom")},
	}
	o := Overlay{top, bottom}

	b, err := fs.ReadFile(o, "shaders/a.vert")
	require.NoError(t, err)
	assert.Equal(t, "top", string(b))

	b, err = fs.ReadFile(o, "shaders/b.frag")
	require.NoError(t, err)
	assert.Equal(t, "only bottom", string(b))

	_, err = o.Open("shaders/c.frag")
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, err = o.Open("../escape")
	assert.True(t, errors.Is(err, fs.ErrInvalid))
}

func TestEmbeddedShaders(t *testing.T) {
	for _, name := range []string{
		"shaders/vSimple.vert", "shaders/fSimple.frag",
		"shaders/vLab21.vert", "shaders/fColour.frag",
		"shaders/vLab22.vert",
		"shaders/vPassThrough.vert", "shaders/fLighting.frag",
		"shaders/vTexture.vert", "shaders/fTexture.frag",
	} {
		_, err := fs.Stat(Embedded(), name)
		assert.NoError(t, err, name)
	}
}

func TestEmbeddedLab22Model(t *testing.T) {
	m, err := model.Load(FS(""), "models/lab22model.sjg")
	require.NoError(t, err)
	assert.NoError(t, m.Validate())
	assert.NotEmpty(t, m.Indices)
}

func TestFSFallsBackToEmbedded(t *testing.T) {
	fsys := FS(t.TempDir())
	_, err := fs.Stat(fsys, "shaders/vLab22.vert")
	assert.NoError(t, err)
}
