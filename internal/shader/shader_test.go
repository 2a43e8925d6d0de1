package shader

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSource(t *testing.T) {
	fsys := fstest.MapFS{
		"shaders/plain.vert":      {Data: []byte("#version 330\nvoid main() {}\n")},
		"shaders/terminated.frag": {Data: []byte("void main() {}\n\x00")},
	}

	src, err := readSource(fsys, "shaders/plain.vert")
	require.NoError(t, err)
	assert.Equal(t, "#version 330\nvoid main() {}\n\x00", src)

	src, err = readSource(fsys, "shaders/terminated.frag")
	require.NoError(t, err)
	assert.Equal(t, "void main() {}\n\x00", src)

	_, err = readSource(fsys, "shaders/missing.frag")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "shaders/missing.frag")
}

func TestTrimLog(t *testing.T) {
	assert.Equal(t, "0:1: error", trimLog("0:1: error\n\x00\x00"))
}

func TestShaderKind(t *testing.T) {
	assert.Equal(t, "vertex", shaderKind(gl.VERTEX_SHADER))
	assert.Equal(t, "fragment", shaderKind(gl.FRAGMENT_SHADER))
}
