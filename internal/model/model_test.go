package model

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io/fs"
	"runtime"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const squareSJG = `4
-0.2, -0.2, 0, 1, 0, 0
 0.2, -0.2, 0, 0, 1, 0
 0.2,  0.2, 0, 0, 0, 1
-0.2,  0.2, 0, 1, 1, 0
2
0, 1, 2
0, 2, 3
`

func TestReadText(t *testing.T) {
	m, err := ReadText(strings.NewReader(squareSJG))
	require.NoError(t, err)
	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, m.Indices)
	assert.Equal(t, float32(-0.2), m.Vertices[0])
	assert.Equal(t, float32(1), m.Vertices[3])
}

func TestReadTextErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"negative count", "-1\n0\n"},
		{"short vertex", "1\n0 0 0 1 1\n0\n"},
		{"bad float", "1\n0 0 x 1 1 1\n0\n"},
		{"missing triangles", "1\n0 0 0 1 1 1\n"},
		{"index out of range", "1\n0 0 0 1 1 1\n1\n0 0 1\n"},
		{"no vertices or triangles", "0\n0\n"},
		{"no triangles", "1\n0 0 0 0 1 0\n0\n"},
		{"huge count", "16777216\n0 0 0 0 1 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadText(strings.NewReader(tt.src))
			assert.ErrorIs(t, err, ErrFormat)
		})
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	cube := Cube(2)
	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, cube))

	m, err := ReadBinary(&buf)
	require.NoError(t, err)
	assert.Equal(t, cube.Vertices, m.Vertices)
	assert.Equal(t, cube.Indices, m.Indices)
}

func TestReadBinaryTruncated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, int32(3)))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, []float32{1, 2, 3}))

	_, err := ReadBinary(&buf)
	assert.ErrorIs(t, err, ErrFormat)

	_, err = ReadBinary(bytes.NewReader([]byte{0xff, 0xff, 0xff, 0xff}))
	assert.ErrorIs(t, err, ErrFormat)
}

func binaryMesh(t *testing.T, vertexCount int32, vertices []float32, triangleCount int32, indices []uint32) *bytes.Reader {
	t.Helper()
	var buf bytes.Buffer
	for _, v := range []any{vertexCount, vertices, triangleCount, indices} {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, v))
	}
	return bytes.NewReader(buf.Bytes())
}

func TestReadBinaryRejectsEmpty(t *testing.T) {
	_, err := ReadBinary(binaryMesh(t, 0, []float32{}, 0, []uint32{}))
	assert.ErrorIs(t, err, ErrFormat)

	_, err = ReadBinary(binaryMesh(t, 1, []float32{0, 0, 0, 0, 1, 0}, 0, []uint32{}))
	assert.ErrorIs(t, err, ErrFormat)
}

func TestReadBinaryHugeCountIsCheap(t *testing.T) {
	header := binaryMesh(t, maxCount, []float32{0, 0, 0, 0, 1, 0}, 0, []uint32{})

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	_, err := ReadBinary(header)
	runtime.ReadMemStats(&after)

	assert.ErrorIs(t, err, ErrFormat)
	assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(1<<20))
}

func TestEmptyMeshIsInvalid(t *testing.T) {
	assert.ErrorIs(t, (&Mesh{Stride: FloatsPerVertex}).Validate(), ErrFormat)
	assert.ErrorIs(t, (&Mesh{Vertices: make([]float32, 6), Stride: FloatsPerVertex}).Validate(), ErrFormat)
}

func TestLoad(t *testing.T) {
	var bin bytes.Buffer
	require.NoError(t, WriteBinary(&bin, Cylinder(1, 2, 8)))
	fsys := fstest.MapFS{
		"models/square.sjg":   {Data: []byte(squareSJG)},
		"models/cylinder.bin": {Data: bin.Bytes()},
		"models/mesh.obj":     {Data: []byte("v 0 0 0")},
	}

	m, err := Load(fsys, "models/square.sjg")
	require.NoError(t, err)
	assert.Len(t, m.Indices, 6)

	m, err = Load(fsys, "models/cylinder.bin")
	require.NoError(t, err)
	assert.Equal(t, Cylinder(1, 2, 8).Indices, m.Indices)

	_, err = Load(fsys, "models/mesh.obj")
	assert.ErrorIs(t, err, ErrFormat)

	_, err = Load(fsys, "models/none.bin")
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	m, err = Load(fsys, "builtin:sphere")
	require.NoError(t, err)
	assert.NoError(t, m.Validate())

	_, err = Load(fsys, "builtin:teapot")
	assert.ErrorIs(t, err, ErrFormat)
}

func TestLoadOrFallback(t *testing.T) {
	fsys := fstest.MapFS{"models/square.sjg": {Data: []byte(squareSJG)}}

	m, used, err := LoadOrFallback(fsys, "models/square.sjg", "builtin:cube")
	require.NoError(t, err)
	assert.False(t, used)
	assert.Equal(t, 4, m.VertexCount())

	m, used, err = LoadOrFallback(fsys, "models/model.bin", "builtin:cube")
	require.NoError(t, err)
	assert.True(t, used)
	assert.Equal(t, 24, m.VertexCount())

	_, _, err = LoadOrFallback(fsys, "models/model.bin", "")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestBuiltinsAreValid(t *testing.T) {
	for _, shape := range []string{"sphere", "cylinder", "cube"} {
		m, err := Builtin(shape)
		require.NoError(t, err, shape)
		assert.NoError(t, m.Validate(), shape)
		assert.Zero(t, len(m.Indices)%3, shape)
	}
}

func TestCubeNormalsPointOutward(t *testing.T) {
	m := Cube(2)
	for i := 0; i < m.VertexCount(); i++ {
		v := m.Vertices[i*FloatsPerVertex : (i+1)*FloatsPerVertex]
		dot := v[0]*v[3] + v[1]*v[4] + v[2]*v[5]
		assert.InDelta(t, 1, dot, 1e-6)
	}
}

func TestTexturedCube(t *testing.T) {
	m := TexturedCube(2)
	require.NoError(t, m.Validate())
	assert.Equal(t, 24, m.VertexCount())
	assert.Len(t, m.Indices, 36)
	for i := 0; i < m.VertexCount(); i++ {
		v := m.Vertices[i*TexturedCubeStride : (i+1)*TexturedCubeStride]
		assert.Contains(t, []float32{0, 1}, v[6])
		assert.Contains(t, []float32{0, 1}, v[7])
	}
}

func TestCornerCube(t *testing.T) {
	m := CornerCube(2)
	require.NoError(t, m.Validate())
	assert.Equal(t, 8, m.VertexCount())
	assert.Len(t, m.Indices, 36)

	// every triangle faces away from the centre
	for i := 0; i < len(m.Indices); i += 3 {
		var p [3][3]float32
		for k := 0; k < 3; k++ {
			copy(p[k][:], m.Vertices[int(m.Indices[i+k])*FloatsPerVertex:])
		}
		var e1, e2 [3]float32
		for a := 0; a < 3; a++ {
			e1[a] = p[1][a] - p[0][a]
			e2[a] = p[2][a] - p[0][a]
		}
		n := [3]float32{
			e1[1]*e2[2] - e1[2]*e2[1],
			e1[2]*e2[0] - e1[0]*e2[2],
			e1[0]*e2[1] - e1[1]*e2[0],
		}
		outward := n[0]*p[0][0] + n[1]*p[0][1] + n[2]*p[0][2]
		assert.Greater(t, outward, float32(0), "triangle %d", i/3)
	}
}
