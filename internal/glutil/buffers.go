// Package glutil holds the buffer and vertex-array plumbing shared by the labs.
package glutil

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
)

const (
	BytesFloat32 = 4 // a float32 is 4 bytes
	BytesUint32  = 4 // a uint32 is 4 bytes
)

// ErrBufferSize is matched by every *BufferSizeError.
var ErrBufferSize = errors.New("buffer data not loaded onto graphics card correctly")

// ErrNoData is returned for an upload with nothing to upload.
var ErrNoData = errors.New("no data to upload")

// BufferSizeError reports a GL_BUFFER_SIZE readback that differs from the uploaded byte count.
type BufferSizeError struct {
	Target string // "vertex" or "index"
	Want   int
	Got    int
}

func (e *BufferSizeError) Error() string {
	return fmt.Sprintf("%s data not loaded onto graphics card correctly: uploaded %d bytes, buffer holds %d", e.Target, e.Want, e.Got)
}

func (e *BufferSizeError) Is(target error) bool { return target == ErrBufferSize }

func verifySize(target string, want, got int) error {
	if want != got {
		return &BufferSizeError{Target: target, Want: want, Got: got}
	}
	return nil
}

// Buffers is a set of buffer object names generated together and deleted together.
type Buffers []uint32

// GenBuffers allocates n buffer objects.
func GenBuffers(n int) Buffers {
	if n <= 0 {
		return Buffers{}
	}
	b := make(Buffers, n)
	gl.GenBuffers(int32(n), &b[0])
	return b
}

// Delete unbinds the buffer targets and frees every buffer in the set.
func (b Buffers) Delete() {
	if len(b) == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	gl.DeleteBuffers(int32(len(b)), &b[0])
}

// VertexArrays is a set of vertex array object names.
type VertexArrays []uint32

// GenVertexArrays allocates n vertex array objects.
func GenVertexArrays(n int) VertexArrays {
	if n <= 0 {
		return VertexArrays{}
	}
	v := make(VertexArrays, n)
	gl.GenVertexArrays(int32(n), &v[0])
	return v
}

// Delete unbinds the current vertex array and frees every array in the set.
func (v VertexArrays) Delete() {
	if len(v) == 0 {
		return
	}
	gl.BindVertexArray(0)
	gl.DeleteVertexArrays(int32(len(v)), &v[0])
}

// UploadVertices copies vertices into vbo and verifies the stored size.
// The buffer stays bound to GL_ARRAY_BUFFER.
func UploadVertices(vbo uint32, vertices []float32) error {
	if len(vertices) == 0 {
		return fmt.Errorf("vertex buffer: %w", ErrNoData)
	}
	want := len(vertices) * BytesFloat32
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, want, gl.Ptr(vertices), gl.STATIC_DRAW)

	var size int32
	gl.GetBufferParameteriv(gl.ARRAY_BUFFER, gl.BUFFER_SIZE, &size)
	return verifySize("vertex", want, int(size))
}

// UploadIndices copies indices into ibo and verifies the stored size.
// The buffer stays bound to GL_ELEMENT_ARRAY_BUFFER, which a bound VAO records.
func UploadIndices(ibo uint32, indices []uint32) error {
	if len(indices) == 0 {
		return fmt.Errorf("index buffer: %w", ErrNoData)
	}
	want := len(indices) * BytesUint32
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, want, gl.Ptr(indices), gl.STATIC_DRAW)

	var size int32
	gl.GetBufferParameteriv(gl.ELEMENT_ARRAY_BUFFER, gl.BUFFER_SIZE, &size)
	return verifySize("index", want, int(size))
}
