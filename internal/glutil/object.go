package glutil

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Object is geometry recorded in one vertex array, ready to draw.
type Object struct {
	VAO     uint32
	Mode    uint32 // primitive, e.g. gl.TRIANGLES or gl.TRIANGLE_FAN
	Count   int32  // indices when Indexed, vertices otherwise
	Indexed bool
}

// UploadObject binds vao, uploads vertices into vbo and, when indices is
// non-nil, indices into ibo, then wires layout. The vertex array is left unbound.
// Nothing touches GL when the inputs are unusable.
func UploadObject(vao, vbo, ibo uint32, vertices []float32, indices []uint32, layout VertexLayout, mode uint32) (Object, error) {
	if err := checkObject(vertices, indices, layout); err != nil {
		return Object{}, err
	}

	gl.BindVertexArray(vao)
	defer gl.BindVertexArray(0)

	if err := UploadVertices(vbo, vertices); err != nil {
		return Object{}, err
	}
	obj := Object{VAO: vao, Mode: mode, Count: int32(len(vertices) / layout.Stride)}
	if indices != nil {
		if err := UploadIndices(ibo, indices); err != nil {
			return Object{}, err
		}
		obj.Count, obj.Indexed = int32(len(indices)), true
	}
	layout.Apply()
	return obj, nil
}

func checkObject(vertices []float32, indices []uint32, layout VertexLayout) error {
	if layout.Stride <= 0 {
		return fmt.Errorf("vertex layout: stride %d", layout.Stride)
	}
	if len(layout.Enabled()) == 0 {
		return fmt.Errorf("vertex layout: no attribute is used by the shader")
	}
	if len(vertices) < layout.Stride {
		return fmt.Errorf("vertex buffer: %w", ErrNoData)
	}
	if indices != nil && len(indices) == 0 {
		return fmt.Errorf("index buffer: %w", ErrNoData)
	}
	return nil
}

// Draw binds the object's vertex array and issues its draw call.
func (o Object) Draw() {
	gl.BindVertexArray(o.VAO)
	if o.Indexed {
		gl.DrawElements(o.Mode, o.Count, gl.UNSIGNED_INT, gl.PtrOffset(0))
	} else {
		gl.DrawArrays(o.Mode, 0, o.Count)
	}
}
