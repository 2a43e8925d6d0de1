package glutil

import "github.com/go-gl/gl/v3.3-core/gl"

// Attribute describes one float attribute inside an interleaved vertex.
type Attribute struct {
	Location int32 // from glGetAttribLocation; -1 means the shader dropped it
	Size     int32 // components, e.g. 3 for x,y,z
	Offset   int   // in floats from the start of the vertex
}

// VertexLayout is an interleaved float vertex format.
type VertexLayout struct {
	Stride     int // floats per vertex
	Attributes []Attribute
}

// Enabled returns the attributes the shader actually consumes.
func (l VertexLayout) Enabled() []Attribute {
	out := make([]Attribute, 0, len(l.Attributes))
	for _, a := range l.Attributes {
		if a.Location >= 0 {
			out = append(out, a)
		}
	}
	return out
}

// Apply wires the layout to the buffer bound to GL_ARRAY_BUFFER.
// Call it with the target vertex array bound.
func (l VertexLayout) Apply() {
	stride := int32(l.Stride * BytesFloat32)
	for _, a := range l.Enabled() {
		loc := uint32(a.Location)
		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribPointer(loc, a.Size, gl.FLOAT, false, stride, gl.PtrOffset(a.Offset*BytesFloat32))
	}
}
