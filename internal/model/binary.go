package model

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// maxCount bounds header counts.
const maxCount = 1 << 24

// readChunk bounds each decode so slices only grow as data arrives.
const readChunk = 4096

// ReadBinary decodes the .bin layout: little-endian int32 vertex count,
// count*6 float32 (position, normal), int32 triangle count, count*3 uint32 indices.
func ReadBinary(r io.Reader) (*Mesh, error) {
	br := bufio.NewReader(r)

	vertexCount, err := readCount(br, "vertex")
	if err != nil {
		return nil, err
	}
	vertices, err := readValues[float32](br, vertexCount*FloatsPerVertex)
	if err != nil {
		return nil, fmt.Errorf("%w: vertex data: %v", ErrFormat, err)
	}

	triangleCount, err := readCount(br, "triangle")
	if err != nil {
		return nil, err
	}
	indices, err := readValues[uint32](br, triangleCount*3)
	if err != nil {
		return nil, fmt.Errorf("%w: index data: %v", ErrFormat, err)
	}

	m := &Mesh{Vertices: vertices, Indices: indices, Stride: FloatsPerVertex}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// readValues decodes n little-endian values in chunks of readChunk.
func readValues[T float32 | uint32](r io.Reader, n int) ([]T, error) {
	out := make([]T, 0, min(n, readChunk))
	chunk := make([]T, min(n, readChunk))
	for len(out) < n {
		c := chunk[:min(n-len(out), readChunk)]
		if err := binary.Read(r, binary.LittleEndian, c); err != nil {
			return nil, err
		}
		out = append(out, c...)
	}
	return out, nil
}

func readCount(r io.Reader, what string) (int, error) {
	var n int32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return 0, fmt.Errorf("%w: %s count: %v", ErrFormat, what, err)
	}
	if n < 0 || n > maxCount {
		return 0, fmt.Errorf("%w: %s count %d", ErrFormat, what, n)
	}
	return int(n), nil
}

// WriteBinary encodes m in the .bin layout. m must be a stride-6 triangle mesh.
func WriteBinary(w io.Writer, m *Mesh) error {
	if m.Stride != FloatsPerVertex || len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: stride %d with %d indices", ErrFormat, m.Stride, len(m.Indices))
	}
	bw := bufio.NewWriter(w)
	for _, v := range []any{int32(m.VertexCount()), m.Vertices, int32(len(m.Indices) / 3), m.Indices} {
		if err := binary.Write(bw, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	return bw.Flush()
}
