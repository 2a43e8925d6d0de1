// Package model loads the lab mesh formats into interleaved vertex and index arrays.
package model

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"
)

// FloatsPerVertex is the interleaved width of every file mesh: x,y,z then three attribute floats.
const FloatsPerVertex = 6

// ErrFormat reports a mesh file that cannot be decoded.
var ErrFormat = errors.New("model: bad format")

// Mesh is interleaved vertex data plus triangle indices.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
	Stride   int // floats per vertex
}

// VertexCount is the number of interleaved vertices.
func (m *Mesh) VertexCount() int {
	if m.Stride == 0 {
		return 0
	}
	return len(m.Vertices) / m.Stride
}

// Validate checks the stride and that every index names an existing vertex.
func (m *Mesh) Validate() error {
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return fmt.Errorf("%w: empty mesh (%d floats, %d indices)", ErrFormat, len(m.Vertices), len(m.Indices))
	}
	if m.Stride <= 0 || len(m.Vertices)%m.Stride != 0 {
		return fmt.Errorf("%w: %d floats do not divide into stride %d", ErrFormat, len(m.Vertices), m.Stride)
	}
	n := uint32(m.VertexCount())
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("%w: index %d at %d out of range for %d vertices", ErrFormat, idx, i, n)
		}
	}
	return nil
}

// Load opens name from fsys and decodes it by extension (.bin or .sjg).
// Names with the builtin: prefix are generated instead of read.
func Load(fsys fs.FS, name string) (*Mesh, error) {
	if shape, ok := strings.CutPrefix(name, builtinPrefix); ok {
		return Builtin(shape)
	}

	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("load model %q: %w", name, err)
	}
	defer f.Close()

	var m *Mesh
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".bin":
		m, err = ReadBinary(f)
	case ".sjg":
		m, err = ReadText(f)
	default:
		err = fmt.Errorf("%w: unknown extension %q", ErrFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("load model %q: %w", name, err)
	}
	return m, nil
}

// LoadOrFallback loads name, or fallback when name does not exist.
// It reports whether the fallback was used.
func LoadOrFallback(fsys fs.FS, name, fallback string) (*Mesh, bool, error) {
	m, err := Load(fsys, name)
	if err == nil || fallback == "" || !errors.Is(err, fs.ErrNotExist) {
		return m, false, err
	}
	m, err = Load(fsys, fallback)
	return m, true, err
}

// LoadLogged is LoadOrFallback that logs the fallback and the loaded size.
func LoadLogged(fsys fs.FS, name, fallback string) (*Mesh, error) {
	m, usedFallback, err := LoadOrFallback(fsys, name, fallback)
	if err != nil {
		return nil, err
	}
	if usedFallback {
		slog.Warn("model missing, using fallback", "name", name, "fallback", fallback)
	}
	slog.Info("model loaded", "name", name, "vertices", m.VertexCount(), "triangles", len(m.Indices)/3)
	return m, nil
}
