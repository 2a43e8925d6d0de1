package model

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadText decodes the .sjg layout: a vertex count line, one line of six
// floats per vertex (position, colour), a triangle count line and one line
// of three indices per triangle. Values are separated by commas or spaces;
// blank lines and lines starting with # are skipped.
func ReadText(r io.Reader) (*Mesh, error) {
	tr := &textReader{sc: bufio.NewScanner(r)}

	vertexCount, err := tr.count("vertex")
	if err != nil {
		return nil, err
	}
	vertices := make([]float32, 0, min(vertexCount*FloatsPerVertex, readChunk))
	for i := 0; i < vertexCount; i++ {
		fields, err := tr.fields(FloatsPerVertex)
		if err != nil {
			return nil, err
		}
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrFormat, tr.line, err)
			}
			vertices = append(vertices, float32(v))
		}
	}

	triangleCount, err := tr.count("triangle")
	if err != nil {
		return nil, err
	}
	indices := make([]uint32, 0, min(triangleCount*3, readChunk))
	for i := 0; i < triangleCount; i++ {
		fields, err := tr.fields(3)
		if err != nil {
			return nil, err
		}
		for _, f := range fields {
			idx, err := strconv.ParseUint(f, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrFormat, tr.line, err)
			}
			indices = append(indices, uint32(idx))
		}
	}

	m := &Mesh{Vertices: vertices, Indices: indices, Stride: FloatsPerVertex}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

type textReader struct {
	sc   *bufio.Scanner
	line int
}

func (tr *textReader) next() ([]string, error) {
	for tr.sc.Scan() {
		tr.line++
		text := strings.TrimSpace(tr.sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		return strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		}), nil
	}
	if err := tr.sc.Err(); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%w: unexpected end of file after line %d", ErrFormat, tr.line)
}

func (tr *textReader) fields(n int) ([]string, error) {
	fields, err := tr.next()
	if err != nil {
		return nil, err
	}
	if len(fields) != n {
		return nil, fmt.Errorf("%w: line %d: want %d values, got %d", ErrFormat, tr.line, n, len(fields))
	}
	return fields, nil
}

func (tr *textReader) count(what string) (int, error) {
	fields, err := tr.fields(1)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 || n > maxCount {
		return 0, fmt.Errorf("%w: line %d: bad %s count %q", ErrFormat, tr.line, what, fields[0])
	}
	return n, nil
}
