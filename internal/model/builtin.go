package model

import (
	"fmt"
	"math"
)

const builtinPrefix = "builtin:"

// Builtin generates a position+normal mesh: "sphere", "cylinder" or "cube".
func Builtin(shape string) (*Mesh, error) {
	switch shape {
	case "sphere":
		return Sphere(1, 24, 32), nil
	case "cylinder":
		return Cylinder(1, 2, 32), nil
	case "cube":
		return Cube(2), nil
	}
	return nil, fmt.Errorf("%w: unknown builtin %q", ErrFormat, shape)
}

type meshBuilder struct{ m Mesh }

func (b *meshBuilder) vertex(px, py, pz, nx, ny, nz float32) uint32 {
	b.m.Vertices = append(b.m.Vertices, px, py, pz, nx, ny, nz)
	return uint32(len(b.m.Vertices)/FloatsPerVertex - 1)
}

func (b *meshBuilder) triangle(i, j, k uint32) {
	b.m.Indices = append(b.m.Indices, i, j, k)
}

func (b *meshBuilder) mesh() *Mesh {
	b.m.Stride = FloatsPerVertex
	return &b.m
}

// Sphere is a UV sphere centred on the origin, wound counter-clockwise from outside.
func Sphere(radius float32, stacks, slices int) *Mesh {
	var b meshBuilder
	for i := 0; i <= stacks; i++ {
		phi := math.Pi * float64(i) / float64(stacks)
		for j := 0; j <= slices; j++ {
			theta := 2 * math.Pi * float64(j) / float64(slices)
			nx := float32(math.Sin(phi) * math.Sin(theta))
			ny := float32(math.Cos(phi))
			nz := float32(math.Sin(phi) * math.Cos(theta))
			b.vertex(radius*nx, radius*ny, radius*nz, nx, ny, nz)
		}
	}
	row := uint32(slices + 1)
	for i := uint32(0); i < uint32(stacks); i++ {
		for j := uint32(0); j < uint32(slices); j++ {
			a := i*row + j
			c := a + row
			b.triangle(a, c, a+1)
			b.triangle(a+1, c, c+1)
		}
	}
	return b.mesh()
}

// Cylinder stands on the Y axis, centred on the origin, with capped ends.
func Cylinder(radius, height float32, slices int) *Mesh {
	var b meshBuilder
	half := height / 2

	for j := 0; j <= slices; j++ {
		theta := 2 * math.Pi * float64(j) / float64(slices)
		nx, nz := float32(math.Sin(theta)), float32(math.Cos(theta))
		b.vertex(radius*nx, -half, radius*nz, nx, 0, nz)
		b.vertex(radius*nx, half, radius*nz, nx, 0, nz)
	}
	for j := uint32(0); j < uint32(slices); j++ {
		bottom, top := 2*j, 2*j+1
		b.triangle(bottom, bottom+2, top)
		b.triangle(top, bottom+2, top+2)
	}

	for _, y := range []float32{half, -half} {
		ny := float32(1)
		if y < 0 {
			ny = -1
		}
		centre := b.vertex(0, y, 0, 0, ny, 0)
		first := centre + 1
		for j := 0; j <= slices; j++ {
			theta := 2 * math.Pi * float64(j) / float64(slices)
			b.vertex(radius*float32(math.Sin(theta)), y, radius*float32(math.Cos(theta)), 0, ny, 0)
		}
		for j := uint32(0); j < uint32(slices); j++ {
			if ny > 0 {
				b.triangle(centre, first+j, first+j+1)
			} else {
				b.triangle(centre, first+j+1, first+j)
			}
		}
	}
	return b.mesh()
}

// per-face normal and in-plane axes, counter-clockwise seen from outside
var cubeFaces = [6]struct{ n, u, v [3]float32 }{
	{[3]float32{0, 0, 1}, [3]float32{1, 0, 0}, [3]float32{0, 1, 0}},
	{[3]float32{0, 0, -1}, [3]float32{-1, 0, 0}, [3]float32{0, 1, 0}},
	{[3]float32{1, 0, 0}, [3]float32{0, 0, -1}, [3]float32{0, 1, 0}},
	{[3]float32{-1, 0, 0}, [3]float32{0, 0, 1}, [3]float32{0, 1, 0}},
	{[3]float32{0, 1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, -1}},
	{[3]float32{0, -1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, 1}},
}

var quadCorners = [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

func cubeCorner(h float32, face int, s [2]float32) [3]float32 {
	f := cubeFaces[face]
	var p [3]float32
	for axis := 0; axis < 3; axis++ {
		p[axis] = h * (f.n[axis] + s[0]*f.u[axis] + s[1]*f.v[axis])
	}
	return p
}

// Cube is an axis-aligned cube of the given edge length with per-face normals.
func Cube(size float32) *Mesh {
	var b meshBuilder
	h := size / 2
	for face, f := range cubeFaces {
		var corners [4]uint32
		for k, s := range quadCorners {
			p := cubeCorner(h, face, s)
			corners[k] = b.vertex(p[0], p[1], p[2], f.n[0], f.n[1], f.n[2])
		}
		b.triangle(corners[0], corners[1], corners[2])
		b.triangle(corners[0], corners[2], corners[3])
	}
	return b.mesh()
}

// TexturedCubeStride is the width of a TexturedCube vertex: position, normal, uv.
const TexturedCubeStride = 8

// TexturedCube is Cube with each face mapped onto the whole [0,1] texture square.
func TexturedCube(size float32) *Mesh {
	m := &Mesh{Stride: TexturedCubeStride}
	h := size / 2
	for face, f := range cubeFaces {
		base := uint32(len(m.Vertices) / TexturedCubeStride)
		for _, s := range quadCorners {
			p := cubeCorner(h, face, s)
			m.Vertices = append(m.Vertices,
				p[0], p[1], p[2],
				f.n[0], f.n[1], f.n[2],
				(s[0]+1)/2, (s[1]+1)/2)
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}

// CornerCube is the 8-vertex, 36-index cube. Each corner's normal points
// away from the centre, so lighting is smoothed across the edges.
func CornerCube(size float32) *Mesh {
	var b meshBuilder
	h := size / 2
	n := float32(1 / math.Sqrt(3))
	for i := 0; i < 8; i++ {
		sx, sy, sz := sign(i&1), sign(i&2), sign(i&4)
		b.vertex(sx*h, sy*h, sz*h, sx*n, sy*n, sz*n)
	}
	// corner index bits: 1 = +x, 2 = +y, 4 = +z
	quads := [6][4]uint32{
		{4, 5, 7, 6}, // +z
		{1, 0, 2, 3}, // -z
		{5, 1, 3, 7}, // +x
		{0, 4, 6, 2}, // -x
		{6, 7, 3, 2}, // +y
		{0, 1, 5, 4}, // -y
	}
	for _, q := range quads {
		b.triangle(q[0], q[1], q[2])
		b.triangle(q[0], q[2], q[3])
	}
	return b.mesh()
}

func sign(bit int) float32 {
	if bit != 0 {
		return 1
	}
	return -1
}
