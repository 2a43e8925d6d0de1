// Package texture decodes images and uploads them as GL textures.
package texture

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"

	"github.com/go-gl/gl/v3.3-core/gl"
	_ "golang.org/x/image/bmp"
)

// Decode reads a PNG, JPEG or BMP image into RGBA rows ordered bottom-up,
// which is the order glTexImage2D expects.
func Decode(r io.Reader) (*image.RGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode texture: %w", err)
	}
	return flipVertical(img), nil
}

// Open decodes the image at name in fsys.
func Open(fsys fs.FS, name string) (*image.RGBA, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open texture %q: %w", name, err)
	}
	defer f.Close()
	return Decode(f)
}

func flipVertical(src image.Image) *image.RGBA {
	b := src.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)

	row := make([]byte, rgba.Stride)
	for top, bottom := 0, b.Dy()-1; top < bottom; top, bottom = top+1, bottom-1 {
		t := rgba.Pix[top*rgba.Stride : (top+1)*rgba.Stride]
		u := rgba.Pix[bottom*rgba.Stride : (bottom+1)*rgba.Stride]
		copy(row, t)
		copy(t, u)
		copy(u, row)
	}
	return rgba
}

// Checkerboard is a size x size image of cells x cells alternating squares.
func Checkerboard(size, cells int, a, b color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cells = max(cells, 1)
	cell := size / cells
	if cell < 1 {
		cell = 1
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			img.Set(x, y, c)
		}
	}
	return img
}

// Upload creates a mipmapped, repeating 2D texture from img and leaves it unbound.
func Upload(img *image.RGBA) (uint32, error) {
	if img.Bounds().Empty() {
		return 0, fmt.Errorf("upload texture: empty image")
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(img.Rect.Dx()),
		int32(img.Rect.Dy()),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return id, nil
}

// Delete frees a texture created by Upload.
func Delete(id uint32) {
	if id != 0 {
		gl.DeleteTextures(1, &id)
	}
}
