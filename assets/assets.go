// Package assets embeds the lab shaders and models and optionally layers a
// directory on disk over them.
package assets

import (
	"embed"
	"errors"
	"io/fs"
	"os"
)

//go:embed shaders models
var embedded embed.FS

// Embedded is the compiled-in asset tree.
func Embedded() fs.FS { return embedded }

// FS returns the embedded assets with dir, when set, taking precedence.
func FS(dir string) fs.FS {
	if dir == "" {
		return embedded
	}
	return Overlay{os.DirFS(dir), embedded}
}

// Overlay opens a name from the first layer that has it.
type Overlay []fs.FS

func (o Overlay) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	for _, layer := range o {
		f, err := layer.Open(name)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}
