package glutil

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
)

var errorNames = map[uint32]string{
	0x500: `GL_INVALID_ENUM`,
	0x501: `GL_INVALID_VALUE`,
	0x502: `GL_INVALID_OPERATION`,
	0x503: `GL_STACK_OVERFLOW`,
	0x504: `GL_STACK_UNDERFLOW`,
	0x505: `GL_OUT_OF_MEMORY`,
	0x506: `GL_INVALID_FRAMEBUFFER_OPERATION`,
	0x507: `GL_CONTEXT_LOST`,
}

// Error is a code reported by glGetError.
type Error uint32

func (e Error) Error() string {
	if name, ok := errorNames[uint32(e)]; ok {
		return "GL_ERROR: " + name
	}
	return fmt.Sprintf("GL_ERROR UNKNOWN: %#x", uint32(e))
}

// CheckError drains the accumulated OpenGL errors and returns the first one.
func CheckError() error {
	var first error
	for {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			return first
		}
		if first == nil {
			first = Error(code)
		}
	}
}
