// Package window owns a glfw window, its OpenGL 3.3 context and the
// load → resize → update/render → unload event loop the labs run in.
package window

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/paperboard/labs3d/internal/glutil"
)

// Config describes the window and context to open.
type Config struct {
	Title      string
	Width      int
	Height     int
	GLMajor    int // defaults to 3
	GLMinor    int // defaults to 3
	VSync      bool
	UpdateRate int // fixed update ticks per second, defaults to 60
}

// Handler receives the window's lifecycle events. Embed Base to implement
// only the events a lab cares about.
type Handler interface {
	OnLoad(w *Window) error
	OnResize(w *Window, width, height int)
	OnUpdateFrame(w *Window, dt float64)
	OnRenderFrame(w *Window, dt float64)
	OnKeyPress(w *Window, key rune)
	OnUnload(w *Window)
}

// Base is a Handler that does nothing.
type Base struct{}

func (Base) OnLoad(*Window) error           { return nil }
func (Base) OnResize(*Window, int, int)     {}
func (Base) OnUpdateFrame(*Window, float64) {}
func (Base) OnRenderFrame(*Window, float64) {}
func (Base) OnKeyPress(*Window, rune)       {}
func (Base) OnUnload(*Window)               {}

// Window is the running context passed to every handler call.
type Window struct {
	glfw *glfw.Window
}

// Size is the framebuffer size in pixels.
func (w *Window) Size() (int, int) { return w.glfw.GetFramebufferSize() }

// Close asks the loop to stop after the current frame.
func (w *Window) Close() { w.glfw.SetShouldClose(true) }

func (cfg Config) withDefaults() Config {
	if cfg.GLMajor == 0 {
		cfg.GLMajor, cfg.GLMinor = 3, 3
	}
	if cfg.UpdateRate <= 0 {
		cfg.UpdateRate = 60
	}
	return cfg
}

// Run opens the window and drives h until the window closes or a GL error
// is detected after a frame. It must be called from the main goroutine.
func Run(cfg Config, h Handler) (err error) {
	cfg = cfg.withDefaults()

	// glfw must be on main thread
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	// initialize glfw
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	// use OpenGL core profile, 3.3 by default
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	// create window handle
	gw, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer gw.Destroy()
	gw.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	// initialize OpenGL
	if err := gl.Init(); err != nil {
		return fmt.Errorf("initialize OpenGL: %w", err)
	}
	slog.Info("OpenGL context ready", "version", gl.GoStr(gl.GetString(gl.VERSION)), "title", cfg.Title)

	w := &Window{glfw: gw}

	// load scene objects
	if err := h.OnLoad(w); err != nil {
		return fmt.Errorf("load: %w", err)
	}
	defer h.OnUnload(w)

	// route window events to the handler
	gw.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		h.OnResize(w, width, height)
	})
	gw.SetCharCallback(func(_ *glfw.Window, char rune) {
		h.OnKeyPress(w, char)
	})
	gw.SetKeyCallback(func(gw *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			gw.SetShouldClose(true)
		}
	})

	width, height := w.Size()
	h.OnResize(w, width, height)

	// run gameloop
	st := newStepper(time.Second / time.Duration(cfg.UpdateRate))
	prev := time.Now()
	for !gw.ShouldClose() {
		now := time.Now()
		frame := now.Sub(prev)
		prev = now

		// glfw events
		glfw.PollEvents()

		for i, n := 0, st.advance(frame); i < n; i++ {
			h.OnUpdateFrame(w, st.tick.Seconds())
		}

		// draw into buffer
		h.OnRenderFrame(w, frame.Seconds())

		// check for accumulated OpenGL errors
		if err := glutil.CheckError(); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		// render buffer to screen
		gw.SwapBuffers()
	}
	return nil
}
