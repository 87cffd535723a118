package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// ContextOption configures InitContext.
type ContextOption func(*contextOptions)

type contextOptions struct {
	resizable bool
	samples   int
	vsync     bool
}

// WithResizable makes the window resizable.
func WithResizable() ContextOption {
	return func(o *contextOptions) { o.resizable = true }
}

// WithSamples requests MSAA with the given sample count.
func WithSamples(samples int) ContextOption {
	return func(o *contextOptions) { o.samples = samples }
}

// WithoutVSync disables the swap-interval wait.
func WithoutVSync() ContextOption {
	return func(o *contextOptions) { o.vsync = false }
}

// InitContext initializes GLFW, opens a 4.1 core profile window, makes its
// context current on the calling thread and loads the GL function pointers.
// The caller must have locked the OS thread and must call glfw.Terminate
// when done with the window.
func InitContext(width, height int, title string, opts ...ContextOption) (*Driver, *glfw.Window, error) {
	o := contextOptions{vsync: true}
	for _, opt := range opts {
		opt(&o)
	}

	if err := glfw.Init(); err != nil {
		return nil, nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if o.resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}
	if o.samples > 0 {
		glfw.WindowHint(glfw.Samples, o.samples)
	}

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if o.vsync {
		glfw.SwapInterval(1)
	}

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, nil, fmt.Errorf("gl init: %w", err)
	}

	return NewDriver(), window, nil
}
