// Example renders a spinning triangle through the shader wrapper.
//
// Prerequisites:
//
//	OpenGL 4.1 and X11/Wayland headers for go-gl and glfw
//	go run ./example/
//
// The example opens a GLFW window, builds the flat program from the built-in
// sources and drives its uniforms by name every frame.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/sliceforge/glshader"
	"github.com/sliceforge/glshader/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "glshader example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	driver, window, err := opengl.InitContext(windowWidth, windowHeight, windowTitle)
	if err != nil {
		return err
	}
	defer glfw.Terminate()

	shaders := glshader.NewLibrary(driver)
	defer shaders.Shutdown()
	flat, err := shaders.Add("flat", glshader.FlatSources())
	if err != nil {
		return err
	}

	// One triangle around the origin.
	vertices := []float32{
		-0.6, -0.5, 0,
		0.6, -0.5, 0,
		0, 0.7, 0,
	}

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	// Attribute locations come from the wrapper, not hardcoded layout indices.
	posLoc := flat.AttribLocation("v_position")
	gl.VertexAttribPointerWithOffset(uint32(posLoc), 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(uint32(posLoc))

	projection := mgl32.Perspective(mgl32.DegToRad(45), float32(windowWidth)/windowHeight, 0.1, 10)
	color := glshader.NewColorRGBA(1, 0.4, 0.05, 1)

	for !window.ShouldClose() {
		gl.ClearColor(0.13, 0.13, 0.15, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		angle := float32(glfw.GetTime())
		viewModel := mgl32.Translate3D(0, 0, -2.5).Mul4(mgl32.HomogRotate3D(angle, mgl32.Vec3{0, 1, 0}))

		flat.StartUsing()
		flat.SetMat4("u_view_model_matrix", viewModel)
		flat.SetMat4("u_projection_matrix", projection)
		flat.SetColorRGBA("u_color", color)

		gl.BindVertexArray(vao)
		gl.DrawArrays(gl.TRIANGLES, 0, 3)
		gl.BindVertexArray(0)
		flat.StopUsing()

		window.SwapBuffers()
		glfw.PollEvents()
	}

	gl.DeleteBuffers(1, &vbo)
	gl.DeleteVertexArrays(1, &vao)

	return nil
}
