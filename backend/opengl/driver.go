// Package opengl implements the glshader driver on OpenGL 4.1 core.
package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/sliceforge/glshader"
)

// Driver implements glshader.Driver on go-gl. It is stateless; the GL
// context itself is the state, so all methods must run on the thread that
// owns it.
type Driver struct{}

// NewDriver returns a driver for the current GL context. gl.Init must have
// been called first (InitContext does both).
func NewDriver() *Driver { return &Driver{} }

// CompileStage compiles one shader stage and returns its handle. On failure
// the stage object is deleted and the error carries the GL info log.
func (*Driver) CompileStage(stage glshader.Stage, source string) (uint32, error) {
	var kind uint32
	switch stage {
	case glshader.StageVertex:
		kind = gl.VERTEX_SHADER
	case glshader.StageFragment:
		kind = gl.FRAGMENT_SHADER
	default:
		return 0, fmt.Errorf("unsupported stage %v", stage)
	}

	handle := gl.CreateShader(kind)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		infoLog := shaderInfoLog(handle)
		gl.DeleteShader(handle)
		return 0, fmt.Errorf("%v shader compilation failed: %s", stage, infoLog)
	}
	return handle, nil
}

// DeleteStage releases a compiled stage object.
func (*Driver) DeleteStage(handle uint32) {
	gl.DeleteShader(handle)
}

// LinkProgram links the compiled stages into a program. Stages are detached
// again after the link so the caller can delete them; on link failure the
// program object is deleted and the error carries the GL info log.
func (*Driver) LinkProgram(stages []uint32) (uint32, error) {
	program := gl.CreateProgram()
	for _, s := range stages {
		gl.AttachShader(program, s)
	}
	gl.LinkProgram(program)
	for _, s := range stages {
		gl.DetachShader(program, s)
	}

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		infoLog := programInfoLog(program)
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("program linking failed: %s", infoLog)
	}
	return program, nil
}

// DeleteProgram releases a linked program object.
func (*Driver) DeleteProgram(handle uint32) {
	gl.DeleteProgram(handle)
}

// BindProgram makes the program current; 0 unbinds.
func (*Driver) BindProgram(handle uint32) {
	gl.UseProgram(handle)
}

// AttribLocation queries a vertex attribute location by name, -1 when absent.
func (*Driver) AttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

// UniformLocation queries a uniform location by name, -1 when absent.
func (*Driver) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (*Driver) Uniform1i(location, v int32) {
	gl.Uniform1i(location, v)
}

func (*Driver) Uniform2i(location int32, v [2]int32) {
	gl.Uniform2i(location, v[0], v[1])
}

func (*Driver) Uniform3i(location int32, v [3]int32) {
	gl.Uniform3i(location, v[0], v[1], v[2])
}

func (*Driver) Uniform4i(location int32, v [4]int32) {
	gl.Uniform4i(location, v[0], v[1], v[2], v[3])
}

func (*Driver) Uniform1f(location int32, v float32) {
	gl.Uniform1f(location, v)
}

func (*Driver) Uniform2f(location int32, v mgl32.Vec2) {
	gl.Uniform2fv(location, 1, &v[0])
}

func (*Driver) Uniform3f(location int32, v mgl32.Vec3) {
	gl.Uniform3fv(location, 1, &v[0])
}

func (*Driver) Uniform4f(location int32, v mgl32.Vec4) {
	gl.Uniform4fv(location, 1, &v[0])
}

func (*Driver) Uniform1fv(location int32, v []float32) {
	if len(v) == 0 {
		return
	}
	gl.Uniform1fv(location, int32(len(v)), &v[0])
}

func (*Driver) UniformMatrix3f(location int32, m mgl32.Mat3) {
	gl.UniformMatrix3fv(location, 1, false, &m[0])
}

func (*Driver) UniformMatrix4f(location int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func shaderInfoLog(handle uint32) string {
	var logLength int32
	gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
	infoLog := make([]byte, logLength+1)
	gl.GetShaderInfoLog(handle, logLength, nil, &infoLog[0])
	return string(infoLog[:logLength])
}

func programInfoLog(handle uint32) string {
	var logLength int32
	gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &logLength)
	infoLog := make([]byte, logLength+1)
	gl.GetProgramInfoLog(handle, logLength, nil, &infoLog[0])
	return string(infoLog[:logLength])
}
