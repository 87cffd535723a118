package glshader

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Typed uniform setters. Each shape comes in two forms: a name-based setter
// that resolves the location through the cache first, and a location-based
// ...At setter that uploads directly. Uploads target the currently bound
// program; the caller must have called StartUsing on this Program first,
// which is not verified here. A location of -1 is accepted everywhere and
// ignored by the driver.
//
// Double-precision values exist for the caller's convenience (the slicer's
// geometry pipeline is double-based) and are downcast to float32 before
// upload; the driver has no double path.

// SetBool sets a bool uniform by name.
func (p *Program) SetBool(name string, v bool) { p.SetBoolAt(p.UniformLocation(name), v) }

// SetBoolAt sets a bool uniform at a resolved location.
func (p *Program) SetBoolAt(loc int32, v bool) {
	var i int32
	if v {
		i = 1
	}
	p.driver.Uniform1i(loc, i)
}

// SetInt sets an int uniform by name.
func (p *Program) SetInt(name string, v int32) { p.SetIntAt(p.UniformLocation(name), v) }

// SetIntAt sets an int uniform at a resolved location.
func (p *Program) SetIntAt(loc, v int32) { p.driver.Uniform1i(loc, v) }

// SetFloat sets a float uniform by name.
func (p *Program) SetFloat(name string, v float32) { p.SetFloatAt(p.UniformLocation(name), v) }

// SetFloatAt sets a float uniform at a resolved location.
func (p *Program) SetFloatAt(loc int32, v float32) { p.driver.Uniform1f(loc, v) }

// SetDouble sets a float uniform by name from a float64 value.
func (p *Program) SetDouble(name string, v float64) { p.SetDoubleAt(p.UniformLocation(name), v) }

// SetDoubleAt sets a float uniform at a resolved location from a float64 value.
func (p *Program) SetDoubleAt(loc int32, v float64) { p.driver.Uniform1f(loc, float32(v)) }

// SetVec2i sets an ivec2 uniform by name.
func (p *Program) SetVec2i(name string, v [2]int32) { p.SetVec2iAt(p.UniformLocation(name), v) }

// SetVec2iAt sets an ivec2 uniform at a resolved location.
func (p *Program) SetVec2iAt(loc int32, v [2]int32) { p.driver.Uniform2i(loc, v) }

// SetVec3i sets an ivec3 uniform by name.
func (p *Program) SetVec3i(name string, v [3]int32) { p.SetVec3iAt(p.UniformLocation(name), v) }

// SetVec3iAt sets an ivec3 uniform at a resolved location.
func (p *Program) SetVec3iAt(loc int32, v [3]int32) { p.driver.Uniform3i(loc, v) }

// SetVec4i sets an ivec4 uniform by name.
func (p *Program) SetVec4i(name string, v [4]int32) { p.SetVec4iAt(p.UniformLocation(name), v) }

// SetVec4iAt sets an ivec4 uniform at a resolved location.
func (p *Program) SetVec4iAt(loc int32, v [4]int32) { p.driver.Uniform4i(loc, v) }

// SetVec2 sets a vec2 uniform by name.
func (p *Program) SetVec2(name string, v mgl32.Vec2) { p.SetVec2At(p.UniformLocation(name), v) }

// SetVec2At sets a vec2 uniform at a resolved location.
func (p *Program) SetVec2At(loc int32, v mgl32.Vec2) { p.driver.Uniform2f(loc, v) }

// SetVec3 sets a vec3 uniform by name.
func (p *Program) SetVec3(name string, v mgl32.Vec3) { p.SetVec3At(p.UniformLocation(name), v) }

// SetVec3At sets a vec3 uniform at a resolved location.
func (p *Program) SetVec3At(loc int32, v mgl32.Vec3) { p.driver.Uniform3f(loc, v) }

// SetVec4 sets a vec4 uniform by name.
func (p *Program) SetVec4(name string, v mgl32.Vec4) { p.SetVec4At(p.UniformLocation(name), v) }

// SetVec4At sets a vec4 uniform at a resolved location.
func (p *Program) SetVec4At(loc int32, v mgl32.Vec4) { p.driver.Uniform4f(loc, v) }

// SetVec2d sets a vec2 uniform by name from double-precision components.
func (p *Program) SetVec2d(name string, v mgl64.Vec2) { p.SetVec2dAt(p.UniformLocation(name), v) }

// SetVec2dAt sets a vec2 uniform at a resolved location from double-precision components.
func (p *Program) SetVec2dAt(loc int32, v mgl64.Vec2) {
	p.driver.Uniform2f(loc, mgl32.Vec2{float32(v[0]), float32(v[1])})
}

// SetVec3d sets a vec3 uniform by name from double-precision components.
func (p *Program) SetVec3d(name string, v mgl64.Vec3) { p.SetVec3dAt(p.UniformLocation(name), v) }

// SetVec3dAt sets a vec3 uniform at a resolved location from double-precision components.
func (p *Program) SetVec3dAt(loc int32, v mgl64.Vec3) {
	p.driver.Uniform3f(loc, mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])})
}

// SetVec4d sets a vec4 uniform by name from double-precision components.
func (p *Program) SetVec4d(name string, v mgl64.Vec4) { p.SetVec4dAt(p.UniformLocation(name), v) }

// SetVec4dAt sets a vec4 uniform at a resolved location from double-precision components.
func (p *Program) SetVec4dAt(loc int32, v mgl64.Vec4) {
	p.driver.Uniform4f(loc, mgl32.Vec4{float32(v[0]), float32(v[1]), float32(v[2]), float32(v[3])})
}

// SetFloats sets a float array uniform by name.
func (p *Program) SetFloats(name string, v []float32) { p.SetFloatsAt(p.UniformLocation(name), v) }

// SetFloatsAt sets a float array uniform at a resolved location.
func (p *Program) SetFloatsAt(loc int32, v []float32) { p.driver.Uniform1fv(loc, v) }

// SetMat3 sets a mat3 uniform by name. Matrices are column-major, as mgl
// stores them and the driver expects them.
func (p *Program) SetMat3(name string, m mgl32.Mat3) { p.SetMat3At(p.UniformLocation(name), m) }

// SetMat3At sets a mat3 uniform at a resolved location.
func (p *Program) SetMat3At(loc int32, m mgl32.Mat3) { p.driver.UniformMatrix3f(loc, m) }

// SetMat4 sets a mat4 uniform by name. Affine transforms and plain 4x4
// matrices share this shape.
func (p *Program) SetMat4(name string, m mgl32.Mat4) { p.SetMat4At(p.UniformLocation(name), m) }

// SetMat4At sets a mat4 uniform at a resolved location.
func (p *Program) SetMat4At(loc int32, m mgl32.Mat4) { p.driver.UniformMatrix4f(loc, m) }

// SetMat3d sets a mat3 uniform by name from a double-precision matrix.
func (p *Program) SetMat3d(name string, m mgl64.Mat3) { p.SetMat3dAt(p.UniformLocation(name), m) }

// SetMat3dAt sets a mat3 uniform at a resolved location from a double-precision matrix.
func (p *Program) SetMat3dAt(loc int32, m mgl64.Mat3) {
	var f mgl32.Mat3
	for i, v := range m {
		f[i] = float32(v)
	}
	p.driver.UniformMatrix3f(loc, f)
}

// SetMat4d sets a mat4 uniform by name from a double-precision matrix.
func (p *Program) SetMat4d(name string, m mgl64.Mat4) { p.SetMat4dAt(p.UniformLocation(name), m) }

// SetMat4dAt sets a mat4 uniform at a resolved location from a double-precision matrix.
func (p *Program) SetMat4dAt(loc int32, m mgl64.Mat4) {
	var f mgl32.Mat4
	for i, v := range m {
		f[i] = float32(v)
	}
	p.driver.UniformMatrix4f(loc, f)
}

// SetColorRGB sets a vec3 uniform by name from a color.
func (p *Program) SetColorRGB(name string, c ColorRGB) { p.SetColorRGBAt(p.UniformLocation(name), c) }

// SetColorRGBAt sets a vec3 uniform at a resolved location from a color.
func (p *Program) SetColorRGBAt(loc int32, c ColorRGB) { p.driver.Uniform3f(loc, c.Vec3()) }

// SetColorRGBA sets a vec4 uniform by name from a color.
func (p *Program) SetColorRGBA(name string, c ColorRGBA) {
	p.SetColorRGBAAt(p.UniformLocation(name), c)
}

// SetColorRGBAAt sets a vec4 uniform at a resolved location from a color.
func (p *Program) SetColorRGBAAt(loc int32, c ColorRGBA) { p.driver.Uniform4f(loc, c.Vec4()) }
