package glshader

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Stage identifies one half of the render pipeline.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
	// StageCount is the number of pipeline stages; usable as the length of
	// per-stage arrays such as Sources.
	StageCount
)

// String returns the stage name for diagnostics.
func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// Sources holds the GLSL source text for each pipeline stage, indexed by
// Stage. Both entries are required by Program.Init.
type Sources [StageCount]string

// Driver is the graphics driver boundary consumed by Program. It performs
// shader compilation, program linking and uniform uploads, and supplies the
// integer locations behind attribute/uniform names. The backend/opengl
// package implements it on go-gl; tests substitute an in-memory fake.
//
// Uploads address the uniform location on the currently bound program, a
// location of -1 is a no-op, and payloads are int32/float32 only: GL ES and
// the 4.1 core profile have no double-precision uniforms, so double-valued
// setters downcast host-side before reaching the driver.
type Driver interface {
	// CompileStage compiles one stage from source and returns its handle.
	// The returned error carries the driver's info log text.
	CompileStage(stage Stage, source string) (uint32, error)
	// DeleteStage releases a compiled stage object.
	DeleteStage(handle uint32)
	// LinkProgram links compiled stages into a program and returns its
	// handle. Stage objects remain owned by the caller.
	LinkProgram(stages []uint32) (uint32, error)
	// DeleteProgram releases a linked program object.
	DeleteProgram(handle uint32)
	// BindProgram makes the program current; 0 unbinds.
	BindProgram(handle uint32)

	// AttribLocation and UniformLocation walk the linked program's symbol
	// table by name. Both return -1 when the name is not present.
	AttribLocation(program uint32, name string) int32
	UniformLocation(program uint32, name string) int32

	Uniform1i(location, v int32)
	Uniform2i(location int32, v [2]int32)
	Uniform3i(location int32, v [3]int32)
	Uniform4i(location int32, v [4]int32)
	Uniform1f(location int32, v float32)
	Uniform2f(location int32, v mgl32.Vec2)
	Uniform3f(location int32, v mgl32.Vec3)
	Uniform4f(location int32, v mgl32.Vec4)
	Uniform1fv(location int32, v []float32)
	UniformMatrix3f(location int32, m mgl32.Mat3)
	UniformMatrix4f(location int32, m mgl32.Mat4)
}

// location is one resolved (name, location) pair. A value of -1 records
// "not present in the linked program" and is deliberately kept: absence is
// itself useful information and must not trigger another driver query.
type location struct {
	name  string
	value int32
}

// Program owns one linked vertex+fragment program. The zero id means the
// program is uninitialized; Init establishes the fully usable state in one
// step and there is no partially initialized state in between.
//
// Location lookups are cached per distinct name for the program's lifetime;
// linked programs are immutable, so a resolved location never changes.
type Program struct {
	driver Driver

	name string
	id   uint32

	attribLocations  []location
	uniformLocations []location
}

// New returns an uninitialized Program bound to the given driver.
// Call Init before any other method.
func New(driver Driver) *Program {
	return &Program{driver: driver}
}

// Init compiles both stage sources and links them into a fresh program.
//
// On any compile or link failure the error carries the driver's diagnostic
// text, every stage object created along the way is released, and the
// Program keeps whatever state it had before the call: a previously
// successful Init stays usable, a never-initialized Program stays
// uninitialized. On success the old program (if any) is released, the new
// handle and display name are stored and the location caches start empty.
func (p *Program) Init(name string, sources Sources) error {
	for stage := StageVertex; stage < StageCount; stage++ {
		if sources[stage] == "" {
			return fmt.Errorf("shader %q: missing %v stage source", name, stage)
		}
	}

	// Stage objects are only needed until the link; release them on every
	// path out of here.
	stages := make([]uint32, 0, StageCount)
	defer func() {
		for _, h := range stages {
			p.driver.DeleteStage(h)
		}
	}()

	for stage := StageVertex; stage < StageCount; stage++ {
		h, err := p.driver.CompileStage(stage, sources[stage])
		if err != nil {
			return fmt.Errorf("shader %q: compile %v stage: %w", name, stage, err)
		}
		stages = append(stages, h)
	}

	id, err := p.driver.LinkProgram(stages)
	if err != nil {
		return fmt.Errorf("shader %q: link: %w", name, err)
	}

	if p.id != 0 {
		p.driver.DeleteProgram(p.id)
	}
	p.name = name
	p.id = id
	p.attribLocations = nil
	p.uniformLocations = nil
	return nil
}

// Name returns the display name given to Init.
func (p *Program) Name() string { return p.name }

// ID returns the driver-side program handle, 0 when uninitialized.
func (p *Program) ID() uint32 { return p.id }

// StartUsing binds this program for subsequent draw calls and uniform
// uploads. Only one program is bound at a time process-wide; ordering
// between Programs is the caller's responsibility.
func (p *Program) StartUsing() {
	p.driver.BindProgram(p.id)
}

// StopUsing unbinds the current program.
func (p *Program) StopUsing() {
	p.driver.BindProgram(0)
}

// AttribLocation returns the location of the named vertex attribute,
// or -1 when the linked program has no such attribute. The first lookup of
// a name queries the driver; every later lookup, including of absent names,
// is served from the cache.
func (p *Program) AttribLocation(name string) int32 {
	for _, l := range p.attribLocations {
		if l.name == name {
			return l.value
		}
	}
	loc := p.driver.AttribLocation(p.id, name)
	p.attribLocations = append(p.attribLocations, location{name: name, value: loc})
	return loc
}

// UniformLocation returns the location of the named uniform, or -1 when the
// linked program has no such uniform. Caching behaves as for AttribLocation.
func (p *Program) UniformLocation(name string) int32 {
	for _, l := range p.uniformLocations {
		if l.name == name {
			return l.value
		}
	}
	loc := p.driver.UniformLocation(p.id, name)
	p.uniformLocations = append(p.uniformLocations, location{name: name, value: loc})
	return loc
}

// Release deletes the driver-side program and drops the caches. The Program
// returns to the uninitialized state; using it afterwards, other than a new
// Init, is a caller error.
func (p *Program) Release() {
	if p.id != 0 {
		p.driver.DeleteProgram(p.id)
		p.id = 0
	}
	p.name = ""
	p.attribLocations = nil
	p.uniformLocations = nil
}
