package glshader_test

import (
	"errors"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/sliceforge/glshader"
)

// fakeDriver implements glshader.Driver in memory. It builds a symbol table
// by scanning GLSL source for "uniform" and vertex-stage "in" declarations,
// tracks the bound program and records every upload, so tests can observe
// query counts, round-trip values and set-while-unbound mistakes.
type fakeDriver struct {
	nextHandle uint32

	stages   map[uint32]stageSymbols
	programs map[uint32]*fakeProgram
	bound    uint32

	attribQueries  int
	uniformQueries int

	failCompile map[glshader.Stage]string
	failLink    string
}

type stageSymbols struct {
	attribs  []string
	uniforms []string
}

// fakeProgram is one linked program: symbol locations plus the last value
// uploaded to each location.
type fakeProgram struct {
	attribs  map[string]int32
	uniforms map[string]int32
	values   map[int32]any
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		nextHandle:  1,
		stages:      make(map[uint32]stageSymbols),
		programs:    make(map[uint32]*fakeProgram),
		failCompile: make(map[glshader.Stage]string),
	}
}

func (d *fakeDriver) CompileStage(stage glshader.Stage, source string) (uint32, error) {
	if msg, ok := d.failCompile[stage]; ok {
		return 0, errors.New(msg)
	}
	var syms stageSymbols
	for _, line := range strings.Split(source, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		name := strings.TrimSuffix(fields[2], ";")
		// Array declarations ("u_weights[4]") resolve by their base name.
		if i := strings.IndexByte(name, '['); i >= 0 {
			name = name[:i]
		}
		switch fields[0] {
		case "uniform":
			syms.uniforms = append(syms.uniforms, name)
		case "in":
			if stage == glshader.StageVertex {
				syms.attribs = append(syms.attribs, name)
			}
		}
	}
	handle := d.nextHandle
	d.nextHandle++
	d.stages[handle] = syms
	return handle, nil
}

func (d *fakeDriver) DeleteStage(handle uint32) {
	delete(d.stages, handle)
}

func (d *fakeDriver) LinkProgram(stages []uint32) (uint32, error) {
	if d.failLink != "" {
		return 0, errors.New(d.failLink)
	}
	prog := &fakeProgram{
		attribs:  make(map[string]int32),
		uniforms: make(map[string]int32),
		values:   make(map[int32]any),
	}
	var nextAttrib, nextUniform int32
	for _, h := range stages {
		syms := d.stages[h]
		for _, name := range syms.attribs {
			if _, ok := prog.attribs[name]; !ok {
				prog.attribs[name] = nextAttrib
				nextAttrib++
			}
		}
		for _, name := range syms.uniforms {
			if _, ok := prog.uniforms[name]; !ok {
				prog.uniforms[name] = nextUniform
				nextUniform++
			}
		}
	}
	handle := d.nextHandle
	d.nextHandle++
	d.programs[handle] = prog
	return handle, nil
}

func (d *fakeDriver) DeleteProgram(handle uint32) {
	delete(d.programs, handle)
}

func (d *fakeDriver) BindProgram(handle uint32) {
	d.bound = handle
}

func (d *fakeDriver) AttribLocation(program uint32, name string) int32 {
	d.attribQueries++
	if p, ok := d.programs[program]; ok {
		if loc, ok := p.attribs[name]; ok {
			return loc
		}
	}
	return -1
}

func (d *fakeDriver) UniformLocation(program uint32, name string) int32 {
	d.uniformQueries++
	if p, ok := d.programs[program]; ok {
		if loc, ok := p.uniforms[name]; ok {
			return loc
		}
	}
	return -1
}

// record stores an upload on the bound program. Like the real driver it
// ignores location -1 and uploads issued with no program bound.
func (d *fakeDriver) record(location int32, v any) {
	if location < 0 {
		return
	}
	p, ok := d.programs[d.bound]
	if !ok {
		return
	}
	p.values[location] = v
}

func (d *fakeDriver) Uniform1i(location, v int32)          { d.record(location, v) }
func (d *fakeDriver) Uniform2i(location int32, v [2]int32) { d.record(location, v) }
func (d *fakeDriver) Uniform3i(location int32, v [3]int32) { d.record(location, v) }
func (d *fakeDriver) Uniform4i(location int32, v [4]int32) { d.record(location, v) }
func (d *fakeDriver) Uniform1f(location int32, v float32)  { d.record(location, v) }

func (d *fakeDriver) Uniform2f(location int32, v mgl32.Vec2) { d.record(location, v) }
func (d *fakeDriver) Uniform3f(location int32, v mgl32.Vec3) { d.record(location, v) }
func (d *fakeDriver) Uniform4f(location int32, v mgl32.Vec4) { d.record(location, v) }

func (d *fakeDriver) Uniform1fv(location int32, v []float32) {
	d.record(location, append([]float32(nil), v...))
}

func (d *fakeDriver) UniformMatrix3f(location int32, m mgl32.Mat3) { d.record(location, m) }
func (d *fakeDriver) UniformMatrix4f(location int32, m mgl32.Mat4) { d.record(location, m) }

// uploaded returns the last value uploaded to the named uniform of the
// given program, or nil when nothing reached it.
func (d *fakeDriver) uploaded(program uint32, name string) any {
	p, ok := d.programs[program]
	if !ok {
		return nil
	}
	loc, ok := p.uniforms[name]
	if !ok {
		return nil
	}
	return p.values[loc]
}
