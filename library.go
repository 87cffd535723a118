package glshader

import "fmt"

// Library owns the named set of programs a viewport renders with, so the
// renderer can build them all up front and tear them all down together.
type Library struct {
	driver   Driver
	programs map[string]*Program
}

// NewLibrary returns an empty Library on the given driver.
func NewLibrary(driver Driver) *Library {
	return &Library{
		driver:   driver,
		programs: make(map[string]*Program),
	}
}

// Add compiles and links a program from the given sources and registers it
// under name. Names are unique; adding a name twice is an error, as is a
// compile or link failure, and on error the Library is unchanged.
func (l *Library) Add(name string, sources Sources) (*Program, error) {
	if _, ok := l.programs[name]; ok {
		return nil, fmt.Errorf("shader %q already registered", name)
	}
	prog := New(l.driver)
	if err := prog.Init(name, sources); err != nil {
		return nil, err
	}
	l.programs[name] = prog
	return prog, nil
}

// Get returns the program registered under name, or nil.
func (l *Library) Get(name string) *Program {
	return l.programs[name]
}

// Shutdown releases every registered program and empties the Library.
func (l *Library) Shutdown() {
	for name, prog := range l.programs {
		prog.Release()
		delete(l.programs, name)
	}
}
