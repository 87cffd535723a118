package glshader_test

import (
	"testing"

	"github.com/sliceforge/glshader"
)

func TestLibraryAddGet(t *testing.T) {
	driver := newFakeDriver()
	lib := glshader.NewLibrary(driver)

	flat, err := lib.Add("flat", glshader.FlatSources())
	if err != nil {
		t.Fatalf("Add(flat) returned error: %v", err)
	}
	gouraud, err := lib.Add("gouraud", glshader.GouraudSources())
	if err != nil {
		t.Fatalf("Add(gouraud) returned error: %v", err)
	}

	if got := lib.Get("flat"); got != flat {
		t.Errorf("Get(flat) = %p, want %p", got, flat)
	}
	if got := lib.Get("gouraud"); got != gouraud {
		t.Errorf("Get(gouraud) = %p, want %p", got, gouraud)
	}
	if got := lib.Get("toolpaths"); got != nil {
		t.Errorf("Get(toolpaths) = %p, want nil", got)
	}
}

func TestLibraryAddDuplicate(t *testing.T) {
	driver := newFakeDriver()
	lib := glshader.NewLibrary(driver)

	flat, err := lib.Add("flat", glshader.FlatSources())
	if err != nil {
		t.Fatalf("Add(flat) returned error: %v", err)
	}
	if _, err := lib.Add("flat", glshader.GouraudSources()); err == nil {
		t.Fatal("expected error adding a duplicate name")
	}
	if got := lib.Get("flat"); got != flat {
		t.Error("expected the original program to survive the duplicate Add")
	}
}

func TestLibraryAddCompileError(t *testing.T) {
	driver := newFakeDriver()
	driver.failCompile[glshader.StageVertex] = "bad source"
	lib := glshader.NewLibrary(driver)

	if _, err := lib.Add("flat", glshader.FlatSources()); err == nil {
		t.Fatal("expected compile error")
	}
	if got := lib.Get("flat"); got != nil {
		t.Errorf("Get(flat) = %p after failed Add, want nil", got)
	}
}

func TestLibraryShutdown(t *testing.T) {
	driver := newFakeDriver()
	lib := glshader.NewLibrary(driver)

	flat, err := lib.Add("flat", glshader.FlatSources())
	if err != nil {
		t.Fatalf("Add(flat) returned error: %v", err)
	}
	if _, err := lib.Add("gouraud", glshader.GouraudSources()); err != nil {
		t.Fatalf("Add(gouraud) returned error: %v", err)
	}

	lib.Shutdown()

	if flat.ID() != 0 {
		t.Error("expected programs released on Shutdown")
	}
	if got := lib.Get("flat"); got != nil {
		t.Errorf("Get(flat) = %p after Shutdown, want nil", got)
	}
	if len(driver.programs) != 0 {
		t.Errorf("%d driver programs still live after Shutdown", len(driver.programs))
	}
}
