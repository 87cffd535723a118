/*
Package glshader manages GL shader programs for a slicer viewport renderer.

A Program owns one compiled and linked vertex+fragment program and resolves
human-readable attribute and uniform names into the integer locations the
driver expects, caching every result so steady-state rendering never repeats
a name-based driver query. A family of typed setters uploads scalar, vector,
matrix and color uniforms, by name or by pre-resolved location.

All driver traffic goes through the Driver interface. The backend/opengl
package implements it on go-gl; tests substitute an in-memory fake.

# Quick Start

	driver, window, err := opengl.InitContext(1280, 720, "viewport")
	if err != nil {
	    log.Fatal(err)
	}

	prog := glshader.New(driver)
	if err := prog.Init("flat", glshader.FlatSources()); err != nil {
	    log.Fatal(err)
	}
	defer prog.Release()

	// Frame loop
	prog.StartUsing()
	prog.SetMat4("u_view_model_matrix", viewModel)
	prog.SetMat4("u_projection_matrix", projection)
	prog.SetColorRGBA("u_color", glshader.NewColorRGBA(1, 0.5, 0, 1))
	// ... issue draw calls ...
	prog.StopUsing()

Several programs are typically kept per viewport (flat, gouraud, overlays);
Library owns a named set of them and tears them all down together.

# Threading

Every method must be called on the thread that owns the GL context. The
package performs no locking of its own; the expected usage is exclusive
ownership by the renderer's drawing goroutine, locked to the OS thread.
*/
package glshader
