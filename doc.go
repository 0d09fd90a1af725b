// Package glmesh is a thin layer over an OpenGL 3.3 core driver for
// drawing indexed meshes.
//
// # Overview
//
// glmesh wraps the four driver objects a basic indexed draw needs:
//
//   - [VertexBuffer] and [IndexBuffer]: device buffers filled once at
//     creation. Both are instantiations of the generic [Buffer].
//   - [VertexLayout]: a vertex array object describing how attribute slots
//     read from vertex buffers. It also records the element buffer bound
//     while it was active.
//   - [ShaderProgram]: a linked vertex + fragment program, built from GLSL
//     or translated from WGSL.
//
// [Mesh] and [Renderer] put them together into the usual per-frame loop.
//
// # Quick Start
//
//	d := ... // a glcore.Driver, current on this goroutine's OS thread
//
//	program, err := glmesh.LoadShaderProgramFS(d, shaders.FS, "default.vert", "default.frag")
//	if err != nil {
//	    return err
//	}
//	defer program.Destroy()
//
//	vertices, indices := glmesh.SubdividedTriangle(1)
//	mesh, err := glmesh.NewMesh(d, vertices, indices)
//	if err != nil {
//	    return err
//	}
//	defer mesh.Destroy()
//
//	r, _ := glmesh.NewRenderer(d)
//	for !window.ShouldClose() {
//	    if err := r.Frame(program, mesh); err != nil {
//	        return err
//	    }
//	    window.SwapBuffers()
//	}
//
// # Driver
//
// Every constructor takes the driver explicitly; there is no package-level
// context. The driver must be current on the calling thread and objects
// are not safe for concurrent use. See package glcore for the contract,
// driver/gles for the real implementation and driver/mock for tests.
//
// # Errors
//
// Shader failures are reported as [*CompileError] and [*LinkError] and
// leave the driver usable. Allocation failures wrap [ErrDeviceAllocation];
// [IsFatal] reports true for them.
package glmesh
