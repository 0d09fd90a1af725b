// Package gles implements glcore.Driver on a desktop OpenGL 3.3 core
// context through the pure-Go bindings of gogpu/wgpu (hal/gles/gl).
//
// The driver does not create contexts. The caller makes a context current
// on the calling OS thread (for example with GLFW) and passes the
// platform's proc-address function to New:
//
//	glfw.WindowHint(glfw.ContextVersionMajor, 3)
//	glfw.WindowHint(glfw.ContextVersionMinor, 3)
//	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
//	win, _ := glfw.CreateWindow(800, 800, "glmesh", nil, nil)
//	win.MakeContextCurrent()
//	d, err := gles.New(glfw.GetProcAddress)
//
// Only Linux is supported; on other platforms New returns
// glcore.ErrUnsupported.
//
// Integer vertex formats are declared with glVertexAttribPointer and
// reach the shader as floats.
package gles
