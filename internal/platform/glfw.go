//go:build linux && cgo

package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogpu/glmesh/driver/gles"
	"github.com/gogpu/glmesh/glcore"
)

// GLFWName is the registered name of the GLFW platform.
const GLFWName = "glfw"

func init() {
	// GLFW event handling must run on the main thread.
	runtime.LockOSThread()
	Register(GLFWName, openGLFW)
}

type glfwPlatform struct {
	win    *glfw.Window
	d      *gles.Driver
	width  int
	height int
}

func openGLFW(opts Options) (Platform, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("platform: glfw init: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("platform: create window: %w", err)
	}
	win.MakeContextCurrent()
	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	d, err := gles.New(glfw.GetProcAddress)
	if err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, err
	}

	p := &glfwPlatform{win: win, d: d}
	p.width, p.height = win.GetFramebufferSize()
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		p.width, p.height = width, height
	})
	win.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})
	return p, nil
}

func (p *glfwPlatform) Name() string          { return GLFWName }
func (p *glfwPlatform) Driver() glcore.Driver { return p.d }
func (p *glfwPlatform) ShouldClose() bool     { return p.win.ShouldClose() }
func (p *glfwPlatform) SwapBuffers()          { p.win.SwapBuffers() }
func (p *glfwPlatform) PollEvents()           { glfw.PollEvents() }

// Size returns the window size in screen coordinates.
func (p *glfwPlatform) Size() (width, height int) { return p.win.GetSize() }

// FramebufferSize returns the size in pixels, tracked from the framebuffer
// size callback.
func (p *glfwPlatform) FramebufferSize() (width, height int) { return p.width, p.height }

func (p *glfwPlatform) ScaleFactor() float64 {
	x, _ := p.win.GetContentScale()
	return float64(x)
}

func (p *glfwPlatform) RequestRedraw() { glfw.PostEmptyEvent() }

func (p *glfwPlatform) Close() {
	p.win.Destroy()
	glfw.Terminate()
}
