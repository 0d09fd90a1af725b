// Package platform opens the window and GL context the demo renders into.
//
// Implementations register themselves by name. "headless" is always
// available and drives the mock driver; "glfw" needs Linux and cgo.
package platform

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/gogpu/glmesh/glcore"
	"github.com/gogpu/gpucontext"
)

// ErrUnknown is returned by Open for a name nothing registered.
var ErrUnknown = errors.New("platform: unknown platform")

// Platform owns a window (or its stand-in) and the driver bound to its
// context. All methods must be called from the thread that opened it.
type Platform interface {
	gpucontext.WindowProvider

	// Name returns the registered name.
	Name() string
	// FramebufferSize returns the drawable size in pixels, the size the
	// viewport must cover. Size reports logical points.
	FramebufferSize() (width, height int)
	// Driver returns the driver for the platform's GL context.
	Driver() glcore.Driver
	// ShouldClose reports whether the user asked to quit.
	ShouldClose() bool
	// SwapBuffers presents the frame just rendered.
	SwapBuffers()
	// PollEvents processes pending window events.
	PollEvents()
	// Close destroys the window and context.
	Close()
}

// Options are the window settings passed to a platform.
type Options struct {
	Width  int
	Height int
	Title  string
	VSync  bool
}

// Factory opens a platform.
type Factory func(Options) (Platform, error)

var registry = gpucontext.NewRegistry[Factory](gpucontext.WithPriority("glfw", "headless"))

// Register makes a platform available under name, replacing any previous
// registration.
func Register(name string, f Factory) {
	registry.Register(name, func() Factory { return f })
}

// Available returns the registered names, sorted.
func Available() []string {
	names := registry.Available()
	slices.Sort(names)
	return names
}

// Default returns the name Open uses when none is given.
func Default() string {
	return registry.BestName()
}

// Open opens the named platform. An empty name selects Default.
func Open(name string, opts Options) (Platform, error) {
	if name == "" {
		name = Default()
	}
	if !registry.Has(name) {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknown, name, strings.Join(Available(), ", "))
	}
	return registry.Get(name)(opts)
}
