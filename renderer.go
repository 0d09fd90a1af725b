package glmesh

import (
	"fmt"

	"github.com/gogpu/glmesh/glcore"
	"github.com/gogpu/gputypes"
)

// Renderer issues frames: clear, activate a program, draw meshes.
type Renderer struct {
	d      glcore.Driver
	opts   rendererOptions
	frames int
}

// NewRenderer returns a renderer drawing through d.
func NewRenderer(d glcore.Driver, opts ...RendererOption) (*Renderer, error) {
	if d == nil {
		return nil, ErrNilDriver
	}
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r := &Renderer{d: d, opts: o}
	if o.viewport[0] > 0 && o.viewport[1] > 0 {
		r.Resize(int(o.viewport[0]), int(o.viewport[1]))
	}
	if desc, ok := d.(glcore.Describer); ok {
		logger().Info("renderer ready", "driver", desc.Describe())
	}
	return r, nil
}

// Resize sets the viewport to cover a width x height framebuffer.
func (r *Renderer) Resize(width, height int) {
	r.d.Viewport(0, 0, int32(width), int32(height))
}

// ClearColor returns the color frames are cleared to.
func (r *Renderer) ClearColor() gputypes.Color { return r.opts.clearColor }

// Topology returns the primitive topology used for draws.
func (r *Renderer) Topology() gputypes.PrimitiveTopology { return r.opts.topology }

// Frame clears the color buffer, activates program and draws each mesh
// once. Presenting the frame is left to the platform.
func (r *Renderer) Frame(program *ShaderProgram, meshes ...*Mesh) error {
	if program == nil || program.destroyed {
		return fmt.Errorf("glmesh: frame: shader program: %w", ErrDestroyed)
	}
	for i, m := range meshes {
		if !m.live() {
			return fmt.Errorf("glmesh: frame: mesh %d: %w", i, ErrDestroyed)
		}
	}
	r.d.ClearColor(r.opts.clearColor)
	r.d.Clear()
	program.Activate()
	for _, m := range meshes {
		if err := m.draw(r.opts.topology); err != nil {
			return err
		}
	}
	r.frames++
	return checkDriver(r.d, fmt.Sprintf("frame %d", r.frames))
}

// Frames returns the number of frames issued.
func (r *Renderer) Frames() int { return r.frames }
