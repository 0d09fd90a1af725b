package glmesh

import "github.com/gogpu/gputypes"

// DefaultClearColor is the dark blue-grey the renderer clears to.
var DefaultClearColor = gputypes.Color{R: 0.07, G: 0.13, B: 0.17, A: 1.0}

// RendererOption configures a Renderer during creation.
//
// Example:
//
//	r, err := glmesh.NewRenderer(d,
//	    glmesh.WithClearColor(gputypes.ColorBlack),
//	    glmesh.WithTopology(gputypes.PrimitiveTopologyLineList),
//	)
type RendererOption func(*rendererOptions)

type rendererOptions struct {
	clearColor gputypes.Color
	topology   gputypes.PrimitiveTopology
	viewport   [2]int32
}

func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		clearColor: DefaultClearColor,
		topology:   gputypes.PrimitiveTopologyTriangleList,
	}
}

// WithClearColor sets the color each frame is cleared to.
func WithClearColor(c gputypes.Color) RendererOption {
	return func(o *rendererOptions) {
		o.clearColor = c
	}
}

// WithTopology sets how index lists are assembled into primitives.
func WithTopology(t gputypes.PrimitiveTopology) RendererOption {
	return func(o *rendererOptions) {
		o.topology = t
	}
}

// WithViewport sets the initial viewport size in pixels. Without it the
// viewport is left as the driver set it up.
func WithViewport(width, height int) RendererOption {
	return func(o *rendererOptions) {
		o.viewport = [2]int32{int32(width), int32(height)}
	}
}
