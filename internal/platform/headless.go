package platform

import (
	"github.com/gogpu/glmesh/driver/mock"
	"github.com/gogpu/glmesh/glcore"
)

// HeadlessName is the registered name of the headless platform.
const HeadlessName = "headless"

func init() {
	Register(HeadlessName, func(opts Options) (Platform, error) {
		return NewHeadless(opts), nil
	})
}

// Headless renders into the mock driver. It asks to close after the first
// presented frame unless SetFrameLimit raises the limit.
type Headless struct {
	d      *mock.Driver
	width  int
	height int
	limit  int
	swaps  int
	closed bool
}

// NewHeadless returns a headless platform of the given size.
func NewHeadless(opts Options) *Headless {
	return &Headless{
		d:      mock.New(),
		width:  opts.Width,
		height: opts.Height,
		limit:  1,
	}
}

// SetFrameLimit sets how many frames are presented before ShouldClose
// reports true. n <= 0 means one frame.
func (h *Headless) SetFrameLimit(n int) {
	h.limit = max(n, 1)
}

// Mock returns the driver for inspection.
func (h *Headless) Mock() *mock.Driver { return h.d }

// Swaps returns the number of presented frames.
func (h *Headless) Swaps() int { return h.swaps }

func (h *Headless) Name() string          { return HeadlessName }
func (h *Headless) Driver() glcore.Driver { return h.d }
func (h *Headless) ShouldClose() bool     { return h.closed || h.swaps >= h.limit }
func (h *Headless) SwapBuffers()          { h.swaps++ }
func (h *Headless) PollEvents()           {}
func (h *Headless) Close()                { h.closed = true }

func (h *Headless) Size() (width, height int) { return h.width, h.height }
func (h *Headless) ScaleFactor() float64      { return 1 }

// FramebufferSize equals Size: the headless scale factor is 1.
func (h *Headless) FramebufferSize() (width, height int) { return h.width, h.height }
func (h *Headless) RequestRedraw()            {}

// Resize changes the reported size, as a window resize would.
func (h *Headless) Resize(width, height int) {
	h.width, h.height = width, height
}
