package glmesh

import (
	"unsafe"

	"github.com/gogpu/glmesh/glcore"
	"github.com/gogpu/gputypes"
)

// BufferKind is the compile-time tag selecting a buffer's bind target.
type BufferKind interface {
	Vertices | Indices

	target() glcore.BufferTarget
	kindName() string
}

// Vertices tags buffers of vertex attribute data (float32 components).
type Vertices struct{}

func (Vertices) target() glcore.BufferTarget { return glcore.TargetArray }
func (Vertices) kindName() string            { return "vertex" }

// Indices tags buffers of 32-bit unsigned element indices.
type Indices struct{}

func (Indices) target() glcore.BufferTarget { return glcore.TargetElementArray }
func (Indices) kindName() string            { return "index" }

// Buffer is a device buffer object filled once at creation.
// The two instantiations share one implementation; the target is resolved
// from K at compile time.
type Buffer[K BufferKind] struct {
	d         glcore.Driver
	handle    glcore.Handle
	byteSize  uint64
	length    int
	destroyed bool
}

type (
	// VertexBuffer holds vertex attribute data.
	VertexBuffer = Buffer[Vertices]
	// IndexBuffer holds uint32 element indices.
	IndexBuffer = Buffer[Indices]
)

// NewVertexBuffer uploads vertices into a new array buffer with static usage.
// The slice is not retained. The buffer is left bound.
func NewVertexBuffer(d glcore.Driver, vertices []float32) (*VertexBuffer, error) {
	if len(vertices) == 0 {
		return nil, ErrEmptyData
	}
	return newBuffer[Vertices](d, unsafe.Slice((*byte)(unsafe.Pointer(&vertices[0])), len(vertices)*4), len(vertices))
}

// NewIndexBuffer uploads indices into a new element array buffer with
// static usage. The slice is not retained. The buffer is left bound, so
// a vertex array bound at this point records it.
func NewIndexBuffer(d glcore.Driver, indices []uint32) (*IndexBuffer, error) {
	if len(indices) == 0 {
		return nil, ErrEmptyData
	}
	return newBuffer[Indices](d, unsafe.Slice((*byte)(unsafe.Pointer(&indices[0])), len(indices)*4), len(indices))
}

func newBuffer[K BufferKind](d glcore.Driver, data []byte, length int) (*Buffer[K], error) {
	if d == nil {
		return nil, ErrNilDriver
	}
	var kind K
	h := d.GenBuffer()
	if !h.Valid() {
		return nil, allocationError(kind.kindName()+" buffer", d.Error())
	}
	d.BindBuffer(kind.target(), h)
	d.BufferData(kind.target(), data)
	if err := checkDriver(d, kind.kindName()+" buffer upload"); err != nil {
		d.DeleteBuffer(h)
		return nil, err
	}

	logger().Debug("buffer created",
		"kind", kind.kindName(), "handle", uint32(h), "bytes", len(data))
	return &Buffer[K]{d: d, handle: h, byteSize: uint64(len(data)), length: length}, nil
}

// Bind makes b the active buffer for its target. Binding a destroyed
// buffer is a no-op.
func (b *Buffer[K]) Bind() {
	if b.destroyed {
		b.warnDestroyed("Bind")
		return
	}
	var kind K
	b.d.BindBuffer(kind.target(), b.handle)
}

// Unbind clears the binding for b's target.
func (b *Buffer[K]) Unbind() {
	var kind K
	b.d.BindBuffer(kind.target(), glcore.NoHandle)
}

// Destroy releases the device memory. Calling it again does nothing.
func (b *Buffer[K]) Destroy() {
	if b.destroyed {
		return
	}
	var kind K
	b.d.DeleteBuffer(b.handle)
	logger().Debug("buffer destroyed", "kind", kind.kindName(), "handle", uint32(b.handle))
	b.handle = glcore.NoHandle
	b.destroyed = true
}

// Handle returns the driver name of the buffer, or glcore.NoHandle after
// Destroy.
func (b *Buffer[K]) Handle() glcore.Handle { return b.handle }

// ByteSize returns the size of the uploaded data in bytes.
func (b *Buffer[K]) ByteSize() uint64 { return b.byteSize }

// Len returns the number of uploaded elements (floats or indices).
func (b *Buffer[K]) Len() int { return b.length }

// Destroyed reports whether Destroy has been called.
func (b *Buffer[K]) Destroyed() bool { return b.destroyed }

// Format returns the index type of the buffer. Only meaningful for
// IndexBuffer; vertex buffers report IndexFormatUndefined.
func (b *Buffer[K]) Format() gputypes.IndexFormat {
	var kind K
	if kind.target() == glcore.TargetElementArray {
		return gputypes.IndexFormatUint32
	}
	return gputypes.IndexFormatUndefined
}

func (b *Buffer[K]) warnDestroyed(op string) {
	var kind K
	logger().Warn(op+" on destroyed buffer", "kind", kind.kindName(), "err", ErrDestroyed)
}
