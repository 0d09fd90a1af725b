package glmesh

import (
	"fmt"
	"math"
	"sort"

	"github.com/gogpu/glmesh/glcore"
	"github.com/gogpu/gputypes"
)

// PositionFormat is the attribute format used by Attach: three float32
// components per vertex, tightly packed.
const PositionFormat = gputypes.VertexFormatFloat32x3

// Attribute describes how one attribute slot reads from a vertex buffer.
// Buffer only names the source buffer; the layout does not own it.
type Attribute struct {
	Slot   uint32
	Format gputypes.VertexFormat
	// Stride is the distance between consecutive vertices in bytes.
	// Zero means tightly packed.
	Stride uint64
	Offset uint64
	Buffer glcore.Handle
}

// ComponentCount returns the number of components the slot reads per vertex.
func (a Attribute) ComponentCount() int {
	return glcore.DescribeFormat(a.Format).Components
}

// VertexLayout is a vertex array object: the set of attribute slot
// descriptions plus the element buffer bound while it was active.
type VertexLayout struct {
	d         glcore.Driver
	handle    glcore.Handle
	attrs     map[uint32]Attribute
	destroyed bool
}

// NewVertexLayout allocates an empty vertex array. It is not bound.
func NewVertexLayout(d glcore.Driver) (*VertexLayout, error) {
	if d == nil {
		return nil, ErrNilDriver
	}
	h := d.GenVertexArray()
	if !h.Valid() {
		return nil, allocationError("vertex array", d.Error())
	}
	logger().Debug("vertex layout created", "handle", uint32(h))
	return &VertexLayout{d: d, handle: h, attrs: make(map[uint32]Attribute)}, nil
}

// Attach makes slot read three float32 components per vertex from buf,
// with a stride of 12 bytes and offset 0. The layout is left bound and buf
// is unbound afterwards.
func (l *VertexLayout) Attach(buf *VertexBuffer, slot uint32) error {
	return l.AttachAttribute(buf, Attribute{
		Slot:   slot,
		Format: PositionFormat,
		Stride: PositionFormat.Size(),
	})
}

// AttachAttribute declares attribute a as reading from buf and enables its
// slot. a.Buffer is ignored and set to buf's handle. Re-attaching a slot
// replaces its previous description.
func (l *VertexLayout) AttachAttribute(buf *VertexBuffer, a Attribute) error {
	a, err := l.checkAttribute(buf, a)
	if err != nil {
		return err
	}
	return l.attach(buf, a)
}

// AttachBufferLayout attaches every attribute of desc, reading from buf.
// Only per-vertex stepping is supported. All attributes are checked before
// any is attached, so a rejected desc leaves the layout unchanged.
func (l *VertexLayout) AttachBufferLayout(buf *VertexBuffer, desc gputypes.VertexBufferLayout) error {
	if desc.StepMode == gputypes.VertexStepModeInstance {
		return fmt.Errorf("%w: instance step mode", ErrLayoutMismatch)
	}
	attrs := make([]Attribute, len(desc.Attributes))
	for i, va := range desc.Attributes {
		a, err := l.checkAttribute(buf, Attribute{
			Slot:   va.ShaderLocation,
			Format: va.Format,
			Stride: desc.ArrayStride,
			Offset: va.Offset,
		})
		if err != nil {
			return err
		}
		attrs[i] = a
	}
	for _, a := range attrs {
		if err := l.attach(buf, a); err != nil {
			return err
		}
	}
	return nil
}

// checkAttribute validates a against l and buf and fills in a zero stride.
func (l *VertexLayout) checkAttribute(buf *VertexBuffer, a Attribute) (Attribute, error) {
	if l.destroyed {
		return a, fmt.Errorf("glmesh: attach to vertex layout: %w", ErrDestroyed)
	}
	if buf == nil || buf.Destroyed() {
		return a, fmt.Errorf("glmesh: attach vertex buffer: %w", ErrDestroyed)
	}
	if a.Slot >= glcore.MaxVertexAttribs {
		return a, fmt.Errorf("%w: %d (max %d)", ErrInvalidSlot, a.Slot, glcore.MaxVertexAttribs-1)
	}
	size := a.Format.Size()
	if size == 0 || glcore.DescribeFormat(a.Format).Components == 0 {
		return a, fmt.Errorf("%w: unsupported format %s", ErrLayoutMismatch, a.Format)
	}
	if a.Stride == 0 {
		a.Stride = size
	}
	switch {
	case a.Stride > math.MaxInt32:
		return a, fmt.Errorf("%w: stride %d exceeds %d", ErrLayoutMismatch, a.Stride, math.MaxInt32)
	case a.Offset > a.Stride || size > a.Stride-a.Offset:
		return a, fmt.Errorf("%w: %s at offset %d exceeds stride %d", ErrLayoutMismatch, a.Format, a.Offset, a.Stride)
	case buf.ByteSize()%a.Stride != 0:
		return a, fmt.Errorf("%w: %d bytes is not a whole number of %d-byte vertices",
			ErrLayoutMismatch, buf.ByteSize(), a.Stride)
	}
	return a, nil
}

func (l *VertexLayout) attach(buf *VertexBuffer, a Attribute) error {
	l.d.BindVertexArray(l.handle)
	buf.Bind()
	l.d.VertexAttribPointer(a.Slot, a.Format, a.Stride, a.Offset)
	l.d.EnableVertexAttribArray(a.Slot)
	buf.Unbind()
	if err := checkDriver(l.d, fmt.Sprintf("attach slot %d", a.Slot)); err != nil {
		return err
	}

	a.Buffer = buf.Handle()
	l.attrs[a.Slot] = a
	logger().Debug("attribute attached",
		"layout", uint32(l.handle), "slot", a.Slot, "format", a.Format.String(),
		"stride", a.Stride, "offset", a.Offset, "buffer", uint32(a.Buffer))
	return nil
}

// Attributes returns the attached attributes ordered by slot.
func (l *VertexLayout) Attributes() []Attribute {
	out := make([]Attribute, 0, len(l.attrs))
	for _, a := range l.attrs {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slot < out[j].Slot })
	return out
}

// Bind makes l the active vertex array. Binding a destroyed layout is a no-op.
func (l *VertexLayout) Bind() {
	if l.destroyed {
		logger().Warn("Bind on destroyed vertex layout", "err", ErrDestroyed)
		return
	}
	l.d.BindVertexArray(l.handle)
}

// Unbind binds vertex array zero.
func (l *VertexLayout) Unbind() {
	l.d.BindVertexArray(glcore.NoHandle)
}

// Destroy releases the vertex array. Attached buffers are not affected.
// Calling it again does nothing.
func (l *VertexLayout) Destroy() {
	if l.destroyed {
		return
	}
	l.d.DeleteVertexArray(l.handle)
	logger().Debug("vertex layout destroyed", "handle", uint32(l.handle))
	l.handle = glcore.NoHandle
	l.attrs = nil
	l.destroyed = true
}

// Handle returns the driver name of the vertex array, or glcore.NoHandle
// after Destroy.
func (l *VertexLayout) Handle() glcore.Handle { return l.handle }
