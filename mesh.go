package glmesh

import (
	"fmt"

	"github.com/gogpu/glmesh/glcore"
	"github.com/gogpu/gputypes"
)

// Mesh is an indexed triangle mesh: a vertex layout reading positions from
// slot 0 of a vertex buffer, plus the index buffer recorded in the layout.
type Mesh struct {
	d        glcore.Driver
	Layout   *VertexLayout
	Vertices *VertexBuffer
	Indices  *IndexBuffer
}

// NewMesh uploads vertices (x, y, z per vertex) and indices and records
// them in a new vertex layout. Every object is unbound on return.
//
// If any step fails, the objects created so far are destroyed.
func NewMesh(d glcore.Driver, vertices []float32, indices []uint32) (m *Mesh, err error) {
	if d == nil {
		return nil, ErrNilDriver
	}
	if len(vertices)%3 != 0 {
		return nil, fmt.Errorf("%w: %d floats is not a whole number of positions", ErrLayoutMismatch, len(vertices))
	}
	count := uint32(len(vertices) / 3)
	for i, idx := range indices {
		if idx >= count {
			return nil, fmt.Errorf("%w: index %d at %d out of range for %d vertices", ErrLayoutMismatch, idx, i, count)
		}
	}

	m = &Mesh{d: d}
	defer func() {
		if err != nil {
			m.Destroy()
			m = nil
		}
	}()

	if m.Layout, err = NewVertexLayout(d); err != nil {
		return m, err
	}
	// The element buffer binding is vertex array state, so the layout must
	// be bound while the index buffer is created.
	m.Layout.Bind()
	if m.Vertices, err = NewVertexBuffer(d, vertices); err != nil {
		return m, err
	}
	if m.Indices, err = NewIndexBuffer(d, indices); err != nil {
		return m, err
	}
	if err = m.Layout.Attach(m.Vertices, 0); err != nil {
		return m, err
	}
	m.Layout.Unbind()
	m.Vertices.Unbind()
	m.Indices.Unbind()
	return m, nil
}

// Draw issues one indexed triangle-list draw of the whole mesh with the
// current program.
func (m *Mesh) Draw() error {
	return m.draw(gputypes.PrimitiveTopologyTriangleList)
}

func (m *Mesh) draw(topology gputypes.PrimitiveTopology) error {
	if !m.live() {
		return fmt.Errorf("glmesh: draw mesh: %w", ErrDestroyed)
	}
	m.Layout.Bind()
	m.d.DrawElements(topology, int32(m.Indices.Len()), m.Indices.Format(), 0)
	return nil
}

// live reports whether m was built by NewMesh and not destroyed.
func (m *Mesh) live() bool {
	return m != nil && m.d != nil && m.Layout != nil && m.Indices != nil &&
		!m.Layout.destroyed && !m.Indices.Destroyed()
}

// Destroy releases the layout and both buffers. It is safe on a partially
// built mesh and safe to call twice.
func (m *Mesh) Destroy() {
	if m == nil {
		return
	}
	if m.Layout != nil {
		m.Layout.Destroy()
	}
	if m.Vertices != nil {
		m.Vertices.Destroy()
	}
	if m.Indices != nil {
		m.Indices.Destroy()
	}
}
