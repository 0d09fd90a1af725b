package glcore

import "fmt"

// Handle is an opaque driver-assigned object name.
//
// Handles are meaningful only inside the context that created them.
type Handle uint32

// NoHandle is the zero handle. Binding it selects no object.
const NoHandle Handle = 0

// Valid reports whether h names an object.
func (h Handle) Valid() bool {
	return h != NoHandle
}

// BufferTarget selects the binding point a buffer object is attached to.
type BufferTarget uint8

// Buffer targets.
const (
	// TargetArray holds per-vertex attribute data.
	TargetArray BufferTarget = iota
	// TargetElementArray holds vertex indices for indexed draws.
	// Its binding is part of the bound vertex array's state.
	TargetElementArray
)

// String returns the target name.
func (t BufferTarget) String() string {
	switch t {
	case TargetArray:
		return "ArrayBuffer"
	case TargetElementArray:
		return "ElementArrayBuffer"
	default:
		return fmt.Sprintf("BufferTarget(%d)", uint8(t))
	}
}

// ObjectKind identifies a class of driver objects.
type ObjectKind uint8

// Object kinds.
const (
	KindBuffer ObjectKind = iota
	KindVertexArray
	KindShader
	KindProgram
)

// String returns the kind name.
func (k ObjectKind) String() string {
	switch k {
	case KindBuffer:
		return "Buffer"
	case KindVertexArray:
		return "VertexArray"
	case KindShader:
		return "Shader"
	case KindProgram:
		return "Program"
	default:
		return fmt.Sprintf("ObjectKind(%d)", uint8(k))
	}
}

// MaxVertexAttribs is the number of vertex attribute slots every OpenGL 3.3
// implementation is required to provide.
const MaxVertexAttribs = 16

// Status is the outcome of a shader compile or program link.
type Status struct {
	// OK is true when the driver reported success.
	OK bool
	// Log is the driver's info log. It may be non-empty on success (warnings).
	Log string
}
