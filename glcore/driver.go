package glcore

import "github.com/gogpu/gputypes"

// Driver is the graphics context glmesh resources are created in.
//
// A Driver must be current on the calling goroutine's OS thread. It is not
// safe for concurrent use. Errors raised by individual calls are latched
// and reported by [Driver.Error], mirroring how the underlying API reports
// them.
type Driver interface {
	// === Buffers ===

	// GenBuffer allocates a buffer name. It returns NoHandle on failure.
	GenBuffer() Handle

	// BindBuffer makes h the active buffer for target. NoHandle unbinds.
	BindBuffer(target BufferTarget, h Handle)

	// BufferData uploads data into the buffer bound to target with static
	// usage. The driver does not retain data after the call returns.
	BufferData(target BufferTarget, data []byte)

	// DeleteBuffer releases a buffer and its device memory.
	DeleteBuffer(h Handle)

	// === Vertex arrays ===

	// GenVertexArray allocates a vertex array name. It returns NoHandle on
	// failure.
	GenVertexArray() Handle

	// BindVertexArray makes h the active vertex array. NoHandle unbinds.
	BindVertexArray(h Handle)

	// DeleteVertexArray releases a vertex array.
	DeleteVertexArray(h Handle)

	// VertexAttribPointer declares that slot reads values of format from
	// the buffer currently bound to TargetArray, stride bytes apart,
	// starting offset bytes into each vertex. The declaration is recorded
	// in the bound vertex array.
	VertexAttribPointer(slot uint32, format gputypes.VertexFormat, stride, offset uint64)

	// EnableVertexAttribArray enables slot in the bound vertex array.
	EnableVertexAttribArray(slot uint32)

	// === Shaders and programs ===

	// CreateShader allocates a shader object for stage.
	CreateShader(stage gputypes.ShaderStage) Handle

	// ShaderSource replaces the source of shader h.
	ShaderSource(h Handle, source string)

	// CompileShader compiles shader h.
	CompileShader(h Handle)

	// ShaderStatus reports the outcome of the last compile of h.
	ShaderStatus(h Handle) Status

	// DeleteShader releases a shader object.
	DeleteShader(h Handle)

	// CreateProgram allocates a program object.
	CreateProgram() Handle

	// AttachShader attaches shader to program.
	AttachShader(program, shader Handle)

	// LinkProgram links the shaders attached to h.
	LinkProgram(h Handle)

	// ProgramStatus reports the outcome of the last link of h.
	ProgramStatus(h Handle) Status

	// UseProgram makes h the current program. NoHandle deselects.
	UseProgram(h Handle)

	// DeleteProgram releases a program object.
	DeleteProgram(h Handle)

	// === Frame ===

	// Viewport sets the window rectangle draws map to.
	Viewport(x, y, width, height int32)

	// ClearColor sets the color used by Clear.
	ClearColor(c gputypes.Color)

	// Clear clears the color buffer.
	Clear()

	// DrawElements issues one indexed draw of count indices of type format
	// read from the element buffer of the bound vertex array, starting
	// offset bytes into it.
	DrawElements(topology gputypes.PrimitiveTopology, count int32, format gputypes.IndexFormat, offset uint64)

	// Error returns and clears the first error raised since the last call,
	// or nil. Non-nil results are *DriverError.
	Error() error
}

// Describer is implemented by drivers that can report what they are
// running on (vendor, renderer, version).
type Describer interface {
	Describe() string
}
