//go:build linux

package gles

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/gogpu/glmesh/glcore"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal/gles/gl"
)

// ProcAddressFunc resolves an OpenGL entry point by name.
type ProcAddressFunc = gl.ProcAddressFunc

// Driver is a glcore.Driver backed by the current OpenGL context.
type Driver struct {
	ctx *gl.Context
}

var (
	_ glcore.Driver    = (*Driver)(nil)
	_ glcore.Describer = (*Driver)(nil)
)

// New loads the OpenGL entry points with getProcAddr. A context must be
// current on the calling thread.
func New(getProcAddr ProcAddressFunc) (*Driver, error) {
	ctx := &gl.Context{}
	if err := ctx.Load(getProcAddr); err != nil {
		return nil, fmt.Errorf("gles: load OpenGL functions: %w", err)
	}
	return &Driver{ctx: ctx}, nil
}

// Describe returns the GL version and renderer strings.
func (d *Driver) Describe() string {
	return fmt.Sprintf("OpenGL %s (%s)", d.ctx.GetString(gl.VERSION), d.ctx.GetString(gl.RENDERER))
}

// === Buffers ===

func (d *Driver) GenBuffer() glcore.Handle {
	return glcore.Handle(d.ctx.GenBuffers(1))
}

func (d *Driver) BindBuffer(target glcore.BufferTarget, h glcore.Handle) {
	d.ctx.BindBuffer(bufferTarget(target), uint32(h))
}

// BufferData allocates the store, then fills it with glBufferSubData, the
// same sequence the wgpu GLES backend uses for buffer creation and writes.
func (d *Driver) BufferData(target glcore.BufferTarget, data []byte) {
	t := bufferTarget(target)
	d.ctx.BufferData(t, len(data), 0, gl.STATIC_DRAW)
	if len(data) == 0 {
		return
	}
	d.ctx.BufferSubData(t, 0, len(data), uintptr(unsafe.Pointer(&data[0])))
	runtime.KeepAlive(data)
}

func (d *Driver) DeleteBuffer(h glcore.Handle) {
	d.ctx.DeleteBuffers(uint32(h))
}

// === Vertex arrays ===

func (d *Driver) GenVertexArray() glcore.Handle {
	return glcore.Handle(d.ctx.GenVertexArrays(1))
}

func (d *Driver) BindVertexArray(h glcore.Handle) {
	d.ctx.BindVertexArray(uint32(h))
}

func (d *Driver) DeleteVertexArray(h glcore.Handle) {
	d.ctx.DeleteVertexArrays(uint32(h))
}

// VertexAttribPointer passes 0 as the type for unknown formats so that the
// driver raises INVALID_ENUM.
func (d *Driver) VertexAttribPointer(slot uint32, format gputypes.VertexFormat, stride, offset uint64) {
	size, typ, normalized, _ := vertexType(format)
	d.ctx.VertexAttribPointer(slot, size, typ, normalized, int32(stride), uintptr(offset))
}

func (d *Driver) EnableVertexAttribArray(slot uint32) {
	d.ctx.EnableVertexAttribArray(slot)
}

// === Shaders and programs ===

func (d *Driver) CreateShader(stage gputypes.ShaderStage) glcore.Handle {
	return glcore.Handle(d.ctx.CreateShader(shaderType(stage)))
}

func (d *Driver) ShaderSource(h glcore.Handle, source string) {
	d.ctx.ShaderSource(uint32(h), source)
}

func (d *Driver) CompileShader(h glcore.Handle) {
	d.ctx.CompileShader(uint32(h))
}

func (d *Driver) ShaderStatus(h glcore.Handle) glcore.Status {
	var ok int32
	d.ctx.GetShaderiv(uint32(h), gl.COMPILE_STATUS, &ok)
	return glcore.Status{OK: ok == gl.TRUE, Log: d.ctx.GetShaderInfoLog(uint32(h))}
}

func (d *Driver) DeleteShader(h glcore.Handle) {
	d.ctx.DeleteShader(uint32(h))
}

func (d *Driver) CreateProgram() glcore.Handle {
	return glcore.Handle(d.ctx.CreateProgram())
}

func (d *Driver) AttachShader(program, shader glcore.Handle) {
	d.ctx.AttachShader(uint32(program), uint32(shader))
}

func (d *Driver) LinkProgram(h glcore.Handle) {
	d.ctx.LinkProgram(uint32(h))
}

func (d *Driver) ProgramStatus(h glcore.Handle) glcore.Status {
	var ok int32
	d.ctx.GetProgramiv(uint32(h), gl.LINK_STATUS, &ok)
	return glcore.Status{OK: ok == gl.TRUE, Log: d.ctx.GetProgramInfoLog(uint32(h))}
}

func (d *Driver) UseProgram(h glcore.Handle) {
	d.ctx.UseProgram(uint32(h))
}

func (d *Driver) DeleteProgram(h glcore.Handle) {
	d.ctx.DeleteProgram(uint32(h))
}

// === Frame ===

func (d *Driver) Viewport(x, y, width, height int32) {
	d.ctx.Viewport(x, y, width, height)
}

func (d *Driver) ClearColor(c gputypes.Color) {
	d.ctx.ClearColor(float32(c.R), float32(c.G), float32(c.B), float32(c.A))
}

func (d *Driver) Clear() {
	d.ctx.Clear(gl.COLOR_BUFFER_BIT)
}

func (d *Driver) DrawElements(topology gputypes.PrimitiveTopology, count int32, format gputypes.IndexFormat, offset uint64) {
	d.ctx.DrawElements(primitiveMode(topology), count, indexType(format), uintptr(offset))
}

// Error returns and clears the GL error flag.
func (d *Driver) Error() error {
	return glcore.NewDriverError("", glcore.ErrorCode(d.ctx.GetError()))
}
