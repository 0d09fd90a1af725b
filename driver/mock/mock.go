package mock

import (
	"fmt"
	"sort"

	"github.com/gogpu/glmesh/glcore"
	"github.com/gogpu/gputypes"
)

// AttribState is the recorded state of one vertex attribute slot.
type AttribState struct {
	Enabled    bool
	Format     gputypes.VertexFormat
	Components int
	Stride     uint64
	Offset     uint64
	// Buffer is the array buffer that was bound when the pointer was set.
	Buffer glcore.Handle
}

// DrawCall is one captured DrawElements call.
type DrawCall struct {
	Topology      gputypes.PrimitiveTopology
	Count         int32
	Format        gputypes.IndexFormat
	Offset        uint64
	Program       glcore.Handle
	VertexArray   glcore.Handle
	ElementBuffer glcore.Handle
	// Frame is the number of Clear calls issued before the draw.
	Frame int
}

type buffer struct {
	data []byte
}

type vertexArray struct {
	element glcore.Handle
	attribs map[uint32]*AttribState
}

type shader struct {
	stage    gputypes.ShaderStage
	source   string
	compiled bool
	status   glcore.Status
}

type program struct {
	attached []*shader
	linked   bool
	status   glcore.Status
}

// DefaultLogLimit is the LogLimit set by New.
const DefaultLogLimit = 4096

// Driver is an in-memory glcore.Driver. The zero value is not usable; call New.
type Driver struct {
	// LogLimit bounds the call and draw logs returned by Calls and Draws
	// to the most recent entries. Zero keeps everything.
	LogLimit int
	// Compile checks a shader stage. Defaults to CheckGLSL.
	Compile func(stage gputypes.ShaderStage, source string) glcore.Status
	// Link checks a vertex/fragment pair. Defaults to CheckLink.
	Link func(vertex, fragment string) glcore.Status

	next     glcore.Handle
	buffers  map[glcore.Handle]*buffer
	arrays   map[glcore.Handle]*vertexArray
	shaders  map[glcore.Handle]*shader
	programs map[glcore.Handle]*program

	arrayBuffer    glcore.Handle
	defaultElement glcore.Handle
	vertexArray    glcore.Handle
	current        glcore.Handle

	clearColor gputypes.Color
	viewport   [4]int32
	clears     int
	draws      []DrawCall
	calls      []string

	err     error
	inject  map[string]glcore.ErrorCode
	failGen map[glcore.ObjectKind]bool
}

var (
	_ glcore.Driver    = (*Driver)(nil)
	_ glcore.Describer = (*Driver)(nil)
)

// New returns an empty driver with no objects and nothing bound.
func New() *Driver {
	return &Driver{
		LogLimit: DefaultLogLimit,
		Compile:  CheckGLSL,
		Link:     CheckLink,
		buffers:  make(map[glcore.Handle]*buffer),
		arrays:   make(map[glcore.Handle]*vertexArray),
		shaders:  make(map[glcore.Handle]*shader),
		programs: make(map[glcore.Handle]*program),
		inject:   make(map[string]glcore.ErrorCode),
		failGen:  make(map[glcore.ObjectKind]bool),
	}
}

// Describe implements glcore.Describer.
func (d *Driver) Describe() string { return "mock OpenGL 3.3 core" }

// InjectError makes the next call to op (a GL entry point name such as
// "glBufferData") raise code instead of taking effect.
func (d *Driver) InjectError(op string, code glcore.ErrorCode) {
	d.inject[op] = code
}

// FailGen makes the next allocation of kind return glcore.NoHandle.
func (d *Driver) FailGen(kind glcore.ObjectKind) {
	d.failGen[kind] = true
}

// enter records a call and reports whether an injected error consumed it.
func (d *Driver) enter(op string) bool {
	d.calls = trimLog(append(d.calls, op), d.LogLimit)
	if code, ok := d.inject[op]; ok {
		delete(d.inject, op)
		d.raise(op, code)
		return true
	}
	return false
}

// raise latches the first error, like the GL error flag.
func (d *Driver) raise(op string, code glcore.ErrorCode) {
	if d.err == nil {
		d.err = &glcore.DriverError{Op: op, Code: code}
	}
}

func (d *Driver) alloc(kind glcore.ObjectKind) glcore.Handle {
	if d.failGen[kind] {
		delete(d.failGen, kind)
		return glcore.NoHandle
	}
	d.next++
	return d.next
}

// === Buffers ===

func (d *Driver) GenBuffer() glcore.Handle {
	if d.enter("glGenBuffers") {
		return glcore.NoHandle
	}
	h := d.alloc(glcore.KindBuffer)
	if h.Valid() {
		d.buffers[h] = &buffer{}
	}
	return h
}

func (d *Driver) BindBuffer(target glcore.BufferTarget, h glcore.Handle) {
	const op = "glBindBuffer"
	if d.enter(op) {
		return
	}
	if h.Valid() && d.buffers[h] == nil {
		d.raise(op, glcore.InvalidValue)
		return
	}
	switch target {
	case glcore.TargetArray:
		d.arrayBuffer = h
	case glcore.TargetElementArray:
		if va := d.arrays[d.vertexArray]; va != nil {
			va.element = h
		} else {
			d.defaultElement = h
		}
	default:
		d.raise(op, glcore.InvalidEnum)
	}
}

func (d *Driver) BufferData(target glcore.BufferTarget, data []byte) {
	const op = "glBufferData"
	if d.enter(op) {
		return
	}
	b := d.buffers[d.BoundBuffer(target)]
	if b == nil {
		d.raise(op, glcore.InvalidOperation)
		return
	}
	b.data = append([]byte(nil), data...)
}

func (d *Driver) DeleteBuffer(h glcore.Handle) {
	if d.enter("glDeleteBuffers") || d.buffers[h] == nil {
		return
	}
	delete(d.buffers, h)
	if d.arrayBuffer == h {
		d.arrayBuffer = glcore.NoHandle
	}
	if d.defaultElement == h {
		d.defaultElement = glcore.NoHandle
	}
	if va := d.arrays[d.vertexArray]; va != nil && va.element == h {
		va.element = glcore.NoHandle
	}
}

// === Vertex arrays ===

func (d *Driver) GenVertexArray() glcore.Handle {
	if d.enter("glGenVertexArrays") {
		return glcore.NoHandle
	}
	h := d.alloc(glcore.KindVertexArray)
	if h.Valid() {
		d.arrays[h] = &vertexArray{attribs: make(map[uint32]*AttribState)}
	}
	return h
}

func (d *Driver) BindVertexArray(h glcore.Handle) {
	const op = "glBindVertexArray"
	if d.enter(op) {
		return
	}
	if h.Valid() && d.arrays[h] == nil {
		d.raise(op, glcore.InvalidOperation)
		return
	}
	d.vertexArray = h
}

func (d *Driver) DeleteVertexArray(h glcore.Handle) {
	if d.enter("glDeleteVertexArrays") || d.arrays[h] == nil {
		return
	}
	delete(d.arrays, h)
	if d.vertexArray == h {
		d.vertexArray = glcore.NoHandle
	}
}

func (d *Driver) VertexAttribPointer(slot uint32, format gputypes.VertexFormat, stride, offset uint64) {
	const op = "glVertexAttribPointer"
	if d.enter(op) {
		return
	}
	va := d.arrays[d.vertexArray]
	info := glcore.DescribeFormat(format)
	switch {
	case slot >= glcore.MaxVertexAttribs:
		d.raise(op, glcore.InvalidValue)
		return
	case info.Components == 0:
		d.raise(op, glcore.InvalidEnum)
		return
	case va == nil, !d.arrayBuffer.Valid():
		d.raise(op, glcore.InvalidOperation)
		return
	}
	a := va.attrib(slot)
	a.Format = format
	a.Components = info.Components
	a.Stride = stride
	a.Offset = offset
	a.Buffer = d.arrayBuffer
}

func (d *Driver) EnableVertexAttribArray(slot uint32) {
	const op = "glEnableVertexAttribArray"
	if d.enter(op) {
		return
	}
	va := d.arrays[d.vertexArray]
	switch {
	case slot >= glcore.MaxVertexAttribs:
		d.raise(op, glcore.InvalidValue)
	case va == nil:
		d.raise(op, glcore.InvalidOperation)
	default:
		va.attrib(slot).Enabled = true
	}
}

func (va *vertexArray) attrib(slot uint32) *AttribState {
	a := va.attribs[slot]
	if a == nil {
		a = &AttribState{}
		va.attribs[slot] = a
	}
	return a
}

// === Shaders and programs ===

func (d *Driver) CreateShader(stage gputypes.ShaderStage) glcore.Handle {
	const op = "glCreateShader"
	if d.enter(op) {
		return glcore.NoHandle
	}
	if stage != gputypes.ShaderStageVertex && stage != gputypes.ShaderStageFragment {
		d.raise(op, glcore.InvalidEnum)
		return glcore.NoHandle
	}
	h := d.alloc(glcore.KindShader)
	if h.Valid() {
		d.shaders[h] = &shader{stage: stage}
	}
	return h
}

func (d *Driver) ShaderSource(h glcore.Handle, source string) {
	const op = "glShaderSource"
	if d.enter(op) {
		return
	}
	s := d.shaders[h]
	if s == nil {
		d.raise(op, glcore.InvalidValue)
		return
	}
	s.source = source
}

func (d *Driver) CompileShader(h glcore.Handle) {
	const op = "glCompileShader"
	if d.enter(op) {
		return
	}
	s := d.shaders[h]
	if s == nil {
		d.raise(op, glcore.InvalidValue)
		return
	}
	s.status = d.Compile(s.stage, s.source)
	s.compiled = s.status.OK
}

func (d *Driver) ShaderStatus(h glcore.Handle) glcore.Status {
	const op = "glGetShaderiv"
	if d.enter(op) {
		return glcore.Status{}
	}
	s := d.shaders[h]
	if s == nil {
		d.raise(op, glcore.InvalidValue)
		return glcore.Status{}
	}
	return s.status
}

// DeleteShader releases the shader name. Programs the shader is attached
// to keep using it, as the driver only frees a flagged shader once it is
// detached.
func (d *Driver) DeleteShader(h glcore.Handle) {
	if d.enter("glDeleteShader") {
		return
	}
	delete(d.shaders, h)
}

func (d *Driver) CreateProgram() glcore.Handle {
	if d.enter("glCreateProgram") {
		return glcore.NoHandle
	}
	h := d.alloc(glcore.KindProgram)
	if h.Valid() {
		d.programs[h] = &program{}
	}
	return h
}

func (d *Driver) AttachShader(p, s glcore.Handle) {
	const op = "glAttachShader"
	if d.enter(op) {
		return
	}
	prog, sh := d.programs[p], d.shaders[s]
	if prog == nil || sh == nil {
		d.raise(op, glcore.InvalidValue)
		return
	}
	for _, a := range prog.attached {
		if a == sh {
			d.raise(op, glcore.InvalidOperation)
			return
		}
	}
	prog.attached = append(prog.attached, sh)
}

func (d *Driver) LinkProgram(h glcore.Handle) {
	const op = "glLinkProgram"
	if d.enter(op) {
		return
	}
	p := d.programs[h]
	if p == nil {
		d.raise(op, glcore.InvalidValue)
		return
	}
	p.status = d.link(p)
	p.linked = p.status.OK
}

func (d *Driver) link(p *program) glcore.Status {
	var vertex, fragment *shader
	for _, s := range p.attached {
		if !s.compiled {
			return glcore.Status{Log: "error: linking with uncompiled/unspecialized shader"}
		}
		switch s.stage {
		case gputypes.ShaderStageVertex:
			vertex = s
		case gputypes.ShaderStageFragment:
			fragment = s
		}
	}
	switch {
	case vertex == nil:
		return glcore.Status{Log: "error: program lacks a vertex shader"}
	case fragment == nil:
		return glcore.Status{Log: "error: program lacks a fragment shader"}
	}
	return d.Link(vertex.source, fragment.source)
}

func (d *Driver) ProgramStatus(h glcore.Handle) glcore.Status {
	const op = "glGetProgramiv"
	if d.enter(op) {
		return glcore.Status{}
	}
	p := d.programs[h]
	if p == nil {
		d.raise(op, glcore.InvalidValue)
		return glcore.Status{}
	}
	return p.status
}

func (d *Driver) UseProgram(h glcore.Handle) {
	const op = "glUseProgram"
	if d.enter(op) {
		return
	}
	if h.Valid() {
		p := d.programs[h]
		if p == nil {
			d.raise(op, glcore.InvalidValue)
			return
		}
		if !p.linked {
			d.raise(op, glcore.InvalidOperation)
			return
		}
	}
	d.current = h
}

// DeleteProgram releases a program. Unlike a real driver, which defers
// deleting the current program, the mock deselects it immediately.
func (d *Driver) DeleteProgram(h glcore.Handle) {
	if d.enter("glDeleteProgram") || d.programs[h] == nil {
		return
	}
	delete(d.programs, h)
	if d.current == h {
		d.current = glcore.NoHandle
	}
}

// === Frame ===

func (d *Driver) Viewport(x, y, width, height int32) {
	const op = "glViewport"
	if d.enter(op) {
		return
	}
	if width < 0 || height < 0 {
		d.raise(op, glcore.InvalidValue)
		return
	}
	d.viewport = [4]int32{x, y, width, height}
}

func (d *Driver) ClearColor(c gputypes.Color) {
	if d.enter("glClearColor") {
		return
	}
	d.clearColor = c
}

func (d *Driver) Clear() {
	if d.enter("glClear") {
		return
	}
	d.clears++
}

func (d *Driver) DrawElements(topology gputypes.PrimitiveTopology, count int32, format gputypes.IndexFormat, offset uint64) {
	const op = "glDrawElements"
	if d.enter(op) {
		return
	}
	if count < 0 {
		d.raise(op, glcore.InvalidValue)
		return
	}
	if format.Size() == 0 {
		d.raise(op, glcore.InvalidEnum)
		return
	}
	va := d.arrays[d.vertexArray]
	if va == nil || !d.current.Valid() {
		d.raise(op, glcore.InvalidOperation)
		return
	}
	eb := d.buffers[va.element]
	if eb == nil || offset+uint64(count)*uint64(format.Size()) > uint64(len(eb.data)) {
		d.raise(op, glcore.InvalidOperation)
		return
	}
	d.draws = append(d.draws, DrawCall{
		Topology:      topology,
		Count:         count,
		Format:        format,
		Offset:        offset,
		Program:       d.current,
		VertexArray:   d.vertexArray,
		ElementBuffer: va.element,
		Frame:         d.clears,
	})
	d.draws = trimLog(d.draws, d.LogLimit)
}

// trimLog drops the oldest entries once s holds twice limit, so appends
// stay amortized O(1).
func trimLog[T any](s []T, limit int) []T {
	if limit <= 0 || len(s) < 2*limit {
		return s
	}
	n := copy(s, s[len(s)-limit:])
	return s[:n]
}

// tail copies at most the last limit entries of s.
func tail[T any](s []T, limit int) []T {
	if limit > 0 && len(s) > limit {
		s = s[len(s)-limit:]
	}
	return append([]T(nil), s...)
}

func (d *Driver) Error() error {
	err := d.err
	d.err = nil
	return err
}

// === Inspection ===

// Live returns the number of live objects of kind.
func (d *Driver) Live(kind glcore.ObjectKind) int {
	switch kind {
	case glcore.KindBuffer:
		return len(d.buffers)
	case glcore.KindVertexArray:
		return len(d.arrays)
	case glcore.KindShader:
		return len(d.shaders)
	case glcore.KindProgram:
		return len(d.programs)
	default:
		panic(fmt.Sprintf("mock: unknown object kind %v", kind))
	}
}

// LiveObjects returns the number of live objects of every kind.
func (d *Driver) LiveObjects() int {
	return len(d.buffers) + len(d.arrays) + len(d.shaders) + len(d.programs)
}

// BoundBuffer returns the buffer bound to target. The element array
// binding is read from the bound vertex array when there is one.
func (d *Driver) BoundBuffer(target glcore.BufferTarget) glcore.Handle {
	switch target {
	case glcore.TargetArray:
		return d.arrayBuffer
	case glcore.TargetElementArray:
		if va := d.arrays[d.vertexArray]; va != nil {
			return va.element
		}
		return d.defaultElement
	default:
		return glcore.NoHandle
	}
}

// BoundVertexArray returns the bound vertex array.
func (d *Driver) BoundVertexArray() glcore.Handle { return d.vertexArray }

// CurrentProgram returns the program selected by UseProgram.
func (d *Driver) CurrentProgram() glcore.Handle { return d.current }

// ElementBinding returns the element buffer recorded in vertex array h.
func (d *Driver) ElementBinding(h glcore.Handle) glcore.Handle {
	if va := d.arrays[h]; va != nil {
		return va.element
	}
	return glcore.NoHandle
}

// Attrib returns the state of slot in vertex array h.
func (d *Driver) Attrib(h glcore.Handle, slot uint32) (AttribState, bool) {
	va := d.arrays[h]
	if va == nil {
		return AttribState{}, false
	}
	a, ok := va.attribs[slot]
	if !ok {
		return AttribState{}, false
	}
	return *a, true
}

// EnabledSlots returns the enabled slots of vertex array h in order.
func (d *Driver) EnabledSlots(h glcore.Handle) []uint32 {
	va := d.arrays[h]
	if va == nil {
		return nil
	}
	var slots []uint32
	for slot, a := range va.attribs {
		if a.Enabled {
			slots = append(slots, slot)
		}
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })
	return slots
}

// Contents returns a copy of the data uploaded to buffer h.
func (d *Driver) Contents(h glcore.Handle) ([]byte, bool) {
	b := d.buffers[h]
	if b == nil {
		return nil, false
	}
	return append([]byte(nil), b.data...), true
}

// Draws returns the captured draw calls, keeping at most the last LogLimit.
func (d *Driver) Draws() []DrawCall {
	return tail(d.draws, d.LogLimit)
}

// Frames returns the number of Clear calls.
func (d *Driver) Frames() int { return d.clears }

// Calls returns the GL entry points invoked so far, in order, keeping at
// most the last LogLimit.
func (d *Driver) Calls() []string {
	return tail(d.calls, d.LogLimit)
}

// ClearColorValue returns the color set by ClearColor.
func (d *Driver) ClearColorValue() gputypes.Color { return d.clearColor }

// ViewportRect returns the rectangle set by Viewport.
func (d *Driver) ViewportRect() [4]int32 { return d.viewport }
