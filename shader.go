package glmesh

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/gogpu/glmesh/glcore"
	"github.com/gogpu/gputypes"
)

// ShaderProgram is a linked vertex + fragment program.
type ShaderProgram struct {
	d         glcore.Driver
	handle    glcore.Handle
	destroyed bool
}

// NewShaderProgram compiles both stages, links them and returns the
// program. The intermediate stage objects are deleted whether or not the
// build succeeds, and no program object survives a failure.
//
// A stage that does not compile yields a *CompileError, a program that does
// not link yields a *LinkError.
func NewShaderProgram(d glcore.Driver, vertexSource, fragmentSource string) (*ShaderProgram, error) {
	if d == nil {
		return nil, ErrNilDriver
	}

	vert, err := compileStage(d, gputypes.ShaderStageVertex, vertexSource)
	if err != nil {
		return nil, err
	}
	defer d.DeleteShader(vert)

	frag, err := compileStage(d, gputypes.ShaderStageFragment, fragmentSource)
	if err != nil {
		return nil, err
	}
	defer d.DeleteShader(frag)

	p := d.CreateProgram()
	if !p.Valid() {
		return nil, allocationError("shader program", d.Error())
	}
	d.AttachShader(p, vert)
	d.AttachShader(p, frag)
	d.LinkProgram(p)

	if st := d.ProgramStatus(p); !st.OK {
		d.DeleteProgram(p)
		d.Error()
		return nil, &LinkError{Log: st.Log}
	}
	if err := checkDriver(d, "link shader program"); err != nil {
		d.DeleteProgram(p)
		return nil, err
	}

	logger().Debug("shader program linked", "handle", uint32(p))
	return &ShaderProgram{d: d, handle: p}, nil
}

func compileStage(d glcore.Driver, stage gputypes.ShaderStage, source string) (glcore.Handle, error) {
	h := d.CreateShader(stage)
	if !h.Valid() {
		return glcore.NoHandle, allocationError(stageName(stage)+" shader", d.Error())
	}
	d.ShaderSource(h, source)
	d.CompileShader(h)
	if st := d.ShaderStatus(h); !st.OK {
		d.DeleteShader(h)
		d.Error()
		return glcore.NoHandle, &CompileError{
			Stage:   stage,
			Excerpt: excerpt(source, st.Log),
			Log:     st.Log,
		}
	}
	return h, nil
}

// LoadShaderProgram reads the two stage sources from disk and builds a
// program from them. A missing file yields an error wrapping
// ErrFileNotFound that names the path.
func LoadShaderProgram(d glcore.Driver, vertexPath, fragmentPath string) (*ShaderProgram, error) {
	return loadShaderProgram(d, os.ReadFile, vertexPath, fragmentPath)
}

// LoadShaderProgramFS is LoadShaderProgram reading from fsys.
func LoadShaderProgramFS(d glcore.Driver, fsys fs.FS, vertexPath, fragmentPath string) (*ShaderProgram, error) {
	return loadShaderProgram(d, func(name string) ([]byte, error) {
		return fs.ReadFile(fsys, name)
	}, vertexPath, fragmentPath)
}

func loadShaderProgram(d glcore.Driver, read func(string) ([]byte, error), vertexPath, fragmentPath string) (*ShaderProgram, error) {
	vertexSource, err := readSource(read, vertexPath)
	if err != nil {
		return nil, err
	}
	fragmentSource, err := readSource(read, fragmentPath)
	if err != nil {
		return nil, err
	}
	p, err := NewShaderProgram(d, vertexSource, fragmentSource)
	if err != nil {
		var ce *CompileError
		if errors.As(err, &ce) {
			path := vertexPath
			if ce.Stage == gputypes.ShaderStageFragment {
				path = fragmentPath
			}
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return nil, err
	}
	return p, nil
}

func readSource(read func(string) ([]byte, error), path string) (string, error) {
	b, err := read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return "", fmt.Errorf("glmesh: read shader %s: %w", path, err)
	}
	return string(b), nil
}

// Activate makes p the current program. Activating a destroyed program is
// a no-op.
func (p *ShaderProgram) Activate() {
	if p.destroyed {
		logger().Warn("Activate on destroyed shader program", "err", ErrDestroyed)
		return
	}
	p.d.UseProgram(p.handle)
}

// Deactivate selects program zero.
func (p *ShaderProgram) Deactivate() {
	p.d.UseProgram(glcore.NoHandle)
}

// Destroy releases the program. Calling it again does nothing.
func (p *ShaderProgram) Destroy() {
	if p.destroyed {
		return
	}
	p.d.DeleteProgram(p.handle)
	logger().Debug("shader program destroyed", "handle", uint32(p.handle))
	p.handle = glcore.NoHandle
	p.destroyed = true
}

// Handle returns the driver name of the program, or glcore.NoHandle after
// Destroy.
func (p *ShaderProgram) Handle() glcore.Handle { return p.handle }
