package glmesh

import (
	"fmt"
	"strings"

	"github.com/gogpu/glmesh/glcore"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/naga/glsl"
	"github.com/gogpu/naga/ir"
)

// WGSLOption configures WGSL translation.
type WGSLOption func(*wgslOptions)

type wgslOptions struct {
	vertexEntry   string
	fragmentEntry string
	flags         glsl.WriterFlags
}

// WithEntryPoints selects the vertex and fragment entry points by name.
// An empty name selects the first entry point of that stage.
func WithEntryPoints(vertex, fragment string) WGSLOption {
	return func(o *wgslOptions) {
		o.vertexEntry = vertex
		o.fragmentEntry = fragment
	}
}

// WithWriterFlags sets the GLSL writer flags, for example
// glsl.WriterFlagAdjustCoordinateSpace for shaders written against
// WebGPU clip-space conventions.
func WithWriterFlags(flags glsl.WriterFlags) WGSLOption {
	return func(o *wgslOptions) {
		o.flags = flags
	}
}

// TranslateWGSL parses and validates a WGSL module and translates its
// vertex and fragment entry points to GLSL 330 core. Errors are returned
// as *CompileError; errors that concern the whole module report both
// stages.
func TranslateWGSL(source string, opts ...WGSLOption) (vertex, fragment string, err error) {
	var o wgslOptions
	for _, opt := range opts {
		opt(&o)
	}

	module, err := buildModule(source)
	if err != nil {
		return "", "", err
	}

	vertex, err = translateStage(module, source, gputypes.ShaderStageVertex, o.vertexEntry, o.flags)
	if err != nil {
		return "", "", err
	}
	fragment, err = translateStage(module, source, gputypes.ShaderStageFragment, o.fragmentEntry, o.flags)
	if err != nil {
		return "", "", err
	}
	return vertex, fragment, nil
}

// NewShaderProgramWGSL translates source with TranslateWGSL and builds a
// program from the result.
func NewShaderProgramWGSL(d glcore.Driver, source string, opts ...WGSLOption) (*ShaderProgram, error) {
	if d == nil {
		return nil, ErrNilDriver
	}
	vertex, fragment, err := TranslateWGSL(source, opts...)
	if err != nil {
		return nil, err
	}
	logger().Debug("translated WGSL",
		"vertex_bytes", len(vertex), "fragment_bytes", len(fragment))
	return NewShaderProgram(d, vertex, fragment)
}

func buildModule(source string) (*ir.Module, error) {
	const both = gputypes.ShaderStagesVertexFragment
	fail := func(log string) error {
		return &CompileError{Stage: both, Excerpt: excerpt(source, log), Log: log}
	}

	ast, err := naga.Parse(source)
	if err != nil {
		return nil, fail(err.Error())
	}
	module, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return nil, fail(err.Error())
	}
	verrs, err := naga.Validate(module)
	if err != nil {
		return nil, fail(err.Error())
	}
	if len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return nil, fail(strings.Join(msgs, "\n"))
	}
	return module, nil
}

func translateStage(module *ir.Module, source string, stage gputypes.ShaderStage, name string, flags glsl.WriterFlags) (string, error) {
	ep, ok := findEntryPoint(module, irStage(stage), name)
	if !ok {
		log := fmt.Sprintf("no %s entry point", stageName(stage))
		if name != "" {
			log = fmt.Sprintf("no %s entry point named %q", stageName(stage), name)
		}
		return "", &CompileError{Stage: stage, Excerpt: excerpt(source, ""), Log: log}
	}

	out, _, err := glsl.Compile(module, glsl.Options{
		LangVersion: glsl.Version330,
		EntryPoint:  ep,
		WriterFlags: flags,
	})
	if err != nil {
		return "", &CompileError{Stage: stage, Excerpt: excerpt(source, err.Error()), Log: err.Error()}
	}
	return out, nil
}

func findEntryPoint(module *ir.Module, stage ir.ShaderStage, name string) (string, bool) {
	for i := range module.EntryPoints {
		ep := &module.EntryPoints[i]
		if ep.Stage != stage {
			continue
		}
		if name == "" || ep.Name == name {
			return ep.Name, true
		}
	}
	return "", false
}

func irStage(s gputypes.ShaderStage) ir.ShaderStage {
	if s == gputypes.ShaderStageFragment {
		return ir.StageFragment
	}
	return ir.StageVertex
}
