package glmesh

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/glmesh/driver/mock"
	"github.com/gogpu/glmesh/shaders"
	"github.com/gogpu/gputypes"
)

const colorWGSL = `
struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) color: vec3<f32>,
}

@vertex
fn vs_main(@location(0) position: vec3<f32>) -> VertexOutput {
    var out: VertexOutput;
    out.position = vec4<f32>(position, 1.0);
    out.color = position * 0.5 + vec3<f32>(0.5);
    return out;
}

@fragment
fn fs_main(@location(0) color: vec3<f32>) -> @location(0) vec4<f32> {
    return vec4<f32>(color, 1.0);
}
`

func TestTranslateWGSL(t *testing.T) {
	vertex, fragment, err := TranslateWGSL(shaders.WGSL)
	if err != nil {
		t.Fatalf("TranslateWGSL: %v", err)
	}
	for name, src := range map[string]string{"vertex": vertex, "fragment": fragment} {
		if !strings.HasPrefix(src, "#version 330 core") {
			t.Errorf("%s: missing #version 330 core:\n%s", name, src)
		}
		if !strings.Contains(src, "void main()") {
			t.Errorf("%s: missing main:\n%s", name, src)
		}
	}
	if !strings.Contains(vertex, "gl_Position") {
		t.Errorf("vertex stage does not write gl_Position:\n%s", vertex)
	}
}

func TestNewShaderProgramWGSL(t *testing.T) {
	for name, src := range map[string]string{"default": shaders.WGSL, "varyings": colorWGSL} {
		t.Run(name, func(t *testing.T) {
			d := mock.New()
			p, err := NewShaderProgramWGSL(d, src)
			if err != nil {
				t.Fatalf("NewShaderProgramWGSL: %v", err)
			}
			p.Activate()
			if err := d.Error(); err != nil {
				t.Errorf("Activate raised %v", err)
			}
			p.Destroy()
			if d.LiveObjects() != 0 {
				t.Errorf("live objects = %d", d.LiveObjects())
			}
		})
	}
}

func TestWGSLErrors(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		opts    []WGSLOption
		stage   gputypes.ShaderStage
		wantLog string
	}{
		{
			name:   "syntax error",
			source: "@vertex\nfn vs_main( -> @builtin(position) vec4<f32> {\n}\n",
			stage:  gputypes.ShaderStagesVertexFragment,
		},
		{
			name: "no fragment entry point",
			source: `@vertex
fn vs_main(@location(0) p: vec3<f32>) -> @builtin(position) vec4<f32> {
    return vec4<f32>(p, 1.0);
}
`,
			stage:   gputypes.ShaderStageFragment,
			wantLog: "no fragment entry point",
		},
		{
			name:    "unknown entry point name",
			source:  shaders.WGSL,
			opts:    []WGSLOption{WithEntryPoints("main_vs", "")},
			stage:   gputypes.ShaderStageVertex,
			wantLog: `named "main_vs"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := mock.New()
			_, err := NewShaderProgramWGSL(d, tt.source, tt.opts...)
			var ce *CompileError
			if !errors.As(err, &ce) {
				t.Fatalf("err = %v, want *CompileError", err)
			}
			if ce.Stage != tt.stage {
				t.Errorf("Stage = %v, want %v", ce.Stage, tt.stage)
			}
			if ce.Log == "" || ce.Excerpt == "" {
				t.Errorf("empty diagnostics: %+v", ce)
			}
			if tt.wantLog != "" && !strings.Contains(ce.Log, tt.wantLog) {
				t.Errorf("Log = %q, want %q", ce.Log, tt.wantLog)
			}
			if d.LiveObjects() != 0 {
				t.Errorf("live objects = %d", d.LiveObjects())
			}
		})
	}
}

func TestWithEntryPoints(t *testing.T) {
	vertex, fragment, err := TranslateWGSL(shaders.WGSL, WithEntryPoints("vs_main", "fs_main"))
	if err != nil {
		t.Fatalf("TranslateWGSL: %v", err)
	}
	if vertex == fragment {
		t.Error("vertex and fragment translations are identical")
	}
}
