package mock

import (
	"strings"
	"testing"

	"github.com/gogpu/gputypes"
)

const validVertex = `#version 330 core
layout (location = 0) in vec3 aPos;

// pass the position straight through
void main()
{
	gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
`

const validFragment = `#version 330 core
out vec4 FragColor;

void main()
{
	FragColor = vec4(0.8f, 0.3f, 0.02f, 1.0f);
}
`

const elseOnOwnLine = `#version 330 core
uniform bool b;
out vec4 FragColor;

void main()
{
	if (b)
	{
		FragColor = vec4(1.0);
	}
	else
	{
		FragColor = vec4(0.0);
	}
}
`

const bracelessBodies = `#version 330 core
uniform bool b;
out vec4 FragColor;

void main()
{
	FragColor = vec4(0.0);
	if (b)
		FragColor = vec4(1.0);
	for (int i = 0; i < 4; i++)
		FragColor.r += 0.1;
	do
	{
		FragColor.g += 0.1;
	} while (FragColor.g < 0.5);
}
`

const structHead = `#version 330 core
struct Light
{
	vec3 color;
};
uniform Light light;
out vec4 FragColor;

void main()
{
	FragColor = vec4(light.color, 1.0);
}
`

func TestCheckGLSL(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		ok      bool
		wantLog string
	}{
		{"vertex", validVertex, true, ""},
		{"fragment", validFragment, true, ""},
		{
			name:    "missing semicolon",
			source:  "#version 330 core\nvoid main()\n{\n\tgl_Position = vec4(0.0)\n}\n",
			wantLog: "0:5(1): error: syntax error, unexpected '}', expecting ',' or ';'",
		},
		{
			name:    "missing semicolon before identifier",
			source:  "#version 330 core\nout vec4 c\nvoid main() {\n\tc = vec4(1.0);\n}\n",
			wantLog: "0:3(1): error: syntax error, unexpected NEW_IDENTIFIER",
		},
		{
			name:    "no version",
			source:  "void main() {}\n",
			wantLog: "0:1(1): error: GLSL 1.10 is not supported",
		},
		{
			name:    "unbalanced",
			source:  "#version 330 core\nvoid main() {\n\tgl_Position = vec4(1.0);\n",
			wantLog: "unexpected end of file",
		},
		{
			name:    "stray brace",
			source:  "#version 330 core\n}\n",
			wantLog: "0:2(1): error: syntax error, unexpected '}'",
		},
		{
			name:   "multi-line call",
			source: "#version 330 core\nvoid main() {\n\tgl_Position = vec4(1.0,\n\t\t0.0, 0.0, 1.0);\n}\n",
			ok:     true,
		},
		{
			name:   "block comment",
			source: "#version 330 core\n/* no\nsemicolons here */\nvoid main() {\n}\n",
			ok:     true,
		},
		{"else on its own line", elseOnOwnLine, true, ""},
		{"braceless bodies", bracelessBodies, true, ""},
		{"struct head on its own line", structHead, true, ""},
		{
			name:    "braceless body missing semicolon",
			source:  "#version 330 core\nuniform bool b;\nvoid main() {\n\tif (b)\n\t\tgl_Position = vec4(1.0)\n}\n",
			wantLog: "0:6(1): error: syntax error, unexpected '}', expecting ',' or ';'",
		},
		{"empty", "", false, "unexpected end of file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := CheckGLSL(gputypes.ShaderStageVertex, tt.source)
			if st.OK != tt.ok {
				t.Fatalf("OK = %v, want %v (log %q)", st.OK, tt.ok, st.Log)
			}
			if !strings.Contains(st.Log, tt.wantLog) {
				t.Errorf("Log = %q, want it to contain %q", st.Log, tt.wantLog)
			}
		})
	}
}

func TestCheckLink(t *testing.T) {
	withInput := "#version 330 core\nin vec3 color;\nout vec4 FragColor;\nvoid main() {\n\tFragColor = vec4(color, 1.0);\n}\n"
	withOutput := "#version 330 core\nlayout (location = 0) in vec3 aPos;\nout vec3 color;\nvoid main() {\n\tcolor = aPos;\n\tgl_Position = vec4(aPos, 1.0);\n}\n"

	tests := []struct {
		name     string
		vertex   string
		fragment string
		ok       bool
		wantLog  string
	}{
		{"minimal", validVertex, validFragment, true, ""},
		{"matched varying", withOutput, withInput, true, ""},
		{"unmatched varying", validVertex, withInput, false, "input `color' has no matching output"},
		{"no main", "#version 330 core\nvoid run() {\n}\n", validFragment, false, "vertex shader lacks `main'"},
		{
			name:     "naga style",
			vertex:   "#version 330 core\nsmooth out vec2 _vs2fs_location0;\nvoid main() {\n    return;\n}\n",
			fragment: "#version 330 core\nsmooth in vec2 _vs2fs_location0;\nlayout(location = 0) out vec4 _fs2p_location0;\nvoid main() {\n    return;\n}\n",
			ok:       true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := CheckLink(tt.vertex, tt.fragment)
			if st.OK != tt.ok {
				t.Fatalf("OK = %v, want %v (log %q)", st.OK, tt.ok, st.Log)
			}
			if !strings.Contains(st.Log, tt.wantLog) {
				t.Errorf("Log = %q, want it to contain %q", st.Log, tt.wantLog)
			}
		})
	}
}

func TestStripCommentsKeepsLines(t *testing.T) {
	src := "a // one\n/* two\nthree */ b\n"
	got := stripComments(src)
	if n := strings.Count(got, "\n"); n != 3 {
		t.Errorf("line breaks = %d, want 3 (%q)", n, got)
	}
	if !strings.Contains(got, " b") {
		t.Errorf("code after block comment lost: %q", got)
	}
}
