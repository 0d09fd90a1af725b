package shaders

import (
	"io/fs"
	"strings"
	"testing"
)

func TestEmbeddedFiles(t *testing.T) {
	for name, embedded := range map[string]string{
		VertexFile:   Vertex,
		FragmentFile: Fragment,
		WGSLFile:     WGSL,
	} {
		b, err := fs.ReadFile(FS, name)
		if err != nil {
			t.Fatalf("ReadFile(%q): %v", name, err)
		}
		if string(b) != embedded {
			t.Errorf("%s: FS contents differ from the embedded string", name)
		}
	}
}

func TestGLSLVersion(t *testing.T) {
	for _, src := range []string{Vertex, Fragment} {
		if !strings.HasPrefix(src, "#version 330 core") {
			t.Errorf("source does not start with #version 330 core:\n%s", src)
		}
	}
}
