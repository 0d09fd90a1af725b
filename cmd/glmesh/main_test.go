package main

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/glmesh"
	"github.com/gogpu/glmesh/driver/mock"
	"github.com/gogpu/glmesh/internal/config"
	"github.com/gogpu/glmesh/internal/platform"
	"github.com/gogpu/glmesh/shaders"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestRunHeadless(t *testing.T) {
	cfg := config.Default()
	cfg.Render.Frames = 4
	if err := run(cfg, platform.HeadlessName, discard); err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestRunWGSL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mesh.wgsl")
	if err := os.WriteFile(path, []byte(shaders.WGSL), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.Shaders.WGSL = path
	if err := run(cfg, platform.HeadlessName, discard); err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Shaders = config.Shaders{Vertex: filepath.Join(dir, "a.vert"), Fragment: filepath.Join(dir, "a.frag")}
	if err := run(cfg, platform.HeadlessName, discard); !errors.Is(err, glmesh.ErrFileNotFound) {
		t.Errorf("missing GLSL files: err = %v, want ErrFileNotFound", err)
	}

	cfg.Shaders = config.Shaders{WGSL: filepath.Join(dir, "a.wgsl")}
	if err := run(cfg, platform.HeadlessName, discard); !errors.Is(err, glmesh.ErrFileNotFound) {
		t.Errorf("missing WGSL file: err = %v, want ErrFileNotFound", err)
	}

	if err := run(config.Default(), "nope", discard); !errors.Is(err, platform.ErrUnknown) {
		t.Errorf("unknown platform: err = %v, want ErrUnknown", err)
	}
}

func TestLoadProgramDefault(t *testing.T) {
	d := mock.New()
	p, err := loadProgram(d, config.Shaders{})
	if err != nil {
		t.Fatalf("loadProgram: %v", err)
	}
	p.Destroy()
	if d.LiveObjects() != 0 {
		t.Errorf("live objects = %d", d.LiveObjects())
	}
}
