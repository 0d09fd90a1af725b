// Command glmesh opens a window and draws a subdivided triangle with the
// glmesh library.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/gogpu/glmesh"
	"github.com/gogpu/glmesh/glcore"
	"github.com/gogpu/glmesh/internal/config"
	"github.com/gogpu/glmesh/internal/platform"
	"github.com/gogpu/glmesh/shaders"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML configuration file")
		platName   = flag.String("platform", "", "platform to open (default: best available)")
		frames     = flag.Int("frames", -1, "stop after N frames (0 = until closed)")
		vertPath   = flag.String("vert", "", "GLSL vertex shader file")
		fragPath   = flag.String("frag", "", "GLSL fragment shader file")
		wgslPath   = flag.String("wgsl", "", "WGSL shader file with vertex and fragment entry points")
		dump       = flag.Bool("dump-config", false, "print the effective configuration and exit")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	glmesh.SetLogger(logger)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			logger.Error("load config", "err", err)
			os.Exit(2)
		}
	}
	if *frames >= 0 {
		cfg.Render.Frames = *frames
	}
	if *vertPath != "" || *fragPath != "" {
		cfg.Shaders = config.Shaders{Vertex: *vertPath, Fragment: *fragPath}
	}
	if *wgslPath != "" {
		cfg.Shaders = config.Shaders{WGSL: *wgslPath}
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(2)
	}

	if *dump {
		if err := cfg.Encode(os.Stdout); err != nil {
			logger.Error("encode config", "err", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg, *platName, logger); err != nil {
		logger.Error("glmesh failed", "err", err, "fatal", glmesh.IsFatal(err))
		os.Exit(1)
	}
}

// run opens the platform, renders until it asks to close or the frame
// limit is reached, then releases everything it created.
func run(cfg config.Config, platName string, logger *slog.Logger) error {
	p, err := platform.Open(platName, platform.Options{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Title:  cfg.Window.Title,
		VSync:  cfg.Window.VSync,
	})
	if err != nil {
		return err
	}
	defer p.Close()
	if h, ok := p.(*platform.Headless); ok {
		h.SetFrameLimit(cfg.Render.Frames)
	}

	d := p.Driver()
	logger.Info("platform open", "platform", p.Name())

	program, err := loadProgram(d, cfg.Shaders)
	if err != nil {
		return err
	}
	defer program.Destroy()

	vertices, indices := glmesh.SubdividedTriangle(1)
	mesh, err := glmesh.NewMesh(d, vertices, indices)
	if err != nil {
		return err
	}
	defer mesh.Destroy()

	width, height := p.FramebufferSize()
	r, err := glmesh.NewRenderer(d,
		glmesh.WithClearColor(cfg.ClearColor()),
		glmesh.WithViewport(width, height),
	)
	if err != nil {
		return err
	}

	for !p.ShouldClose() {
		if w, h := p.FramebufferSize(); w != width || h != height {
			width, height = w, h
			r.Resize(width, height)
			logger.Debug("resized", "width", width, "height", height)
		}
		if err := r.Frame(program, mesh); err != nil {
			return fmt.Errorf("frame %d: %w", r.Frames()+1, err)
		}
		p.SwapBuffers()
		p.PollEvents()
		if cfg.Render.Frames > 0 && r.Frames() >= cfg.Render.Frames {
			break
		}
	}
	logger.Info("shutting down", "frames", r.Frames())
	return nil
}

func loadProgram(d glcore.Driver, s config.Shaders) (*glmesh.ShaderProgram, error) {
	switch {
	case s.WGSL != "":
		src, err := os.ReadFile(s.WGSL)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", glmesh.ErrFileNotFound, s.WGSL)
		}
		if err != nil {
			return nil, err
		}
		p, err := glmesh.NewShaderProgramWGSL(d, string(src))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.WGSL, err)
		}
		return p, nil
	case s.Vertex != "":
		return glmesh.LoadShaderProgram(d, s.Vertex, s.Fragment)
	default:
		return glmesh.LoadShaderProgramFS(d, shaders.FS, shaders.VertexFile, shaders.FragmentFile)
	}
}
